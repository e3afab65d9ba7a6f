package arabic

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// ErrInvalidNumeral is returned when a value cannot be rendered as digits
// (NaN or infinite input).
var ErrInvalidNumeral = errors.New("arabic: value is not a finite number")

// arabicDigits maps the ASCII digits 0-9 to their Arabic-Indic glyphs.
var arabicDigits = [10]rune{'٠', '١', '٢', '٣', '٤', '٥', '٦', '٧', '٨', '٩'}

// ToArabicDigits replaces every ASCII digit in s with the corresponding
// Arabic-Indic glyph. Separators (".", ",", "-", "/", ":") and any other
// runes pass through untouched, and digit order is preserved.
func ToArabicDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(arabicDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatAmount renders a monetary amount with exactly two decimal places
// using Arabic-Indic digits.
func FormatAmount(amount float64) (string, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return "", ErrInvalidNumeral
	}
	return ToArabicDigits(fmt.Sprintf("%.2f", amount)), nil
}

// FormatCount renders a non-negative count using Arabic-Indic digits.
func FormatCount(n int) string {
	return ToArabicDigits(fmt.Sprintf("%d", n))
}

// FormatDateTime renders t in the ar-EG short style (day/month/year,
// 12-hour clock with ص/م) with every numeral localized.
func FormatDateTime(t time.Time) string {
	meridiem := "ص"
	if t.Hour() >= 12 {
		meridiem = "م"
	}
	return ToArabicDigits(t.Format("2/1/2006, 3:04:05")) + " " + meridiem
}
