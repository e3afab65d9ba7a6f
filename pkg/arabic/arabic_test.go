package arabic

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToArabicDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain integer keeps digit order", "123", "١٢٣"},
		{"separators untouched", "1,234.50", "١,٢٣٤.٥٠"},
		{"negative sign untouched", "-20.00", "-٢٠.٠٠"},
		{"mixed text", "Water x2", "Water x٢"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToArabicDigits(tt.input))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	got, err := FormatAmount(11.5)
	assert.NoError(t, err)
	assert.Equal(t, "١١.٥٠", got)

	got, err = FormatAmount(0)
	assert.NoError(t, err)
	assert.Equal(t, "٠.٠٠", got)

	_, err = FormatAmount(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidNumeral)

	_, err = FormatAmount(math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidNumeral)
}

func TestFormatDateTime(t *testing.T) {
	morning := time.Date(2025, 6, 25, 5, 30, 0, 0, time.UTC)
	assert.Equal(t, "٢٥/٦/٢٠٢٥, ٥:٣٠:٠٠ ص", FormatDateTime(morning))

	evening := time.Date(2025, 12, 1, 17, 5, 9, 0, time.UTC)
	assert.Equal(t, "١/١٢/٢٠٢٥, ٥:٠٥:٠٩ م", FormatDateTime(evening))
}
