package compose

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/arabic"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/printer"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/raster"
)

// Font sizes in pixels, matching the 576px canvas of an 80mm head.
const (
	fontSizeBody    = 28
	fontSizeHeading = 30
	fontSizeTitle   = 32
)

// Fixed Arabic line labels and headers.
const (
	labelSerial       = "رقم التسلسل: "
	labelCustomer     = "اسم العميل: "
	labelMobile       = "رقم الجوال: "
	labelDate         = "التاريخ: "
	labelVAT          = "ضريبة القيمة المضافة: "
	labelTotal        = "الإجمالي: "
	labelPayment      = "طريقة الدفع: "
	labelPrintedAt    = "وقت الطباعة: "
	labelCashierName  = "اسم الكاشير: "
	labelCashierEmail = "بريد الكاشير: "
	labelSessionOpen  = "بداية الجلسة: "
	labelOpeningCash  = "المبلغ الافتتاحي: "
	labelSessionClose = "نهاية الجلسة: "
	labelClosingCash  = "المبلغ الختامي: "
	labelGrandTotal   = "الإجمالي الكلي: "
	labelProductSales = "إجمالي مبيعات المنتجات: "
	labelServiceSales = "إجمالي مبيعات الخدمات: "
	labelCashTotal    = "إجمالي المدفوع نقداً: "
	labelCardTotal    = "إجمالي المدفوع بالبطاقة: "
	labelVariance     = "الفرق النقدي: "

	headerServices     = "الخدمات:"
	headerProducts     = "المنتجات:"
	headerProductsSold = "المنتجات المباعة اليوم"
	headerServicesSold = "الخدمات المباعة اليوم"

	lineVATIncluded = "15% ضريبة القيمة المضافة مشمولة في الإجمالي"
	lineThankYou    = "شكراً لزيارتكم!"
)

// ErrSessionOpen is returned when a report is requested for a session that
// has not been closed; the cash variance is undefined until then.
var ErrSessionOpen = errors.New("compose: cash session is still open")

// BlockRenderError reports which line failed to rasterize. Composition
// fails as a unit; a partial document is never handed to the transport.
type BlockRenderError struct {
	Line string
	Err  error
}

func (e *BlockRenderError) Error() string {
	return fmt.Sprintf("compose: rendering line %q: %v", e.Line, e.Err)
}

func (e *BlockRenderError) Unwrap() error {
	return e.Err
}

// TextRasterizer renders one line of text into a bitmap. Satisfied by
// raster.Rasterizer.
type TextRasterizer interface {
	Rasterize(text string, fontSizePx int, dir raster.Direction, align raster.Align) (*image.Gray, error)
}

// Config holds the fixed identity constants printed on every document.
type Config struct {
	CompanyName string
	VATReg      string // printed as a Latin text line, digits never localized
	Currency    string
}

// Composer assembles ordered print block sequences for receipts and
// session reports. It is pure: same inputs, same block sequence.
type Composer struct {
	rast TextRasterizer
	logo image.Image
	cfg  Config
}

// NewComposer creates a composer. logo may be nil when no logo asset is
// configured; the logo block is then skipped.
func NewComposer(rast TextRasterizer, logo image.Image, cfg Config) *Composer {
	return &Composer{rast: rast, logo: logo, cfg: cfg}
}

// ComposeReceipt builds the full block sequence for one receipt: header
// (logo, company name, VAT registration), identification lines, the
// services and products sections, totals and footer, ending in a cut.
// Empty sections are suppressed entirely, header and divider included.
func (c *Composer) ComposeReceipt(receipt *entity.Receipt) ([]printer.Block, error) {
	var blocks []printer.Block

	if c.logo != nil {
		blocks = append(blocks, printer.ImageBlock{Image: c.logo, Align: printer.AlignCenter})
	}
	if err := c.appendLine(&blocks, c.cfg.CompanyName, fontSizeTitle); err != nil {
		return nil, err
	}
	blocks = append(blocks,
		printer.TextBlock{Text: "VAT : " + c.cfg.VATReg, Align: printer.AlignCenter},
		printer.DividerBlock{},
	)

	identity := []string{
		labelSerial + arabic.FormatCount(receipt.Serial),
		labelCustomer + receipt.CustomerName,
		labelMobile + receipt.MobileNumber,
		labelDate + arabic.FormatDateTime(receipt.CreatedAtTime()),
	}
	for _, line := range identity {
		if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
			return nil, err
		}
	}
	blocks = append(blocks, printer.DividerBlock{})

	if len(receipt.Services) > 0 {
		if err := c.appendLine(&blocks, headerServices, fontSizeBody); err != nil {
			return nil, err
		}
		for _, svc := range receipt.Services {
			line, err := c.serviceLine(svc.Name, svc.Price)
			if err != nil {
				return nil, err
			}
			if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
				return nil, err
			}
		}
		blocks = append(blocks, printer.DividerBlock{})
	}

	if len(receipt.Products) > 0 {
		if err := c.appendLine(&blocks, headerProducts, fontSizeBody); err != nil {
			return nil, err
		}
		for _, prod := range receipt.Products {
			line, err := c.itemLine(prod.Name, prod.Quantity, prod.Price*float64(prod.Quantity))
			if err != nil {
				return nil, err
			}
			if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
				return nil, err
			}
		}
		blocks = append(blocks, printer.DividerBlock{})
	}

	vatLine, err := c.amountLine(labelVAT, receipt.VAT)
	if err != nil {
		return nil, err
	}
	totalLine, err := c.amountLine(labelTotal, receipt.Total)
	if err != nil {
		return nil, err
	}
	totals := []string{
		vatLine,
		totalLine,
		labelPayment + receipt.PaymentType,
		lineVATIncluded,
	}
	for _, line := range totals {
		if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
			return nil, err
		}
	}
	blocks = append(blocks, printer.DividerBlock{})

	if err := c.appendLine(&blocks, lineThankYou, fontSizeBody); err != nil {
		return nil, err
	}
	blocks = append(blocks, printer.CutBlock{})

	return blocks, nil
}

// ComposeSessionReport builds the end-of-shift reconciliation document for
// a closed session. cashierName/cashierEmail are the display fields sent
// with the print request; empty values fall back to the stored session.
func (c *Composer) ComposeSessionReport(session *entity.CashSession, summary *entity.SessionSummary, printedAt time.Time, cashierName, cashierEmail string) ([]printer.Block, error) {
	if session.IsOpen() {
		return nil, ErrSessionOpen
	}
	if cashierName == "" {
		cashierName = session.CashierName
	}
	if cashierEmail == "" {
		cashierEmail = session.CashierEmail
	}

	var blocks []printer.Block

	if c.logo != nil {
		blocks = append(blocks, printer.ImageBlock{Image: c.logo, Align: printer.AlignCenter})
	}
	if err := c.appendLine(&blocks, labelPrintedAt+arabic.FormatDateTime(printedAt), fontSizeBody); err != nil {
		return nil, err
	}
	blocks = append(blocks, printer.DividerBlock{})

	openingLine, err := c.amountLine(labelOpeningCash, session.OpeningCashAmount)
	if err != nil {
		return nil, err
	}
	closingLine, err := c.amountLine(labelClosingCash, *session.ClosingCashAmount)
	if err != nil {
		return nil, err
	}
	identity := []string{
		labelCashierName + cashierName,
		labelCashierEmail + cashierEmail,
		labelSessionOpen + arabic.FormatDateTime(session.OpeningTime()),
		openingLine,
		labelSessionClose + arabic.FormatDateTime(session.ClosingTime()),
		closingLine,
	}
	for _, line := range identity {
		if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
			return nil, err
		}
	}
	blocks = append(blocks, printer.DividerBlock{})

	if len(summary.ProductGroups) > 0 {
		if err := c.appendLine(&blocks, headerProductsSold, fontSizeHeading); err != nil {
			return nil, err
		}
		for _, g := range summary.ProductGroups {
			line, err := c.itemLine(g.Name, g.Quantity, g.Revenue)
			if err != nil {
				return nil, err
			}
			if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
				return nil, err
			}
		}
		blocks = append(blocks, printer.DividerBlock{})
	}

	if len(summary.ServiceGroups) > 0 {
		if err := c.appendLine(&blocks, headerServicesSold, fontSizeHeading); err != nil {
			return nil, err
		}
		for _, g := range summary.ServiceGroups {
			line, err := c.itemLine(g.Name, g.Count, g.Revenue)
			if err != nil {
				return nil, err
			}
			if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
				return nil, err
			}
		}
		blocks = append(blocks, printer.DividerBlock{})
	}

	grandTotal, err := c.amountLine(labelGrandTotal, summary.TotalProductRevenue+summary.TotalServiceRevenue)
	if err != nil {
		return nil, err
	}
	if err := c.appendLine(&blocks, grandTotal, fontSizeBody); err != nil {
		return nil, err
	}

	// The variance is declared closing cash minus computed cash revenue;
	// it exists only because the session is closed.
	variance := *session.ClosingCashAmount - summary.TotalCash
	summaryAmounts := []struct {
		label  string
		amount float64
	}{
		{labelProductSales, summary.TotalProductRevenue},
		{labelServiceSales, summary.TotalServiceRevenue},
		{labelCashTotal, summary.TotalCash},
		{labelCardTotal, summary.TotalCard},
		{labelVariance, variance},
	}
	for _, s := range summaryAmounts {
		line, err := c.amountLine(s.label, s.amount)
		if err != nil {
			return nil, err
		}
		if err := c.appendLine(&blocks, line, fontSizeBody); err != nil {
			return nil, err
		}
	}
	blocks = append(blocks, printer.CutBlock{})

	return blocks, nil
}

// appendLine rasterizes one RTL line and appends it as a centered image
// block. Any rasterization failure aborts the whole document.
func (c *Composer) appendLine(blocks *[]printer.Block, line string, fontSizePx int) error {
	img, err := c.rast.Rasterize(line, fontSizePx, raster.DirectionRTL, raster.AlignRight)
	if err != nil {
		return &BlockRenderError{Line: line, Err: err}
	}
	*blocks = append(*blocks, printer.ImageBlock{Image: img, Align: printer.AlignCenter})
	return nil
}

func (c *Composer) serviceLine(name string, price float64) (string, error) {
	amount, err := arabic.FormatAmount(price)
	if err != nil {
		return "", &BlockRenderError{Line: name, Err: err}
	}
	return name + " - " + amount + " " + c.cfg.Currency, nil
}

func (c *Composer) itemLine(name string, quantity int, revenue float64) (string, error) {
	amount, err := arabic.FormatAmount(revenue)
	if err != nil {
		return "", &BlockRenderError{Line: name, Err: err}
	}
	return name + " x" + arabic.FormatCount(quantity) + " - " + amount + " " + c.cfg.Currency, nil
}

func (c *Composer) amountLine(label string, amount float64) (string, error) {
	formatted, err := arabic.FormatAmount(amount)
	if err != nil {
		return "", &BlockRenderError{Line: label, Err: err}
	}
	return label + formatted + " " + c.cfg.Currency, nil
}
