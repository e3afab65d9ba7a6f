package compose

import (
	"errors"
	"image"
	"testing"
	"time"

	"github.com/margubmurshed/fun-hour-entertainment-server/internal/domain/entity"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/printer"
	"github.com/margubmurshed/fun-hour-entertainment-server/pkg/raster"
	"github.com/stretchr/testify/assert"
)

// recordingRasterizer captures every line handed to it, so tests can
// assert on document text without font assets.
type recordingRasterizer struct {
	lines   []string
	failOn  string
	failErr error
}

func (r *recordingRasterizer) Rasterize(text string, fontSizePx int, dir raster.Direction, align raster.Align) (*image.Gray, error) {
	if r.failOn != "" && text == r.failOn {
		return nil, r.failErr
	}
	r.lines = append(r.lines, text)
	return image.NewGray(image.Rect(0, 0, 8, 8)), nil
}

func testConfig() Config {
	return Config{
		CompanyName: "ساعة فرح للترفيه",
		VATReg:      "6312592186100003",
		Currency:    "ريال",
	}
}

func sampleReceipt() *entity.Receipt {
	return &entity.Receipt{
		CustomerName: "أحمد",
		MobileNumber: "0501234567",
		Services:     []entity.LineItem{{Name: "Playtime", Price: 30}},
		Products:     []entity.LineItem{{Name: "Water", Price: 5, Quantity: 2}},
		Total:        40,
		VAT:          5.22,
		PaymentType:  entity.PaymentTypeCash,
		Serial:       7,
		CreatedAt:    1700000000000,
	}
}

func closedSession() *entity.CashSession {
	closing := 250.0
	closedAt := int64(1700030000000)
	return &entity.CashSession{
		CashierName:       "Sara",
		CashierEmail:      "sara@funhour.sa",
		OpeningCashAmount: 100,
		OpeningCashTime:   1700000000000,
		ClosingCashAmount: &closing,
		ClosingCashTime:   &closedAt,
	}
}

func TestComposeReceipt_BlockSequence(t *testing.T) {
	rast := &recordingRasterizer{}
	c := NewComposer(rast, image.NewGray(image.Rect(0, 0, 200, 100)), testConfig())

	blocks, err := c.ComposeReceipt(sampleReceipt())
	assert.NoError(t, err)
	assert.NotEmpty(t, blocks)

	// Logo first, cut last.
	_, ok := blocks[0].(printer.ImageBlock)
	assert.True(t, ok)
	_, ok = blocks[len(blocks)-1].(printer.CutBlock)
	assert.True(t, ok)

	// The VAT registration stays a Latin text line.
	var vatLine printer.TextBlock
	for _, b := range blocks {
		if tb, ok := b.(printer.TextBlock); ok {
			vatLine = tb
		}
	}
	assert.Equal(t, "VAT : 6312592186100003", vatLine.Text)
}

func TestComposeReceipt_LocalizedLines(t *testing.T) {
	rast := &recordingRasterizer{}
	c := NewComposer(rast, nil, testConfig())

	_, err := c.ComposeReceipt(sampleReceipt())
	assert.NoError(t, err)

	assert.Contains(t, rast.lines, "رقم التسلسل: ٧")
	assert.Contains(t, rast.lines, "Water x٢ - ١٠.٠٠ ريال")
	assert.Contains(t, rast.lines, "Playtime - ٣٠.٠٠ ريال")
	assert.Contains(t, rast.lines, "الإجمالي: ٤٠.٠٠ ريال")
	assert.Contains(t, rast.lines, "شكراً لزيارتكم!")
}

func TestComposeReceipt_EmptySectionsSuppressed(t *testing.T) {
	rast := &recordingRasterizer{}
	c := NewComposer(rast, nil, testConfig())

	receipt := sampleReceipt()
	receipt.Services = nil

	_, err := c.ComposeReceipt(receipt)
	assert.NoError(t, err)

	assert.NotContains(t, rast.lines, headerServices)
	assert.Contains(t, rast.lines, headerProducts)
}

func TestComposeReceipt_RenderFailureAbortsDocument(t *testing.T) {
	cause := errors.New("glyph missing")
	rast := &recordingRasterizer{failOn: headerProducts, failErr: cause}
	c := NewComposer(rast, nil, testConfig())

	blocks, err := c.ComposeReceipt(sampleReceipt())
	assert.Nil(t, blocks)

	var renderErr *BlockRenderError
	assert.ErrorAs(t, err, &renderErr)
	assert.Equal(t, headerProducts, renderErr.Line)
	assert.ErrorIs(t, err, cause)
}

func TestComposeSessionReport_OpenSessionRejected(t *testing.T) {
	c := NewComposer(&recordingRasterizer{}, nil, testConfig())

	open := closedSession()
	open.ClosingCashAmount = nil
	open.ClosingCashTime = nil

	_, err := c.ComposeSessionReport(open, &entity.SessionSummary{}, time.Now(), "", "")
	assert.ErrorIs(t, err, ErrSessionOpen)
}

func TestComposeSessionReport_VarianceLine(t *testing.T) {
	rast := &recordingRasterizer{}
	c := NewComposer(rast, nil, testConfig())

	summary := &entity.SessionSummary{
		ProductGroups: []entity.ProductGroup{{Name: "Water", Quantity: 5, Revenue: 25}},
		ServiceGroups: []entity.ServiceGroup{{Name: "Playtime", Count: 2, Revenue: 60}},
		TotalProductRevenue: 25,
		TotalServiceRevenue: 60,
		TotalCash:           230,
		TotalCard:           40,
	}

	blocks, err := c.ComposeSessionReport(closedSession(), summary, time.Now(), "", "")
	assert.NoError(t, err)
	_, ok := blocks[len(blocks)-1].(printer.CutBlock)
	assert.True(t, ok)

	// 250 declared minus 230 cash revenue.
	assert.Contains(t, rast.lines, labelVariance+"٢٠.٠٠ ريال")
	assert.Contains(t, rast.lines, labelGrandTotal+"٨٥.٠٠ ريال")
	assert.Contains(t, rast.lines, "Water x٥ - ٢٥.٠٠ ريال")
	assert.Contains(t, rast.lines, "Playtime x٢ - ٦٠.٠٠ ريال")
}

func TestComposeSessionReport_CashierFallback(t *testing.T) {
	rast := &recordingRasterizer{}
	c := NewComposer(rast, nil, testConfig())

	_, err := c.ComposeSessionReport(closedSession(), &entity.SessionSummary{}, time.Now(), "", "")
	assert.NoError(t, err)
	assert.Contains(t, rast.lines, labelCashierName+"Sara")

	rast.lines = nil
	_, err = c.ComposeSessionReport(closedSession(), &entity.SessionSummary{}, time.Now(), "Lina", "lina@funhour.sa")
	assert.NoError(t, err)
	assert.Contains(t, rast.lines, labelCashierName+"Lina")
	assert.Contains(t, rast.lines, labelCashierEmail+"lina@funhour.sa")
}
