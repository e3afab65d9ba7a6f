package raster

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"os"
	"strings"

	"github.com/abdullahdiaa/garabic"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a line of text.
type Direction int

const (
	DirectionLTR Direction = iota
	DirectionRTL
)

// Align is the horizontal anchor of a line on the canvas.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

var (
	// ErrFontResolution is returned when the configured font cannot be
	// loaded or parsed.
	ErrFontResolution = errors.New("raster: font could not be resolved")
	// ErrLayoutOverflow is returned when a single line does not fit the
	// canvas width at the requested font size. Lines are never wrapped or
	// truncated.
	ErrLayoutOverflow = errors.New("raster: text does not fit canvas width")
)

// Canvas geometry for an 80mm thermal head. The canvas is fontSize+30 px
// tall with the baseline at fontSize+5, leaving room for descenders.
const (
	verticalPadding   = 30
	horizontalPadding = 20
	baselineOffset    = 5
)

// Rasterizer renders single lines of text into greyscale bitmaps sized for
// a thermal printer head. It is safe for concurrent use: every call builds
// its own drawing context.
type Rasterizer struct {
	font  *truetype.Font
	width int
}

// NewRasterizer parses the TTF font at fontPath and fixes the canvas width
// in pixels (576 for 80mm paper, 384 for 58mm). The font must contain
// Arabic presentation forms for RTL output to join correctly.
func NewRasterizer(fontPath string, canvasWidthPx int) (*Rasterizer, error) {
	data, err := os.ReadFile(fontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontResolution, fontPath, err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFontResolution, fontPath, err)
	}
	if canvasWidthPx <= 0 {
		canvasWidthPx = 576
	}
	return &Rasterizer{font: f, width: canvasWidthPx}, nil
}

// Width returns the fixed canvas width in pixels.
func (r *Rasterizer) Width() int {
	return r.width
}

// Rasterize renders one line of text at fontSizePx into a monochrome-ready
// greyscale bitmap. Arabic text is shaped into joined presentation forms
// and the line is reordered into visual order before drawing; the drawing
// stack itself stays direction-agnostic.
func (r *Rasterizer) Rasterize(text string, fontSizePx int, dir Direction, align Align) (*image.Gray, error) {
	shaped := garabic.Shape(text)
	visual := visualOrder(shaped, dir)

	face := truetype.NewFace(r.font, &truetype.Options{
		Size: float64(fontSizePx),
		DPI:  72,
	})
	defer face.Close()

	dc := gg.NewContext(r.width, fontSizePx+verticalPadding)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)

	lineWidth, _ := dc.MeasureString(visual)
	if lineWidth > float64(r.width-2*horizontalPadding) {
		return nil, fmt.Errorf("%w: %q at %dpx", ErrLayoutOverflow, text, fontSizePx)
	}

	var x float64
	switch align {
	case AlignRight:
		x = float64(r.width-horizontalPadding) - lineWidth
	case AlignCenter:
		x = (float64(r.width) - lineWidth) / 2
	default:
		x = horizontalPadding
	}
	y := float64(fontSizePx + baselineOffset)
	dc.DrawString(visual, x, y)

	src := dc.Image()
	gray := image.NewGray(src.Bounds())
	draw.Draw(gray, gray.Bounds(), src, src.Bounds().Min, draw.Src)
	return gray, nil
}

// visualOrder resolves bidi runs and returns the line in left-to-right
// visual order. RTL runs are reversed rune-wise; digit runs keep their
// logical order because the bidi algorithm classifies them as their own
// left-to-right runs.
func visualOrder(s string, dir Direction) string {
	def := bidi.LeftToRight
	if dir == DirectionRTL {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	p.SetString(s, bidi.DefaultDirection(def))
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			b.WriteString(reverseRunes(run.String()))
		} else {
			b.WriteString(run.String())
		}
	}
	return b.String()
}

func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
