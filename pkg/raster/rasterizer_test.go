package raster

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/goregular"
)

// testRasterizer builds a rasterizer from the bundled Go Regular font so
// the drawing path runs without external font assets.
func testRasterizer(t *testing.T, canvasWidthPx int) *Rasterizer {
	t.Helper()
	fontPath := filepath.Join(t.TempDir(), "goregular.ttf")
	assert.NoError(t, os.WriteFile(fontPath, goregular.TTF, 0o644))

	r, err := NewRasterizer(fontPath, canvasWidthPx)
	assert.NoError(t, err)
	return r
}

func TestNewRasterizerMissingFont(t *testing.T) {
	_, err := NewRasterizer("testdata/does-not-exist.ttf", 576)
	assert.ErrorIs(t, err, ErrFontResolution)
}

func TestNewRasterizerInvalidFont(t *testing.T) {
	_, err := NewRasterizer("rasterizer.go", 576)
	assert.ErrorIs(t, err, ErrFontResolution)
}

func TestRasterizeCanvasGeometry(t *testing.T) {
	r := testRasterizer(t, 576)

	img, err := r.Rasterize("Total 40.00", 28, DirectionRTL, AlignRight)
	assert.NoError(t, err)

	assert.Equal(t, 576, img.Bounds().Dx())
	assert.Equal(t, 28+30, img.Bounds().Dy())
}

func TestRasterizeDrawsInk(t *testing.T) {
	r := testRasterizer(t, 576)

	img, err := r.Rasterize("X", 32, DirectionLTR, AlignCenter)
	assert.NoError(t, err)

	inked := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !inked; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.GrayAt(x, y).Y < 128 {
				inked = true
				break
			}
		}
	}
	assert.True(t, inked, "rendered bitmap should contain dark pixels")
}

func TestRasterizeOverflowingLineFails(t *testing.T) {
	r := testRasterizer(t, 576)

	// A single line wider than the canvas is rejected, never wrapped or
	// truncated.
	long := strings.Repeat("WIDE ", 60)
	img, err := r.Rasterize(long, 28, DirectionLTR, AlignLeft)
	assert.Nil(t, img)
	assert.ErrorIs(t, err, ErrLayoutOverflow)
}

func TestVisualOrderKeepsLTRText(t *testing.T) {
	assert.Equal(t, "VAT : 6312592186100003", visualOrder("VAT : 6312592186100003", DirectionLTR))
}

func TestVisualOrderReversesRTLRuns(t *testing.T) {
	// Two Arabic letters swap places visually; the Latin token keeps its
	// internal order.
	got := visualOrder("شك", DirectionRTL)
	assert.Equal(t, "كش", got)
}

func TestVisualOrderPreservesDigitOrder(t *testing.T) {
	// Arabic-Indic digits form their own run and must not be reversed even
	// inside an RTL paragraph.
	got := visualOrder("١٢٣", DirectionRTL)
	assert.Contains(t, got, "١٢٣")
}
