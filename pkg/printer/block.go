package printer

import "image"

// Block is one unit of printer output. A composed document is an ordered
// block sequence; the transport must emit blocks in exactly this order.
type Block interface {
	isBlock()
}

// ImageBlock prints a pre-rendered bitmap using the printer's raster
// graphics mode. Used for every line that needs Arabic glyphs.
type ImageBlock struct {
	Image image.Image
	Align int
}

// TextBlock prints a line using the printer's built-in Latin font. Only
// pure-ASCII content belongs here.
type TextBlock struct {
	Text  string
	Align int
}

// DividerBlock prints a full-width separator line.
type DividerBlock struct{}

// CutBlock feeds the paper out and cuts. Always the last block of a
// document.
type CutBlock struct{}

func (ImageBlock) isBlock()   {}
func (TextBlock) isBlock()    {}
func (DividerBlock) isBlock() {}
func (CutBlock) isBlock()     {}
