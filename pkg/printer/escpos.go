package printer

import (
	"bytes"
	"image"
	"image/color"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Greyscale values below this threshold print as black when a bitmap is
// reduced to 1-bit at encode time.
const lumThreshold = 128

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm, 48 for 80mm)
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 48
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// Raster emits the GS v 0 raster bit image command for img, thresholding
// greyscale to 1-bit. Bit 7 of each byte is the leftmost pixel.
func (d *Document) Raster(img image.Image) *Document {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	widthBytes := (w + 7) / 8

	d.buf.Write([]byte{
		GS, 'v', '0', 0x00,
		byte(widthBytes), byte(widthBytes >> 8),
		byte(h), byte(h >> 8),
	})

	for y := 0; y < h; y++ {
		for xb := 0; xb < widthBytes; xb++ {
			var packed byte
			for bit := 0; bit < 8; bit++ {
				x := xb*8 + bit
				if x >= w {
					break
				}
				g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
				if g.Y < lumThreshold {
					packed |= 0x80 >> uint(bit)
				}
			}
			d.buf.WriteByte(packed)
		}
	}
	d.buf.WriteByte(LF)
	return d
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Encode converts an ordered block sequence into a single ESC/POS byte
// stream. Block order is preserved exactly; the alignment command is set
// before each block that carries one.
func Encode(blocks []Block, charWidth int) []byte {
	doc := NewDocument(charWidth)
	for _, blk := range blocks {
		switch b := blk.(type) {
		case ImageBlock:
			doc.SetAlign(b.Align).Raster(b.Image)
		case TextBlock:
			doc.SetAlign(b.Align).Text(b.Text)
		case DividerBlock:
			doc.SetAlign(AlignLeft).Separator('-')
		case CutBlock:
			doc.FeedLines(3).Cut()
		}
	}
	return doc.Bytes()
}
