package printer

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRasterWidth(t *testing.T) {
	// round(width_mm x 203 / 25.4)
	assert.Equal(t, 639, RasterWidth(80))
	assert.Equal(t, 464, RasterWidth(58))
	assert.Equal(t, 8, RasterWidth(1))
}

func TestCharWidthForPaper(t *testing.T) {
	assert.Equal(t, 32, CharWidthForPaper(58))
	assert.Equal(t, 48, CharWidthForPaper(80))
	assert.Equal(t, 32, CharWidthForPaper(0))
}

func TestRenderImageDimensions(t *testing.T) {
	lines := []RasterLine{
		{Text: "OPTIC HOUSE", Align: AlignCenter},
		{Text: "Invoice: INV-1001", Align: AlignLeft},
		{Text: "220.00", Align: AlignRight},
	}
	img := RenderImage(lines, 464)
	assert.Equal(t, 464, img.Bounds().Dx())
	assert.Equal(t, topMargin*2+3*lineHeight, img.Bounds().Dy())
}

func TestToRasterCommand(t *testing.T) {
	// A 10x2 image with one black pixel at (0,0) and one at (9,1).
	img := image.NewRGBA(image.Rect(0, 0, 10, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(0, 0, color.Black)
	img.Set(9, 1, color.Black)

	data := ToRasterCommand(img)

	require.GreaterOrEqual(t, len(data), 8)
	assert.Equal(t, []byte{GS, 'v', '0', 0x00}, data[:4])
	assert.Equal(t, byte(2), data[4], "width bytes low")  // (10+7)/8 = 2
	assert.Equal(t, byte(0), data[5], "width bytes high")
	assert.Equal(t, byte(2), data[6], "height low")

	payload := data[8:]
	require.Len(t, payload, 4) // 2 bytes per row, 2 rows
	assert.Equal(t, byte(0x80), payload[0], "black pixel at x=0 row 0")
	assert.Equal(t, byte(0x00), payload[1])
	assert.Equal(t, byte(0x00), payload[2])
	assert.Equal(t, byte(0x40), payload[3], "black pixel at x=9 row 1")
}

func TestDocumentKeyValueAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset()
	doc.KeyValue("Subtotal:", "220.00")

	out := string(doc.Bytes())
	// Skip the 2-byte init sequence and trailing LF.
	line := out[2 : len(out)-1]
	assert.Len(t, line, 32)
	assert.Equal(t, "Subtotal:", line[:9])
	assert.Equal(t, "220.00", line[len(line)-6:])
}

func TestDocumentKeyValueNonASCIIAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset()
	doc.KeyValue("Grahak: श्री शर्मा", "220.00")

	out := string(doc.Bytes())
	line := []rune(out[2 : len(out)-1])
	// Padding counts runes, not bytes, so the value stays on the right edge.
	assert.Len(t, line, 32)
	assert.Equal(t, "220.00", string(line[len(line)-6:]))
}

func TestDocumentColumnsRuneTruncation(t *testing.T) {
	doc := NewDocument(32)
	doc.Reset()
	doc.Columns([]int{6, 6}, []string{"नेत्रालयलंबा", "ok"})

	out := string(doc.Bytes())
	line := []rune(out[2 : len(out)-1])
	// The overlong cell is cut at a rune boundary, never mid-codepoint.
	assert.Equal(t, "नेत्रा", string(line[:6]))
	assert.Equal(t, "ok", string(line[len(line)-2:]))
}

func TestCapturePrinter(t *testing.T) {
	p := NewCapturePrinter()
	require.NoError(t, p.Print([]byte{0x01, 0x02}))
	require.NoError(t, p.Print([]byte{0x03}))

	jobs := p.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, []byte{0x01, 0x02}, jobs[0])
	assert.True(t, p.IsConnected())
}
