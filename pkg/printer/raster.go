package printer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"unicode/utf8"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ThermalDPI is the standard resolution of thermal receipt printers.
const ThermalDPI = 203

const (
	glyphWidth = 7  // basicfont.Face7x13 advance
	lineHeight = 16 // glyph height plus leading
	topMargin  = 8
)

// RasterWidth converts a paper width in millimeters into a pixel width at
// thermal-printer resolution: round(width_mm x 203 / 25.4).
func RasterWidth(widthMM float64) int {
	return int(math.Round(widthMM * ThermalDPI / 25.4))
}

// RasterLine is one row of the rasterized receipt layout.
type RasterLine struct {
	Text  string
	Align int // AlignLeft, AlignCenter, AlignRight
}

// RenderImage draws the given lines into a monochrome-friendly image of the
// given pixel width. Overlong lines are clipped at the right edge rather
// than wrapped; wrapping is the layout builder's job.
func RenderImage(lines []RasterLine, widthPx int) image.Image {
	if widthPx < glyphWidth {
		widthPx = glyphWidth
	}
	height := topMargin*2 + len(lines)*lineHeight
	img := image.NewRGBA(image.Rect(0, 0, widthPx, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: basicfont.Face7x13,
	}

	y := topMargin + basicfont.Face7x13.Ascent
	for _, line := range lines {
		textWidth := glyphWidth * utf8.RuneCountInString(line.Text)
		x := 0
		switch line.Align {
		case AlignCenter:
			x = (widthPx - textWidth) / 2
		case AlignRight:
			x = widthPx - textWidth
		}
		if x < 0 {
			x = 0
		}
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(line.Text)
		y += lineHeight
	}

	return img
}

// Upscale enlarges a rendered receipt by the given factor for crispness on
// the print head, then restores contrast and edge sharpness lost to
// interpolation.
func Upscale(img image.Image, scale int) image.Image {
	if scale <= 1 {
		return img
	}
	gray := imaging.Grayscale(img)
	resized := imaging.Resize(gray, gray.Bounds().Dx()*scale, 0, imaging.Lanczos)
	contrasted := imaging.AdjustContrast(resized, 50)
	return imaging.Sharpen(contrasted, 2.0)
}

// ToRasterCommand converts an image into the ESC/POS GS v 0 raster bit-image
// command. Pixels darker than mid-gray become set bits.
func ToRasterCommand(img image.Image) []byte {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	widthBytes := (width + 7) / 8

	data := make([]byte, 0, 8+widthBytes*height)
	data = append(data, GS, 'v', '0', 0x00,
		byte(widthBytes&0xFF), byte(widthBytes>>8),
		byte(height&0xFF), byte(height>>8),
	)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for bx := 0; bx < widthBytes; bx++ {
			var b byte
			for bit := 0; bit < 8; bit++ {
				x := bounds.Min.X + bx*8 + bit
				if x >= bounds.Max.X {
					break
				}
				if isDark(img.At(x, y)) {
					b |= 1 << (7 - bit)
				}
			}
			data = append(data, b)
		}
	}

	return data
}

func isDark(c color.Color) bool {
	g := color.GrayModel.Convert(c).(color.Gray)
	return g.Y < 128
}
