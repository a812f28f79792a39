package canvas

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	fontOnce    sync.Once
	fontErr     error
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() error {
	fontOnce.Do(func() {
		regularFont, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse regular font: %w", fontErr)
			return
		}
		boldFont, fontErr = opentype.Parse(gobold.TTF)
		if fontErr != nil {
			fontErr = fmt.Errorf("parse bold font: %w", fontErr)
		}
	})
	return fontErr
}

// newFace maps a template font family onto one of the two bundled faces.
// Template families are CSS names the server does not ship; anything
// containing "bold" gets the bold face, everything else the regular one.
func newFace(family string, size float64) (font.Face, error) {
	if err := loadFonts(); err != nil {
		return nil, err
	}

	f := regularFont
	if strings.Contains(strings.ToLower(family), "bold") {
		f = boldFont
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build font face: %w", err)
	}
	return face, nil
}

// Rasterize executes a paint list onto a fresh surface. Ops run strictly in
// order, so within overlapping regions the later op's pixels win.
func Rasterize(ops []Op, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("rasterize: invalid surface %dx%d", width, height)
	}

	surface := imaging.New(width, height, color.NRGBA{0, 0, 0, 0xff})

	for _, op := range ops {
		switch o := op.(type) {
		case FillOp:
			draw.Draw(surface, surface.Bounds(), image.NewUniform(o.Color), image.Point{}, draw.Src)
		case BackgroundOp:
			stretched := imaging.Resize(o.Image, width, height, imaging.Lanczos)
			surface = imaging.Paste(surface, stretched, image.Pt(0, 0))
		case GradientOp:
			paintGradient(surface, o)
		case TextOp:
			if err := paintText(surface, o); err != nil {
				return nil, err
			}
		case RectOp:
			if err := paintRect(surface, o); err != nil {
				return nil, err
			}
		}
	}

	return surface, nil
}

// EncodePNG renders the surface to PNG bytes for download or email
// attachment.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func paintGradient(surface *image.NRGBA, op GradientOp) {
	b := surface.Bounds()
	if op.FromY >= b.Max.Y {
		return
	}
	from := op.FromY
	if from < b.Min.Y {
		from = b.Min.Y
	}

	span := float64(b.Max.Y - from)
	for y := from; y < b.Max.Y; y++ {
		t := 0.0
		if span > 0 {
			t = float64(y-from) / span
		}
		alpha := op.FromAlpha + (op.ToAlpha-op.FromAlpha)*t
		keep := 1 - alpha

		row := surface.Pix[surface.PixOffset(b.Min.X, y):surface.PixOffset(b.Max.X, y)]
		for i := 0; i < len(row); i += 4 {
			row[i] = uint8(float64(row[i]) * keep)
			row[i+1] = uint8(float64(row[i+1]) * keep)
			row[i+2] = uint8(float64(row[i+2]) * keep)
		}
	}
}

func paintText(surface *image.NRGBA, op TextOp) error {
	if op.Text == "" {
		return nil
	}

	face, err := newFace(op.Family, op.Size)
	if err != nil {
		return err
	}
	defer face.Close()

	width := float64(font.MeasureString(face, op.Text)) / 64
	startX := op.X - width/2

	if op.Shadow != nil {
		drawString(surface, face, op.Text, startX+op.Shadow.OffsetX, op.Y+op.Shadow.OffsetY, op.Shadow.Color)
	}
	drawString(surface, face, op.Text, startX, op.Y, op.Color)
	return nil
}

func paintRect(surface *image.NRGBA, op RectOp) error {
	rect := image.Rect(int(op.X), int(op.Y), int(op.X+op.W), int(op.Y+op.H))
	rect = rect.Intersect(surface.Bounds())
	if rect.Empty() {
		return nil
	}

	draw.Draw(surface, rect, image.NewUniform(op.Fill), image.Point{}, draw.Over)

	if op.Caption == "" {
		return nil
	}

	size := op.CaptionSize
	if size <= 0 {
		size = 14
	}
	face, err := newFace("", size)
	if err != nil {
		return err
	}
	defer face.Close()

	width := float64(font.MeasureString(face, op.Caption)) / 64
	cx := op.X + op.W/2 - width/2
	cy := op.Y + op.H/2 + size/3

	drawString(surface, face, op.Caption, cx, cy, op.CaptionColor)
	return nil
}

func drawString(dst *image.NRGBA, face font.Face, text string, x, y float64, col color.NRGBA) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	d.DrawString(text)
}

// FontMeasurer measures text with the bundled faces; it backs hit-testing in
// the interactive editor path.
type FontMeasurer struct{}

func (FontMeasurer) TextWidth(text, family string, size float64) float64 {
	face, err := newFace(family, size)
	if err != nil {
		// Rough average-glyph estimate keeps hit-testing usable even if
		// font parsing ever fails.
		return float64(len(text)) * size * 0.55
	}
	defer face.Close()
	return float64(font.MeasureString(face, text)) / 64
}
