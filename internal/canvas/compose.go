package canvas

import (
	"image"
	"image/color"

	"cardstudio/internal/domain"
)

var (
	fallbackBackground = color.NRGBA{0xf0, 0xf0, 0xf0, 0xff}
	fallbackCaption    = color.NRGBA{0x99, 0x99, 0x99, 0xff}
	placeholderFill    = color.NRGBA{0x44, 0x44, 0x44, 0xff}
	placeholderText    = color.NRGBA{0xaa, 0xaa, 0xaa, 0xff}
	shadowBlack        = color.NRGBA{0x00, 0x00, 0x00, 0xb3}
	textWhite          = color.NRGBA{0xff, 0xff, 0xff, 0xff}
)

// Fonts rendered small after downscaling read smaller than the same
// point size at native resolution, so sizes above the threshold get a
// flat boost when the surface is scaled down.
const (
	fontBoostThreshold = 36.0
	fontBoostFactor    = 1.1
)

// BuildPaintList derives the full ordered drawing command list for one
// render of a template at targetW x targetH. background is the decoded
// template image, or nil when loading failed; a nil background paints the
// flat "Image not available" fallback and the elements still render.
//
// The function is pure: same inputs, same list. Element order is preserved
// exactly, later ops paint over earlier ones.
func BuildPaintList(tpl domain.Template, background image.Image, name, message string, targetW, targetH int) []Op {
	if targetW <= 0 {
		targetW = widthOr(tpl.Width, domain.DefaultTemplateWidth)
	}
	if targetH <= 0 {
		targetH = widthOr(tpl.Height, domain.DefaultTemplateHeight)
	}

	sx := float64(targetW) / float64(widthOr(tpl.Width, domain.DefaultTemplateWidth))
	sy := float64(targetH) / float64(widthOr(tpl.Height, domain.DefaultTemplateHeight))

	ops := make([]Op, 0, len(tpl.Elements)+3)

	if background != nil {
		ops = append(ops, BackgroundOp{Image: background})
	} else {
		ops = append(ops, FillOp{Color: fallbackBackground})
		ops = append(ops, TextOp{
			Text:  "Image not available",
			X:     float64(targetW) / 2,
			Y:     float64(targetH) / 2,
			Size:  24,
			Color: fallbackCaption,
		})
	}

	// Bottom-weighted darkening so light text stays readable over photos.
	ops = append(ops, GradientOp{FromY: targetH / 2, FromAlpha: 0.1, ToAlpha: 0.6})

	if len(tpl.Elements) == 0 {
		return append(ops, fallbackTextOps(name, message, targetW, targetH)...)
	}

	for _, el := range tpl.Elements {
		switch el.Type {
		case domain.ElementText:
			ops = append(ops, textElementOp(el, name, message, sx, sy))
		case domain.ElementImage:
			// Image slots never resolve real content here; both the
			// profile-photo sentinel and any other slot render as a
			// captioned placeholder box.
			ops = append(ops, RectOp{
				X:            el.X * sx,
				Y:            el.Y * sy,
				W:            el.BoxWidth() * sx,
				H:            el.BoxHeight() * sy,
				Fill:         placeholderFill,
				Caption:      el.Label,
				CaptionColor: placeholderText,
				CaptionSize:  14,
			})
		}
	}

	return ops
}

func textElementOp(el domain.Element, name, message string, sx, sy float64) TextOp {
	op := TextOp{
		Text:   Substitute(el.Label, name, message),
		X:      el.X * sx,
		Y:      el.Y * sy,
		Size:   scaleFontSize(el.TextFontSize(), sx, sy),
		Family: el.TextFontFamily(),
		Color:  ParseColor(el.TextColor(), textWhite),
	}

	if el.StrokeColor != "" {
		blur := el.StrokeWidth
		if blur <= 0 {
			blur = 2
		}
		op.Shadow = &Shadow{
			Color:   ParseColor(el.StrokeColor, shadowBlack),
			Blur:    blur,
			OffsetX: 1,
			OffsetY: 1,
		}
	}

	return op
}

// scaleFontSize maps a template-resolution font size onto the target
// surface, using the smaller axis factor so text never overflows the more
// compressed dimension.
func scaleFontSize(size, sx, sy float64) float64 {
	factor := sx
	if sy < sx {
		factor = sy
	}

	scaled := size * factor
	if scaled > fontBoostThreshold {
		scaled *= fontBoostFactor
	}
	return scaled
}

// fallbackTextOps is the element-free render: name and message centered with
// drop shadows at fixed relative offsets.
func fallbackTextOps(name, message string, targetW, targetH int) []Op {
	if name == "" {
		name = DefaultName
	}
	if message == "" {
		message = DefaultMessage
	}

	cx := float64(targetW) / 2
	cy := float64(targetH) / 2

	return []Op{
		TextOp{
			Text:   name,
			X:      cx,
			Y:      cy - 20,
			Size:   42,
			Color:  textWhite,
			Shadow: &Shadow{Color: shadowBlack, Blur: 6, OffsetX: 2, OffsetY: 2},
		},
		TextOp{
			Text:   message,
			X:      cx,
			Y:      cy + 40,
			Size:   28,
			Color:  textWhite,
			Shadow: &Shadow{Color: shadowBlack, Blur: 4, OffsetX: 2, OffsetY: 2},
		},
	}
}

func widthOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
