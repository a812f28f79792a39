package canvas

import (
	"cardstudio/internal/domain"
)

// Measurer reports rendered text width, needed to size text hit boxes.
// FontMeasurer is the production implementation.
type Measurer interface {
	TextWidth(text, family string, size float64) float64
}

// Slop around a text hit box, matching the selection outline drawn by the
// editor.
const textHitSlop = 5

// Elements must keep a visible sliver inside the surface while dragging.
const dragMargin = 10

// ToSurface converts a pointer position in display space to surface space by
// the inverse of the current display scale.
func ToSurface(screenX, screenY, displayW, displayH float64, surfaceW, surfaceH int) (float64, float64) {
	if displayW <= 0 || displayH <= 0 {
		return screenX, screenY
	}
	return screenX * float64(surfaceW) / displayW, screenY * float64(surfaceH) / displayH
}

// HitTest finds the topmost element under a surface-space point, walking
// elements in reverse paint order. Text boxes are measured against the
// substituted label, never the raw one: token substitution changes the
// rendered width, and the box must match what is on screen.
func HitTest(tpl domain.Template, name, message string, x, y float64, m Measurer) (domain.Element, bool) {
	for i := len(tpl.Elements) - 1; i >= 0; i-- {
		el := tpl.Elements[i]

		switch el.Type {
		case domain.ElementText:
			text := Substitute(el.Label, name, message)
			width := m.TextWidth(text, el.TextFontFamily(), el.TextFontSize())
			height := el.TextFontSize()

			// Text draws centered on X, so the hit box is centered too:
			// the box must cover exactly the glyphs on screen.
			if x >= el.X-width/2-textHitSlop && x <= el.X+width/2+textHitSlop &&
				y >= el.Y-height && y <= el.Y+dragMargin {
				return el, true
			}
		case domain.ElementImage:
			if x >= el.X && x <= el.X+el.BoxWidth() &&
				y >= el.Y && y <= el.Y+el.BoxHeight() {
				return el, true
			}
		}
	}

	return domain.Element{}, false
}

// MoveElement translates an element by a drag delta, clamped so it stays on
// the surface. Text elements cannot rise above y = fontSize, keeping the
// baseline visible. Returns false when the id is unknown.
func MoveElement(tpl *domain.Template, id string, dx, dy float64) bool {
	for i := range tpl.Elements {
		el := &tpl.Elements[i]
		if el.ID != id {
			continue
		}

		minY := 0.0
		if el.Type == domain.ElementText {
			minY = el.TextFontSize()
		}

		el.X = clamp(el.X+dx, 0, float64(tpl.Width)-dragMargin)
		el.Y = clamp(el.Y+dy, minY, float64(tpl.Height)-dragMargin)
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
