package canvas

import (
	"testing"

	"cardstudio/internal/domain"
)

// fixedMeasurer returns a deterministic width so hit boxes are predictable.
type fixedMeasurer struct {
	perChar float64
	last    string
}

func (m *fixedMeasurer) TextWidth(text, _ string, _ float64) float64 {
	m.last = text
	return float64(len(text)) * m.perChar
}

func TestHitTest_TopmostElementWins(t *testing.T) {
	tpl := testTemplate(
		domain.Element{ID: "under", Type: domain.ElementImage, X: 100, Y: 100, Width: 200, Height: 200, Label: "Under"},
		domain.Element{ID: "over", Type: domain.ElementImage, X: 150, Y: 150, Width: 200, Height: 200, Label: "Over"},
	)

	el, ok := HitTest(tpl, "", "", 200, 200, &fixedMeasurer{perChar: 10})
	if !ok {
		t.Fatalf("expected a hit in the overlap region")
	}
	if el.ID != "over" {
		t.Fatalf("expected the later-painted element, got %q", el.ID)
	}
}

func TestHitTest_TextUsesSubstitutedLabel(t *testing.T) {
	tpl := testTemplate(domain.Element{
		ID: "t", Type: domain.ElementText, X: 100, Y: 100,
		Label: "{{name}}", FontSize: 20,
	})

	m := &fixedMeasurer{perChar: 10}
	// "Ana" is 3 chars * 10px centered on x=100: box spans x 80..120.
	_, ok := HitTest(tpl, "Ana", "", 118, 95, m)
	if !ok {
		t.Fatalf("expected hit inside substituted text box")
	}
	if m.last != "Ana" {
		t.Fatalf("hit-test measured %q, want substituted text", m.last)
	}

	// x=130 is outside the substituted box but inside the box the raw
	// label "{{name}}" (80px wide, spanning 55..145) would produce, so a
	// hit here would mean the unsubstituted text was measured.
	if _, ok := HitTest(tpl, "Ana", "", 130, 95, m); ok {
		t.Fatalf("expected miss beyond substituted text width")
	}
}

func TestHitTest_TextBoxMatchesCenteredDraw(t *testing.T) {
	// Text paints centered on X, so glyph ink for an 11-char string at
	// 10px/char centered on x=200 spans x 145..255. Clicks on either half
	// of the visible glyphs must hit, and the region just right of the
	// anchor-plus-width of a left-anchored box must miss.
	tpl := testTemplate(domain.Element{
		ID: "t", Type: domain.ElementText, X: 200, Y: 100,
		Label: "Hello there", FontSize: 24,
	})
	m := &fixedMeasurer{perChar: 10}

	if _, ok := HitTest(tpl, "", "", 150, 95, m); !ok {
		t.Fatalf("expected hit on the left half of the rendered text")
	}
	if _, ok := HitTest(tpl, "", "", 250, 95, m); !ok {
		t.Fatalf("expected hit on the right half of the rendered text")
	}
	if _, ok := HitTest(tpl, "", "", 280, 95, m); ok {
		t.Fatalf("expected miss in the dead zone beyond the glyphs")
	}
}

func TestHitTest_MissReturnsFalse(t *testing.T) {
	tpl := testTemplate(domain.Element{ID: "i", Type: domain.ElementImage, X: 10, Y: 10, Width: 50, Height: 50, Label: "x"})

	if _, ok := HitTest(tpl, "", "", 500, 500, &fixedMeasurer{perChar: 10}); ok {
		t.Fatalf("expected no hit far from any element")
	}
}

func TestMoveElement_DragThenRehit(t *testing.T) {
	tpl := testTemplate(domain.Element{ID: "i", Type: domain.ElementImage, X: 100, Y: 100, Width: 50, Height: 50, Label: "x"})
	m := &fixedMeasurer{perChar: 10}

	if _, ok := HitTest(tpl, "", "", 120, 120, m); !ok {
		t.Fatalf("expected initial hit")
	}

	if !MoveElement(&tpl, "i", 200, 150) {
		t.Fatalf("move failed for known id")
	}

	el, ok := HitTest(tpl, "", "", 320, 270, m)
	if !ok || el.ID != "i" {
		t.Fatalf("expected re-hit at translated point, got ok=%v el=%q", ok, el.ID)
	}
	if _, ok := HitTest(tpl, "", "", 120, 120, m); ok {
		t.Fatalf("old position should no longer hit")
	}
}

func TestMoveElement_ClampsToSurface(t *testing.T) {
	tpl := testTemplate(domain.Element{ID: "i", Type: domain.ElementImage, X: 100, Y: 100, Width: 50, Height: 50, Label: "x"})

	MoveElement(&tpl, "i", 10000, 10000)
	el := tpl.Elements[0]
	if el.X < 0 || el.X > float64(tpl.Width) || el.Y < 0 || el.Y > float64(tpl.Height) {
		t.Fatalf("element dragged out of bounds: (%v, %v)", el.X, el.Y)
	}

	MoveElement(&tpl, "i", -10000, -10000)
	el = tpl.Elements[0]
	if el.X != 0 || el.Y != 0 {
		t.Fatalf("expected clamp to origin, got (%v, %v)", el.X, el.Y)
	}
}

func TestMoveElement_TextCannotRiseAboveBaseline(t *testing.T) {
	tpl := testTemplate(domain.Element{ID: "t", Type: domain.ElementText, X: 100, Y: 100, Label: "hi", FontSize: 32})

	MoveElement(&tpl, "t", 0, -10000)
	if got := tpl.Elements[0].Y; got != 32 {
		t.Fatalf("expected text clamped at y=fontSize, got %v", got)
	}
}

func TestMoveElement_UnknownID(t *testing.T) {
	tpl := testTemplate()
	if MoveElement(&tpl, "missing", 1, 1) {
		t.Fatalf("expected false for unknown element id")
	}
}

func TestToSurface_InvertsDisplayScale(t *testing.T) {
	// Surface 800x600 shown at 400x300: a pointer at (200, 150) maps to
	// the surface center.
	x, y := ToSurface(200, 150, 400, 300, 800, 600)
	if x != 400 || y != 300 {
		t.Fatalf("unexpected surface point: (%v, %v)", x, y)
	}
}
