package canvas

import (
	"image"
	"math"
	"testing"

	"cardstudio/internal/domain"
)

func testTemplate(elements ...domain.Element) domain.Template {
	return domain.Template{
		Name:     "test",
		URL:      "https://example.com/bg.png",
		CardType: domain.CardTypeBirthday,
		Width:    800,
		Height:   600,
		Elements: elements,
	}
}

func TestBuildPaintList_PreservesElementOrder(t *testing.T) {
	tpl := testTemplate(
		domain.Element{ID: "a", Type: domain.ElementImage, X: 10, Y: 10, Label: "First"},
		domain.Element{ID: "b", Type: domain.ElementText, X: 20, Y: 40, Label: "Second"},
		domain.Element{ID: "c", Type: domain.ElementImage, X: 30, Y: 30, Label: "Third"},
	)

	ops := BuildPaintList(tpl, image.NewNRGBA(image.Rect(0, 0, 4, 4)), "Ana", "Hi", 800, 600)

	// background, gradient, then the three elements in array order
	if len(ops) != 5 {
		t.Fatalf("expected 5 ops, got %d", len(ops))
	}
	if _, ok := ops[0].(BackgroundOp); !ok {
		t.Fatalf("expected BackgroundOp first, got %T", ops[0])
	}
	if _, ok := ops[1].(GradientOp); !ok {
		t.Fatalf("expected GradientOp second, got %T", ops[1])
	}
	first, ok := ops[2].(RectOp)
	if !ok || first.Caption != "First" {
		t.Fatalf("expected first element op, got %#v", ops[2])
	}
	second, ok := ops[3].(TextOp)
	if !ok || second.Text != "Second" {
		t.Fatalf("expected second element op, got %#v", ops[3])
	}
	third, ok := ops[4].(RectOp)
	if !ok || third.Caption != "Third" {
		t.Fatalf("expected third element op, got %#v", ops[4])
	}
}

func TestBuildPaintList_NilBackgroundPaintsFallback(t *testing.T) {
	tpl := testTemplate(domain.Element{ID: "a", Type: domain.ElementText, X: 1, Y: 1, Label: "x"})

	ops := BuildPaintList(tpl, nil, "", "", 800, 600)

	if _, ok := ops[0].(FillOp); !ok {
		t.Fatalf("expected flat fill first, got %T", ops[0])
	}
	caption, ok := ops[1].(TextOp)
	if !ok || caption.Text != "Image not available" {
		t.Fatalf("expected unavailable caption, got %#v", ops[1])
	}

	// The element still renders: a failed background never aborts the paint.
	last, ok := ops[len(ops)-1].(TextOp)
	if !ok || last.Text != "x" {
		t.Fatalf("expected element op after fallback, got %#v", ops[len(ops)-1])
	}
}

func TestBuildPaintList_SubstitutesTextElements(t *testing.T) {
	tpl := testTemplate(domain.Element{
		ID: "t", Type: domain.ElementText, X: 400, Y: 100,
		Label: "Happy Birthday, {{name}}! {{message}}",
	})

	ops := BuildPaintList(tpl, nil, "Ana", "Cheers!", 800, 600)
	text := ops[len(ops)-1].(TextOp)
	if text.Text != "Happy Birthday, Ana! Cheers!" {
		t.Fatalf("unexpected substituted text: %q", text.Text)
	}
}

func TestBuildPaintList_ScalesPositionsAndFont(t *testing.T) {
	tpl := testTemplate(
		domain.Element{ID: "t", Type: domain.ElementText, X: 400, Y: 300, Label: "hi", FontSize: 24},
		domain.Element{ID: "i", Type: domain.ElementImage, X: 100, Y: 100, Label: "Slot", Width: 200, Height: 100},
	)

	// Half width, quarter height.
	ops := BuildPaintList(tpl, image.NewNRGBA(image.Rect(0, 0, 4, 4)), "", "", 400, 150)

	text := ops[2].(TextOp)
	if text.X != 200 || text.Y != 75 {
		t.Fatalf("text position not scaled per-axis: (%v, %v)", text.X, text.Y)
	}
	// Font scales by the smaller axis factor (0.25).
	if text.Size != 6 {
		t.Fatalf("expected font size 6, got %v", text.Size)
	}

	rect := ops[3].(RectOp)
	if rect.X != 50 || rect.Y != 25 || rect.W != 100 || rect.H != 25 {
		t.Fatalf("rect not scaled: %#v", rect)
	}
}

func TestBuildPaintList_FontBoostAboveThreshold(t *testing.T) {
	tpl := testTemplate(domain.Element{ID: "t", Type: domain.ElementText, X: 0, Y: 0, Label: "big", FontSize: 48})

	ops := BuildPaintList(tpl, nil, "", "", 800, 600)
	text := ops[len(ops)-1].(TextOp)

	want := 48 * fontBoostFactor
	if math.Abs(text.Size-want) > 1e-9 {
		t.Fatalf("expected boosted size %v, got %v", want, text.Size)
	}
}

func TestBuildPaintList_ProfilePhotoStaysPlaceholder(t *testing.T) {
	tpl := testTemplate(domain.Element{
		ID: "p", Type: domain.ElementImage, X: 50, Y: 50,
		Label: domain.ProfilePhotoLabel, Width: 200, Height: 200,
	})

	ops := BuildPaintList(tpl, nil, "Ana", "", 800, 600)
	rect, ok := ops[len(ops)-1].(RectOp)
	if !ok {
		t.Fatalf("expected placeholder rect, got %T", ops[len(ops)-1])
	}
	if rect.Caption != domain.ProfilePhotoLabel {
		t.Fatalf("expected profile photo caption, got %q", rect.Caption)
	}
}

func TestBuildPaintList_EmptyElementsFallsBackToTwoStrings(t *testing.T) {
	tpl := testTemplate()

	ops := BuildPaintList(tpl, nil, "Ana", "Cheers!", 800, 600)

	var texts []TextOp
	for _, op := range ops {
		if text, ok := op.(TextOp); ok && text.Text != "Image not available" {
			texts = append(texts, text)
		}
	}
	if len(texts) != 2 {
		t.Fatalf("expected exactly 2 fallback strings, got %d", len(texts))
	}
	if texts[0].Text != "Ana" || texts[1].Text != "Cheers!" {
		t.Fatalf("unexpected fallback texts: %q, %q", texts[0].Text, texts[1].Text)
	}
	if texts[0].Shadow == nil || texts[1].Shadow == nil {
		t.Fatalf("fallback strings must carry drop shadows")
	}
	if texts[0].Y >= texts[1].Y {
		t.Fatalf("name must render above message: %v >= %v", texts[0].Y, texts[1].Y)
	}
}

func TestBuildPaintList_ShadowOnlyWhenStroked(t *testing.T) {
	tpl := testTemplate(
		domain.Element{ID: "a", Type: domain.ElementText, X: 0, Y: 0, Label: "stroked", StrokeColor: "#000000", StrokeWidth: 2},
		domain.Element{ID: "b", Type: domain.ElementText, X: 0, Y: 0, Label: "plain"},
	)

	ops := BuildPaintList(tpl, nil, "", "", 800, 600)
	stroked := ops[len(ops)-2].(TextOp)
	plain := ops[len(ops)-1].(TextOp)

	if stroked.Shadow == nil {
		t.Fatalf("stroked element should carry a shadow")
	}
	// Style never leaks from one op to the next.
	if plain.Shadow != nil {
		t.Fatalf("plain element inherited shadow state")
	}
}
