package canvas

import (
	"image"
	"image/color"
)

// Op is one drawing command in a paint list. Building the list is pure;
// only Rasterize touches pixels. Every op carries its complete style, so no
// paint state can leak from one op to the next.
type Op interface {
	op()
}

// FillOp paints the whole surface with a flat color.
type FillOp struct {
	Color color.NRGBA
}

// BackgroundOp stretches an already-decoded image over the whole surface.
type BackgroundOp struct {
	Image image.Image
}

// GradientOp overlays a vertical black gradient from FromY to the bottom
// edge, alpha ramping FromAlpha to ToAlpha. Used to keep text legible over
// busy photos.
type GradientOp struct {
	FromY     int
	FromAlpha float64
	ToAlpha   float64
}

// Shadow is the soft offset copy drawn behind text.
type Shadow struct {
	Color   color.NRGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// TextOp draws a single line of text centered on X at baseline Y.
type TextOp struct {
	Text   string
	X, Y   float64
	Size   float64
	Family string
	Color  color.NRGBA
	Shadow *Shadow
}

// RectOp draws a filled placeholder rectangle with an optional centered
// caption.
type RectOp struct {
	X, Y, W, H   float64
	Fill         color.NRGBA
	Caption      string
	CaptionColor color.NRGBA
	CaptionSize  float64
}

func (FillOp) op()       {}
func (BackgroundOp) op() {}
func (GradientOp) op()   {}
func (TextOp) op()       {}
func (RectOp) op()       {}
