package domain

import (
	"encoding/json"
	"fmt"
)

type ElementType string

const (
	ElementText  ElementType = "text"
	ElementImage ElementType = "image"
)

// ProfilePhotoLabel marks the image slot the compositor never resolves into a
// real photo; it always renders as a captioned placeholder box.
const ProfilePhotoLabel = "Profile Photo"

// Element is one positioned unit within a template. The tag is Type; text
// elements use the font fields, image elements use Width/Height.
type Element struct {
	ID    string      `json:"id"`
	Type  ElementType `json:"type"`
	X     float64     `json:"x"`
	Y     float64     `json:"y"`
	Label string      `json:"label"`

	FontSize    float64 `json:"fontSize,omitempty"`
	FontFamily  string  `json:"fontFamily,omitempty"`
	Color       string  `json:"color,omitempty"`
	StrokeColor string  `json:"strokeColor,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`

	Width  float64 `json:"width,omitempty"`
	Height float64 `json:"height,omitempty"`
}

const (
	defaultFontSize   = 24
	defaultFontFamily = "Arial"
	defaultTextColor  = "#ffffff"
	defaultBoxSize    = 150
)

func (e Element) TextFontSize() float64 {
	if e.FontSize > 0 {
		return e.FontSize
	}
	return defaultFontSize
}

func (e Element) TextFontFamily() string {
	if e.FontFamily != "" {
		return e.FontFamily
	}
	return defaultFontFamily
}

func (e Element) TextColor() string {
	if e.Color != "" {
		return e.Color
	}
	return defaultTextColor
}

func (e Element) BoxWidth() float64 {
	if e.Width > 0 {
		return e.Width
	}
	return defaultBoxSize
}

func (e Element) BoxHeight() float64 {
	if e.Height > 0 {
		return e.Height
	}
	return defaultBoxSize
}

// DecodeElements turns the persisted elements payload into a materialized
// slice. The column historically held either a JSON array or a JSON string
// containing an encoded array; both forms decode to the same slice. Blank
// payloads decode to an empty slice, never nil.
func DecodeElements(raw []byte) ([]Element, error) {
	if len(raw) == 0 {
		return []Element{}, nil
	}

	var elements []Element
	if err := json.Unmarshal(raw, &elements); err == nil {
		return elements, nil
	}

	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("decode elements: %w", err)
	}
	if encoded == "" {
		return []Element{}, nil
	}
	if err := json.Unmarshal([]byte(encoded), &elements); err != nil {
		return nil, fmt.Errorf("decode string-encoded elements: %w", err)
	}
	return elements, nil
}

// EncodeElements writes elements as a plain JSON array. Encoding then
// decoding yields the original slice.
func EncodeElements(elements []Element) ([]byte, error) {
	if elements == nil {
		elements = []Element{}
	}
	raw, err := json.Marshal(elements)
	if err != nil {
		return nil, fmt.Errorf("encode elements: %w", err)
	}
	return raw, nil
}
