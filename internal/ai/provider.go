// Package ai implements the card image and message generation pipeline: a
// generative text provider (Gemini) for prompt enhancement and celebration
// messages, and a deterministic image provider (Pollinations) that both
// serves as the fast path and catches every primary-path failure.
package ai

import (
	"context"
	"errors"
)

// textGenerator is the primary-path provider. GeminiClient implements it;
// tests substitute fakes.
type textGenerator interface {
	GenerateText(ctx context.Context, prompt string, cfg *GenerationConfig) (string, error)
}

// GenerationConfig tunes a text generation call. A nil config uses the
// provider defaults.
type GenerationConfig struct {
	Temperature     float64
	TopK            int
	TopP            float64
	MaxOutputTokens int
}

var (
	// ErrTimeout marks an enhancement call that exceeded its deadline.
	// It is surfaced to the caller, never silently retried.
	ErrTimeout = errors.New("generation timed out")

	// ErrModelNotFound marks an unsupported-model class of provider error.
	ErrModelNotFound = errors.New("model not found")
)
