package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"cardstudio/internal/domain"
)

const (
	// ModelFlux selects the deterministic provider directly: no AI call,
	// sub-second response.
	ModelFlux = "flux"

	defaultImagePrompt = "Create a 3D birthday card with colorful balloons and confetti"
	defaultImageSize   = 1080
)

type Config struct {
	GeminiAPIKey        string
	GeminiModel         string
	GeminiBaseURL       string
	PollinationsBaseURL string
	EnhanceTimeout      time.Duration
	// Seed overrides the random seed source, for deterministic tests.
	Seed func() int64
}

// Pipeline orchestrates the primary AI path and the deterministic fallback,
// normalizing both into one result shape. No caller ever branches on
// provider identity.
type Pipeline struct {
	text    textGenerator // nil when no credential is configured
	images  *Pollinations
	timeout time.Duration
	seed    func() int64
	logger  *slog.Logger
}

func NewPipeline(cfg Config, logger *slog.Logger) *Pipeline {
	p := &Pipeline{
		images:  NewPollinations(cfg.PollinationsBaseURL),
		timeout: cfg.EnhanceTimeout,
		seed:    cfg.Seed,
		logger:  logger,
	}
	if p.timeout <= 0 {
		p.timeout = 30 * time.Second
	}
	if p.seed == nil {
		p.seed = func() int64 { return rand.Int63n(1000000) }
	}
	if cfg.GeminiAPIKey != "" {
		p.text = NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	}
	return p
}

// Available reports whether the primary AI path has a credential.
func (p *Pipeline) Available() bool {
	return p.text != nil
}

type ImageRequest struct {
	Prompt string
	Width  int
	Height int
	Model  string
}

// ImageResult is the normalized generation output. At most one of ImageURL
// and ImageData is set; every current provider yields a URL.
type ImageResult struct {
	ImageURL    string
	ImageData   string // base64-encoded inline payload
	Text        string
	AIGenerated bool
	Fallback    bool
}

type MessageResult struct {
	Message     string
	AIGenerated bool
}

// GenerateImage runs the image pipeline. An explicit flux selection skips
// the primary path entirely; otherwise Gemini enhances the prompt first and
// any failure other than a timeout degrades to the deterministic provider.
// Timeouts are reported, not retried.
func (p *Pipeline) GenerateImage(ctx context.Context, req ImageRequest) (ImageResult, error) {
	prompt := req.Prompt
	if prompt == "" {
		prompt = defaultImagePrompt
	}
	width, height := req.Width, req.Height
	if width <= 0 {
		width = defaultImageSize
	}
	if height <= 0 {
		height = defaultImageSize
	}

	if req.Model == ModelFlux {
		return ImageResult{
			ImageURL: p.images.ImageURL(prompt, width, height, p.seed()),
		}, nil
	}

	if p.text == nil {
		return ImageResult{
			ImageURL: p.images.ImageURL(prompt, width, height, p.seed()),
			Fallback: true,
		}, nil
	}

	enhanceCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	enhanced, err := p.text.GenerateText(enhanceCtx, prompt, nil)
	if err != nil {
		if errors.Is(err, ErrTimeout) || errors.Is(enhanceCtx.Err(), context.DeadlineExceeded) {
			return ImageResult{}, fmt.Errorf("enhance prompt: %w", ErrTimeout)
		}

		p.logger.WarnContext(ctx, "primary generation failed, using deterministic provider",
			slog.String("error", err.Error()),
		)
		return ImageResult{
			ImageURL: p.images.ImageURL(prompt, width, height, p.seed()),
			Fallback: true,
		}, nil
	}

	if enhanced == "" {
		enhanced = prompt
	}

	return ImageResult{
		ImageURL:    p.images.ImageURL(enhanced, width, height, p.seed()),
		Text:        enhanced,
		AIGenerated: true,
	}, nil
}

var messageConfig = &GenerationConfig{
	Temperature:     0.7,
	TopK:            40,
	TopP:            0.95,
	MaxOutputTokens: 100,
}

// GenerateMessage produces a two-line celebration message. Every failure
// path lands on the fixed fallback string for the occasion; the returned
// error is always nil today but kept in the signature for callers that
// treat generation as fallible.
func (p *Pipeline) GenerateMessage(ctx context.Context, name string, occasion domain.Occasion) (MessageResult, error) {
	if p.text == nil {
		return MessageResult{Message: FallbackMessage(name, occasion)}, nil
	}

	genCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	text, err := p.text.GenerateText(genCtx, messagePrompt(name, occasion), messageConfig)
	if err != nil {
		p.logger.WarnContext(ctx, "message generation failed, using fallback",
			slog.String("name", name),
			slog.String("error", err.Error()),
		)
		return MessageResult{Message: FallbackMessage(name, occasion)}, nil
	}

	message := truncateTwoLines(text)
	if message == "" {
		return MessageResult{Message: FallbackMessage(name, occasion)}, nil
	}

	return MessageResult{Message: message, AIGenerated: true}, nil
}
