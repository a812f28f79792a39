package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"

	"cardstudio/internal/canvas"
	"cardstudio/internal/domain"
	"cardstudio/internal/repository"
)

// TemplateGetter is the slice of the template repository rendering needs.
type TemplateGetter interface {
	Get(ctx context.Context, id string) (domain.Template, error)
}

// BackgroundLoader fetches a template background from a data URI or URL.
type BackgroundLoader interface {
	Load(ctx context.Context, url string) (image.Image, error)
}

// RenderService rasterizes stored templates into PNG cards.
type RenderService struct {
	templates   TemplateGetter
	backgrounds BackgroundLoader
	logger      *slog.Logger
}

func NewRenderService(templates TemplateGetter, backgrounds BackgroundLoader, logger *slog.Logger) *RenderService {
	return &RenderService{
		templates:   templates,
		backgrounds: backgrounds,
		logger:      logger,
	}
}

// RenderPNG composes the template with the given name and message
// substituted into its text elements and returns the encoded PNG. A
// background that cannot be fetched degrades to the solid fallback fill
// rather than failing the render.
func (s *RenderService) RenderPNG(ctx context.Context, templateID, name, message string, width, height int) ([]byte, error) {
	tpl, err := s.templates.Get(ctx, templateID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("load template: %w", err)
	}

	if width <= 0 {
		width = tpl.Width
	}
	if height <= 0 {
		height = tpl.Height
	}

	var background image.Image
	if tpl.URL != "" {
		background, err = s.backgrounds.Load(ctx, tpl.URL)
		if err != nil {
			s.logger.WarnContext(ctx, "background load failed, rendering fallback",
				slog.String("template_id", templateID),
				slog.String("error", err.Error()),
			)
			background = nil
		}
	}

	ops := canvas.BuildPaintList(tpl, background, name, message, width, height)
	img, err := canvas.Rasterize(ops, width, height)
	if err != nil {
		return nil, fmt.Errorf("rasterize template: %w", err)
	}

	return canvas.EncodePNG(img)
}
