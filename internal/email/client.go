package email

import (
	"context"

	"cardstudio/internal/domain"
)

// Poster is the rendered card content carried by a celebration email. The
// image is either a data URI or an https URL; when it is empty the message
// text is rendered instead.
type Poster struct {
	ImageURL    string
	Message     string
	AIGenerated bool
}

type CelebrationEmail struct {
	To          string
	Name        string
	Poster      Poster
	Celebration domain.Celebration
	// Admin switches subject and body into the notification register sent
	// to the configured admin address.
	Admin bool
}

type Client interface {
	SendCelebration(ctx context.Context, msg CelebrationEmail) error
}
