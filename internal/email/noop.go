package email

import (
	"context"
	"log/slog"
)

type NoopClient struct {
	logger *slog.Logger
}

func NewNoopClient(logger *slog.Logger) *NoopClient {
	return &NoopClient{logger: logger}
}

func (c *NoopClient) SendCelebration(_ context.Context, msg CelebrationEmail) error {
	c.logger.Info("noop email send",
		slog.String("recipient", msg.To),
		slog.String("name", msg.Name),
		slog.Bool("admin", msg.Admin),
	)
	return nil
}

// NewClient returns a real sender when an API key is configured, otherwise
// a logging noop so the rest of the pipeline keeps working in development.
func NewClient(apiKey, from, testOverride string, logger *slog.Logger) (Client, error) {
	if apiKey == "" {
		logger.Warn("no email api key configured; using noop email client")
		return NewNoopClient(logger), nil
	}
	return NewResendClient(apiKey, from, testOverride, logger)
}
