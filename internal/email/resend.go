package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const resendSendURL = "https://api.resend.com/emails"

type ResendClient struct {
	apiKey       string
	from         string
	testOverride string
	endpoint     string
	logger       *slog.Logger
	httpClient   *http.Client
}

type resendErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Name       string `json:"name"`
	Message    string `json:"message"`
}

func NewResendClient(apiKey, from, testOverride string, logger *slog.Logger) (*ResendClient, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, fmt.Errorf("resend api key is required")
	}

	return &ResendClient{
		apiKey:       apiKey,
		from:         strings.TrimSpace(from),
		testOverride: strings.TrimSpace(testOverride),
		endpoint:     resendSendURL,
		logger:       logger,
		httpClient: &http.Client{
			Timeout: 12 * time.Second,
		},
	}, nil
}

func (c *ResendClient) SendCelebration(ctx context.Context, msg CelebrationEmail) error {
	recipient := strings.TrimSpace(msg.To)
	if recipient == "" {
		return fmt.Errorf("email recipient is required")
	}

	if c.testOverride != "" && recipient != c.testOverride {
		c.logger.InfoContext(ctx, "redirecting email to test override",
			slog.String("intended_recipient", recipient),
			slog.String("override", c.testOverride),
		)
		recipient = c.testOverride
	}

	payload := map[string]any{
		"from":    c.from,
		"to":      []string{recipient},
		"subject": Subject(msg.Name, msg.Celebration, msg.Admin),
		"html":    Body(msg),
	}

	if err := c.callResendJSON(ctx, payload); err != nil {
		c.logger.ErrorContext(ctx, "email send failed",
			slog.String("recipient", recipient),
			slog.String("name", msg.Name),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.logger.InfoContext(ctx, "email sent",
		slog.String("recipient", recipient),
		slog.String("name", msg.Name),
		slog.Bool("admin", msg.Admin),
	)
	return nil
}

func (c *ResendClient) callResendJSON(ctx context.Context, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call email api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var parsed resendErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil || parsed.Message == "" {
		return fmt.Errorf("email api error: status %d", resp.StatusCode)
	}
	return fmt.Errorf("email api error: %s (%s)", parsed.Message, parsed.Name)
}
