package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"cardstudio/internal/ai"
	"cardstudio/internal/domain"
	"cardstudio/internal/email"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// PeopleLister is the slice of the people repository the scanner needs.
type PeopleLister interface {
	List(ctx context.Context) ([]domain.Person, error)
}

// MessageGenerator produces the celebration message for one person.
type MessageGenerator interface {
	GenerateMessage(ctx context.Context, name string, occasion domain.Occasion) (ai.MessageResult, error)
	Available() bool
}

type CelebrationService struct {
	people   PeopleLister
	messages MessageGenerator
	sender   email.Client
	// adminEmail receives a notification copy for every celebration.
	adminEmail string
	logger     *slog.Logger
}

type ScanSummary struct {
	Message string `json:"message,omitempty"`
	// Error is set on misconfiguration: the scan is skipped but the
	// response stays 200-class.
	Error     string         `json:"error,omitempty"`
	AIStatus  string         `json:"aiStatus"`
	Processed []PersonResult `json:"processed"`
	Timestamp time.Time      `json:"timestamp"`
}

type PersonResult struct {
	Name         string             `json:"name"`
	Status       string             `json:"status"`
	Celebrations domain.Celebration `json:"celebrations"`
	AIGenerated  bool               `json:"isAIGenerated,omitempty"`
	Error        string             `json:"error,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusSkipped = "skipped"
	StatusError   = "error"
)

func NewCelebrationService(
	people PeopleLister,
	messages MessageGenerator,
	sender email.Client,
	adminEmail string,
	logger *slog.Logger,
) *CelebrationService {
	return &CelebrationService{
		people:     people,
		messages:   messages,
		sender:     sender,
		adminEmail: strings.TrimSpace(adminEmail),
		logger:     logger,
	}
}

// CelebrationFor reports which occasions the person celebrates on the given
// day. Matching is month+day in the server's local calendar; the year is
// ignored. A Feb 29 date also matches Feb 28 in non-leap years, so leap-day
// people are never skipped.
func CelebrationFor(p domain.Person, now time.Time) domain.Celebration {
	return domain.Celebration{
		IsBirthday:        dateMatches(p.DateOfBirth, now),
		IsWorkAnniversary: dateMatches(p.DateOfJoining, now),
	}
}

func dateMatches(date *time.Time, now time.Time) bool {
	if date == nil {
		return false
	}
	d := date.Local()
	if d.Month() == now.Month() && d.Day() == now.Day() {
		return true
	}
	if d.Month() == time.February && d.Day() == 29 &&
		now.Month() == time.February && now.Day() == 28 && !isLeapYear(now.Year()) {
		return true
	}
	return false
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Run scans all people for celebrations falling on the given day and sends
// the celebration and admin emails. Failures are isolated per person: one
// bad address or provider error is recorded in the summary and the scan
// moves on.
func (s *CelebrationService) Run(ctx context.Context, now time.Time) (ScanSummary, error) {
	summary := ScanSummary{
		AIStatus:  s.aiStatus(),
		Processed: []PersonResult{},
		Timestamp: now,
	}

	if s.adminEmail == "" || !emailPattern.MatchString(s.adminEmail) {
		summary.Message = "skipping celebration scan"
		summary.Error = "notification email not configured"
		s.logger.WarnContext(ctx, "celebration scan skipped", slog.String("reason", "missing or invalid notification email"))
		return summary, nil
	}

	people, err := s.people.List(ctx)
	if err != nil {
		return ScanSummary{}, fmt.Errorf("list people: %w", err)
	}

	for _, person := range people {
		celebration := CelebrationFor(person, now)
		if !celebration.Any() {
			continue
		}

		result := s.celebrate(ctx, person, celebration)
		summary.Processed = append(summary.Processed, result)

		if result.Status == StatusError {
			s.logger.ErrorContext(ctx, "celebration failed",
				slog.String("name", person.Name),
				slog.String("error", result.Error),
			)
			continue
		}
		s.logger.InfoContext(ctx, "celebration processed",
			slog.String("name", person.Name),
			slog.String("status", result.Status),
			slog.Bool("birthday", celebration.IsBirthday),
			slog.Bool("anniversary", celebration.IsWorkAnniversary),
		)
	}

	if len(summary.Processed) == 0 {
		summary.Message = "no celebrations today"
	}
	return summary, nil
}

func (s *CelebrationService) celebrate(ctx context.Context, person domain.Person, celebration domain.Celebration) PersonResult {
	result := PersonResult{
		Name:         person.Name,
		Celebrations: celebration,
	}

	recipient := strings.TrimSpace(person.Email)
	if !emailPattern.MatchString(recipient) {
		result.Status = StatusSkipped
		result.Error = fmt.Sprintf("invalid email address: %q", person.Email)
		return result
	}

	message, err := s.messages.GenerateMessage(ctx, person.Name, celebration.Occasion())
	if err != nil {
		result.Status = StatusError
		result.Error = fmt.Sprintf("generate message: %v", err)
		return result
	}
	result.AIGenerated = message.AIGenerated

	poster := email.Poster{
		Message:     message.Message,
		AIGenerated: message.AIGenerated,
	}

	if recipient != s.adminEmail {
		err := s.sender.SendCelebration(ctx, email.CelebrationEmail{
			To:          recipient,
			Name:        person.Name,
			Poster:      poster,
			Celebration: celebration,
		})
		if err != nil {
			result.Status = StatusError
			result.Error = fmt.Sprintf("send celebration email: %v", err)
			return result
		}
	}

	err = s.sender.SendCelebration(ctx, email.CelebrationEmail{
		To:          s.adminEmail,
		Name:        person.Name,
		Poster:      poster,
		Celebration: celebration,
		Admin:       true,
	})
	if err != nil {
		result.Status = StatusError
		result.Error = fmt.Sprintf("send admin email: %v", err)
		return result
	}

	result.Status = StatusSuccess
	return result
}

func (s *CelebrationService) aiStatus() string {
	if s.messages != nil && s.messages.Available() {
		return "AI generation active"
	}
	return "fallback messages active"
}
