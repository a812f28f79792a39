package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"cardstudio/internal/ai"
	"cardstudio/internal/domain"
	"cardstudio/internal/email"
)

type fakePeople struct {
	people []domain.Person
	err    error
}

func (f *fakePeople) List(context.Context) ([]domain.Person, error) {
	return f.people, f.err
}

type fakeMessages struct {
	available bool
	err       error
	failFor   string
}

func (f *fakeMessages) GenerateMessage(_ context.Context, name string, occasion domain.Occasion) (ai.MessageResult, error) {
	if f.err != nil && (f.failFor == "" || f.failFor == name) {
		return ai.MessageResult{}, f.err
	}
	return ai.MessageResult{Message: ai.FallbackMessage(name, occasion), AIGenerated: f.available}, nil
}

func (f *fakeMessages) Available() bool { return f.available }

type recordingSender struct {
	sent    []email.CelebrationEmail
	failFor string
}

func (r *recordingSender) SendCelebration(_ context.Context, msg email.CelebrationEmail) error {
	if r.failFor != "" && msg.To == r.failFor {
		return errors.New("smtp rejected")
	}
	r.sent = append(r.sent, msg)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	return &d
}

func TestCelebrationFor(t *testing.T) {
	tests := []struct {
		name   string
		person domain.Person
		now    time.Time
		want   domain.Celebration
	}{
		{
			name:   "birthday match ignores year",
			person: domain.Person{DateOfBirth: datePtr(1990, time.March, 14)},
			now:    time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local),
			want:   domain.Celebration{IsBirthday: true},
		},
		{
			name: "both occasions same day",
			person: domain.Person{
				DateOfBirth:   datePtr(1990, time.March, 14),
				DateOfJoining: datePtr(2020, time.March, 14),
			},
			now:  time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local),
			want: domain.Celebration{IsBirthday: true, IsWorkAnniversary: true},
		},
		{
			name:   "no dates means no celebration",
			person: domain.Person{},
			now:    time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local),
			want:   domain.Celebration{},
		},
		{
			name:   "different day misses",
			person: domain.Person{DateOfBirth: datePtr(1990, time.March, 14)},
			now:    time.Date(2026, time.March, 15, 9, 0, 0, 0, time.Local),
			want:   domain.Celebration{},
		},
		{
			name:   "feb 29 matches feb 28 in non-leap year",
			person: domain.Person{DateOfBirth: datePtr(1992, time.February, 29)},
			now:    time.Date(2026, time.February, 28, 9, 0, 0, 0, time.Local),
			want:   domain.Celebration{IsBirthday: true},
		},
		{
			name:   "feb 29 matches feb 29 in leap year",
			person: domain.Person{DateOfBirth: datePtr(1992, time.February, 29)},
			now:    time.Date(2028, time.February, 29, 9, 0, 0, 0, time.Local),
			want:   domain.Celebration{IsBirthday: true},
		},
		{
			name:   "feb 28 birthday does not double-fire on feb 29",
			person: domain.Person{DateOfBirth: datePtr(1990, time.February, 28)},
			now:    time.Date(2028, time.February, 29, 9, 0, 0, 0, time.Local),
			want:   domain.Celebration{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CelebrationFor(tt.person, tt.now); got != tt.want {
				t.Fatalf("CelebrationFor = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRunSkipsWhenAdminEmailMissing(t *testing.T) {
	people := &fakePeople{people: []domain.Person{{Name: "Ada", Email: "ada@example.com", DateOfBirth: datePtr(1990, time.March, 14)}}}
	sender := &recordingSender{}
	svc := NewCelebrationService(people, &fakeMessages{}, sender, "", testLogger())

	summary, err := svc.Run(context.Background(), time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if summary.Message == "" {
		t.Fatal("expected skip message in summary")
	}
	if summary.Error == "" {
		t.Fatal("expected error field on the misconfigured summary")
	}
	if len(sender.sent) != 0 {
		t.Fatalf("no emails should be sent, got %d", len(sender.sent))
	}
}

func TestRunIsolatesPerPersonFailures(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local)
	people := &fakePeople{people: []domain.Person{
		{Name: "Ada", Email: "ada@example.com", DateOfBirth: datePtr(1990, time.March, 14)},
		{Name: "Grace", Email: "not-an-email", DateOfBirth: datePtr(1985, time.March, 14)},
		{Name: "Linus", Email: "linus@example.com", DateOfJoining: datePtr(2019, time.March, 14)},
		{Name: "OffDay", Email: "off@example.com", DateOfBirth: datePtr(1990, time.July, 1)},
	}}
	sender := &recordingSender{}
	svc := NewCelebrationService(people, &fakeMessages{available: true}, sender, "admin@example.com", testLogger())

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(summary.Processed) != 3 {
		t.Fatalf("Processed = %d entries, want 3", len(summary.Processed))
	}

	byName := map[string]PersonResult{}
	for _, r := range summary.Processed {
		byName[r.Name] = r
	}
	if byName["Ada"].Status != StatusSuccess || !byName["Ada"].AIGenerated {
		t.Fatalf("Ada result: %+v", byName["Ada"])
	}
	if byName["Grace"].Status != StatusSkipped {
		t.Fatalf("Grace should be skipped for invalid email: %+v", byName["Grace"])
	}
	if byName["Linus"].Status != StatusSuccess || !byName["Linus"].Celebrations.IsWorkAnniversary {
		t.Fatalf("Linus result: %+v", byName["Linus"])
	}

	// Ada and Linus each get a celebration email plus an admin copy.
	if len(sender.sent) != 4 {
		t.Fatalf("sent %d emails, want 4", len(sender.sent))
	}
	adminCount := 0
	for _, msg := range sender.sent {
		if msg.Admin {
			adminCount++
			if msg.To != "admin@example.com" {
				t.Fatalf("admin email went to %q", msg.To)
			}
		}
	}
	if adminCount != 2 {
		t.Fatalf("admin emails = %d, want 2", adminCount)
	}
}

func TestRunSendErrorDoesNotStopScan(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local)
	people := &fakePeople{people: []domain.Person{
		{Name: "Ada", Email: "ada@example.com", DateOfBirth: datePtr(1990, time.March, 14)},
		{Name: "Linus", Email: "linus@example.com", DateOfBirth: datePtr(1970, time.March, 14)},
	}}
	sender := &recordingSender{failFor: "ada@example.com"}
	svc := NewCelebrationService(people, &fakeMessages{}, sender, "admin@example.com", testLogger())

	summary, err := svc.Run(context.Background(), now)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(summary.Processed) != 2 {
		t.Fatalf("Processed = %d, want 2", len(summary.Processed))
	}
	if summary.Processed[0].Status != StatusError {
		t.Fatalf("Ada should be an error entry: %+v", summary.Processed[0])
	}
	if summary.Processed[1].Status != StatusSuccess {
		t.Fatalf("Linus should still succeed: %+v", summary.Processed[1])
	}
}

func TestRunAdminRecipientGetsOneEmail(t *testing.T) {
	now := time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local)
	people := &fakePeople{people: []domain.Person{
		{Name: "Admin", Email: "admin@example.com", DateOfBirth: datePtr(1990, time.March, 14)},
	}}
	sender := &recordingSender{}
	svc := NewCelebrationService(people, &fakeMessages{}, sender, "admin@example.com", testLogger())

	if _, err := svc.Run(context.Background(), now); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("sent %d emails, want 1 when recipient is the admin", len(sender.sent))
	}
	if !sender.sent[0].Admin {
		t.Fatal("the single email should be the admin notification")
	}
}

func TestRunNoMatches(t *testing.T) {
	people := &fakePeople{people: []domain.Person{
		{Name: "Ada", Email: "ada@example.com", DateOfBirth: datePtr(1990, time.July, 1)},
	}}
	sender := &recordingSender{}
	svc := NewCelebrationService(people, &fakeMessages{}, sender, "admin@example.com", testLogger())

	summary, err := svc.Run(context.Background(), time.Date(2026, time.March, 14, 9, 0, 0, 0, time.Local))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(summary.Processed) != 0 {
		t.Fatalf("Processed = %d, want 0", len(summary.Processed))
	}
	if summary.Message != "no celebrations today" {
		t.Fatalf("Message = %q", summary.Message)
	}
	if summary.AIStatus != "fallback messages active" {
		t.Fatalf("AIStatus = %q", summary.AIStatus)
	}
}
