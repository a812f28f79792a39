package domain

import "time"

type CardType string

const (
	CardTypeBirthday    CardType = "birthday"
	CardTypeAnniversary CardType = "anniversary"
)

type Person struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Photo         string     `json:"photo,omitempty"`
	DateOfBirth   *time.Time `json:"dateOfBirth,omitempty"`
	DateOfJoining *time.Time `json:"dateOfJoining,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Template is a reusable card design: a background image plus a list of
// positioned elements. Elements is always materialized as a slice at this
// boundary; the encoded-string form only exists inside the repository layer.
type Template struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	URL       string    `json:"url"`
	CardType  CardType  `json:"cardType"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Elements  []Element `json:"elements"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

const (
	DefaultTemplateWidth  = 800
	DefaultTemplateHeight = 600
)

type Card struct {
	ID            string    `json:"id"`
	RecipientName string    `json:"recipientName"`
	Message       string    `json:"message"`
	PhotoURL      string    `json:"photoUrl,omitempty"`
	CardType      CardType  `json:"cardType"`
	ImageURL      string    `json:"imageUrl,omitempty"`
	PersonID      *string   `json:"personId,omitempty"`
	TemplateID    *string   `json:"templateId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Celebration is the per-person, per-scan match result. Both flags may be
// set at once.
type Celebration struct {
	IsBirthday        bool `json:"birthday"`
	IsWorkAnniversary bool `json:"workAnniversary"`
}

func (c Celebration) Any() bool {
	return c.IsBirthday || c.IsWorkAnniversary
}

type Occasion string

const (
	OccasionBirthday    Occasion = "birthday"
	OccasionAnniversary Occasion = "anniversary"
	OccasionBoth        Occasion = "both"
)

// Occasion collapses the two flags into the tag used by message generation
// and email subjects.
func (c Celebration) Occasion() Occasion {
	switch {
	case c.IsBirthday && c.IsWorkAnniversary:
		return OccasionBoth
	case c.IsWorkAnniversary:
		return OccasionAnniversary
	default:
		return OccasionBirthday
	}
}
