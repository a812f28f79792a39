package database

import (
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Person is a card recipient.
type Person struct {
	ID            string `gorm:"primaryKey;size:36"`
	Name          string `gorm:"size:255;not null"`
	Email         string `gorm:"size:255;not null"`
	Photo         string `gorm:"type:text"`
	DateOfBirth   *time.Time
	DateOfJoining *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Template stores a card design. Elements is a JSONB column holding the
// element array; decoding to the domain slice happens in the repository.
type Template struct {
	ID        string `gorm:"primaryKey;size:36"`
	Name      string `gorm:"size:255;not null"`
	URL       string `gorm:"column:url;type:text"`
	CardType  string `gorm:"size:32;not null;default:birthday"`
	Width     int    `gorm:"not null;default:800"`
	Height    int    `gorm:"not null;default:600"`
	Elements  datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Card is a saved, generated card referencing its optional source person and
// template.
type Card struct {
	ID            string `gorm:"primaryKey;size:36"`
	RecipientName string `gorm:"size:255;not null"`
	Message       string `gorm:"type:text"`
	PhotoURL      string `gorm:"type:text"`
	CardType      string `gorm:"size:32;not null;default:birthday"`
	ImageURL      string `gorm:"type:text"`
	PersonID      *string `gorm:"size:36;index"`
	Person        *Person
	TemplateID    *string `gorm:"size:36;index"`
	Template      *Template
	CreatedAt     time.Time
}

// Migrate applies the schema for all persisted entities.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Person{}, &Template{}, &Card{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
