package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cardstudio/internal/database"
	"cardstudio/internal/domain"
)

type CardInput struct {
	RecipientName string
	Message       string
	PhotoURL      string
	CardType      domain.CardType
	ImageURL      string
	PersonID      *string
	TemplateID    *string
}

type CardRepository struct {
	db *gorm.DB
}

func NewCardRepository(db *gorm.DB) *CardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) List(ctx context.Context) ([]domain.Card, error) {
	var rows []database.Card
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	cards := make([]domain.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, cardToDomain(row))
	}
	return cards, nil
}

func (r *CardRepository) Create(ctx context.Context, in CardInput) (domain.Card, error) {
	row := database.Card{
		ID:            uuid.NewString(),
		RecipientName: in.RecipientName,
		Message:       in.Message,
		PhotoURL:      in.PhotoURL,
		CardType:      string(in.CardType),
		ImageURL:      in.ImageURL,
		PersonID:      in.PersonID,
		TemplateID:    in.TemplateID,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Card{}, fmt.Errorf("create card: %w", err)
	}
	return cardToDomain(row), nil
}

func cardToDomain(row database.Card) domain.Card {
	return domain.Card{
		ID:            row.ID,
		RecipientName: row.RecipientName,
		Message:       row.Message,
		PhotoURL:      row.PhotoURL,
		CardType:      domain.CardType(row.CardType),
		ImageURL:      row.ImageURL,
		PersonID:      row.PersonID,
		TemplateID:    row.TemplateID,
		CreatedAt:     row.CreatedAt,
	}
}
