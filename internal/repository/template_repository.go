package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"cardstudio/internal/database"
	"cardstudio/internal/domain"
)

type TemplateInput struct {
	Name     string
	URL      string
	CardType domain.CardType
	Width    int
	Height   int
	Elements []domain.Element
}

// TemplateRepository is the only place where template elements cross between
// the encoded column form and the materialized slice. Decode happens on every
// read, encode on every write; nothing deeper in the application sees the
// encoded form.
type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) List(ctx context.Context) ([]domain.Template, error) {
	var rows []database.Template
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	templates := make([]domain.Template, 0, len(rows))
	for _, row := range rows {
		tpl, err := templateToDomain(row)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}
	return templates, nil
}

func (r *TemplateRepository) Get(ctx context.Context, id string) (domain.Template, error) {
	var row database.Template
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Template{}, ErrNotFound
		}
		return domain.Template{}, fmt.Errorf("get template: %w", err)
	}
	return templateToDomain(row)
}

func (r *TemplateRepository) Create(ctx context.Context, in TemplateInput) (domain.Template, error) {
	encoded, err := domain.EncodeElements(in.Elements)
	if err != nil {
		return domain.Template{}, err
	}

	row := database.Template{
		ID:       uuid.NewString(),
		Name:     in.Name,
		URL:      in.URL,
		CardType: string(in.CardType),
		Width:    widthOrDefault(in.Width),
		Height:   heightOrDefault(in.Height),
		Elements: datatypes.JSON(encoded),
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Template{}, fmt.Errorf("create template: %w", err)
	}
	return templateToDomain(row)
}

func (r *TemplateRepository) Update(ctx context.Context, id string, in TemplateInput) (domain.Template, error) {
	var row database.Template
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Template{}, ErrNotFound
		}
		return domain.Template{}, fmt.Errorf("load template for update: %w", err)
	}

	encoded, err := domain.EncodeElements(in.Elements)
	if err != nil {
		return domain.Template{}, err
	}

	row.Name = in.Name
	row.URL = in.URL
	row.CardType = string(in.CardType)
	row.Width = widthOrDefault(in.Width)
	row.Height = heightOrDefault(in.Height)
	row.Elements = datatypes.JSON(encoded)

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return domain.Template{}, fmt.Errorf("update template: %w", err)
	}
	return templateToDomain(row)
}

func (r *TemplateRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&database.Template{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete template: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func widthOrDefault(w int) int {
	if w > 0 {
		return w
	}
	return domain.DefaultTemplateWidth
}

func heightOrDefault(h int) int {
	if h > 0 {
		return h
	}
	return domain.DefaultTemplateHeight
}

func templateToDomain(row database.Template) (domain.Template, error) {
	elements, err := domain.DecodeElements([]byte(row.Elements))
	if err != nil {
		return domain.Template{}, fmt.Errorf("template %s: %w", row.ID, err)
	}

	return domain.Template{
		ID:        row.ID,
		Name:      row.Name,
		URL:       row.URL,
		CardType:  domain.CardType(row.CardType),
		Width:     row.Width,
		Height:    row.Height,
		Elements:  elements,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}, nil
}
