package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cardstudio/internal/database"
	"cardstudio/internal/domain"
)

type PersonInput struct {
	Name          string
	Email         string
	Photo         string
	DateOfBirth   *time.Time
	DateOfJoining *time.Time
}

type PeopleRepository struct {
	db *gorm.DB
}

func NewPeopleRepository(db *gorm.DB) *PeopleRepository {
	return &PeopleRepository{db: db}
}

func (r *PeopleRepository) List(ctx context.Context) ([]domain.Person, error) {
	var rows []database.Person
	if err := r.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list people: %w", err)
	}

	people := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		people = append(people, personToDomain(row))
	}
	return people, nil
}

func (r *PeopleRepository) Get(ctx context.Context, id string) (domain.Person, error) {
	var row database.Person
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Person{}, ErrNotFound
		}
		return domain.Person{}, fmt.Errorf("get person: %w", err)
	}
	return personToDomain(row), nil
}

func (r *PeopleRepository) Create(ctx context.Context, in PersonInput) (domain.Person, error) {
	row := database.Person{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Email:         in.Email,
		Photo:         in.Photo,
		DateOfBirth:   in.DateOfBirth,
		DateOfJoining: in.DateOfJoining,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Person{}, fmt.Errorf("create person: %w", err)
	}
	return personToDomain(row), nil
}

func (r *PeopleRepository) Update(ctx context.Context, id string, in PersonInput) (domain.Person, error) {
	var row database.Person
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Person{}, ErrNotFound
		}
		return domain.Person{}, fmt.Errorf("load person for update: %w", err)
	}

	row.Name = in.Name
	row.Email = in.Email
	row.Photo = in.Photo
	row.DateOfBirth = in.DateOfBirth
	row.DateOfJoining = in.DateOfJoining

	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return domain.Person{}, fmt.Errorf("update person: %w", err)
	}
	return personToDomain(row), nil
}

func (r *PeopleRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&database.Person{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete person: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func personToDomain(row database.Person) domain.Person {
	return domain.Person{
		ID:            row.ID,
		Name:          row.Name,
		Email:         row.Email,
		Photo:         row.Photo,
		DateOfBirth:   row.DateOfBirth,
		DateOfJoining: row.DateOfJoining,
		CreatedAt:     row.CreatedAt,
		UpdatedAt:     row.UpdatedAt,
	}
}
