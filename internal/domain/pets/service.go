package pets

import (
	"context"
	"strings"
	"time"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	UserID   int64
	Name     string
	Breed    string
	Gender   string
	Weight   float64
	Birthday time.Time
	Photo    string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Pet, error) {
	now := s.now()
	p := Pet{
		UserID:    in.UserID,
		Name:      strings.TrimSpace(in.Name),
		Breed:     strings.TrimSpace(in.Breed),
		Gender:    strings.TrimSpace(in.Gender),
		Weight:    in.Weight,
		Birthday:  in.Birthday,
		Photo:     strings.TrimSpace(in.Photo),
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Pet{}, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (Pet, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Pet, error) {
	return s.repo.ListByUser(ctx, userID)
}

type UpdateInput struct {
	// Punteros para merge parcial: nil = no tocar.
	Name     *string
	Breed    *string
	Gender   *string
	Weight   *float64
	Birthday *time.Time
	Photo    *string
}

// Update mergea solo los campos enviados sobre el registro existente.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Pet, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Pet{}, err
	}

	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		p.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Gender != nil {
		p.Gender = strings.TrimSpace(*in.Gender)
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.Birthday != nil {
		p.Birthday = *in.Birthday
	}
	if in.Photo != nil {
		p.Photo = strings.TrimSpace(*in.Photo)
	}

	p.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
