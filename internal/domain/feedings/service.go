package feedings

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
	PetID       int64
	Type        string
	Description string
	Quantity    float64
	Date        time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Feeding, error) {
	now := s.now()
	f := Feeding{
		PetID:       in.PetID,
		Type:        strings.TrimSpace(in.Type),
		Description: strings.TrimSpace(in.Description),
		Quantity:    in.Quantity,
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, f)
	if err != nil {
		return Feeding{}, err
	}
	f.ID = id
	return f, nil
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]Feeding, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]Feeding, error) {
	return s.repo.ListByPetBetween(ctx, petID, from, to)
}

type UpdateInput struct {
	// Punteros para merge parcial: nil = no tocar.
	Type        *string
	Description *string
	Quantity    *float64
	Date        *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (Feeding, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Feeding{}, err
	}

	if in.Type != nil {
		f.Type = strings.TrimSpace(*in.Type)
	}
	if in.Description != nil {
		f.Description = strings.TrimSpace(*in.Description)
	}
	if in.Quantity != nil {
		f.Quantity = *in.Quantity
	}
	if in.Date != nil {
		f.Date = *in.Date
	}

	f.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, f); err != nil {
		return Feeding{}, err
	}
	return f, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
