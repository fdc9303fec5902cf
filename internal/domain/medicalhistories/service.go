package medicalhistories

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
	Date        time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (MedicalHistory, error) {
	now := s.now()
	m := MedicalHistory{
		PetID:       in.PetID,
		Type:        strings.TrimSpace(in.Type),
		Description: strings.TrimSpace(in.Description),
		Date:        in.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return MedicalHistory{}, err
	}
	m.ID = id
	return m, nil
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]MedicalHistory, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]MedicalHistory, error) {
	return s.repo.ListByPetBetween(ctx, petID, from, to)
}

type UpdateInput struct {
	// Punteros para merge parcial: nil = no tocar.
	Type        *string
	Description *string
	Date        *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (MedicalHistory, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return MedicalHistory{}, err
	}

	if in.Type != nil {
		m.Type = strings.TrimSpace(*in.Type)
	}
	if in.Description != nil {
		m.Description = strings.TrimSpace(*in.Description)
	}
	if in.Date != nil {
		m.Date = *in.Date
	}

	m.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, m); err != nil {
		return MedicalHistory{}, err
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
