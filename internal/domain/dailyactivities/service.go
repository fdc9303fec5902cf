package dailyactivities

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
	PetID    int64
	Type     string
	Duration int
	Notes    string
	Date     time.Time
}

func (s *Service) Create(ctx context.Context, in CreateInput) (DailyActivity, error) {
	now := s.now()
	a := DailyActivity{
		PetID:     in.PetID,
		Type:      strings.TrimSpace(in.Type),
		Duration:  in.Duration,
		Notes:     strings.TrimSpace(in.Notes),
		Date:      in.Date,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return DailyActivity{}, err
	}
	a.ID = id
	return a, nil
}

func (s *Service) ListByPet(ctx context.Context, petID int64) ([]DailyActivity, error) {
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]DailyActivity, error) {
	return s.repo.ListByPetBetween(ctx, petID, from, to)
}

type UpdateInput struct {
	// Punteros para merge parcial: nil = no tocar.
	Type     *string
	Duration *int
	Notes    *string
	Date     *time.Time
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (DailyActivity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return DailyActivity{}, err
	}

	if in.Type != nil {
		a.Type = strings.TrimSpace(*in.Type)
	}
	if in.Duration != nil {
		a.Duration = *in.Duration
	}
	if in.Notes != nil {
		a.Notes = strings.TrimSpace(*in.Notes)
	}
	if in.Date != nil {
		a.Date = *in.Date
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return DailyActivity{}, err
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
