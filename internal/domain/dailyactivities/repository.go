package dailyactivities

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("daily activity not found")
	// ErrPetNotFound: el pet_id referenciado no existe (violación de FK).
	ErrPetNotFound = errors.New("referenced pet not found")
)

type Repository interface {
	Create(ctx context.Context, a DailyActivity) (int64, error)
	GetByID(ctx context.Context, id int64) (DailyActivity, error)
	ListByPet(ctx context.Context, petID int64) ([]DailyActivity, error)
	// ListByPetBetween filtra por rango de fechas inclusivo en ambos extremos.
	ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]DailyActivity, error)
	Update(ctx context.Context, a DailyActivity) error
	Delete(ctx context.Context, id int64) error
}
