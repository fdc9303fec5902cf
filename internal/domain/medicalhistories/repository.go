package medicalhistories

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("medical history not found")
	// ErrPetNotFound: el pet_id referenciado no existe (violación de FK).
	ErrPetNotFound = errors.New("referenced pet not found")
)

type Repository interface {
	Create(ctx context.Context, m MedicalHistory) (int64, error)
	GetByID(ctx context.Context, id int64) (MedicalHistory, error)
	ListByPet(ctx context.Context, petID int64) ([]MedicalHistory, error)
	// ListByPetBetween filtra por rango de fechas inclusivo en ambos extremos.
	ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]MedicalHistory, error)
	Update(ctx context.Context, m MedicalHistory) error
	Delete(ctx context.Context, id int64) error
}
