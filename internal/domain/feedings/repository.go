package feedings

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("feeding not found")
	// ErrPetNotFound: el pet_id referenciado no existe (violación de FK).
	ErrPetNotFound = errors.New("referenced pet not found")
)

type Repository interface {
	// Create inserta y devuelve el id autoasignado.
	Create(ctx context.Context, f Feeding) (int64, error)
	GetByID(ctx context.Context, id int64) (Feeding, error)
	// ListByPet devuelve los registros de la mascota, por id ascendente.
	ListByPet(ctx context.Context, petID int64) ([]Feeding, error)
	// ListByPetBetween filtra por rango de fechas inclusivo en ambos extremos.
	ListByPetBetween(ctx context.Context, petID int64, from, to time.Time) ([]Feeding, error)
	Update(ctx context.Context, f Feeding) error
	Delete(ctx context.Context, id int64) error
}
