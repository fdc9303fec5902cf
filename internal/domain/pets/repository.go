package pets

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("pet not found")
	// ErrUserNotFound: el user_id referenciado no existe (violación de FK).
	ErrUserNotFound = errors.New("referenced user not found")
)

type Repository interface {
	// Create inserta y devuelve el id autoasignado.
	Create(ctx context.Context, p Pet) (int64, error)
	GetByID(ctx context.Context, id int64) (Pet, error)
	// ListByUser devuelve las mascotas del usuario, por id ascendente.
	ListByUser(ctx context.Context, userID int64) ([]Pet, error)
	Update(ctx context.Context, p Pet) error
	// Delete borra en duro; el schema cascadea a los registros hijos.
	Delete(ctx context.Context, id int64) error
}
