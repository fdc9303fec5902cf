package users

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound = errors.New("user not found")
	// ErrDuplicate: email o teléfono ya registrados (unique a nivel schema).
	ErrDuplicate = errors.New("email or phone already registered")
)

type Repository interface {
	// Create inserta y devuelve el id autoasignado.
	Create(ctx context.Context, u User) (int64, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, u User) error
	// UpdatePassword pisa solo el hash, sin pasar por el merge genérico.
	UpdatePassword(ctx context.Context, id int64, hash string, updatedAt time.Time) error
	// Delete borra en duro; el schema cascadea a las mascotas del usuario.
	Delete(ctx context.Context, id int64) error
}
