package pets

import (
	"time"

	"petsync/internal/httpapi"
)

// Pet representa una mascota registrada, siempre asociada a un usuario.
// CreatedAt/UpdatedAt son bookkeeping interno, nunca se serializan.
type Pet struct {
	ID     int64
	UserID int64 // FK a users; borrar el usuario cascadea acá

	Name     string
	Breed    string
	Gender   string
	Weight   float64
	Birthday time.Time
	Photo    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot es la vista de la mascota embebida en los listados de
// registros hijos ({pet: ..., data: [...]}): sin timestamps, con user_id.
type Snapshot struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Name     string  `json:"name"`
	Breed    string  `json:"breed"`
	Gender   string  `json:"gender"`
	Weight   float64 `json:"weight"`
	Birthday string  `json:"birthday"`
	Photo    string  `json:"photo,omitempty"`
}

func ToSnapshot(p Pet) Snapshot {
	return Snapshot{
		ID:       p.ID,
		UserID:   p.UserID,
		Name:     p.Name,
		Breed:    p.Breed,
		Gender:   p.Gender,
		Weight:   p.Weight,
		Birthday: p.Birthday.Format(httpapi.DateLayout),
		Photo:    p.Photo,
	}
}
