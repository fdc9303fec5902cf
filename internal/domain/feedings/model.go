package feedings

import "time"

// Feeding es un registro alimentario de una mascota.
// Date es fecha calendario (columna DATE), sin componente horario.
type Feeding struct {
	ID    int64
	PetID int64 // FK a pets; borrar la mascota cascadea acá

	Type        string
	Description string
	Quantity    float64
	Date        time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
