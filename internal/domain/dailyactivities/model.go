package dailyactivities

import "time"

// DailyActivity es una actividad diaria de una mascota (paseo, juego...).
// Duration se mide en minutos. Date es fecha calendario.
type DailyActivity struct {
	ID    int64
	PetID int64 // FK a pets; borrar la mascota cascadea acá

	Type     string
	Duration int // minutos
	Notes    string
	Date     time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
