package medicalhistories

import "time"

// MedicalHistory es un registro médico de una mascota (vacuna, consulta,
// cirugía, etc.). Date es fecha calendario, sin componente horario.
type MedicalHistory struct {
	ID    int64
	PetID int64 // FK a pets; borrar la mascota cascadea acá

	Type        string
	Description string
	Date        time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
