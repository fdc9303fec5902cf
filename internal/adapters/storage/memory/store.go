// Package memory implementa los repositorios sobre maps en memoria.
// Sirve para correr sin Postgres (DB_DSN vacío) y para los tests de
// integración del router. Reproduce las reglas del schema: unique de
// email/teléfono, FKs y borrado en cascada.
package memory

import (
	"sync"

	"petsync/internal/domain/dailyactivities"
	"petsync/internal/domain/feedings"
	"petsync/internal/domain/medicalhistories"
	"petsync/internal/domain/pets"
	"petsync/internal/domain/users"
)

// Store es el estado compartido por los cinco repos. Un solo mutex
// alcanza: las operaciones son cortas y el uso es dev/test.
type Store struct {
	mu sync.RWMutex

	seq int64

	users            map[int64]users.User
	pets             map[int64]pets.Pet
	feedings         map[int64]feedings.Feeding
	medicalHistories map[int64]medicalhistories.MedicalHistory
	dailyActivities  map[int64]dailyactivities.DailyActivity
}

func NewStore() *Store {
	return &Store{
		users:            make(map[int64]users.User),
		pets:             make(map[int64]pets.Pet),
		feedings:         make(map[int64]feedings.Feeding),
		medicalHistories: make(map[int64]medicalhistories.MedicalHistory),
		dailyActivities:  make(map[int64]dailyactivities.DailyActivity),
	}
}

// nextID emula el BIGSERIAL: una secuencia global alcanza.
// Llamar con el mutex tomado.
func (s *Store) nextID() int64 {
	s.seq++
	return s.seq
}

// deletePetChildren borra los registros hijos de una mascota.
// Llamar con el mutex tomado.
func (s *Store) deletePetChildren(petID int64) {
	for id, f := range s.feedings {
		if f.PetID == petID {
			delete(s.feedings, id)
		}
	}
	for id, m := range s.medicalHistories {
		if m.PetID == petID {
			delete(s.medicalHistories, id)
		}
	}
	for id, a := range s.dailyActivities {
		if a.PetID == petID {
			delete(s.dailyActivities, id)
		}
	}
}
