package memory

import (
	"context"
	"sort"
	"time"

	"petsync/internal/domain/medicalhistories"
)

type MedicalHistoriesRepo struct {
	s *Store
}

func NewMedicalHistoriesRepo(s *Store) *MedicalHistoriesRepo {
	return &MedicalHistoriesRepo{s: s}
}

func (r *MedicalHistoriesRepo) Create(_ context.Context, m medicalhistories.MedicalHistory) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[m.PetID]; !ok {
		return 0, medicalhistories.ErrPetNotFound
	}

	m.ID = r.s.nextID()
	r.s.medicalHistories[m.ID] = m
	return m.ID, nil
}

func (r *MedicalHistoriesRepo) GetByID(_ context.Context, id int64) (medicalhistories.MedicalHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.medicalHistories[id]
	if !ok {
		return medicalhistories.MedicalHistory{}, medicalhistories.ErrNotFound
	}
	return m, nil
}

func (r *MedicalHistoriesRepo) ListByPet(_ context.Context, petID int64) ([]medicalhistories.MedicalHistory, error) {
	return r.list(petID, nil, nil)
}

func (r *MedicalHistoriesRepo) ListByPetBetween(_ context.Context, petID int64, from, to time.Time) ([]medicalhistories.MedicalHistory, error) {
	return r.list(petID, &from, &to)
}

func (r *MedicalHistoriesRepo) list(petID int64, from, to *time.Time) ([]medicalhistories.MedicalHistory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]medicalhistories.MedicalHistory, 0)
	for _, m := range r.s.medicalHistories {
		if m.PetID != petID {
			continue
		}
		if from != nil && m.Date.Before(*from) {
			continue
		}
		if to != nil && m.Date.After(*to) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MedicalHistoriesRepo) Update(_ context.Context, m medicalhistories.MedicalHistory) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.medicalHistories[m.ID]
	if !ok {
		return medicalhistories.ErrNotFound
	}
	m.PetID = current.PetID
	r.s.medicalHistories[m.ID] = m
	return nil
}

func (r *MedicalHistoriesRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.medicalHistories[id]; !ok {
		return medicalhistories.ErrNotFound
	}
	delete(r.s.medicalHistories, id)
	return nil
}
