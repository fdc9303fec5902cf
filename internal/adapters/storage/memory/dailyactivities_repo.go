package memory

import (
	"context"
	"sort"
	"time"

	"petsync/internal/domain/dailyactivities"
)

type DailyActivitiesRepo struct {
	s *Store
}

func NewDailyActivitiesRepo(s *Store) *DailyActivitiesRepo {
	return &DailyActivitiesRepo{s: s}
}

func (r *DailyActivitiesRepo) Create(_ context.Context, a dailyactivities.DailyActivity) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[a.PetID]; !ok {
		return 0, dailyactivities.ErrPetNotFound
	}

	a.ID = r.s.nextID()
	r.s.dailyActivities[a.ID] = a
	return a.ID, nil
}

func (r *DailyActivitiesRepo) GetByID(_ context.Context, id int64) (dailyactivities.DailyActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.dailyActivities[id]
	if !ok {
		return dailyactivities.DailyActivity{}, dailyactivities.ErrNotFound
	}
	return a, nil
}

func (r *DailyActivitiesRepo) ListByPet(_ context.Context, petID int64) ([]dailyactivities.DailyActivity, error) {
	return r.list(petID, nil, nil)
}

func (r *DailyActivitiesRepo) ListByPetBetween(_ context.Context, petID int64, from, to time.Time) ([]dailyactivities.DailyActivity, error) {
	return r.list(petID, &from, &to)
}

func (r *DailyActivitiesRepo) list(petID int64, from, to *time.Time) ([]dailyactivities.DailyActivity, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]dailyactivities.DailyActivity, 0)
	for _, a := range r.s.dailyActivities {
		if a.PetID != petID {
			continue
		}
		if from != nil && a.Date.Before(*from) {
			continue
		}
		if to != nil && a.Date.After(*to) {
			continue
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *DailyActivitiesRepo) Update(_ context.Context, a dailyactivities.DailyActivity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.dailyActivities[a.ID]
	if !ok {
		return dailyactivities.ErrNotFound
	}
	a.PetID = current.PetID
	r.s.dailyActivities[a.ID] = a
	return nil
}

func (r *DailyActivitiesRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.dailyActivities[id]; !ok {
		return dailyactivities.ErrNotFound
	}
	delete(r.s.dailyActivities, id)
	return nil
}
