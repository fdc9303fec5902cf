package memory

import (
	"context"
	"sort"
	"time"

	"petsync/internal/domain/feedings"
)

type FeedingsRepo struct {
	s *Store
}

func NewFeedingsRepo(s *Store) *FeedingsRepo {
	return &FeedingsRepo{s: s}
}

func (r *FeedingsRepo) Create(_ context.Context, f feedings.Feeding) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[f.PetID]; !ok {
		return 0, feedings.ErrPetNotFound
	}

	f.ID = r.s.nextID()
	r.s.feedings[f.ID] = f
	return f.ID, nil
}

func (r *FeedingsRepo) GetByID(_ context.Context, id int64) (feedings.Feeding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	f, ok := r.s.feedings[id]
	if !ok {
		return feedings.Feeding{}, feedings.ErrNotFound
	}
	return f, nil
}

func (r *FeedingsRepo) ListByPet(_ context.Context, petID int64) ([]feedings.Feeding, error) {
	return r.list(petID, nil, nil)
}

func (r *FeedingsRepo) ListByPetBetween(_ context.Context, petID int64, from, to time.Time) ([]feedings.Feeding, error) {
	return r.list(petID, &from, &to)
}

func (r *FeedingsRepo) list(petID int64, from, to *time.Time) ([]feedings.Feeding, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]feedings.Feeding, 0)
	for _, f := range r.s.feedings {
		if f.PetID != petID {
			continue
		}
		if from != nil && f.Date.Before(*from) {
			continue
		}
		if to != nil && f.Date.After(*to) {
			continue
		}
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FeedingsRepo) Update(_ context.Context, f feedings.Feeding) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.feedings[f.ID]
	if !ok {
		return feedings.ErrNotFound
	}
	f.PetID = current.PetID // la mascota no cambia por update
	r.s.feedings[f.ID] = f
	return nil
}

func (r *FeedingsRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.feedings[id]; !ok {
		return feedings.ErrNotFound
	}
	delete(r.s.feedings, id)
	return nil
}
