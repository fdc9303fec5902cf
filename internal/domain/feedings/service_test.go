package feedings

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petsync/internal/httpapi"
)

type testRepo struct {
	mu       sync.Mutex
	seq      int64
	feedings map[int64]Feeding

	petIDs map[int64]bool
}

func newTestRepo(petIDs ...int64) *testRepo {
	r := &testRepo{feedings: make(map[int64]Feeding), petIDs: make(map[int64]bool)}
	for _, id := range petIDs {
		r.petIDs[id] = true
	}
	return r
}

func (r *testRepo) Create(_ context.Context, f Feeding) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.petIDs[f.PetID] {
		return 0, ErrPetNotFound
	}
	r.seq++
	f.ID = r.seq
	r.feedings[f.ID] = f
	return f.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Feeding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.feedings[id]
	if !ok {
		return Feeding{}, ErrNotFound
	}
	return f, nil
}

func (r *testRepo) ListByPet(_ context.Context, petID int64) ([]Feeding, error) {
	return r.list(petID, nil, nil)
}

func (r *testRepo) ListByPetBetween(_ context.Context, petID int64, from, to time.Time) ([]Feeding, error) {
	return r.list(petID, &from, &to)
}

func (r *testRepo) list(petID int64, from, to *time.Time) ([]Feeding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Feeding, 0)
	for _, f := range r.feedings {
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

func (r *testRepo) Update(_ context.Context, f Feeding) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.feedings[f.ID]; !ok {
		return ErrNotFound
	}
	r.feedings[f.ID] = f
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.feedings[id]; !ok {
		return ErrNotFound
	}
	delete(r.feedings, id)
	return nil
}

func day(s string) time.Time {
	t, err := time.Parse(httpapi.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreateUnknownPet(t *testing.T) {
	svc := NewService(newTestRepo(1))

	_, err := svc.Create(context.Background(), CreateInput{
		PetID: 99, Type: "balanceado", Description: "ración diaria",
		Quantity: 300, Date: day("2025-04-01"),
	})
	assert.ErrorIs(t, err, ErrPetNotFound)
}

func TestListByPetBetweenInclusiveBounds(t *testing.T) {
	svc := NewService(newTestRepo(1))

	for _, d := range []string{"2025-04-01", "2025-04-05", "2025-04-10"} {
		_, err := svc.Create(context.Background(), CreateInput{
			PetID: 1, Type: "balanceado", Description: "ración",
			Quantity: 300, Date: day(d),
		})
		require.NoError(t, err)
	}

	// ambos extremos son inclusivos
	list, err := svc.ListByPetBetween(context.Background(), 1, day("2025-04-01"), day("2025-04-05"))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, day("2025-04-01"), list[0].Date)
	assert.Equal(t, day("2025-04-05"), list[1].Date)

	// rango sin registros: lista vacía, no error
	list, err = svc.ListByPetBetween(context.Background(), 1, day("2025-05-01"), day("2025-05-31"))
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestUpdateMergesOnlySentFields(t *testing.T) {
	svc := NewService(newTestRepo(1))

	created, err := svc.Create(context.Background(), CreateInput{
		PetID: 1, Type: "balanceado", Description: "ración diaria",
		Quantity: 300, Date: day("2025-04-01"),
	})
	require.NoError(t, err)

	qty := 350.0
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Quantity: &qty})
	require.NoError(t, err)

	assert.Equal(t, 350.0, updated.Quantity)
	assert.Equal(t, "balanceado", updated.Type)
	assert.Equal(t, "ración diaria", updated.Description)
	assert.Equal(t, day("2025-04-01"), updated.Date)
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newTestRepo(1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrNotFound)
}
