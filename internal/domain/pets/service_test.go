package pets

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	mu   sync.Mutex
	seq  int64
	pets map[int64]Pet

	// ids de usuarios "existentes" para simular la FK
	userIDs map[int64]bool
}

func newTestRepo(userIDs ...int64) *testRepo {
	r := &testRepo{pets: make(map[int64]Pet), userIDs: make(map[int64]bool)}
	for _, id := range userIDs {
		r.userIDs[id] = true
	}
	return r
}

func (r *testRepo) Create(_ context.Context, p Pet) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.userIDs[p.UserID] {
		return 0, ErrUserNotFound
	}
	r.seq++
	p.ID = r.seq
	r.pets[p.ID] = p
	return p.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pets[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByUser(_ context.Context, userID int64) ([]Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Pet, 0)
	for _, p := range r.pets {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *testRepo) Update(_ context.Context, p Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[p.ID]; !ok {
		return ErrNotFound
	}
	r.pets[p.ID] = p
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.pets[id]; !ok {
		return ErrNotFound
	}
	delete(r.pets, id)
	return nil
}

func petBirthday() time.Time {
	return time.Date(2020, 3, 15, 0, 0, 0, 0, time.UTC)
}

func TestCreateTrimsFields(t *testing.T) {
	svc := NewService(newTestRepo(1))

	p, err := svc.Create(context.Background(), CreateInput{
		UserID:   1,
		Name:     "  Firulais ",
		Breed:    "Labrador",
		Gender:   "macho",
		Weight:   24.5,
		Birthday: petBirthday(),
	})
	require.NoError(t, err)
	assert.Equal(t, "Firulais", p.Name)
	assert.NotZero(t, p.ID)
	assert.Equal(t, int64(1), p.UserID)
}

func TestCreateUnknownUser(t *testing.T) {
	svc := NewService(newTestRepo(1))

	_, err := svc.Create(context.Background(), CreateInput{
		UserID: 99, Name: "Firulais", Breed: "Labrador",
		Gender: "macho", Weight: 24.5, Birthday: petBirthday(),
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateMergesOnlySentFields(t *testing.T) {
	svc := NewService(newTestRepo(1))

	created, err := svc.Create(context.Background(), CreateInput{
		UserID: 1, Name: "Firulais", Breed: "Labrador",
		Gender: "macho", Weight: 24.5, Birthday: petBirthday(),
	})
	require.NoError(t, err)

	weight := 26.0
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Weight: &weight})
	require.NoError(t, err)

	assert.Equal(t, 26.0, updated.Weight)
	// el resto queda como estaba
	assert.Equal(t, "Firulais", updated.Name)
	assert.Equal(t, "Labrador", updated.Breed)
	assert.Equal(t, created.Birthday, updated.Birthday)
}

func TestUpdateNotFound(t *testing.T) {
	svc := NewService(newTestRepo(1))

	name := "Rex"
	_, err := svc.Update(context.Background(), 42, UpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByUserOrderedByID(t *testing.T) {
	svc := NewService(newTestRepo(1, 2))

	for _, name := range []string{"Firulais", "Michi", "Rocky"} {
		_, err := svc.Create(context.Background(), CreateInput{
			UserID: 1, Name: name, Breed: "x", Gender: "macho",
			Weight: 10, Birthday: petBirthday(),
		})
		require.NoError(t, err)
	}
	_, err := svc.Create(context.Background(), CreateInput{
		UserID: 2, Name: "Ajeno", Breed: "x", Gender: "hembra",
		Weight: 8, Birthday: petBirthday(),
	})
	require.NoError(t, err)

	list, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Firulais", list[0].Name)
	assert.Equal(t, "Michi", list[1].Name)
	assert.Equal(t, "Rocky", list[2].Name)
}

func TestListByUserEmpty(t *testing.T) {
	svc := NewService(newTestRepo(1))

	list, err := svc.ListByUser(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestDeleteNotFound(t *testing.T) {
	svc := NewService(newTestRepo(1))
	assert.ErrorIs(t, svc.Delete(context.Background(), 42), ErrNotFound)
}
