package memory

import (
	"context"
	"time"

	"petsync/internal/domain/users"
)

type UsersRepo struct {
	s *Store
}

func NewUsersRepo(s *Store) *UsersRepo {
	return &UsersRepo{s: s}
}

func (r *UsersRepo) Create(_ context.Context, u users.User) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.users {
		if existing.Email == u.Email || existing.Phone == u.Phone {
			return 0, users.ErrDuplicate
		}
	}

	u.ID = r.s.nextID()
	r.s.users[u.ID] = u
	return u.ID, nil
}

func (r *UsersRepo) GetByID(_ context.Context, id int64) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.User{}, users.ErrNotFound
	}
	return u, nil
}

func (r *UsersRepo) GetByEmail(_ context.Context, email string) (users.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return users.User{}, users.ErrNotFound
}

func (r *UsersRepo) Update(_ context.Context, u users.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[u.ID]; !ok {
		return users.ErrNotFound
	}
	for id, existing := range r.s.users {
		if id != u.ID && (existing.Email == u.Email || existing.Phone == u.Phone) {
			return users.ErrDuplicate
		}
	}

	r.s.users[u.ID] = u
	return nil
}

func (r *UsersRepo) UpdatePassword(_ context.Context, id int64, hash string, updatedAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return users.ErrNotFound
	}
	u.Password = hash
	u.UpdatedAt = updatedAt
	r.s.users[id] = u
	return nil
}

func (r *UsersRepo) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return users.ErrNotFound
	}
	delete(r.s.users, id)

	// cascade: mascotas del usuario y sus registros hijos
	for petID, p := range r.s.pets {
		if p.UserID == id {
			delete(r.s.pets, petID)
			r.s.deletePetChildren(petID)
		}
	}
	return nil
}
