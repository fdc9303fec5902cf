package users

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"petsync/internal/platform/token"
)

// repo in-memory mínimo para testear el service sin adapters.
type testRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]User
}

func newTestRepo() *testRepo {
	return &testRepo{users: make(map[int64]User)}
}

func (r *testRepo) Create(_ context.Context, u User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Phone == u.Phone {
			return 0, ErrDuplicate
		}
	}
	r.seq++
	u.ID = r.seq
	r.users[u.ID] = u
	return u.ID, nil
}

func (r *testRepo) GetByID(_ context.Context, id int64) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return u, nil
}

func (r *testRepo) GetByEmail(_ context.Context, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *testRepo) Update(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	r.users[u.ID] = u
	return nil
}

func (r *testRepo) UpdatePassword(_ context.Context, id int64, hash string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Password = hash
	u.UpdatedAt = updatedAt
	r.users[id] = u
	return nil
}

func (r *testRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

// fakeMailer captura los envíos para poder esperarlos en tests.
type fakeMailer struct {
	mu    sync.Mutex
	sent  []string // resetURLs
	calls chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{calls: make(chan struct{}, 8)}
}

func (m *fakeMailer) SendPasswordReset(_ context.Context, _, resetURL string) error {
	m.mu.Lock()
	m.sent = append(m.sent, resetURL)
	m.mu.Unlock()
	m.calls <- struct{}{}
	return nil
}

func (m *fakeMailer) waitForSend(t *testing.T) string {
	t.Helper()
	select {
	case <-m.calls:
	case <-time.After(2 * time.Second):
		t.Fatal("no se envió ningún mail de reset")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent[len(m.sent)-1]
}

func newTestService(repo Repository, mail *fakeMailer) *Service {
	tokens := token.NewService("test-secret", time.Hour)
	return NewService(repo, tokens, mail, "http://localhost:5173", nil)
}

func birthday() time.Time {
	return time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC)
}

func TestCreateHashesPassword(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, newFakeMailer())

	u, err := svc.Create(context.Background(), CreateInput{
		Name:     "Ana",
		Surname:  "García",
		Email:    "ana@example.com",
		Phone:    "111222333",
		Password: "secreto123",
		Birthday: birthday(),
	})
	require.NoError(t, err)
	require.NotZero(t, u.ID)

	// nunca el texto plano
	assert.NotEqual(t, "secreto123", u.Password)
	assert.True(t, strings.HasPrefix(u.Password, "$2a$"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secreto123")))
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, newFakeMailer())

	in := CreateInput{
		Name: "Ana", Surname: "García",
		Email: "ana@example.com", Phone: "111222333",
		Password: "secreto123", Birthday: birthday(),
	}
	_, err := svc.Create(context.Background(), in)
	require.NoError(t, err)

	in.Phone = "999888777"
	_, err = svc.Create(context.Background(), in)
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAuthenticate(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, newFakeMailer())

	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana", Surname: "García",
		Email: "ana@example.com", Phone: "111222333",
		Password: "secreto123", Birthday: birthday(),
	})
	require.NoError(t, err)

	u, ok, err := svc.Authenticate(context.Background(), "ana@example.com", "secreto123")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, created.ID, u.ID)

	// contraseña incorrecta y email desconocido: mismo resultado
	_, ok, err = svc.Authenticate(context.Background(), "ana@example.com", "otra")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = svc.Authenticate(context.Background(), "nadie@example.com", "secreto123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdateWithoutPasswordKeepsHash(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, newFakeMailer())

	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana", Surname: "García",
		Email: "ana@example.com", Phone: "111222333",
		Password: "secreto123", Birthday: birthday(),
	})
	require.NoError(t, err)

	name := "Ana María"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "Ana María", updated.Name)
	assert.Equal(t, created.Password, updated.Password)

	// password en blanco tampoco pisa el hash
	blank := "   "
	updated, err = svc.Update(context.Background(), created.ID, UpdateInput{Password: &blank})
	require.NoError(t, err)
	assert.Equal(t, created.Password, updated.Password)

	// la contraseña original sigue funcionando
	_, ok, err := svc.Authenticate(context.Background(), "ana@example.com", "secreto123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdatePasswordRehashes(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, newFakeMailer())

	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana", Surname: "García",
		Email: "ana@example.com", Phone: "111222333",
		Password: "secreto123", Birthday: birthday(),
	})
	require.NoError(t, err)

	newPass := "nuevaClave456"
	updated, err := svc.Update(context.Background(), created.ID, UpdateInput{Password: &newPass})
	require.NoError(t, err)
	assert.NotEqual(t, created.Password, updated.Password)

	_, ok, err := svc.Authenticate(context.Background(), "ana@example.com", "nuevaClave456")
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = svc.Authenticate(context.Background(), "ana@example.com", "secreto123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestForgotPasswordUnknownEmailIsSilent(t *testing.T) {
	repo := newTestRepo()
	mail := newFakeMailer()
	svc := newTestService(repo, mail)

	err := svc.ForgotPassword(context.Background(), "nadie@example.com")
	require.NoError(t, err)

	select {
	case <-mail.calls:
		t.Fatal("no debería enviarse mail para un email no registrado")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestForgotAndResetPasswordFlow(t *testing.T) {
	repo := newTestRepo()
	mail := newFakeMailer()
	svc := newTestService(repo, mail)

	created, err := svc.Create(context.Background(), CreateInput{
		Name: "Ana", Surname: "García",
		Email: "ana@example.com", Phone: "111222333",
		Password: "secreto123", Birthday: birthday(),
	})
	require.NoError(t, err)

	require.NoError(t, svc.ForgotPassword(context.Background(), "ana@example.com"))

	resetURL := mail.waitForSend(t)
	require.Contains(t, resetURL, "http://localhost:5173/reset-password?token=")
	tok := strings.TrimPrefix(resetURL, "http://localhost:5173/reset-password?token=")

	require.NoError(t, svc.ResetPassword(context.Background(), tok, "claveNueva789"))

	_, ok, err := svc.Authenticate(context.Background(), "ana@example.com", "claveNueva789")
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = svc.Authenticate(context.Background(), "ana@example.com", "secreto123")
	require.NoError(t, err)
	assert.False(t, ok)

	// el usuario no cambió de identidad en el camino
	u, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", u.Email)
}

func TestResetPasswordInvalidToken(t *testing.T) {
	repo := newTestRepo()
	svc := newTestService(repo, newFakeMailer())

	err := svc.ResetPassword(context.Background(), "no-es-un-token", "claveNueva789")
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}
