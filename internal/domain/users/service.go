package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"petsync/internal/platform/token"
	"petsync/internal/ports/notify"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Costo bcrypt del servicio (equivale a 10 rondas adaptativas).
const bcryptCost = 10

type Service struct {
	repo   Repository
	tokens *token.Service
	mail   notify.ResetSender

	// base para armar el link de reset (frontend)
	resetBaseURL string

	log *zap.Logger
	now func() time.Time
}

func NewService(repo Repository, tokens *token.Service, mail notify.ResetSender, resetBaseURL string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:         repo,
		tokens:       tokens,
		mail:         mail,
		resetBaseURL: strings.TrimRight(resetBaseURL, "/"),
		log:          log,
		now:          time.Now,
	}
}

type CreateInput struct {
	Name     string
	Surname  string
	Email    string
	Phone    string
	Password string // texto plano, se hashea acá
	Birthday time.Time
}

// Create hashea la contraseña y persiste el usuario.
// El texto plano no se retiene en ningún lado.
func (s *Service) Create(ctx context.Context, in CreateInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return User{}, err
	}

	now := s.now()
	u := User{
		Name:      strings.TrimSpace(in.Name),
		Surname:   strings.TrimSpace(in.Surname),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Password:  string(hash),
		Birthday:  in.Birthday,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return User{}, err
	}
	u.ID = id
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, id)
}

type UpdateInput struct {
	// Punteros para merge parcial: nil = no tocar.
	Name     *string
	Surname  *string
	Email    *string
	Phone    *string
	Password *string
	Birthday *time.Time
}

// Update mergea solo los campos enviados. Password en blanco o solo
// espacios se ignora: el hash existente queda intacto.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return User{}, err
	}

	if in.Name != nil {
		u.Name = strings.TrimSpace(*in.Name)
	}
	if in.Surname != nil {
		u.Surname = strings.TrimSpace(*in.Surname)
	}
	if in.Email != nil {
		u.Email = strings.TrimSpace(*in.Email)
	}
	if in.Phone != nil {
		u.Phone = strings.TrimSpace(*in.Phone)
	}
	if in.Birthday != nil {
		u.Birthday = *in.Birthday
	}
	if in.Password != nil && strings.TrimSpace(*in.Password) != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcryptCost)
		if err != nil {
			return User{}, err
		}
		u.Password = string(hash)
	}

	u.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// Authenticate verifica email + contraseña.
// ok=false cubre tanto email inexistente como contraseña incorrecta:
// hacia afuera no se distingue cuál de los dos falló.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, bool, error) {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err == ErrNotFound {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return User{}, false, nil
	}
	return u, true, nil
}

// ForgotPassword emite el token y despacha el mail de reset.
// Siempre devuelve nil para emails no registrados: la respuesta al
// cliente es idéntica exista o no la cuenta (anti-enumeración).
// El envío es asíncrono para no filtrar pertenencia por timing.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err == ErrNotFound {
		return nil
	}
	if err != nil {
		return err
	}

	tok, err := s.tokens.GenerateReset(u.ID)
	if err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password?token=%s", s.resetBaseURL, tok)

	go func() {
		sendCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		if err := s.mail.SendPasswordReset(sendCtx, u.Email, resetURL); err != nil {
			s.log.Error("no se pudo enviar el mail de reset",
				zap.Int64("user_id", u.ID),
				zap.Error(err),
			)
		}
	}()

	return nil
}

// ResetPassword verifica el token, carga el usuario y persiste el nuevo
// hash directo, sin pasar por el merge de Update.
func (s *Service) ResetPassword(ctx context.Context, tokenStr, newPassword string) error {
	userID, err := s.tokens.VerifyReset(tokenStr)
	if err != nil {
		return err // token.ErrInvalidToken
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err // ErrNotFound si lo borraron después de emitir el token
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(ctx, u.ID, string(hash), s.now())
}
