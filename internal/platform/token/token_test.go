package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyReset(t *testing.T) {
	svc := NewService("super-secret", time.Hour)

	tok, err := svc.GenerateReset(42)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	id, err := svc.VerifyReset(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestVerifyReset_Expired(t *testing.T) {
	svc := NewService("super-secret", time.Hour)

	issued := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateReset(7)
	require.NoError(t, err)

	// dentro de la ventana
	svc.now = func() time.Time { return issued.Add(59 * time.Minute) }
	id, err := svc.VerifyReset(tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	// pasada la hora
	svc.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = svc.VerifyReset(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyReset_WrongSecret(t *testing.T) {
	tok, err := NewService("secret-a", time.Hour).GenerateReset(7)
	require.NoError(t, err)

	_, err = NewService("secret-b", time.Hour).VerifyReset(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyReset_Garbage(t *testing.T) {
	svc := NewService("super-secret", time.Hour)

	_, err := svc.VerifyReset("no-es-un-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
