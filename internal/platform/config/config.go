package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config agrupa toda la configuración de proceso.
// Se carga una sola vez en main; nada más lee env directo.
type Config struct {
	Port   string
	DBDSN  string // vacío => repos in-memory (modo dev)
	Secret string // firma de tokens de reset

	ResetTokenTTL time.Duration

	MailHost string
	MailPort string
	MailUser string
	MailPass string

	// Origen permitido para CORS y base del link de reset.
	FrontendURL string
}

// Load lee la configuración desde variables de entorno.
// JWT_SECRET es obligatorio: sin él no se pueden firmar tokens de reset.
func Load() (Config, error) {
	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		return Config{}, errors.New("falta la variable de entorno JWT_SECRET")
	}

	cfg := Config{
		Port:          envOr("PORT", "8080"),
		DBDSN:         os.Getenv("DB_DSN"),
		Secret:        secret,
		ResetTokenTTL: time.Hour,
		MailHost:      os.Getenv("MAIL_HOST"),
		MailPort:      envOr("MAIL_PORT", "465"),
		MailUser:      os.Getenv("MAIL_USER"),
		MailPass:      os.Getenv("MAIL_PASS"),
		FrontendURL:   envOr("FRONTEND_URL", "http://localhost:5173"),
	}
	return cfg, nil
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
