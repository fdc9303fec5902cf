package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Mailer envía el correo de reset por SMTP con TLS implícito (puerto 465).
type Mailer struct {
	host string
	port string
	user string
	pass string

	timeout time.Duration
}

type Options struct {
	Host string
	Port string // default 465
	User string
	Pass string
}

func NewMailer(opts Options) *Mailer {
	port := strings.TrimSpace(opts.Port)
	if port == "" {
		port = "465"
	}
	return &Mailer{
		host:    opts.Host,
		port:    port,
		user:    opts.User,
		pass:    opts.Pass,
		timeout: 30 * time.Second,
	}
}

// SendPasswordReset arma y entrega el mail con el link de recuperación.
func (m *Mailer) SendPasswordReset(ctx context.Context, to, resetURL string) error {
	msg := m.buildResetMessage(to, resetURL)
	return m.send(ctx, to, []byte(msg))
}

func (m *Mailer) buildResetMessage(to, resetURL string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("From: \"PetSync App\" <%s>\r\n", m.user))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString("Subject: Recuperación de contraseña - PetSync\r\n")
	b.WriteString(fmt.Sprintf("Message-ID: <%s@petsync>\r\n", uuid.NewString()))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")

	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto;">`)
	b.WriteString(`<h2>Recuperación de contraseña</h2>`)
	b.WriteString(`<p>Has solicitado restablecer la contraseña de tu cuenta en <strong>PetSync</strong>.</p>`)
	b.WriteString(fmt.Sprintf(`<p><a href="%s">Restablecer contraseña</a></p>`, resetURL))
	b.WriteString(`<p>Si el enlace no funciona, copia y pega esta URL en tu navegador:</p>`)
	b.WriteString(fmt.Sprintf(`<p>%s</p>`, resetURL))
	b.WriteString(`<p><small>Este enlace expirará en 1 hora por motivos de seguridad.</small></p>`)
	b.WriteString(`<p><small>Si no solicitaste este cambio, puedes ignorar este correo.</small></p>`)
	b.WriteString(`</div>`)
	b.WriteString("\r\n")

	return b.String()
}

// send abre la conexión TLS, autentica y entrega el mensaje.
// Puerto 465 = TLS implícito: se negocia TLS antes de hablar SMTP.
func (m *Mailer) send(ctx context.Context, to string, msg []byte) error {
	addr := net.JoinHostPort(m.host, m.port)

	dialer := &net.Dialer{Timeout: m.timeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: m.host})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}

	client, err := smtp.NewClient(conn, m.host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Close()

	// respetar cancelación del contexto mientras dura la sesión SMTP
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(m.user); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := wc.Write(msg); err != nil {
		_ = wc.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	return client.Quit()
}
