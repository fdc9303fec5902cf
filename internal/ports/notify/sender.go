package notify

import "context"

// ResetSender entrega el mail de recuperación de contraseña.
// Es un colaborador externo: el dominio solo conoce esta interfaz.
type ResetSender interface {
	SendPasswordReset(ctx context.Context, to, resetURL string) error
}
