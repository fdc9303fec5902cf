package httpapi

import "net/http"

// Kind clasifica los fallos que la API reporta al cliente.
// Cada kind tiene un status y una forma de respuesta fijos,
// sin importar qué entidad lo produjo.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalid
	KindUnauthorized
	KindInternal
)

// Error es el resultado tagueado que viaja del dominio al responder.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Status mapea kind -> status HTTP (fijo por kind).
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalid:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Msg: msg} }
func Invalid(msg string) *Error      { return &Error{Kind: KindInvalid, Msg: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Msg: msg} }
func Internal(msg string) *Error     { return &Error{Kind: KindInternal, Msg: msg} }
