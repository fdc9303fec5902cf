package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// MsgInternal es el único mensaje que ve el cliente ante un fallo interno.
const MsgInternal = "Error interno del servidor"

// ErrorResponse es la forma única de error de toda la API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse envuelve payloads de éxito como {data: ...}.
type DataResponse struct {
	Data any `json:"data"`
}

// Responder centraliza la escritura de respuestas JSON.
// Los errores internos se loguean acá; el detalle nunca llega al cliente.
type Responder struct {
	log *zap.Logger
}

func NewResponder(log *zap.Logger) *Responder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Responder{log: log}
}

func (rp *Responder) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Data responde {data: v} con el status indicado.
func (rp *Responder) Data(w http.ResponseWriter, status int, v any) {
	rp.JSON(w, status, DataResponse{Data: v})
}

// Err traduce un error al status/forma fijos de su kind.
// Errores no tagueados se tratan como internos.
func (rp *Responder) Err(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		apiErr = Internal(MsgInternal)
	}

	if apiErr.Kind == KindInternal {
		rp.log.Error("internal error",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		// no filtrar detalle interno
		apiErr = Internal(MsgInternal)
	}

	rp.JSON(w, apiErr.Status(), ErrorResponse{Error: apiErr.Msg})
}

// Decode decodifica el body JSON del request.
func (rp *Responder) Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
