package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
)

// DateLayout es el formato de fecha de toda la API (columnas DATE).
const DateLayout = "2006-01-02"

// IDParam lee un parámetro de ruta como entero positivo.
// El upstream (rutas express-validator del servicio original) garantizaba
// esto antes del handler; acá es la primera línea de cada handler.
func IDParam(r *http.Request, name string) (int64, *Error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, Invalid(fmt.Sprintf("el parámetro %s debe ser un número entero positivo", name))
	}
	return id, nil
}

// DateRangeQuery lee startDate/endDate (ambos obligatorios) del query string.
func DateRangeQuery(r *http.Request) (time.Time, time.Time, *Error) {
	start, err := time.Parse(DateLayout, r.URL.Query().Get("startDate"))
	if err != nil {
		return time.Time{}, time.Time{}, Invalid("startDate debe ser una fecha válida (YYYY-MM-DD)")
	}
	end, err := time.Parse(DateLayout, r.URL.Query().Get("endDate"))
	if err != nil {
		return time.Time{}, time.Time{}, Invalid("endDate debe ser una fecha válida (YYYY-MM-DD)")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, Invalid("startDate no puede ser posterior a endDate")
	}
	return start, end, nil
}
