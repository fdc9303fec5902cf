package feedings

import (
	"net/http"
	"time"

	"petsync/internal/domain/pets"
	"petsync/internal/httpapi"
	"petsync/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) {
	r.Route("/feeding", func(fr chi.Router) {
		fr.Post("/", createFeedingHandler(svc, rp))
		fr.Get("/pet/{id}", listFeedingsByPetHandler(svc, petsSvc, rp))
		fr.Get("/pet/date/{id}", listFeedingsByDatesHandler(svc, petsSvc, rp))
		fr.Put("/{id}", updateFeedingHandler(svc, rp))
		fr.Delete("/{id}", deleteFeedingHandler(svc, rp))
	})
}

type createFeedingRequest struct {
	PetID       int64   `json:"pet_id" validate:"required,gt=0"`
	Type        string  `json:"type" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
}

type updateFeedingRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Type        *string  `json:"type"`
	Description *string  `json:"description"`
	Quantity    *float64 `json:"quantity"`
	Date        *string  `json:"date"`
}

type feedingResponse struct {
	ID          int64   `json:"id"`
	PetID       int64   `json:"pet_id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Date        string  `json:"date"`
}

// listResponse es el envelope de listados: snapshot del padre + hijos.
type listResponse struct {
	Pet  pets.Snapshot     `json:"pet"`
	Data []feedingResponse `json:"data"`
}

// listFeedingsByPetHandler godoc
// @Summary Historial alimentario de una mascota
// @Description Mascota inexistente => 404. Mascota sin registros => 200 con data vacía.
// @Tags Feeding
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} listResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /feeding/pet/{id} [get]
func listFeedingsByPetHandler(svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		// Lookup independiente del padre: "mascota sin registros" no se
		// confunde con "mascota inexistente".
		p, err := petsSvc.GetByID(r.Context(), petID)
		if err != nil {
			rp.Err(w, r, mapFeedingErr(err))
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			rp.Err(w, r, err)
			return
		}

		rp.JSON(w, http.StatusOK, toListResponse(p, items))
	}
}

// listFeedingsByDatesHandler godoc
// @Summary Historial alimentario entre dos fechas
// @Description Rango inclusivo en ambos extremos sobre la columna date.
// @Tags Feeding
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param startDate query string true "Fecha inicial (YYYY-MM-DD)"
// @Param endDate query string true "Fecha final (YYYY-MM-DD)"
// @Success 200 {object} listResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /feeding/pet/date/{id} [get]
func listFeedingsByDatesHandler(svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}
		from, to, aerr := httpapi.DateRangeQuery(r)
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		p, err := petsSvc.GetByID(r.Context(), petID)
		if err != nil {
			rp.Err(w, r, mapFeedingErr(err))
			return
		}

		items, err := svc.ListByPetBetween(r.Context(), petID, from, to)
		if err != nil {
			rp.Err(w, r, err)
			return
		}

		rp.JSON(w, http.StatusOK, toListResponse(p, items))
	}
}

// createFeedingHandler godoc
// @Summary Alta de historial alimentario
// @Tags Feeding
// @Accept json
// @Produce json
// @Param request body createFeedingRequest true "Datos del registro"
// @Success 201 {object} httpapi.DataResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Router /feeding [post]
func createFeedingHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createFeedingRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		date, _ := time.Parse(httpapi.DateLayout, req.Date)

		f, err := svc.Create(r.Context(), CreateInput{
			PetID:       req.PetID,
			Type:        req.Type,
			Description: req.Description,
			Quantity:    req.Quantity,
			Date:        date,
		})
		if err != nil {
			rp.Err(w, r, mapFeedingErr(err))
			return
		}

		rp.Data(w, http.StatusCreated, toFeedingResponse(f))
	}
}

// updateFeedingHandler godoc
// @Summary Actualiza un historial alimentario (merge parcial)
// @Tags Feeding
// @Accept json
// @Produce json
// @Param id path int true "ID del registro"
// @Param request body updateFeedingRequest true "Campos a actualizar"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /feeding/{id} [put]
func updateFeedingHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		var req updateFeedingRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}

		var date *time.Time
		if req.Date != nil {
			t, err := time.Parse(httpapi.DateLayout, *req.Date)
			if err != nil {
				rp.Err(w, r, httpapi.Invalid("el campo date debe ser una fecha válida (YYYY-MM-DD)"))
				return
			}
			date = &t
		}

		f, err := svc.Update(r.Context(), id, UpdateInput{
			Type:        req.Type,
			Description: req.Description,
			Quantity:    req.Quantity,
			Date:        date,
		})
		if err != nil {
			rp.Err(w, r, mapFeedingErr(err))
			return
		}

		rp.Data(w, http.StatusOK, toFeedingResponse(f))
	}
}

// deleteFeedingHandler godoc
// @Summary Elimina un historial alimentario
// @Tags Feeding
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /feeding/{id} [delete]
func deleteFeedingHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			rp.Err(w, r, mapFeedingErr(err))
			return
		}

		rp.Data(w, http.StatusOK, "Historial alimentario eliminado")
	}
}

func toFeedingResponse(f Feeding) feedingResponse {
	return feedingResponse{
		ID:          f.ID,
		PetID:       f.PetID,
		Type:        f.Type,
		Description: f.Description,
		Quantity:    f.Quantity,
		Date:        f.Date.Format(httpapi.DateLayout),
	}
}

func toListResponse(p pets.Pet, items []Feeding) listResponse {
	out := make([]feedingResponse, 0, len(items))
	for _, f := range items {
		out = append(out, toFeedingResponse(f))
	}
	return listResponse{Pet: pets.ToSnapshot(p), Data: out}
}

func mapFeedingErr(err error) error {
	switch err {
	case ErrNotFound:
		return httpapi.NotFound("Historial alimentario no encontrado")
	case ErrPetNotFound:
		return httpapi.Invalid("La mascota indicada no existe")
	case pets.ErrNotFound:
		return httpapi.NotFound("Mascota no encontrada")
	default:
		return err
	}
}
