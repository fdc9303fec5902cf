package medicalhistories

import (
	"net/http"
	"time"

	"petsync/internal/domain/pets"
	"petsync/internal/httpapi"
	"petsync/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) {
	r.Route("/medical_history", func(mr chi.Router) {
		mr.Post("/", createMedicalHistoryHandler(svc, rp))
		mr.Get("/pet/{id}", listMedicalHistoryByPetHandler(svc, petsSvc, rp))
		mr.Get("/pet/date/{id}", listMedicalHistoryByDatesHandler(svc, petsSvc, rp))
		mr.Put("/{id}", updateMedicalHistoryHandler(svc, rp))
		mr.Delete("/{id}", deleteMedicalHistoryHandler(svc, rp))
	})
}

type createMedicalHistoryRequest struct {
	PetID       int64  `json:"pet_id" validate:"required,gt=0"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

type updateMedicalHistoryRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
}

type medicalHistoryResponse struct {
	ID          int64  `json:"id"`
	PetID       int64  `json:"pet_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

type listResponse struct {
	Pet  pets.Snapshot            `json:"pet"`
	Data []medicalHistoryResponse `json:"data"`
}

// listMedicalHistoryByPetHandler godoc
// @Summary Historial médico de una mascota
// @Tags MedicalHistory
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} listResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /medical_history/pet/{id} [get]
func listMedicalHistoryByPetHandler(svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		p, err := petsSvc.GetByID(r.Context(), petID)
		if err != nil {
			rp.Err(w, r, mapMedicalHistoryErr(err))
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

// listMedicalHistoryByDatesHandler godoc
// @Summary Historial médico entre dos fechas
// @Tags MedicalHistory
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param startDate query string true "Fecha inicial (YYYY-MM-DD)"
// @Param endDate query string true "Fecha final (YYYY-MM-DD)"
// @Success 200 {object} listResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /medical_history/pet/date/{id} [get]
func listMedicalHistoryByDatesHandler(svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) http.HandlerFunc {
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
			rp.Err(w, r, mapMedicalHistoryErr(err))
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

// createMedicalHistoryHandler godoc
// @Summary Alta de historial médico
// @Tags MedicalHistory
// @Accept json
// @Produce json
// @Param request body createMedicalHistoryRequest true "Datos del registro"
// @Success 201 {object} httpapi.DataResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Router /medical_history [post]
func createMedicalHistoryHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicalHistoryRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		date, _ := time.Parse(httpapi.DateLayout, req.Date)

		m, err := svc.Create(r.Context(), CreateInput{
			PetID:       req.PetID,
			Type:        req.Type,
			Description: req.Description,
			Date:        date,
		})
		if err != nil {
			rp.Err(w, r, mapMedicalHistoryErr(err))
			return
		}

		rp.Data(w, http.StatusCreated, toMedicalHistoryResponse(m))
	}
}

// updateMedicalHistoryHandler godoc
// @Summary Actualiza un historial médico (merge parcial)
// @Tags MedicalHistory
// @Accept json
// @Produce json
// @Param id path int true "ID del registro"
// @Param request body updateMedicalHistoryRequest true "Campos a actualizar"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /medical_history/{id} [put]
func updateMedicalHistoryHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		var req updateMedicalHistoryRequest
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

		m, err := svc.Update(r.Context(), id, UpdateInput{
			Type:        req.Type,
			Description: req.Description,
			Date:        date,
		})
		if err != nil {
			rp.Err(w, r, mapMedicalHistoryErr(err))
			return
		}

		rp.Data(w, http.StatusOK, toMedicalHistoryResponse(m))
	}
}

// deleteMedicalHistoryHandler godoc
// @Summary Elimina un historial médico
// @Tags MedicalHistory
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /medical_history/{id} [delete]
func deleteMedicalHistoryHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			rp.Err(w, r, mapMedicalHistoryErr(err))
			return
		}

		rp.Data(w, http.StatusOK, "Historial médico eliminado")
	}
}

func toMedicalHistoryResponse(m MedicalHistory) medicalHistoryResponse {
	return medicalHistoryResponse{
		ID:          m.ID,
		PetID:       m.PetID,
		Type:        m.Type,
		Description: m.Description,
		Date:        m.Date.Format(httpapi.DateLayout),
	}
}

func toListResponse(p pets.Pet, items []MedicalHistory) listResponse {
	out := make([]medicalHistoryResponse, 0, len(items))
	for _, m := range items {
		out = append(out, toMedicalHistoryResponse(m))
	}
	return listResponse{Pet: pets.ToSnapshot(p), Data: out}
}

func mapMedicalHistoryErr(err error) error {
	switch err {
	case ErrNotFound:
		return httpapi.NotFound("Historial médico no encontrado")
	case ErrPetNotFound:
		return httpapi.Invalid("La mascota indicada no existe")
	case pets.ErrNotFound:
		return httpapi.NotFound("Mascota no encontrada")
	default:
		return err
	}
}
