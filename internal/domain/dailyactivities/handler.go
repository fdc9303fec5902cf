package dailyactivities

import (
	"net/http"
	"time"

	"petsync/internal/domain/pets"
	"petsync/internal/httpapi"
	"petsync/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

// Nota: el servicio original exponía los GET bajo /daily_activities y el
// resto bajo /daily_activity; acá las cinco rutas viven bajo /daily_activity.
func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) {
	r.Route("/daily_activity", func(dr chi.Router) {
		dr.Post("/", createDailyActivityHandler(svc, rp))
		dr.Get("/pet/{id}", listDailyActivitiesByPetHandler(svc, petsSvc, rp))
		dr.Get("/pet/date/{id}", listDailyActivitiesByDatesHandler(svc, petsSvc, rp))
		dr.Put("/{id}", updateDailyActivityHandler(svc, rp))
		dr.Delete("/{id}", deleteDailyActivityHandler(svc, rp))
	})
}

type createDailyActivityRequest struct {
	PetID    int64  `json:"pet_id" validate:"required,gt=0"`
	Type     string `json:"type" validate:"required"`
	Duration int    `json:"duration" validate:"required,gt=0"`
	Notes    string `json:"notes"`
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
}

type updateDailyActivityRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Type     *string `json:"type"`
	Duration *int    `json:"duration"`
	Notes    *string `json:"notes"`
	Date     *string `json:"date"`
}

type dailyActivityResponse struct {
	ID       int64  `json:"id"`
	PetID    int64  `json:"pet_id"`
	Type     string `json:"type"`
	Duration int    `json:"duration"`
	Notes    string `json:"notes,omitempty"`
	Date     string `json:"date"`
}

type listResponse struct {
	Pet  pets.Snapshot           `json:"pet"`
	Data []dailyActivityResponse `json:"data"`
}

// listDailyActivitiesByPetHandler godoc
// @Summary Actividades diarias de una mascota
// @Tags DailyActivity
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} listResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /daily_activity/pet/{id} [get]
func listDailyActivitiesByPetHandler(svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		p, err := petsSvc.GetByID(r.Context(), petID)
		if err != nil {
			rp.Err(w, r, mapDailyActivityErr(err))
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

// listDailyActivitiesByDatesHandler godoc
// @Summary Actividades diarias entre dos fechas
// @Tags DailyActivity
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param startDate query string true "Fecha inicial (YYYY-MM-DD)"
// @Param endDate query string true "Fecha final (YYYY-MM-DD)"
// @Success 200 {object} listResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /daily_activity/pet/date/{id} [get]
func listDailyActivitiesByDatesHandler(svc *Service, petsSvc *pets.Service, rp *httpapi.Responder) http.HandlerFunc {
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
			rp.Err(w, r, mapDailyActivityErr(err))
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

// createDailyActivityHandler godoc
// @Summary Alta de actividad diaria
// @Tags DailyActivity
// @Accept json
// @Produce json
// @Param request body createDailyActivityRequest true "Datos de la actividad"
// @Success 201 {object} httpapi.DataResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Router /daily_activity [post]
func createDailyActivityHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createDailyActivityRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		date, _ := time.Parse(httpapi.DateLayout, req.Date)

		a, err := svc.Create(r.Context(), CreateInput{
			PetID:    req.PetID,
			Type:     req.Type,
			Duration: req.Duration,
			Notes:    req.Notes,
			Date:     date,
		})
		if err != nil {
			rp.Err(w, r, mapDailyActivityErr(err))
			return
		}

		rp.Data(w, http.StatusCreated, toDailyActivityResponse(a))
	}
}

// updateDailyActivityHandler godoc
// @Summary Actualiza una actividad diaria (merge parcial)
// @Tags DailyActivity
// @Accept json
// @Produce json
// @Param id path int true "ID de la actividad"
// @Param request body updateDailyActivityRequest true "Campos a actualizar"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /daily_activity/{id} [put]
func updateDailyActivityHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		var req updateDailyActivityRequest
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

		a, err := svc.Update(r.Context(), id, UpdateInput{
			Type:     req.Type,
			Duration: req.Duration,
			Notes:    req.Notes,
			Date:     date,
		})
		if err != nil {
			rp.Err(w, r, mapDailyActivityErr(err))
			return
		}

		rp.Data(w, http.StatusOK, toDailyActivityResponse(a))
	}
}

// deleteDailyActivityHandler godoc
// @Summary Elimina una actividad diaria
// @Tags DailyActivity
// @Produce json
// @Param id path int true "ID de la actividad"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /daily_activity/{id} [delete]
func deleteDailyActivityHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			rp.Err(w, r, mapDailyActivityErr(err))
			return
		}

		rp.Data(w, http.StatusOK, "Actividad diaria eliminada")
	}
}

func toDailyActivityResponse(a DailyActivity) dailyActivityResponse {
	return dailyActivityResponse{
		ID:       a.ID,
		PetID:    a.PetID,
		Type:     a.Type,
		Duration: a.Duration,
		Notes:    a.Notes,
		Date:     a.Date.Format(httpapi.DateLayout),
	}
}

func toListResponse(p pets.Pet, items []DailyActivity) listResponse {
	out := make([]dailyActivityResponse, 0, len(items))
	for _, a := range items {
		out = append(out, toDailyActivityResponse(a))
	}
	return listResponse{Pet: pets.ToSnapshot(p), Data: out}
}

func mapDailyActivityErr(err error) error {
	switch err {
	case ErrNotFound:
		return httpapi.NotFound("Actividad diaria no encontrada")
	case ErrPetNotFound:
		return httpapi.Invalid("La mascota indicada no existe")
	case pets.ErrNotFound:
		return httpapi.NotFound("Mascota no encontrada")
	default:
		return err
	}
}
