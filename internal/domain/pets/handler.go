package pets

import (
	"net/http"
	"time"

	"petsync/internal/domain/users"
	"petsync/internal/httpapi"
	"petsync/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, usersSvc *users.Service, rp *httpapi.Responder) {
	r.Route("/pet", func(pr chi.Router) {
		pr.Post("/", createPetHandler(svc, rp))
		pr.Get("/user/{id}", listPetsByUserHandler(svc, usersSvc, rp))
		pr.Get("/name/user/{id}", listPetNamesByUserHandler(svc, usersSvc, rp))
		pr.Get("/{id}", getPetHandler(svc, rp))
		pr.Put("/{id}", updatePetHandler(svc, rp))
		pr.Delete("/{id}", deletePetHandler(svc, rp))
	})
}

type createPetRequest struct {
	UserID   int64   `json:"user_id" validate:"required,gt=0"`
	Name     string  `json:"name" validate:"required"`
	Breed    string  `json:"breed" validate:"required"`
	Gender   string  `json:"gender" validate:"required"`
	Weight   float64 `json:"weight" validate:"required,gt=0"`
	Birthday string  `json:"birthday" validate:"required,datetime=2006-01-02"`
	Photo    string  `json:"photo"`
}

type updatePetRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Name     *string  `json:"name"`
	Breed    *string  `json:"breed"`
	Gender   *string  `json:"gender"`
	Weight   *float64 `json:"weight"`
	Birthday *string  `json:"birthday"`
	Photo    *string  `json:"photo"`
}

// petResponse es el recurso standalone: sin user_id ni timestamps.
type petResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Breed    string  `json:"breed"`
	Gender   string  `json:"gender"`
	Weight   float64 `json:"weight"`
	Birthday string  `json:"birthday"`
	Photo    string  `json:"photo,omitempty"`
}

type petNameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// listPetsByUserHandler godoc
// @Summary Mascotas de un usuario
// @Description Usuario inexistente => 404. Usuario sin mascotas => 200 con data vacía.
// @Tags Pet
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /pet/user/{id} [get]
func listPetsByUserHandler(svc *Service, usersSvc *users.Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		// Lookup independiente del padre: "usuario sin mascotas" no se
		// confunde con "usuario inexistente".
		if _, err := usersSvc.GetByID(r.Context(), userID); err != nil {
			rp.Err(w, r, mapPetErr(err))
			return
		}

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			rp.Err(w, r, err)
			return
		}

		out := make([]petResponse, 0, len(items))
		for _, p := range items {
			out = append(out, toPetResponse(p))
		}
		rp.Data(w, http.StatusOK, out)
	}
}

// listPetNamesByUserHandler godoc
// @Summary Nombres de las mascotas de un usuario
// @Tags Pet
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /pet/name/user/{id} [get]
func listPetNamesByUserHandler(svc *Service, usersSvc *users.Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		if _, err := usersSvc.GetByID(r.Context(), userID); err != nil {
			rp.Err(w, r, mapPetErr(err))
			return
		}

		items, err := svc.ListByUser(r.Context(), userID)
		if err != nil {
			rp.Err(w, r, err)
			return
		}

		out := make([]petNameResponse, 0, len(items))
		for _, p := range items {
			out = append(out, petNameResponse{ID: p.ID, Name: p.Name})
		}
		rp.Data(w, http.StatusOK, out)
	}
}

// getPetHandler godoc
// @Summary Datos de una mascota
// @Tags Pet
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /pet/{id} [get]
func getPetHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		p, err := svc.GetByID(r.Context(), id)
		if err != nil {
			rp.Err(w, r, mapPetErr(err))
			return
		}

		// Acá se conserva user_id: los clientes lo usan para navegar al dueño.
		rp.Data(w, http.StatusOK, ToSnapshot(p))
	}
}

// createPetHandler godoc
// @Summary Alta de mascota
// @Tags Pet
// @Accept json
// @Produce json
// @Param request body createPetRequest true "Datos de la mascota"
// @Success 201 {object} httpapi.DataResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Router /pet [post]
func createPetHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createPetRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		birthday, _ := time.Parse(httpapi.DateLayout, req.Birthday)

		p, err := svc.Create(r.Context(), CreateInput{
			UserID:   req.UserID,
			Name:     req.Name,
			Breed:    req.Breed,
			Gender:   req.Gender,
			Weight:   req.Weight,
			Birthday: birthday,
			Photo:    req.Photo,
		})
		if err != nil {
			rp.Err(w, r, mapPetErr(err))
			return
		}

		rp.Data(w, http.StatusCreated, toPetResponse(p))
	}
}

// updatePetHandler godoc
// @Summary Actualiza datos de una mascota (merge parcial)
// @Tags Pet
// @Accept json
// @Produce json
// @Param id path int true "ID de la mascota"
// @Param request body updatePetRequest true "Campos a actualizar"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /pet/{id} [put]
func updatePetHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		var req updatePetRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}

		var birthday *time.Time
		if req.Birthday != nil {
			t, err := time.Parse(httpapi.DateLayout, *req.Birthday)
			if err != nil {
				rp.Err(w, r, httpapi.Invalid("el campo birthday debe ser una fecha válida (YYYY-MM-DD)"))
				return
			}
			birthday = &t
		}

		p, err := svc.Update(r.Context(), id, UpdateInput{
			Name:     req.Name,
			Breed:    req.Breed,
			Gender:   req.Gender,
			Weight:   req.Weight,
			Birthday: birthday,
			Photo:    req.Photo,
		})
		if err != nil {
			rp.Err(w, r, mapPetErr(err))
			return
		}

		rp.Data(w, http.StatusOK, toPetResponse(p))
	}
}

// deletePetHandler godoc
// @Summary Elimina una mascota (cascadea a sus registros)
// @Tags Pet
// @Produce json
// @Param id path int true "ID de la mascota"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /pet/{id} [delete]
func deletePetHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			rp.Err(w, r, mapPetErr(err))
			return
		}

		rp.Data(w, http.StatusOK, "Mascota eliminada")
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:       p.ID,
		Name:     p.Name,
		Breed:    p.Breed,
		Gender:   p.Gender,
		Weight:   p.Weight,
		Birthday: p.Birthday.Format(httpapi.DateLayout),
		Photo:    p.Photo,
	}
}

func mapPetErr(err error) error {
	switch err {
	case ErrNotFound:
		return httpapi.NotFound("Mascota no encontrada")
	case ErrUserNotFound:
		return httpapi.Invalid("El usuario indicado no existe")
	case users.ErrNotFound:
		return httpapi.NotFound("Usuario no encontrado")
	default:
		return err
	}
}
