package users

import (
	"net/http"
	"time"

	"petsync/internal/httpapi"
	"petsync/internal/platform/token"
	"petsync/internal/platform/validate"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, rp *httpapi.Responder) {
	r.Route("/user", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc, rp))
		ur.Post("/auth", authUserHandler(svc, rp))
		ur.Get("/data/{id}", getUserDataHandler(svc, rp))
		ur.Put("/{id}", updateUserHandler(svc, rp))
		ur.Delete("/{id}", deleteUserHandler(svc, rp))
	})

	r.Post("/forgot-password", forgotPasswordHandler(svc, rp))
	r.Post("/reset-password", resetPasswordHandler(svc, rp))
}

type createUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Birthday string `json:"birthday" validate:"required,datetime=2006-01-02"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	// Punteros para merge parcial: nil = no tocar.
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Birthday *string `json:"birthday"`
	Password *string `json:"password"`
}

type authRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// userResponse es el registro sanitizado: sin password ni timestamps.
type userResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Birthday string `json:"birthday"`
}

type authResponse struct {
	Authenticated bool          `json:"authenticated"`
	Message       string        `json:"message"`
	Data          *userResponse `json:"data,omitempty"`
}

// getUserDataHandler godoc
// @Summary Datos personales de un usuario
// @Tags User
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /user/data/{id} [get]
func getUserDataHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			rp.Err(w, r, mapUserErr(err))
			return
		}

		rp.Data(w, http.StatusOK, toUserResponse(u))
	}
}

// createUserHandler godoc
// @Summary Alta de usuario
// @Tags User
// @Accept json
// @Produce json
// @Param request body createUserRequest true "Datos del usuario"
// @Success 201 {object} httpapi.DataResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Router /user [post]
func createUserHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		birthday, _ := time.Parse(httpapi.DateLayout, req.Birthday)

		u, err := svc.Create(r.Context(), CreateInput{
			Name:     req.Name,
			Surname:  req.Surname,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
			Birthday: birthday,
		})
		if err != nil {
			rp.Err(w, r, mapUserErr(err))
			return
		}

		rp.Data(w, http.StatusCreated, toUserResponse(u))
	}
}

// updateUserHandler godoc
// @Summary Actualiza datos de un usuario (merge parcial)
// @Tags User
// @Accept json
// @Produce json
// @Param id path int true "ID del usuario"
// @Param request body updateUserRequest true "Campos a actualizar"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /user/{id} [put]
func updateUserHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		var req updateUserRequest
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

		u, err := svc.Update(r.Context(), id, UpdateInput{
			Name:     req.Name,
			Surname:  req.Surname,
			Email:    req.Email,
			Phone:    req.Phone,
			Password: req.Password,
			Birthday: birthday,
		})
		if err != nil {
			rp.Err(w, r, mapUserErr(err))
			return
		}

		rp.Data(w, http.StatusOK, toUserResponse(u))
	}
}

// deleteUserHandler godoc
// @Summary Elimina un usuario (cascadea a sus mascotas)
// @Tags User
// @Produce json
// @Param id path int true "ID del usuario"
// @Success 200 {object} httpapi.DataResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /user/{id} [delete]
func deleteUserHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, aerr := httpapi.IDParam(r, "id")
		if aerr != nil {
			rp.Err(w, r, aerr)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			rp.Err(w, r, mapUserErr(err))
			return
		}

		rp.Data(w, http.StatusOK, "Usuario eliminado")
	}
}

// authUserHandler godoc
// @Summary Autentica un usuario por email y contraseña
// @Description Credenciales incorrectas devuelven 200 con authenticated=false;
// @Description no se distingue si falló el email o la contraseña.
// @Tags User
// @Accept json
// @Produce json
// @Param request body authRequest true "Credenciales"
// @Success 200 {object} authResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Router /user/auth [post]
func authUserHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req authRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		u, ok, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			rp.Err(w, r, err)
			return
		}

		if !ok {
			rp.JSON(w, http.StatusOK, authResponse{
				Authenticated: false,
				Message:       "Usuario o contraseña incorrectos",
			})
			return
		}

		resp := toUserResponse(u)
		rp.JSON(w, http.StatusOK, authResponse{
			Authenticated: true,
			Message:       "El usuario ha sido autenticado exitosamente.",
			Data:          &resp,
		})
	}
}

// forgotPasswordHandler godoc
// @Summary Solicita el restablecimiento de contraseña
// @Description La respuesta es idéntica exista o no el email (anti-enumeración).
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body forgotPasswordRequest true "Email de la cuenta"
// @Success 200 {object} httpapi.DataResponse
// @Failure 400 {object} httpapi.ErrorResponse
// @Router /forgot-password [post]
func forgotPasswordHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req forgotPasswordRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		if err := svc.ForgotPassword(r.Context(), req.Email); err != nil {
			rp.Err(w, r, err)
			return
		}

		rp.Data(w, http.StatusOK, "Si el correo está registrado, se ha enviado un enlace de recuperación")
	}
}

// resetPasswordHandler godoc
// @Summary Restablece la contraseña con un token emitido por mail
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body resetPasswordRequest true "Token y nueva contraseña"
// @Success 200 {object} httpapi.DataResponse
// @Failure 401 {object} httpapi.ErrorResponse
// @Failure 404 {object} httpapi.ErrorResponse
// @Router /reset-password [post]
func resetPasswordHandler(svc *Service, rp *httpapi.Responder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetPasswordRequest
		if err := rp.Decode(r, &req); err != nil {
			rp.Err(w, r, httpapi.Invalid("JSON inválido"))
			return
		}
		if err := validate.Struct(req); err != nil {
			rp.Err(w, r, httpapi.Invalid(err.Error()))
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
			rp.Err(w, r, mapUserErr(err))
			return
		}

		rp.Data(w, http.StatusOK, "Contraseña actualizada correctamente")
	}
}

func toUserResponse(u User) userResponse {
	return userResponse{
		ID:       u.ID,
		Name:     u.Name,
		Surname:  u.Surname,
		Email:    u.Email,
		Phone:    u.Phone,
		Birthday: u.Birthday.Format(httpapi.DateLayout),
	}
}

// mapUserErr traduce errores de dominio al error tagueado de la API.
func mapUserErr(err error) error {
	switch err {
	case ErrNotFound:
		return httpapi.NotFound("Usuario no encontrado")
	case ErrDuplicate:
		return httpapi.Invalid("El email o el teléfono ya están registrados")
	case token.ErrInvalidToken:
		return httpapi.Unauthorized("Token inválido o expirado")
	default:
		return err
	}
}
