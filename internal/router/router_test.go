package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"petsync/internal/platform/config"
	"petsync/internal/router"
)

type noopMailer struct{}

func (noopMailer) SendPasswordReset(_ context.Context, _, _ string) error { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := config.Config{
		Port:          "0",
		Secret:        "test-secret",
		ResetTokenTTL: time.Hour,
		FrontendURL:   "http://localhost:5173",
	}
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Config: cfg,
		Mailer: noopMailer{},
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_UsersPetsAndRecords(t *testing.T) {
	ts := newTestServer(t)

	// 1) Alta de usuario: 201 y respuesta sanitizada
	var userID int64
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/user", map[string]any{
			"name":     "Ana",
			"surname":  "García",
			"email":    "ana@example.com",
			"phone":    "111222333",
			"birthday": "1990-05-20",
			"password": "secreto123",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
		}

		var resp struct {
			Data map[string]any `json:"data"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if _, leaked := resp.Data["password"]; leaked {
			t.Fatalf("password no debe serializarse: %s", string(body))
		}
		if _, leaked := resp.Data["created_at"]; leaked {
			t.Fatalf("created_at no debe serializarse: %s", string(body))
		}
		userID = int64(resp.Data["id"].(float64))
		if userID == 0 {
			t.Fatalf("missing user id body=%s", string(body))
		}
	}

	// 2) Auth correcta e incorrecta: ambas 200, cambia authenticated
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/user/auth", map[string]any{
			"email": "ana@example.com", "password": "secreto123",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 auth, got %d body=%s", st, string(body))
		}
		var ok struct {
			Authenticated bool `json:"authenticated"`
		}
		_ = json.Unmarshal(body, &ok)
		if !ok.Authenticated {
			t.Fatalf("expected authenticated=true body=%s", string(body))
		}

		st, body = doReq(t, ts.URL, "POST", "/api/v1/user/auth", map[string]any{
			"email": "ana@example.com", "password": "incorrecta",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 auth fallida, got %d body=%s", st, string(body))
		}
		_ = json.Unmarshal(body, &ok)
		if ok.Authenticated {
			t.Fatalf("expected authenticated=false body=%s", string(body))
		}
	}

	// 3) Usuario sin mascotas: 200 con data vacía (no 404)
	{
		st, body := doReq(t, ts.URL, "GET", petsByUserPath(userID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list pets, got %d body=%s", st, string(body))
		}
		var resp struct {
			Data []map[string]any `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Data == nil || len(resp.Data) != 0 {
			t.Fatalf("expected data vacía body=%s", string(body))
		}
	}

	// 4) Usuario inexistente: 404
	{
		st, body := doReq(t, ts.URL, "GET", "/api/v1/pet/user/9999", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 unknown user, got %d body=%s", st, string(body))
		}
		var resp struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Error != "Usuario no encontrado" {
			t.Fatalf("unexpected error body=%s", string(body))
		}
	}

	// 5) Alta de mascota: 201, sin user_id ni timestamps en la respuesta
	var petID int64
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/pet", map[string]any{
			"user_id":  userID,
			"name":     "Firulais",
			"breed":    "Labrador",
			"gender":   "macho",
			"weight":   24.5,
			"birthday": "2020-03-15",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			Data map[string]any `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if _, leaked := resp.Data["user_id"]; leaked {
			t.Fatalf("user_id no debe serializarse en el recurso standalone: %s", string(body))
		}
		petID = int64(resp.Data["id"].(float64))
	}

	// 6) Registros alimentarios + filtro por rango inclusivo
	{
		for _, d := range []string{"2025-04-01", "2025-04-10"} {
			st, body := doReq(t, ts.URL, "POST", "/api/v1/feeding", map[string]any{
				"pet_id":      petID,
				"type":        "balanceado",
				"description": "ración diaria",
				"quantity":    300,
				"date":        d,
			})
			if st != http.StatusCreated {
				t.Fatalf("expected 201 create feeding, got %d body=%s", st, string(body))
			}
		}

		st, body := doReq(t, ts.URL, "GET",
			feedingsByDatePath(petID)+"?startDate=2025-04-01&endDate=2025-04-05", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 feedings by date, got %d body=%s", st, string(body))
		}
		var resp struct {
			Pet  map[string]any   `json:"pet"`
			Data []map[string]any `json:"data"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Data) != 1 {
			t.Fatalf("expected 1 feeding en rango, got %d body=%s", len(resp.Data), string(body))
		}
		if resp.Data[0]["date"] != "2025-04-01" {
			t.Fatalf("unexpected date body=%s", string(body))
		}
		// la vista embebida de la mascota sí lleva user_id
		if int64(resp.Pet["user_id"].(float64)) != userID {
			t.Fatalf("pet.user_id esperado %d body=%s", userID, string(body))
		}
	}

	// 7) startDate > endDate: 400
	{
		st, body := doReq(t, ts.URL, "GET",
			feedingsByDatePath(petID)+"?startDate=2025-04-10&endDate=2025-04-01", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 rango invertido, got %d body=%s", st, string(body))
		}
	}

	// 8) forgot-password: cuerpo idéntico exista o no el email
	{
		st1, body1 := doReq(t, ts.URL, "POST", "/api/v1/forgot-password", map[string]any{
			"email": "ana@example.com",
		})
		st2, body2 := doReq(t, ts.URL, "POST", "/api/v1/forgot-password", map[string]any{
			"email": "nadie@example.com",
		})
		if st1 != http.StatusOK || st2 != http.StatusOK {
			t.Fatalf("expected 200/200 forgot, got %d/%d", st1, st2)
		}
		if !bytes.Equal(body1, body2) {
			t.Fatalf("respuestas de forgot deben ser idénticas: %s vs %s", body1, body2)
		}
	}

	// 9) Token de reset inválido: 401
	{
		st, body := doReq(t, ts.URL, "POST", "/api/v1/reset-password", map[string]any{
			"token":       "no-es-un-token",
			"newPassword": "claveNueva789",
		})
		if st != http.StatusUnauthorized {
			t.Fatalf("expected 401 token inválido, got %d body=%s", st, string(body))
		}
	}

	// 10) Borrar el usuario cascadea a mascotas y registros
	{
		st, body := doReq(t, ts.URL, "DELETE", userPath(userID), nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete user, got %d body=%s", st, string(body))
		}

		st, body = doReq(t, ts.URL, "GET", petPath(petID), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 pet tras cascade, got %d body=%s", st, string(body))
		}

		// segundo delete: 404, sin doble respuesta
		st, body = doReq(t, ts.URL, "DELETE", userPath(userID), nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 delete repetido, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_InvalidIDParam(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/api/v1/pet/abc", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 id no numérico, got %d body=%s", st, string(body))
	}
}

func TestHTTP_Health(t *testing.T) {
	ts := newTestServer(t)

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("health: got %d body=%s", st, string(body))
	}
}

func userPath(id int64) string         { return "/api/v1/user/" + itoa(id) }
func petPath(id int64) string          { return "/api/v1/pet/" + itoa(id) }
func petsByUserPath(id int64) string   { return "/api/v1/pet/user/" + itoa(id) }
func feedingsByDatePath(id int64) string { return "/api/v1/feeding/pet/date/" + itoa(id) }

func itoa(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
