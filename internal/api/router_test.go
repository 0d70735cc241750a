package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func doRequest(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return resp
}

// TestRouter_EndToEnd drives the whole HTTP surface against one router
// instance: the Prometheus middleware registers collectors globally, so the
// router is built once and the steps share its in-memory state.
func TestRouter_EndToEnd(t *testing.T) {
	e, err := NewRouter("segredo-de-teste", time.Hour, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewRouter failed: %v", err)
	}

	var token string

	t.Run("register", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/users/register", "",
			`{"name":"Ana","email":"ana@example.com","password":"s3nha"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		user := decodeBody(t, rec)["user"].(map[string]any)
		if user["id"] != float64(1) || user["email"] != "ana@example.com" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("register duplicate email", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/users/register", "",
			`{"name":"Ana de Novo","email":"ana@example.com","password":"outra"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "e-mail já cadastrado" {
			t.Fatalf("unexpected error: %+v", resp)
		}
	})

	t.Run("register missing fields", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/users/register", "", `{"name":"Ana"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/users/login", "",
			`{"email":"ana@example.com","password":"errada"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "credenciais inválidas" {
			t.Fatalf("unexpected error: %+v", resp)
		}
	})

	t.Run("login unknown email", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/users/login", "",
			`{"email":"ninguem@example.com","password":"x"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "usuário não encontrado" {
			t.Fatalf("unexpected error: %+v", resp)
		}
	})

	t.Run("login", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/users/login", "",
			`{"email":"ana@example.com","password":"s3nha"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody(t, rec)
		token, _ = resp["token"].(string)
		if token == "" {
			t.Fatalf("expected token in response: %+v", resp)
		}
	})

	t.Run("checkout without token", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/checkout", "",
			`{"items":[{"productId":1,"quantity":1}],"paymentMethod":"boleto"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("checkout with bad token", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/checkout", "falso",
			`{"items":[{"productId":1,"quantity":1}],"paymentMethod":"boleto"}`)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("checkout boleto", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/checkout", token,
			`{"items":[{"productId":1,"quantity":2},{"productId":2,"quantity":1}],"freight":10,"paymentMethod":"boleto"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody(t, rec)
		if resp["total"] != 139.7 || resp["userId"] != float64(1) {
			t.Fatalf("unexpected payload: %+v", resp)
		}
	})

	t.Run("checkout credit card", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/checkout", token,
			`{"items":[{"productId":1,"quantity":2},{"productId":2,"quantity":1}],"freight":10,"paymentMethod":"credit_card","cardData":{"number":"4111111111111111","holder":"ANA","expiry":"12/30","cvv":"123"}}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if resp := decodeBody(t, rec); resp["total"] != 132.72 {
			t.Fatalf("expected discounted total 132.72, got %+v", resp)
		}
	})

	t.Run("checkout credit card without card data", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/checkout", token,
			`{"items":[{"productId":1,"quantity":1}],"paymentMethod":"credit_card"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "dados do cartão são obrigatórios" {
			t.Fatalf("unexpected error: %+v", resp)
		}
	})

	t.Run("checkout unknown product", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/api/checkout", token,
			`{"items":[{"productId":999,"quantity":1}],"paymentMethod":"boleto"}`)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		if resp := decodeBody(t, rec); resp["error"] != "produto não encontrado" {
			t.Fatalf("unexpected error: %+v", resp)
		}
	})

	t.Run("products", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/products", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var products []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &products); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if len(products) != 4 {
			t.Fatalf("expected 4 products, got %d", len(products))
		}
	})

	t.Run("graphql users query", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/graphql", "",
			`{"query":"{ users { id name email } }"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		data := decodeBody(t, rec)["data"].(map[string]any)
		users := data["users"].([]any)
		if len(users) != 1 {
			t.Fatalf("expected the registered user, got %+v", users)
		}
	})

	t.Run("graphql checkout with bearer token", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/graphql", token,
			`{"query":"mutation { checkout(items: [{productId: 3, quantity: 2}], freight: 5, paymentMethod: \"boleto\") { userId total } }"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		resp := decodeBody(t, rec)
		if errs, ok := resp["errors"]; ok {
			t.Fatalf("unexpected graphql errors: %+v", errs)
		}
		checkout := resp["data"].(map[string]any)["checkout"].(map[string]any)
		if checkout["total"] != float64(44) || checkout["userId"] != float64(1) {
			t.Fatalf("unexpected payload: %+v", checkout)
		}
	})

	t.Run("graphql checkout without token", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/graphql", "",
			`{"query":"mutation { checkout(items: [{productId: 1, quantity: 1}], paymentMethod: \"boleto\") { total } }"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 with error entries, got %d", rec.Code)
		}
		resp := decodeBody(t, rec)
		errs, ok := resp["errors"].([]any)
		if !ok || len(errs) == 0 {
			t.Fatalf("expected graphql errors, got %+v", resp)
		}
		first := errs[0].(map[string]any)
		if first["message"] != "não autorizado" {
			t.Fatalf("unexpected message: %+v", first)
		}
	})

	t.Run("health", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/health", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("readiness", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/health/ready", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("metrics", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/metrics", "", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "commerce_users_registered_total") {
			t.Fatalf("expected commerce metrics in exposition")
		}
	})
}
