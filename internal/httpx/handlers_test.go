package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Brunoalemao2017/novo-app/internal/inventory"
	"github.com/Brunoalemao2017/novo-app/internal/mirror"
	"github.com/Brunoalemao2017/novo-app/internal/users"
)

func newTestRouter(t *testing.T) (*chi.Mux, *inventory.Store) {
	t.Helper()
	ctx := context.Background()
	m := mirror.NewMemory()
	store := inventory.New(ctx, m, "inventory-test")
	directory := users.New(ctx, m, "users-test")

	r := NewRouter()
	(&InventoryHandler{Store: store}).Register(r)
	(&AuthHandler{Directory: directory}).Register(r)
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func validProduct() map[string]any {
	return map[string]any{
		"name":      "Chair",
		"category":  "Office",
		"price":     50.0,
		"quantity":  2,
		"code":      "CH-1",
		"min_stock": 5,
		"unit":      "un",
	}
}

func TestCreateProduct(t *testing.T) {
	r, store := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/products", validProduct())
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var p inventory.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID == "" || p.CreatedAt.IsZero() {
		t.Errorf("expected generated id and timestamp: %+v", p)
	}
	if store.TotalProducts() != 6 {
		t.Errorf("expected 6 products, got %d", store.TotalProducts())
	}
}

func TestCreateProductValidation(t *testing.T) {
	r, store := newTestRouter(t)

	payload := validProduct()
	payload["name"] = ""
	payload["price"] = 0

	rec := doJSON(t, r, http.MethodPost, "/products", payload)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Errors["name"] == "" || resp.Errors["price"] == "" {
		t.Errorf("expected field errors for name and price, got %v", resp.Errors)
	}
	if store.TotalProducts() != 5 {
		t.Errorf("invalid payload must not reach the store, got %d products", store.TotalProducts())
	}
}

func TestGetProductNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/products/nope", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestUpdateProductKeepsCreatedAt(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/products", validProduct())
	var created inventory.Product
	_ = json.Unmarshal(rec.Body.Bytes(), &created)

	update := validProduct()
	update["name"] = "Gamer Chair"
	update["quantity"] = 12
	rec = doJSON(t, r, http.MethodPut, "/products/"+created.ID, update)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var updated inventory.Product
	_ = json.Unmarshal(rec.Body.Bytes(), &updated)
	if updated.Name != "Gamer Chair" || updated.Quantity != 12 {
		t.Errorf("record not replaced: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("creation timestamp changed: %v != %v", updated.CreatedAt, created.CreatedAt)
	}
}

func TestUpdateProductUnknownID(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPut, "/products/ghost", validProduct())
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestDeleteProduct(t *testing.T) {
	r, store := newTestRouter(t)

	rec := doJSON(t, r, http.MethodDelete, "/products/1", nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if store.TotalProducts() != 4 {
		t.Errorf("expected 4 products, got %d", store.TotalProducts())
	}

	// deleting again is still a 204 no-op
	rec = doJSON(t, r, http.MethodDelete, "/products/1", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204 for absent id, got %d", rec.Code)
	}
}

func TestListProductsFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		path string
		want int
	}{
		{"/products", 5},
		{"/products?category=Eletr%C3%B4nicos", 2},
		{"/products?category=Todas", 5},
		{"/products?q=notebook", 1},
		{"/products?q=mov-&category=M%C3%B3veis", 2},
		{"/products?q=notebook&category=M%C3%B3veis", 0},
	}
	for _, c := range cases {
		rec := doJSON(t, r, http.MethodGet, c.path, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", c.path, rec.Code)
		}
		var got []inventory.Product
		if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
			t.Fatalf("%s: decode: %v", c.path, err)
		}
		if len(got) != c.want {
			t.Errorf("%s: got %d products, want %d", c.path, len(got), c.want)
		}
	}
}

func TestLowStockAndDashboard(t *testing.T) {
	r, _ := newTestRouter(t)

	// chair: quantity 2 <= min stock 5
	doJSON(t, r, http.MethodPost, "/products", validProduct())

	rec := doJSON(t, r, http.MethodGet, "/products/low-stock", nil)
	var low []inventory.Product
	_ = json.Unmarshal(rec.Body.Bytes(), &low)
	if len(low) != 1 {
		t.Errorf("expected 1 low stock product, got %d", len(low))
	}

	rec = doJSON(t, r, http.MethodGet, "/dashboard", nil)
	var dash struct {
		TotalProducts int     `json:"total_products"`
		TotalValue    float64 `json:"total_value"`
		LowStock      int     `json:"low_stock"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &dash); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}
	if dash.TotalProducts != 6 || dash.LowStock != 1 {
		t.Errorf("unexpected dashboard: %+v", dash)
	}
	if dash.TotalValue <= 0 {
		t.Errorf("expected positive total value, got %v", dash.TotalValue)
	}
}

func TestCategories(t *testing.T) {
	r, store := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/categories", map[string]string{"name": "Limpeza"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	rec = doJSON(t, r, http.MethodGet, "/categories", nil)
	var cats []string
	_ = json.Unmarshal(rec.Body.Bytes(), &cats)
	if len(cats) != 5 {
		t.Errorf("expected 5 categories, got %v", cats)
	}

	// in use: blocked
	rec = doJSON(t, r, http.MethodDelete, "/categories/Papelaria", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for in-use category, got %d", rec.Code)
	}

	// sentinel: always blocked
	rec = doJSON(t, r, http.MethodDelete, "/categories/Todas", nil)
	if rec.Code != http.StatusConflict {
		t.Errorf("expected 409 for sentinel, got %d", rec.Code)
	}

	// unused: removable
	store.RemoveProduct(context.Background(), "5")
	rec = doJSON(t, r, http.MethodDelete, "/categories/Papelaria", nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d: %s", rec.Code, rec.Body)
	}
}

func TestRegisterAndLogin(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/auth/register", map[string]string{
		"nome":            "Maria",
		"email":           "maria@exemplo.com",
		"senha":           "segredo1",
		"confirmar_senha": "segredo1",
		"cargo":           "gerente",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if _, ok := resp["senha"]; ok {
		t.Error("register response must not expose the password")
	}

	rec = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "maria@exemplo.com",
		"senha": "segredo1",
	})
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", rec.Code, rec.Body)
	}

	rec = doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "maria@exemplo.com",
		"senha": "errada99",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestLoginSeededAdmin(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/auth/login", map[string]string{
		"email": "admin@exemplo.com",
		"senha": "admin123",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body)
	}
	var resp struct {
		OK   bool `json:"ok"`
		User struct {
			Role string `json:"cargo"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.OK || resp.User.Role != "admin" {
		t.Errorf("unexpected login response: %s", rec.Body)
	}
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestRouter(t)

	cases := []struct {
		name string
		body map[string]string
	}{
		{"missing name", map[string]string{"email": "a@b.com", "senha": "123456", "confirmar_senha": "123456"}},
		{"missing email", map[string]string{"nome": "A", "senha": "123456", "confirmar_senha": "123456"}},
		{"invalid email", map[string]string{"nome": "A", "email": "ab.com", "senha": "123456", "confirmar_senha": "123456"}},
		{"short password", map[string]string{"nome": "A", "email": "a@b.com", "senha": "12345", "confirmar_senha": "12345"}},
		{"mismatch", map[string]string{"nome": "A", "email": "a@b.com", "senha": "123456", "confirmar_senha": "654321"}},
		{"duplicate email", map[string]string{"nome": "A", "email": "admin@exemplo.com", "senha": "123456", "confirmar_senha": "123456"}},
		{"unknown role", map[string]string{"nome": "A", "email": "a@b.com", "senha": "123456", "confirmar_senha": "123456", "cargo": "root"}},
	}
	for _, c := range cases {
		rec := doJSON(t, r, http.MethodPost, "/auth/register", c.body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", c.name, rec.Code)
		}
	}
}
