package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Brunoalemao2017/novo-app/internal/inventory"
)

type InventoryHandler struct {
	Store *inventory.Store
}

func (h *InventoryHandler) Register(r *chi.Mux) {
	r.Get("/products", h.listProducts)
	r.Post("/products", h.createProduct)
	r.Get("/products/low-stock", h.listLowStock)
	r.Get("/products/{id}", h.getProduct)
	r.Put("/products/{id}", h.updateProduct)
	r.Delete("/products/{id}", h.deleteProduct)
	r.Get("/dashboard", h.dashboard)
	r.Get("/categories", h.listCategories)
	r.Post("/categories", h.createCategory)
	r.Delete("/categories/{name}", h.deleteCategory)
}

// validateProduct applies the form rules. The store itself accepts anything,
// so everything must be rejected here.
func validateProduct(in inventory.ProductInput) map[string]string {
	errs := map[string]string{}
	if in.Name == "" {
		errs["name"] = "product name is required"
	}
	if in.Category == "" {
		errs["category"] = "category is required"
	}
	if in.Price <= 0 {
		errs["price"] = "price must be greater than zero"
	}
	if in.Quantity < 0 {
		errs["quantity"] = "quantity cannot be negative"
	}
	if in.Code == "" {
		errs["code"] = "product code is required"
	}
	if in.MinStock < 0 {
		errs["min_stock"] = "minimum stock cannot be negative"
	}
	if !in.Unit.Valid() {
		errs["unit"] = "unknown unit of measure"
	}
	return errs
}

// listProducts supports optional `q` (search term) and `category` filters,
// composed the way the product list screen applies them. Without params it
// returns the full collection.
func (h *InventoryHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	category := r.URL.Query().Get("category")

	products := h.Store.Search(q)
	if category != "" && category != inventory.CategoryAll {
		filtered := products[:0]
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	if products == nil {
		products = []inventory.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *InventoryHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in inventory.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if errs := validateProduct(in); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}
	p := h.Store.AddProduct(r.Context(), in)
	writeJSON(w, http.StatusCreated, p)
}

func (h *InventoryHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.Store.GetProduct(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// updateProduct replaces the full record, keeping the original identifier and
// creation timestamp.
func (h *InventoryHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	existing, ok := h.Store.GetProduct(id)
	if !ok {
		writeError(w, http.StatusNotFound, "product not found")
		return
	}

	var in inventory.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if errs := validateProduct(in); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
		return
	}

	p := inventory.Product{
		ID:          id,
		Name:        in.Name,
		Category:    in.Category,
		Price:       in.Price,
		Quantity:    in.Quantity,
		Description: in.Description,
		Code:        in.Code,
		MinStock:    in.MinStock,
		Unit:        in.Unit,
		CreatedAt:   existing.CreatedAt,
		Supplier:    in.Supplier,
	}
	h.Store.UpdateProduct(r.Context(), p)
	writeJSON(w, http.StatusOK, p)
}

func (h *InventoryHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	h.Store.RemoveProduct(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *InventoryHandler) listLowStock(w http.ResponseWriter, r *http.Request) {
	low := h.Store.LowStock()
	if low == nil {
		low = []inventory.Product{}
	}
	writeJSON(w, http.StatusOK, low)
}

// dashboard returns the aggregates driving the dashboard cards and the
// sidebar low-stock badge.
func (h *InventoryHandler) dashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"total_products": h.Store.TotalProducts(),
		"total_value":    h.Store.TotalValue(),
		"low_stock":      len(h.Store.LowStock()),
	})
}

func (h *InventoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Categories())
}

func (h *InventoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "category name is required")
		return
	}
	h.Store.AddCategory(r.Context(), req.Name)
	writeJSON(w, http.StatusCreated, map[string]string{"name": req.Name})
}

func (h *InventoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.Store.RemoveCategory(r.Context(), name); err != nil {
		if errors.Is(err, inventory.ErrReservedCategory) || errors.Is(err, inventory.ErrCategoryInUse) {
			writeError(w, http.StatusConflict, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
