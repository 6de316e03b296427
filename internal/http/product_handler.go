package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"github.com/AlanEez/EntregaFinal-Estevez/internal/service"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService defines what the product handlers need from the
// catalog. Consumers define this interface, not the service package.
type CatalogService interface {
	List(ctx context.Context, p service.ListParams) (*service.ProductPage, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, patch domain.ProductPatch) (*domain.Product, error)
	Delete(ctx context.Context, id string) (*domain.Product, error)
}

type ProductHandler struct {
	catalog CatalogService
}

func NewProductHandler(catalog CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.catalog.List(r.Context(), service.ListParams{
		Limit:    q.Get("limit"),
		Page:     q.Get("page"),
		Sort:     q.Get("sort"),
		Category: q.Get("category"),
		MinPrice: q.Get("minPrice"),
		MaxPrice: q.Get("maxPrice"),
		Search:   q.Get("search"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	// The listing envelope carries its own status field.
	respondJSON(w, http.StatusOK, page)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(r.Context(), chi.URLParam(r, "pid"))
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, product)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var p domain.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, err)
		return
	}
	p.ID = primitive.NilObjectID // the store assigns identity

	created, err := h.catalog.Create(r.Context(), p)
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, created)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch domain.ProductPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, err)
		return
	}

	updated, err := h.catalog.Update(r.Context(), chi.URLParam(r, "pid"), patch)
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, updated)
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.catalog.Delete(r.Context(), chi.URLParam(r, "pid"))
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, deleted)
}
