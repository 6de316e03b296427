package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/domain"
	"github.com/go-chi/chi/v5"
)

// CartService defines what the cart handlers need from the cart
// line-item manager.
type CartService interface {
	Create(ctx context.Context) (*domain.Cart, error)
	Get(ctx context.Context, cartID string) (*domain.ResolvedCart, error)
	AddProduct(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	SetQuantity(ctx context.Context, cartID, productID string, quantity int) (*domain.Cart, error)
	RemoveProduct(ctx context.Context, cartID, productID string) (*domain.Cart, error)
	ReplaceProducts(ctx context.Context, cartID string, items []domain.CartItem) (*domain.Cart, error)
	Delete(ctx context.Context, cartID string) (*domain.Cart, error)
}

type CartHandler struct {
	carts CartService
}

func NewCartHandler(carts CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type replaceProductsRequest struct {
	Products []domain.CartItem `json:"products"`
}

func (h *CartHandler) Create(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Create(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusCreated, cart)
}

func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Get(r.Context(), chi.URLParam(r, "cid"))
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, cart)
}

func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	// The body is optional; an absent quantity defaults to one item.
	var req quantityRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, err)
			return
		}
	}

	cart, err := h.carts.AddProduct(r.Context(), chi.URLParam(r, "cid"), chi.URLParam(r, "pid"), req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, cart)
}

func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}

	cart, err := h.carts.SetQuantity(r.Context(), chi.URLParam(r, "cid"), chi.URLParam(r, "pid"), req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, cart)
}

func (h *CartHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.RemoveProduct(r.Context(), chi.URLParam(r, "cid"), chi.URLParam(r, "pid"))
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, cart)
}

func (h *CartHandler) Replace(w http.ResponseWriter, r *http.Request) {
	var req replaceProductsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, err)
		return
	}

	cart, err := h.carts.ReplaceProducts(r.Context(), chi.URLParam(r, "cid"), req.Products)
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, cart)
}

func (h *CartHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.Delete(r.Context(), chi.URLParam(r, "cid"))
	if err != nil {
		writeError(w, err)
		return
	}

	respondSuccess(w, http.StatusOK, cart)
}
