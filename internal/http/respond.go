package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/AlanEez/EntregaFinal-Estevez/internal/repository"
)

type successResponse struct {
	Status  string      `json:"status"`
	Payload interface{} `json:"payload"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondSuccess(w http.ResponseWriter, status int, payload interface{}) {
	respondJSON(w, status, successResponse{Status: "success", Payload: payload})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Status: "error", Message: message})
}

// writeError maps service errors onto the wire contract: the not-found
// sentinels become 404 with their message, everything else collapses
// to a generic 500 with the cause logged only.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "Product not found")
	case errors.Is(err, repository.ErrCartNotFound):
		respondError(w, http.StatusNotFound, "Cart not found")
	case errors.Is(err, repository.ErrItemNotFound):
		respondError(w, http.StatusNotFound, "Product not found in cart")
	default:
		log.Printf("request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}
