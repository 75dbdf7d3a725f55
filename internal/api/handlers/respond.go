package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wonny/euroquote/internal/contracts"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}

// statusForQuoteError maps a quote pipeline error to an HTTP status
func statusForQuoteError(err error) int {
	var invalid *contracts.InvalidNumberError
	var transport *contracts.TransportError

	switch {
	case errors.Is(err, contracts.ErrQuoteNotFound):
		return http.StatusNotFound
	case errors.As(err, &invalid), errors.As(err, &transport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
