package utils

import (
	"encoding/json"
	"net/http"

	"CapIot.esp32mock/internal/models"
	"github.com/rs/zerolog"
)

// RespondWithJSON sends a JSON success response.
// The payload is encoded before any header is written so an encoding
// failure still produces a clean 500.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, statusCode int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
		RespondWithError(w, r, models.EncodingFailed())
		return
	}
	write(w, r, statusCode, body)
}

// RespondWithError sends a JSON error response using the APIError model.
func RespondWithError(w http.ResponseWriter, r *http.Request, apiErr models.APIError) {
	body, err := json.Marshal(apiErr)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to encode error response")
		http.Error(w, "Failed to send error response", http.StatusInternalServerError)
		return
	}
	write(w, r, apiErr.StatusCode, body)
}

func write(w http.ResponseWriter, r *http.Request, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(body, '\n')); err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("Failed to write response body")
	}
}
