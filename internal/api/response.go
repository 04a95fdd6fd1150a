package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/meridianlabs-io/staking-rewards-ledger/internal/types"
)

type errorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode api response")
	}
}

func writeError(w http.ResponseWriter, err *types.Error) {
	writeJSON(w, err.StatusCode, errorResponse{
		ErrorCode: err.ErrorCode.String(),
		Message:   err.Error(),
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, types.NewValidationFailedError(err))
		return false
	}
	return true
}
