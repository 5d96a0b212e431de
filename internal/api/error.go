package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/stakegov/governance-engine/internal/types"
)

type errorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func writeError(w http.ResponseWriter, eErr *types.Error) {
	resp := errorResponse{
		ErrorCode: eErr.ErrorCode.String(),
		Message:   eErr.Error(),
	}
	writeJSON(w, eErr.StatusCode, resp)
}

func writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("failed to encode response body")
	}
}

func badRequest(msg string) *types.Error {
	return types.NewErrorWithMsg(http.StatusBadRequest, types.ValidationError, msg)
}
