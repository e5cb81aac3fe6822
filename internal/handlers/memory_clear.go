package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
)

// MemoryClearer defines the interface that the clear-memories service must implement.
type MemoryClearer interface {
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}

// ClearMemoriesResponse represents a successful clear response
// swagger:model ClearMemoriesResponse
type ClearMemoriesResponse struct {
	// Confirmation message
	// example: All memories deleted
	Message string `json:"message"`
}

// ClearMemoriesErrorResponse represents an error response for clearing memories
// swagger:model ClearMemoriesErrorResponse
type ClearMemoriesErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewClearMemoriesHandler returns an HTTP handler that removes every
// record owned by the caller, including copies that were shared to them.
// @Summary Delete all memory records
// @Description Removes all of the caller's records.
// @Tags memories
// @Produce json
// @Success 200 {object} handlers.ClearMemoriesResponse "All records deleted"
// @Failure 500 {object} handlers.ClearMemoriesErrorResponse "Internal server error"
// @Router /memories [delete]
// @Security BearerAuth
func NewClearMemoriesHandler(svc MemoryClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ClearMemoriesErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.DeleteAll(r.Context(), userID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ClearMemoriesErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ClearMemoriesResponse{Message: "All memories deleted"})
	}
}
