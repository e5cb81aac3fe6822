package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
)

// MemoryDeleter defines the interface that the delete-memory service must implement.
type MemoryDeleter interface {
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)
}

// DeleteMemoryResponse represents a successful delete response
// swagger:model DeleteMemoryResponse
type DeleteMemoryResponse struct {
	// Confirmation message
	// example: Memory deleted
	Message string `json:"message"`
}

// DeleteMemoryErrorResponse represents an error response for deleting a memory
// swagger:model DeleteMemoryErrorResponse
type DeleteMemoryErrorResponse struct {
	// Error message
	// default: Memory not found
	Error string `json:"error"`
}

// NewDeleteMemoryHandler returns an HTTP handler that removes one of the
// caller's records by id. Only the caller's own copy is removed; shared
// copies held by family accounts are untouched.
// @Summary Delete a memory record
// @Description Removes the caller's record with the given id.
// @Tags memories
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} handlers.DeleteMemoryResponse "Record deleted"
// @Failure 400 {object} handlers.DeleteMemoryErrorResponse "Invalid id"
// @Failure 404 {object} handlers.DeleteMemoryErrorResponse "Record not found"
// @Failure 500 {object} handlers.DeleteMemoryErrorResponse "Internal server error"
// @Router /memories/{id} [delete]
// @Security BearerAuth
func NewDeleteMemoryHandler(svc MemoryDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DeleteMemoryErrorResponse{Error: "Unauthorized"})
			return
		}

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DeleteMemoryErrorResponse{Error: "invalid record id"})
			return
		}

		deleted, err := svc.Delete(r.Context(), userID, id)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DeleteMemoryErrorResponse{Error: "Internal server error"})
			return
		}
		if !deleted {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(DeleteMemoryErrorResponse{Error: "Memory not found"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteMemoryResponse{Message: "Memory deleted"})
	}
}
