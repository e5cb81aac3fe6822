package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/models"
	"github.com/Kaviya-Shalini/memolink/internal/services"
)

// MemoryLister defines the interface that the list-memories service must implement.
type MemoryLister interface {
	List(ctx context.Context, userID uuid.UUID, typeFilter string) ([]models.MemoryDB, error)
	Search(ctx context.Context, userID uuid.UUID, typeFilter, query string, useFuzzy bool) ([]models.MemoryDB, error)
}

// ListMemoriesResponse represents the list response
// swagger:model ListMemoriesResponse
type ListMemoriesResponse struct {
	// Matching records, newest first
	Memories []models.MemoryDB `json:"memories"`
}

// ListMemoriesErrorResponse represents an error response for listing memories
// swagger:model ListMemoriesErrorResponse
type ListMemoriesErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewListMemoriesHandler returns an HTTP handler that lists the caller's
// records, optionally filtered by type and a keyword query.
// @Summary List or search memory records
// @Description Returns records newest first. Supports an optional type filter, a keyword query matched against title, content and date, and a fuzzy matching mode.
// @Tags memories
// @Produce json
// @Param type query string false "Record kind filter"
// @Param q query string false "Keyword query"
// @Param fuzzy query bool false "Enable fuzzy matching"
// @Success 200 {object} handlers.ListMemoriesResponse "Matching records"
// @Failure 400 {object} handlers.ListMemoriesErrorResponse "Unknown record kind"
// @Failure 500 {object} handlers.ListMemoriesErrorResponse "Internal server error"
// @Router /memories [get]
// @Security BearerAuth
func NewListMemoriesHandler(svc MemoryLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ListMemoriesErrorResponse{Error: "Unauthorized"})
			return
		}

		typeFilter := r.URL.Query().Get("type")
		query := r.URL.Query().Get("q")
		useFuzzy := r.URL.Query().Get("fuzzy") == "true"

		var (
			memories []models.MemoryDB
			err      error
		)
		if query != "" {
			memories, err = svc.Search(r.Context(), userID, typeFilter, query, useFuzzy)
		} else {
			memories, err = svc.List(r.Context(), userID, typeFilter)
		}
		if err != nil {
			if errors.Is(err, services.ErrInvalidMemory) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(ListMemoriesErrorResponse{Error: err.Error()})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListMemoriesErrorResponse{Error: "Internal server error"})
			return
		}

		if memories == nil {
			memories = []models.MemoryDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListMemoriesResponse{Memories: memories})
	}
}
