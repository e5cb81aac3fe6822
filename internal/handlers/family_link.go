package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/services"
)

// FamilyLinker defines the interface that the family-link service must implement.
type FamilyLinker interface {
	Link(ctx context.Context, userID uuid.UUID, familyUsername string) error
}

// FamilyLinkRequest represents a request to link a family account
// swagger:model FamilyLinkRequest
type FamilyLinkRequest struct {
	// Username of the account whose future records should be shared to the caller
	// required: true
	FamilyUsername string `json:"family_username"`
}

// FamilyLinkResponse represents a successful link response
// swagger:model FamilyLinkResponse
type FamilyLinkResponse struct {
	// Confirmation message
	// example: Family member linked
	Message string `json:"message"`
}

// FamilyLinkErrorResponse represents an error response for linking an account
// swagger:model FamilyLinkErrorResponse
type FamilyLinkErrorResponse struct {
	// Error message
	// default: Family member username not found
	Error string `json:"error"`
}

// NewFamilyLinkHandler returns an HTTP handler that links the caller to
// another account by username. After linking, every record the other
// account adds is copied to the caller.
// @Summary Link a family account
// @Description Creates a directed link from the caller to the named account.
// @Tags family
// @Accept json
// @Produce json
// @Param familyLinkRequest body handlers.FamilyLinkRequest true "Account to link"
// @Success 201 {object} handlers.FamilyLinkResponse "Link created"
// @Failure 400 {object} handlers.FamilyLinkErrorResponse "Self link or empty username"
// @Failure 404 {object} handlers.FamilyLinkErrorResponse "Username not found"
// @Failure 409 {object} handlers.FamilyLinkErrorResponse "Already linked"
// @Failure 500 {object} handlers.FamilyLinkErrorResponse "Internal server error"
// @Router /family/links [post]
// @Security BearerAuth
func NewFamilyLinkHandler(svc FamilyLinker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FamilyLinkErrorResponse{Error: "Unauthorized"})
			return
		}

		var req FamilyLinkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FamilyUsername == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FamilyLinkErrorResponse{Error: "family_username is required"})
			return
		}

		if err := svc.Link(r.Context(), userID, req.FamilyUsername); err != nil {
			switch {
			case errors.Is(err, services.ErrFamilyUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(FamilyLinkErrorResponse{Error: "Family member username not found"})
			case errors.Is(err, services.ErrAlreadyLinked):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(FamilyLinkErrorResponse{Error: "Family member already linked"})
			case errors.Is(err, services.ErrSelfLink):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FamilyLinkErrorResponse{Error: "Cannot link to own account"})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(FamilyLinkErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(FamilyLinkResponse{Message: "Family member linked"})
	}
}
