package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

// FamilyLister defines the interface that the family-list service must implement.
type FamilyLister interface {
	LinkedBy(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error)
	Members(ctx context.Context, userID uuid.UUID) ([]models.FamilyMember, error)
}

// FamilyLinksResponse represents both directions of the caller's links
// swagger:model FamilyLinksResponse
type FamilyLinksResponse struct {
	// Accounts the caller linked to; their new records flow to the caller
	Members []models.FamilyMember `json:"members"`

	// Accounts that linked to the caller; the caller's new records flow to them
	LinkedBy []models.FamilyMember `json:"linked_by"`
}

// FamilyLinksErrorResponse represents an error response for listing links
// swagger:model FamilyLinksErrorResponse
type FamilyLinksErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewFamilyLinksHandler returns an HTTP handler that lists the caller's
// family links in both directions.
// @Summary List family links
// @Description Returns the accounts the caller linked to and the accounts that linked to the caller, each ordered by username.
// @Tags family
// @Produce json
// @Success 200 {object} handlers.FamilyLinksResponse "Linked accounts"
// @Failure 500 {object} handlers.FamilyLinksErrorResponse "Internal server error"
// @Router /family/links [get]
// @Security BearerAuth
func NewFamilyLinksHandler(svc FamilyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FamilyLinksErrorResponse{Error: "Unauthorized"})
			return
		}

		members, err := svc.Members(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FamilyLinksErrorResponse{Error: "Internal server error"})
			return
		}
		linkedBy, err := svc.LinkedBy(r.Context(), userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FamilyLinksErrorResponse{Error: "Internal server error"})
			return
		}

		if members == nil {
			members = []models.FamilyMember{}
		}
		if linkedBy == nil {
			linkedBy = []models.FamilyMember{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(FamilyLinksResponse{Members: members, LinkedBy: linkedBy})
	}
}
