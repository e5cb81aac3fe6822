package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
)

// Logouter defines the interface that the logout service must implement.
type Logouter interface {
	Logout(ctx context.Context, userID uuid.UUID) error
}

// LogoutResponse represents a successful logout response
// swagger:model LogoutResponse
type LogoutResponse struct {
	// Success message
	// default: Logged out
	Message string `json:"message"`
}

// LogoutErrorResponse represents an error response for logout
// swagger:model LogoutErrorResponse
type LogoutErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewLogoutHandler returns an HTTP handler that revokes the caller's session.
// @Summary Log out
// @Description Revokes the server-side session; the presented token stops working.
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.LogoutResponse "Logged out"
// @Failure 401 {object} handlers.LogoutErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.LogoutErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LogoutErrorResponse{Error: "Unauthorized"})
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LogoutErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LogoutResponse{Message: "Logged out"})
	}
}
