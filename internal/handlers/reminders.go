package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/Kaviya-Shalini/memolink/internal/logger"
	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

// ReminderLister defines the interface that the due-reminders service must implement.
type ReminderLister interface {
	DueReminders(ctx context.Context, userID uuid.UUID, now time.Time) ([]models.MemoryDB, error)
}

// DueRemindersResponse represents the due-reminders response
// swagger:model DueRemindersResponse
type DueRemindersResponse struct {
	// Records whose reminder moment fell within the last minute
	Reminders []models.MemoryDB `json:"reminders"`
}

// DueRemindersErrorResponse represents an error response for polling reminders
// swagger:model DueRemindersErrorResponse
type DueRemindersErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewDueRemindersHandler returns an HTTP handler for the reminder poll.
// Clients call it periodically; a record shows up exactly while its
// reminder moment sits inside the sixty second window before now.
// @Summary Poll due reminders
// @Description Returns the caller's records whose date and time fell within the past minute.
// @Tags reminders
// @Produce json
// @Success 200 {object} handlers.DueRemindersResponse "Due records"
// @Failure 500 {object} handlers.DueRemindersErrorResponse "Internal server error"
// @Router /reminders/due [get]
// @Security BearerAuth
func NewDueRemindersHandler(svc ReminderLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middlewares.GetUserIDFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DueRemindersErrorResponse{Error: "Unauthorized"})
			return
		}

		reminders, err := svc.DueReminders(r.Context(), userID, time.Now())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(DueRemindersErrorResponse{Error: "Internal server error"})
			return
		}

		if reminders == nil {
			reminders = []models.MemoryDB{}
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DueRemindersResponse{Reminders: reminders})
	}
}
