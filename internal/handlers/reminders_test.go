package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/models"
)

func TestDueRemindersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	due := []models.MemoryDB{
		{ID: 7, UserID: userID, DataType: "key_date", Title: "Anniversary", Content: "flowers"},
	}

	tests := []struct {
		name          string
		authorized    bool
		mockSetup     func(m *MockReminderLister)
		expectedCode  int
		expectedCount int
	}{
		{
			name:       "due reminders returned",
			authorized: true,
			mockSetup: func(m *MockReminderLister) {
				m.EXPECT().DueReminders(gomock.Any(), userID, gomock.Any()).Return(due, nil)
			},
			expectedCode:  200,
			expectedCount: 1,
		},
		{
			name:       "nothing due is an empty array",
			authorized: true,
			mockSetup: func(m *MockReminderLister) {
				m.EXPECT().DueReminders(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
			},
			expectedCode:  200,
			expectedCount: 0,
		},
		{
			name:       "internal server error",
			authorized: true,
			mockSetup: func(m *MockReminderLister) {
				m.EXPECT().DueReminders(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
		},
		{
			name:         "no user in context",
			authorized:   false,
			expectedCode: 401,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockReminderLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewDueRemindersHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/reminders/due", nil)
			if tt.authorized {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == 200 {
				var resp DueRemindersResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.NotNil(t, resp.Reminders)
				assert.Len(t, resp.Reminders, tt.expectedCount)
			}
		})
	}
}
