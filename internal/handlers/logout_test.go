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
)

func TestLogoutHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		authorized   bool
		mockSetup    func(m *MockLogouter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:       "success",
			authorized: true,
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any(), userID).Return(nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Logged out"},
		},
		{
			name:         "no user in context",
			authorized:   false,
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Unauthorized"},
		},
		{
			name:       "internal server error",
			authorized: true,
			mockSetup: func(m *MockLogouter) {
				m.EXPECT().Logout(gomock.Any(), userID).Return(errors.New("redis down"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLogouter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLogoutHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/logout", nil)
			if tt.authorized {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}

			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
