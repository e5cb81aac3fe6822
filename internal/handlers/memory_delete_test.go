package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
)

func TestDeleteMemoryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		authorized   bool
		target       string
		mockSetup    func(m *MockMemoryDeleter)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name:       "success",
			authorized: true,
			target:     "/memories/42",
			mockSetup: func(m *MockMemoryDeleter) {
				m.EXPECT().Delete(gomock.Any(), userID, int64(42)).Return(true, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"message": "Memory deleted"},
		},
		{
			name:       "not found",
			authorized: true,
			target:     "/memories/99",
			mockSetup: func(m *MockMemoryDeleter) {
				m.EXPECT().Delete(gomock.Any(), userID, int64(99)).Return(false, nil)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Memory not found"},
		},
		{
			name:         "invalid id",
			authorized:   true,
			target:       "/memories/abc",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid record id"},
		},
		{
			name:       "internal server error",
			authorized: true,
			target:     "/memories/42",
			mockSetup: func(m *MockMemoryDeleter) {
				m.EXPECT().Delete(gomock.Any(), userID, int64(42)).Return(false, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "no user in context",
			authorized:   false,
			target:       "/memories/42",
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockMemoryDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			router := chi.NewRouter()
			router.Delete("/memories/{id}", NewDeleteMemoryHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			if tt.authorized {
				req = req.WithContext(middlewares.SetUserIDToContext(req.Context(), userID))
			}

			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}
