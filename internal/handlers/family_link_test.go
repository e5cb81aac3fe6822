package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/Kaviya-Shalini/memolink/internal/middlewares"
	"github.com/Kaviya-Shalini/memolink/internal/services"
)

func TestFamilyLinkHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		authorized   bool
		username     string
		mockSetup    func(m *MockFamilyLinker)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool
	}{
		{
			name:       "success",
			authorized: true,
			username:   "grandma",
			mockSetup: func(m *MockFamilyLinker) {
				m.EXPECT().Link(gomock.Any(), userID, "grandma").Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "Family member linked"},
		},
		{
			name:       "unknown username",
			authorized: true,
			username:   "ghost",
			mockSetup: func(m *MockFamilyLinker) {
				m.EXPECT().Link(gomock.Any(), userID, "ghost").Return(services.ErrFamilyUserNotFound)
			},
			expectedCode: 404,
			expectedBody: map[string]string{"error": "Family member username not found"},
		},
		{
			name:       "already linked",
			authorized: true,
			username:   "grandma",
			mockSetup: func(m *MockFamilyLinker) {
				m.EXPECT().Link(gomock.Any(), userID, "grandma").Return(services.ErrAlreadyLinked)
			},
			expectedCode: 409,
			expectedBody: map[string]string{"error": "Family member already linked"},
		},
		{
			name:       "self link",
			authorized: true,
			username:   "me",
			mockSetup: func(m *MockFamilyLinker) {
				m.EXPECT().Link(gomock.Any(), userID, "me").Return(services.ErrSelfLink)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Cannot link to own account"},
		},
		{
			name:         "empty username",
			authorized:   true,
			username:     "",
			expectedCode: 400,
			expectedBody: map[string]string{"error": "family_username is required"},
		},
		{
			name:         "invalid json",
			authorized:   true,
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "family_username is required"},
		},
		{
			name:       "internal server error",
			authorized: true,
			username:   "grandma",
			mockSetup: func(m *MockFamilyLinker) {
				m.EXPECT().Link(gomock.Any(), userID, "grandma").Return(errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "no user in context",
			authorized:   false,
			username:     "grandma",
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Unauthorized"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockFamilyLinker(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewFamilyLinkHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/family/links", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(FamilyLinkRequest{FamilyUsername: tt.username})
				req = httptest.NewRequest(http.MethodPost, "/family/links", bytes.NewBuffer(bodyBytes))
			}
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
