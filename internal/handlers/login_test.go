package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/Kaviya-Shalini/memolink/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		password     string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool
	}{
		{
			name:     "success",
			username: "john",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("JWT_TOKEN", nil)
			},
			expectedCode: 200,
			expectedBody: map[string]string{"token": "JWT_TOKEN"},
		},
		{
			name:     "wrong password",
			username: "john",
			password: "nope",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "nope").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid username or password"},
		},
		{
			// unknown users get the exact same body as wrong passwords
			name:     "unknown user",
			username: "ghost",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "ghost", "secret").
					Return("", services.ErrUserDoesNotExist)
			},
			expectedCode: 401,
			expectedBody: map[string]string{"error": "Invalid username or password"},
		},
		{
			name:     "internal server error",
			username: "john",
			password: "secret",
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "john", "secret").
					Return("", errors.New("session store down"))
			},
			expectedCode: 500,
			expectedBody: map[string]string{"error": "Internal server error"},
		},
		{
			name:         "invalid json",
			rawBody:      true,
			expectedCode: 400,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewLoginHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(LoginRequest{
					Username: tt.username,
					Password: tt.password,
				})
				req = httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(bodyBytes))
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
