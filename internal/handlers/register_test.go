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

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		username     string
		password     string
		mockSetup    func(m *MockRegisterer)
		expectedCode int
		expectedBody map[string]string
		rawBody      bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name:     "success",
			username: "john",
			password: "secret",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "secret").
					Return(nil)
			},
			expectedCode: 201,
			expectedBody: map[string]string{"message": "User registered successfully"},
		},
		{
			name:     "user already exists",
			username: "alice",
			password: "pass",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "pass").
					Return(services.ErrUserAlreadyExists)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username already exists"},
		},
		{
			name:     "empty credentials",
			username: "",
			password: "",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "", "").
					Return(services.ErrEmptyCredentials)
			},
			expectedCode: 400,
			expectedBody: map[string]string{"error": "Username and password are required"},
		},
		{
			name:     "internal server error",
			username: "bob",
			password: "pass",
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "pass").
					Return(errors.New("database failure"))
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
			mockSvc := NewMockRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewRegisterHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(RegisterRequest{
					Username: tt.username,
					Password: tt.password,
				})
				req = httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(bodyBytes))
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
