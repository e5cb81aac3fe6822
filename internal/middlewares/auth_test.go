package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, sess *MockSessionReader)
		expectedStatus   int
		expectNextCalled bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "sometoken").
					Return(uuid.Nil, errors.New("invalid token"))
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "NoLiveSession",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return(userID, nil)
				sess.EXPECT().Get(gomock.Any(), userID).
					Return("", nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "StaleToken",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("oldtoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "oldtoken").
					Return(userID, nil)
				sess.EXPECT().Get(gomock.Any(), userID).
					Return("newertoken", nil)
			},
			expectedStatus:   http.StatusUnauthorized,
			expectNextCalled: false,
		},
		{
			name: "SessionStoreError",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return(userID, nil)
				sess.EXPECT().Get(gomock.Any(), userID).
					Return("", errors.New("redis down"))
			},
			expectedStatus:   http.StatusInternalServerError,
			expectNextCalled: false,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, sess *MockSessionReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetUserID(gomock.Any(), "validtoken").
					Return(userID, nil)
				sess.EXPECT().Get(gomock.Any(), userID).
					Return("validtoken", nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockSessions := NewMockSessionReader(ctrl)
			tt.mockSetup(mockTokener, mockSessions)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true

				gotID, ok := GetUserIDFromContext(r.Context())
				assert.True(t, ok)
				assert.Equal(t, userID, gotID)

				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockSessions)(next)
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
		})
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetUserIDFromContext(req.Context())
	assert.False(t, ok)
}
