package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoggingMiddleware(t *testing.T) {
	log := zap.NewNop().Sugar()

	var seenReqID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenReqID = GetRequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	handler := LoggingMiddleware(log)(next)
	req := httptest.NewRequest(http.MethodGet, "/memories", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "short and stout", rr.Body.String())

	// Request id must be a UUID, present in both context and header
	assert.NotEmpty(t, seenReqID)
	_, err := uuid.Parse(seenReqID)
	assert.NoError(t, err)
	assert.Equal(t, seenReqID, rr.Header().Get("X-Request-ID"))
}

func TestGetRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, "", GetRequestIDFromContext(req.Context()))
}
