package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromContext_Absent(t *testing.T) {
	_, ok := FromContext(context.Background())
	require.False(t, ok)
}

func sessionProbe(captured *Session, found *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := FromContext(r.Context())
		*captured = sess
		*found = ok
	})
}

func TestMiddleware_InjectsSession(t *testing.T) {
	svc := newTestService(t)
	token, _, err := svc.Login(context.Background(), "Robert_Fripp", "Kingoftheking")
	require.NoError(t, err)

	var sess Session
	var found bool
	handler := Middleware([]byte("test-secret"))(sessionProbe(&sess, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, found)
	require.Equal(t, "Robert_Fripp", sess.Username)
	require.Equal(t, "admin", sess.Category)
}

func TestMiddleware_NoTokenPassesThrough(t *testing.T) {
	var sess Session
	var found bool
	handler := Middleware([]byte("test-secret"))(sessionProbe(&sess, &found))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	require.False(t, found)
}

func TestMiddleware_RejectsBadToken(t *testing.T) {
	var sess Session
	var found bool
	handler := Middleware([]byte("test-secret"))(sessionProbe(&sess, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.False(t, found)
}

func TestMiddleware_RejectsWrongKey(t *testing.T) {
	svc := newTestService(t)
	token, _, err := svc.Login(context.Background(), "Robert_Wyatt", "RockBottom")
	require.NoError(t, err)

	var sess Session
	var found bool
	handler := Middleware([]byte("a-different-secret"))(sessionProbe(&sess, &found))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)
	require.False(t, found)
}
