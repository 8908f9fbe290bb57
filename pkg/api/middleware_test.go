package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adfharrison1/stock-tracker/pkg/auth"
	"github.com/adfharrison1/stock-tracker/pkg/store"
)

func newAuthService(t *testing.T) *auth.Service {
	t.Helper()

	st, err := store.Open(store.WithDataDir(t.TempDir()), store.WithFileName("auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	users, err := auth.NewUserStore(st.DB())
	require.NoError(t, err)
	sessions, err := auth.NewSessionStore(st.DB(), time.Hour)
	require.NoError(t, err)
	challenges := auth.NewChallengeStore(5 * time.Minute)

	service, err := auth.NewService(auth.Config{
		RPDisplayName: "Stock Tracker",
		RPID:          "localhost",
		RPOrigins:     []string{"http://localhost"},
	}, users, challenges, sessions)
	require.NoError(t, err)
	return service
}

func TestRequireSession_PassThroughWithoutAuth(t *testing.T) {
	handler := NewHandler(NewMockStockRepository(), nil, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/stock/export", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_RejectsMissingCookie(t *testing.T) {
	handler := NewHandler(NewMockStockRepository(), nil, newAuthService(t))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/stock/export", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSession_RejectsUnknownToken(t *testing.T) {
	handler := NewHandler(NewMockStockRepository(), nil, newAuthService(t))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	req := httptest.NewRequest("GET", "/api/stock/export", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not-a-session"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSession_AcceptsValidSession(t *testing.T) {
	service := newAuthService(t)
	handler := NewHandler(NewMockStockRepository(), nil, service)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	session, err := service.Sessions().Create("jane@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/stock/export", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: session.Token})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRoutes_RegisteredOnlyWithAuth(t *testing.T) {
	handler := NewHandler(NewMockStockRepository(), nil, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/register?email=a@b.c&name=A", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandleBeginRegistration(t *testing.T) {
	handler := NewHandler(NewMockStockRepository(), nil, newAuthService(t))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/register?email=jane@example.com&name=Jane", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "challenge")

	// Missing parameters are a 400.
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/register?email=jane@example.com", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleBeginSignIn_UnknownUser(t *testing.T) {
	handler := NewHandler(NewMockStockRepository(), nil, newAuthService(t))
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/auth/signIn?email=ghost@example.com", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
