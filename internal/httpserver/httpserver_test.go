package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"errand-planner/config"
	"errand-planner/internal/errand"
	"errand-planner/internal/middleware"
	"errand-planner/pkg/log"
)

type stubUseCase struct{ errand.UseCase }

func (stubUseCase) ClearHistory(context.Context) error { return nil }

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func newTestServer(t *testing.T, db Pinger) *HTTPServer {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:        l,
		Port:          8080,
		Mode:          gin.TestMode,
		Middleware:    middleware.New(l, &config.Config{}),
		ErrandUseCase: stubUseCase{},
		DB:            db,
	})
	require.NoError(t, err)
	return srv
}

func get(h http.Handler, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{Mode: gin.TestMode, Port: 8080})
	assert.Error(t, err)

	_, err = New(log.NewNop(), Config{Mode: gin.TestMode, ErrandUseCase: stubUseCase{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := get(h, http.MethodGet, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestReadyCheck_StoreDown(t *testing.T) {
	h := newTestServer(t, stubPinger{err: errors.New("connection refused")}).Handler()

	w := get(h, http.MethodGet, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestErrandRoutesMounted(t *testing.T) {
	h := newTestServer(t, stubPinger{}).Handler()

	w := get(h, http.MethodDelete, "/api/v1/errands/history")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}

func TestRun_StopsOnCancel(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.port = 0 // let the OS pick

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
