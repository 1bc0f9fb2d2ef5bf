package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"review-cycle-backend/internal/api/handlers"
	"review-cycle-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func newHealthRouter(cache handlers.Pinger) *testutils.HTTPTestSuite {
	httpSuite := testutils.SetupHTTPTest()
	handler := handlers.NewHealthHandler(nil, cache)
	httpSuite.Router.GET("/health", handler.Health)
	httpSuite.Router.GET("/health/ready", handler.Ready)
	httpSuite.Router.GET("/health/live", handler.Live)
	return httpSuite
}

func TestHealth_Live(t *testing.T) {
	recorder := newHealthRouter(nil).MakeRequest(http.MethodGet, "/health/live", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var response map[string]interface{}
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.Equal(t, true, response["alive"])
}

func TestHealth_UnconfiguredDatabaseIsUnhealthy(t *testing.T) {
	recorder := newHealthRouter(nil).MakeRequest(http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	var response handlers.HealthResponse
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Contains(t, response.Services["database"], "not configured")
	assert.NotContains(t, response.Services, "redis")
}

func TestHealth_ReadyReportsRedis(t *testing.T) {
	cache := pingFunc(func(context.Context) error { return errors.New("dial tcp: connection refused") })

	recorder := newHealthRouter(cache).MakeRequest(http.MethodGet, "/health/ready", nil)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	var response struct {
		Ready    bool              `json:"ready"`
		Services map[string]string `json:"services"`
	}
	testutils.ParseJSONResponse(t, recorder, &response)
	assert.False(t, response.Ready)
	assert.Equal(t, "error: dial tcp: connection refused", response.Services["redis"])
}
