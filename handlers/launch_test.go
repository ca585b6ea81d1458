package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aetherx/backend/internal/launch"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// in-memory launch repo for handler tests
type launchFakeRepo struct {
	cfg *launch.Config
}

func (f *launchFakeRepo) Get(ctx context.Context) (*launch.Config, error) { return f.cfg, nil }

func (f *launchFakeRepo) Replace(ctx context.Context, cfg *launch.Config) error {
	f.cfg = cfg
	return nil
}

func newLaunchRouter() (*gin.Engine, *launchFakeRepo) {
	repo := &launchFakeRepo{}
	g := gin.New()
	NewLaunchHandler(launch.NewService(repo)).Register(g.Group("/api"))
	return g, repo
}

func TestLaunchConfigDefault(t *testing.T) {
	g, _ := newLaunchRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/launch/config", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	date, ok := resp["launch_date"].(string)
	require.True(t, ok)
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	assert.True(t, parsed.After(time.Now()), "default launch date should be in the future")
	assert.NotContains(t, resp, "updated_at")
}

func TestLaunchConfigSetThenGet(t *testing.T) {
	g, _ := newLaunchRouter()

	w := postJSON(g, "/api/launch/config", `{"launch_date":"2030-01-01"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/launch/config", nil)
	g.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "2030-01-01", resp["launch_date"])
	assert.Contains(t, resp, "updated_at")
}

func TestLaunchConfigValidation(t *testing.T) {
	g, _ := newLaunchRouter()
	w := postJSON(g, "/api/launch/config", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
