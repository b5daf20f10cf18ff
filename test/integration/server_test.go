package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/config"
	"github.com/rpgo/rothtrad/internal/server"
)

func TestServerProjectionFromConfig(t *testing.T) {
	cfg, err := config.NewInputParser().LoadFromFile("../testdata/scenario_traditional.yaml")
	require.NoError(t, err)

	srv := server.New(cfg, calculation.NewEngineWithCache(cfg.Server.CacheSize), slog.New(slog.NewTextHandler(io.Discard, nil)))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/projection")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Comparison struct {
			NetAdvantage string `json:"net_advantage"`
		} `json:"comparison"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "800", body.Comparison.NetAdvantage)

	resp2, err := http.Get(ts.URL + "/api/accumulation?traditional_contribution=0")
	require.NoError(t, err)
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
}
