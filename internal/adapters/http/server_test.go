package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/wallethunt/pkg/observability"
)

type fixedProgress observability.Progress

func (f fixedProgress) Progress() observability.Progress { return observability.Progress(f) }

func TestGetHealth(t *testing.T) {
	handler := NewHandler(&Server{})

	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "ok", resp["status"])
}

func TestGetInfo(t *testing.T) {
	handler := NewHandler(&Server{
		Version: "v1.2.3",
		Address: "0xabc",
		Source:  fixedProgress{Index: 5, Total: 12, Attempted: 4, Skipped: 1},
	})

	req, _ := http.NewRequest("GET", "/info", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var info Info
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &info))
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "0xabc", info.Address)
	assert.Equal(t, uint64(12), info.Progress.Total)
	assert.Equal(t, uint64(4), info.Progress.Attempted)
	assert.NotContains(t, rr.Body.String(), "mnemonic")
}

func TestMetricsEndpoint(t *testing.T) {
	m := observability.NewMetrics()
	handler := NewHandler(&Server{Source: m, Gatherer: m.Registry})

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "wallethunt_candidates_total")
}

func TestMetricsEndpoint_Disabled(t *testing.T) {
	handler := NewHandler(&Server{})

	req, _ := http.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestServe_ShutsDownWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	done, err := Serve(ctx, "127.0.0.1:0", NewHandler(&Server{}), logger)
	require.NoError(t, err)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}
