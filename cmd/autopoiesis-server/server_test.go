package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"autopoiesis/internal/logx"
	"autopoiesis/internal/sims/autopoiesis"
	"autopoiesis/internal/stream"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestLoadServerConfigPrecedence(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg, err := loadServerConfig(fs,
		[]string{"-addr", ":9000", "-catalysts", "4"},
		env(map[string]string{
			"AUTOPOIESIS_ADDR":       ":7000",
			"AUTOPOIESIS_TPS":        "5",
			"AUTOPOIESIS_CATALYSTS":  "9",
			"AUTOPOIESIS_DECAY_RATE": "0.2",
		}))
	require.NoError(t, err)

	require.Equal(t, ":9000", cfg.Addr, "flags beat the environment")
	require.Equal(t, 5, cfg.TPS)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 0, cfg.View)
	require.Equal(t, map[string]string{"catalysts": "4", "decay_rate": "0.2"}, cfg.Sim)
}

func TestLoadServerConfigRejectsBadNumbers(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	_, err := loadServerConfig(fs, []string{"-tps", "fast"}, env(nil))
	require.Error(t, err)
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	cfg := autopoiesis.DefaultConfig()
	cfg.Width, cfg.Height = 16, 16
	cfg.Params.StepsPerFrame = 20
	hub := stream.NewHub(logx.NewNoOp())
	t.Cleanup(func() { hub.Close() })
	srv, err := NewServer(cfg, 0, hub, logx.NewNoOp())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.routes())
	t.Cleanup(ts.Close)
	return srv, ts
}

func getBody(t *testing.T, url string) (int, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)
	code, body := getBody(t, ts.URL+"/healthz")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "ok", string(body))
}

func TestFrameBeforeAndAfterPublish(t *testing.T) {
	srv, ts := newTestServer(t)

	code, body := getBody(t, ts.URL+"/frame")
	require.Equal(t, http.StatusOK, code)
	var f stream.Frame
	require.NoError(t, json.Unmarshal(body, &f))
	require.Zero(t, f.Tick)
	require.Len(t, f.Catalysts, 2)

	srv.advance(3)
	srv.publish(context.Background())

	_, body = getBody(t, ts.URL+"/frame")
	require.NoError(t, json.Unmarshal(body, &f))
	require.Equal(t, uint64(60), f.Tick)
}

func TestCensusEndpoint(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.advance(10)

	_, body := getBody(t, ts.URL+"/census")
	var c autopoiesis.Census
	require.NoError(t, json.Unmarshal(body, &c))
	require.Equal(t, uint64(200), c.Tick)
	require.Equal(t, c.Links, c.Holes)
}

func TestResetEndpoint(t *testing.T) {
	srv, ts := newTestServer(t)
	srv.advance(5)

	resp, err := http.Post(ts.URL+"/reset?seed=99", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Zero(t, srv.snapshot().Tick)

	resp, err = http.Post(ts.URL+"/reset?seed=abc", "text/plain", nil)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	code, _ := getBody(t, ts.URL+"/reset")
	require.Equal(t, http.StatusMethodNotAllowed, code)
}

func TestRunStopsWithContext(t *testing.T) {
	srv, _ := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		srv.Run(ctx, 200)
		close(done)
	}()

	require.Eventually(t, func() bool { return srv.snapshot().Tick > 0 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
