package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>quotes</title>
<item><title>Rumi</title><description>Let yourself be silently drawn by the strange pull of what you really love.</description></item>
<item><title>Lao Tzu</title><description>Being deeply loved by someone gives you strength.</description></item>
</channel></rss>`

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	tests := []struct {
		name, body string
	}{
		{"broken yaml", "invalid: yaml: content: ["},
		{"no remote", "server:\n  listen: \":0\"\n"},
		{"bad category", "remote:\n  url: http://localhost:1\nfeed:\n  default_category: cooking\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0o600))

			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			err := run(ctx, Opts{Config: path})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to load config")
		})
	}
}

func TestRun_WithStore(t *testing.T) {
	feedSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testFeed))
	}))
	defer feedSrv.Close()

	port := freePort(t)
	dir := t.TempDir()
	cfgBody := fmt.Sprintf(`
server:
  listen: "127.0.0.1:%d"
  base_url: "http://127.0.0.1:%d"
local:
  dsn: "file:%s?cache=shared&mode=rwc&_txlock=immediate"
feed:
  page_size: 5
  default_category: love
store:
  enabled: true
  imports:
    - url: %q
      category: love
`, port, port, filepath.Join(dir, "test.db"), feedSrv.URL)
	cfgPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfgBody), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: cfgPath, Debug: true}) }()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		body, code := get(base + "/api/v1/store/quotes/love")
		return code == http.StatusOK && countItems(body) == 2
	}, 5*time.Second, 50*time.Millisecond, "imported quotes are served by the store")

	resp, err := http.Post(base+"/api/v1/feed/category/love", "application/json", http.NoBody)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)

	require.Eventually(t, func() bool {
		body, code := get(base + "/api/v1/feed")
		return code == http.StatusOK && countItems(body) == 2
	}, 5*time.Second, 50*time.Millisecond, "feed is loaded from the store")

	body, code := get(base + "/api/v1/status")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, `"store":true`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(15 * time.Second):
		t.Fatal("run did not stop")
	}
}

func TestSetupLog(t *testing.T) {
	setupLog(true, false, "secret")
	setupLog(false, true)
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func get(url string) (body string, code int) {
	resp, err := http.Get(url) //nolint:gosec // test url
	if err != nil {
		return "", 0
	}
	defer resp.Body.Close()
	data, _ := io.ReadAll(resp.Body)
	return string(data), resp.StatusCode
}

func countItems(body string) int {
	var resp struct {
		Items []json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return -1
	}
	return len(resp.Items)
}
