// Package integration boots the full backend wiring and exercises it over
// real HTTP and WebSocket connections. The transport event pump stays
// disabled; daemon-facing behavior is covered by package-level tests with
// fake transports.
package integration

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/config"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/server"
	"github.com/GriffinCanCode/InspectOS/internal/shared/paths"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

var (
	baseURL  string
	dataRoot string
)

// A single server instance serves every test: metrics registration is
// process-global, so NewServer must run once per binary.
func TestMain(m *testing.M) {
	tmp, err := os.MkdirTemp("", "inspectos-integration")
	if err != nil {
		fmt.Fprintf(os.Stderr, "tempdir: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Default()
	cfg.Transport.Enabled = false
	cfg.Journal.InMemory = true
	cfg.Manifest.Enabled = false
	cfg.RateLimit.Enabled = false
	cfg.Attach.Timeout = 2 * time.Second
	cfg.Data.Root = tmp
	cfg.Payload.Dir = tmp
	dataRoot = tmp

	srv, err := server.NewServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}

	ts := httptest.NewServer(srv.Router())
	baseURL = ts.URL

	code := m.Run()

	ts.Close()
	srv.Close()
	os.RemoveAll(tmp)

	if code == 0 {
		if err := goleak.Find(
			goleak.IgnoreTopFunction("google.golang.org/grpc.(*ccBalancerWrapper).watcher"),
			goleak.IgnoreTopFunction("google.golang.org/grpc/internal/grpcsync.(*CallbackSerializer).run"),
		); err != nil {
			fmt.Fprintf(os.Stderr, "goroutine leak: %v\n", err)
			code = 1
		}
	}
	os.Exit(code)
}

func client() *resty.Client {
	return resty.New().SetBaseURL(baseURL).SetTimeout(10 * time.Second)
}

func TestRootAndHealth(t *testing.T) {
	var root map[string]any
	resp, err := client().R().SetResult(&root).Get("/")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "inspectos-backend", root["service"])

	var health map[string]any
	resp, err = client().R().SetResult(&health).Get("/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "healthy", health["status"])
	assert.Contains(t, health["components"], "discovery")
	assert.Contains(t, health["components"], "targets")
	assert.Contains(t, health["components"], "journal")
}

func TestDataDirectoriesCreated(t *testing.T) {
	for _, dir := range paths.NewData(dataRoot).StandardDirectories() {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), "expected directory at %s", dir)
	}
}

func TestLaunchRoundTrip(t *testing.T) {
	var created map[string]any
	resp, err := client().R().
		SetBody(types.LaunchRequest{
			Manufacturer: "Acme",
			Model:        "Widget-9",
			Process:      "com.acme.integration",
		}).
		SetResult(&created).
		Post("/launches")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var listed map[string]any
	resp, err = client().R().SetResult(&listed).Get("/launches")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.GreaterOrEqual(t, listed["count"].(float64), float64(1))

	resp, err = client().R().
		SetQueryParams(map[string]string{
			"manufacturer": "Acme",
			"model":        "Widget-9",
			"process":      "com.acme.integration",
		}).
		Delete("/launches")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestAttachUnknownProcess(t *testing.T) {
	// A full descriptor skips resolution; the host rejects it as not
	// inspectable.
	resp, err := client().R().
		SetBody(types.AttachRequest{
			Manufacturer: "Acme",
			Model:        "Widget-9",
			Process:      "com.acme.ghost",
			PID:          1,
			StreamID:     1,
		}).
		Post("/targets/attach")
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode())

	// A bare triple resolves against the inspectable set, which is empty
	resp, err = client().R().
		SetBody(types.AttachRequest{
			Manufacturer: "Acme",
			Model:        "Widget-9",
			Process:      "com.acme.ghost",
		}).
		Post("/targets/attach")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestMetricsEndpoints(t *testing.T) {
	resp, err := client().R().Get("/metrics")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, resp.String(), "backend_")

	var snapshot map[string]any
	resp, err = client().R().SetResult(&snapshot).Get("/metrics/json")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, snapshot, "backend")
}

func TestJournalEndpoint(t *testing.T) {
	var body map[string]any
	resp, err := client().R().SetResult(&body).Get("/journal")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Contains(t, body, "entries")
}

func TestWebSocketSubscribeAndPing(t *testing.T) {
	wsURL := strings.Replace(baseURL, "http://", "ws://", 1) + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))

	// The server greets every connection with a system message
	var greeting map[string]any
	require.NoError(t, conn.ReadJSON(&greeting))
	assert.Equal(t, "system", greeting["type"])
	assert.NotEmpty(t, greeting["client_id"])

	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "subscribe"}))
	require.NoError(t, conn.WriteJSON(types.WSMessage{Type: "ping"}))

	var reply map[string]any
	require.NoError(t, conn.ReadJSON(&reply))
	assert.Equal(t, "pong", reply["type"])
}
