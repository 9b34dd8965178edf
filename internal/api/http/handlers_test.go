package http

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"

	"github.com/GriffinCanCode/InspectOS/internal/domain/discovery"
	"github.com/GriffinCanCode/InspectOS/internal/domain/journal"
	"github.com/GriffinCanCode/InspectOS/internal/domain/target"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/exec"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

type fakeTransport struct {
	mu          sync.Mutex
	attachCalls int
	attachErr   error
	attachHold  chan struct{} // when set, AttachAgent blocks until closed
}

func (f *fakeTransport) AttachAgent(ctx context.Context, desc types.ProcessDescriptor, agentPath string) (string, <-chan string, error) {
	f.mu.Lock()
	f.attachCalls++
	calls := f.attachCalls
	hold := f.attachHold
	err := f.attachErr
	f.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return "", nil, ctx.Err()
		}
	}
	if err != nil {
		return "", nil, err
	}

	terminated := make(chan string, 1)
	return fmt.Sprintf("sess_%d", calls), terminated, nil
}

func (f *fakeTransport) DetachAgent(ctx context.Context, sessionID string) error {
	return nil
}

type staticCopiers struct{}

func (staticCopiers) CopierFor(name, version string) payload.Copier {
	return payload.NopCopier("/data/local/tmp/agent")
}

type env struct {
	router  *gin.Engine
	host    *discovery.Host
	targets *target.Manager
	journal *journal.Store
	fake    *fakeTransport
}

func newEnv(t *testing.T, attachWait time.Duration) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := logging.NewNop()

	fake := &fakeTransport{}
	targets := target.NewManager(fake, 5*time.Second, logger)
	host := discovery.NewHost(targets, logger)

	store, err := journal.Open(journal.Config{InMemory: true}, logger)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() {
		targets.Shutdown()
		store.Close()
	})
	host.AddListener(journal.NewRecorder(store, nil, logger), exec.Direct{})
	targets.AddListener(journal.NewRecorder(store, nil, logger), exec.Direct{})

	handlers := NewHandlers(host, targets, store, staticCopiers{}, nil, attachWait, logger)

	router := gin.New()
	router.GET("/health", handlers.Health)
	router.GET("/streams", handlers.ListStreams)
	router.GET("/processes", handlers.ListProcesses)
	router.GET("/launches", handlers.ListLaunches)
	router.POST("/launches", handlers.CreateLaunch)
	router.DELETE("/launches", handlers.DeleteLaunch)
	router.POST("/targets/attach", handlers.AttachTarget)
	router.GET("/targets", handlers.ListTargets)
	router.GET("/targets/:id", handlers.GetTarget)
	router.DELETE("/targets/:id", handlers.DisposeTarget)
	router.GET("/journal", handlers.GetJournal)

	return &env{router: router, host: host, targets: targets, journal: store, fake: fake}
}

func (e *env) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		if err := sonic.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, decoded
}

func (e *env) makeInspectable(desc types.ProcessDescriptor) {
	e.host.HandleStreamConnected(types.Stream{
		ID:           desc.StreamID,
		Manufacturer: desc.Manufacturer,
		Model:        desc.Model,
		ConnectedAt:  time.Now(),
	})
	e.host.AddLaunched(&discovery.LaunchedProcess{
		Info: types.LaunchInfo{
			ID:           "launch_test",
			Manufacturer: desc.Manufacturer,
			Model:        desc.Model,
			Process:      desc.Process,
			Source:       "api",
			RegisteredAt: time.Now(),
		},
		Copier: payload.NopCopier(""),
	})
	e.host.HandleProcessStarted(desc)
}

func testDescriptor() types.ProcessDescriptor {
	return types.ProcessDescriptor{
		Manufacturer: "Acme",
		Model:        "Widget-9",
		Process:      "com.acme.widget",
		PID:          4242,
		StreamID:     7,
	}
}

func TestHealth(t *testing.T) {
	e := newEnv(t, time.Second)

	rec, body := e.do(t, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body["status"] != "healthy" {
		t.Fatalf("expected healthy status, got %v", body["status"])
	}
	if _, ok := body["components"].(map[string]any)["journal"]; !ok {
		t.Fatal("expected journal component in health body")
	}
}

func TestLaunchLifecycle(t *testing.T) {
	e := newEnv(t, time.Second)

	rec, body := e.do(t, http.MethodPost, "/launches", types.LaunchRequest{
		Manufacturer: "Acme",
		Model:        "Widget-9",
		Process:      "com.acme.widget",
		Payload:      "probe@1.2.0",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", rec.Code, body)
	}

	rec, body = e.do(t, http.MethodGet, "/launches", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if count := body["count"].(float64); count != 1 {
		t.Fatalf("expected 1 launch, got %v", count)
	}

	key := "?manufacturer=Acme&model=Widget-9&process=com.acme.widget"
	rec, _ = e.do(t, http.MethodDelete, "/launches"+key, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec, _ = e.do(t, http.MethodDelete, "/launches"+key, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", rec.Code)
	}
}

func TestCreateLaunchRejectsIncompleteRequest(t *testing.T) {
	e := newEnv(t, time.Second)

	rec, _ := e.do(t, http.MethodPost, "/launches", map[string]string{
		"manufacturer": "Acme",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListProcessesJoinsLiveAndLaunched(t *testing.T) {
	e := newEnv(t, time.Second)
	desc := testDescriptor()
	e.makeInspectable(desc)

	// A live process with no registration stays out of the inspectable set
	other := desc
	other.Process = "com.acme.other"
	other.PID = 9001
	e.host.HandleProcessStarted(other)

	rec, body := e.do(t, http.MethodGet, "/processes", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if count := body["count"].(float64); count != 1 {
		t.Fatalf("expected 1 inspectable process, got %v", count)
	}
	if _, ok := body["live"]; ok {
		t.Fatal("live set should be omitted without all=true")
	}

	_, body = e.do(t, http.MethodGet, "/processes?all=true", nil)
	live := body["live"].([]any)
	if len(live) != 2 {
		t.Fatalf("expected 2 live processes, got %d", len(live))
	}
}

func TestAttachSuccess(t *testing.T) {
	e := newEnv(t, time.Second)
	desc := testDescriptor()
	e.makeInspectable(desc)

	rec, body := e.do(t, http.MethodPost, "/targets/attach", types.AttachRequest{
		Manufacturer: desc.Manufacturer,
		Model:        desc.Model,
		Process:      desc.Process,
		PID:          desc.PID,
		StreamID:     desc.StreamID,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, body)
	}
	tgt := body["target"].(map[string]any)
	if tgt["state"] != string(types.TargetAttached) {
		t.Fatalf("expected attached state, got %v", tgt["state"])
	}
	if tgt["session_id"] != "sess_1" {
		t.Fatalf("expected sess_1, got %v", tgt["session_id"])
	}

	id := tgt["id"].(string)
	rec, _ = e.do(t, http.MethodGet, "/targets/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 fetching target, got %d", rec.Code)
	}
}

func TestAttachResolvesDescriptorFromTriple(t *testing.T) {
	e := newEnv(t, time.Second)
	desc := testDescriptor()
	e.makeInspectable(desc)

	// No pid or stream; the single inspectable match resolves
	rec, body := e.do(t, http.MethodPost, "/targets/attach", types.AttachRequest{
		Manufacturer: desc.Manufacturer,
		Model:        desc.Model,
		Process:      desc.Process,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %v", rec.Code, body)
	}
}

func TestAttachAmbiguousTriple(t *testing.T) {
	e := newEnv(t, time.Second)
	desc := testDescriptor()
	e.makeInspectable(desc)
	second := desc
	second.PID = 5555
	e.host.HandleProcessStarted(second)

	rec, _ := e.do(t, http.MethodPost, "/targets/attach", types.AttachRequest{
		Manufacturer: desc.Manufacturer,
		Model:        desc.Model,
		Process:      desc.Process,
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for ambiguous request, got %d", rec.Code)
	}
}

func TestAttachNotInspectable(t *testing.T) {
	e := newEnv(t, time.Second)
	desc := testDescriptor()

	rec, _ := e.do(t, http.MethodPost, "/targets/attach", types.AttachRequest{
		Manufacturer: desc.Manufacturer,
		Model:        desc.Model,
		Process:      desc.Process,
		PID:          desc.PID,
		StreamID:     desc.StreamID,
	})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestAttachOutlivesRequest(t *testing.T) {
	e := newEnv(t, 50*time.Millisecond)
	desc := testDescriptor()
	e.makeInspectable(desc)

	hold := make(chan struct{})
	e.fake.mu.Lock()
	e.fake.attachHold = hold
	e.fake.mu.Unlock()

	rec, body := e.do(t, http.MethodPost, "/targets/attach", types.AttachRequest{
		Manufacturer: desc.Manufacturer,
		Model:        desc.Model,
		Process:      desc.Process,
		PID:          desc.PID,
		StreamID:     desc.StreamID,
	})
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %v", rec.Code, body)
	}
	tgt := body["target"].(map[string]any)
	if tgt["state"] != string(types.TargetPending) {
		t.Fatalf("expected pending state, got %v", tgt["state"])
	}

	// The flow keeps running; once released it lands on the same handle
	close(hold)
	id := tgt["id"].(string)
	deadline := time.Now().Add(2 * time.Second)
	for {
		rec, body = e.do(t, http.MethodGet, "/targets/"+id, nil)
		if rec.Code == http.StatusOK {
			got := body["target"].(map[string]any)
			if got["state"] == string(types.TargetAttached) {
				return
			}
		}
		if time.Now().After(deadline) {
			t.Fatalf("target never attached: %v", body)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestDisposeTarget(t *testing.T) {
	e := newEnv(t, time.Second)
	desc := testDescriptor()
	e.makeInspectable(desc)

	_, body := e.do(t, http.MethodPost, "/targets/attach", types.AttachRequest{
		Manufacturer: desc.Manufacturer,
		Model:        desc.Model,
		Process:      desc.Process,
		PID:          desc.PID,
		StreamID:     desc.StreamID,
	})
	id := body["target"].(map[string]any)["id"].(string)

	rec, _ := e.do(t, http.MethodDelete, "/targets/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	rec, _ = e.do(t, http.MethodGet, "/targets/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after dispose, got %d", rec.Code)
	}
	rec, _ = e.do(t, http.MethodDelete, "/targets/"+id, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 disposing twice, got %d", rec.Code)
	}
}

func TestJournalCapturesTransitions(t *testing.T) {
	e := newEnv(t, time.Second)
	desc := testDescriptor()
	e.makeInspectable(desc)

	rec, body := e.do(t, http.MethodGet, "/journal?process="+desc.Process, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	entries := body["entries"].([]any)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	first := entries[0].(map[string]any)
	if first["type"] != types.EventProcessConnected {
		t.Fatalf("expected connected entry, got %v", first["type"])
	}
}

func TestJournalRejectsBadLimit(t *testing.T) {
	e := newEnv(t, time.Second)

	rec, _ := e.do(t, http.MethodGet, "/journal?limit=nope", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestJournalDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logging.NewNop()
	fake := &fakeTransport{}
	targets := target.NewManager(fake, time.Second, logger)
	t.Cleanup(targets.Shutdown)
	host := discovery.NewHost(targets, logger)
	handlers := NewHandlers(host, targets, nil, staticCopiers{}, nil, time.Second, logger)

	router := gin.New()
	router.GET("/journal", handlers.GetJournal)

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
