package target

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/GriffinCanCode/InspectOS/internal/domain/discovery"
	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
	"github.com/GriffinCanCode/InspectOS/internal/payload"
	"github.com/GriffinCanCode/InspectOS/internal/shared/exec"
	"github.com/GriffinCanCode/InspectOS/internal/shared/types"
)

type fakeTransport struct {
	mu          sync.Mutex
	attachCalls int
	detached    []string
	attachErr   error
	attachHold  chan struct{} // when set, AttachAgent blocks until closed
	sessions    map[string]chan string
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{sessions: make(map[string]chan string)}
}

func (f *fakeTransport) AttachAgent(ctx context.Context, desc types.ProcessDescriptor, agentPath string) (string, <-chan string, error) {
	f.mu.Lock()
	f.attachCalls++
	calls := f.attachCalls
	hold := f.attachHold
	f.mu.Unlock()

	if hold != nil {
		select {
		case <-hold:
		case <-ctx.Done():
			return "", nil, ctx.Err()
		}
	}
	if ctx.Err() != nil {
		return "", nil, ctx.Err()
	}
	if f.attachErr != nil {
		return "", nil, f.attachErr
	}

	sessionID := fmt.Sprintf("sess_%d", calls)
	terminated := make(chan string, 1)
	f.mu.Lock()
	f.sessions[sessionID] = terminated
	f.mu.Unlock()
	return sessionID, terminated, nil
}

func (f *fakeTransport) DetachAgent(ctx context.Context, sessionID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detached = append(f.detached, sessionID)
	return nil
}

func (f *fakeTransport) terminate(sessionID, reason string) {
	f.mu.Lock()
	terminated := f.sessions[sessionID]
	f.mu.Unlock()
	terminated <- reason
	close(terminated)
}

func (f *fakeTransport) counts() (attaches, detaches int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.attachCalls, len(f.detached)
}

type recordingListener struct {
	mu         sync.Mutex
	attached   []types.TargetInfo
	failed     []types.TargetInfo
	terminated []types.TargetInfo
}

func (r *recordingListener) OnTargetAttached(info types.TargetInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.attached = append(r.attached, info)
}

func (r *recordingListener) OnTargetFailed(info types.TargetInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, info)
}

func (r *recordingListener) OnTargetTerminated(info types.TargetInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.terminated = append(r.terminated, info)
}

func (r *recordingListener) counts() (attached, failed, terminated int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.attached), len(r.failed), len(r.terminated)
}

type failingCopier struct{ err error }

func (f failingCopier) Copy(ctx context.Context, streamID int64) (string, error) {
	return "", f.err
}

func testDesc(pid int32) types.ProcessDescriptor {
	return types.ProcessDescriptor{
		Manufacturer: "Google",
		Model:        "Pixel 8",
		Process:      "com.example.app",
		PID:          pid,
		StreamID:     1,
	}
}

func testLaunch(copier payload.Copier) *discovery.LaunchedProcess {
	return &discovery.LaunchedProcess{
		Info: types.LaunchInfo{
			ID:           "launch_test",
			Manufacturer: "Google",
			Model:        "Pixel 8",
			Process:      "com.example.app",
			Payload:      "agent@1.0",
		},
		Copier: copier,
	}
}

func nopLaunch() *discovery.LaunchedProcess {
	return testLaunch(payload.NopCopier("/data/local/tmp/inspectos/agent.bin"))
}

func newTestManager(transport Transport) *Manager {
	return NewManager(transport, 5*time.Second, logging.NewNop())
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestAttachSuccess(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)
	listener := &recordingListener{}
	manager.AddListener(listener, exec.Direct{})

	info, err := manager.Attach(context.Background(), testDesc(100), nopLaunch())
	if err != nil {
		t.Fatal(err)
	}
	if info.State != types.TargetAttached || info.SessionID != "sess_1" {
		t.Errorf("unexpected target: %+v", info)
	}

	waitFor(t, func() bool {
		a, _, _ := listener.counts()
		return a == 1
	})
	stats := manager.Stats()
	if stats.Attached != 1 || stats.Pending != 0 || stats.Failed != 0 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestConcurrentAttachOneSession(t *testing.T) {
	transport := newFakeTransport()
	transport.attachHold = make(chan struct{})
	manager := newTestManager(transport)

	desc := testDesc(100)
	launch := nopLaunch()

	results := make(chan types.TargetInfo, 2)
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() {
			info, err := manager.Attach(context.Background(), desc, launch)
			results <- info
			errs <- err
		}()
	}

	// Both callers must be joined on the same in-flight flow
	waitFor(t, func() bool {
		attaches, _ := transport.counts()
		return attaches == 1
	})
	close(transport.attachHold)

	first := <-results
	second := <-results
	if err := <-errs; err != nil {
		t.Fatal(err)
	}
	if err := <-errs; err != nil {
		t.Fatal(err)
	}

	if first.ID != second.ID || first.SessionID != second.SessionID {
		t.Errorf("racing attaches diverged: %+v vs %+v", first, second)
	}
	attaches, _ := transport.counts()
	if attaches != 1 {
		t.Errorf("expected exactly one injection, got %d", attaches)
	}
}

func TestFailedAttachStaysMemoized(t *testing.T) {
	transport := newFakeTransport()
	transport.attachErr = errors.New("injection rejected")
	manager := newTestManager(transport)
	listener := &recordingListener{}
	manager.AddListener(listener, exec.Direct{})

	desc := testDesc(100)
	_, err := manager.Attach(context.Background(), desc, nopLaunch())
	if err == nil {
		t.Fatal("expected attach failure")
	}

	// No implicit retry: the second call joins the failed entry
	_, err2 := manager.Attach(context.Background(), desc, nopLaunch())
	if err2 == nil {
		t.Fatal("retry should surface the memoized failure")
	}
	attaches, _ := transport.counts()
	if attaches != 1 {
		t.Errorf("memoized failure must not re-run the flow; got %d injections", attaches)
	}

	_, failed, _ := listener.counts()
	if failed != 1 {
		t.Errorf("expected exactly one failed edge, got %d", failed)
	}

	// Explicit eviction clears the entry and the next attach runs fresh
	if !manager.Evict(desc) {
		t.Fatal("evict should find the failed entry")
	}
	transport.attachErr = nil
	info, err := manager.Attach(context.Background(), desc, nopLaunch())
	if err != nil {
		t.Fatal(err)
	}
	if info.State != types.TargetAttached {
		t.Errorf("post-eviction attach should succeed: %+v", info)
	}
}

func TestCopierFailureFailsFlow(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)

	wantErr := errors.New("bundle missing")
	_, err := manager.Attach(context.Background(), testDesc(100), testLaunch(failingCopier{err: wantErr}))
	if err == nil || !errors.Is(err, wantErr) {
		t.Fatalf("expected copier error, got %v", err)
	}
	attaches, _ := transport.counts()
	if attaches != 0 {
		t.Error("copier failure must not reach the daemon")
	}
}

func TestProcessEndTerminatesOnce(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)
	listener := &recordingListener{}
	manager.AddListener(listener, exec.Direct{})

	desc := testDesc(100)
	if _, err := manager.Attach(context.Background(), desc, nopLaunch()); err != nil {
		t.Fatal(err)
	}

	manager.HandleProcessEnded(desc)
	manager.HandleProcessEnded(desc)

	waitFor(t, func() bool {
		_, detaches := transport.counts()
		return detaches == 1
	})
	_, _, terminated := listener.counts()
	if terminated != 1 {
		t.Errorf("expected exactly one terminated edge, got %d", terminated)
	}
	if len(manager.Targets()) != 0 {
		t.Error("entry should be evicted on process end")
	}
}

func TestSessionDeathEvictsAndNotifies(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)
	listener := &recordingListener{}
	manager.AddListener(listener, exec.Direct{})

	desc := testDesc(100)
	info, err := manager.Attach(context.Background(), desc, nopLaunch())
	if err != nil {
		t.Fatal(err)
	}

	transport.terminate(info.SessionID, "agent crashed")

	waitFor(t, func() bool {
		_, _, terminated := listener.counts()
		return terminated == 1
	})
	if len(manager.Targets()) != 0 {
		t.Error("entry should be evicted when the session dies")
	}
	// The daemon already tore the session down; no detach command follows
	_, detaches := transport.counts()
	if detaches != 0 {
		t.Errorf("self-terminated session must not be detached, got %d detaches", detaches)
	}
}

func TestStreamDeathTearsDownStream(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)
	listener := &recordingListener{}
	manager.AddListener(listener, exec.Direct{})

	if _, err := manager.Attach(context.Background(), testDesc(100), nopLaunch()); err != nil {
		t.Fatal(err)
	}
	other := testDesc(200)
	other.StreamID = 2
	if _, err := manager.Attach(context.Background(), other, nopLaunch()); err != nil {
		t.Fatal(err)
	}

	manager.HandleStreamDead(1)

	waitFor(t, func() bool {
		_, _, terminated := listener.counts()
		return terminated == 1
	})
	targets := manager.Targets()
	if len(targets) != 1 || targets[0].Descriptor.StreamID != 2 {
		t.Errorf("stream death should only evict its own targets: %+v", targets)
	}
}

func TestDisposeByID(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)

	info, err := manager.Attach(context.Background(), testDesc(100), nopLaunch())
	if err != nil {
		t.Fatal(err)
	}

	if err := manager.Dispose(info.ID); err != nil {
		t.Fatal(err)
	}
	if err := manager.Dispose(info.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second dispose should report not found, got %v", err)
	}
	waitFor(t, func() bool {
		_, detaches := transport.counts()
		return detaches == 1
	})
}

// Withdrawing a launch registration must tear down its attached target end to
// end, not just demote the descriptor in the discovery host.
func TestLaunchWithdrawalTearsDownTarget(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)
	host := discovery.NewHost(manager, logging.NewNop())

	launch := nopLaunch()
	if err := host.AddLaunched(launch); err != nil {
		t.Fatal(err)
	}
	desc := testDesc(100)
	host.HandleProcessStarted(desc)

	info, err := host.Attach(context.Background(), desc)
	if err != nil {
		t.Fatal(err)
	}
	if info.State != types.TargetAttached {
		t.Fatalf("unexpected state: %v", info.State)
	}

	if !host.RemoveLaunched(launch.Key()) {
		t.Fatal("remove should report the registration existed")
	}

	if got := len(manager.Targets()); got != 0 {
		t.Errorf("targets = %d, want 0 after launch withdrawal", got)
	}
	waitFor(t, func() bool {
		_, detaches := transport.counts()
		return detaches == 1
	})
}

func TestCallerTimeoutDoesNotCancelFlow(t *testing.T) {
	transport := newFakeTransport()
	transport.attachHold = make(chan struct{})
	manager := newTestManager(transport)

	desc := testDesc(100)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	info, err := manager.Attach(ctx, desc, nopLaunch())
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected caller timeout, got %v", err)
	}
	if info.State != types.TargetPending {
		t.Errorf("flow should still be pending: %+v", info)
	}

	close(transport.attachHold)

	// A later caller joins the same flow and sees it land
	joined, err := manager.Attach(context.Background(), desc, nopLaunch())
	if err != nil {
		t.Fatal(err)
	}
	if joined.State != types.TargetAttached || joined.ID != info.ID {
		t.Errorf("joiner should see the completed flow: %+v", joined)
	}
}

func TestGetAndTargets(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)

	info, err := manager.Attach(context.Background(), testDesc(100), nopLaunch())
	if err != nil {
		t.Fatal(err)
	}

	got, ok := manager.Get(info.ID)
	if !ok || got.SessionID != info.SessionID {
		t.Errorf("Get(%s) = %+v, %v", info.ID, got, ok)
	}
	if _, ok := manager.Get("tgt_unknown"); ok {
		t.Error("unknown id should not resolve")
	}
	if len(manager.Targets()) != 1 {
		t.Error("expected one target")
	}
}

func TestShutdownRejectsNewAttaches(t *testing.T) {
	transport := newFakeTransport()
	manager := newTestManager(transport)

	if _, err := manager.Attach(context.Background(), testDesc(100), nopLaunch()); err != nil {
		t.Fatal(err)
	}
	manager.Shutdown()

	_, detaches := transport.counts()
	if detaches != 1 {
		t.Errorf("shutdown should detach live sessions, got %d detaches", detaches)
	}
	if _, err := manager.Attach(context.Background(), testDesc(200), nopLaunch()); !errors.Is(err, ErrClosed) {
		t.Errorf("expected ErrClosed after shutdown, got %v", err)
	}
}
