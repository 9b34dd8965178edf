package payload

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/GriffinCanCode/InspectOS/internal/infrastructure/logging"
)

type fakePusher struct {
	streamID   int64
	devicePath string
	digest     string
	size       int64
	received   []byte
	err        error
	short      bool
}

func (f *fakePusher) PushPayload(ctx context.Context, streamID int64, devicePath, digest string, size int64, r io.Reader) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.streamID = streamID
	f.devicePath = devicePath
	f.digest = digest
	f.size = size

	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	f.received = data
	if f.short {
		return int64(len(data)) - 1, nil
	}
	return int64(len(data)), nil
}

func TestCopierPushesDecompressedContent(t *testing.T) {
	dir := t.TempDir()
	content := binaryContent(0x11, 4096)
	writeGzipBundle(t, dir, "agent", "1.0.0", content)

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	bundle, _ := store.Get("agent", "1.0.0")

	pusher := &fakePusher{}
	copier := NewCopier(bundle, store, pusher, logging.NewNop())

	devicePath, err := copier.Copy(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}

	if pusher.streamID != 42 {
		t.Errorf("stream_id = %d, want 42", pusher.streamID)
	}
	if !bytes.Equal(pusher.received, content) {
		t.Error("pushed content should be decompressed")
	}
	if pusher.digest != bundle.Digest {
		t.Error("digest not forwarded")
	}
	if pusher.size != bundle.Size {
		t.Error("size not forwarded")
	}
	if devicePath != bundle.DevicePath() {
		t.Errorf("device path = %s, want %s", devicePath, bundle.DevicePath())
	}
	if !strings.HasPrefix(devicePath, DeviceDir+"/agent-") {
		t.Errorf("unexpected device path: %s", devicePath)
	}
}

func TestCopierIncompleteWrite(t *testing.T) {
	dir := t.TempDir()
	writeRawBundle(t, dir, "agent", "1.0.0", binaryContent(0x22, 1024))

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	bundle, _ := store.Get("agent", "1.0.0")

	copier := NewCopier(bundle, store, &fakePusher{short: true}, logging.NewNop())
	if _, err := copier.Copy(context.Background(), 1); err == nil {
		t.Error("expected error on incomplete write")
	}
}

func TestCopierPushError(t *testing.T) {
	dir := t.TempDir()
	writeRawBundle(t, dir, "agent", "1.0.0", binaryContent(0x23, 256))

	store, err := NewStore(dir, logging.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	bundle, _ := store.Get("agent", "1.0.0")

	copier := NewCopier(bundle, store, &fakePusher{err: fmt.Errorf("device offline")}, logging.NewNop())
	if _, err := copier.Copy(context.Background(), 1); err == nil {
		t.Error("expected push error to surface")
	}
}

func TestNopCopier(t *testing.T) {
	copier := NopCopier("/data/local/tmp/preinstalled.bin")
	path, err := copier.Copy(context.Background(), 7)
	if err != nil {
		t.Fatal(err)
	}
	if path != "/data/local/tmp/preinstalled.bin" {
		t.Errorf("unexpected path: %s", path)
	}
}
