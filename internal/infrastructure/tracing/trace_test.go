package tracing

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestStartSpanMintsPrefixedIDs(t *testing.T) {
	tracer := New("test", zap.NewNop())

	span, _ := tracer.StartSpan(context.Background(), "op")
	if !strings.HasPrefix(string(span.TraceID), "trace_") {
		t.Errorf("trace id should start with 'trace_', got: %s", span.TraceID)
	}
	if !strings.HasPrefix(string(span.SpanID), "span_") {
		t.Errorf("span id should start with 'span_', got: %s", span.SpanID)
	}
}

func TestChildSpanSharesTrace(t *testing.T) {
	tracer := New("test", zap.NewNop())

	parent, ctx := tracer.StartSpan(context.Background(), "parent")
	child, _ := tracer.StartSpan(ctx, "child")

	if child.TraceID != parent.TraceID {
		t.Errorf("child trace = %s, want %s", child.TraceID, parent.TraceID)
	}
	if child.ParentID != parent.SpanID {
		t.Errorf("child parent = %s, want %s", child.ParentID, parent.SpanID)
	}
	if child.SpanID == parent.SpanID {
		t.Error("child must get its own span id")
	}
}

func TestContextRoundTrip(t *testing.T) {
	tracer := New("test", zap.NewNop())
	_, ctx := tracer.StartSpan(context.Background(), "op")

	headers := make(map[string]string)
	InjectTraceContext(ctx, headers)

	traceID, spanID := ExtractTraceContext(headers)
	if traceID == "" || spanID == "" {
		t.Fatalf("context not propagated through headers: %v", headers)
	}
}
