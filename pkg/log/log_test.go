package log

import (
	"context"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		arg    []any
		wantOK bool
	}{
		{"message only", []any{"hello"}, false},
		{"message with pairs", []any{"hello", "provider", "anthropic", "tokens", 12}, true},
		{"odd pairs", []any{"hello", "provider"}, false},
		{"non string key", []any{"hello", 1, "x"}, false},
		{"non string message", []any{42, "k", "v"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := split(tt.arg)
			if ok != tt.wantOK {
				t.Errorf("split(%v) ok = %v, want %v", tt.arg, ok, tt.wantOK)
			}
		})
	}
}

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")
	if got := RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("RequestIDFromContext() = %q, want req-1", got)
	}
	if got := RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("RequestIDFromContext(empty) = %q, want empty", got)
	}
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	l := NewNop()
	ctx := ContextWithRequestID(context.Background(), "req-2")
	l.Info(ctx, "structured", "key", "value")
	l.Infof(ctx, "formatted %d", 1)
	l.Warn(ctx, "plain", 1, 2)
	l.Debug(ctx)
}
