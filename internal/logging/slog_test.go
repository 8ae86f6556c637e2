package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DebugFlagControlsLevel(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		debug     bool
		wantDebug bool
	}{
		{name: "debug on", debug: true, wantDebug: true},
		{name: "debug off", debug: false, wantDebug: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&buf, tt.debug)

			log.Debug(ctx, "dbg", "a", 1)
			log.Info(ctx, "inf", "b", 2)

			out := buf.String()
			assert.Contains(t, out, "level=INFO")
			assert.Contains(t, out, "b=2")
			if tt.wantDebug {
				assert.Contains(t, out, "level=DEBUG")
				assert.Contains(t, out, "a=1")
			} else {
				assert.NotContains(t, out, "level=DEBUG")
			}
		})
	}
}

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true)
	ctx := context.Background()

	log.Warn(ctx, "wrn", "c", 3)
	log.Error(ctx, "err", "d", 4)

	out := buf.String()
	for _, s := range []string{"level=WARN", "msg=wrn", "c=3", "level=ERROR", "msg=err", "d=4"} {
		assert.Contains(t, out, s)
	}
}

func TestSlogLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false)

	log.With("request_id", "123", "user", "alice").Info(context.Background(), "hello", "k", "v")

	out := buf.String()
	for _, s := range []string{"msg=hello", "request_id=123", "user=alice", "k=v"} {
		require.Contains(t, out, s)
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	log := Nop()
	ctx := context.TODO()
	log.Debug(ctx, "x")
	log.Info(ctx, "x")
	log.Warn(ctx, "x")
	log.Error(ctx, "x")
	log.With("k", "v").Info(ctx, "x")
}
