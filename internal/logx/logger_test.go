package logx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	require.Equal(t, LevelWarn, ParseLevel("warning"))
	require.Equal(t, LevelError, ParseLevel(" error "))
	require.Equal(t, LevelInfo, ParseLevel("chatty"))
	require.Equal(t, "warn", LevelWarn.String())
}

func TestLeveledFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithOutput("warn", &buf)

	l.Debugf("tick %d", 1)
	l.Infof("tick %d", 2)
	require.Empty(t, buf.String())

	l.Warnf("slow frame %dms", 40)
	l.Errorf("client %s gone", "a")
	out := buf.String()
	require.Contains(t, out, "[WARN] slow frame 40ms")
	require.Contains(t, out, "[ERROR] client a gone")
}

func TestNoOpSatisfiesLogger(t *testing.T) {
	var l Logger = NewNoOp()
	require.NotPanics(t, func() { l.Errorf("ignored %v", 1) })
}
