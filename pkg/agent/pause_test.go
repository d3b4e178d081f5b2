package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPauseSignal(t *testing.T) {
	s := NewPauseSignal()
	require.False(t, s.Requested())

	s.Request()
	require.True(t, s.Requested())

	// Repeated requests are a no-op
	s.Request()
	require.True(t, s.Requested())
}

func TestPauseSignalNilSafe(t *testing.T) {
	var s *PauseSignal
	require.False(t, s.Requested())
	s.Request() // must not panic
}

func TestPauseSignalContext(t *testing.T) {
	require.Nil(t, PauseSignalFrom(context.Background()))

	s := NewPauseSignal()
	ctx := WithPauseSignal(context.Background(), s)
	require.Same(t, s, PauseSignalFrom(ctx))
}
