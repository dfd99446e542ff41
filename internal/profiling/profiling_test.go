package profiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartModeNoneIsNoOp(t *testing.T) {
	stop, err := Start(ModeNone, t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, stop())
}

func TestStartRejectsUnknownMode(t *testing.T) {
	_, err := Start(Mode("bogus"), t.TempDir())
	assert.Error(t, err)
}

func TestStartCPUModeRoundTrips(t *testing.T) {
	stop, err := Start(ModeCPU, t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, stop)
	assert.NoError(t, stop())
}

func TestStartFgprofModeRoundTrips(t *testing.T) {
	stop, err := Start(ModeFgprof, t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, stop)
	assert.NoError(t, stop())
}
