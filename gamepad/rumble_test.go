package gamepad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestPad(t *testing.T) (*Gamepad, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice(3)
	lib, _ := newTestLibrary(t, dev)
	pad, err := lib.Open(3)
	require.NoError(t, err)
	return pad, dev
}

func TestRumbleIntensityValidation(t *testing.T) {
	pad, dev := openTestPad(t)

	for _, intensity := range []float64{-0.1, 1.5, 2} {
		err := pad.Rumble(intensity, time.Second)
		assert.ErrorIs(t, err, ErrIntensityRange, "intensity %v", intensity)
	}
	err := pad.RumbleSides(0.5, 1.2, time.Second)
	assert.ErrorIs(t, err, ErrIntensityRange)
	err = pad.RumbleTriggers(-1, 0.5, time.Second)
	assert.ErrorIs(t, err, ErrIntensityRange)

	// Validation happens before any backend call: no partial effects.
	assert.Empty(t, dev.rumbleCalls)
	assert.Empty(t, dev.triggerCalls)
}

func TestRumbleMagnitudeConversion(t *testing.T) {
	tests := []struct {
		intensity float64
		native    uint16
	}{
		{0.0, 0},
		{1.0, 65535},
		{0.5, 32767},
	}
	for _, tt := range tests {
		pad, dev := openTestPad(t)
		require.NoError(t, pad.Rumble(tt.intensity, 250*time.Millisecond))
		require.Len(t, dev.rumbleCalls, 1)
		call := dev.rumbleCalls[0]
		assert.Equal(t, tt.native, call.left, "intensity %v", tt.intensity)
		assert.Equal(t, tt.native, call.right, "intensity %v", tt.intensity)
		assert.Equal(t, uint32(250), call.durationMS)
	}
}

func TestRumbleSides(t *testing.T) {
	pad, dev := openTestPad(t)

	require.NoError(t, pad.RumbleSides(0.25, 1.0, time.Second))
	require.Len(t, dev.rumbleCalls, 1)
	assert.Equal(t, uint16(16383), dev.rumbleCalls[0].left)
	assert.Equal(t, uint16(65535), dev.rumbleCalls[0].right)
	assert.Equal(t, uint32(1000), dev.rumbleCalls[0].durationMS)
}

func TestRumbleTriggers(t *testing.T) {
	pad, dev := openTestPad(t)

	require.NoError(t, pad.RumbleTriggers(1.0, 0.0, 100*time.Millisecond))
	require.Len(t, dev.triggerCalls, 1)
	assert.Equal(t, uint16(65535), dev.triggerCalls[0].left)
	assert.Equal(t, uint16(0), dev.triggerCalls[0].right)
	assert.Empty(t, dev.rumbleCalls, "trigger command does not touch the motors")
}

func TestRumbleTriggersUnsupportedIsNoOp(t *testing.T) {
	pad, dev := openTestPad(t)
	dev.triggersOK = false

	assert.NoError(t, pad.RumbleTriggers(0.5, 0.5, time.Second))
	assert.Empty(t, dev.triggerCalls)
}

func TestRumbleBackendFailure(t *testing.T) {
	pad, dev := openTestPad(t)
	dev.rumbleOK = false

	err := pad.Rumble(0.5, time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fake rumble failure")
}

func TestStopRumble(t *testing.T) {
	pad, dev := openTestPad(t)

	require.NoError(t, pad.Rumble(1.0, 10*time.Second))
	require.NoError(t, pad.StopRumble())
	require.Len(t, dev.rumbleCalls, 2)
	stop := dev.rumbleCalls[1]
	assert.Zero(t, stop.left)
	assert.Zero(t, stop.right)
	assert.NotZero(t, stop.durationMS, "stop command must outlast stale backend state")
}

func TestRumbleOnClosedHandle(t *testing.T) {
	pad, _ := openTestPad(t)
	require.NoError(t, pad.Close())

	assert.ErrorIs(t, pad.Rumble(0.5, time.Second), ErrClosed)
	assert.ErrorIs(t, pad.RumbleTriggers(0.5, 0.5, time.Second), ErrClosed)
	assert.ErrorIs(t, pad.StopRumble(), ErrClosed)
}
