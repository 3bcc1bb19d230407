package racelogger

import (
	"bytes"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jd3nn1s/racelogger/recorder"
)

func runCommand(t *testing.T, c *Controller, cmd string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := c.HandleCommand(cmd, &out)
	return out.String(), err
}

func TestHandleCommandUnknown(t *testing.T) {
	c, _, _ := newTestController(t)

	out, err := runCommand(t, c, "launch")
	assert.Equal(t, ErrUnknownCommand, errors.Cause(err))
	assert.Contains(t, out, "ERROR: LAUNCH: unknown command")

	out, err = runCommand(t, c, "   ")
	assert.NoError(t, err)
	assert.Empty(t, out)
}

func TestHandleCommandSession(t *testing.T) {
	c, store, clock := newTestController(t)

	out, err := runCommand(t, c, "1")
	require.NoError(t, err)
	assert.Equal(t, "Recording started\n", out)

	out, err = runCommand(t, c, "start")
	assert.Equal(t, recorder.ErrAlreadyRecording, errors.Cause(err))
	assert.Contains(t, out, "ERROR:")

	clock.Advance(time.Second)
	c.Tick()

	out, err = runCommand(t, c, "Pause")
	require.NoError(t, err)
	assert.Equal(t, "Recording paused\n", out)

	out, err = runCommand(t, c, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "=== SYSTEM STATUS ===\n")
	assert.Contains(t, out, "Recording: YES\n")
	assert.Contains(t, out, "Paused: YES\n")
	assert.Contains(t, out, "Current Lap: 1/3\n")

	_, err = runCommand(t, c, "TRANSMIT")
	assert.Equal(t, recorder.ErrStillRecording, errors.Cause(err), "paused sessions are still recording")

	out, err = runCommand(t, c, "RESUME")
	require.NoError(t, err)
	assert.Equal(t, "Recording resumed\n", out)

	_, err = runCommand(t, c, "RESUME")
	assert.Equal(t, recorder.ErrNotPaused, errors.Cause(err))

	out, err = runCommand(t, c, "STOP")
	require.NoError(t, err)
	assert.Equal(t, "Recording stopped\n", out)

	out, err = runCommand(t, c, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "=== RECORDING INFO ===\n")
	assert.Contains(t, out, "Has Data: YES\n")
	assert.Contains(t, out, "Lap Mode: 1 (Distance)\n")

	out, err = runCommand(t, c, "2")
	require.NoError(t, err)
	assert.Contains(t, out, "TRANSMISSION_START\n")
	assert.Contains(t, out, "TRANSMISSION_END\n")

	out, err = runCommand(t, c, "DELETE")
	require.NoError(t, err)
	assert.Equal(t, "Log deleted\n", out)
	assert.False(t, store.Exists(recorder.DefaultFileName))

	_, err = runCommand(t, c, "DELETE")
	assert.Equal(t, recorder.ErrNoDataFile, errors.Cause(err))
}

func TestHandleCommandCooling(t *testing.T) {
	c, _, _ := newTestController(t)

	out, err := runCommand(t, c, "COOLING_ON")
	require.NoError(t, err)
	assert.Equal(t, "Cooling system started\n", out)
	assert.True(t, c.Cooling().Active())

	c.canSensorChan <- canSensorData{CoolantTemp: 85}
	c.CheckChannels()
	c.Tick()

	out, err = runCommand(t, c, "cooling_status")
	require.NoError(t, err)
	assert.Contains(t, out, "System: YES\n")
	assert.Contains(t, out, "Fan: YES\n")
	assert.Contains(t, out, "Cut-off: NO\n")
	assert.Contains(t, out, "Temperature: 85.0 C\n")

	_, err = runCommand(t, c, "COOLING_OFF")
	require.NoError(t, err)
	assert.False(t, c.Cooling().Active())
	assert.False(t, c.Cooling().FanOn())
}

func TestHandleCommandReadouts(t *testing.T) {
	c, _, _ := newTestController(t)

	out, err := runCommand(t, c, "GPS")
	require.NoError(t, err)
	assert.Contains(t, out, "No GPS fix available\n")

	c.gpsChan <- gpsData{Valid: true, Latitude: 47.123456, Longitude: 8.5, Speed: 42, Satellites: 6}
	c.CheckChannels()
	out, err = runCommand(t, c, "gps")
	require.NoError(t, err)
	assert.Contains(t, out, "Latitude: 47.123456\n")
	assert.Contains(t, out, "Speed: 42.0 km/h\n")
	assert.Contains(t, out, "Satellites: 6\n")

	c.canSensorChan <- canSensorData{AFR: 13.2, RPM: 4100, MAP: 110}
	c.CheckChannels()
	out, err = runCommand(t, c, "SENSORS")
	require.NoError(t, err)
	assert.Contains(t, out, "AFR: 13.2\n")
	assert.Contains(t, out, "RPM: 4100\n")

	c.Tick()
	out, err = runCommand(t, c, "AI")
	require.NoError(t, err)
	assert.Contains(t, out, "=== CLASSIFIER STATUS ===\n")
	assert.Contains(t, out, "Bundle: four-class v2\n")
	assert.Contains(t, out, "Training Data Size: 200\n")
	assert.Contains(t, out, "K-Value: 3\n")

	out, err = runCommand(t, c, "HELP")
	require.NoError(t, err)
	assert.Contains(t, out, "COOLING_STATUS")
}
