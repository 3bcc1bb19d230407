package recorder

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jd3nn1s/racelogger/storage"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type stubCooling struct {
	temp   float64
	cutoff float64
}

func (c *stubCooling) CurrentTemperature() float64 { return c.temp }
func (c *stubCooling) CutoffActive() bool          { return c.temp >= c.cutoff }
func (c *stubCooling) CutoffThreshold() float64    { return c.cutoff }

func newTestRecorder(t *testing.T, cfg *LapConfiguration, cooling Cooling) (*Recorder, *storage.MemStore, *fakeClock) {
	store := storage.NewMemStore()
	clock := &fakeClock{t: time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)}
	r := New(store, cooling)
	r.SetClock(clock.Now)
	if cfg != nil {
		r.SetLapConfiguration(cfg)
	}
	return r, store, clock
}

func logText(store *storage.MemStore) string {
	return string(store.Contents(DefaultFileName))
}

func sample(speed, rpm, temp float64) Sample {
	return Sample{AFR: 14.7, RPM: rpm, Temp: temp, TPS: 30, MAP: 100, Lat: 47.1, Lng: 8.2, Speed: speed}
}

func TestDistanceModeCompletesOnFourthFix(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeDistance, TargetDistance: 500, TotalLaps: 3}
	r, store, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	// 0.0015 degrees of latitude is about 166.8 m
	for i, lat := range []float64{0, 0.0015, 0.003} {
		clock.Advance(time.Second)
		r.Update(Fix{Lat: lat, Lng: 0, Valid: true})
		assert.Equal(t, 1, r.CurrentLap(), "fix %d", i+1)
	}
	assert.InDelta(t, 333.6, r.CurrentLapDistance(), 0.5)
	assert.InDelta(t, 66.7, r.LapProgressPercent(), 0.2)

	clock.Advance(time.Second)
	r.Update(Fix{Lat: 0.0045, Lng: 0, Valid: true})
	assert.Equal(t, 2, r.CurrentLap())
	assert.Equal(t, 0.0, r.CurrentLapDistance())
	assert.Contains(t, logText(store), "# LAP 1 SUMMARY:")
	assert.Contains(t, logText(store), "#   Distance Traveled: 500.4 meters")

	// accumulation continues from the completing fix
	clock.Advance(time.Second)
	r.Update(Fix{Lat: 0.006, Lng: 0, Valid: true})
	assert.InDelta(t, 166.8, r.CurrentLapDistance(), 0.5)
}

func TestDistanceModeSkipsInvalidFixes(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeDistance, TargetDistance: 500, TotalLaps: 3}
	r, _, _ := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	r.Update(Fix{Lat: 0, Lng: 0, Valid: true})
	r.Update(Fix{Lat: 10, Lng: 10, Valid: false})
	assert.Equal(t, 0.0, r.CurrentLapDistance())
	r.Update(Fix{Lat: 0.001, Lng: 0, Valid: true})
	assert.InDelta(t, 111.2, r.CurrentLapDistance(), 0.5)
	assert.Equal(t, 1, r.CurrentLap())
}

func TestTimeModeCompletesAtTarget(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeTime, TargetTime: 120, TotalLaps: 3}
	r, store, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	clock.Advance(119999 * time.Millisecond)
	r.Update(Fix{})
	assert.Equal(t, 1, r.CurrentLap())

	clock.Advance(time.Millisecond)
	r.Update(Fix{})
	assert.Equal(t, 2, r.CurrentLap())
	assert.Equal(t, time.Duration(0), r.LapTime())
	assert.Equal(t, 120*time.Second, r.OverallStats().BestLapTime)
	assert.Contains(t, logText(store), "#   Lap Time: 120000 ms (120.00 seconds)")
}

func TestAutoStopAfterLastLap(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeTime, TargetTime: 120, TotalLaps: 3}
	r, store, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	for lap := 1; lap <= 3; lap++ {
		for i := 0; i < 4; i++ {
			clock.Advance(30 * time.Second)
			r.SaveCurrentSensorData(sample(float64(50+lap), 3000, 85))
			r.Update(Fix{})
		}
	}

	assert.False(t, r.IsRecording())
	assert.Equal(t, Idle, r.State())

	text := logText(store)
	assert.Contains(t, text, "# LAP 3 SUMMARY:")
	assert.NotContains(t, text, "# LAP 4 SUMMARY:")
	assert.Contains(t, text, "# RECORDING COMPLETED AT:")
	assert.Contains(t, text, "#   Total Laps: 3")

	records, err := ReadRecords(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, records, 12)
	for _, rec := range records {
		assert.True(t, rec.Lap >= 1 && rec.Lap <= 3, "lap %d", rec.Lap)
	}

	// further ticks do nothing once stopped
	clock.Advance(10 * time.Minute)
	r.SaveCurrentSensorData(sample(1, 1, 1))
	r.Update(Fix{})
	assert.Equal(t, text, logText(store))
}

func TestEmergencyInterlock(t *testing.T) {
	cooling := &stubCooling{temp: 95, cutoff: 120}
	cfg := &LapConfiguration{Mode: ModeTime, TargetTime: 60, TotalLaps: 3}
	r, store, clock := newTestRecorder(t, cfg, cooling)
	require.NoError(t, r.StartRecording())
	assert.Contains(t, logText(store), "#   Cut-off Temperature: 120.0 C")

	clock.Advance(20 * time.Second)
	r.SaveCurrentSensorData(sample(60, 4000, 95))
	r.Update(Fix{})
	assert.True(t, r.IsRecording())

	cooling.temp = 121
	clock.Advance(50 * time.Second)
	r.Update(Fix{})

	assert.False(t, r.IsRecording())
	assert.Equal(t, EmergencyStopped, r.State())
	// the interlock wins over the pending lap boundary
	assert.Equal(t, 1, r.CurrentLap())

	text := logText(store)
	assert.Contains(t, text, "# EMERGENCY STOP: temperature 121.0 reached cut-off 120.0")
	assert.Contains(t, text, "# RECORDING COMPLETED AT:")
	assert.NotContains(t, text, "# LAP 1 SUMMARY:")

	r.SaveCurrentSensorData(sample(60, 4000, 121))
	assert.Equal(t, text, logText(store))

	assert.Equal(t, ErrNotRecording, r.StopRecording())
	cooling.temp = 90
	assert.NoError(t, r.StartRecording())
	assert.Equal(t, Recording, r.State())
}

func TestEmergencyAtCutoffExactly(t *testing.T) {
	cooling := &stubCooling{temp: 120, cutoff: 120}
	r, _, _ := newTestRecorder(t, nil, cooling)
	require.NoError(t, r.StartRecording())
	r.Update(Fix{})
	assert.Equal(t, EmergencyStopped, r.State())
}

func TestStatisticsLaw(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeTime, TargetTime: 60, TotalLaps: 5}
	r, _, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	r.SaveCurrentSensorData(sample(10, 2000, 80))
	r.SaveCurrentSensorData(sample(30, 6000, 90))
	r.SaveCurrentSensorData(sample(20, 4000, 85))

	cur := r.CurrentLapStats()
	assert.Equal(t, 3, cur.SampleCount)
	assert.Equal(t, 30.0, cur.MaxSpeed)
	assert.Equal(t, 20.0, cur.AvgSpeed)
	assert.Equal(t, 6000.0, cur.MaxRPM)
	assert.Equal(t, 4000.0, cur.AvgRPM)
	assert.Equal(t, 90.0, cur.MaxTemp)
	assert.Equal(t, 85.0, cur.AvgTemp)

	clock.Advance(60 * time.Second)
	r.Update(Fix{})
	assert.Equal(t, 2, r.CurrentLap())
	assert.Equal(t, 0, r.CurrentLapStats().SampleCount)

	r.SaveCurrentSensorData(sample(50, 1000, 70))
	cur = r.CurrentLapStats()
	assert.Equal(t, 1, cur.SampleCount)
	assert.Equal(t, 50.0, cur.MaxSpeed)

	all := r.OverallStats()
	assert.Equal(t, 4, all.SampleCount)
	assert.Equal(t, 50.0, all.MaxSpeed)
	assert.Equal(t, 27.5, all.AvgSpeed)
	assert.Equal(t, 90.0, all.MaxTemp)
}

func TestGuards(t *testing.T) {
	r, _, _ := newTestRecorder(t, nil, nil)

	assert.Equal(t, ErrNotRecording, r.StopRecording())
	assert.Equal(t, ErrNotRecording, r.Pause())
	_, err := r.TransmitAllData(&bytes.Buffer{})
	assert.Equal(t, ErrNoDataFile, err)
	assert.Equal(t, ErrNoDataFile, r.DeleteLog())

	require.NoError(t, r.StartRecording())
	assert.Equal(t, ErrAlreadyRecording, r.StartRecording())
	_, err = r.TransmitAllData(&bytes.Buffer{})
	assert.Equal(t, ErrStillRecording, err)
	assert.Equal(t, ErrStillRecording, r.DeleteLog())
	assert.True(t, r.IsRecording())
}

func TestDefaultConfiguration(t *testing.T) {
	r, store, _ := newTestRecorder(t, nil, nil)
	require.NoError(t, r.StartRecording())

	assert.Equal(t, DefaultLapConfiguration(), r.LapConfiguration())
	assert.Equal(t, 3, r.TotalLaps())
	text := logText(store)
	assert.True(t, strings.HasPrefix(text, Header+"\n"))
	assert.Contains(t, text, "#   Mode: 1 (Distance)")
	assert.Contains(t, text, "#   Target Distance: 500.0 meters")
	assert.Contains(t, text, "# Session: "+r.SessionID())
	assert.NotEmpty(t, r.SessionID())
}

func TestStorageFailureKeepsSession(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeTime, TargetTime: 60, TotalLaps: 3}
	r, store, clock := newTestRecorder(t, cfg, nil)
	store.FailWrites(errors.New("card removed"))

	require.NoError(t, r.StartRecording())
	r.SaveCurrentSensorData(sample(42, 3000, 80))
	clock.Advance(time.Minute)
	r.Update(Fix{})

	assert.True(t, r.IsRecording())
	assert.Equal(t, 2, r.CurrentLap())
	assert.Equal(t, 1, r.OverallStats().SampleCount)
	assert.False(t, r.HasRecordedData())
	assert.Equal(t, int64(0), r.DataFileSize())
	assert.NoError(t, r.StopRecording())
}

func TestStopFinalizesLongPartialLap(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeDistance, TargetDistance: 5000, TotalLaps: 3}

	r, store, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())
	clock.Advance(15 * time.Second)
	require.NoError(t, r.StopRecording())
	assert.Contains(t, logText(store), "# LAP 1 SUMMARY:")
	assert.Contains(t, logText(store), "#   Total Laps: 1")

	r, store, clock = newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())
	clock.Advance(9 * time.Second)
	require.NoError(t, r.StopRecording())
	assert.NotContains(t, logText(store), "# LAP 1 SUMMARY:")
	assert.Contains(t, logText(store), "#   Total Laps: 0")
}

func TestGPSReturnMode(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeGPSReturn, GPSThreshold: 0.0005, TotalLaps: 3}
	r, _, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	start := Fix{Lat: 47.2, Lng: 8.5, Valid: true}
	near := Fix{Lat: 47.2001, Lng: 8.5, Valid: true}

	// invalid fixes do not latch the start position
	r.Update(Fix{Lat: 0, Lng: 0, Valid: false})
	r.Update(start)
	assert.Equal(t, 1, r.CurrentLap())

	clock.Advance(10 * time.Second)
	r.Update(Fix{Lat: 47.21, Lng: 8.51, Valid: true})
	clock.Advance(10 * time.Second)
	r.Update(near)
	assert.Equal(t, 1, r.CurrentLap(), "too early to count a return")

	clock.Advance(15 * time.Second)
	r.Update(near)
	assert.Equal(t, 2, r.CurrentLap())
	assert.Equal(t, 0.0, r.LapProgressPercent())

	clock.Advance(40 * time.Second)
	r.Update(Fix{Lat: 47.21, Lng: 8.5, Valid: true})
	assert.Equal(t, 2, r.CurrentLap(), "outside the threshold")
}

func TestGPSReturnStartOnlyLatchedInFirstLap(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeGPSReturn, GPSThreshold: 0.0005, TotalLaps: 3}
	r, _, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	// lap 1 ends on the ceiling without a single valid fix
	clock.Advance(maxLapTime + time.Second)
	r.Update(Fix{})
	require.Equal(t, 2, r.CurrentLap())

	start := Fix{Lat: 47.2, Lng: 8.5, Valid: true}
	r.Update(start)
	clock.Advance(time.Minute)
	r.Update(start)
	assert.Equal(t, 2, r.CurrentLap(), "a fix outside lap 1 must not become the start line")
}

func TestLapTimeCeiling(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeDistance, TargetDistance: 500, TotalLaps: 3}
	r, store, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	clock.Advance(30 * time.Minute)
	r.Update(Fix{})
	assert.Equal(t, 1, r.CurrentLap())

	clock.Advance(time.Second)
	r.Update(Fix{})
	assert.Equal(t, 2, r.CurrentLap())
	assert.Contains(t, logText(store), "# LAP 1 SUMMARY:")
}

func TestPauseResume(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeTime, TargetTime: 60, TotalLaps: 3}
	r, _, clock := newTestRecorder(t, cfg, nil)
	require.NoError(t, r.StartRecording())

	require.NoError(t, r.Pause())
	assert.True(t, r.IsPaused())
	assert.True(t, r.IsRecording())

	clock.Advance(2 * time.Minute)
	r.SaveCurrentSensorData(sample(10, 1000, 70))
	r.Update(Fix{})
	assert.Equal(t, 1, r.CurrentLap())
	assert.Equal(t, 0, r.OverallStats().SampleCount)

	require.NoError(t, r.Resume())
	assert.Equal(t, ErrNotPaused, r.Resume())
	r.Update(Fix{})
	assert.Equal(t, 2, r.CurrentLap())
}

func TestDeleteLog(t *testing.T) {
	r, store, _ := newTestRecorder(t, nil, nil)
	require.NoError(t, r.StartRecording())
	require.NoError(t, r.StopRecording())
	assert.True(t, r.HasRecordedData())

	require.NoError(t, r.DeleteLog())
	assert.False(t, store.Exists(DefaultFileName))
	assert.False(t, r.HasRecordedData())
}

func TestSaveTimestampsAndLap(t *testing.T) {
	cfg := &LapConfiguration{Mode: ModeTime, TargetTime: 60, TotalLaps: 3}
	r, store, clock := newTestRecorder(t, cfg, nil)
	r.SetFileName("track.csv")
	require.NoError(t, r.StartRecording())

	clock.Advance(1500 * time.Millisecond)
	r.SaveCurrentSensorData(sample(12.3, 3456, 88.8))
	clock.Advance(time.Minute)
	r.Update(Fix{})
	r.SaveCurrentSensorData(sample(1, 1, 1))

	records, err := ReadRecords(bytes.NewReader(store.Contents("track.csv")))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(1500), records[0].TimestampMillis)
	assert.Equal(t, 1, records[0].Lap)
	assert.Equal(t, 12.3, records[0].Speed)
	assert.Equal(t, int64(61500), records[1].TimestampMillis)
	assert.Equal(t, 2, records[1].Lap)
}
