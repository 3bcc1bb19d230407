// Package recorder implements the lap recording state machine. It detects
// lap boundaries from distance, elapsed time or a return to the start
// position, keeps per-lap and session statistics, and appends every sample
// to a flat log that can later be streamed out over a serial link.
package recorder

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger/storage"
)

// DefaultFileName is the log name used unless SetFileName is called.
const DefaultFileName = "racing_data.txt"

const (
	// minFinalLapTime is the shortest partial lap kept when recording stops.
	minFinalLapTime = 10 * time.Second
	// maxLapTime forces a lap boundary when detection never fires.
	maxLapTime = 30 * time.Minute
	// minReturnLapTime keeps GPS-return from firing right after the start.
	minReturnLapTime = 30 * time.Second
)

var (
	ErrAlreadyRecording    = errors.New("recording already in progress")
	ErrNotRecording        = errors.New("not recording")
	ErrNotPaused           = errors.New("recording is not paused")
	ErrTransmitting        = errors.New("transmission in progress")
	ErrStillRecording      = errors.New("stop recording before transmitting")
	ErrAlreadyTransmitting = errors.New("transmission already in progress")
	ErrNoDataFile          = errors.New("no recorded data")
)

type State int

const (
	Idle State = iota
	Recording
	EmergencyStopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Recording:
		return "recording"
	case EmergencyStopped:
		return "emergency stopped"
	}
	return "unknown"
}

// Cooling is the part of the cooling system the recorder consults for the
// over-temperature interlock.
type Cooling interface {
	CurrentTemperature() float64
	CutoffActive() bool
	CutoffThreshold() float64
}

type Recorder struct {
	mu sync.Mutex

	store    storage.Store
	cooling  Cooling
	lapCfg   *LapConfiguration
	fileName string
	now      func() time.Time
	epoch    time.Time

	state        State
	paused       bool
	transmitting bool
	sessionID    string

	// effective configuration for the running session
	cfg LapConfiguration

	currentLap         int
	currentLapDistance float64
	lapStart           time.Time

	lastFix     Fix
	haveLastFix bool
	startFix    Fix
	haveStart   bool

	currentStats LapStatistics
	overallStats LapStatistics
}

// New returns an idle recorder writing to store. cooling may be nil, in
// which case the over-temperature interlock is disabled.
func New(store storage.Store, cooling Cooling) *Recorder {
	r := &Recorder{
		store:    store,
		cooling:  cooling,
		fileName: DefaultFileName,
		now:      time.Now,
		cfg:      DefaultLapConfiguration(),
	}
	r.epoch = r.now()
	return r
}

// SetLapConfiguration takes effect at the next StartRecording.
func (r *Recorder) SetLapConfiguration(cfg *LapConfiguration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lapCfg = cfg
}

// SetClock replaces the time source and resets the timestamp epoch.
func (r *Recorder) SetClock(now func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.now = now
	r.epoch = now()
}

func (r *Recorder) SetFileName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fileName = name
}

func (r *Recorder) millis(t time.Time) int64 {
	return t.Sub(r.epoch).Milliseconds()
}

func (r *Recorder) StartRecording() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state == Recording {
		return ErrAlreadyRecording
	}
	if r.transmitting {
		return ErrTransmitting
	}

	if r.lapCfg == nil {
		log.Warn("no lap configuration set, using defaults")
		r.cfg = DefaultLapConfiguration()
	} else {
		r.cfg = *r.lapCfg
	}

	now := r.now()
	r.sessionID = uuid.New().String()
	r.state = Recording
	r.paused = false
	r.currentLap = 1
	r.currentLapDistance = 0
	r.lapStart = now
	r.haveLastFix = false
	r.haveStart = false
	r.currentStats.Reset()
	r.overallStats.Reset()

	if err := r.createLog(now); err != nil {
		log.WithError(err).WithField("file", r.fileName).
			Error("unable to create log, recording in memory only")
	}

	log.WithField("session", r.sessionID).
		WithField("mode", r.cfg.Mode).
		WithField("laps", r.cfg.TotalLaps).
		Info("recording started")
	return nil
}

func (r *Recorder) StopRecording() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stop()
}

func (r *Recorder) stop() error {
	if r.state != Recording {
		return ErrNotRecording
	}
	now := r.now()
	if now.Sub(r.lapStart) >= minFinalLapTime {
		r.completeLap(now)
	}
	r.state = Idle
	r.paused = false
	r.writeSessionSummary(now, "")

	log.WithField("session", r.sessionID).
		WithField("laps", r.currentLap-1).
		WithField("best", r.overallStats.BestLapTime).
		Info("recording stopped")
	return nil
}

func (r *Recorder) emergencyStop(now time.Time, temp float64) {
	r.state = EmergencyStopped
	r.paused = false
	marker := "# EMERGENCY STOP: temperature " + formatFloat(temp) +
		" reached cut-off " + formatFloat(r.cooling.CutoffThreshold())
	r.writeSessionSummary(now, marker)

	log.WithField("session", r.sessionID).
		WithField("temperature", temp).
		WithField("cutoff", r.cooling.CutoffThreshold()).
		Error("emergency stop, recording halted")
}

// Pause suspends lap detection and logging without ending the session.
func (r *Recorder) Pause() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Recording {
		return ErrNotRecording
	}
	r.paused = true
	log.WithField("lap", r.currentLap).Info("recording paused")
	return nil
}

func (r *Recorder) Resume() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Recording {
		return ErrNotRecording
	}
	if !r.paused {
		return ErrNotPaused
	}
	r.paused = false
	log.WithField("lap", r.currentLap).Info("recording resumed")
	return nil
}

// DeleteLog removes the recorded log.
func (r *Recorder) DeleteLog() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Recording {
		return ErrStillRecording
	}
	if r.transmitting {
		return ErrTransmitting
	}
	if !r.store.Exists(r.fileName) {
		return ErrNoDataFile
	}
	if err := r.store.Remove(r.fileName); err != nil {
		return errors.Wrapf(err, "unable to delete %s", r.fileName)
	}
	log.WithField("file", r.fileName).Info("log deleted")
	return nil
}

// Update advances the session by one tick using the latest GPS fix.
func (r *Recorder) Update(fix Fix) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Recording || r.paused {
		return
	}
	now := r.now()

	if r.cooling != nil {
		temp := r.cooling.CurrentTemperature()
		if temp >= r.cooling.CutoffThreshold() {
			r.emergencyStop(now, temp)
			return
		}
	}

	r.detectLap(fix, now)

	if now.Sub(r.lapStart) > maxLapTime {
		log.WithField("lap", r.currentLap).Warn("lap exceeded time ceiling, forcing completion")
		r.completeLap(now)
	}

	if r.currentLap > r.cfg.TotalLaps {
		log.WithField("laps", r.cfg.TotalLaps).Info("all laps completed")
		_ = r.stop()
	}
}

// SaveCurrentSensorData folds s into the statistics and appends it to the log.
func (r *Recorder) SaveCurrentSensorData(s Sample) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.state != Recording || r.paused {
		return
	}
	r.currentStats.Update(s)
	r.overallStats.Update(s)

	rec := newRecord(r.currentLap, s, r.millis(r.now()))
	if err := r.appendLines(FormatRecord(rec)); err != nil {
		log.WithError(err).WithField("lap", r.currentLap).Debug("unable to append sample")
	}
}

func (r *Recorder) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Recorder) IsRecording() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == Recording
}

func (r *Recorder) IsPaused() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state == Recording && r.paused
}

func (r *Recorder) IsTransmitting() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.transmitting
}

func (r *Recorder) SessionID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessionID
}

func (r *Recorder) CurrentLap() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentLap
}

// CurrentLapDistance is the distance in meters covered in the current lap.
// It is only accumulated in distance mode.
func (r *Recorder) CurrentLapDistance() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentLapDistance
}

// LapProgressPercent is the progress towards the lap target for distance
// and time modes. GPS-return laps have no target and report 0.
func (r *Recorder) LapProgressPercent() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Recording {
		return 0
	}
	switch r.cfg.Mode {
	case ModeDistance:
		if r.cfg.TargetDistance <= 0 {
			return 0
		}
		return r.currentLapDistance / r.cfg.TargetDistance * 100
	case ModeTime:
		if r.cfg.TargetTime <= 0 {
			return 0
		}
		elapsed := r.now().Sub(r.lapStart)
		return float64(elapsed) / float64(time.Duration(r.cfg.TargetTime)*time.Second) * 100
	}
	return 0
}

func (r *Recorder) CurrentLapStats() LapStatistics {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.currentStats
}

func (r *Recorder) OverallStats() LapStatistics {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.overallStats
}

// TotalLaps is the configured lap count of the current or last session.
func (r *Recorder) TotalLaps() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state == Idle && r.currentLap == 0 && r.lapCfg != nil {
		return r.lapCfg.TotalLaps
	}
	return r.cfg.TotalLaps
}

// LapTime is the elapsed time of the current lap.
func (r *Recorder) LapTime() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != Recording {
		return 0
	}
	return r.now().Sub(r.lapStart)
}

func (r *Recorder) HasRecordedData() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.store.Exists(r.fileName)
}

// DataFileSize returns the log size in bytes, or 0 without a log.
func (r *Recorder) DataFileSize() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	size, err := r.store.Size(r.fileName)
	if err != nil {
		return 0
	}
	return size
}

func (r *Recorder) FileName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fileName
}

// LapConfiguration returns the configuration of the current or last session.
func (r *Recorder) LapConfiguration() LapConfiguration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cfg
}
