// Package racelogger ties the vehicle sensors to the engine condition
// classifier, the cooling monitor and the lap recorder.
package racelogger

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger/config"
	"github.com/jd3nn1s/racelogger/cooling"
	"github.com/jd3nn1s/racelogger/knn"
	"github.com/jd3nn1s/racelogger/recorder"
	"github.com/jd3nn1s/racelogger/storage"
)

const (
	channelBufferSize = 1
)

// Controller is driven by a single loop calling CheckChannels and Tick.
type Controller struct {
	cfg *config.Config

	telemetry     Telemetry
	prevTelemetry Telemetry

	gpsChan       chan gpsData
	canSensorChan chan canSensorData
	gps           *gpsRetryable
	canBus        *canBusRetryable
	satellites    int

	forwarders []Forwarder
	testMode   bool

	classifier     *knn.Classifier
	classification knn.Result
	classified     bool
	lastClassified time.Time

	cooling  *cooling.Monitor
	recorder *recorder.Recorder

	now func() time.Time
}

// NewController builds a controller writing its log to the configured
// recorder directory.
func NewController(cfg *config.Config) (*Controller, error) {
	store, err := storage.NewDirStore(cfg.Recorder.Dir)
	if err != nil {
		return nil, err
	}
	return newController(cfg, store)
}

func newController(cfg *config.Config, store storage.Store) (*Controller, error) {
	bundle, err := knn.Lookup(cfg.Classifier.Bundle)
	if err != nil {
		return nil, err
	}
	classifier, err := knn.New(bundle)
	if err != nil {
		return nil, err
	}

	mon := cooling.NewMonitor(nil)
	mon.SetFanOnTemp(cfg.Cooling.FanOnTemp)
	mon.SetCutoffTemp(cfg.Cooling.CutoffTemp)

	rec := recorder.New(store, mon)
	rec.SetFileName(cfg.Recorder.File)
	lapCfg := cfg.LapConfiguration()
	rec.SetLapConfiguration(&lapCfg)

	gpsChan, canSensorChan := mkChannels()
	c := &Controller{
		cfg:           cfg,
		gpsChan:       gpsChan,
		canSensorChan: canSensorChan,
		classifier:    classifier,
		cooling:       mon,
		recorder:      rec,
		now:           time.Now,
	}
	c.gps = &gpsRetryable{
		portName: cfg.GPS.Port,
		baud:     cfg.GPS.Baud,
		maxHDOP:  cfg.GPS.MaxHDOP,
		sendChan: gpsChan,
	}
	c.canBus = &canBusRetryable{
		portName: cfg.CAN.Interface,
		sendChan: canSensorChan,
	}
	return c, nil
}

func mkChannels() (gpsChan chan gpsData, canSensorChan chan canSensorData) {
	gpsChan = make(chan gpsData, channelBufferSize)
	canSensorChan = make(chan canSensorData, channelBufferSize)
	return
}

func (c *Controller) AddForwarder(fwd Forwarder) {
	c.forwarders = append(c.forwarders, fwd)
}

func (c *Controller) SetTestMode(testMode bool) {
	c.testMode = testMode
}

// SetClock replaces the time source of the controller and its recorder.
func (c *Controller) SetClock(now func() time.Time) {
	c.now = now
	c.recorder.SetClock(now)
}

// Start powers the cooling system and starts the sensor goroutines, or the
// synthetic data generators in test mode.
func (c *Controller) Start(ctx context.Context) {
	c.cooling.Start()
	if c.testMode {
		log.Info("starting in test mode")
		c.runTestMode(ctx)
		return
	}
	go runCAN(ctx, c.canBus)
	go runGPS(ctx, c.gps)
	if c.cfg.CAN.Dash {
		c.AddForwarder(&CANForwarder{
			canSensorBus: c.canBus,
			classifier:   c.classifier,
		})
	}
}

func (c *Controller) Telemetry() Telemetry {
	return c.telemetry
}

func (c *Controller) Recorder() *recorder.Recorder {
	return c.recorder
}

func (c *Controller) Cooling() *cooling.Monitor {
	return c.cooling
}

func (c *Controller) Classification() knn.Result {
	return c.classification
}

// CheckChannels merges at most one pending sensor update into the
// telemetry. It does not block.
func (c *Controller) CheckChannels() (changed bool) {
	newTelemetry := c.telemetry
	select {
	case gpsData := <-c.gpsChan:
		newTelemetry.GPSValid = boolToUint8(gpsData.Valid)
		if gpsData.Valid {
			newTelemetry.Latitude = gpsData.Latitude
			newTelemetry.Longitude = gpsData.Longitude
			newTelemetry.Altitude = float32(gpsData.Altitude)
			newTelemetry.Track = float32(gpsData.Track)
			newTelemetry.GPSSpeed = float32(gpsData.Speed)
			c.satellites = gpsData.Satellites
		}
	case canSensorData := <-c.canSensorChan:
		newTelemetry.AFR = float32(canSensorData.AFR)
		newTelemetry.RPM = float32(canSensorData.RPM)
		newTelemetry.CoolantTemp = float32(canSensorData.CoolantTemp)
		newTelemetry.TPS = float32(canSensorData.TPS)
		newTelemetry.MAP = float32(canSensorData.MAP)
		newTelemetry.Incline = float32(canSensorData.Incline)
		newTelemetry.Stroke = float32(canSensorData.Stroke)
	default:
		return false
	}
	if c.telemetry != newTelemetry {
		c.telemetry = newTelemetry
		return true
	}
	return false
}

// Tick runs one cycle: cooling, recording, classification, forwarding.
func (c *Controller) Tick() {
	now := c.now()

	c.cooling.Update(float64(c.telemetry.CoolantTemp))

	wasRecording := c.recorder.IsRecording()
	c.recorder.Update(c.telemetry.fix())
	c.recorder.SaveCurrentSensorData(c.telemetry.sample())
	if wasRecording && c.recorder.State() == recorder.EmergencyStopped {
		c.cooling.EmergencyShutdown()
	}

	if !c.classified || now.Sub(c.lastClassified) >= c.cfg.Classifier.Interval.Duration {
		c.classify()
		c.lastClassified = now
	}

	c.updateStatus()
	c.TelemetryUpdate()
}

func (c *Controller) classify() {
	t := &c.telemetry
	res := c.classifier.Classify(knn.Features{
		knn.AFR:  float64(t.AFR),
		knn.RPM:  float64(t.RPM),
		knn.Temp: float64(t.CoolantTemp),
		knn.TPS:  float64(t.TPS),
		knn.MAP:  float64(t.MAP),
	})
	if !c.classified || res.Label != c.classification.Label {
		entry := log.WithField("condition", res.Text).WithField("rule", res.Rule)
		if c.classifier.IsCritical(res.Label) {
			entry.Warn("critical engine condition")
		} else {
			entry.Info("engine condition changed")
		}
	}
	c.classification = res
	c.classified = true
	t.Condition = uint8(res.Label)
}

func (c *Controller) updateStatus() {
	t := &c.telemetry
	t.Lap = uint16(c.recorder.CurrentLap())
	t.LapProgress = float32(c.recorder.LapProgressPercent())
	t.Recording = boolToUint8(c.recorder.IsRecording())
	t.FanOn = boolToUint8(c.cooling.FanOn())
	t.CutoffActive = boolToUint8(c.cooling.CutoffActive())
}

// TelemetryUpdate hands changed telemetry to every forwarder.
func (c *Controller) TelemetryUpdate() {
	if c.telemetry == c.prevTelemetry {
		return
	}
	newTelemetry := c.telemetry
	for _, fwd := range c.forwarders {
		if err := fwd.Forward(&newTelemetry, &c.prevTelemetry); err != nil {
			log.WithField("err", err).Warn("unable to forward telemetry")
		}
	}
	c.prevTelemetry = newTelemetry
}

// StartRecording powers the cooling system first when it is off, since the
// over-temperature interlock reads its temperature.
func (c *Controller) StartRecording() error {
	if !c.cooling.Active() {
		log.Info("starting cooling system for recording")
		c.cooling.Start()
	}
	return errors.Wrap(c.recorder.StartRecording(), "unable to start recording")
}

func (c *Controller) StopRecording() error {
	return errors.Wrap(c.recorder.StopRecording(), "unable to stop recording")
}

func (c *Controller) TransmitData(w io.Writer) (recorder.TransmitSummary, error) {
	summary, err := c.recorder.TransmitAllData(w)
	return summary, errors.Wrap(err, "unable to transmit data")
}

// Run drives the loop until ctx is done. Console commands received on
// commands are executed between ticks with their output written to out.
func (c *Controller) Run(ctx context.Context, commands <-chan string, out io.Writer, onChange func(Telemetry)) error {
	ticker := time.NewTicker(c.cfg.Recorder.TickInterval.Duration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-commands:
			if err := c.HandleCommand(cmd, out); err != nil {
				log.WithField("cmd", cmd).WithField("err", err).Warn("console command failed")
			}
		case <-ticker.C:
			for c.CheckChannels() {
				if onChange != nil {
					onChange(c.telemetry)
				}
			}
			c.Tick()
		}
	}
}
