package racelogger

import (
	"context"

	"github.com/jd3nn1s/racelogger/gps"
	"github.com/jd3nn1s/racelogger/lemoncan"
)

type sensorStub struct {
	startChan chan struct{}
	errChan   chan error
	fnChan    chan func()
}

type gpsStub struct {
	sensorStub
	callbacks gps.Callbacks
}

type canBusStub struct {
	sensorStub
	callbacks lemoncan.Callbacks

	speed          int
	speedCallCount int
	condition      int
	critical       bool
	conditionCalls int
	lap            int
	lapProgress    float64
	lapCalls       int
}

func createSensorStub() *sensorStub {
	ret := sensorStub{
		startChan: make(chan struct{}),
		errChan:   make(chan error),
		fnChan:    make(chan func()),
	}
	return &ret
}

func (s *sensorStub) Close() error {
	return nil
}

func (s *sensorStub) start(ctx context.Context) error {
	select {
	case s.startChan <- struct{}{}:
	default:
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-s.errChan:
			return err
		case fn := <-s.fnChan:
			fn()
		}
	}
}

func createGPSStub() *gpsStub {
	return &gpsStub{
		sensorStub: *createSensorStub(),
	}
}

func (g *gpsStub) Start(ctx context.Context, callbacks gps.Callbacks) error {
	g.callbacks = callbacks
	return g.sensorStub.start(ctx)
}

func createCANBusStub() *canBusStub {
	return &canBusStub{
		sensorStub: *createSensorStub(),
	}
}

func (c *canBusStub) Start(ctx context.Context, callbacks lemoncan.Callbacks) error {
	c.callbacks = callbacks
	return c.sensorStub.start(ctx)
}

func (c *canBusStub) SendSpeed(speed int) error {
	c.speedCallCount++
	c.speed = speed
	return nil
}

func (c *canBusStub) SendCondition(label int, critical bool) error {
	c.conditionCalls++
	c.condition = label
	c.critical = critical
	return nil
}

func (c *canBusStub) SendLap(lap int, progress float64) error {
	c.lapCalls++
	c.lap = lap
	c.lapProgress = progress
	return nil
}

type forwarderStub struct {
	telemetry *Telemetry
	calls     int
}

func (fwd *forwarderStub) Forward(newTelemetry *Telemetry, prevTelemetry *Telemetry) error {
	fwd.telemetry = newTelemetry
	fwd.calls++
	return nil
}
