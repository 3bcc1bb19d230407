package racelogger

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger/lemoncan"
)

type canBusRetryable struct {
	c        CANBus
	portName string
	sendChan chan<- canSensorData
	data     canSensorData
}

func (bus *canBusRetryable) Open() error {
	c, err := canBusConnect(bus.portName)
	bus.c = c
	return err
}

func (bus *canBusRetryable) Close() error {
	if bus.c == nil {
		return nil
	}
	return bus.c.Close()
}

func (bus *canBusRetryable) Start(ctx context.Context) error {
	set := func(dst *float64) lemoncan.ResultFn {
		return func(v float64) {
			*dst = v
			bus.send()
		}
	}
	return bus.c.Start(ctx, lemoncan.Callbacks{
		AFR:         set(&bus.data.AFR),
		RPM:         set(&bus.data.RPM),
		CoolantTemp: set(&bus.data.CoolantTemp),
		TPS:         set(&bus.data.TPS),
		MAP:         set(&bus.data.MAP),
		Incline:     set(&bus.data.Incline),
		Stroke:      set(&bus.data.Stroke),
	})
}

// CANBus returns the open connection or nil.
func (bus *canBusRetryable) CANBus() CANBus {
	return bus.c
}

func (bus *canBusRetryable) send() {
	select {
	case bus.sendChan <- bus.data:
	default:
	}
}

func (bus *canBusRetryable) Name() string {
	return "canbus"
}

var canBusConnect = func(p string) (CANBus, error) {
	return lemoncan.Connect(p)
}

func runCAN(ctx context.Context, bus *canBusRetryable) {
	err := retry(ctx, bus)
	if err != nil {
		log.Errorf("canbus done: %v", err)
	}
}
