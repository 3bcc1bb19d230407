package racelogger

import (
	"context"

	"github.com/jd3nn1s/racelogger/gps"
	"github.com/jd3nn1s/racelogger/lemoncan"
)

type GPS interface {
	Close() error
	Start(context.Context, gps.Callbacks) error
}

type CANBus interface {
	Close() error
	Start(context.Context, lemoncan.Callbacks) error
	SendSpeed(int) error
	SendCondition(label int, critical bool) error
	SendLap(lap int, progress float64) error
}

// Forwarder receives every telemetry change.
type Forwarder interface {
	Forward(newTelemetry *Telemetry, prevTelemetry *Telemetry) error
}
