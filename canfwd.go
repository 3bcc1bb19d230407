package racelogger

import (
	"github.com/pkg/errors"

	"github.com/jd3nn1s/racelogger/knn"
)

// CANForwarder mirrors speed, engine condition and lap progress to the dash.
type CANForwarder struct {
	canSensorBus *canBusRetryable
	classifier   *knn.Classifier
}

func (fwd *CANForwarder) Forward(newTelemetry *Telemetry, prevTelemetry *Telemetry) error {
	canBus := fwd.canSensorBus.CANBus()
	if canBus == nil {
		return errors.New("canbus is not initialized")
	}
	if int(prevTelemetry.GPSSpeed) != int(newTelemetry.GPSSpeed) {
		if err := canBus.SendSpeed(int(newTelemetry.GPSSpeed)); err != nil {
			return errors.Wrapf(err, "unable to send speed to CAN bus")
		}
	}
	if prevTelemetry.Condition != newTelemetry.Condition {
		label := int(newTelemetry.Condition)
		if err := canBus.SendCondition(label, fwd.classifier.IsCritical(label)); err != nil {
			return errors.Wrapf(err, "unable to send condition to CAN bus")
		}
	}
	if prevTelemetry.Lap != newTelemetry.Lap ||
		int(prevTelemetry.LapProgress) != int(newTelemetry.LapProgress) {
		if err := canBus.SendLap(int(newTelemetry.Lap), float64(newTelemetry.LapProgress)); err != nil {
			return errors.Wrapf(err, "unable to send lap to CAN bus")
		}
	}
	return nil
}
