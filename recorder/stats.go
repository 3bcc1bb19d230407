package recorder

import (
	"time"
)

// LapStatistics accumulates maxima and running means over samples.
type LapStatistics struct {
	MaxSpeed float64
	AvgSpeed float64
	MaxRPM   float64
	AvgRPM   float64
	MaxTemp  float64
	AvgTemp  float64

	BestLapTime time.Duration
	SampleCount int

	speedSum float64
	rpmSum   float64
	tempSum  float64
}

func (s *LapStatistics) Reset() {
	*s = LapStatistics{}
}

func (s *LapStatistics) Update(sample Sample) {
	s.SampleCount++

	if sample.Speed > s.MaxSpeed {
		s.MaxSpeed = sample.Speed
	}
	if sample.RPM > s.MaxRPM {
		s.MaxRPM = sample.RPM
	}
	if sample.Temp > s.MaxTemp {
		s.MaxTemp = sample.Temp
	}

	s.speedSum += sample.Speed
	s.rpmSum += sample.RPM
	s.tempSum += sample.Temp

	n := float64(s.SampleCount)
	s.AvgSpeed = s.speedSum / n
	s.AvgRPM = s.rpmSum / n
	s.AvgTemp = s.tempSum / n
}
