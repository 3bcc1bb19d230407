package racelogger

import (
	"github.com/jd3nn1s/racelogger/recorder"
)

type gpsData struct {
	Valid      bool
	Latitude   float64
	Longitude  float64
	Altitude   float64
	Track      float64
	Speed      float64
	Satellites int
}

type canSensorData struct {
	AFR         float64
	RPM         float64
	CoolantTemp float64
	TPS         float64
	MAP         float64
	Incline     float64
	Stroke      float64
}

// Telemetry is the merged vehicle state. It is sent as-is by the UDP
// forwarder, so every field must have a fixed size.
type Telemetry struct {
	AFR         float32
	RPM         float32
	CoolantTemp float32
	TPS         float32
	MAP         float32
	Incline     float32
	Stroke      float32

	Latitude  float64
	Longitude float64
	Altitude  float32
	Track     float32
	GPSSpeed  float32
	GPSValid  uint8

	Condition    uint8
	Lap          uint16
	LapProgress  float32
	Recording    uint8
	FanOn        uint8
	CutoffActive uint8
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

func (t *Telemetry) fix() recorder.Fix {
	return recorder.Fix{
		Lat:   t.Latitude,
		Lng:   t.Longitude,
		Valid: t.GPSValid != 0,
	}
}

func (t *Telemetry) sample() recorder.Sample {
	return recorder.Sample{
		AFR:     float64(t.AFR),
		RPM:     float64(t.RPM),
		Temp:    float64(t.CoolantTemp),
		TPS:     float64(t.TPS),
		MAP:     float64(t.MAP),
		Lat:     t.Latitude,
		Lng:     t.Longitude,
		Speed:   float64(t.GPSSpeed),
		Incline: float64(t.Incline),
		Stroke:  float64(t.Stroke),
	}
}
