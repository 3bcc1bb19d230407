package recorder

import (
	"fmt"
)

// LapMode selects how lap boundaries are detected.
type LapMode int

// Values match the mode numbers written to the log metadata.
const (
	ModeGPSReturn LapMode = iota
	ModeDistance
	ModeTime
)

func (m LapMode) String() string {
	switch m {
	case ModeGPSReturn:
		return "GPS Return"
	case ModeDistance:
		return "Distance"
	case ModeTime:
		return "Time"
	}
	return fmt.Sprintf("LapMode(%d)", int(m))
}

// ParseLapMode accepts the names used in configuration files.
func ParseLapMode(s string) (LapMode, error) {
	switch s {
	case "gps", "gps_return", "gps-return":
		return ModeGPSReturn, nil
	case "distance", "":
		return ModeDistance, nil
	case "time":
		return ModeTime, nil
	}
	return 0, fmt.Errorf("unknown lap mode %q", s)
}

// LapConfiguration is owned by the caller; the recorder only reads it.
type LapConfiguration struct {
	Mode LapMode
	// TargetDistance is the lap length in meters for ModeDistance.
	TargetDistance float64
	// TargetTime is the lap duration in seconds for ModeTime.
	TargetTime int
	// GPSThreshold is the return-to-start radius in degrees for ModeGPSReturn.
	GPSThreshold float64
	TotalLaps    int
}

// DefaultLapConfiguration is used when no configuration has been supplied.
func DefaultLapConfiguration() LapConfiguration {
	return LapConfiguration{
		Mode:           ModeDistance,
		TargetDistance: 500,
		TargetTime:     120,
		GPSThreshold:   0.0005,
		TotalLaps:      3,
	}
}
