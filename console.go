package racelogger

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger/knn"
)

var ErrUnknownCommand = errors.New("unknown command")

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

// HandleCommand runs one console command, writing its output to w.
// Commands are case insensitive. Failed commands print an ERROR line and
// return the error.
func (c *Controller) HandleCommand(cmd string, w io.Writer) error {
	cmd = strings.ToUpper(strings.TrimSpace(cmd))
	if cmd == "" {
		return nil
	}
	log.WithField("cmd", cmd).Debug("console command")

	var err error
	switch cmd {
	case "1", "START":
		if err = c.StartRecording(); err == nil {
			fmt.Fprintln(w, "Recording started")
		}
	case "STOP":
		if err = c.StopRecording(); err == nil {
			fmt.Fprintln(w, "Recording stopped")
		}
	case "2", "TRANSMIT":
		_, err = c.TransmitData(w)
	case "PAUSE":
		if err = c.recorder.Pause(); err == nil {
			fmt.Fprintln(w, "Recording paused")
		}
	case "RESUME":
		if err = c.recorder.Resume(); err == nil {
			fmt.Fprintln(w, "Recording resumed")
		}
	case "DELETE":
		if err = c.recorder.DeleteLog(); err == nil {
			fmt.Fprintln(w, "Log deleted")
		}
	case "STATUS":
		c.printStatus(w)
	case "INFO":
		c.printInfo(w)
	case "COOLING_ON":
		c.cooling.Start()
		fmt.Fprintln(w, "Cooling system started")
	case "COOLING_OFF":
		c.cooling.Stop()
		fmt.Fprintln(w, "Cooling system stopped")
	case "COOLING_STATUS":
		c.printCooling(w)
	case "GPS":
		c.printGPS(w)
	case "SENSORS":
		c.printSensors(w)
	case "AI":
		c.printClassifier(w)
	case "HELP":
		printHelp(w)
	default:
		err = errors.Wrap(ErrUnknownCommand, cmd)
	}

	if err != nil {
		fmt.Fprintf(w, "ERROR: %v\n", err)
	}
	return err
}

func (c *Controller) printStatus(w io.Writer) {
	r := c.recorder
	fmt.Fprintln(w, "=== SYSTEM STATUS ===")
	fmt.Fprintf(w, "State: %s\n", r.State())
	fmt.Fprintf(w, "Recording: %s\n", yesNo(r.IsRecording()))
	fmt.Fprintf(w, "Paused: %s\n", yesNo(r.IsPaused()))
	fmt.Fprintf(w, "Transmitting: %s\n", yesNo(r.IsTransmitting()))
	fmt.Fprintf(w, "Current Lap: %d/%d\n", r.CurrentLap(), r.TotalLaps())
	fmt.Fprintf(w, "Lap Progress: %.1f%%\n", r.LapProgressPercent())
	fmt.Fprintf(w, "Lap Time: %d ms\n", r.LapTime().Milliseconds())
	fmt.Fprintf(w, "Cooling: %s\n", c.cooling.Status())
	fmt.Fprintf(w, "Classification: %s\n", c.classification.Text)
}

func (c *Controller) printInfo(w io.Writer) {
	r := c.recorder
	lap := r.LapConfiguration()
	stats := r.OverallStats()
	fmt.Fprintln(w, "=== RECORDING INFO ===")
	fmt.Fprintf(w, "File: %s\n", r.FileName())
	fmt.Fprintf(w, "Has Data: %s\n", yesNo(r.HasRecordedData()))
	fmt.Fprintf(w, "File Size: %d bytes\n", r.DataFileSize())
	fmt.Fprintf(w, "Session: %s\n", r.SessionID())
	fmt.Fprintf(w, "Lap Mode: %d (%s)\n", int(lap.Mode), lap.Mode)
	fmt.Fprintf(w, "Total Laps: %d\n", lap.TotalLaps)
	fmt.Fprintf(w, "Best Lap: %d ms\n", stats.BestLapTime.Milliseconds())
	fmt.Fprintf(w, "Samples: %d\n", stats.SampleCount)
}

func (c *Controller) printCooling(w io.Writer) {
	m := c.cooling
	fmt.Fprintln(w, "=== COOLING STATUS ===")
	fmt.Fprintf(w, "System: %s\n", yesNo(m.Active()))
	fmt.Fprintf(w, "Fan: %s\n", yesNo(m.FanOn()))
	fmt.Fprintf(w, "Cut-off: %s\n", yesNo(m.CutoffActive()))
	fmt.Fprintf(w, "Temperature: %.1f C\n", m.CurrentTemperature())
	fmt.Fprintf(w, "Fan ON Temp: %.0f C\n", m.FanOnTemp())
	fmt.Fprintf(w, "Cut-off Temp: %.0f C\n", m.CutoffThreshold())
}

func (c *Controller) printGPS(w io.Writer) {
	t := c.telemetry
	fmt.Fprintln(w, "=== GPS STATUS ===")
	fmt.Fprintf(w, "Valid: %s\n", yesNo(t.GPSValid != 0))
	if t.GPSValid == 0 {
		fmt.Fprintln(w, "No GPS fix available")
		return
	}
	fmt.Fprintf(w, "Latitude: %.6f\n", t.Latitude)
	fmt.Fprintf(w, "Longitude: %.6f\n", t.Longitude)
	fmt.Fprintf(w, "Speed: %.1f km/h\n", t.GPSSpeed)
	fmt.Fprintf(w, "Satellites: %d\n", c.satellites)
}

func (c *Controller) printSensors(w io.Writer) {
	t := c.telemetry
	fmt.Fprintln(w, "=== SENSOR STATUS ===")
	fmt.Fprintf(w, "AFR: %.1f\n", t.AFR)
	fmt.Fprintf(w, "RPM: %.0f\n", t.RPM)
	fmt.Fprintf(w, "Temperature: %.1f C\n", t.CoolantTemp)
	fmt.Fprintf(w, "TPS: %.1f%%\n", t.TPS)
	fmt.Fprintf(w, "MAP: %.1f kPa\n", t.MAP)
	fmt.Fprintf(w, "Incline: %.1f deg\n", t.Incline)
	fmt.Fprintf(w, "Stroke: %.1f mm\n", t.Stroke)
}

func (c *Controller) printClassifier(w io.Writer) {
	b := c.classifier.Bundle()
	fmt.Fprintln(w, "=== CLASSIFIER STATUS ===")
	fmt.Fprintf(w, "Current Classification: %d (%s)\n", c.classification.Label, c.classification.Text)
	fmt.Fprintf(w, "Decided By Rule: %s\n", yesNo(c.classification.Rule))
	fmt.Fprintf(w, "Bundle: %s v%d\n", b.Name, b.Version)
	fmt.Fprintf(w, "Training Data Size: %d\n", len(b.Rows))
	fmt.Fprintf(w, "K-Value: %d\n", knn.K)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "=== AVAILABLE COMMANDS ===")
	for _, l := range []string{
		"1 or START     - Start recording",
		"2 or TRANSMIT  - Transmit recorded data",
		"STOP           - Stop recording",
		"PAUSE          - Pause recording",
		"RESUME         - Resume recording",
		"DELETE         - Delete the recorded log",
		"STATUS         - Show system status",
		"INFO           - Show recording info",
		"COOLING_ON     - Start cooling system",
		"COOLING_OFF    - Stop cooling system",
		"COOLING_STATUS - Show cooling status",
		"GPS            - Show GPS status",
		"SENSORS        - Show sensor readings",
		"AI             - Show classifier status",
		"HELP           - Show this help",
	} {
		fmt.Fprintln(w, l)
	}
}
