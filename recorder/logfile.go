package recorder

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}

func writeLines(w io.Writer, lines []string) error {
	for _, l := range lines {
		if _, err := io.WriteString(w, l+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// createLog truncates the log and writes the header and session metadata.
func (r *Recorder) createLog(now time.Time) error {
	w, err := r.store.Create(r.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create %s", r.fileName)
	}
	err = writeLines(w, r.metadata(now))
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "unable to write header to %s", r.fileName)
}

func (r *Recorder) metadata(now time.Time) []string {
	lines := []string{
		Header,
		fmt.Sprintf("# Recording started at: %d ms", r.millis(now)),
		"# Session: " + r.sessionID,
		"# Lap Configuration:",
		fmt.Sprintf("#   Mode: %d (%s)", int(r.cfg.Mode), r.cfg.Mode),
		fmt.Sprintf("#   Total Laps: %d", r.cfg.TotalLaps),
	}
	switch r.cfg.Mode {
	case ModeDistance:
		lines = append(lines, fmt.Sprintf("#   Target Distance: %.1f meters", r.cfg.TargetDistance))
	case ModeTime:
		lines = append(lines, fmt.Sprintf("#   Target Time: %d seconds", r.cfg.TargetTime))
	case ModeGPSReturn:
		lines = append(lines, fmt.Sprintf("#   GPS Threshold: %.6f degrees", r.cfg.GPSThreshold))
	}
	if r.cooling != nil {
		lines = append(lines,
			"# Cooling System:",
			fmt.Sprintf("#   Temperature: %.1f C", r.cooling.CurrentTemperature()),
			fmt.Sprintf("#   Cut-off Temperature: %.1f C", r.cooling.CutoffThreshold()),
			"#   Cut-off Active: "+yesNo(r.cooling.CutoffActive()),
		)
	}
	return lines
}

// appendLines appends to the existing log. A missing log is not recreated;
// the session then only lives in memory.
func (r *Recorder) appendLines(lines ...string) error {
	w, err := r.store.Append(r.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to open %s", r.fileName)
	}
	err = writeLines(w, lines)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	return errors.Wrapf(err, "unable to append to %s", r.fileName)
}

func (r *Recorder) writeLapSummary(now time.Time, lapTime time.Duration) {
	s := r.currentStats
	lines := []string{
		fmt.Sprintf("# LAP %d SUMMARY:", r.currentLap),
		fmt.Sprintf("#   Lap Time: %d ms (%.2f seconds)", lapTime.Milliseconds(), lapTime.Seconds()),
		fmt.Sprintf("#   Completed At: %d ms", r.millis(now)),
	}
	if r.cfg.Mode == ModeDistance {
		lines = append(lines, fmt.Sprintf("#   Distance Traveled: %.1f meters", r.currentLapDistance))
	}
	lines = append(lines,
		fmt.Sprintf("#   Max Speed: %.1f km/h", s.MaxSpeed),
		fmt.Sprintf("#   Avg Speed: %.1f km/h", s.AvgSpeed),
		fmt.Sprintf("#   Max RPM: %.0f", s.MaxRPM),
		fmt.Sprintf("#   Avg RPM: %.0f", s.AvgRPM),
		fmt.Sprintf("#   Max Temperature: %.1f C", s.MaxTemp),
		fmt.Sprintf("#   Avg Temperature: %.1f C", s.AvgTemp),
		fmt.Sprintf("#   Samples: %d", s.SampleCount),
	)
	if err := r.appendLines(lines...); err != nil {
		log.WithError(err).WithField("lap", r.currentLap).Warn("unable to write lap summary")
	}
}

// writeSessionSummary closes the session in the log. marker, when not
// empty, is written first.
func (r *Recorder) writeSessionSummary(now time.Time, marker string) {
	s := r.overallStats
	var size int64
	if n, err := r.store.Size(r.fileName); err == nil {
		size = n
	}

	var lines []string
	if marker != "" {
		lines = append(lines, marker)
	}
	lines = append(lines,
		fmt.Sprintf("# RECORDING COMPLETED AT: %d ms", r.millis(now)),
		"# OVERALL STATISTICS:",
		fmt.Sprintf("#   Total Laps: %d", r.currentLap-1),
		fmt.Sprintf("#   Best Lap Time: %d ms (%.2f seconds)",
			s.BestLapTime.Milliseconds(), s.BestLapTime.Seconds()),
		fmt.Sprintf("#   Max Speed: %.1f km/h", s.MaxSpeed),
		fmt.Sprintf("#   Avg Speed: %.1f km/h", s.AvgSpeed),
		fmt.Sprintf("#   Max RPM: %.0f", s.MaxRPM),
		fmt.Sprintf("#   Avg RPM: %.0f", s.AvgRPM),
		fmt.Sprintf("#   Max Temperature: %.1f C", s.MaxTemp),
		fmt.Sprintf("#   Avg Temperature: %.1f C", s.AvgTemp),
		fmt.Sprintf("#   Samples: %d", s.SampleCount),
		fmt.Sprintf("#   File Size: %d bytes", size),
		"# Session: "+r.sessionID,
	)
	if err := r.appendLines(lines...); err != nil {
		log.WithError(err).Warn("unable to write session summary")
	}
}
