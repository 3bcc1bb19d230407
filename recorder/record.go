package recorder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Columns of a data line, in order.
var Columns = []string{
	"lapNumber", "afr", "rpm", "temperature", "tps", "map",
	"latitude", "longitude", "speed", "incline", "stroke", "timestamp",
}

// Header is the first line of every log.
var Header = strings.Join(Columns, ",")

// Sample is one set of sensor readings handed to the recorder.
type Sample struct {
	AFR     float64
	RPM     float64
	Temp    float64
	TPS     float64
	MAP     float64
	Lat     float64
	Lng     float64
	Speed   float64
	Incline float64
	Stroke  float64
}

// Fix is a GPS position. Invalid fixes are ignored by GPS based lap detection.
type Fix struct {
	Lat   float64
	Lng   float64
	Valid bool
}

// Record is one data line of the log.
type Record struct {
	Lap             int
	AFR             float64
	RPM             float64
	Temp            float64
	TPS             float64
	MAP             float64
	Lat             float64
	Lng             float64
	Speed           float64
	Incline         float64
	Stroke          float64
	TimestampMillis int64
}

func newRecord(lap int, s Sample, millis int64) Record {
	return Record{
		Lap:             lap,
		AFR:             s.AFR,
		RPM:             s.RPM,
		Temp:            s.Temp,
		TPS:             s.TPS,
		MAP:             s.MAP,
		Lat:             s.Lat,
		Lng:             s.Lng,
		Speed:           s.Speed,
		Incline:         s.Incline,
		Stroke:          s.Stroke,
		TimestampMillis: millis,
	}
}

// FormatRecord renders r as a data line without the trailing newline.
func FormatRecord(r Record) string {
	return fmt.Sprintf("%d,%.1f,%.0f,%.1f,%.1f,%.1f,%.6f,%.6f,%.1f,%.1f,%.1f,%d",
		r.Lap, r.AFR, r.RPM, r.Temp, r.TPS, r.MAP,
		r.Lat, r.Lng, r.Speed, r.Incline, r.Stroke, r.TimestampMillis)
}

// ParseRecord parses a data line produced by FormatRecord.
func ParseRecord(line string) (Record, error) {
	fields := strings.Split(strings.TrimSpace(line), ",")
	if len(fields) != len(Columns) {
		return Record{}, errors.Errorf("expected %d fields, got %d", len(Columns), len(fields))
	}

	var r Record
	lap, err := strconv.Atoi(fields[0])
	if err != nil {
		return Record{}, errors.Wrap(err, "lapNumber")
	}
	r.Lap = lap

	floats := []*float64{
		&r.AFR, &r.RPM, &r.Temp, &r.TPS, &r.MAP,
		&r.Lat, &r.Lng, &r.Speed, &r.Incline, &r.Stroke,
	}
	for i, dst := range floats {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Record{}, errors.Wrap(err, Columns[i+1])
		}
		*dst = v
	}

	ts, err := strconv.ParseInt(fields[len(fields)-1], 10, 64)
	if err != nil {
		return Record{}, errors.Wrap(err, "timestamp")
	}
	r.TimestampMillis = ts
	return r, nil
}

// IsComment reports whether line is a metadata or summary line.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// ReadRecords returns the data lines of a log, skipping the header,
// comments and blank lines.
func ReadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || IsComment(line) || line == Header {
			continue
		}
		rec, err := ParseRecord(line)
		if err != nil {
			return records, errors.Wrapf(err, "line %d", lineNo)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return records, errors.Wrap(err, "unable to read log")
	}
	return records, nil
}
