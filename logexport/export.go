// Package logexport converts a recorded session log into a parquet file for
// offline analysis.
package logexport

import (
	"io"
	"sort"

	"github.com/pkg/errors"
	parquetbuffer "github.com/xitongsys/parquet-go-source/buffer"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/jd3nn1s/racelogger/recorder"
)

type Row struct {
	Lap         int32   `parquet:"name=lap, type=INT32"`
	AFR         float64 `parquet:"name=afr, type=DOUBLE"`
	RPM         float64 `parquet:"name=rpm, type=DOUBLE"`
	Temperature float64 `parquet:"name=temperature_c, type=DOUBLE"`
	TPS         float64 `parquet:"name=tps_pct, type=DOUBLE"`
	MAP         float64 `parquet:"name=map_kpa, type=DOUBLE"`
	Latitude    float64 `parquet:"name=latitude, type=DOUBLE"`
	Longitude   float64 `parquet:"name=longitude, type=DOUBLE"`
	Speed       float64 `parquet:"name=speed_kmh, type=DOUBLE"`
	Incline     float64 `parquet:"name=incline_deg, type=DOUBLE"`
	Stroke      float64 `parquet:"name=stroke_mm, type=DOUBLE"`
	TimestampMs int64   `parquet:"name=timestamp_ms, type=INT64"`
}

func toRow(r recorder.Record) Row {
	return Row{
		Lap:         int32(r.Lap),
		AFR:         r.AFR,
		RPM:         r.RPM,
		Temperature: r.Temp,
		TPS:         r.TPS,
		MAP:         r.MAP,
		Latitude:    r.Lat,
		Longitude:   r.Lng,
		Speed:       r.Speed,
		Incline:     r.Incline,
		Stroke:      r.Stroke,
		TimestampMs: r.TimestampMillis,
	}
}

// Marshal encodes records as a snappy compressed parquet file.
func Marshal(records []recorder.Record) ([]byte, error) {
	fw := parquetbuffer.NewBufferFile()
	pw, err := writer.NewParquetWriter(fw, new(Row), 4)
	if err != nil {
		return nil, errors.Wrap(err, "unable to create parquet writer")
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	for _, rec := range records {
		if err := pw.Write(toRow(rec)); err != nil {
			_ = pw.WriteStop()
			return nil, errors.Wrap(err, "unable to write parquet row")
		}
	}
	if err := pw.WriteStop(); err != nil {
		return nil, errors.Wrap(err, "unable to finish parquet file")
	}
	if err := fw.Close(); err != nil {
		return nil, err
	}
	return append([]byte(nil), fw.Bytes()...), nil
}

// LapSummary describes one lap found in the log.
type LapSummary struct {
	Lap      int
	Samples  int
	Duration int64 // ms between first and last sample
	MaxSpeed float64
	MaxRPM   float64
	MaxTemp  float64
}

type Summary struct {
	Rows int
	Laps []LapSummary
}

func Summarize(records []recorder.Record) Summary {
	byLap := map[int]*LapSummary{}
	first := map[int]int64{}
	for _, r := range records {
		l, ok := byLap[r.Lap]
		if !ok {
			l = &LapSummary{Lap: r.Lap}
			byLap[r.Lap] = l
			first[r.Lap] = r.TimestampMillis
		}
		l.Samples++
		l.Duration = r.TimestampMillis - first[r.Lap]
		if r.Speed > l.MaxSpeed {
			l.MaxSpeed = r.Speed
		}
		if r.RPM > l.MaxRPM {
			l.MaxRPM = r.RPM
		}
		if r.Temp > l.MaxTemp {
			l.MaxTemp = r.Temp
		}
	}

	s := Summary{Rows: len(records)}
	for _, l := range byLap {
		s.Laps = append(s.Laps, *l)
	}
	sort.Slice(s.Laps, func(i, j int) bool {
		return s.Laps[i].Lap < s.Laps[j].Lap
	})
	return s
}

// Export reads a log from r and writes the parquet file to w.
func Export(r io.Reader, w io.Writer) (Summary, error) {
	records, err := recorder.ReadRecords(r)
	if err != nil {
		return Summary{}, err
	}
	data, err := Marshal(records)
	if err != nil {
		return Summary{}, err
	}
	if _, err := w.Write(data); err != nil {
		return Summary{}, errors.Wrap(err, "unable to write parquet output")
	}
	return Summarize(records), nil
}
