package forwarder

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/jd3nn1s/racelogger"
)

type Header struct {
	Type uint8
}

const (
	TypeTelemetry = 1
	TypeTiming    = 2
)

var maxTelemetrySize = binary.Size(Header{}) + binary.Size(racelogger.Telemetry{})

// EncodeTelemetry builds one telemetry packet.
func EncodeTelemetry(telem *racelogger.Telemetry) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, maxTelemetrySize))
	hdr := Header{
		Type: TypeTelemetry,
	}
	if err := binary.Write(buf, binary.LittleEndian, &hdr); err != nil {
		return nil, errors.Wrap(err, "unable to write udp packet header")
	}
	if err := binary.Write(buf, binary.LittleEndian, telem); err != nil {
		return nil, errors.Wrap(err, "unable to write telemetry udp packet")
	}
	return buf.Bytes(), nil
}

// DecodeTelemetry reads a packet written by EncodeTelemetry.
func DecodeTelemetry(r io.Reader) (racelogger.Telemetry, error) {
	var (
		hdr   Header
		telem racelogger.Telemetry
	)
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return telem, errors.Wrap(err, "unable to read udp packet header")
	}
	if hdr.Type != TypeTelemetry {
		return telem, errors.Errorf("unexpected packet type %d", hdr.Type)
	}
	if err := binary.Read(r, binary.LittleEndian, &telem); err != nil {
		return telem, errors.Wrap(err, "unable to read telemetry")
	}
	return telem, nil
}
