// Package gps reads NMEA 0183 sentences from a serial GPS receiver and
// reports navigation data through callbacks.
package gps

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/adrianmo/go-nmea"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"
)

// DefaultBaudRate of most NMEA receivers.
const DefaultBaudRate = 9600

const knotsToKmh = 1.852

type FixQuality int

const (
	FixNone FixQuality = iota
	FixGPS
	FixDGPS
)

// NavData combines the latest position (RMC) with the latest fix quality
// report (GGA).
type NavData struct {
	Fix        FixQuality
	Valid      bool
	Satellites int
	Latitude   float64
	Longitude  float64
	Altitude   float64
	// Speed over ground in km/h.
	Speed float64
	// Track is the course over ground in degrees.
	Track float64
	HDOP  float64
}

type Callbacks struct {
	NavData  func(NavData)
	Sentence func(nmea.Sentence)
}

type Connection struct {
	port io.ReadWriteCloser
	nav  NavData
}

var openPort = func(name string, baud int) (io.ReadWriteCloser, error) {
	return serial.Open(name, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
}

func Connect(portName string, baud int) (*Connection, error) {
	if baud == 0 {
		baud = DefaultBaudRate
	}
	port, err := openPort(portName, baud)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open gps port %s", portName)
	}
	log.WithField("port", portName).WithField("baud", baud).Info("gps port opened")
	return &Connection{port: port}, nil
}

func (c *Connection) Close() error {
	if c.port == nil {
		return errors.New("gps not connected")
	}
	return c.port.Close()
}

// Start reads sentences until the port fails or ctx is done.
func (c *Connection) Start(ctx context.Context, cb Callbacks) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			log.Infof("stopping gps: %v", ctx.Err())
			_ = c.port.Close()
		case <-done:
		}
	}()

	scanner := bufio.NewScanner(c.port)
	for scanner.Scan() {
		c.handleLine(scanner.Text(), cb)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "gps read failed")
	}
	return io.EOF
}

func (c *Connection) handleLine(line string, cb Callbacks) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$") {
		return
	}
	s, err := nmea.Parse(line)
	if err != nil {
		log.WithField("err", err).Debug("unable to parse nmea sentence")
		return
	}
	if cb.Sentence != nil {
		cb.Sentence(s)
	}

	switch s.DataType() {
	case nmea.TypeGGA:
		gga := s.(nmea.GGA)
		c.nav.Fix = fixQuality(gga.FixQuality)
		c.nav.Satellites = int(gga.NumSatellites)
		c.nav.HDOP = gga.HDOP
		c.nav.Altitude = gga.Altitude
	case nmea.TypeRMC:
		rmc := s.(nmea.RMC)
		c.nav.Valid = rmc.Validity == nmea.ValidRMC
		c.nav.Latitude = rmc.Latitude
		c.nav.Longitude = rmc.Longitude
		c.nav.Speed = rmc.Speed * knotsToKmh
		c.nav.Track = rmc.Course
		if cb.NavData != nil {
			cb.NavData(c.nav)
		}
	}
}

func fixQuality(q string) FixQuality {
	switch q {
	case nmea.Invalid, "":
		return FixNone
	case nmea.GPS:
		return FixGPS
	}
	return FixDGPS
}
