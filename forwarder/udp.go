// Package forwarder sends live telemetry to a pit server over UDP.
package forwarder

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger"
)

const defaultInterval = 100 * time.Millisecond

type UDPConfig struct {
	Server string
	Port   int
	// IntervalMs is the minimum time between packets.
	IntervalMs int
}

type UDPForwarder struct {
	Config *UDPConfig

	conn    net.Conn
	fwdChan chan *racelogger.Telemetry
}

// NewUDPForwarder loads the forwarder configuration from fileName. Relative
// names are resolved against the directory of the running binary.
func NewUDPForwarder(fileName string) (*UDPForwarder, error) {
	path := fileName
	if !filepath.IsAbs(path) {
		dir, err := filepath.Abs(filepath.Dir(os.Args[0]))
		if err != nil {
			return nil, errors.Wrapf(err, "unable to determine binary location")
		}
		path = filepath.Join(dir, fileName)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open file %s", fileName)
	}
	defer file.Close()
	return NewUDPForwarderFromReader(file)
}

func NewUDPForwarderFromReader(configReader io.Reader) (*UDPForwarder, error) {
	config := UDPConfig{}
	if _, err := toml.NewDecoder(configReader).Decode(&config); err != nil {
		return nil, errors.Wrapf(err, "unable to load udp forwarder configuration")
	}
	if config.Server == "" || config.Port == 0 {
		return nil, errors.New("udp forwarder needs Server and Port")
	}
	udp := &UDPForwarder{
		Config:  &config,
		fwdChan: make(chan *racelogger.Telemetry, 1),
	}
	if err := udp.connect(); err != nil {
		return nil, err
	}
	return udp, nil
}

func (udp *UDPForwarder) Close() error {
	return udp.conn.Close()
}

func (udp *UDPForwarder) Forward(newTelemetry *racelogger.Telemetry, prevTelemetry *racelogger.Telemetry) error {
	// copy telemetry as we're processing it on another go-routine
	telemCopy := *newTelemetry
	select {
	case udp.fwdChan <- &telemCopy:
	default:
		// if channel is full, skip
	}
	return nil
}

func (udp *UDPForwarder) interval() time.Duration {
	if udp.Config.IntervalMs <= 0 {
		return defaultInterval
	}
	return time.Duration(udp.Config.IntervalMs) * time.Millisecond
}

// Start sends queued telemetry, at most one packet per interval, until ctx
// is done.
func (udp *UDPForwarder) Start(ctx context.Context) error {
	limiter := time.NewTicker(udp.interval())
	defer limiter.Stop()
	for {
		select {
		case <-limiter.C:
		case <-ctx.Done():
			return ctx.Err()
		}
		select {
		case t := <-udp.fwdChan:
			if err := udp.forward(t); err != nil {
				log.WithField("err", err).Error("unable to forward telemetry to server")
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (udp *UDPForwarder) forward(telem *racelogger.Telemetry) error {
	packet, err := EncodeTelemetry(telem)
	if err != nil {
		return err
	}
	_, err = udp.conn.Write(packet)
	return errors.Wrap(err, "unable to send telemetry packet")
}

func (udp *UDPForwarder) connect() error {
	writeBufSize := maxTelemetrySize * 2

	conn, err := net.Dial("udp", fmt.Sprintf("%s:%d",
		udp.Config.Server,
		udp.Config.Port))
	if err != nil {
		return errors.Wrap(err, "unable to dial udp server")
	}
	udpConn := conn.(*net.UDPConn)
	if err = udpConn.SetWriteBuffer(writeBufSize); err != nil {
		return errors.Wrapf(err, "unable to set OS write buffer to %v", writeBufSize)
	}

	udp.conn = conn
	return nil
}
