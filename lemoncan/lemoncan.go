// Package lemoncan speaks the logger's CAN protocol: engine sensor frames
// coming from the sensor node and condition/lap frames going to the dash.
// Every value is a little-endian 16 bit word with a fixed scale.
package lemoncan

import (
	"context"
	"encoding/binary"
	"math"

	"github.com/brutella/can"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	frameAFR         uint32 = 0x100
	frameRPM                = 0x101
	frameCoolantTemp        = 0x102
	frameTPS                = 0x103
	frameMAP                = 0x104
	frameIncline            = 0x105
	frameStroke             = 0x106

	frameSpeed     = 0x110
	frameCondition = 0x111
	frameLap       = 0x112
)

// ResultFn receives a decoded value in physical units.
type ResultFn func(v float64)

type Callbacks struct {
	AFR         ResultFn
	RPM         ResultFn
	CoolantTemp ResultFn
	TPS         ResultFn
	MAP         ResultFn
	Incline     ResultFn
	Stroke      ResultFn
}

type CANBus interface {
	SubscribeFunc(can.HandlerFunc)
	ConnectAndPublish() error
	Disconnect() error
	Publish(can.Frame) error
}

type Connection struct {
	bus CANBus
	cb  *Callbacks
}

var newBus = func(name string) (CANBus, error) {
	return can.NewBusForInterfaceWithName(name)
}

func Connect(portName string) (*Connection, error) {
	bus, err := newBus(portName)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open CAN interface %s", portName)
	}

	c := &Connection{
		bus: bus,
	}
	return c, nil
}

// Start subscribes to incoming frames and blocks until the bus is
// disconnected or ctx is done.
func (c *Connection) Start(ctx context.Context, cb Callbacks) error {
	c.cb = &cb
	c.bus.SubscribeFunc(c.handleFrame)
	log.Info("CAN bus opened and subscribed")

	go func() {
		<-ctx.Done()
		log.Infof("stopping can bus: %v", ctx.Err())
		if err := c.bus.Disconnect(); err != nil {
			log.WithField("err", err).Warn("unable to disconnect canbus after context")
		}
	}()

	return c.bus.ConnectAndPublish()
}

func (c *Connection) Close() error {
	if c.bus == nil {
		return errors.New("can bus not connected")
	}
	return c.bus.Disconnect()
}

func (c *Connection) publish(id uint32, data []byte) error {
	if c.bus == nil {
		return errors.New("can bus not connected")
	}
	f := can.Frame{
		ID:     id,
		Length: uint8(len(data)),
	}
	copy(f.Data[:], data)
	return c.bus.Publish(f)
}

// SendSpeed publishes the GPS ground speed in km/h.
func (c *Connection) SendSpeed(speed int) error {
	log.WithField("speed", speed).Debug("sending speed over canbus")
	if speed < 0 {
		speed = 0
	}
	if speed > math.MaxUint8 {
		speed = math.MaxUint8
	}
	return c.publish(frameSpeed, []byte{uint8(speed)})
}

// SendCondition publishes the engine condition label and whether it is the
// critical class.
func (c *Connection) SendCondition(label int, critical bool) error {
	log.WithField("label", label).Debug("sending condition over canbus")
	var flags uint8
	if critical {
		flags = 1
	}
	return c.publish(frameCondition, []byte{uint8(label), flags})
}

// SendLap publishes the current lap and the lap progress in percent.
func (c *Connection) SendLap(lap int, progress float64) error {
	log.WithField("lap", lap).Debug("sending lap over canbus")
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	data := make([]byte, 3)
	binary.LittleEndian.PutUint16(data[0:2], uint16(lap))
	data[2] = uint8(progress)
	return c.publish(frameLap, data)
}

func (c *Connection) handleFrame(frame can.Frame) {
	log.WithField("canID", frame.ID).
		WithField("length", frame.Length).
		Debug("received canbus frame")

	if c.cb == nil {
		return
	}

	var (
		cb     ResultFn
		scale  = 0.1
		signed bool
	)
	switch frame.ID {
	case frameAFR:
		cb = c.cb.AFR
	case frameRPM:
		cb, scale = c.cb.RPM, 1
	case frameCoolantTemp:
		cb, signed = c.cb.CoolantTemp, true
	case frameTPS:
		cb = c.cb.TPS
	case frameMAP:
		cb = c.cb.MAP
	case frameIncline:
		cb, signed = c.cb.Incline, true
	case frameStroke:
		cb = c.cb.Stroke
	default:
		log.WithField("canID", frame.ID).
			Debug("ignoring unknown canID")
		return
	}

	if cb == nil {
		log.WithField("canID", frame.ID).Debug("no callback registered")
		return
	}

	raw, err := uint16Result(frame)
	if err != nil {
		log.WithField("canID", frame.ID).WithField("err", err).Error("unable to decode frame")
		return
	}
	v := float64(raw)
	if signed {
		v = float64(int16(raw))
	}
	v *= scale

	log.WithField("canID", frame.ID).
		WithField("value", v).
		Debug("calling callback function")
	cb(v)
}

func uint16Result(frame can.Frame) (uint16, error) {
	if frame.Length != 2 {
		return 0, errors.Errorf("incorrect frame size for uint16: %v", frame.Length)
	}
	return binary.LittleEndian.Uint16(frame.Data[0:2]), nil
}

// EncodeSensor builds a sensor frame the way the sensor node sends it.
func EncodeSensor(id uint32, v float64) can.Frame {
	scale, signed := 0.1, false
	switch id {
	case frameRPM:
		scale = 1
	case frameCoolantTemp, frameIncline:
		signed = true
	}
	f := can.Frame{ID: id, Length: 2}
	raw := math.Round(v / scale)
	if signed {
		binary.LittleEndian.PutUint16(f.Data[0:2], uint16(int16(raw)))
	} else {
		binary.LittleEndian.PutUint16(f.Data[0:2], uint16(raw))
	}
	return f
}

// Sensor frame IDs.
const (
	AFRFrame         = frameAFR
	RPMFrame         = frameRPM
	CoolantTempFrame = frameCoolantTemp
	TPSFrame         = frameTPS
	MAPFrame         = frameMAP
	InclineFrame     = frameIncline
	StrokeFrame      = frameStroke
)
