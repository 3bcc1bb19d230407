package racelogger

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger/gps"
)

type gpsRetryable struct {
	c        GPS
	portName string
	baud     int
	maxHDOP  float64
	sendChan chan<- gpsData
}

func (g *gpsRetryable) Open() error {
	c, err := gpsConnect(g.portName, g.baud)
	g.c = c
	return err
}

func (g *gpsRetryable) Close() error {
	if g.c == nil {
		return nil
	}
	return g.c.Close()
}

func (g *gpsRetryable) Start(ctx context.Context) error {
	return g.c.Start(ctx, gps.Callbacks{
		NavData: g.navDataFn,
	})
}

func (g *gpsRetryable) Name() string {
	return "gps"
}

// navDataFn forwards a position. Fixes without satellites or with a poor
// HDOP are still forwarded, marked invalid, so lap detection skips them.
func (g *gpsRetryable) navDataFn(navData gps.NavData) {
	valid := navData.Valid
	if navData.Fix == gps.FixNone {
		log.Debug("no satellite fix")
		valid = false
	}
	if g.maxHDOP > 0 && navData.HDOP > g.maxHDOP {
		log.WithField("HDOP", navData.HDOP).Debug("poor resolution")
		valid = false
	}

	data := gpsData{Valid: valid}
	if valid {
		data = gpsData{
			Valid:      true,
			Latitude:   navData.Latitude,
			Longitude:  navData.Longitude,
			Altitude:   navData.Altitude,
			Track:      navData.Track,
			Speed:      navData.Speed,
			Satellites: navData.Satellites,
		}
	}

	select {
	case g.sendChan <- data:
	default:
	}
}

var gpsConnect = func(p string, baud int) (GPS, error) {
	return gps.Connect(p, baud)
}

func runGPS(ctx context.Context, g *gpsRetryable) {
	err := retry(ctx, g)
	if err != nil {
		log.Errorf("gps done: %v", err)
	}
}
