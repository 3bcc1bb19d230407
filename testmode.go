package racelogger

import (
	"context"
	"math"
	"time"
)

// synthetic circuit: a circle around the test center
const (
	testCenterLat = 47.2
	testCenterLng = 8.5
	testRadius    = 80.0 // meters
	testLapTime   = 30 * time.Second
)

func (c *Controller) runTestMode(ctx context.Context) {
	go func() {
		start := time.Now()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
			select {
			case c.gpsChan <- testPosition(time.Since(start)):
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		can := canSensorData{
			AFR:         14.7,
			CoolantTemp: 60,
			MAP:         100,
		}
		down := false
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return
			}
			select {
			case c.canSensorChan <- can:
			case <-ctx.Done():
				return
			}

			if down {
				can.RPM -= 250
				can.TPS -= 5
			} else {
				can.RPM += 250
				can.TPS += 5
			}
			if can.RPM >= 6000 {
				down = true
			} else if can.RPM <= 0 {
				down = false
			}
			can.AFR = 14.7 - can.TPS/40
			can.MAP = 100 + can.TPS/2
			if can.CoolantTemp < 90 {
				can.CoolantTemp += 0.5
			}
			can.Incline = 3 * math.Sin(can.RPM/1000)
			can.Stroke = 40 + can.TPS/10
		}
	}()
}

// testPosition is the point on the synthetic circuit after elapsed time.
func testPosition(elapsed time.Duration) gpsData {
	angle := 2 * math.Pi * elapsed.Seconds() / testLapTime.Seconds()
	const metersPerDegLat = 111320.0
	metersPerDegLng := metersPerDegLat * math.Cos(testCenterLat*math.Pi/180)
	circumference := 2 * math.Pi * testRadius
	return gpsData{
		Valid:      true,
		Latitude:   testCenterLat + testRadius*math.Sin(angle)/metersPerDegLat,
		Longitude:  testCenterLng + testRadius*math.Cos(angle)/metersPerDegLng,
		Speed:      circumference / testLapTime.Seconds() * 3.6,
		Track:      math.Mod(360-angle*180/math.Pi, 360),
		Satellites: 8,
	}
}
