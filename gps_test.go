package racelogger

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jd3nn1s/racelogger/gps"
)

func TestRunGPS(t *testing.T) {
	gpsChan, _ := mkChannels()

	origGPSConnect := gpsConnect
	defer func() {
		gpsConnect = origGPSConnect
	}()

	stub := createGPSStub()
	var gotPort string
	gpsConnect = func(p string, baud int) (GPS, error) {
		gotPort = p
		return stub, nil
	}

	gpsRetryable := &gpsRetryable{
		portName: "/dev/gps",
		sendChan: gpsChan,
	}

	// close before opening
	assert.NoError(t, gpsRetryable.Close())
	assert.NoError(t, gpsRetryable.Open())
	assert.Equal(t, "/dev/gps", gotPort)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		_ = gpsRetryable.Start(ctx)
		wg.Done()
	}()
	<-stub.startChan

	navData := gps.NavData{
		Fix:        gps.FixGPS,
		Valid:      true,
		Satellites: 7,
		Latitude:   47.1,
		Longitude:  8.2,
		Altitude:   410,
		Speed:      72,
		Track:      180,
		HDOP:       1.2,
	}
	stub.fnChan <- func() {
		stub.callbacks.NavData(navData)
	}

	// read some data
	data := <-gpsChan
	assert.True(t, data.Valid)
	assert.Equal(t, 47.1, data.Latitude)

	cancel()
	wg.Wait()
}

func TestNavDataFn(t *testing.T) {
	gpsChan, _ := mkChannels()
	gpsRetryable := gpsRetryable{
		maxHDOP:  5,
		sendChan: gpsChan,
	}

	navData := gps.NavData{
		Fix:        gps.FixNone,
		Valid:      true,
		Satellites: 1,
		Latitude:   2,
		Longitude:  3,
		Altitude:   4,
		Speed:      5,
		Track:      6,
		HDOP:       1,
	}

	gpsRetryable.navDataFn(navData)
	data := <-gpsChan
	assert.Equal(t, gpsData{}, data, "no fix is reported as an invalid position")

	navData.Fix = gps.FixDGPS
	gpsRetryable.navDataFn(navData)
	data = <-gpsChan
	assert.Equal(t, gpsData{
		Valid:      true,
		Latitude:   2,
		Longitude:  3,
		Altitude:   4,
		Track:      6,
		Speed:      5,
		Satellites: 1,
	}, data)

	navData.HDOP = 5.1
	gpsRetryable.navDataFn(navData)
	data = <-gpsChan
	assert.False(t, data.Valid, "poor HDOP")

	navData.HDOP = 1
	navData.Valid = false
	gpsRetryable.navDataFn(navData)
	data = <-gpsChan
	assert.False(t, data.Valid, "receiver warning flag")

	// a full channel drops the update instead of blocking
	gpsRetryable.navDataFn(navData)
	gpsRetryable.navDataFn(navData)
	<-gpsChan
	assertNoData(t, gpsChan, "second update should have been dropped")
}

func assertNoData(t *testing.T, gpsChan <-chan gpsData, msg string) {
	select {
	case <-gpsChan:
		assert.Fail(t, msg)
	default:
	}
}
