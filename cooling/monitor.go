// Package cooling tracks the engine cooling system: the electric water pump,
// the radiator fan and the over-temperature cut-off relay.
package cooling

import (
	"fmt"
	"sync"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultFanOnTemp  = 80.0
	DefaultCutoffTemp = 120.0

	// FanHysteresis is how far below the fan temperature the fan turns off.
	FanHysteresis = 2.0
	// CutoffHysteresis is how far below the cut-off temperature the relay releases.
	CutoffHysteresis = 5.0
)

// Relays drives the cooling hardware. All calls happen with the monitor's
// lock held and must not call back into the monitor.
type Relays interface {
	SetPump(on bool)
	SetFan(on bool)
	SetCutoff(on bool)
}

type nopRelays struct{}

func (nopRelays) SetPump(bool)   {}
func (nopRelays) SetFan(bool)    {}
func (nopRelays) SetCutoff(bool) {}

type Monitor struct {
	mu     sync.Mutex
	relays Relays

	fanOnTemp  float64
	cutoffTemp float64

	active bool
	fan    bool
	cutoff bool
	temp   float64
}

// NewMonitor returns a stopped monitor with default thresholds. relays may
// be nil.
func NewMonitor(relays Relays) *Monitor {
	if relays == nil {
		relays = nopRelays{}
	}
	return &Monitor{
		relays:     relays,
		fanOnTemp:  DefaultFanOnTemp,
		cutoffTemp: DefaultCutoffTemp,
	}
}

// Start switches the water pump on and enables temperature control.
func (m *Monitor) Start() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = true
	m.relays.SetPump(true)
	log.Info("cooling system started")
}

// Stop switches every component off.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = false
	m.fan = false
	m.cutoff = false
	m.relays.SetPump(false)
	m.relays.SetFan(false)
	m.relays.SetCutoff(false)
	log.Info("cooling system stopped")
}

// Update feeds a new coolant temperature. It is ignored while stopped.
func (m *Monitor) Update(temp float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return
	}
	m.temp = temp

	switch {
	case !m.fan && temp >= m.fanOnTemp:
		m.fan = true
		m.relays.SetFan(true)
		log.WithField("temp", temp).Info("fan on")
	case m.fan && temp < m.fanOnTemp-FanHysteresis:
		m.fan = false
		m.relays.SetFan(false)
		log.WithField("temp", temp).Info("fan off")
	}

	switch {
	case !m.cutoff && temp >= m.cutoffTemp:
		m.cutoff = true
		m.relays.SetCutoff(true)
		log.WithField("temp", temp).
			WithField("cutoff", m.cutoffTemp).
			Error("over-temperature cut-off activated")
	case m.cutoff && temp < m.cutoffTemp-CutoffHysteresis:
		m.cutoff = false
		m.relays.SetCutoff(false)
		log.WithField("temp", temp).Warn("over-temperature cut-off released")
	}
}

// EmergencyShutdown latches the cut-off relay regardless of temperature.
func (m *Monitor) EmergencyShutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cutoff = true
	m.relays.SetCutoff(true)
	log.Error("emergency shutdown")
}

func (m *Monitor) SetFanOnTemp(temp float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fanOnTemp = temp
	log.WithField("temp", temp).Info("fan temperature set")
}

func (m *Monitor) SetCutoffTemp(temp float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cutoffTemp = temp
	log.WithField("temp", temp).Info("cut-off temperature set")
}

func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

func (m *Monitor) FanOn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fan
}

func (m *Monitor) CutoffActive() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cutoff
}

func (m *Monitor) CurrentTemperature() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.temp
}

func (m *Monitor) FanOnTemp() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fanOnTemp
}

func (m *Monitor) CutoffThreshold() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cutoffTemp
}

// Status is a one-line summary for the console.
func (m *Monitor) Status() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return "COOLING:OFF"
	}
	fan, cutoff := "OFF", "OFF"
	if m.fan {
		fan = "ON"
	}
	if m.cutoff {
		cutoff = "ACTIVE"
	}
	return fmt.Sprintf("EWP:ON FAN:%s CUTOFF:%s TEMP:%.1f", fan, cutoff, m.temp)
}
