// Package config loads the logger configuration from a TOML file. Missing
// keys keep their defaults.
package config

import (
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger/cooling"
	"github.com/jd3nn1s/racelogger/gps"
	"github.com/jd3nn1s/racelogger/knn"
	"github.com/jd3nn1s/racelogger/recorder"
)

const DefaultFileName = "racelogger.toml"

// Duration decodes TOML strings such as "100ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrapf(err, "invalid duration %q", text)
	}
	d.Duration = v
	return nil
}

type Lap struct {
	Mode           string  `toml:"mode"`
	TargetDistance float64 `toml:"target_distance"`
	TargetTime     int     `toml:"target_time"`
	GPSThreshold   float64 `toml:"gps_threshold"`
	TotalLaps      int     `toml:"total_laps"`
}

type Cooling struct {
	FanOnTemp  float64 `toml:"fan_on_temp"`
	CutoffTemp float64 `toml:"cutoff_temp"`
}

type Recorder struct {
	Dir          string   `toml:"dir"`
	File         string   `toml:"file"`
	TickInterval Duration `toml:"tick_interval"`
}

type Classifier struct {
	Bundle   string   `toml:"bundle"`
	Interval Duration `toml:"interval"`
}

type GPS struct {
	Port    string  `toml:"port"`
	Baud    int     `toml:"baud"`
	MaxHDOP float64 `toml:"max_hdop"`
}

type CAN struct {
	Interface string `toml:"interface"`
	// Dash enables the condition, lap and speed frames sent to the dash.
	Dash bool `toml:"dash"`
}

type Forwarder struct {
	// Config is the UDP forwarder's own TOML file. Empty disables it.
	Config string `toml:"config"`
}

type Console struct {
	Port string `toml:"port"`
	Baud int    `toml:"baud"`
}

type Log struct {
	Level string `toml:"level"`
}

type Config struct {
	Lap        Lap        `toml:"lap"`
	Cooling    Cooling    `toml:"cooling"`
	Recorder   Recorder   `toml:"recorder"`
	Classifier Classifier `toml:"classifier"`
	GPS        GPS        `toml:"gps"`
	CAN        CAN        `toml:"can"`
	Forwarder  Forwarder  `toml:"forwarder"`
	Console    Console    `toml:"console"`
	Log        Log        `toml:"log"`
}

func Default() *Config {
	lap := recorder.DefaultLapConfiguration()
	return &Config{
		Lap: Lap{
			Mode:           "distance",
			TargetDistance: lap.TargetDistance,
			TargetTime:     lap.TargetTime,
			GPSThreshold:   lap.GPSThreshold,
			TotalLaps:      lap.TotalLaps,
		},
		Cooling: Cooling{
			FanOnTemp:  cooling.DefaultFanOnTemp,
			CutoffTemp: cooling.DefaultCutoffTemp,
		},
		Recorder: Recorder{
			Dir:          ".",
			File:         recorder.DefaultFileName,
			TickInterval: Duration{50 * time.Millisecond},
		},
		Classifier: Classifier{
			Bundle:   knn.DefaultBundle.Name,
			Interval: Duration{100 * time.Millisecond},
		},
		GPS: GPS{
			Port:    "/dev/ttyAMA0",
			Baud:    gps.DefaultBaudRate,
			MaxHDOP: 20,
		},
		CAN: CAN{
			Interface: "can0",
			Dash:      true,
		},
		Console: Console{
			Baud: 115200,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		log.WithField("file", path).Warn("no configuration file, using defaults")
		return Default(), nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open %s", path)
	}
	defer f.Close()
	cfg, err := Parse(f)
	return cfg, errors.Wrapf(err, "unable to load %s", path)
}

func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "unable to decode configuration")
	}
	for _, key := range md.Undecoded() {
		log.WithField("key", key.String()).Warn("unknown configuration key")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if _, err := recorder.ParseLapMode(c.Lap.Mode); err != nil {
		return errors.Wrap(err, "lap.mode")
	}
	if c.Lap.TotalLaps < 1 {
		return errors.Errorf("lap.total_laps must be at least 1, got %d", c.Lap.TotalLaps)
	}
	if c.Lap.TargetDistance <= 0 || c.Lap.TargetTime <= 0 || c.Lap.GPSThreshold <= 0 {
		return errors.New("lap targets must be positive")
	}
	if c.Cooling.FanOnTemp >= c.Cooling.CutoffTemp {
		return errors.Errorf("cooling.fan_on_temp %.1f must be below cooling.cutoff_temp %.1f",
			c.Cooling.FanOnTemp, c.Cooling.CutoffTemp)
	}
	if _, err := knn.Lookup(c.Classifier.Bundle); err != nil {
		return errors.Wrap(err, "classifier.bundle")
	}
	if c.Recorder.TickInterval.Duration <= 0 || c.Classifier.Interval.Duration <= 0 {
		return errors.New("intervals must be positive")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	return nil
}

// LapConfiguration converts the lap section for the recorder.
func (c *Config) LapConfiguration() recorder.LapConfiguration {
	mode, _ := recorder.ParseLapMode(c.Lap.Mode)
	return recorder.LapConfiguration{
		Mode:           mode,
		TargetDistance: c.Lap.TargetDistance,
		TargetTime:     c.Lap.TargetTime,
		GPSThreshold:   c.Lap.GPSThreshold,
		TotalLaps:      c.Lap.TotalLaps,
	}
}

// LogLevel is the parsed log level, Info if it does not parse.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
