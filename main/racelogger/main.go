package main

import (
	"bufio"
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"
	"go.bug.st/serial"

	"github.com/jd3nn1s/racelogger"
	"github.com/jd3nn1s/racelogger/config"
	"github.com/jd3nn1s/racelogger/forwarder"
)

var configFile = flag.String("config", config.DefaultFileName, "configuration file")
var testMode = flag.Bool("testmode", false, "generate test data")
var printTelemetry = flag.Bool("print-telemetry", false, "print telemetry to stdout")
var consolePort = flag.String("console", "", "serial port for the command console, overrides the configuration")

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatal("unable to load configuration: ", err)
	}
	log.SetLevel(cfg.LogLevel())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctl, err := racelogger.NewController(cfg)
	if err != nil {
		log.Fatal("unable to create controller: ", err)
	}

	if cfg.Forwarder.Config != "" {
		fwder, err := forwarder.NewUDPForwarder(cfg.Forwarder.Config)
		if err != nil {
			log.Fatal("unable to load UDP forwarder: ", err)
		}
		defer fwder.Close()
		go fwder.Start(ctx)
		ctl.AddForwarder(fwder)
	}

	ctl.SetTestMode(*testMode)
	ctl.Start(ctx)

	port := cfg.Console.Port
	if *consolePort != "" {
		port = *consolePort
	}
	in, out := io.Reader(os.Stdin), io.Writer(os.Stdout)
	if port != "" {
		p, err := serial.Open(port, &serial.Mode{BaudRate: cfg.Console.Baud})
		if err != nil {
			log.Fatal("unable to open console port: ", err)
		}
		defer p.Close()
		in, out = p, p
	}
	commands := make(chan string)
	go readCommands(ctx, in, commands)

	var onChange func(racelogger.Telemetry)
	if *printTelemetry {
		onChange = func(t racelogger.Telemetry) {
			pterm.Info.Printfln("%+v", t)
		}
	}

	pterm.Success.Printfln("racelogger ready, lap mode %s, %d laps", cfg.Lap.Mode, cfg.Lap.TotalLaps)
	if err := ctl.Run(ctx, commands, out, onChange); err != nil && err != context.Canceled {
		log.Error("controller stopped: ", err)
	}
	if ctl.Recorder().IsRecording() {
		if err := ctl.StopRecording(); err != nil {
			log.Warn("unable to stop recording: ", err)
		}
	}
}

func readCommands(ctx context.Context, r io.Reader, commands chan<- string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case commands <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.WithField("err", err).Warn("console closed")
	}
}
