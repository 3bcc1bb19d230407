package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	log "github.com/sirupsen/logrus"

	"github.com/jd3nn1s/racelogger/logexport"
)

var output = flag.String("o", "", "parquet output file, defaults to the input name with .parquet")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: logexport [-o out.parquet] racing_data.txt")
		os.Exit(2)
	}
	input := flag.Arg(0)
	out := *output
	if out == "" {
		out = strings.TrimSuffix(input, ".txt") + ".parquet"
	}

	in, err := os.Open(input)
	if err != nil {
		log.Fatal("unable to open log: ", err)
	}
	defer in.Close()

	f, err := os.Create(out)
	if err != nil {
		log.Fatal("unable to create output: ", err)
	}
	summary, err := logexport.Export(in, f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(out)
		log.Fatal("export failed: ", err)
	}

	pterm.Success.Printfln("wrote %d rows to %s", summary.Rows, out)
	data := pterm.TableData{{"Lap", "Samples", "Duration (s)", "Max Speed", "Max RPM", "Max Temp"}}
	for _, l := range summary.Laps {
		data = append(data, []string{
			fmt.Sprint(l.Lap),
			fmt.Sprint(l.Samples),
			fmt.Sprintf("%.1f", float64(l.Duration)/1000),
			fmt.Sprintf("%.1f", l.MaxSpeed),
			fmt.Sprintf("%.0f", l.MaxRPM),
			fmt.Sprintf("%.1f", l.MaxTemp),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		log.Warn("unable to render summary: ", err)
	}
}
