package recorder

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// progressStep is the minimum advance, in percent, between PROGRESS lines.
const progressStep = 10

type TransmitSummary struct {
	Lines int
	Bytes int64
}

// TransmitAllData streams the log to w, framed by the transmission
// markers. Comment lines are not sent. The log is left untouched.
func (r *Recorder) TransmitAllData(w io.Writer) (TransmitSummary, error) {
	r.mu.Lock()
	switch {
	case r.state == Recording:
		r.mu.Unlock()
		return TransmitSummary{}, ErrStillRecording
	case r.transmitting:
		r.mu.Unlock()
		return TransmitSummary{}, ErrAlreadyTransmitting
	case !r.store.Exists(r.fileName):
		r.mu.Unlock()
		return TransmitSummary{}, ErrNoDataFile
	}
	name := r.fileName
	size, err := r.store.Size(name)
	if err != nil {
		r.mu.Unlock()
		return TransmitSummary{}, errors.Wrapf(err, "unable to stat %s", name)
	}
	f, err := r.store.Open(name)
	if err != nil {
		r.mu.Unlock()
		return TransmitSummary{}, errors.Wrapf(err, "unable to open %s", name)
	}
	r.transmitting = true
	r.mu.Unlock()

	defer func() {
		f.Close()
		r.mu.Lock()
		r.transmitting = false
		r.mu.Unlock()
	}()

	log.WithField("file", name).WithField("size", size).Info("transmission started")
	summary, err := transmit(w, f, size)
	if err != nil {
		log.WithError(err).WithField("lines", summary.Lines).Warn("transmission failed")
		return summary, err
	}
	log.WithField("lines", summary.Lines).Info("transmission finished")
	return summary, nil
}

func transmit(w io.Writer, rd io.Reader, size int64) (TransmitSummary, error) {
	var summary TransmitSummary
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "TRANSMISSION_START\nFILE_SIZE:%d\n", size); err != nil {
		return summary, errors.Wrap(err, "unable to write preamble")
	}

	lastProgress := 0
	scanner := bufio.NewScanner(rd)
	for scanner.Scan() {
		raw := scanner.Text()
		summary.Bytes += int64(len(raw)) + 1

		line := strings.TrimSpace(raw)
		if line != "" && !IsComment(line) {
			if _, err := bw.WriteString(line + "\n"); err != nil {
				return summary, errors.Wrap(err, "unable to write line")
			}
			summary.Lines++
		}

		if size > 0 {
			progress := int(summary.Bytes * 100 / size)
			if progress > 100 {
				progress = 100
			}
			if progress >= lastProgress+progressStep {
				if _, err := fmt.Fprintf(bw, "PROGRESS:%d%%\n", progress); err != nil {
					return summary, errors.Wrap(err, "unable to write progress")
				}
				lastProgress = progress
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, errors.Wrap(err, "unable to read log")
	}

	if _, err := fmt.Fprintf(bw, "TRANSMISSION_END\nTOTAL_LINES:%d\n", summary.Lines); err != nil {
		return summary, errors.Wrap(err, "unable to write trailer")
	}
	return summary, errors.Wrap(bw.Flush(), "unable to flush")
}
