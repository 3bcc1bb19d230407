package recorder

import (
	"time"

	log "github.com/sirupsen/logrus"
)

func (r *Recorder) detectLap(fix Fix, now time.Time) {
	switch r.cfg.Mode {
	case ModeTime:
		target := time.Duration(r.cfg.TargetTime) * time.Second
		if now.Sub(r.lapStart) >= target {
			r.completeLap(now)
		}
	case ModeDistance:
		if !fix.Valid {
			return
		}
		if r.haveLastFix {
			r.currentLapDistance += Haversine(r.lastFix.Lat, r.lastFix.Lng, fix.Lat, fix.Lng)
		}
		r.lastFix = fix
		r.haveLastFix = true
		if r.currentLapDistance >= r.cfg.TargetDistance {
			r.completeLap(now)
		}
	case ModeGPSReturn:
		if !fix.Valid {
			return
		}
		if !r.haveStart {
			if r.currentLap != 1 {
				// no start line was seen during lap 1
				return
			}
			r.startFix = fix
			r.haveStart = true
			log.WithField("lat", fix.Lat).WithField("lng", fix.Lng).Info("start position set")
			return
		}
		d := Haversine(r.startFix.Lat, r.startFix.Lng, fix.Lat, fix.Lng)
		if d < DegreesToMeters(r.cfg.GPSThreshold) && now.Sub(r.lapStart) >= minReturnLapTime {
			r.completeLap(now)
		}
	}
}

func (r *Recorder) completeLap(now time.Time) {
	lapTime := now.Sub(r.lapStart)
	r.currentStats.BestLapTime = lapTime
	if r.overallStats.BestLapTime == 0 || lapTime < r.overallStats.BestLapTime {
		r.overallStats.BestLapTime = lapTime
	}

	r.writeLapSummary(now, lapTime)

	log.WithField("lap", r.currentLap).
		WithField("time", lapTime).
		WithField("distance", r.currentLapDistance).
		Info("lap completed")

	r.currentLap++
	r.lapStart = now
	r.currentLapDistance = 0
	r.currentStats.Reset()
}
