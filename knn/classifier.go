// Package knn classifies engine condition from a single sensor reading using
// a small compiled-in training table, a K-nearest-neighbor vote and a set of
// deterministic rules that take precedence over the vote.
package knn

import (
	"math"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// K is the number of neighbors taking part in the vote.
const K = 3

// UnknownText is reported for labels outside the bundle's classes.
const UnknownText = "Unknown"

// Result is the outcome of one classification.
type Result struct {
	Label int
	Text  string
	Color Color
	// Rule is true when a deterministic rule decided the label.
	Rule bool
}

// Neighbor is a training row ranked by its distance to the input.
type Neighbor struct {
	Distance float64
	Label    int
}

// Classifier is immutable after New and may be shared between goroutines.
type Classifier struct {
	bundle     Bundle
	normalized []Features
}

// New verifies the bundle and prepares its table for distance queries.
func New(b Bundle) (*Classifier, error) {
	if err := b.Verify(); err != nil {
		return nil, errors.Wrap(err, "unable to load training bundle")
	}
	c := &Classifier{
		bundle:     b,
		normalized: make([]Features, len(b.Rows)),
	}
	for i, row := range b.Rows {
		c.normalized[i] = b.Norm.Normalize(row.Features)
	}
	log.WithField("bundle", b.Name).
		WithField("version", b.Version).
		WithField("rows", len(b.Rows)).
		WithField("classes", len(b.Classes)).
		Info("classifier initialized")
	return c, nil
}

func (c *Classifier) Bundle() Bundle {
	return c.bundle
}

// Distance is the Euclidean distance between two feature vectors.
func Distance(a, b Features) float64 {
	return floats.Distance(a[:], b[:], 2)
}

// Classify returns the engine condition for a raw reading.
func (c *Classifier) Classify(f Features) Result {
	if label, ok := c.applyRules(f); ok {
		return c.result(label, true)
	}
	return c.result(c.vote(f), false)
}

func (c *Classifier) applyRules(f Features) (int, bool) {
	r := c.bundle.Rules
	if r == nil {
		return 0, false
	}
	closedThrottle := math.Abs(f[TPS]) < r.ThrottleTolerance
	switch {
	case closedThrottle && f[Temp] < r.ColdEngineTemp:
		return r.StartupLabel, true
	case closedThrottle && f[Temp] >= r.WarmEngineTemp:
		// throttle stuck closed on a warm engine
		return r.MaintenanceLabel, true
	case f[AFR] >= r.CriticalAFRMin && f[AFR] <= r.CriticalAFRMax:
		return r.CriticalLabel, true
	}
	return 0, false
}

func (c *Classifier) vote(f Features) int {
	in := c.bundle.Norm.Normalize(f)
	neighbors := make([]Neighbor, len(c.normalized))
	for i, row := range c.normalized {
		neighbors[i] = Neighbor{
			Distance: Distance(in, row),
			Label:    c.bundle.Rows[i].Label,
		}
	}
	selectNearest(neighbors, K)
	return Vote(neighbors[:K], len(c.bundle.Classes))
}

// selectNearest moves the k nearest neighbors to the front of n, in order.
// The order of the remaining elements is unspecified.
func selectNearest(n []Neighbor, k int) {
	if k > len(n) {
		k = len(n)
	}
	for i := 0; i < k; i++ {
		nearest := i
		for j := i + 1; j < len(n); j++ {
			if n[j].Distance < n[nearest].Distance {
				nearest = j
			}
		}
		n[i], n[nearest] = n[nearest], n[i]
	}
}

// Vote tallies the labels of neighbors, which must be ordered nearest first.
// When every neighbor disagrees the nearest one wins. Ties between classes
// with more than one vote go to the lowest label.
func Vote(neighbors []Neighbor, classes int) int {
	if len(neighbors) == 0 {
		return 0
	}
	votes := make([]int, classes)
	for _, n := range neighbors {
		if n.Label >= 0 && n.Label < classes {
			votes[n.Label]++
		}
	}
	best, bestVotes := 0, 0
	for label, v := range votes {
		if v > bestVotes {
			best, bestVotes = label, v
		}
	}
	if bestVotes <= 1 {
		return neighbors[0].Label
	}
	return best
}

func (c *Classifier) result(label int, rule bool) Result {
	return Result{
		Label: label,
		Text:  c.Text(label),
		Color: c.Color(label),
		Rule:  rule,
	}
}

func (c *Classifier) Text(label int) string {
	if label < 0 || label >= len(c.bundle.Classes) {
		return UnknownText
	}
	return c.bundle.Classes[label].Text
}

func (c *Classifier) Color(label int) Color {
	if label < 0 || label >= len(c.bundle.Classes) {
		return ColorWhite
	}
	return c.bundle.Classes[label].Color
}

// IsCritical reports whether label is the most severe class of the bundle.
func (c *Classifier) IsCritical(label int) bool {
	if r := c.bundle.Rules; r != nil {
		return label == r.CriticalLabel
	}
	return label == len(c.bundle.Classes)-1
}
