package knn

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// FeatureCount is the number of engine readings in a feature vector.
const FeatureCount = 5

// Feature indices.
const (
	AFR = iota
	RPM
	Temp
	TPS
	MAP
)

var featureNames = [FeatureCount]string{"afr", "rpm", "temp", "tps", "map"}

// Features is one engine reading: AFR, RPM, temperature, TPS and MAP.
type Features [FeatureCount]float64

// Sample is a labeled row of a training table.
type Sample struct {
	Features Features
	Label    int
}

// Normalization holds the per-feature standardization constants of a table.
type Normalization struct {
	Means Features
	Stds  Features
}

func (n Normalization) Normalize(f Features) Features {
	var out Features
	for i := range f {
		out[i] = (f[i] - n.Means[i]) / n.Stds[i]
	}
	return out
}

func (n Normalization) Denormalize(f Features) Features {
	var out Features
	for i := range f {
		out[i] = f[i]*n.Stds[i] + n.Means[i]
	}
	return out
}

// Color is an RGB565 display color hint.
type Color uint16

const (
	ColorWhite  Color = 0xFFFF
	ColorGreen  Color = 0x07E0
	ColorYellow Color = 0xFFE0
	ColorRed    Color = 0xF800
	ColorCyan   Color = 0x07FF
)

type Class struct {
	Text  string
	Color Color
}

// Rules are the deterministic checks evaluated before the neighbor vote.
// Thresholds are in physical units.
type Rules struct {
	ThrottleTolerance float64
	ColdEngineTemp    float64
	WarmEngineTemp    float64
	CriticalAFRMin    float64
	CriticalAFRMax    float64

	StartupLabel     int
	MaintenanceLabel int
	CriticalLabel    int
}

// Bundle is a training table together with the normalization constants,
// class labels and rule thresholds it was built with. A bundle is only ever
// used as a whole.
type Bundle struct {
	Name     string
	Version  int
	Rows     []Sample
	Norm     Normalization
	Classes  []Class
	Rules    *Rules
	Checksum uint32
}

// ThreeClass is the neighbor-vote-only table with three conditions.
var ThreeClass = Bundle{
	Name:    "three-class",
	Version: 1,
	Rows:    threeClassRows,
	Norm: Normalization{
		Means: Features{13.596, 2959.426667, 92.604, 39.604, 123.086},
		Stds:  Features{1.568986, 990.133455, 16.103709, 32.869412, 35.683868},
	},
	Classes: []Class{
		{"Normal", ColorGreen},
		{"Maintenance", ColorYellow},
		{"Critical", ColorRed},
	},
	Checksum: 0x0423ed72,
}

// FourClass adds a cold-start class and the rule overlay.
var FourClass = Bundle{
	Name:    "four-class",
	Version: 2,
	Rows:    fourClassRows,
	Norm: Normalization{
		Means: Features{13.5315, 2542.2, 80.711, 29.92, 106.624},
		Stds:  Features{1.376393, 1124.084654, 25.443938, 33.053269, 42.267071},
	},
	Classes: []Class{
		{"Normal", ColorGreen},
		{"Normal Startup", ColorCyan},
		{"Maintenance Required", ColorYellow},
		{"Critical Condition", ColorRed},
	},
	Rules: &Rules{
		ThrottleTolerance: 0.5,
		ColdEngineTemp:    65,
		WarmEngineTemp:    75,
		CriticalAFRMin:    11.0,
		CriticalAFRMax:    12.0,
		StartupLabel:      1,
		MaintenanceLabel:  2,
		CriticalLabel:     3,
	},
	Checksum: 0xe2cebdc3,
}

// DefaultBundle is used when no bundle is configured.
var DefaultBundle = FourClass

var bundles = map[string]Bundle{
	ThreeClass.Name: ThreeClass,
	FourClass.Name:  FourClass,
}

// Lookup returns the bundle registered under name.
func Lookup(name string) (Bundle, error) {
	if name == "" {
		return DefaultBundle, nil
	}
	b, ok := bundles[name]
	if !ok {
		return Bundle{}, errors.Errorf("unknown training bundle %q", name)
	}
	return b, nil
}

// tolerance for recomputed constants, relative to the stored value; the
// stored constants are rounded to six decimals.
const normTolerance = 1e-5

// Verify checks that the table, constants and labels of the bundle belong
// together.
func (b Bundle) Verify() error {
	if len(b.Rows) < K {
		return errors.Errorf("%s: %d training rows, need at least %d", b.Name, len(b.Rows), K)
	}
	if len(b.Classes) == 0 {
		return errors.Errorf("%s: no classes", b.Name)
	}
	if sum := TableChecksum(b.Rows); sum != b.Checksum {
		return errors.Errorf("%s v%d: table checksum %08x does not match %08x", b.Name, b.Version, sum, b.Checksum)
	}
	for i, row := range b.Rows {
		if row.Label < 0 || row.Label >= len(b.Classes) {
			return errors.Errorf("%s: row %d has label %d outside %d classes", b.Name, i, row.Label, len(b.Classes))
		}
	}
	col := make([]float64, len(b.Rows))
	for f := 0; f < FeatureCount; f++ {
		if b.Norm.Stds[f] == 0 {
			return errors.Errorf("%s: zero stddev for %s", b.Name, featureNames[f])
		}
		for i, row := range b.Rows {
			col[i] = row.Features[f]
		}
		mean, std := stat.PopMeanStdDev(col, nil)
		if !closeTo(mean, b.Norm.Means[f]) || !closeTo(std, b.Norm.Stds[f]) {
			return errors.Errorf("%s: %s constants (%g, %g) do not match table (%g, %g)",
				b.Name, featureNames[f], b.Norm.Means[f], b.Norm.Stds[f], mean, std)
		}
	}
	if r := b.Rules; r != nil {
		for _, l := range []int{r.StartupLabel, r.MaintenanceLabel, r.CriticalLabel} {
			if l < 0 || l >= len(b.Classes) {
				return errors.Errorf("%s: rule label %d outside %d classes", b.Name, l, len(b.Classes))
			}
		}
	}
	return nil
}

func closeTo(got, want float64) bool {
	return math.Abs(got-want) <= normTolerance*math.Max(1, math.Abs(want))
}

// TableChecksum is the CRC-32 (IEEE) of the rows encoded as five
// little-endian float64 features followed by a little-endian int64 label.
func TableChecksum(rows []Sample) uint32 {
	buf := bytes.NewBuffer(make([]byte, 0, len(rows)*48))
	for _, row := range rows {
		_ = binary.Write(buf, binary.LittleEndian, row.Features)
		_ = binary.Write(buf, binary.LittleEndian, int64(row.Label))
	}
	return crc32.ChecksumIEEE(buf.Bytes())
}
