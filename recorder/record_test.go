package recorder

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRoundTrip(t *testing.T) {
	want := Record{
		Lap: 2, AFR: 14.7, RPM: 6123, Temp: 92.5, TPS: 48.2, MAP: 131.9,
		Lat: 47.376887, Lng: 8.541694, Speed: 87.3, Incline: -2.5, Stroke: 41.0,
		TimestampMillis: 1234567,
	}
	line := FormatRecord(want)
	assert.Equal(t, "2,14.7,6123,92.5,48.2,131.9,47.376887,8.541694,87.3,-2.5,41.0,1234567", line)
	assert.Len(t, strings.Split(line, ","), len(Columns))

	got, err := ParseRecord(line)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRecordCoarseLine(t *testing.T) {
	// integer readings and four decimal positions, as older loggers wrote them
	got, err := ParseRecord("1,14.7,5200,92,48,132,47.3769,8.5417,87,-2,41,500")
	require.NoError(t, err)
	assert.Equal(t, 92.0, got.Temp)
	assert.Equal(t, 47.3769, got.Lat)
	assert.Equal(t, int64(500), got.TimestampMillis)
}

func TestParseRecordErrors(t *testing.T) {
	for _, line := range []string{
		"",
		"1,14.7,6123,92.5,48.2,131.9,47.376887,8.541694,87.3,-2.5,41.0",
		"x,14.7,6123,92.5,48.2,131.9,47.376887,8.541694,87.3,-2.5,41.0,1",
		"1,14.7,6123,hot,48.2,131.9,47.376887,8.541694,87.3,-2.5,41.0,1",
		"1,14.7,6123,92.5,48.2,131.9,47.376887,8.541694,87.3,-2.5,41.0,1.5",
	} {
		_, err := ParseRecord(line)
		assert.Error(t, err, line)
	}
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "lapNumber,afr,rpm,temperature,tps,map,latitude,longitude,speed,incline,stroke,timestamp", Header)
}

func TestReadRecords(t *testing.T) {
	text := strings.Join([]string{
		Header,
		"# Recording started at: 0 ms",
		"1,14.7,3000,80.0,20.0,100.0,47.000000,8.000000,40.0,0.0,0.0,100",
		"",
		"# LAP 1 SUMMARY:",
		"2,13.9,4000,85.0,30.0,110.0,47.000100,8.000100,55.0,1.5,3.0,200",
	}, "\n")

	records, err := ReadRecords(strings.NewReader(text))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, 1, records[0].Lap)
	assert.Equal(t, int64(200), records[1].TimestampMillis)

	_, err = ReadRecords(strings.NewReader(Header + "\n1,2,3\n"))
	assert.Error(t, err)
}

func TestIsComment(t *testing.T) {
	assert.True(t, IsComment("# LAP 1 SUMMARY:"))
	assert.False(t, IsComment(Header))
	assert.False(t, IsComment(""))
}

func TestHaversine(t *testing.T) {
	assert.Equal(t, 0.0, Haversine(47.3, 8.5, 47.3, 8.5))
	// one degree of latitude along a meridian
	assert.InDelta(t, 111194.9, Haversine(0, 0, 1, 0), 0.1)
	assert.InDelta(t, Haversine(47.3, 8.5, 47.4, 8.7), Haversine(47.4, 8.7, 47.3, 8.5), 1e-6)
	assert.InDelta(t, 55.5, DegreesToMeters(0.0005), 1e-9)
}

func TestParseLapMode(t *testing.T) {
	m, err := ParseLapMode("gps")
	require.NoError(t, err)
	assert.Equal(t, ModeGPSReturn, m)
	m, err = ParseLapMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeDistance, m)
	m, err = ParseLapMode("time")
	require.NoError(t, err)
	assert.Equal(t, ModeTime, m)
	_, err = ParseLapMode("sectors")
	assert.Error(t, err)
	assert.Equal(t, "Time", ModeTime.String())
}
