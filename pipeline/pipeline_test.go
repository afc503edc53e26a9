package pipeline

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frippe75/google-takeout-road-mapping/config"
	"github.com/frippe75/google-takeout-road-mapping/filter"
	"github.com/frippe75/google-takeout-road-mapping/geojson"
	"github.com/frippe75/google-takeout-road-mapping/snap"
	"github.com/frippe75/google-takeout-road-mapping/takeout"
)

const driveSegment = `{
  "timelineObjects": [
    {"activitySegment": {
      "activityType": "IN_PASSENGER_VEHICLE",
      "duration": {"startTimestamp": "2021-06-01T10:00:00.123Z", "endTimestamp": "2021-06-01T11:00:00Z"},
      "startLocation": {"latitudeE7": 590000000, "longitudeE7": 110000000},
      "endLocation": {"latitudeE7": 591000000, "longitudeE7": 111000000},
      "waypointPath": {"waypoints": [{"latE7": 590500000, "lngE7": 110500000}]}
    }}
  ]
}`

const walkSegment = `{
  "timelineObjects": [
    {"placeVisit": {"location": {"address": "Home"}}},
    {"activitySegment": {
      "activityType": "WALKING",
      "duration": {"startTimestamp": "2021-06-02T10:00:00Z", "endTimestamp": "2021-06-02T10:30:00Z"},
      "startLocation": {"latitudeE7": 590000000, "longitudeE7": 110000000},
      "endLocation": {"latitudeE7": 590100000, "longitudeE7": 110100000}
    }}
  ]
}`

type stubSnapper struct {
	route snap.Route
	err   error
	calls int
}

func (s *stubSnapper) Snap(seg *takeout.ExtractedSegment) (snap.Route, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.route, nil
}

func writeExport(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return root
}

func defaultStyle() geojson.Style {
	return geojson.Style{StrokeWidth: 2.0, StrokeColor: "#FF0000"}
}

func readCollection(t *testing.T, path string) *geojson.FeatureCollection {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var fc geojson.FeatureCollection
	require.NoError(t, json.Unmarshal(data, &fc))
	return &fc
}

func TestRunFiltersByActivityType(t *testing.T) {
	root := writeExport(t, map[string]string{
		"2021/2021_JUNE_drive.json": driveSegment,
		"2021/2021_JUNE_walk.json":  walkSegment,
	})
	out := filepath.Join(t.TempDir(), "routes.geojson")

	snapper := &stubSnapper{route: snap.Route{{11.0, 59.0}, {11.1, 59.1}}}
	crit := filter.Criteria{ActivityTypes: []string{"IN_PASSENGER_VEHICLE"}}
	p := New(crit, nil, snapper, defaultStyle(), nil)

	require.NoError(t, p.Run(root, out))

	fc := readCollection(t, out)
	require.Len(t, fc.Features, 1, "the walking segment is filtered out")
	assert.Equal(t, "IN_PASSENGER_VEHICLE", fc.Features[0].Properties.ActivityType)
	assert.Equal(t, [][]float64{{11.0, 59.0}, {11.1, 59.1}}, fc.Features[0].Geometry.Coordinates)
	assert.Equal(t, 1, snapper.calls, "only accepted segments reach the routing service")

	assert.Equal(t, 1, p.Summary().Count(OutcomeRouteAdded))
	assert.Equal(t, 1, p.Summary().Count(OutcomeFiltered))
}

func TestRunContinuesAfterSnapFailure(t *testing.T) {
	root := writeExport(t, map[string]string{
		"a.json": driveSegment,
		"b.json": driveSegment,
	})
	out := filepath.Join(t.TempDir(), "routes.geojson")

	snapper := &stubSnapper{err: &snap.Failure{StatusCode: 500, Body: "boom"}}
	p := New(filter.Criteria{}, nil, snapper, defaultStyle(), nil)

	require.NoError(t, p.Run(root, out), "snap failures are segment-local")
	assert.Equal(t, 2, snapper.calls)

	fc := readCollection(t, out)
	assert.Empty(t, fc.Features)
	assert.Equal(t, 2, p.Summary().Count(OutcomeSnapFailed))
}

func TestRunCountryExclusion(t *testing.T) {
	transitSegment := `{
  "timelineObjects": [
    {"activitySegment": {
      "activityType": "IN_BUS",
      "duration": {"startTimestamp": "2021-06-01T10:00:00Z", "endTimestamp": "2021-06-01T11:00:00Z"},
      "startLocation": {"latitudeE7": 590000000, "longitudeE7": 110000000},
      "endLocation": {"latitudeE7": 591000000, "longitudeE7": 111000000},
      "transitPath": {"transitStops": [{"name": "Centralen", "address": "Stockholm, Sverige"}]}
    }}
  ]
}`
	root := writeExport(t, map[string]string{"bus.json": transitSegment})
	out := filepath.Join(t.TempDir(), "routes.geojson")

	snapper := &stubSnapper{route: snap.Route{{11, 59}}}
	p := New(filter.Criteria{ExcludeCountries: []string{"Sweden"}}, nil, snapper, defaultStyle(), nil)

	require.NoError(t, p.Run(root, out))
	assert.Zero(t, snapper.calls)
	assert.Equal(t, 1, p.Summary().Count(OutcomeCountryExcluded))
	assert.Zero(t, p.Summary().Count(OutcomeFiltered), "country exclusion is reported as its own outcome")
}

func TestRunFatalOnUnparseableFile(t *testing.T) {
	root := writeExport(t, map[string]string{"broken.json": "{not json"})
	out := filepath.Join(t.TempDir(), "routes.geojson")

	p := New(filter.Criteria{}, nil, &stubSnapper{}, defaultStyle(), nil)
	require.Error(t, p.Run(root, out))

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err), "no output is written on a fatal error")
}

func TestRunFatalOnMalformedTimestamp(t *testing.T) {
	badSegment := `{
  "timelineObjects": [
    {"activitySegment": {
      "activityType": "WALKING",
      "duration": {"startTimestamp": "yesterday", "endTimestamp": "2021-06-01T11:00:00Z"},
      "startLocation": {"latitudeE7": 590000000, "longitudeE7": 110000000},
      "endLocation": {"latitudeE7": 591000000, "longitudeE7": 111000000}
    }}
  ]
}`
	root := writeExport(t, map[string]string{"bad.json": badSegment})
	out := filepath.Join(t.TempDir(), "routes.geojson")

	p := New(filter.Criteria{}, nil, &stubSnapper{}, defaultStyle(), nil)
	err := p.Run(root, out)
	require.Error(t, err)

	var malformed *takeout.MalformedTimestampError
	assert.ErrorAs(t, err, &malformed)
}

func TestRunEndToEnd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"geometry":{"coordinates":[[11.0,59.0],[11.05,59.05],[11.1,59.1]]}}]}`))
	}))
	defer srv.Close()

	root := writeExport(t, map[string]string{
		"2021/drive.json": driveSegment,
		"2021/walk.json":  walkSegment,
	})
	out := filepath.Join(t.TempDir(), "routes.geojson")

	snapper := snap.NewClient(config.RoutingConfig{BaseURL: srv.URL, TimeoutMS: 5000})
	crit := filter.Criteria{ActivityTypes: []string{"IN_PASSENGER_VEHICLE"}}

	p := New(crit, nil, snapper, geojson.Style{StrokeWidth: 3, StrokeColor: "#00FF00"}, nil)
	require.NoError(t, p.Run(root, out))

	fc := readCollection(t, out)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, "LineString", fc.Features[0].Geometry.Type)
	assert.Len(t, fc.Features[0].Geometry.Coordinates, 3)
	assert.Equal(t, 3.0, fc.Features[0].Properties.StrokeWidth)
	assert.Equal(t, "#00FF00", fc.Features[0].Properties.StrokeColor)
}

func TestRunIsDeterministic(t *testing.T) {
	root := writeExport(t, map[string]string{
		"a.json": driveSegment,
		"b.json": driveSegment,
	})
	out1 := filepath.Join(t.TempDir(), "one.geojson")
	out2 := filepath.Join(t.TempDir(), "two.geojson")

	route := snap.Route{{11.0, 59.0}, {11.1, 59.1}}
	p1 := New(filter.Criteria{}, nil, &stubSnapper{route: route}, defaultStyle(), nil)
	p2 := New(filter.Criteria{}, nil, &stubSnapper{route: route}, defaultStyle(), nil)

	require.NoError(t, p1.Run(root, out1))
	require.NoError(t, p2.Run(root, out2))

	d1, err := os.ReadFile(out1)
	require.NoError(t, err)
	d2, err := os.ReadFile(out2)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(d1, d2), "identical input and responses yield byte-identical output")
}
