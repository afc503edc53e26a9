package geojson

// Geometry represents the geometry of a feature.
type Geometry struct {
	Type        string      `json:"type"`
	Coordinates [][]float64 `json:"coordinates"` // [lon, lat] pairs
}

// Properties carries the activity type and map styling of a route.
type Properties struct {
	ActivityType string  `json:"activityType"`
	StrokeWidth  float64 `json:"stroke-width"`
	StrokeColor  string  `json:"stroke-color"`
}

// Feature represents a single road-snapped route line.
type Feature struct {
	Type       string     `json:"type"`
	Geometry   Geometry   `json:"geometry"`
	Properties Properties `json:"properties"`
}

// FeatureCollection is the document written at the end of a run. The
// feature order matches processing order.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Style is the stroke styling applied to every output feature.
type Style struct {
	StrokeWidth float64
	StrokeColor string
}

// NewFeatureCollection returns an empty collection that serializes with
// a features array rather than null.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: []Feature{},
	}
}

// NewLineString builds a styled LineString feature from routed
// coordinates in (lon, lat) order.
func NewLineString(coordinates [][]float64, activityType string, style Style) Feature {
	return Feature{
		Type: "Feature",
		Geometry: Geometry{
			Type:        "LineString",
			Coordinates: coordinates,
		},
		Properties: Properties{
			ActivityType: activityType,
			StrokeWidth:  style.StrokeWidth,
			StrokeColor:  style.StrokeColor,
		},
	}
}
