package takeout

// TimelineFile is the top-level document of one Semantic Location History
// JSON file.
type TimelineFile struct {
	TimelineObjects []TimelineObject `json:"timelineObjects"`
}

// TimelineObject is one entry of the export's timeline. Only entries
// carrying an activity segment are of interest here; place visits and
// other entry kinds leave ActivitySegment nil.
type TimelineObject struct {
	ActivitySegment *ActivitySegment `json:"activitySegment"`
}

// ActivitySegment is one recorded movement event (a drive, a walk, a
// transit ride). Optional sub-records are pointers so that absence can be
// told apart from zero values.
type ActivitySegment struct {
	ActivityType  string        `json:"activityType"`
	Duration      *Duration     `json:"duration"`
	StartLocation *Location     `json:"startLocation"`
	EndLocation   *Location     `json:"endLocation"`
	WaypointPath  *WaypointPath `json:"waypointPath"`
	TransitPath   *TransitPath  `json:"transitPath"`
}

// Duration is the segment's time window, ISO-8601 with optional
// fractional seconds, UTC.
type Duration struct {
	StartTimestamp string `json:"startTimestamp"`
	EndTimestamp   string `json:"endTimestamp"`
}

// Location is a fixed-point coordinate (degrees times 1e7).
type Location struct {
	LatitudeE7  *int64 `json:"latitudeE7"`
	LongitudeE7 *int64 `json:"longitudeE7"`
}

// Waypoint is a raw GPS fix along the segment's path.
type Waypoint struct {
	LatE7 *int64 `json:"latE7"`
	LngE7 *int64 `json:"lngE7"`
}

// WaypointPath carries the segment's ordered raw path.
type WaypointPath struct {
	Waypoints []Waypoint `json:"waypoints"`
}

// TransitStop is a stop along a transit segment.
type TransitStop struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// TransitPath carries the stops of a transit segment.
type TransitPath struct {
	TransitStops []TransitStop `json:"transitStops"`
}

// Point is a decimal-degree coordinate pair.
type Point struct {
	Lat float64
	Lon float64
}

// ExtractedSegment is a segment's coordinate data converted to decimal
// degrees, ready for road snapping.
type ExtractedSegment struct {
	ActivityType string
	StartLat     float64
	StartLon     float64
	EndLat       float64
	EndLon       float64
	Waypoints    []Point
}
