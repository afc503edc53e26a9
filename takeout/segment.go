package takeout

import (
	"fmt"
	"time"

	"github.com/frippe75/google-takeout-road-mapping/utils"
)

const e7 = 1e7

// Type returns the segment's activity type, defaulting to UNKNOWN when
// the export omits it.
func (s *ActivitySegment) Type() string {
	if s.ActivityType == "" {
		return "UNKNOWN"
	}
	return s.ActivityType
}

// Window parses the segment's start and end timestamps.
func (s *ActivitySegment) Window() (start, end time.Time, err error) {
	if s.Duration == nil {
		return start, end, &MissingFieldError{Path: "activitySegment.duration"}
	}
	start, err = utils.ParseTakeoutTimestamp(s.Duration.StartTimestamp)
	if err != nil {
		return start, end, &MalformedTimestampError{Value: s.Duration.StartTimestamp, Err: err}
	}
	end, err = utils.ParseTakeoutTimestamp(s.Duration.EndTimestamp)
	if err != nil {
		return start, end, &MalformedTimestampError{Value: s.Duration.EndTimestamp, Err: err}
	}
	return start, end, nil
}

// StopAddresses returns the segment's transit stop addresses, if any.
func (s *ActivitySegment) StopAddresses() []string {
	if s.TransitPath == nil {
		return nil
	}
	addrs := make([]string, 0, len(s.TransitPath.TransitStops))
	for _, stop := range s.TransitPath.TransitStops {
		if stop.Address != "" {
			addrs = append(addrs, stop.Address)
		}
	}
	return addrs
}

// Extract converts the segment's fixed-point coordinates to decimal
// degrees. It fails with MissingFieldError when a location or one of its
// components is absent.
func (s *ActivitySegment) Extract() (*ExtractedSegment, error) {
	startLat, startLon, err := coords(s.StartLocation, "activitySegment.startLocation")
	if err != nil {
		return nil, err
	}
	endLat, endLon, err := coords(s.EndLocation, "activitySegment.endLocation")
	if err != nil {
		return nil, err
	}
	waypoints, err := s.waypoints()
	if err != nil {
		return nil, err
	}
	return &ExtractedSegment{
		ActivityType: s.Type(),
		StartLat:     startLat,
		StartLon:     startLon,
		EndLat:       endLat,
		EndLon:       endLon,
		Waypoints:    waypoints,
	}, nil
}

// Points returns the segment's start, end, and waypoints in decimal
// degrees, in that order.
func (s *ActivitySegment) Points() ([]Point, error) {
	ex, err := s.Extract()
	if err != nil {
		return nil, err
	}
	pts := make([]Point, 0, len(ex.Waypoints)+2)
	pts = append(pts, Point{Lat: ex.StartLat, Lon: ex.StartLon}, Point{Lat: ex.EndLat, Lon: ex.EndLon})
	pts = append(pts, ex.Waypoints...)
	return pts, nil
}

func (s *ActivitySegment) waypoints() ([]Point, error) {
	if s.WaypointPath == nil {
		return nil, nil
	}
	pts := make([]Point, 0, len(s.WaypointPath.Waypoints))
	for i, wp := range s.WaypointPath.Waypoints {
		if wp.LatE7 == nil {
			return nil, &MissingFieldError{Path: fmt.Sprintf("activitySegment.waypointPath.waypoints[%d].latE7", i)}
		}
		if wp.LngE7 == nil {
			return nil, &MissingFieldError{Path: fmt.Sprintf("activitySegment.waypointPath.waypoints[%d].lngE7", i)}
		}
		pts = append(pts, Point{Lat: float64(*wp.LatE7) / e7, Lon: float64(*wp.LngE7) / e7})
	}
	return pts, nil
}

func coords(loc *Location, path string) (lat, lon float64, err error) {
	if loc == nil {
		return 0, 0, &MissingFieldError{Path: path}
	}
	if loc.LatitudeE7 == nil {
		return 0, 0, &MissingFieldError{Path: path + ".latitudeE7"}
	}
	if loc.LongitudeE7 == nil {
		return 0, 0, &MissingFieldError{Path: path + ".longitudeE7"}
	}
	return float64(*loc.LatitudeE7) / e7, float64(*loc.LongitudeE7) / e7, nil
}
