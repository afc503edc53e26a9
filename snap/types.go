package snap

import "fmt"

// Route is a road-snapped polyline in (lon, lat) coordinate order, as
// returned by the routing service and used verbatim in GeoJSON output.
type Route [][]float64

// Failure is a recoverable per-segment snapping failure: the routing
// service answered with a non-success status, returned no candidate
// routes, or could not be reached at all. StatusCode is zero for
// transport-level failures.
type Failure struct {
	StatusCode int
	Body       string
}

func (e *Failure) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("road snapping failed: %s", e.Body)
	}
	return fmt.Sprintf("road snapping failed: HTTP %d, %s", e.StatusCode, e.Body)
}

type osrmRoute struct {
	Geometry struct {
		Coordinates [][]float64 `json:"coordinates"`
	} `json:"geometry"`
}

type osrmResponse struct {
	Code   string      `json:"code"`
	Routes []osrmRoute `json:"routes"`
}
