package snap

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/frippe75/google-takeout-road-mapping/config"
	"github.com/frippe75/google-takeout-road-mapping/takeout"
)

// Client is an HTTP client for an OSRM-compatible routing service.
type Client struct {
	rc      *resty.Client
	baseURL string
}

// NewClient creates a routing client from configuration. The timeout
// bounds every request; an unresponsive service surfaces as a Failure
// rather than stalling the run.
func NewClient(cfg config.RoutingConfig) *Client {
	rc := resty.New().
		SetTimeout(time.Duration(cfg.TimeoutMS) * time.Millisecond).
		SetRetryCount(cfg.RetryCount).
		SetRetryWaitTime(2 * time.Second)
	return &Client{
		rc:      rc,
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
	}
}

// Snap issues one routing request for the segment's full coordinate
// sequence (start, waypoints, end) and returns the first candidate
// route's geometry. Non-success statuses, empty route lists, and
// transport errors all come back as *Failure so the caller can drop the
// segment and continue.
func (c *Client) Snap(seg *takeout.ExtractedSegment) (Route, error) {
	coords := make([]string, 0, len(seg.Waypoints)+2)
	coords = append(coords, lonLat(seg.StartLon, seg.StartLat))
	for _, wp := range seg.Waypoints {
		coords = append(coords, lonLat(wp.Lon, wp.Lat))
	}
	coords = append(coords, lonLat(seg.EndLon, seg.EndLat))

	resp, err := c.rc.R().
		SetQueryParams(map[string]string{
			"overview":   "full",
			"geometries": "geojson",
		}).
		SetResult(&osrmResponse{}).
		Get(c.baseURL + "/route/v1/driving/" + strings.Join(coords, ";"))
	if err != nil {
		return nil, &Failure{Body: err.Error()}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &Failure{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	result, ok := resp.Result().(*osrmResponse)
	if !ok || len(result.Routes) == 0 {
		return nil, &Failure{StatusCode: resp.StatusCode(), Body: resp.String()}
	}
	return Route(result.Routes[0].Geometry.Coordinates), nil
}

// lonLat formats a coordinate pair in the service's lon,lat axis order.
func lonLat(lon, lat float64) string {
	return strconv.FormatFloat(lon, 'f', -1, 64) + "," + strconv.FormatFloat(lat, 'f', -1, 64)
}
