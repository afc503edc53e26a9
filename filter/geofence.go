package filter

import (
	"github.com/frippe75/google-takeout-road-mapping/utils"
)

// Geofence is a circular inclusion region. RadiusKM must be positive.
type Geofence struct {
	CenterLat float64
	CenterLon float64
	RadiusKM  float64
}

// Contains reports whether a point lies within the fence radius.
func (g Geofence) Contains(lat, lon float64) bool {
	return utils.HaversineKM(lat, lon, g.CenterLat, g.CenterLon) <= g.RadiusKM
}
