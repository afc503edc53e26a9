package filter

import (
	"strings"
	"time"

	"github.com/frippe75/google-takeout-road-mapping/takeout"
)

// Criteria are the optional predicates a segment must satisfy. Zero
// values disable the corresponding check.
type Criteria struct {
	ActivityTypes    []string // allow-list; empty allows all
	From             *time.Time
	To               *time.Time
	Geofence         *Geofence
	ExcludeCountries []string
}

// Diagnostics receives filter decisions that deserve operator attention.
type Diagnostics interface {
	CountryExcluded(address, country string)
}

type nopDiagnostics struct{}

func (nopDiagnostics) CountryExcluded(string, string) {}

// SegmentFilter decides whether one activity segment should be included.
type SegmentFilter struct {
	crit    Criteria
	aliases CountryAliases
	diag    Diagnostics
}

// NewSegmentFilter builds a filter over the given criteria and country
// alias table. diag may be nil.
func NewSegmentFilter(crit Criteria, aliases CountryAliases, diag Diagnostics) *SegmentFilter {
	if aliases == nil {
		aliases = DefaultCountryAliases()
	}
	if diag == nil {
		diag = nopDiagnostics{}
	}
	return &SegmentFilter{crit: crit, aliases: aliases, diag: diag}
}

// Accepts applies the checks in order, short-circuiting on the first
// rejection: activity type, date range, country exclusion, geofence.
// A timestamp or coordinate error is returned as-is and aborts the run.
func (f *SegmentFilter) Accepts(seg *takeout.ActivitySegment) (bool, error) {
	if len(f.crit.ActivityTypes) > 0 && !contains(f.crit.ActivityTypes, seg.Type()) {
		return false, nil
	}

	start, end, err := seg.Window()
	if err != nil {
		return false, err
	}
	// Deliberately not an interval-overlap test: the start is compared
	// against the lower bound and the end against the upper bound.
	if f.crit.From != nil && start.Before(*f.crit.From) {
		return false, nil
	}
	if f.crit.To != nil && end.After(*f.crit.To) {
		return false, nil
	}

	if len(f.crit.ExcludeCountries) > 0 {
		for _, addr := range seg.StopAddresses() {
			if country, excluded := f.excludedCountry(addr); excluded {
				// One matching stop excludes the whole segment.
				f.diag.CountryExcluded(addr, country)
				return false, nil
			}
		}
	}

	if f.crit.Geofence != nil {
		pts, err := seg.Points()
		if err != nil {
			return false, err
		}
		inside := false
		for _, p := range pts {
			if f.crit.Geofence.Contains(p.Lat, p.Lon) {
				inside = true
				break
			}
		}
		if !inside {
			return false, nil
		}
	}

	return true, nil
}

func (f *SegmentFilter) excludedCountry(address string) (string, bool) {
	addr := strings.ToLower(address)
	for _, country := range f.crit.ExcludeCountries {
		for _, alias := range f.aliases.Aliases(country) {
			if strings.Contains(addr, alias) {
				return country, true
			}
		}
	}
	return "", false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
