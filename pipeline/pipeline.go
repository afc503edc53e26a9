package pipeline

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/frippe75/google-takeout-road-mapping/filter"
	"github.com/frippe75/google-takeout-road-mapping/geojson"
	"github.com/frippe75/google-takeout-road-mapping/snap"
	"github.com/frippe75/google-takeout-road-mapping/takeout"
)

// Snapper projects an extracted segment onto road geometry.
type Snapper interface {
	Snap(seg *takeout.ExtractedSegment) (snap.Route, error)
}

// Pipeline coordinates loading, filtering, extraction, snapping, and
// output accumulation for one run.
type Pipeline struct {
	filter  *filter.SegmentFilter
	snapper Snapper
	style   geojson.Style
	events  Events
	summary *Summary
	runID   string

	// set by countryDiag during Accepts; valid under the sequential
	// execution model only
	countryHit bool
}

// New creates a pipeline. The segment filter is built here so that
// country-exclusion diagnostics flow into the run's event stream.
// events may be nil.
func New(crit filter.Criteria, aliases filter.CountryAliases, snapper Snapper, style geojson.Style, events Events) *Pipeline {
	if events == nil {
		events = NopEvents{}
	}
	p := &Pipeline{
		snapper: snapper,
		style:   style,
		events:  events,
		summary: NewSummary(),
		runID:   uuid.NewString(),
	}
	p.filter = filter.NewSegmentFilter(crit, aliases, countryDiag{p})
	return p
}

// Summary returns the run's outcome aggregation.
func (p *Pipeline) Summary() *Summary { return p.summary }

// countryDiag forwards country-exclusion decisions from the filter to
// the pipeline's event stream.
type countryDiag struct{ p *Pipeline }

func (d countryDiag) CountryExcluded(address, country string) {
	d.p.countryHit = true
	d.p.events.CountryExcluded(address, country)
	d.p.summary.Add(OutcomeCountryExcluded, address)
}

// Run converts every qualifying segment under root into a road-snapped
// feature and writes the accumulated collection to outputPath. A file
// that cannot be read or parsed, a malformed timestamp, or a missing
// required field aborts the run; no output file is written in that case.
// Snapping failures and country exclusions only drop the one segment.
func (p *Pipeline) Run(root, outputPath string) error {
	files, err := takeout.ListFiles(root)
	if err != nil {
		return err
	}
	p.events.RunStarted(p.runID, len(files))

	fc := geojson.NewFeatureCollection()
	for i, path := range files {
		p.events.FileStarted(path, i+1, len(files))
		doc, err := takeout.LoadFile(path)
		if err != nil {
			return err
		}
		if err := p.processFile(path, doc, fc); err != nil {
			return err
		}
	}

	if err := geojson.Write(outputPath, fc); err != nil {
		return err
	}
	p.events.RunCompleted(outputPath, len(fc.Features))
	p.summary.LogAll()
	return nil
}

func (p *Pipeline) processFile(path string, doc *takeout.TimelineFile, fc *geojson.FeatureCollection) error {
	segIdx := 0
	for _, obj := range doc.TimelineObjects {
		if obj.ActivitySegment == nil {
			// Place visits and other timeline entries are not routes.
			continue
		}
		segIdx++
		seg := obj.ActivitySegment
		ref := fmt.Sprintf("%s#%d", path, segIdx)

		p.countryHit = false
		ok, err := p.filter.Accepts(seg)
		if err != nil {
			return fmt.Errorf("segment %d in %s: %w", segIdx, path, err)
		}
		if !ok {
			p.events.SegmentRejected(path, segIdx)
			if !p.countryHit {
				p.summary.Add(OutcomeFiltered, ref)
			}
			continue
		}
		p.events.SegmentAccepted(path, segIdx)

		ex, err := seg.Extract()
		if err != nil {
			return fmt.Errorf("segment %d in %s: %w", segIdx, path, err)
		}

		route, err := p.snapper.Snap(ex)
		if err != nil {
			var fail *snap.Failure
			if errors.As(err, &fail) {
				p.events.SnapFailed(path, segIdx, fail.StatusCode, fail.Body)
				p.summary.Add(OutcomeSnapFailed, ref)
				continue
			}
			return fmt.Errorf("segment %d in %s: %w", segIdx, path, err)
		}

		fc.Features = append(fc.Features, geojson.NewLineString(route, ex.ActivityType, p.style))
		p.events.RouteAdded(path, segIdx)
		p.summary.Add(OutcomeRouteAdded, ref)
	}
	return nil
}
