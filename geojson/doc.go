// Package geojson holds the output data model: LineString features with
// stroke styling, collected into a FeatureCollection and written once at
// the end of a run.
package geojson
