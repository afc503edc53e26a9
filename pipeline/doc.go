// Package pipeline orchestrates a full conversion run: it walks the
// export tree, filters and extracts each activity segment, snaps
// qualifying segments to road geometry, and writes the accumulated
// features as one GeoJSON document.
package pipeline
