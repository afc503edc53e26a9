// Package snap projects raw GPS point sequences onto road geometry by
// querying an OSRM-compatible routing service.
package snap
