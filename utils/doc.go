// Package utils provides internal utility functions for the takeout road
// mapper. This package is not intended to be imported by external code.
//
// It contains:
//   - Takeout timestamp and CLI date parsing
//   - Geodesic distance calculation
package utils
