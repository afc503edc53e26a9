// Package takeout reads Google Takeout Semantic Location History exports:
// it enumerates the JSON files of an export tree, parses timeline objects
// into typed records, and converts their fixed-point E7 coordinates into
// decimal degrees.
package takeout
