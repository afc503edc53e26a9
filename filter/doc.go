// Package filter decides which activity segments qualify for output,
// applying activity-type, date-range, country-exclusion, and geofence
// criteria in order.
package filter
