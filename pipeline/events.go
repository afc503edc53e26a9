package pipeline

import "log"

// Events receives one call per notable step of a run. The pipeline is
// strictly sequential, so implementations need not be goroutine-safe.
type Events interface {
	RunStarted(runID string, fileCount int)
	FileStarted(path string, index, total int)
	SegmentAccepted(path string, segment int)
	SegmentRejected(path string, segment int)
	CountryExcluded(address, country string)
	SnapFailed(path string, segment, status int, body string)
	RouteAdded(path string, segment int)
	RunCompleted(outputPath string, featureCount int)
}

// LogEvents writes events to the standard logger.
type LogEvents struct{}

func (LogEvents) RunStarted(runID string, fileCount int) {
	log.Printf("run %s: processing %d files", runID, fileCount)
}

func (LogEvents) FileStarted(path string, index, total int) {
	log.Printf("processing file %d/%d: %s", index, total, path)
}

func (LogEvents) SegmentAccepted(path string, segment int) {
	log.Printf("  processing route %d in file %s", segment, path)
}

func (LogEvents) SegmentRejected(string, int) {}

func (LogEvents) CountryExcluded(address, country string) {
	log.Printf("  excluding segment with address: %s (matched %s)", address, country)
}

func (LogEvents) SnapFailed(path string, segment, status int, body string) {
	log.Printf("  failed to snap route %d in file %s: HTTP %d, %s", segment, path, status, body)
}

func (LogEvents) RouteAdded(path string, segment int) {
	log.Printf("  successfully processed route %d in file %s", segment, path)
}

func (LogEvents) RunCompleted(outputPath string, featureCount int) {
	log.Printf("saved %d road-snapped routes to %s", featureCount, outputPath)
}

// NopEvents discards all events.
type NopEvents struct{}

func (NopEvents) RunStarted(string, int)            {}
func (NopEvents) FileStarted(string, int, int)      {}
func (NopEvents) SegmentAccepted(string, int)       {}
func (NopEvents) SegmentRejected(string, int)       {}
func (NopEvents) CountryExcluded(string, string)    {}
func (NopEvents) SnapFailed(string, int, int, string) {}
func (NopEvents) RouteAdded(string, int)            {}
func (NopEvents) RunCompleted(string, int)          {}
