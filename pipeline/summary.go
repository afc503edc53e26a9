package pipeline

import (
	"fmt"
	"log"
	"strings"
)

// Outcome constants for the run summary
const (
	OutcomeRouteAdded      = "route_added"
	OutcomeFiltered        = "filtered_out"
	OutcomeCountryExcluded = "country_excluded"
	OutcomeSnapFailed      = "snap_failed"
)

// outcomeInfo holds aggregated information about one outcome kind
type outcomeInfo struct {
	count    int
	examples []string
}

// Summary collects per-segment outcomes during a run and outputs a
// consolidated report at the end.
type Summary struct {
	outcomes map[string]*outcomeInfo
}

// NewSummary creates an empty run summary
func NewSummary() *Summary {
	return &Summary{
		outcomes: make(map[string]*outcomeInfo),
	}
}

// Add records an outcome occurrence with an example ID
func (s *Summary) Add(outcome, exampleID string) {
	if s.outcomes[outcome] == nil {
		s.outcomes[outcome] = &outcomeInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := s.outcomes[outcome]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many segments ended with the given outcome.
func (s *Summary) Count(outcome string) int {
	if info, ok := s.outcomes[outcome]; ok {
		return info.count
	}
	return 0
}

// LogAll outputs all collected outcomes in consolidated format
func (s *Summary) LogAll() {
	if len(s.outcomes) == 0 {
		return
	}

	for outcome, info := range s.outcomes {
		log.Printf("%s", s.formatOutcomeMessage(outcome, info))
	}
}

// formatOutcomeMessage creates a human-readable summary line
func (s *Summary) formatOutcomeMessage(outcome string, info *outcomeInfo) string {
	var description string

	switch outcome {
	case OutcomeRouteAdded:
		description = "segments snapped and written to output"
	case OutcomeFiltered:
		description = "segments rejected by the configured filters"
	case OutcomeCountryExcluded:
		description = "segments excluded by country match"
	case OutcomeSnapFailed:
		description = "segments dropped after routing-service failure"
	default:
		description = "segments with unknown outcome"
	}

	examplesStr := strings.Join(info.examples, ", ")

	return fmt.Sprintf("Run had %d %s. Examples: %s", info.count, description, examplesStr)
}
