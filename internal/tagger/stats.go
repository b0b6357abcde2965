package tagger

// RunStats tracks outcome counters across a stream of paths.
type RunStats struct {
	Total   int
	Renamed int
	Skipped int
	Failed  int
	Matched int // filter runs only
}

// Record counts a change result.
func (s *RunStats) Record(r ChangeResult) {
	s.Total++
	switch r.Status {
	case StatusRenamed:
		s.Renamed++
	case StatusSkipped:
		s.Skipped++
	case StatusFailed:
		s.Failed++
	}
}

// RecordMatch counts a filter result.
func (s *RunStats) RecordMatch(matched bool) {
	s.Total++
	if matched {
		s.Matched++
	}
}
