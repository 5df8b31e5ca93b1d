package domain

import "time"

// ReportEntry is one ranked destination shaped for external reporting:
// the dataset fields verbatim plus the full score breakdown.
type ReportEntry struct {
	Rank      int            `json:"rank"`
	Name      string         `json:"name"`
	City      string         `json:"city"`
	State     string         `json:"state"`
	Category  string         `json:"category"`
	Rating    string         `json:"rating"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// Report is the output record consumed by external writers: a source header,
// the weights the scores were computed with, and the ordered results.
type Report struct {
	SourceCity  string        `json:"source_city"`
	SourceState string        `json:"source_state"`
	Weights     Weights       `json:"weights"`
	GeneratedAt time.Time     `json:"generated_at"`
	Results     []ReportEntry `json:"results"`
}

// AssembleReport shapes a ranking into a Report. Pure transformation, no
// scoring logic; GeneratedAt comes from the package clock so tests can
// freeze it.
func AssembleReport(r Ranking, w Weights) Report {
	entries := make([]ReportEntry, len(r.Results))
	for i, res := range r.Results {
		entries[i] = ReportEntry{
			Rank:      i + 1,
			Name:      res.Destination.Name,
			City:      res.Destination.City,
			State:     res.Destination.State,
			Category:  res.Destination.Category,
			Rating:    res.Destination.Rating,
			Breakdown: res.Breakdown,
		}
	}
	return Report{
		SourceCity:  r.SourceCity,
		SourceState: r.SourceState,
		Weights:     w,
		GeneratedAt: clock.Now(),
		Results:     entries,
	}
}
