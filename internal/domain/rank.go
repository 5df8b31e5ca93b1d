package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrSourceCityNotFound is the only hard failure of a ranking invocation:
// the requested source city has no record in the dataset, so the source
// state cannot be resolved.
var ErrSourceCityNotFound = errors.New("source city not found in dataset")

// DefaultTopN is the result length when the caller does not request one.
const DefaultTopN = 5

// scoreEpsilon guards the sort against floating-point false inequality:
// composites closer than this are considered tied and fall through to the
// deterministic tie-break.
const scoreEpsilon = 1e-9

// RankedDestination pairs a destination with its score breakdown.
type RankedDestination struct {
	Destination Destination    `json:"destination"`
	Breakdown   ScoreBreakdown `json:"breakdown"`
}

// Ranking is the ordered outcome of one ranking pass, best first.
type Ranking struct {
	SourceCity  string
	SourceState string
	// Candidates counts the records scored before top-N truncation.
	Candidates int
	Results    []RankedDestination
}

// Rank scores every destination outside the source city and returns the
// top-N by composite score. topN values <= 0 fall back to DefaultTopN;
// fewer eligible candidates than topN is not an error. Output is fully
// deterministic for identical inputs.
func Rank(records []Destination, sourceCity string, topN int, cfg ScoringConfig) (Ranking, error) {
	if topN <= 0 {
		topN = DefaultTopN
	}

	cityKey := NormalizeKey(sourceCity)
	source, ok := resolveSource(records, cityKey)
	if !ok {
		return Ranking{}, fmt.Errorf("resolve source state for %q: %w", sourceCity, ErrSourceCityNotFound)
	}

	results := make([]RankedDestination, 0, len(records))
	for _, rec := range records {
		if NormalizeKey(rec.City) == cityKey {
			continue
		}
		results = append(results, RankedDestination{
			Destination: rec,
			Breakdown:   ScoreDestination(rec, source.State, cfg),
		})
	}

	slices.SortStableFunc(results, compareRanked)

	candidates := len(results)
	if len(results) > topN {
		results = results[:topN]
	}

	return Ranking{
		SourceCity:  source.City,
		SourceState: source.State,
		Candidates:  candidates,
		Results:     results,
	}, nil
}

// resolveSource finds the first record whose normalized city matches,
// mirroring the dataset-as-gazetteer lookup of the source heuristic.
func resolveSource(records []Destination, cityKey string) (Destination, bool) {
	if cityKey == "" {
		return Destination{}, false
	}
	for _, rec := range records {
		if NormalizeKey(rec.City) == cityKey {
			return rec, true
		}
	}
	return Destination{}, false
}

// compareRanked orders by composite descending, then rating score
// descending, then destination name ascending. Score comparisons use
// scoreEpsilon so equal-within-float-noise scores reach the tie-break.
func compareRanked(a, b RankedDestination) int {
	if d := a.Breakdown.Composite - b.Breakdown.Composite; d > scoreEpsilon {
		return -1
	} else if d < -scoreEpsilon {
		return 1
	}
	if d := a.Breakdown.RatingScore - b.Breakdown.RatingScore; d > scoreEpsilon {
		return -1
	} else if d < -scoreEpsilon {
		return 1
	}
	return strings.Compare(a.Destination.Name, b.Destination.Name)
}
