package domain

import (
	"strconv"
	"strings"
)

// NormalizeKey lowercases a field and collapses internal whitespace, giving
// the canonical form used for all city/state/category comparisons.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// RatingScale is the native range of the dataset's rating column.
type RatingScale struct {
	Min float64
	Max float64
}

// DefaultRatingScale matches the Google review rating scale used by the
// dataset. Scoring stays dataset-independent with a fixed scale; use
// ScaleFromRecords to reproduce observed-min/max normalization instead.
var DefaultRatingScale = RatingScale{Min: 0, Max: 5}

// Normalize maps a raw rating linearly onto [0, 1], clamping out-of-range
// values. A degenerate scale (Max == Min) maps everything to the neutral 0.5.
func (s RatingScale) Normalize(v float64) float64 {
	if s.Max == s.Min {
		return 0.5
	}
	score := (v - s.Min) / (s.Max - s.Min)
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// Midpoint returns the middle of the scale, the default imputation value for
// missing ratings (normalizes to 0.5).
func (s RatingScale) Midpoint() float64 {
	return (s.Min + s.Max) / 2
}

// ScaleFromRecords derives a scale from the observed parseable ratings,
// falling back to DefaultRatingScale when the dataset has none.
func ScaleFromRecords(records []Destination) RatingScale {
	var scale RatingScale
	found := false
	for _, rec := range records {
		v, ok := parseRating(rec.Rating)
		if !ok {
			continue
		}
		if !found || v < scale.Min {
			scale.Min = v
		}
		if !found || v > scale.Max {
			scale.Max = v
		}
		found = true
	}
	if !found {
		return DefaultRatingScale
	}
	return scale
}

// parseRating parses a raw rating cell. Empty and non-numeric values report
// false rather than an error; the caller imputes a default.
func parseRating(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeRating converts a raw rating cell into a [0, 1] score. Missing or
// malformed ratings are substituted with imputedDefault (a raw-scale value)
// and reported as imputed so the breakdown can disclose it.
func NormalizeRating(raw string, scale RatingScale, imputedDefault float64) (score float64, imputed bool) {
	v, ok := parseRating(raw)
	if !ok {
		return scale.Normalize(imputedDefault), true
	}
	return scale.Normalize(v), false
}

// CategoryRule maps a category keyword to a weekend-friendliness weight.
type CategoryRule struct {
	Keyword string
	Weight  float64
}

// DefaultCategoryWeight applies when no rule keyword matches. A record is
// never rejected for an unrecognized category.
const DefaultCategoryWeight = 0.6

// DefaultCategoryRules returns the category rule table. Rules are evaluated
// in order and the first match wins; the table is ordered by descending
// weight (with the more specific "hill station" ahead of "hill"), making the
// policy equivalent to highest-weight-match-wins.
func DefaultCategoryRules() []CategoryRule {
	return []CategoryRule{
		{Keyword: "hill station", Weight: 1.0},
		{Keyword: "hill", Weight: 1.0},
		{Keyword: "beach", Weight: 1.0},
		{Keyword: "lake", Weight: 0.95},
		{Keyword: "nature", Weight: 0.95},
		{Keyword: "fort", Weight: 0.9},
		{Keyword: "historical", Weight: 0.9},
		{Keyword: "religious", Weight: 0.9},
		{Keyword: "palace", Weight: 0.9},
		{Keyword: "adventure", Weight: 0.85},
		{Keyword: "temple", Weight: 0.85},
		{Keyword: "wildlife", Weight: 0.8},
		{Keyword: "sanctuary", Weight: 0.8},
	}
}

// NormalizeCategory scores a raw category label by keyword containment
// against the rule table. Matching is case-insensitive on the
// whitespace-collapsed label since raw category strings vary in phrasing
// ("Hill Station Resort" matches "hill station"). Unmatched labels get the
// fallback weight and report matched=false.
func NormalizeCategory(raw string, rules []CategoryRule, fallback float64) (weight float64, matched bool) {
	label := NormalizeKey(raw)
	if label != "" {
		for _, rule := range rules {
			if strings.Contains(label, rule.Keyword) {
				return rule.Weight, true
			}
		}
	}
	return fallback, false
}
