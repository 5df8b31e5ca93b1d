package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercases", "Mumbai", "mumbai"},
		{"trims", "  Delhi  ", "delhi"},
		{"collapses internal whitespace", "Tamil   Nadu", "tamil nadu"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeKey(tt.input))
		})
	}
}

func TestRatingScale_Normalize(t *testing.T) {
	scale := RatingScale{Min: 0, Max: 5}

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"midpoint", 2.5, 0.5},
		{"max", 5, 1.0},
		{"min", 0, 0.0},
		{"clamped above", 7.5, 1.0},
		{"clamped below", -1, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, scale.Normalize(tt.value), 1e-12)
		})
	}

	t.Run("degenerate scale", func(t *testing.T) {
		flat := RatingScale{Min: 4, Max: 4}
		assert.Equal(t, 0.5, flat.Normalize(4))
		assert.Equal(t, 0.5, flat.Normalize(9))
	})
}

func TestScaleFromRecords(t *testing.T) {
	t.Run("observed min and max", func(t *testing.T) {
		records := []Destination{
			{Rating: "3.2"},
			{Rating: "4.8"},
			{Rating: "not a number"},
			{Rating: ""},
			{Rating: "4.1"},
		}

		scale := ScaleFromRecords(records)
		assert.Equal(t, RatingScale{Min: 3.2, Max: 4.8}, scale)
	})

	t.Run("no parseable ratings falls back to default", func(t *testing.T) {
		records := []Destination{{Rating: ""}, {Rating: "n/a"}}
		assert.Equal(t, DefaultRatingScale, ScaleFromRecords(records))
	})

	t.Run("single rating yields degenerate scale", func(t *testing.T) {
		scale := ScaleFromRecords([]Destination{{Rating: "4.4"}})
		assert.Equal(t, RatingScale{Min: 4.4, Max: 4.4}, scale)
		assert.Equal(t, 0.5, scale.Normalize(4.4))
	})
}

func TestNormalizeRating(t *testing.T) {
	scale := DefaultRatingScale

	tests := []struct {
		name          string
		raw           string
		expectedScore float64
		imputed       bool
	}{
		{"valid rating", "4.5", 0.9, false},
		{"valid with spaces", " 4.5 ", 0.9, false},
		{"missing rating imputed", "", 0.5, true},
		{"malformed rating imputed", "four stars", 0.5, true},
		{"out of range clamped", "6.3", 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, imputed := NormalizeRating(tt.raw, scale, scale.Midpoint())
			assert.InDelta(t, tt.expectedScore, score, 1e-12)
			assert.Equal(t, tt.imputed, imputed)
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	rules := DefaultCategoryRules()

	tests := []struct {
		name     string
		raw      string
		expected float64
		matched  bool
	}{
		{"exact keyword", "Beach", 1.0, true},
		{"keyword containment", "Hill Station Resort", 1.0, true},
		{"case insensitive", "HILL STATION", 1.0, true},
		{"whitespace normalized", "  hill   station ", 1.0, true},
		{"historical", "Historical Monument", 0.9, true},
		{"wildlife", "Wildlife Sanctuary", 0.8, true},
		{"lake", "Lake", 0.95, true},
		{"unmatched gets default", "Museum", DefaultCategoryWeight, false},
		{"empty gets default", "", DefaultCategoryWeight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weight, matched := NormalizeCategory(tt.raw, rules, DefaultCategoryWeight)
			assert.Equal(t, tt.expected, weight)
			assert.Equal(t, tt.matched, matched)
		})
	}

	t.Run("first match wins", func(t *testing.T) {
		ordered := []CategoryRule{
			{Keyword: "hill station", Weight: 1.0},
			{Keyword: "station", Weight: 0.2},
		}
		weight, matched := NormalizeCategory("Hill Station", ordered, DefaultCategoryWeight)
		assert.True(t, matched)
		assert.Equal(t, 1.0, weight)
	})
}

func TestDefaultCategoryRules_OrderedByWeight(t *testing.T) {
	rules := DefaultCategoryRules()

	// First-match-wins over a weight-descending table is equivalent to
	// highest-weight-match-wins; the ordering is part of the contract.
	for i := 1; i < len(rules); i++ {
		assert.GreaterOrEqual(t, rules[i-1].Weight, rules[i].Weight,
			"rule %q out of order", rules[i].Keyword)
	}
}
