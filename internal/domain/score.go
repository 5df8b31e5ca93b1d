package domain

import (
	"errors"
	"fmt"
	"math"
)

// weightEpsilon tolerates floating-point drift when validating that composite
// weights sum to 1.
const weightEpsilon = 1e-9

// Weights are the composite score coefficients. They must sum to 1.0 so the
// composite stays in [0, 1].
type Weights struct {
	Rating    float64 `json:"rating"`
	Proximity float64 `json:"proximity"`
	Category  float64 `json:"category"`
}

// DefaultWeights prioritizes rating (higher-rated places first), then
// proximity (short trips), then category fit. Published report figures
// depend on these exact values.
var DefaultWeights = Weights{Rating: 0.5, Proximity: 0.3, Category: 0.2}

// Validate checks that all weights are non-negative and sum to 1.0 within
// weightEpsilon.
func (w Weights) Validate() error {
	if w.Rating < 0 || w.Proximity < 0 || w.Category < 0 {
		return errors.New("composite weights must be non-negative")
	}
	if sum := w.Rating + w.Proximity + w.Category; math.Abs(sum-1.0) > weightEpsilon {
		return fmt.Errorf("composite weights must sum to 1.0, got %g", sum)
	}
	return nil
}

// ScoringConfig carries every tunable of the scoring pipeline. The zero
// value is not usable; start from DefaultScoringConfig.
type ScoringConfig struct {
	Weights       Weights
	TierWeights   TierWeights
	Adjacency     *Adjacency
	CategoryRules []CategoryRule
	// DefaultCategoryWeight scores categories no rule matches.
	DefaultCategoryWeight float64
	RatingScale           RatingScale
	// ImputedRating is the raw-scale value substituted for missing or
	// malformed ratings.
	ImputedRating float64
}

// DefaultScoringConfig returns the documented default configuration.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Weights:               DefaultWeights,
		TierWeights:           DefaultTierWeights,
		Adjacency:             DefaultAdjacency(),
		CategoryRules:         DefaultCategoryRules(),
		DefaultCategoryWeight: DefaultCategoryWeight,
		RatingScale:           DefaultRatingScale,
		ImputedRating:         DefaultRatingScale.Midpoint(),
	}
}

// Validate checks the configuration invariants the scoring formula depends on.
func (c ScoringConfig) Validate() error {
	if err := c.Weights.Validate(); err != nil {
		return err
	}
	if err := c.TierWeights.Validate(); err != nil {
		return err
	}
	if c.Adjacency == nil {
		return errors.New("adjacency table is required")
	}
	if c.DefaultCategoryWeight < 0 || c.DefaultCategoryWeight > 1 {
		return errors.New("default category weight must be in [0, 1]")
	}
	return nil
}

// ScoreDestination computes the full score breakdown for one destination
// against a source state. It never fails: every recoverable data problem
// falls back to a documented default and is recorded as a warning.
func ScoreDestination(d Destination, sourceState string, cfg ScoringConfig) ScoreBreakdown {
	ratingScore, imputed := NormalizeRating(d.Rating, cfg.RatingScale, cfg.ImputedRating)
	categoryScore, matched := NormalizeCategory(d.Category, cfg.CategoryRules, cfg.DefaultCategoryWeight)
	tier, proximityScore := Classify(sourceState, d.State, cfg.Adjacency, cfg.TierWeights)

	bd := ScoreBreakdown{
		RatingScore:    ratingScore,
		ProximityScore: proximityScore,
		CategoryScore:  categoryScore,
		Tier:           tier,
		RatingImputed:  imputed,
	}
	if imputed {
		bd.Warnings = append(bd.Warnings, Warning{
			Kind:   WarnImputedRating,
			Detail: fmt.Sprintf("rating %q replaced with default %g", d.Rating, cfg.ImputedRating),
		})
	}
	if !matched {
		bd.Warnings = append(bd.Warnings, Warning{
			Kind:   WarnUnrecognizedCategory,
			Detail: fmt.Sprintf("category %q scored with default weight %g", d.Category, cfg.DefaultCategoryWeight),
		})
	}
	if NormalizeKey(d.State) == "" {
		bd.Warnings = append(bd.Warnings, Warning{
			Kind:   WarnUnknownState,
			Detail: "blank state, proximity defaulted to distant",
		})
	}

	bd.Composite = cfg.Weights.Rating*ratingScore +
		cfg.Weights.Proximity*proximityScore +
		cfg.Weights.Category*categoryScore
	return bd
}
