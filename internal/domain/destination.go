package domain

// Destination is one row of the places dataset. Rating is carried as the raw
// string from the source so normalization can distinguish missing from
// malformed values; all other fields are free text.
type Destination struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	State    string `json:"state"`
	Category string `json:"category"`
	Rating   string `json:"rating"`
}

// WarningKind identifies a recoverable data problem found while scoring.
type WarningKind string

const (
	WarnImputedRating        WarningKind = "imputed_rating"
	WarnUnrecognizedCategory WarningKind = "unrecognized_category"
	WarnUnknownState         WarningKind = "unknown_state"
)

// Warning records a recoverable condition on a single destination. Warnings
// are disclosure metadata only; the record is still scored and ranked.
type Warning struct {
	Kind   WarningKind `json:"kind"`
	Detail string      `json:"detail,omitempty"`
}

// ScoreBreakdown holds the sub-scores and composite for one destination
// against one source city. All scores are in [0, 1]. Created fresh per
// ranking pass and never mutated afterwards.
type ScoreBreakdown struct {
	RatingScore    float64   `json:"rating_score"`
	ProximityScore float64   `json:"proximity_score"`
	CategoryScore  float64   `json:"category_score"`
	Composite      float64   `json:"composite_score"`
	Tier           Tier      `json:"proximity_tier"`
	RatingImputed  bool      `json:"rating_imputed,omitempty"`
	Warnings       []Warning `json:"warnings,omitempty"`
}
