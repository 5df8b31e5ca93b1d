// Package domain implements the weekend-suitability scoring model for
// travel destinations.
//
// # Data Source
//
// Destinations come from a static tabular dataset of Indian places to visit
// (name, city, state, category, Google review rating). The dataset carries no
// distances or coordinates, so geographic proximity is approximated at the
// state level using a hand-authored adjacency table.
//
// # Scoring Model
//
// Each destination is scored against a source city by combining three
// sub-scores, all normalized to [0, 1]:
//
//	rating     (50%): Google review rating scaled linearly from the native
//	                  0-5 scale. Missing or malformed ratings are imputed
//	                  with a neutral default and flagged in the breakdown.
//	proximity  (30%): state-level tier — same state 1.0, neighboring state
//	                  0.7, distant state 0.4. Unknown states fall to the
//	                  distant tier rather than failing.
//	category   (20%): weekend-friendliness of the destination type, looked
//	                  up by keyword containment against an ordered rule
//	                  table (hill station and beach 1.0 down to wildlife
//	                  0.8); unmatched categories get a 0.6 default.
//
// The composite weights sum to exactly 1.0, so the composite score is also
// in [0, 1]. Both the composite weights and the tier weights are
// configurable through [ScoringConfig] but default to the values above,
// which published report figures depend on.
//
// # Ranking
//
// [Rank] resolves the source state from the dataset (the only hard failure
// is an unknown source city), excludes destinations in the source city
// itself, scores the rest, sorts by composite score descending, and
// truncates to the requested top-N. Ties within a 1e-9 epsilon break by
// higher rating score, then by destination name ascending, so output is
// byte-identical across runs for identical inputs.
//
// # Warnings
//
// Recoverable data problems (imputed rating, unrecognized category, blank
// state) never reject a record; they are attached to its [ScoreBreakdown]
// as [Warning] values so reports can disclose them.
package domain
