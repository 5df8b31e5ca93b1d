package domain

import "errors"

// Tier is the state-level proximity class of a destination relative to the
// source city. It is an explicit three-variant enum rather than a raw weight
// so reports and tests can name the tier unambiguously.
type Tier string

const (
	TierSame     Tier = "same"
	TierNeighbor Tier = "neighbor"
	TierDistant  Tier = "distant"
)

// TierWeights maps each proximity tier to its score contribution.
type TierWeights struct {
	Same     float64 `json:"same"`
	Neighbor float64 `json:"neighbor"`
	Distant  float64 `json:"distant"`
}

// DefaultTierWeights reflects weekend feasibility: same state is most
// suitable, a neighboring state is feasible, a distant state is possible but
// less ideal. Published report figures depend on these exact values.
var DefaultTierWeights = TierWeights{Same: 1.0, Neighbor: 0.7, Distant: 0.4}

// Validate checks that all weights are in [0, 1] and strictly monotonic
// (same > neighbor > distant).
func (w TierWeights) Validate() error {
	for _, v := range []float64{w.Same, w.Neighbor, w.Distant} {
		if v < 0 || v > 1 {
			return errors.New("tier weights must be in [0, 1]")
		}
	}
	if !(w.Same > w.Neighbor && w.Neighbor > w.Distant) {
		return errors.New("tier weights must satisfy same > neighbor > distant")
	}
	return nil
}

// For returns the weight of a tier. Unknown tiers score as distant.
func (w TierWeights) For(t Tier) float64 {
	switch t {
	case TierSame:
		return w.Same
	case TierNeighbor:
		return w.Neighbor
	default:
		return w.Distant
	}
}

// Classify returns the proximity tier and weight for a destination state
// relative to the source state. A blank source or destination state is
// conservatively classified as distant; classification never fails.
func Classify(sourceState, destState string, adj *Adjacency, w TierWeights) (Tier, float64) {
	src, dst := NormalizeKey(sourceState), NormalizeKey(destState)
	switch {
	case src == "" || dst == "":
		return TierDistant, w.Distant
	case src == dst:
		return TierSame, w.Same
	case adj != nil && adj.Adjacent(src, dst):
		return TierNeighbor, w.Neighbor
	default:
		return TierDistant, w.Distant
	}
}
