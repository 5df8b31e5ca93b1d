package domain

import "sort"

// DefaultStateNeighbors is the hand-authored neighbor table for the Indian
// states covered by the dataset. It may be authored one-directionally;
// NewAdjacency closes it symmetrically.
var DefaultStateNeighbors = map[string][]string{
	"Delhi":         {"Haryana", "Uttar Pradesh", "Rajasthan", "Punjab"},
	"Maharashtra":   {"Gujarat", "Madhya Pradesh", "Karnataka", "Goa", "Telangana"},
	"Karnataka":     {"Maharashtra", "Goa", "Tamil Nadu", "Andhra Pradesh", "Telangana", "Kerala"},
	"Tamil Nadu":    {"Karnataka", "Kerala", "Andhra Pradesh"},
	"West Bengal":   {"Bihar", "Jharkhand", "Odisha", "Assam"},
	"Rajasthan":     {"Gujarat", "Madhya Pradesh", "Uttar Pradesh", "Haryana", "Punjab", "Delhi"},
	"Uttar Pradesh": {"Delhi", "Haryana", "Rajasthan", "Madhya Pradesh", "Bihar", "Uttarakhand"},
	"Gujarat":       {"Rajasthan", "Madhya Pradesh", "Maharashtra"},
	"Kerala":        {"Tamil Nadu", "Karnataka"},
	"Goa":           {"Maharashtra", "Karnataka"},
}

// Adjacency is an immutable state-neighborhood lookup. It is built once at
// startup and is safe for concurrent reads; there is no mutation path after
// construction.
type Adjacency struct {
	neighbors map[string]map[string]struct{}
}

// NewAdjacency builds an Adjacency from an authoring table. Keys and values
// are case/whitespace-normalized and the relation is closed symmetrically,
// so a pair listed in either direction is adjacent in both.
func NewAdjacency(table map[string][]string) *Adjacency {
	a := &Adjacency{neighbors: make(map[string]map[string]struct{}, len(table))}
	for state, nbrs := range table {
		for _, nbr := range nbrs {
			a.link(NormalizeKey(state), NormalizeKey(nbr))
		}
	}
	return a
}

func (a *Adjacency) link(s1, s2 string) {
	if s1 == "" || s2 == "" || s1 == s2 {
		return
	}
	for _, pair := range [][2]string{{s1, s2}, {s2, s1}} {
		set, ok := a.neighbors[pair[0]]
		if !ok {
			set = make(map[string]struct{})
			a.neighbors[pair[0]] = set
		}
		set[pair[1]] = struct{}{}
	}
}

// Adjacent reports whether the two states are neighbors. States absent from
// the table have no known neighbors, so lookups on them simply return false.
func (a *Adjacency) Adjacent(s1, s2 string) bool {
	_, ok := a.neighbors[NormalizeKey(s1)][NormalizeKey(s2)]
	return ok
}

// Neighbors returns the sorted normalized neighbor names of a state, or nil
// for states not in the table.
func (a *Adjacency) Neighbors(state string) []string {
	set := a.neighbors[NormalizeKey(state)]
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for nbr := range set {
		out = append(out, nbr)
	}
	sort.Strings(out)
	return out
}

var defaultAdjacency = NewAdjacency(DefaultStateNeighbors)

// DefaultAdjacency returns the process-wide adjacency built from
// DefaultStateNeighbors.
func DefaultAdjacency() *Adjacency {
	return defaultAdjacency
}
