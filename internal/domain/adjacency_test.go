package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAdjacency_SymmetricClosure(t *testing.T) {
	// Authored one-directionally; lookup must work both ways.
	adj := NewAdjacency(map[string][]string{
		"Kerala": {"Tamil Nadu", "Karnataka"},
	})

	assert.True(t, adj.Adjacent("Kerala", "Tamil Nadu"))
	assert.True(t, adj.Adjacent("Tamil Nadu", "Kerala"))
	assert.True(t, adj.Adjacent("Karnataka", "Kerala"))
}

func TestAdjacency_NormalizedLookup(t *testing.T) {
	adj := NewAdjacency(map[string][]string{
		"Kerala": {"Tamil Nadu"},
	})

	assert.True(t, adj.Adjacent("KERALA", "tamil nadu"))
	assert.True(t, adj.Adjacent("  kerala  ", "Tamil  Nadu"))
}

func TestAdjacency_UnknownState(t *testing.T) {
	adj := NewAdjacency(map[string][]string{
		"Kerala": {"Tamil Nadu"},
	})

	assert.False(t, adj.Adjacent("Sikkim", "Kerala"))
	assert.False(t, adj.Adjacent("Kerala", "Sikkim"))
	assert.Nil(t, adj.Neighbors("Sikkim"))
}

func TestAdjacency_IgnoresDegenerateEntries(t *testing.T) {
	adj := NewAdjacency(map[string][]string{
		"Kerala": {"", "Kerala", "Tamil Nadu"},
		"":       {"Goa"},
	})

	assert.False(t, adj.Adjacent("Kerala", "Kerala"))
	assert.False(t, adj.Adjacent("", "Goa"))
	assert.Equal(t, []string{"tamil nadu"}, adj.Neighbors("Kerala"))
}

func TestAdjacency_NeighborsSorted(t *testing.T) {
	adj := NewAdjacency(map[string][]string{
		"Maharashtra": {"Gujarat", "Madhya Pradesh", "Karnataka", "Goa", "Telangana"},
	})

	assert.Equal(t,
		[]string{"goa", "gujarat", "karnataka", "madhya pradesh", "telangana"},
		adj.Neighbors("Maharashtra"))
}

func TestDefaultAdjacency(t *testing.T) {
	adj := DefaultAdjacency()

	assert.True(t, adj.Adjacent("Delhi", "Haryana"))
	assert.True(t, adj.Adjacent("Haryana", "Delhi"))
	// Goa-Karnataka is authored under three different keys; still one relation.
	assert.True(t, adj.Adjacent("Goa", "Karnataka"))
	assert.False(t, adj.Adjacent("Delhi", "Kerala"))
}
