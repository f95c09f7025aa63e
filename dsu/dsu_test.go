package dsu_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grafo/dsu"
)

// TestMakeSet_Singletons verifies that each registered element starts in
// its own set and that re-registration does not reset membership.
func TestMakeSet_Singletons(t *testing.T) {
	d := dsu.New()
	d.MakeSet("A")
	d.MakeSet("B")
	assert.Equal(t, 2, d.Count())

	// Each element is its own representative initially.
	rootA, err := d.Find("A")
	require.NoError(t, err)
	assert.Equal(t, "A", rootA)

	// Merge, then re-register A: membership must survive.
	merged, err := d.Union("A", "B")
	require.NoError(t, err)
	assert.True(t, merged)
	d.MakeSet("A") // no-op
	rootA2, _ := d.Find("A")
	rootB2, _ := d.Find("B")
	assert.Equal(t, rootB2, rootA2)
	assert.Equal(t, 1, d.Count())
}

// TestFind_Unknown verifies the sentinel for never-registered elements.
func TestFind_Unknown(t *testing.T) {
	d := dsu.New()
	_, err := d.Find("ghost")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement)

	_, err = d.Union("ghost", "ghost2")
	assert.ErrorIs(t, err, dsu.ErrUnknownElement)
}

// TestUnion_CycleSignal verifies that Union returns false exactly when
// the endpoints are already transitively connected.
func TestUnion_CycleSignal(t *testing.T) {
	d := dsu.New()
	for _, v := range []string{"A", "B", "C"} {
		d.MakeSet(v)
	}

	merged, err := d.Union("A", "B")
	require.NoError(t, err)
	assert.True(t, merged)

	merged, err = d.Union("B", "C")
	require.NoError(t, err)
	assert.True(t, merged)

	// A and C are connected transitively through B: no merge happens.
	merged, err = d.Union("A", "C")
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 1, d.Count())
}

// TestConnectivity_MatchesUnions verifies the defining property: after
// any sequence of unions, Find(u) == Find(v) iff u and v were
// transitively connected by those unions.
func TestConnectivity_MatchesUnions(t *testing.T) {
	d := dsu.New()
	n := 10
	for i := 0; i < n; i++ {
		d.MakeSet(fmt.Sprintf("V%d", i))
	}

	// Connect even-indexed vertices into one chain, odd into another.
	for i := 2; i < n; i += 2 {
		_, err := d.Union(fmt.Sprintf("V%d", i-2), fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}
	for i := 3; i < n; i += 2 {
		_, err := d.Union(fmt.Sprintf("V%d", i-2), fmt.Sprintf("V%d", i))
		require.NoError(t, err)
	}

	// Exactly two components remain.
	assert.Equal(t, 2, d.Count())

	// Same parity → same representative; different parity → different.
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ri, _ := d.Find(fmt.Sprintf("V%d", i))
			rj, _ := d.Find(fmt.Sprintf("V%d", j))
			if i%2 == j%2 {
				assert.Equal(t, ri, rj, "V%d and V%d share parity", i, j)
			} else {
				assert.NotEqual(t, ri, rj, "V%d and V%d differ in parity", i, j)
			}
		}
	}
}

// TestFind_StableAcrossCalls verifies idempotence modulo path
// compression: repeated Finds return the same representative when no
// Union intervenes.
func TestFind_StableAcrossCalls(t *testing.T) {
	d := dsu.New()
	for _, v := range []string{"A", "B", "C", "D"} {
		d.MakeSet(v)
	}
	_, _ = d.Union("A", "B")
	_, _ = d.Union("C", "D")
	_, _ = d.Union("B", "D")

	first, err := d.Find("A")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := d.Find("A")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// TestGroups verifies the residual-partition report used by Kruskal's
// disconnection error.
func TestGroups(t *testing.T) {
	d := dsu.New()
	for _, v := range []string{"A", "B", "C", "X", "Y"} {
		d.MakeSet(v)
	}
	_, _ = d.Union("A", "B")
	_, _ = d.Union("B", "C")
	_, _ = d.Union("X", "Y")

	groups := d.Groups()
	require.Len(t, groups, 2)

	// Collect group sizes irrespective of representative identity.
	var sizes []int
	for _, members := range groups {
		sizes = append(sizes, len(members))
	}
	assert.ElementsMatch(t, []int{3, 2}, sizes)
}
