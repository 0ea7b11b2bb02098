package abacus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/panacus-go/pkg/gfa"
	"github.com/dd0wney/panacus-go/pkg/resolve"
)

// TestByGroupCSRIsWellFormed additively exercises the by-group CSR result
// (spec §3, §5) with testify assertions: row offsets are non-decreasing,
// the final offset matches len(V), and every row is sorted/deduplicated.
func TestByGroupCSRIsWellFormed(t *testing.T) {
	src := buildTwoPathToy(t)
	gi, err := gfa.Index(strings.NewReader(src), false, nil)
	require.NoError(t, err)

	res, err := resolve.Resolve(gi.PathSegments, resolve.Options{}, nil)
	require.NoError(t, err)

	result, err := Build(strings.NewReader(src), gi, res, Options{Count: CountNode, ByGroup: true}, nil)
	require.NoError(t, err)

	by := result.ByGroup
	require.NotNil(t, by)
	require.Len(t, by.R, len(by.Names)+1)
	assert.Equal(t, by.R[len(by.R)-1], len(by.V), "final row offset must cover all of V")

	for i := 0; i < len(by.Names); i++ {
		row := by.Row(i)
		assert.GreaterOrEqual(t, by.R[i+1], by.R[i], "row offsets must be non-decreasing")
		for j := 1; j < len(row); j++ {
			assert.Less(t, row[j-1], row[j], "row %d must be sorted and deduplicated", i)
		}
	}

	bID, ok := gi.LookupNode([]byte("b"))
	require.True(t, ok)
	assert.Len(t, by.Row(int(bID)), 2, "b is shared by both paths")
}

// TestByTotalCountableMatchesCSRCardinality cross-checks the by-total
// Countable array against an independently built by-group CSR for the
// same graph (spec §3's two views of the same underlying coverage must
// agree on group cardinality per item).
func TestByTotalCountableMatchesCSRCardinality(t *testing.T) {
	src := buildTwoPathToy(t)
	gi, err := gfa.Index(strings.NewReader(src), false, nil)
	require.NoError(t, err)

	res, err := resolve.Resolve(gi.PathSegments, resolve.Options{}, nil)
	require.NoError(t, err)

	totalResult, err := Build(strings.NewReader(src), gi, res, Options{Count: CountNode}, nil)
	require.NoError(t, err)
	groupResult, err := Build(strings.NewReader(src), gi, res, Options{Count: CountNode, ByGroup: true}, nil)
	require.NoError(t, err)

	for i := 0; i < len(totalResult.ByTotal.Countable); i++ {
		want := totalResult.ByTotal.Countable[i]
		got := uint16(len(groupResult.ByGroup.Row(i)))
		assert.Equal(t, want, got, "item %d: by-total countable must equal by-group row cardinality", i)
	}
}
