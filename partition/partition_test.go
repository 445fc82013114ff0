package partition_test

import (
	"testing"

	"github.com/katalvlaran/elimorder/partition"
	"github.com/stretchr/testify/require"
)

func TestClassifyBuckets(t *testing.T) {
	require.Equal(t, partition.KindTrivial, partition.Classify(0, 0))
	require.Equal(t, partition.KindTrivial, partition.Classify(1, 0))
	require.Equal(t, partition.KindZeroFill, partition.Classify(2, 0))
	require.Equal(t, partition.KindGeneral, partition.Classify(3, 2))
}

func TestNewPartitionClassifyAndKind(t *testing.T) {
	p := partition.NewPartition(4)
	p.Classify(0, 0, 0) // Trivial
	p.Classify(1, 2, 0) // ZeroFill
	p.Classify(2, 3, 1) // General
	p.Classify(3, 1, 0) // Trivial

	require.Equal(t, partition.KindTrivial, p.Kind(0))
	require.Equal(t, partition.KindZeroFill, p.Kind(1))
	require.Equal(t, partition.KindGeneral, p.Kind(2))
	require.Equal(t, partition.KindTrivial, p.Kind(3))

	require.Equal(t, 2, p.Len(partition.KindTrivial))
	require.Equal(t, 1, p.Len(partition.KindZeroFill))
	require.Equal(t, 1, p.Len(partition.KindGeneral))
}

// TestPopTrivialIsFIFO reproduces a chain graph's pattern: the Trivial
// bucket is populated 0, then 3 at initialization, and must pop in that
// order across repeated pops, not just the first one.
func TestPopTrivialIsFIFO(t *testing.T) {
	p := partition.NewPartition(4)
	p.Classify(0, 1, 0)
	p.Classify(1, 2, 0)
	p.Classify(2, 2, 0)
	p.Classify(3, 1, 0)

	v, ok := p.PopTrivial()
	require.True(t, ok)
	require.Equal(t, 0, v)

	v, ok = p.PopTrivial()
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = p.PopTrivial()
	require.False(t, ok)
}

// TestPopZeroFillIsFIFO checks that the ZeroFill bucket pops in insertion
// order across repeated pops, not just the first one.
func TestPopZeroFillIsFIFO(t *testing.T) {
	p := partition.NewPartition(5)
	p.Classify(0, 4, 6)
	p.Classify(1, 1, 0)
	p.Classify(2, 1, 0)
	p.Classify(3, 1, 0)
	p.Classify(4, 1, 0)

	// Leaves of a star are Trivial (degree 1), not ZeroFill, so p holds no
	// ZeroFill vertex. p2 classifies 0,1,2 at degree 2 with no fill to
	// exercise the ZeroFill bucket directly, independent of Trivial's own
	// FIFO test above.
	p2 := partition.NewPartition(4)
	p2.Classify(0, 2, 0)
	p2.Classify(1, 2, 0)
	p2.Classify(2, 2, 0)
	p2.Classify(3, 3, 1)

	v, ok := p2.PopZeroFill()
	require.True(t, ok)
	require.Equal(t, 0, v)
	v, ok = p2.PopZeroFill()
	require.True(t, ok)
	require.Equal(t, 1, v)
	v, ok = p2.PopZeroFill()
	require.True(t, ok)
	require.Equal(t, 2, v)
	_, ok = p2.PopZeroFill()
	require.False(t, ok)
}

func TestReclassifyPromotesForward(t *testing.T) {
	p := partition.NewPartition(3)
	p.Classify(0, 3, 2) // General

	p.Reclassify(0, 3, 0) // fillScore dropped to 0 -> ZeroFill
	require.Equal(t, partition.KindZeroFill, p.Kind(0))
	require.Equal(t, 0, p.Len(partition.KindGeneral))
	require.Equal(t, 1, p.Len(partition.KindZeroFill))

	p.Reclassify(0, 1, 0) // degree dropped to 1 -> Trivial
	require.Equal(t, partition.KindTrivial, p.Kind(0))
	require.Equal(t, 0, p.Len(partition.KindZeroFill))
	require.Equal(t, 1, p.Len(partition.KindTrivial))
}

func TestReclassifyNoOpWhenBucketUnchanged(t *testing.T) {
	p := partition.NewPartition(2)
	p.Classify(0, 3, 2)
	p.Reclassify(0, 4, 3) // still General
	require.Equal(t, partition.KindGeneral, p.Kind(0))
	require.Equal(t, 1, p.Len(partition.KindGeneral))
}

func TestReclassifyIgnoresOrderedAndIgnored(t *testing.T) {
	p := partition.NewPartition(2)
	p.Classify(0, 3, 2)
	p.MarkOrdered(0)
	p.Reclassify(0, 0, 0)
	require.Equal(t, partition.KindOrdered, p.Kind(0))

	p.Classify(1, 3, 2)
	p.MarkIgnored(1)
	p.Reclassify(1, 0, 0)
	require.Equal(t, partition.KindIgnored, p.Kind(1))
}

func TestMarkOrderedRemovesFromCurrentBucket(t *testing.T) {
	p := partition.NewPartition(3)
	p.Classify(0, 1, 0)
	p.Classify(1, 2, 0)
	p.Classify(2, 3, 1)

	p.MarkOrdered(1)
	require.Equal(t, partition.KindOrdered, p.Kind(1))
	require.Equal(t, 0, p.Len(partition.KindZeroFill))
	require.Equal(t, 1, p.Len(partition.KindOrdered))
}

func TestMarkIgnoredRemovesFromCurrentBucket(t *testing.T) {
	p := partition.NewPartition(3)
	p.Classify(0, 1, 0)
	p.Classify(1, 2, 0)
	p.Classify(2, 3, 1)

	p.MarkIgnored(2)
	require.Equal(t, partition.KindIgnored, p.Kind(2))
	require.Equal(t, 0, p.Len(partition.KindGeneral))
	require.Equal(t, 1, p.Len(partition.KindIgnored))
}

func TestGeneralIDsReflectsCurrentMembers(t *testing.T) {
	p := partition.NewPartition(3)
	p.Classify(0, 3, 1)
	p.Classify(1, 3, 2)
	p.Classify(2, 1, 0)

	require.ElementsMatch(t, []int{0, 1}, p.GeneralIDs())
}

func TestOutOfRangeVertexPanics(t *testing.T) {
	p := partition.NewPartition(2)
	require.Panics(t, func() { p.Classify(5, 0, 0) })
	require.Panics(t, func() { p.Kind(-1) })
}
