package harness

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caio/go-bigo"
)

func TestOptionDefaults(t *testing.T) {
	trials, err := Build(100, Seed(1))
	require.NoError(t, err)

	hanoi := trials[bigo.OTwoPowN].(*hanoiTrial)
	assert.Equal(t, DefaultHanoiDisks, hanoi.disks)

	for _, v := range trials[bigo.O1].(*firstTrial).seq {
		assert.GreaterOrEqual(t, v, int32(0))
	}
}

func TestOptionErrors(t *testing.T) {
	for name, opt := range map[string]Option{
		"inverted range":    ValueRange(10, -10),
		"range below int32": ValueRange(math.MinInt32-1, 0),
		"range above int32": ValueRange(0, math.MaxInt32+1),
		"negative disks":    HanoiDisks(-1),
		"too many disks":    HanoiDisks(MaxHanoiDisks + 1),
		"nil rng":           WithRNG(nil),
	} {
		t.Run(name, func(t *testing.T) {
			trials, err := Build(10, opt)
			assert.ErrorIs(t, err, bigo.ErrInvalidInput)
			assert.Nil(t, trials)
		})
	}
}

func TestValueRange(t *testing.T) {
	trials, err := Build(500, Seed(3), ValueRange(-5, 5))
	require.NoError(t, err)

	counts := map[int32]int{}
	for _, v := range trials[bigo.O1].(*firstTrial).seq {
		require.True(t, v >= -5 && v <= 5, "value %d out of range", v)
		counts[v]++
	}
	assert.Len(t, counts, 11, "both bounds should be reachable")
}

func TestSeedIsReproducible(t *testing.T) {
	a, err := Build(50, Seed(99))
	require.NoError(t, err)
	b, err := Build(50, Seed(99))
	require.NoError(t, err)

	assert.Equal(t, a[bigo.O1].(*firstTrial).seq, b[bigo.O1].(*firstTrial).seq)
	assert.Equal(t, a[bigo.OSqrtN].(*rangeSumTrial).from, b[bigo.OSqrtN].(*rangeSumTrial).from)
}
