package aggregation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptySequenceIsZeroForEveryKind(t *testing.T) {
	for i := 0; i < NumKinds(); i++ {
		k := FromIndex(i)
		assert.Equal(t, float32(0), k.Apply(nil), "kind %v", k)
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, float32(6), Sum.Apply([]float32{1, 2, 3}))
}

func TestMax(t *testing.T) {
	assert.Equal(t, float32(5), Max.Apply([]float32{1, 5, -2}))
}

func TestMean(t *testing.T) {
	assert.Equal(t, float32(2), Mean.Apply([]float32{1, 2, 3}))
}

func TestL1NormAvg(t *testing.T) {
	assert.Equal(t, float32(2), L1NormAvg.Apply([]float32{-1, 3, 2}))
}

func TestL2NormAvgMatchesDirectFormulaOnSmallInput(t *testing.T) {
	values := []float32{3, 4}
	got := L2NormAvg.Apply(values)
	assert.InDelta(t, float32(2.5), got, 1e-4) // sqrt(9+16)/2 = 5/2
}

func TestL2NormAvgStableOnLargeMagnitudes(t *testing.T) {
	values := []float32{1e30, 1e30}
	got := L2NormAvg.Apply(values)
	assert.False(t, got != got, "result should not be NaN") // NaN != NaN
	assert.Greater(t, got, float32(0))
}

func TestFromIndexWraps(t *testing.T) {
	assert.Equal(t, FromIndex(0), FromIndex(NumKinds()))
}
