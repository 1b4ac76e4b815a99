package randid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		p    float64
		want Safety
	}{
		{0, SafetySafe},
		{0.0009999, SafetySafe},
		{0.001, SafetyModerate},
		{0.05, SafetyModerate},
		{0.0999999, SafetyModerate},
		{0.1, SafetyHighRisk},
		{0.5, SafetyHighRisk},
		{1, SafetyHighRisk},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.p), "p=%v", tc.p)
	}
}

func TestCollisionProbability(t *testing.T) {
	assert.InDelta(t, 0.0014187816671310527, CollisionProbability(7), 1e-12)
	assert.InDelta(t, 2.2899561846645433e-05, CollisionProbability(8), 1e-15)

	// Shrinks monotonically as the space grows.
	prev := CollisionProbability(MinLength)
	for length := MinLength + 1; length <= MaxLength; length++ {
		p := CollisionProbability(length)
		assert.LessOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, 0.0)
		prev = p
	}

	// Short lengths are outside the generator bounds but the model still
	// classifies them.
	assert.Equal(t, SafetyHighRisk, Classify(CollisionProbability(5)))
}

func TestCombinations(t *testing.T) {
	assert.InDelta(t, 3521614606208, Combinations(7), 1)
	assert.InDelta(t, 62, Combinations(1), 0)
}

func TestFormatProbability(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "0.000%"},
		{0.0014187816671310527, "0.142%"},
		{0.00001, "0.001%"},
		{0.5, "50.000%"},
		{1, "100.000%"},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatProbability(tc.p))
	}
}

func TestRecommend(t *testing.T) {
	safe := Recommend(SafetySafe, 8)
	assert.Contains(t, safe, "2.18e+14")
	assert.Contains(t, safe, "100k")

	assert.Contains(t, Recommend(SafetyModerate, 7), "increasing length")
	assert.Contains(t, Recommend(SafetyHighRisk, 7), "High collision risk")
}

func TestAssess(t *testing.T) {
	a, err := Assess(7)
	require.NoError(t, err)
	assert.Equal(t, 7, a.Length)
	assert.Equal(t, SafetyModerate, a.Safety)
	assert.Equal(t, Recommend(SafetyModerate, 7), a.Recommendation)

	for length := 8; length <= MaxLength; length++ {
		a, err := Assess(length)
		require.NoError(t, err)
		assert.Equal(t, SafetySafe, a.Safety, "length %d", length)
	}

	_, err = Assess(6)
	assert.ErrorIs(t, err, ErrInvalidLength)
}
