package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(CSquared, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCT value", func(t *testing.T) {
		policy := newUCT(CSquared, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(2)*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute wins/visits + C*sqrt(ln(N)/n) with C = sqrt(2)")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		policy1 := newUCT(CSquared, 100)
		policy2 := newUCT(CSquared, 1000)

		require.Greater(t, policy2.evaluate(5, 10), policy1.evaluate(5, 10),
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.evaluate(5, 10), policy.evaluate(5, 20),
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with wins", func(t *testing.T) {
		policy := newUCT(CSquared, 100)

		require.Greater(t, policy.evaluate(10, 10), policy.evaluate(5, 10),
			"More wins should increase exploitation term")
	})
}

func TestUCTScore(t *testing.T) {
	t.Run("unvisited child scores infinity", func(t *testing.T) {
		policy := newUCT(CSquared, 10)

		require.True(t, math.IsInf(policy.score(0, 0), 1), "Unvisited child should be tried first")
	})

	t.Run("visited child matches evaluate", func(t *testing.T) {
		policy := newUCT(CSquared, 10)

		require.Equal(t, policy.evaluate(2, 4), policy.score(2, 4))
	})
}
