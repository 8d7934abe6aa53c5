package puzzle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jauhararifin/puzzle"
)

func TestRandomGeneratorIsUniform(t *testing.T) {
	g := puzzle.NewRandomGenerator(42)
	const draws = 70000
	counts := map[puzzle.Kind]int{}
	for i := 0; i < draws; i++ {
		counts[g.Next().Kind]++
	}

	require.Len(t, counts, len(puzzle.Kinds))
	for kind, n := range counts {
		assert.InDelta(t, draws/len(puzzle.Kinds), n, 500, "kind %s", kind)
	}
}

func TestRandomGeneratorIsDeterministicPerSeed(t *testing.T) {
	a, b := puzzle.NewRandomGenerator(9), puzzle.NewRandomGenerator(9)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next().Kind, b.Next().Kind)
	}
}

func TestRandomGeneratorAllowsRepeats(t *testing.T) {
	g := puzzle.NewRandomGenerator(1)
	prev := g.Next().Kind
	for i := 0; i < 1000; i++ {
		k := g.Next().Kind
		if k == prev {
			return
		}
		prev = k
	}
	t.Fatal("expected the same kind twice in a row at least once in 1000 draws")
}

func TestGeneratedPiecesAreIndependent(t *testing.T) {
	g := puzzle.NewQueueGenerator(puzzle.KindT, puzzle.KindT)
	first, second := g.Next(), g.Next()

	first.Shape = first.Shape.Rotate()
	first.X = 7

	assert.Equal(t, ".#./###", second.Shape.String())
	assert.Equal(t, 0, second.X)
}

func TestQueueGenerator(t *testing.T) {
	g := puzzle.NewQueueGenerator(puzzle.KindI, puzzle.KindO)
	g.Push(puzzle.KindZ)
	require.Equal(t, 3, g.Len())

	assert.Equal(t, puzzle.KindI, g.Next().Kind)
	assert.Equal(t, puzzle.KindO, g.Next().Kind)
	assert.Equal(t, puzzle.KindZ, g.Next().Kind)
	assert.Panics(t, func() { g.Next() })

	g.WithFallback(puzzle.NewQueueGenerator(puzzle.KindL))
	assert.Equal(t, puzzle.KindL, g.Next().Kind)
}
