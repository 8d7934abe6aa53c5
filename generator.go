package puzzle

import (
	"math/rand"
)

type PieceGenerator interface {
	Next() Piece
}

// RandomGenerator picks every piece independently and uniformly, so the same
// kind may come up several times in a row.
type RandomGenerator struct {
	randomizer *rand.Rand
	kinds      []Kind
}

func NewRandomGenerator(seed int64) *RandomGenerator {
	return &RandomGenerator{
		randomizer: rand.New(rand.NewSource(seed)),
		kinds:      Kinds,
	}
}

func (r *RandomGenerator) Next() Piece {
	return NewPiece(r.kinds[r.randomizer.Intn(len(r.kinds))])
}

// QueueGenerator hands out queued kinds in order. When the queue runs dry it
// asks the fallback generator, and panics if there is none.
type QueueGenerator struct {
	queue    []Kind
	fallback PieceGenerator
}

func NewQueueGenerator(kinds ...Kind) *QueueGenerator {
	return &QueueGenerator{queue: append([]Kind(nil), kinds...)}
}

func (q *QueueGenerator) WithFallback(fallback PieceGenerator) *QueueGenerator {
	q.fallback = fallback
	return q
}

func (q *QueueGenerator) Push(kinds ...Kind) {
	q.queue = append(q.queue, kinds...)
}

func (q *QueueGenerator) Len() int {
	return len(q.queue)
}

func (q *QueueGenerator) Next() Piece {
	if len(q.queue) == 0 {
		if q.fallback == nil {
			panic("puzzle: piece queue is empty")
		}
		return q.fallback.Next()
	}
	k := q.queue[0]
	q.queue = q.queue[1:]
	return NewPiece(k)
}
