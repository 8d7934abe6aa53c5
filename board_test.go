package puzzle_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jauhararifin/puzzle"
)

func block(x, y int) puzzle.Piece {
	return puzzle.Piece{Shape: puzzle.NewShape("#"), Color: puzzle.ColorRed, X: x, Y: y}
}

// fillRow occupies row y except for the given columns.
func fillRow(b *puzzle.Board, y int, gaps ...int) {
	skip := make(map[int]bool, len(gaps))
	for _, x := range gaps {
		skip[x] = true
	}
	for x := 0; x < b.Width(); x++ {
		if !skip[x] {
			b.Lock(block(x, y))
		}
	}
}

func occupiedCount(b *puzzle.Board) int {
	n := 0
	for _, row := range b.Rows() {
		for _, c := range row {
			if c.Occupied {
				n++
			}
		}
	}
	return n
}

func TestBoardIsOccupied(t *testing.T) {
	b := puzzle.NewBoard(10, 20)
	b.Lock(block(3, 5))

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"left wall", -1, 5, true},
		{"right wall", 10, 5, true},
		{"floor", 3, 20, true},
		{"above top", 3, -1, false},
		{"above top outside walls", -1, -1, true},
		{"empty cell", 4, 5, false},
		{"locked cell", 3, 5, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsOccupied(tt.x, tt.y))
		})
	}
}

func TestBoardStartsEmpty(t *testing.T) {
	b := puzzle.NewBoard(10, 20)
	for _, row := range b.Rows() {
		for _, c := range row {
			assert.False(t, c.Occupied)
			assert.Equal(t, puzzle.ColorEmpty, c.Color)
		}
	}
}

func TestBoardLockSkipsCellsAboveTop(t *testing.T) {
	b := puzzle.NewBoard(10, 20)
	p := puzzle.NewPiece(puzzle.KindO)
	p.X, p.Y = 2, -1
	b.Lock(p)

	assert.Equal(t, 2, occupiedCount(b))
	assert.Equal(t, puzzle.Cell{Occupied: true, Color: puzzle.ColorYellow}, b.Cell(2, 0))
	assert.Equal(t, puzzle.Cell{Occupied: true, Color: puzzle.ColorYellow}, b.Cell(3, 0))
}

func TestBoardClearFullRows(t *testing.T) {
	b := puzzle.NewBoard(10, 20)
	fillRow(b, 19)
	fillRow(b, 18, 4)
	fillRow(b, 17)
	b.Lock(block(0, 16))

	cleared := b.ClearFullRows()
	require.Equal(t, 2, cleared)

	rows := b.Rows()
	require.Len(t, rows, 20)
	for _, row := range rows {
		assert.Len(t, row, 10)
	}

	// The partial row and the lone block fall by the two removed rows.
	assert.False(t, b.IsOccupied(4, 19))
	assert.True(t, b.IsOccupied(0, 19))
	assert.True(t, b.IsOccupied(0, 18))
	assert.Equal(t, 10, occupiedCount(b))
	assert.Equal(t, 0, b.ClearFullRows())
}

func TestBoardClearFullRowsWithGapColumn(t *testing.T) {
	b := puzzle.NewBoard(10, 20)
	for y := 15; y < 20; y++ {
		fillRow(b, y, 6)
	}
	assert.Equal(t, 0, b.ClearFullRows())

	for y := 15; y < 20; y++ {
		b.Lock(block(6, y))
	}
	assert.Equal(t, 5, b.ClearFullRows())
	assert.Equal(t, 0, occupiedCount(b))
}

func TestBoardClearFullRowsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		b := puzzle.NewBoard(10, 20)
		full := 0
		for y := 0; y < 20; y++ {
			switch r.Intn(3) {
			case 0:
				fillRow(b, y)
				full++
			case 1:
				fillRow(b, y, r.Intn(10))
			}
		}
		before := occupiedCount(b)

		cleared := b.ClearFullRows()

		assert.Equal(t, full, cleared)
		assert.Equal(t, before-cleared*10, occupiedCount(b))
		assert.Len(t, b.Rows(), 20)
		for y := 0; y < cleared; y++ {
			for x := 0; x < 10; x++ {
				assert.Equal(t, puzzle.ColorEmpty, b.Cell(x, y).Color)
			}
		}
	}
}
