package puzzle

type ColorTag string

const (
	ColorEmpty  ColorTag = "empty"
	ColorCyan   ColorTag = "cyan"
	ColorYellow ColorTag = "yellow"
	ColorPurple ColorTag = "purple"
	ColorGreen  ColorTag = "green"
	ColorRed    ColorTag = "red"
	ColorBlue   ColorTag = "blue"
	ColorOrange ColorTag = "orange"
)

type Cell struct {
	Occupied bool
	Color    ColorTag
}

var emptyCell = Cell{Occupied: false, Color: ColorEmpty}

// Board holds the locked cells. Rows are indexed from the top, so y grows
// downwards and row height-1 is the floor.
type Board struct {
	width, height int
	cells         [][]Cell
}

func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Cell, height)
	for y := range b.cells {
		b.cells[y] = newEmptyRow(width)
	}
	return b
}

func newEmptyRow(width int) []Cell {
	row := make([]Cell, width)
	for x := range row {
		row[x] = emptyCell
	}
	return row
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// IsOccupied reports whether (x, y) blocks a piece. Walls and the floor are
// always blocked; anything above the top row never is.
func (b *Board) IsOccupied(x, y int) bool {
	if x < 0 || x >= b.width || y >= b.height {
		return true
	}
	if y < 0 {
		return false
	}
	return b.cells[y][x].Occupied
}

// Cell returns the cell at (x, y), or an empty cell outside the board.
func (b *Board) Cell(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return emptyCell
	}
	return b.cells[y][x]
}

// Lock merges the piece into the board. Cells above the top row are dropped.
func (b *Board) Lock(p Piece) {
	p.cells(func(x, y int) {
		if y < 0 || y >= b.height || x < 0 || x >= b.width {
			return
		}
		b.cells[y][x] = Cell{Occupied: true, Color: p.Color}
	})
}

// ClearFullRows removes every full row and pushes the same number of empty
// rows in at the top. It returns how many rows were removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]Cell, 0, b.height)
	for _, row := range b.cells {
		if !isRowFull(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.height - len(kept)
	if cleared == 0 {
		return 0
	}

	cells := make([][]Cell, 0, b.height)
	for i := 0; i < cleared; i++ {
		cells = append(cells, newEmptyRow(b.width))
	}
	b.cells = append(cells, kept...)
	return cleared
}

func isRowFull(row []Cell) bool {
	for _, c := range row {
		if !c.Occupied {
			return false
		}
	}
	return true
}

// Rows returns a copy of the grid.
func (b *Board) Rows() [][]Cell {
	rows := make([][]Cell, b.height)
	for y := range b.cells {
		rows[y] = make([]Cell, b.width)
		copy(rows[y], b.cells[y])
	}
	return rows
}
