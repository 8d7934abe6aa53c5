package puzzle

import "strings"

type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

var kindNames = [...]string{"I", "O", "T", "S", "Z", "J", "L"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "?"
	}
	return kindNames[k]
}

// Shape is an immutable matrix of filled cells. Methods that change the
// orientation return a new Shape.
type Shape struct {
	cells [][]bool
}

// NewShape builds a shape from rows where '#' marks a filled cell.
func NewShape(rows ...string) Shape {
	cells := make([][]bool, len(rows))
	for y, row := range rows {
		cells[y] = make([]bool, len(row))
		for x, ch := range row {
			cells[y][x] = ch == '#'
		}
	}
	return Shape{cells: cells}
}

func (s Shape) Width() int {
	if len(s.cells) == 0 {
		return 0
	}
	return len(s.cells[0])
}

func (s Shape) Height() int {
	return len(s.cells)
}

func (s Shape) Filled(x, y int) bool {
	if y < 0 || y >= len(s.cells) || x < 0 || x >= len(s.cells[y]) {
		return false
	}
	return s.cells[y][x]
}

// Rotate returns the shape turned 90 degrees clockwise.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	rotated := make([][]bool, w)
	for y := 0; y < w; y++ {
		rotated[y] = make([]bool, h)
		for x := 0; x < h; x++ {
			rotated[y][x] = s.cells[h-1-x][y]
		}
	}
	return Shape{cells: rotated}
}

func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

func (s Shape) String() string {
	var sb strings.Builder
	for y, row := range s.cells {
		if y > 0 {
			sb.WriteByte('/')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

type Piece struct {
	Kind  Kind
	Shape Shape
	Color ColorTag
	X, Y  int
}

type pieceTemplate struct {
	rows  []string
	color ColorTag
}

var pieceTemplates = [...]pieceTemplate{
	KindI: {rows: []string{"####"}, color: ColorCyan},
	KindO: {rows: []string{"##", "##"}, color: ColorYellow},
	KindT: {rows: []string{".#.", "###"}, color: ColorPurple},
	KindS: {rows: []string{".##", "##."}, color: ColorGreen},
	KindZ: {rows: []string{"##.", ".##"}, color: ColorRed},
	KindJ: {rows: []string{"#..", "###"}, color: ColorBlue},
	KindL: {rows: []string{"..#", "###"}, color: ColorOrange},
}

// Kinds lists every canonical piece kind.
var Kinds = []Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

// NewPiece returns a fresh piece of the given kind at the origin. Each call
// builds its own matrix, so pieces never share cells.
func NewPiece(kind Kind) Piece {
	t := pieceTemplates[kind]
	return Piece{
		Kind:  kind,
		Shape: NewShape(t.rows...),
		Color: t.color,
	}
}

// cells calls fn with the board coordinate of every filled cell.
func (p Piece) cells(fn func(x, y int)) {
	for y := 0; y < p.Shape.Height(); y++ {
		for x := 0; x < p.Shape.Width(); x++ {
			if p.Shape.Filled(x, y) {
				fn(p.X+x, p.Y+y)
			}
		}
	}
}
