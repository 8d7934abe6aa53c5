package puzzle

import (
	"fmt"
	"time"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20

	minSize = 4
)

// kickOffsets are the horizontal shifts tried, in order, after a rotation.
var kickOffsets = [...]int{0, 1, -1, 2, -2}

type Result struct {
	Locked  bool
	Cleared int
	LevelUp bool
}

type Snapshot struct {
	Tiles         [][]Cell
	Active, Next  Piece
	Phase         Phase
	LinesCleared  int
	Level         int
	DropInterval  time.Duration
	Width, Height int
}

// Game is the board, the active piece and the score of one session. It is
// not safe for concurrent use; Session serializes access to it.
type Game struct {
	generator       PieceGenerator
	completeHandler CompleteHandler
	width, height   int
	winLines        int

	board        *Board
	active, next Piece
	score        Score
	phase        Phase
}

type GameOption func(*Game)

func WithSize(width, height int) GameOption {
	if width < minSize || height < minSize {
		panic(fmt.Errorf("minimal width x height is %dx%d", minSize, minSize))
	}
	return func(g *Game) {
		g.width = width
		g.height = height
	}
}

func WithGenerator(generator PieceGenerator) GameOption {
	return func(g *Game) {
		g.generator = generator
	}
}

func WithCompleteHandler(handler CompleteHandler) GameOption {
	return func(g *Game) {
		g.completeHandler = handler
	}
}

func WithWinLines(lines int) GameOption {
	if lines < 1 {
		panic(fmt.Errorf("win lines must be positive, got %d", lines))
	}
	return func(g *Game) {
		g.winLines = lines
	}
}

// WithBoard starts the game on an existing board, e.g. a prepared puzzle.
// The board's size overrides WithSize.
func WithBoard(board *Board) GameOption {
	return func(g *Game) {
		g.board = board
	}
}

func NewGame(options ...GameOption) *Game {
	g := &Game{
		generator: NewRandomGenerator(time.Now().UnixNano()),
		width:     DefaultWidth,
		height:    DefaultHeight,
		winLines:  DefaultWinLines,
		phase:     PhaseIntro,
	}
	for _, opt := range options {
		opt(g)
	}

	if g.board == nil {
		g.board = NewBoard(g.width, g.height)
	}
	g.width, g.height = g.board.Width(), g.board.Height()

	g.active = g.spawn(g.generator.Next())
	g.next = g.generator.Next()
	return g
}

func (g *Game) Phase() Phase {
	return g.phase
}

func (g *Game) Score() Score {
	return g.score
}

func (g *Game) DropInterval() time.Duration {
	return g.score.DropInterval()
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Active() Piece {
	return g.active
}

func (g *Game) Next() Piece {
	return g.next
}

// Start leaves the intro. It has no effect in any other phase.
func (g *Game) Start() {
	if g.phase != PhaseIntro {
		return
	}
	g.phase = PhasePlaying
	if g.collides(g.active) {
		g.phase = PhaseLost
	}
}

// Apply performs one action. Outside PhasePlaying, and for moves that would
// collide, it does nothing.
func (g *Game) Apply(action Action) Result {
	if g.phase != PhasePlaying {
		return Result{}
	}

	switch action {
	case ActionTick, ActionSoftDrop:
		return g.applySoftDrop()
	case ActionGoLeft:
		g.applyMoveHorizontal(-1)
	case ActionGoRight:
		g.applyMoveHorizontal(1)
	case ActionRotate:
		g.applyRotate()
	case ActionHardDrop:
		return g.applyHardDrop()
	}
	return Result{}
}

func (g *Game) spawn(p Piece) Piece {
	p.X = g.width/2 - p.Shape.Width()/2
	p.Y = 0
	return p
}

func (g *Game) collides(p Piece) bool {
	hit := false
	p.cells(func(x, y int) {
		if g.board.IsOccupied(x, y) {
			hit = true
		}
	})
	return hit
}

func (g *Game) applyMoveHorizontal(dir int) {
	candidate := g.active
	candidate.X += dir
	if !g.collides(candidate) {
		g.active = candidate
	}
}

func (g *Game) applySoftDrop() Result {
	candidate := g.active
	candidate.Y++
	if g.collides(candidate) {
		return g.lockPiece()
	}
	g.active = candidate
	return Result{}
}

func (g *Game) applyHardDrop() Result {
	for {
		candidate := g.active
		candidate.Y++
		if g.collides(candidate) {
			break
		}
		g.active = candidate
	}
	return g.lockPiece()
}

func (g *Game) applyRotate() {
	if g.active.Kind == KindO {
		return
	}

	rotated := g.active
	rotated.Shape = g.active.Shape.Rotate()
	for _, dx := range kickOffsets {
		candidate := rotated
		candidate.X += dx
		if !g.collides(candidate) {
			g.active = candidate
			return
		}
	}
}

// lockPiece merges the active piece, clears rows, scores them and either
// ends the game or brings in the next piece.
func (g *Game) lockPiece() Result {
	toppedOut := g.active.Y <= 0

	g.board.Lock(g.active)
	res := Result{Locked: true}
	res.Cleared = g.board.ClearFullRows()
	res.LevelUp = g.score.add(res.Cleared)

	if g.completeHandler != nil {
		g.completeHandler.OnCompleted(res.Cleared)
	}

	if g.score.LinesCleared() >= g.winLines {
		g.phase = PhaseWon
		return res
	}
	if toppedOut {
		g.phase = PhaseLost
		return res
	}

	g.active = g.spawn(g.next)
	g.next = g.generator.Next()
	if g.collides(g.active) {
		g.phase = PhaseLost
	}
	return res
}

// Render returns the board with the active piece drawn on it.
func (g *Game) Render() [][]Cell {
	tiles := g.board.Rows()
	if g.phase.Terminal() {
		return tiles
	}
	g.active.cells(func(x, y int) {
		if x >= 0 && x < g.width && y >= 0 && y < g.height {
			tiles[y][x] = Cell{Occupied: true, Color: g.active.Color}
		}
	})
	return tiles
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tiles:        g.Render(),
		Active:       g.active,
		Next:         g.next,
		Phase:        g.phase,
		LinesCleared: g.score.LinesCleared(),
		Level:        g.score.Level(),
		DropInterval: g.score.DropInterval(),
		Width:        g.width,
		Height:       g.height,
	}
}
