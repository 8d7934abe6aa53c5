package main

import (
	"context"

	"github.com/JoelOtter/termloop"
	"github.com/mattn/go-runewidth"

	"github.com/jauhararifin/puzzle"
)

const (
	bannerRows = 2
	panelRows  = 6
)

// Output256 maps attribute n to palette colour n-1.
const termloopOrange = termloop.Attr(209)

var termloopColors = map[puzzle.ColorTag]termloop.Attr{
	puzzle.ColorCyan:   termloop.ColorCyan,
	puzzle.ColorYellow: termloop.ColorYellow,
	puzzle.ColorPurple: termloop.ColorMagenta,
	puzzle.ColorGreen:  termloop.ColorGreen,
	puzzle.ColorRed:    termloop.ColorRed,
	puzzle.ColorBlue:   termloop.ColorBlue,
	puzzle.ColorOrange: termloopOrange,
}

// termloopView runs a termloop game until the player presses Ctrl+C.
type termloopView struct {
	board *boardEntity
}

func newTermloopView(session *puzzle.Session, result *outcome) *termloopView {
	return &termloopView{board: newBoardEntity(session, result, 0, 0)}
}

// Run blocks in termloop's own loop, which has no way to be stopped from
// outside, so ctx is not consulted.
func (v *termloopView) Run(ctx context.Context) error {
	game := termloop.NewGame()
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(v.board)
	game.Screen().SetLevel(level)
	game.Start()
	return nil
}

type boardEntity struct {
	session *puzzle.Session
	result  *outcome
	x, y    int

	bannerText *termloop.Text
	statusText []*termloop.Text
}

func newBoardEntity(session *puzzle.Session, result *outcome, x, y int) *boardEntity {
	return &boardEntity{
		session:    session,
		result:     result,
		x:          x,
		y:          y,
		bannerText: termloop.NewText(x, y, "", termloop.ColorWhite|termloop.AttrBold, termloop.ColorDefault),
	}
}

func (b *boardEntity) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}
	if key, ok := termloopKey(ev.Key); ok {
		b.session.Press(key)
	}
}

func termloopKey(k termloop.Key) (puzzle.Key, bool) {
	switch k {
	case termloop.KeyArrowLeft:
		return puzzle.KeyLeft, true
	case termloop.KeyArrowRight:
		return puzzle.KeyRight, true
	case termloop.KeyArrowUp:
		return puzzle.KeyUp, true
	case termloop.KeyArrowDown:
		return puzzle.KeyDown, true
	case termloop.KeySpace:
		return puzzle.KeySpace, true
	}
	return puzzle.KeyNone, false
}

func (b *boardEntity) Draw(s *termloop.Screen) {
	snap := b.session.Snapshot()
	opp := b.session.Opponent()
	top := b.y + bannerRows
	width, height := snap.Width, snap.Height

	b.bannerText.SetText(centre(banner(opp), width+2))
	b.bannerText.Draw(s)

	for i := 0; i < width+2; i++ {
		s.RenderCell(b.x+i, top, borderCell())
		s.RenderCell(b.x+i, top+height+1, borderCell())
	}
	for i := 0; i < height+2; i++ {
		s.RenderCell(b.x, top+i, borderCell())
		s.RenderCell(b.x+width+1, top+i, borderCell())
	}

	panel := b.x + width + 3
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := puzzle.Cell{}
			if snap.Next.Shape.Filled(x, y) {
				cell = puzzle.Cell{Occupied: true, Color: snap.Next.Color}
			}
			s.RenderCell(panel+x, top+y, termloopCell(cell))
		}
	}

	lines := status(opp, snap, b.result)
	for len(b.statusText) < len(lines) {
		row := top + panelRows + len(b.statusText)
		b.statusText = append(b.statusText, termloop.NewText(panel, row, "", termloop.ColorWhite, termloop.ColorDefault))
	}
	for i, text := range b.statusText {
		if i < len(lines) {
			text.SetText(lines[i])
		} else {
			text.SetText("")
		}
		text.Draw(s)
	}

	for y, row := range snap.Tiles {
		for x, cell := range row {
			s.RenderCell(b.x+1+x, top+1+y, termloopCell(cell))
		}
	}
}

func borderCell() *termloop.Cell {
	return &termloop.Cell{
		Fg: termloop.ColorWhite,
		Bg: termloop.ColorBlack,
		Ch: '+',
	}
}

func termloopCell(cell puzzle.Cell) *termloop.Cell {
	if !cell.Occupied {
		return &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack, Ch: ' '}
	}
	return &termloop.Cell{Fg: termloop.ColorBlack, Bg: termloopColors[cell.Color], Ch: ' '}
}

// centre pads s so it sits in the middle of width columns, truncating it
// when it does not fit.
func centre(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	pad := (width - runewidth.StringWidth(s)) / 2
	if pad <= 0 {
		return s
	}
	return runewidth.FillLeft(s, pad+runewidth.StringWidth(s))
}
