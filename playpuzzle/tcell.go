package main

import (
	"context"
	"time"

	"github.com/gdamore/tcell"
	"github.com/mattn/go-runewidth"

	"github.com/jauhararifin/puzzle"
)

const frameInterval = time.Second / 30

var tcellColors = map[puzzle.ColorTag]tcell.Color{
	puzzle.ColorCyan:   tcell.ColorAqua,
	puzzle.ColorYellow: tcell.ColorYellow,
	puzzle.ColorPurple: tcell.ColorFuchsia,
	puzzle.ColorGreen:  tcell.ColorLime,
	puzzle.ColorRed:    tcell.ColorRed,
	puzzle.ColorBlue:   tcell.ColorBlue,
	puzzle.ColorOrange: tcell.ColorOrange,
}

// tcellView draws with tcell directly and closes itself once the session
// has reported its outcome.
type tcellView struct {
	session   *puzzle.Session
	result    *outcome
	newScreen func() (tcell.Screen, error)
}

func newTcellView(session *puzzle.Session, result *outcome) *tcellView {
	return &tcellView{
		session:   session,
		result:    result,
		newScreen: tcell.NewScreen,
	}
}

func (v *tcellView) Run(ctx context.Context) error {
	screen, err := v.newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		v.draw(screen)
		select {
		case <-ctx.Done():
			return nil
		case <-v.result.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return nil
				}
				if key, ok := tcellKey(ev); ok {
					v.session.Press(key)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
		}
	}
}

func tcellKey(ev *tcell.EventKey) (puzzle.Key, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return puzzle.KeyLeft, true
	case tcell.KeyRight:
		return puzzle.KeyRight, true
	case tcell.KeyUp:
		return puzzle.KeyUp, true
	case tcell.KeyDown:
		return puzzle.KeyDown, true
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return puzzle.KeySpace, true
		}
	}
	return puzzle.KeyNone, false
}

func (v *tcellView) draw(screen tcell.Screen) {
	snap := v.session.Snapshot()
	opp := v.session.Opponent()
	border := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)

	screen.Clear()
	drawText(screen, 0, 0, centre(banner(opp), snap.Width+2), border.Bold(true))

	top := bannerRows
	for x := 0; x < snap.Width+2; x++ {
		screen.SetContent(x, top, '+', nil, border)
		screen.SetContent(x, top+snap.Height+1, '+', nil, border)
	}
	for y := 0; y < snap.Height+2; y++ {
		screen.SetContent(0, top+y, '+', nil, border)
		screen.SetContent(snap.Width+1, top+y, '+', nil, border)
	}
	for y, row := range snap.Tiles {
		for x, cell := range row {
			screen.SetContent(x+1, top+y+1, ' ', nil, tcellStyle(cell))
		}
	}

	panel := snap.Width + 3
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			style := tcell.StyleDefault
			if snap.Next.Shape.Filled(x, y) {
				style = tcellStyle(puzzle.Cell{Occupied: true, Color: snap.Next.Color})
			}
			screen.SetContent(panel+x, top+y, ' ', nil, style)
		}
	}
	for i, line := range status(opp, snap, v.result) {
		drawText(screen, panel, top+panelRows+i, line, tcell.StyleDefault)
	}
	screen.Show()
}

func tcellStyle(cell puzzle.Cell) tcell.Style {
	if !cell.Occupied {
		return tcell.StyleDefault.Background(tcell.ColorBlack)
	}
	return tcell.StyleDefault.Background(tcellColors[cell.Color])
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
