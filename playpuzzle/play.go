package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize/english"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/jauhararifin/puzzle"
	"github.com/jauhararifin/puzzle/internal/config"
	"github.com/jauhararifin/puzzle/internal/opponent"
)

// view draws a running session and forwards keys to it. Run returns when the
// player leaves or ctx is done.
type view interface {
	Run(ctx context.Context) error
}

func newView(ui string, session *puzzle.Session, result *outcome) (view, error) {
	switch ui {
	case config.UITermloop:
		return newTermloopView(session, result), nil
	case config.UITcell:
		return newTcellView(session, result), nil
	}
	return nil, fmt.Errorf("unknown ui %q", ui)
}

func play(ctx context.Context, cfg config.Config, out io.Writer) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("playpuzzle needs an interactive terminal")
	}

	roster := opponent.Builtin()
	if cfg.OpponentsFile != "" {
		var err error
		if roster, err = opponent.Load(cfg.OpponentsFile); err != nil {
			return err
		}
	}
	opp, err := roster.Pick(cfg.Opponent)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	result := newOutcome()
	game := puzzle.NewGame(
		puzzle.WithSize(cfg.Width, cfg.Height),
		puzzle.WithGenerator(puzzle.NewRandomGenerator(cfg.RandomSeed())),
		puzzle.WithWinLines(cfg.WinLines),
	)
	session := puzzle.NewSession(
		puzzle.WithGame(game),
		puzzle.WithOpponent(opp),
		puzzle.WithOnWin(func() { result.set(puzzle.PhaseWon) }),
		puzzle.WithOnLose(func() { result.set(puzzle.PhaseLost) }),
		puzzle.WithIntroDelay(cfg.IntroDelay),
		puzzle.WithOutroDelay(cfg.OutroDelay),
		puzzle.WithLogger(logger),
	)

	v, err := newView(cfg.UI, session, result)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		err := session.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	group.Go(func() error {
		defer cancel()
		return v.Run(gctx)
	})
	if err := group.Wait(); err != nil {
		return err
	}

	phase, done := result.get()
	fmt.Fprintln(out, summary(opp, session.Snapshot(), phase, done))
	return nil
}

func summary(opp puzzle.Opponent, snap puzzle.Snapshot, phase puzzle.Phase, done bool) string {
	lines := english.Plural(snap.LinesCleared, "line", "")
	switch {
	case !done:
		return fmt.Sprintf("left the match against %s with %s", emph(opp.Name), lines)
	case phase == puzzle.PhaseWon:
		return winColor.Sprintf("won against %s: %s, level %d", opp.Name, lines, snap.Level)
	default:
		return loseColor.Sprintf("lost to %s: %s, level %d", opp.Name, lines, snap.Level)
	}
}

// openLog opens the session log for appending. An empty path discards logs.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.New(f, "", log.Ldate|log.Ltime|log.LUTC|log.Lshortfile)
	return logger, func() { f.Close() }, nil
}

// status is the text shown beside the board.
func status(opp puzzle.Opponent, snap puzzle.Snapshot, result *outcome) []string {
	lines := []string{
		fmt.Sprintf("Lines: %d", snap.LinesCleared),
		fmt.Sprintf("Level: %d", snap.Level),
	}
	switch snap.Phase {
	case puzzle.PhaseIntro:
		lines = append(lines, "Get ready...")
	case puzzle.PhasePlaying:
		lines = append(lines, "")
	case puzzle.PhaseWon:
		lines = append(lines, "You won!")
	case puzzle.PhaseLost:
		lines = append(lines, "Topped out")
	}
	if _, done := result.get(); done {
		lines = append(lines, "Ctrl+C to leave")
	}
	if opp.Taunt != "" {
		lines = append(lines, "", fmt.Sprintf("%q", opp.Taunt))
	}
	return lines
}

// banner is the opponent heading drawn above the board.
func banner(opp puzzle.Opponent) string {
	if opp.Title == "" {
		return opp.Name
	}
	return opp.Name + ", " + opp.Title
}
