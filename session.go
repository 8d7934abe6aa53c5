package puzzle

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultIntroDelay = 2 * time.Second
	DefaultOutroDelay = 2 * time.Second

	keyBufferSize = 8
)

var ErrSessionStarted = errors.New("puzzle: session already started")

// Opponent is shown next to the board. The engine never reads it.
type Opponent struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
	Taunt string `yaml:"taunt"`
}

// Session runs one game from intro to outcome. Run owns every timer and is
// the only goroutine that mutates the game; Press and Snapshot are safe to
// call from anywhere.
type Session struct {
	id         uuid.UUID
	game       *Game
	opponent   Opponent
	onWin      func()
	onLose     func()
	introDelay time.Duration
	outroDelay time.Duration
	logger     *log.Logger

	keys    chan Key
	m       sync.RWMutex
	started atomic.Bool
}

type SessionOption func(*Session)

func WithGame(game *Game) SessionOption {
	return func(s *Session) {
		s.game = game
	}
}

func WithOpponent(opponent Opponent) SessionOption {
	return func(s *Session) {
		s.opponent = opponent
	}
}

func WithOnWin(f func()) SessionOption {
	return func(s *Session) {
		s.onWin = f
	}
}

func WithOnLose(f func()) SessionOption {
	return func(s *Session) {
		s.onLose = f
	}
}

func WithIntroDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		s.introDelay = d
	}
}

func WithOutroDelay(d time.Duration) SessionOption {
	return func(s *Session) {
		s.outroDelay = d
	}
}

func WithLogger(logger *log.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

func WithSessionID(id uuid.UUID) SessionOption {
	return func(s *Session) {
		s.id = id
	}
}

func NewSession(options ...SessionOption) *Session {
	s := &Session{
		id:         uuid.New(),
		introDelay: DefaultIntroDelay,
		outroDelay: DefaultOutroDelay,
		logger:     log.New(io.Discard, "", 0),
		keys:       make(chan Key, keyBufferSize),
	}
	for _, opt := range options {
		opt(s)
	}
	if s.game == nil {
		s.game = NewGame()
	}
	return s
}

func (s *Session) ID() uuid.UUID {
	return s.id
}

func (s *Session) Opponent() Opponent {
	return s.opponent
}

// Press queues a key for the session loop. Unknown keys are ignored, and so
// is input arriving faster than the loop drains it.
func (s *Session) Press(key Key) {
	if _, ok := key.Action(); !ok {
		return
	}
	select {
	case s.keys <- key:
	default:
	}
}

func (s *Session) Snapshot() Snapshot {
	s.m.RLock()
	defer s.m.RUnlock()
	return s.game.Snapshot()
}

// Run drives the session until the outcome callback has been called, which
// returns nil, or until ctx is done, which returns ctx.Err() and calls
// nothing. Run may only be called once.
func (s *Session) Run(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrSessionStarted
	}

	s.logger.Printf("session %s: intro against %q\n", s.id, s.opponent.Name)

	intro := time.NewTimer(s.introDelay)
	defer intro.Stop()

	var (
		gravity  *time.Ticker
		gravityC <-chan time.Time
		outro    *time.Timer
		outroC   <-chan time.Time
		outcome  Phase
	)
	defer func() {
		if gravity != nil {
			gravity.Stop()
		}
		if outro != nil {
			outro.Stop()
		}
	}()

	handle := func(action Action) {
		res, phase, interval := s.apply(action)
		if res.Cleared > 0 {
			s.logger.Printf("session %s: cleared %d rows\n", s.id, res.Cleared)
		}
		if res.LevelUp && gravity != nil && !phase.Terminal() {
			gravity.Reset(interval)
			s.logger.Printf("session %s: level up, drop interval %v\n", s.id, interval)
		}
		if phase.Terminal() && outroC == nil {
			if gravity != nil {
				gravity.Stop()
			}
			gravityC = nil
			outcome = phase
			outro = time.NewTimer(s.outroDelay)
			outroC = outro.C
			s.logger.Printf("session %s: %s\n", s.id, phase)
		}
	}

	for {
		select {
		case <-ctx.Done():
			s.logger.Printf("session %s: torn down: %v\n", s.id, ctx.Err())
			return ctx.Err()

		case <-intro.C:
			phase, interval := s.start()
			if phase.Terminal() {
				outcome = phase
				outro = time.NewTimer(s.outroDelay)
				outroC = outro.C
				s.logger.Printf("session %s: %s at spawn\n", s.id, phase)
				continue
			}
			gravity = time.NewTicker(interval)
			gravityC = gravity.C
			s.logger.Printf("session %s: playing, drop interval %v\n", s.id, interval)

		case <-gravityC:
			handle(ActionTick)

		case key := <-s.keys:
			if action, ok := key.Action(); ok {
				handle(action)
			}

		case <-outroC:
			s.finish(outcome)
			return nil
		}
	}
}

func (s *Session) start() (Phase, time.Duration) {
	s.m.Lock()
	defer s.m.Unlock()
	s.game.Start()
	return s.game.Phase(), s.game.DropInterval()
}

func (s *Session) apply(action Action) (Result, Phase, time.Duration) {
	s.m.Lock()
	defer s.m.Unlock()
	res := s.game.Apply(action)
	return res, s.game.Phase(), s.game.DropInterval()
}

func (s *Session) finish(outcome Phase) {
	switch outcome {
	case PhaseWon:
		if s.onWin != nil {
			s.onWin()
		}
	case PhaseLost:
		if s.onLose != nil {
			s.onLose()
		}
	}
}
