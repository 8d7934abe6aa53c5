// Package puzzle implements a falling-block puzzle: a fixed grid, one active
// piece at a time, gravity that speeds up with cleared lines, and a session
// that hands the outcome back to its host through win/lose callbacks.
package puzzle

type Action int

const (
	ActionTick Action = iota
	ActionGoLeft
	ActionGoRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
)

var actionNames = [...]string{"tick", "left", "right", "rotate", "soft-drop", "hard-drop"}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "unknown"
	}
	return actionNames[a]
}

// Key is one of the five keys a session listens to. Front-ends translate
// their own key events into Keys.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeySpace
)

// Action maps a key to the action it triggers while playing.
func (k Key) Action() (Action, bool) {
	switch k {
	case KeyLeft:
		return ActionGoLeft, true
	case KeyRight:
		return ActionGoRight, true
	case KeyUp:
		return ActionRotate, true
	case KeyDown:
		return ActionSoftDrop, true
	case KeySpace:
		return ActionHardDrop, true
	}
	return 0, false
}

type CompleteHandler interface {
	OnCompleted(rows int)
}

type CompleteHandlerFunc func(rows int)

func (f CompleteHandlerFunc) OnCompleted(rows int) {
	f(rows)
}
