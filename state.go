package puzzle

type Phase int

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	}
	return "unknown"
}

// Terminal reports whether the phase ends the session.
func (p Phase) Terminal() bool {
	return p == PhaseWon || p == PhaseLost
}
