package puzzle

import "time"

const (
	LinesPerLevel   = 3
	DefaultWinLines = 5

	baseDropInterval = time.Second
	dropIntervalPad  = 100 * time.Millisecond
	minDropInterval  = 150 * time.Millisecond
)

// Score is the session's line counter. Level and drop interval are derived
// from it and never stored.
type Score struct {
	linesCleared int
}

func (s Score) LinesCleared() int {
	return s.linesCleared
}

func (s Score) Level() int {
	return s.linesCleared / LinesPerLevel
}

func (s Score) DropInterval() time.Duration {
	return DropInterval(s.Level())
}

// add records cleared rows and reports whether the level went up.
func (s *Score) add(cleared int) (levelUp bool) {
	if cleared <= 0 {
		return false
	}
	before := s.Level()
	s.linesCleared += cleared
	return s.Level() > before
}

// DropInterval is max(150ms, 1s/(level+1) + 100ms).
func DropInterval(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	d := baseDropInterval/time.Duration(level+1) + dropIntervalPad
	if d < minDropInterval {
		return minDropInterval
	}
	return d
}
