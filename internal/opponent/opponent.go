package opponent

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/jauhararifin/puzzle"
)

//go:embed opponents.yaml
var builtinRoster []byte

// Roster is the list of opponents a player can face.
type Roster struct {
	Opponents []puzzle.Opponent `yaml:"opponents"`
}

// Load reads a roster from a YAML file.
func Load(path string) (*Roster, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading opponents file: %w", err)
	}
	return Parse(b)
}

// Builtin returns the roster shipped with the binary.
func Builtin() *Roster {
	r, err := Parse(builtinRoster)
	if err != nil {
		panic(fmt.Errorf("builtin roster: %w", err))
	}
	return r
}

func Parse(b []byte) (*Roster, error) {
	var r Roster
	if err := yaml.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parsing opponents: %w", err)
	}
	if len(r.Opponents) == 0 {
		return nil, fmt.Errorf("parsing opponents: roster is empty")
	}

	seen := make(map[string]bool, len(r.Opponents))
	for i, o := range r.Opponents {
		if o.ID == "" {
			return nil, fmt.Errorf("parsing opponents: entry %d has no id", i)
		}
		if seen[o.ID] {
			return nil, fmt.Errorf("parsing opponents: duplicate id %q", o.ID)
		}
		seen[o.ID] = true
		if o.Name == "" {
			r.Opponents[i].Name = o.ID
		}
	}
	return &r, nil
}

// Pick returns the opponent with the given id, or the first one when id is
// empty.
func (r *Roster) Pick(id string) (puzzle.Opponent, error) {
	if id == "" {
		return r.Opponents[0], nil
	}
	for _, o := range r.Opponents {
		if o.ID == id {
			return o, nil
		}
	}
	return puzzle.Opponent{}, fmt.Errorf("unknown opponent %q", id)
}
