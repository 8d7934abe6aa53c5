package opponent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltin(t *testing.T) {
	r := Builtin()
	require.NotEmpty(t, r.Opponents)

	first, err := r.Pick("")
	require.NoError(t, err)
	assert.Equal(t, r.Opponents[0], first)

	envoy, err := r.Pick("envoy")
	require.NoError(t, err)
	assert.Equal(t, "The Envoy", envoy.Name)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "opponents.yaml")
	rosterYAML := `opponents:
  - id: general
    name: "The General"
    title: "Joint Chiefs"
    taunt: "Hold the line."
  - id: aide
`
	require.NoError(t, os.WriteFile(path, []byte(rosterYAML), 0o600))

	r, err := Load(path)
	require.NoError(t, err)
	require.Len(t, r.Opponents, 2)
	assert.Equal(t, "Joint Chiefs", r.Opponents[0].Title)
	assert.Equal(t, "aide", r.Opponents[1].Name)

	_, err = r.Pick("nobody")
	assert.EqualError(t, err, `unknown opponent "nobody"`)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	tests := []struct {
		name, yaml, want string
	}{
		{"empty", "opponents: []\n", "parsing opponents: roster is empty"},
		{"missing id", "opponents:\n  - name: x\n", "parsing opponents: entry 0 has no id"},
		{"duplicate", "opponents:\n  - id: a\n  - id: a\n", `parsing opponents: duplicate id "a"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.EqualError(t, err, tt.want)
		})
	}

	_, err = Parse([]byte("opponents: ["))
	assert.Error(t, err)
}
