package chopsticks

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkahng/chopsticks/sticks"
)

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	rules, err := cfg.GameRules()
	require.NoError(t, err)
	assert.Equal(t, sticks.DefaultConfig(), rules)
}

func TestLoadConfig_File(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "chopsticks.hcl")
	src := `
rules {
  hands           = 3
  modulus         = 7
  starting_player = "b"
}

match {
  max_plies   = 50
  concurrency = 2
}
`
	require.NoError(t, os.WriteFile(filename, []byte(src), 0o644))

	cfg, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Match.MaxPlies)
	assert.Equal(t, 2, cfg.Match.Concurrency)

	rules, err := cfg.GameRules()
	require.NoError(t, err)
	assert.Equal(t, sticks.Config{NumHands: 3, Modulus: 7, Start: sticks.B}, rules)
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    *Config
		wantErr bool
	}{
		{
			name: "empty file",
			src:  "",
			want: DefaultConfig(),
		},
		{
			name: "partial rules",
			src:  "rules {\n  modulus = 6\n}\n",
			want: &Config{
				Rules: &RulesConfig{Hands: 2, Modulus: 6, StartingPlayer: "A"},
				Match: &MatchConfig{MaxPlies: DefaultMaxPlies, Concurrency: DefaultConcurrency},
			},
		},
		{
			name: "match only",
			src:  "match {\n  max_plies = 10\n}\n",
			want: &Config{
				Rules: &RulesConfig{Hands: 2, Modulus: 5, StartingPlayer: "A"},
				Match: &MatchConfig{MaxPlies: 10, Concurrency: DefaultConcurrency},
			},
		},
		{name: "syntax error", src: "rules {", wantErr: true},
		{name: "unknown attribute", src: "rules {\n  fingers = 5\n}\n", wantErr: true},
		{name: "modulus too small", src: "rules {\n  modulus = 1\n}\n", wantErr: true},
		{name: "too many hands", src: "rules {\n  hands = 9\n}\n", wantErr: true},
		{name: "unknown starting player", src: "rules {\n  starting_player = \"cpu\"\n}\n", wantErr: true},
		{name: "negative ply limit", src: "match {\n  max_plies = -1\n}\n", wantErr: true},
		{name: "negative concurrency", src: "match {\n  concurrency = -3\n}\n", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.src), "test.hcl")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestConfig_ValidateWrapsEngineErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rules.Modulus = 1
	assert.ErrorIs(t, cfg.Validate(), sticks.ErrInvalidConfiguration)
}
