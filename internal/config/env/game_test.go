package env_test

import (
	"os"
	"path/filepath"
	"testing"

	"jackpot_backend/internal/config/env"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewGameConfigFromYAML(t *testing.T) {
	path := writeConfig(t, `
game:
  base_probability: 0.0001
  bonus_per_token: 0.001
  bonus_cap: 0.05
  max_probability: 0.1
  default_jackpot: 1000
  starting_balance: 100
  history_limit: 10
`)

	cfg, err := env.NewGameConfigFromYAML(path)
	if err != nil {
		t.Fatalf("NewGameConfigFromYAML: %v", err)
	}

	if cfg.BaseProbability() != 0.0001 {
		t.Errorf("base probability = %v", cfg.BaseProbability())
	}
	if cfg.BonusCap() != 0.05 {
		t.Errorf("bonus cap = %v", cfg.BonusCap())
	}
	if cfg.DefaultJackpot() != 1000 {
		t.Errorf("default jackpot = %v", cfg.DefaultJackpot())
	}
	if cfg.StartingBalance() != 100 {
		t.Errorf("starting balance = %v", cfg.StartingBalance())
	}
	if cfg.HistoryLimit() != 10 {
		t.Errorf("history limit = %v", cfg.HistoryLimit())
	}
}

func TestNewGameConfigFromYAMLRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"missing file entirely", ""},
		{"zero probability", `
game:
  base_probability: 0
  bonus_per_token: 0.001
  bonus_cap: 0.05
  max_probability: 0.1
  default_jackpot: 1000
  starting_balance: 100
  history_limit: 10
`},
		{"negative jackpot", `
game:
  base_probability: 0.0001
  bonus_per_token: 0.001
  bonus_cap: 0.05
  max_probability: 0.1
  default_jackpot: -5
  starting_balance: 100
  history_limit: 10
`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "missing.yaml")
			if tc.content != "" {
				path = writeConfig(t, tc.content)
			}
			if _, err := env.NewGameConfigFromYAML(path); err == nil {
				t.Error("expected error")
			}
		})
	}
}
