package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func TestGameConfigValidate(t *testing.T) {
	tests := []struct {
		name     string
		config   GameConfig
		expected error
	}{
		{"defaults", NewGameConfig(), nil},
		{"no mines", GameConfig{Width: 4, Height: 4}, nil},
		{"all mines", GameConfig{Width: 4, Height: 4, NumMines: 16}, nil},
		{"zero width", GameConfig{Height: 4}, ErrInvalidDimensions},
		{"too many mines", GameConfig{Width: 4, Height: 4, NumMines: 17}, ErrInvalidMineCount},
		{"layout wins", GameConfig{Layout: &Layout{Board: "*."}}, nil},
		{"bad layout", GameConfig{Layout: &Layout{Board: "?"}}, ErrInvalidLayout},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.config.Validate()
			if tc.expected == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tc.expected != nil && !errors.Is(err, tc.expected) {
				t.Errorf("error = %v, expected %v", err, tc.expected)
			}
		})
	}
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gosweep.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, "width: 9\nheight: 9\nmines: 10\nseed: 5\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Width != 9 || config.Height != 9 || config.NumMines != 10 || config.Seed != 5 {
		t.Errorf("LoadConfig() = %+v", config)
	}

	config, err = LoadConfig(writeConfig(t, "mines: 10\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if config.Width != DefaultWidth || config.Height != DefaultHeight {
		t.Errorf("missing keys should keep defaults, got %dx%d", config.Width, config.Height)
	}

	config, err = LoadConfig(writeConfig(t, "layout:\n  board: |\n    *..\n    ...\n"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	config.Logger = quietLogger()
	game, err := NewGame(config)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	if game.Width() != 3 || game.Height() != 2 || game.NumMines() != 1 {
		t.Errorf("layout game = %dx%d with %d mines", game.Width(), game.Height(), game.NumMines())
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, "width: 3\nheight: 3\nmines: 20\n")); !errors.Is(err, ErrInvalidMineCount) {
		t.Errorf("error = %v, expected ErrInvalidMineCount", err)
	}
	if _, err := LoadConfig(writeConfig(t, "width: -1\n")); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("error = %v, expected ErrInvalidDimensions", err)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}
