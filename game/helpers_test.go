package game

import (
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/gosweep/util/collections"
)

func quietLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

// newLayoutGame builds a game whose mines follow the given rows
func newLayoutGame(t *testing.T, rows ...string) *Game {
	t.Helper()

	config := GameConfig{
		Layout: &Layout{Board: strings.Join(rows, "\n")},
		Logger: quietLogger(),
	}
	game, err := NewGame(config)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return game
}

func newRandomGame(t *testing.T, width, height, numMines int, seed int64) *Game {
	t.Helper()

	config := GameConfig{
		Width:    width,
		Height:   height,
		NumMines: numMines,
		Seed:     seed,
		Logger:   quietLogger(),
	}
	game, err := NewGame(config)
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}
	return game
}

func revealedSafe(game *Game) collections.Set[int] {
	revealed := make(collections.Set[int])
	for idx, tile := range game.board.tiles {
		if tile.isRevealed && !tile.isMine {
			revealed.Add(idx)
		}
	}
	return revealed
}

func mustReveal(t *testing.T, game *Game, idx int) Status {
	t.Helper()

	status, err := game.Reveal(idx)
	if err != nil {
		t.Fatalf("Reveal(%d) error = %v", idx, err)
	}
	return status
}
