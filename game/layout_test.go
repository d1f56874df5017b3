package game

import (
	"testing"

	"github.com/pkg/errors"
)

func TestLoadLayout(t *testing.T) {
	in := `
seed: 12
board: |
  *..
  .*.
`
	layout, err := LoadLayout(in)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v", err)
	}
	if layout.Seed != 12 {
		t.Errorf("Seed = %d, expected 12", layout.Seed)
	}

	width, height, mines, err := layout.parse()
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}
	if width != 3 || height != 2 || len(mines) != 2 || mines[0] != 0 || mines[1] != 4 {
		t.Errorf("parse() = %d, %d, %v", width, height, mines)
	}
}

func TestLoadLayoutInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not yaml", "board: [unclosed"},
		{"empty board", "board: ''"},
		{"ragged rows", "board: \"...\\n..\""},
		{"unknown tile", "board: \".x.\""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := LoadLayout(tc.in); !errors.Is(err, ErrInvalidLayout) {
				t.Errorf("error = %v, expected ErrInvalidLayout", err)
			}
		})
	}
}

func TestLayoutRoundTrip(t *testing.T) {
	game := newRandomGame(t, 6, 4, 7, 99)

	out, err := game.Layout().Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	layout, err := LoadLayout(out)
	if err != nil {
		t.Fatalf("LoadLayout() error = %v\n%s", err, out)
	}
	if layout.Seed != 99 || layout.Board != game.Layout().Board {
		t.Errorf("round trip = %+v, expected %+v", *layout, *game.Layout())
	}

	board, err := layout.createBoard()
	if err != nil {
		t.Fatalf("createBoard() error = %v", err)
	}
	if board.Width() != 6 || board.Height() != 4 || board.NumMines() != 7 {
		t.Errorf("board = %dx%d with %d mines", board.Width(), board.Height(), board.NumMines())
	}
	for idx := range board.tiles {
		if board.tiles[idx].isMine != game.board.tiles[idx].isMine {
			t.Errorf("tile %d mined = %v, expected %v", idx, board.tiles[idx].isMine, game.board.tiles[idx].isMine)
		}
	}
}
