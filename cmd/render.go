package cmd

import (
	"fmt"
	"io"

	"github.com/they4kman/gosweep/game"
)

var tileGlyphs = map[game.TileState]byte{
	game.Unrevealed: '#',
	game.Empty:      '.',
	game.Number1:    '1',
	game.Number2:    '2',
	game.Number3:    '3',
	game.Number4:    '4',
	game.Number5:    '5',
	game.Number6:    '6',
	game.Number7:    '7',
	game.Number8:    '8',
	game.Flag:       'F',
	game.FlagWrong:  'x',
	game.Mine:       '*',
	game.MineLosing: 'X',
}

// renderBoard draws the board with column numbers on top and row numbers on
// the left, preceded by the remaining-mines counter
func renderBoard(w io.Writer, g *game.Game) {
	fmt.Fprintf(w, "mines: %03d", g.RemainingMines())
	switch g.Status() {
	case game.Won:
		fmt.Fprint(w, "   WIN!")
	case game.Lost:
		fmt.Fprint(w, "   LOSE :(")
	}
	fmt.Fprintln(w)

	if g.Width() > 10 {
		fmt.Fprint(w, "     ")
		for col := 0; col < g.Width(); col++ {
			if col >= 10 {
				fmt.Fprintf(w, " %d", (col/10)%10)
			} else {
				fmt.Fprint(w, "  ")
			}
		}
		fmt.Fprintln(w)
	}

	fmt.Fprint(w, "     ")
	for col := 0; col < g.Width(); col++ {
		fmt.Fprintf(w, " %d", col%10)
	}
	fmt.Fprintln(w)

	tiles := g.Tiles()
	for row := 0; row < g.Height(); row++ {
		fmt.Fprintf(w, "%3d |", row)
		for col := 0; col < g.Width(); col++ {
			fmt.Fprintf(w, " %c", tileGlyphs[tiles[g.IndexOf(row, col)].State()])
		}
		fmt.Fprintln(w)
	}
}
