package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/they4kman/gosweep/game"
)

const sessionHelp = `commands:
  r ROW COL   reveal a tile
  m ROW COL   mark or unmark a tile
  c ROW COL   reveal around a numbered tile whose mines are all marked
  n           start a new game
  l           print the mine layout (only once the game is over)
  q           quit
`

// session feeds line-based commands from a terminal into a game
type session struct {
	game *game.Game
	in   *bufio.Scanner
	out  io.Writer
}

func newSession(g *game.Game, in io.Reader, out io.Writer) *session {
	return &session{
		game: g,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

func (s *session) run() error {
	renderBoard(s.out, s.game)
	s.prompt()

	for s.in.Scan() {
		if quit := s.handle(strings.Fields(s.in.Text())); quit {
			return nil
		}
		s.prompt()
	}
	return s.in.Err()
}

func (s *session) prompt() {
	fmt.Fprint(s.out, "> ")
}

func (s *session) handle(args []string) (quit bool) {
	if len(args) == 0 {
		return false
	}

	switch args[0] {
	case "q", "quit":
		return true
	case "?", "help":
		fmt.Fprint(s.out, sessionHelp)
	case "n", "new":
		if err := s.game.Reset(); err != nil {
			s.reportError(err)
			return false
		}
		renderBoard(s.out, s.game)
	case "l", "layout":
		s.printLayout()
	case "r", "reveal", "m", "mark", "c", "chord":
		idx, err := s.parseTile(args[1:])
		if err != nil {
			s.reportError(err)
			return false
		}

		switch args[0][0] {
		case 'r':
			_, err = s.game.Reveal(idx)
		case 'm':
			err = s.game.ToggleMark(idx)
		case 'c':
			_, err = s.game.Chord(idx)
		}
		if err != nil {
			s.reportError(err)
			return false
		}

		renderBoard(s.out, s.game)
		if s.game.Status().IsOver() {
			fmt.Fprintf(s.out, "game %s (seed %d); n for a new game\n", s.game.Status(), s.game.Seed())
		}
	default:
		fmt.Fprintf(s.out, "unknown command %q, ? for help\n", args[0])
	}

	return false
}

func (s *session) parseTile(args []string) (int, error) {
	if len(args) != 2 {
		return 0, errors.New("expected ROW COL")
	}

	row, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Wrap(err, "row")
	}
	col, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, errors.Wrap(err, "column")
	}

	if row < 0 || row >= s.game.Height() || col < 0 || col >= s.game.Width() {
		return 0, errors.Errorf("(%d, %d) is off the board", row, col)
	}
	return s.game.IndexOf(row, col), nil
}

func (s *session) printLayout() {
	if !s.game.Status().IsOver() {
		fmt.Fprintln(s.out, "layout is only shown once the game is over")
		return
	}

	out, err := s.game.Layout().Serialize()
	if err != nil {
		s.reportError(err)
		return
	}
	fmt.Fprint(s.out, out)
}

func (s *session) reportError(err error) {
	fmt.Fprintf(s.out, "error: %v\n", err)
}
