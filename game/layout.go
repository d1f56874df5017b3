package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	layoutMine = '*'
	layoutSafe = '.'
)

// Layout is a fixed mine placement, one text row per board row: '*' for a
// mine and '.' for a safe tile.
type Layout struct {
	Seed  int64  `yaml:"seed,omitempty"`
	Board string `yaml:"board"`
}

func (layout *Layout) Serialize() (string, error) {
	out, err := yaml.Marshal(layout)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func LoadLayout(in string) (*Layout, error) {
	var layout Layout
	if err := yaml.Unmarshal([]byte(in), &layout); err != nil {
		return nil, errors.Wrap(ErrInvalidLayout, err.Error())
	}
	if _, _, _, err := layout.parse(); err != nil {
		return nil, err
	}
	return &layout, nil
}

// LayoutOf captures the mine placement of a board
func LayoutOf(board *Board, seed int64) *Layout {
	var rows strings.Builder
	for row := 0; row < board.height; row++ {
		if row > 0 {
			rows.WriteByte('\n')
		}
		for col := 0; col < board.width; col++ {
			if board.tiles[board.IndexOf(row, col)].isMine {
				rows.WriteByte(layoutMine)
			} else {
				rows.WriteByte(layoutSafe)
			}
		}
	}

	return &Layout{Seed: seed, Board: rows.String()}
}

func (layout *Layout) parse() (width, height int, mines []int, err error) {
	rows := strings.Split(strings.TrimSpace(layout.Board), "\n")
	for i := range rows {
		rows[i] = strings.TrimSpace(rows[i])
	}

	height = len(rows)
	width = len(rows[0])
	if width == 0 {
		return 0, 0, nil, errors.Wrap(ErrInvalidLayout, "empty board")
	}

	for row, line := range rows {
		if len(line) != width {
			return 0, 0, nil, errors.Wrapf(ErrInvalidLayout,
				"row %d has %d tiles, expected %d", row, len(line), width)
		}

		for col, c := range line {
			switch c {
			case layoutMine:
				mines = append(mines, col+row*width)
			case layoutSafe:
			default:
				return 0, 0, nil, errors.Wrapf(ErrInvalidLayout,
					"unexpected %q at row %d, column %d", c, row, col)
			}
		}
	}

	return width, height, mines, nil
}

func (layout *Layout) createBoard() (*Board, error) {
	width, height, mines, err := layout.parse()
	if err != nil {
		return nil, err
	}

	board, err := NewEmptyBoard(width, height)
	if err != nil {
		return nil, err
	}
	if err := board.placeMinesAt(mines); err != nil {
		return nil, err
	}
	return board, nil
}
