package game

import "fmt"

// TileState is what a renderer should draw for a tile
type TileState int

const (
	Unrevealed TileState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineLosing
)

var TileStates = []TileState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineLosing,
}

type Status int

const (
	InProgress Status = iota
	Won
	Lost
)

func (status Status) String() string {
	switch status {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", int(status))
	}
}

// IsOver reports whether the status is terminal
func (status Status) IsOver() bool {
	return status == Won || status == Lost
}

// Classification of a tile: either a hint (number of adjacent mines, 0-8)
// or a mine.
type Classification int

const MineClass Classification = -1

func Hint(n int) Classification {
	return Classification(n)
}

func (class Classification) IsMine() bool {
	return class == MineClass
}

// Hint returns the number of adjacent mines. Only meaningful when !IsMine().
func (class Classification) Hint() int {
	if class.IsMine() {
		return 0
	}
	return int(class)
}

func (class Classification) String() string {
	if class.IsMine() {
		return "Mine"
	}
	return fmt.Sprintf("Hint(%d)", int(class))
}

const (
	DefaultWidth    = 30
	DefaultHeight   = 16
	DefaultNumMines = 99
)
