package game

import (
	"math/rand"

	"github.com/pkg/errors"

	"github.com/they4kman/gosweep/util/collections"
)

// Board is the static tile grid: dimensions, mine layout and adjacency.
// Tiles are addressed by a single row-major index, column + row*width.
type Board struct {
	width, height int // in number of tiles
	tiles         []Tile

	mines       collections.Set[int]
	minesPlaced bool
}

// NewEmptyBoard creates a board with every tile hidden, unmarked and unmined
func NewEmptyBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}

	board := Board{
		width:  width,
		height: height,
		tiles:  make([]Tile, width*height),
		mines:  make(collections.Set[int]),
	}
	for idx := range board.tiles {
		board.tiles[idx].idx = idx
	}

	return &board, nil
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumTiles() int {
	return len(board.tiles)
}

func (board *Board) NumMines() int {
	return board.mines.Len()
}

// Contains reports whether idx addresses a tile of the board
func (board *Board) Contains(idx int) bool {
	return idx >= 0 && idx < len(board.tiles)
}

// IndexOf converts a (row, column) pair to a tile index
func (board *Board) IndexOf(row, col int) int {
	return col + row*board.width
}

// RowCol converts a tile index to its (row, column) pair
func (board *Board) RowCol(idx int) (int, int) {
	return idx / board.width, idx % board.width
}

// TileAt returns the tile at idx, or nil if out of range
func (board *Board) TileAt(idx int) *Tile {
	if !board.Contains(idx) {
		return nil
	}
	return &board.tiles[idx]
}

// PlaceMines mines mineCount distinct tiles, chosen uniformly at random.
// It may only be called once per board.
func (board *Board) PlaceMines(rng *rand.Rand, mineCount int) error {
	numTiles := len(board.tiles)
	if mineCount < 0 || mineCount > numTiles {
		return errors.Wrapf(ErrInvalidMineCount, "%d mines on %d tiles", mineCount, numTiles)
	}

	// Partial Fisher-Yates: only the first mineCount slots get shuffled
	tileIndexes := make([]int, numTiles)
	for i := range tileIndexes {
		tileIndexes[i] = i
	}
	for i := 0; i < mineCount; i++ {
		j := i + rng.Intn(numTiles-i)
		tileIndexes[i], tileIndexes[j] = tileIndexes[j], tileIndexes[i]
	}

	return board.placeMinesAt(tileIndexes[:mineCount])
}

func (board *Board) placeMinesAt(indexes []int) error {
	if board.minesPlaced {
		return ErrMinesAlreadyPlaced
	}

	for _, idx := range indexes {
		if !board.Contains(idx) {
			return errors.Wrapf(ErrInvalidMineCount, "mine index %d out of range", idx)
		}
		if board.mines.Contains(idx) {
			return errors.Wrapf(ErrInvalidMineCount, "duplicate mine index %d", idx)
		}
		board.mines.Add(idx)
		board.tiles[idx].isMine = true
	}
	board.minesPlaced = true

	return nil
}

// Neighbours returns the in-bounds indexes of the 8 tiles surrounding idx
func (board *Board) Neighbours(idx int) ([]int, error) {
	if !board.Contains(idx) {
		return nil, errors.Wrapf(ErrInvalidTileState, "index %d out of range", idx)
	}
	return board.neighbours(idx), nil
}

func (board *Board) neighbours(idx int) []int {
	row, col := board.RowCol(idx)
	out := make([]int, 0, 8)

	isAtTopBorder := row < 1
	isAtBottomBorder := row >= board.height-1

	if col >= 1 {
		out = append(out, idx-1)

		if !isAtTopBorder {
			out = append(out, idx-1-board.width)
		}
		if !isAtBottomBorder {
			out = append(out, idx-1+board.width)
		}
	}

	if col < board.width-1 {
		out = append(out, idx+1)

		if !isAtTopBorder {
			out = append(out, idx+1-board.width)
		}
		if !isAtBottomBorder {
			out = append(out, idx+1+board.width)
		}
	}

	if !isAtTopBorder {
		out = append(out, idx-board.width)
	}
	if !isAtBottomBorder {
		out = append(out, idx+board.width)
	}

	return out
}

// Classify returns MineClass if the tile at idx is mined, otherwise the
// number of mined neighbours
func (board *Board) Classify(idx int) (Classification, error) {
	if !board.Contains(idx) {
		return 0, errors.Wrapf(ErrInvalidTileState, "index %d out of range", idx)
	}
	return board.classify(idx), nil
}

func (board *Board) classify(idx int) Classification {
	if board.tiles[idx].isMine {
		return MineClass
	}

	numMines := 0
	for _, neighbour := range board.neighbours(idx) {
		if board.tiles[neighbour].isMine {
			numMines++
		}
	}
	return Hint(numMines)
}

// RevealAllMines unhides every mined tile. With exceptMarked, marked mines
// stay hidden.
func (board *Board) RevealAllMines(exceptMarked bool) {
	for idx := range board.mines {
		tile := &board.tiles[idx]
		if exceptMarked && tile.isMarked {
			continue
		}
		tile.isRevealed = true
	}
}

// allSafeRevealed reports whether every unmined tile has been revealed
func (board *Board) allSafeRevealed() bool {
	for idx := range board.tiles {
		tile := &board.tiles[idx]
		if !tile.isMine && !tile.isRevealed {
			return false
		}
	}
	return true
}

func (board *Board) numMarked() int {
	numMarked := 0
	for idx := range board.tiles {
		if board.tiles[idx].isMarked {
			numMarked++
		}
	}
	return numMarked
}
