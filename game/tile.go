package game

import "fmt"

type Tile struct {
	idx int

	isMine, isRevealed, isMarked bool
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%d)", tile.idx)
}

func (tile *Tile) Index() int {
	return tile.idx
}

func (tile *Tile) IsMine() bool {
	return tile.isMine
}

func (tile *Tile) IsHidden() bool {
	return !tile.isRevealed
}

func (tile *Tile) IsMarked() bool {
	return tile.isMarked
}

// TileView is the read-only projection of a tile handed to renderers. Mined
// and Hint are only filled in once the tile is revealed.
type TileView struct {
	Index  int
	Hidden bool
	Marked bool
	Mined  bool
	Hint   int

	state TileState
}

func (view TileView) State() TileState {
	return view.state
}
