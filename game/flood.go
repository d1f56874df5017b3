package game

import "github.com/gammazero/deque"

// cascade opens the area around a freshly revealed, unmined tile.
//
// A hidden neighbour of the tile being expanded is revealed if either the
// neighbour or the expanded tile has no adjacent mines. Only zero-hint tiles
// are expanded further. Tiles are queued on the hidden->revealed transition,
// so each is expanded at most once. Returns the number of tiles revealed.
func (game *Game) cascade(origin int) int {
	board := game.board
	numRevealed := 0

	var pending deque.Deque
	pending.PushBack(origin)

	for pending.Len() > 0 {
		idx := pending.PopFront().(int)
		isExpandingZero := board.classify(idx) == Hint(0)

		for _, neighbour := range board.neighbours(idx) {
			tile := &board.tiles[neighbour]
			if tile.isRevealed || tile.isMine {
				continue
			}

			if board.classify(neighbour) == Hint(0) {
				game.unmarkAndReveal(tile)
				pending.PushBack(neighbour)
				numRevealed++
			} else if isExpandingZero {
				game.unmarkAndReveal(tile)
				numRevealed++
			}
		}
	}

	return numRevealed
}

func (game *Game) unmarkAndReveal(tile *Tile) {
	if tile.isMarked {
		tile.isMarked = false
		game.numMarked--
	}
	tile.isRevealed = true
}
