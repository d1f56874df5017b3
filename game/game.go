package game

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Game is a single Minesweeper session: one board plus progress state.
// It is not safe for concurrent use.
type Game struct {
	config GameConfig
	log    logrus.FieldLogger

	seed int64
	rand *rand.Rand

	board     *Board
	status    Status
	numMarked int

	// index of the mine that lost the game, or -1
	losingIdx int
}

// New starts a game with randomly placed mines
func New(width, height, numMines int) (*Game, error) {
	config := NewGameConfig()
	config.Width, config.Height, config.NumMines = width, height, numMines
	return NewGame(config)
}

func NewGame(config GameConfig) (*Game, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 && config.Layout != nil {
		seed = config.Layout.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	game := &Game{
		config: config,
		log:    config.logger(),
	}
	if err := game.start(seed); err != nil {
		return nil, err
	}
	return game, nil
}

func (game *Game) start(seed int64) error {
	rng := rand.New(rand.NewSource(seed))

	var board *Board
	var err error
	if game.config.Layout != nil {
		board, err = game.config.Layout.createBoard()
	} else {
		board, err = NewEmptyBoard(game.config.Width, game.config.Height)
		if err == nil {
			err = board.PlaceMines(rng, game.config.NumMines)
		}
	}
	if err != nil {
		return err
	}

	game.seed = seed
	game.rand = rng
	game.board = board
	game.status = InProgress
	game.numMarked = 0
	game.losingIdx = -1

	game.log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.NumMines(),
		"seed":   seed,
	}).Debug("started game")

	return nil
}

// Reset throws away the board and starts over with a new seed drawn from
// the current game. A configured Layout is reused as-is.
func (game *Game) Reset() error {
	return game.start(game.rand.Int63())
}

func (game *Game) Status() Status {
	return game.status
}

func (game *Game) MarkedCount() int {
	return game.numMarked
}

// RemainingMines is the mine count minus the number of marks, which may go
// negative when the player over-marks
func (game *Game) RemainingMines() int {
	return game.board.NumMines() - game.numMarked
}

func (game *Game) Width() int {
	return game.board.width
}

func (game *Game) Height() int {
	return game.board.height
}

func (game *Game) NumTiles() int {
	return game.board.NumTiles()
}

func (game *Game) NumMines() int {
	return game.board.NumMines()
}

func (game *Game) Seed() int64 {
	return game.seed
}

func (game *Game) IndexOf(row, col int) int {
	return game.board.IndexOf(row, col)
}

func (game *Game) RowCol(idx int) (int, int) {
	return game.board.RowCol(idx)
}

// Layout captures the current mine placement along with the seed that
// produced it
func (game *Game) Layout() *Layout {
	return LayoutOf(game.board, game.seed)
}

func (game *Game) canPlay() bool {
	return game.status == InProgress
}

// tileFor validates idx for a mutating operation
func (game *Game) tileFor(idx int) (*Tile, error) {
	if !game.canPlay() {
		return nil, errors.Wrapf(ErrGameEnded, "game %s", game.status)
	}
	tile := game.board.TileAt(idx)
	if tile == nil {
		return nil, errors.Wrapf(ErrInvalidTileState, "index %d out of range", idx)
	}
	return tile, nil
}

func (game *Game) Mark(idx int) error {
	tile, err := game.tileFor(idx)
	if err != nil {
		return err
	}
	if tile.isRevealed {
		return errors.Wrapf(ErrInvalidTileState, "cannot mark revealed %s", tile)
	}
	if tile.isMarked {
		return errors.Wrapf(ErrInvalidTileState, "%s already marked", tile)
	}

	tile.isMarked = true
	game.numMarked++
	game.log.WithField("index", idx).Debug("marked tile")
	return nil
}

func (game *Game) Unmark(idx int) error {
	tile, err := game.tileFor(idx)
	if err != nil {
		return err
	}
	if !tile.isMarked {
		return errors.Wrapf(ErrInvalidTileState, "%s is not marked", tile)
	}

	tile.isMarked = false
	game.numMarked--
	game.log.WithField("index", idx).Debug("unmarked tile")
	return nil
}

// ToggleMark marks a hidden tile, or unmarks it if it is already marked
func (game *Game) ToggleMark(idx int) error {
	tile, err := game.tileFor(idx)
	if err != nil {
		return err
	}
	if tile.isMarked {
		return game.Unmark(idx)
	}
	return game.Mark(idx)
}

// Reveal uncovers a hidden, unmarked tile. Revealing a mine loses the game;
// otherwise the surrounding area is opened and the win condition checked.
func (game *Game) Reveal(idx int) (Status, error) {
	tile, err := game.tileFor(idx)
	if err != nil {
		return game.status, err
	}
	if tile.isRevealed {
		return game.status, errors.Wrapf(ErrInvalidTileState, "%s already revealed", tile)
	}
	if tile.isMarked {
		return game.status, errors.Wrapf(ErrInvalidTileState, "%s is marked", tile)
	}

	game.reveal(tile)
	return game.status, nil
}

func (game *Game) reveal(tile *Tile) {
	tile.isRevealed = true

	if tile.isMine {
		game.lose(tile.idx)
		return
	}

	numCascaded := game.cascade(tile.idx)
	game.log.WithFields(logrus.Fields{
		"index":    tile.idx,
		"cascaded": numCascaded,
	}).Debug("revealed tile")

	if game.board.allSafeRevealed() {
		game.win()
	}
}

// Chord reveals every hidden, unmarked neighbour of a revealed tile whose
// hint equals the number of marks around it
func (game *Game) Chord(idx int) (Status, error) {
	tile, err := game.tileFor(idx)
	if err != nil {
		return game.status, err
	}
	if !tile.isRevealed {
		return game.status, errors.Wrapf(ErrInvalidTileState, "cannot chord hidden %s", tile)
	}

	board := game.board
	neighbours := board.neighbours(idx)

	numMarkedNeighbours := 0
	for _, neighbour := range neighbours {
		if board.tiles[neighbour].isMarked && !board.tiles[neighbour].isRevealed {
			numMarkedNeighbours++
		}
	}
	if hint := board.classify(idx); hint != Hint(numMarkedNeighbours) {
		return game.status, errors.Wrapf(ErrInvalidTileState,
			"%s has %s but %d marked neighbours", tile, hint, numMarkedNeighbours)
	}

	for _, neighbour := range neighbours {
		if !game.canPlay() {
			break
		}
		other := &board.tiles[neighbour]
		if !other.isRevealed && !other.isMarked {
			game.reveal(other)
		}
	}

	return game.status, nil
}

func (game *Game) win() {
	game.board.RevealAllMines(false)
	game.status = Won
	game.log.WithField("seed", game.seed).Info("game won")
}

func (game *Game) lose(idx int) {
	game.board.RevealAllMines(true)
	game.status = Lost
	game.losingIdx = idx
	game.log.WithFields(logrus.Fields{
		"index": idx,
		"seed":  game.seed,
	}).Info("game lost")
}

// Tile returns the view of the tile at idx
func (game *Game) Tile(idx int) (TileView, error) {
	tile := game.board.TileAt(idx)
	if tile == nil {
		return TileView{}, errors.Wrapf(ErrInvalidTileState, "index %d out of range", idx)
	}
	return game.view(tile), nil
}

// Tiles returns views of every tile, in index order
func (game *Game) Tiles() []TileView {
	views := make([]TileView, len(game.board.tiles))
	for idx := range game.board.tiles {
		views[idx] = game.view(&game.board.tiles[idx])
	}
	return views
}

func (game *Game) view(tile *Tile) TileView {
	view := TileView{
		Index:  tile.idx,
		Hidden: !tile.isRevealed,
		Marked: tile.isMarked,
	}

	switch {
	case view.Hidden && tile.isMarked:
		view.state = Flag
		if game.status == Lost && !tile.isMine {
			view.state = FlagWrong
		}
	case view.Hidden:
		view.state = Unrevealed
	case tile.isMine:
		view.Mined = true
		switch {
		case tile.idx == game.losingIdx:
			view.state = MineLosing
		case tile.isMarked:
			view.state = Flag
		default:
			view.state = Mine
		}
	default:
		view.Hint = game.board.classify(tile.idx).Hint()
		view.state = TileState(view.Hint)
	}

	return view
}
