package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"reversi/game"
	"reversi/player"
)

// maxTurns bounds Run against a stalled pairing. A finished game needs at
// most 60 placements plus interleaved passes.
const maxTurns = 200

// LocalEngine drives one game between two players on a single board. The
// presentation layer reads cells, legal moves and history from here and
// advances the game one Step at a time; Run plays selector-only pairings to
// completion.
type LocalEngine struct {
	board   *game.Board
	black   player.Player
	white   player.Player
	history []game.HistoryAction
	toMove  game.Cell
}

func NewLocalEngine(black, white player.Player) *LocalEngine {
	black.SetColor(game.Black)
	white.SetColor(game.White)
	return &LocalEngine{
		board:  game.NewBoard(),
		black:  black,
		white:  white,
		toMove: game.Black,
	}
}

func (e *LocalEngine) Board() *game.Board { return e.board }

func (e *LocalEngine) History() []game.HistoryAction { return e.history }

func (e *LocalEngine) ToMove() game.Cell { return e.toMove }

func (e *LocalEngine) GameOver() bool { return e.board.IsGameOver() }

func (e *LocalEngine) current() player.Player {
	if e.toMove == game.White {
		return e.white
	}
	return e.black
}

// Step plays one turn for the side to move. The optional square is forwarded
// to interactively-driven players. A failed turn leaves the board and the
// turn order unchanged.
func (e *LocalEngine) Step(choice ...game.Square) (game.HistoryAction, error) {
	if e.board.IsGameOver() {
		return game.HistoryAction{}, fmt.Errorf("game is over - no moves allowed")
	}

	action, err := e.current().PlayTurn(e.board, choice...)
	if err != nil {
		return game.HistoryAction{}, err
	}

	if action.Pass() {
		log.Debug().Stringer("color", action.Mover).Msg("forced pass")
	} else {
		log.Debug().Stringer("color", action.Mover).
			Str("move", action.Notation).
			Int("gained", action.Gained).
			Msg("move played")
	}

	e.history = append(e.history, action)
	e.toMove = e.toMove.Opponent()
	return action, nil
}

// Run plays the game to completion and returns the winner. The second result
// is false on an exact tie. Both players must be selector-driven.
func (e *LocalEngine) Run() (game.Cell, bool, error) {
	for turn := 0; !e.board.IsGameOver(); turn++ {
		if turn >= maxTurns {
			return game.Empty, false, fmt.Errorf("no game over after %d turns", maxTurns)
		}
		if _, err := e.Step(); err != nil {
			return game.Empty, false, err
		}
	}

	winner, decided := e.board.Winner()
	log.Info().
		Int("black", e.board.Discs(game.Black)).
		Int("white", e.board.Discs(game.White)).
		Stringer("winner", winner).
		Bool("tie", !decided).
		Msg("game over")
	return winner, decided, nil
}
