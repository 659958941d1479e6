package tictactoe

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidMove reports a move to a cell that is out of bounds or
	// already marked.
	ErrInvalidMove = errors.New("tictactoe: invalid move")
	// ErrGameOver reports a move attempted after the game has finished.
	ErrGameOver = errors.New("tictactoe: game is over")
)

// boardSize is the side length of the board.
const boardSize = 3

// Player is a board mark. The zero value NoPlayer marks an empty cell.
type Player int8

const (
	NoPlayer Player = iota
	X
	O
)

// String returns "X" or "O", or a single space for NoPlayer so empty
// cells render cleanly on the board.
func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}

	return " "
}

// Game holds one game of tic-tac-toe. Use New; X always moves first.
type Game struct {
	board  [boardSize][boardSize]Player
	turn   Player
	winner Player
	over   bool
}

// New returns an empty board with X to move.
func New() *Game {
	return &Game{turn: X}
}

// Move marks the cell at (row, col) for the player whose turn it is,
// then either ends the game or passes the turn to the other player.
// Rows and columns are 0-based.
func (g *Game) Move(row, col int) error {
	if g.over {
		return ErrGameOver
	}
	if !inBounds(row, col) {
		return fmt.Errorf("%w: position (%d, %d) is out of bounds", ErrInvalidMove, row, col)
	}
	if g.board[row][col] != NoPlayer {
		return fmt.Errorf("%w: position (%d, %d) is occupied", ErrInvalidMove, row, col)
	}

	g.board[row][col] = g.turn

	switch {
	case g.wonBy(row, col):
		g.over = true
		g.winner = g.turn
		g.turn = NoPlayer
	case g.full():
		g.over = true // tie
		g.turn = NoPlayer
	case g.turn == X:
		g.turn = O
	default:
		g.turn = X
	}

	return nil
}

// Turn returns the player to move, or NoPlayer once the game is over.
func (g *Game) Turn() Player { return g.turn }

// Over reports whether the game has finished by win or tie.
func (g *Game) Over() bool { return g.over }

// Winner returns the winning player, or NoPlayer if nobody has won.
func (g *Game) Winner() Player { return g.winner }

// MarkAt returns the mark at (row, col), NoPlayer for an empty cell.
func (g *Game) MarkAt(row, col int) (Player, error) {
	if !inBounds(row, col) {
		return NoPlayer, fmt.Errorf("%w: position (%d, %d) is out of bounds",
			ErrInvalidMove, row, col)
	}

	return g.board[row][col], nil
}

// Board returns a copy of the board; mutating it does not affect the game.
func (g *Game) Board() [boardSize][boardSize]Player {
	return g.board
}

// Equal reports whether two games have the same board, turn, and outcome.
func (g *Game) Equal(other *Game) bool {
	if g == nil || other == nil {
		return g == other
	}

	return *g == *other
}

// String renders the board with " | " between cells and dashed lines
// between rows.
func (g *Game) String() string {
	var b strings.Builder
	for r := 0; r < boardSize; r++ {
		if r > 0 {
			b.WriteString("\n-----------\n")
		}
		b.WriteString(" ")
		for c := 0; c < boardSize; c++ {
			if c > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(g.board[r][c].String())
		}
	}

	return b.String()
}

// wonBy checks the row, column, and diagonals through the last move.
func (g *Game) wonBy(row, col int) bool {
	b := &g.board
	if b[row][0] != NoPlayer && b[row][0] == b[row][1] && b[row][1] == b[row][2] {
		return true
	}
	if b[0][col] != NoPlayer && b[0][col] == b[1][col] && b[1][col] == b[2][col] {
		return true
	}
	if b[0][0] != NoPlayer && b[0][0] == b[1][1] && b[1][1] == b[2][2] {
		return true
	}

	return b[0][2] != NoPlayer && b[0][2] == b[1][1] && b[1][1] == b[2][0]
}

func (g *Game) full() bool {
	for r := 0; r < boardSize; r++ {
		for c := 0; c < boardSize; c++ {
			if g.board[r][c] == NoPlayer {
				return false
			}
		}
	}

	return true
}

func inBounds(row, col int) bool {
	return row >= 0 && row < boardSize && col >= 0 && col < boardSize
}
