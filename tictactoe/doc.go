// Package tictactoe implements the classic 3x3 two-player game as a small
// model plus a console controller.
//
// What:
//   - Game — the board state, whose turn it is, and win/tie detection.
//     Moves are validated: out-of-bounds or occupied cells are rejected,
//     and no move is accepted once the game is over.
//   - Controller — a text loop over an io.Reader/io.Writer pair. Players
//     type 1-based row and column numbers, or "q" to quit.
//
// Why:
//   - The model is pure state with no I/O, so it can be driven by tests,
//     by the console controller, or by any other front end.
//
// Rendering:
//   - Game.String draws the board the traditional way, with " | "
//     between cells and a dashed line between rows.
//
// Errors:
//   - ErrInvalidMove — the cell is out of bounds or already marked.
//   - ErrGameOver — a move was attempted after the game finished.
package tictactoe
