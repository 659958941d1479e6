package tictactoe

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxInvalidMoves bounds consecutive rejected moves before the
// controller gives up on the session.
const maxInvalidMoves = 5

// Controller runs a game as a text dialogue: it prompts the player to
// move, reads whitespace-separated tokens, and redraws the board after
// every accepted move. Entering "q" for either coordinate quits.
type Controller struct {
	in  io.Reader
	out io.Writer
}

// NewController wires a controller to its input and output streams.
func NewController(in io.Reader, out io.Writer) *Controller {
	return &Controller{in: in, out: out}
}

// Play drives one game to its end: a win, a tie, a quit, or exhausted
// input. Rows and columns are entered 1-based. Non-numeric tokens are
// re-prompted; rejected moves count toward a small cap, after which the
// session ends. The returned error reports output failures only.
func (c *Controller) Play(game *Game) error {
	scan := bufio.NewScanner(c.in)
	scan.Split(bufio.ScanWords)

	if err := c.printf("%s\n", game); err != nil {
		return err
	}

	invalid := 0
	for !game.Over() {
		if invalid >= maxInvalidMoves {
			return c.printf("Too many invalid inputs. Ending game.\n%s\n", game)
		}

		if err := c.printf("Enter a move for %s:\n", game.Turn()); err != nil {
			return err
		}

		row, quit, err := c.readCoordinate(scan)
		if err != nil || quit {
			if err != nil {
				return err
			}

			return c.printf("Game quit! Ending game state:\n%s\n", game)
		}
		col, quit, err := c.readCoordinate(scan)
		if err != nil || quit {
			if err != nil {
				return err
			}

			return c.printf("Game quit! Ending game state:\n%s\n", game)
		}

		if moveErr := game.Move(row-1, col-1); moveErr != nil {
			invalid++
			if err := c.printf("Not a valid move: %d, %d\n", row, col); err != nil {
				return err
			}

			continue
		}
		invalid = 0

		if err := c.printf("%s\n", game); err != nil {
			return err
		}
	}

	if winner := game.Winner(); winner != NoPlayer {
		return c.printf("Game is over! %s wins.\n", winner)
	}

	return c.printf("Game is over! Tie game.\n")
}

// readCoordinate reads one token, re-prompting on non-numeric input.
// quit is true when the player enters "q" or the input runs out.
func (c *Controller) readCoordinate(scan *bufio.Scanner) (n int, quit bool, err error) {
	for {
		if !scan.Scan() {
			return 0, true, scan.Err()
		}

		token := scan.Text()
		if strings.EqualFold(token, "q") {
			return 0, true, nil
		}

		n, convErr := strconv.Atoi(token)
		if convErr == nil {
			return n, false, nil
		}
		if err := c.printf("Not a valid number: %s\n", token); err != nil {
			return 0, false, err
		}
	}
}

func (c *Controller) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.out, format, args...)

	return err
}
