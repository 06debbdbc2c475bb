// Package console reads shot coordinates typed by a human player.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/Kopcheni1/BattleShip/internal/combat"
)

var (
	ErrNeedTwo   = errors.New("enter both coordinates: row and column")
	ErrNotNumber = errors.New("coordinates must be whole numbers")
)

// ParseCoord reads "row col", both 1-based, into a zero-based Coord. Range is
// left to the board, which answers with an OutOfBoundsError.
func ParseCoord(line string) (combat.Coord, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return combat.Coord{}, ErrNeedTwo
	}
	var v [2]int
	for i, p := range parts {
		if strings.IndexFunc(p, func(r rune) bool { return !unicode.IsDigit(r) }) >= 0 {
			return combat.Coord{}, ErrNotNumber
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return combat.Coord{}, ErrNotNumber
		}
		v[i] = n
	}
	return combat.Coord{Row: v[0] - 1, Col: v[1] - 1}, nil
}

// Prompter is a combat.TargetSource over a line-oriented reader. Malformed
// lines are reported on out and the prompt repeats.
type Prompter struct {
	Prompt string
	in     *bufio.Scanner
	out    io.Writer
}

func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{Prompt: "Your move: ", in: bufio.NewScanner(r), out: w}
}

func (p *Prompter) NextTarget() (combat.Coord, error) {
	for {
		fmt.Fprint(p.out, p.Prompt)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return combat.Coord{}, err
			}
			return combat.Coord{}, io.EOF
		}
		c, err := ParseCoord(p.in.Text())
		if err != nil {
			fmt.Fprintf(p.out, " %v \n", err)
			continue
		}
		return c, nil
	}
}
