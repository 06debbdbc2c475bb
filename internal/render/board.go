// Package render turns boards and match events into console text.
package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/Kopcheni1/BattleShip/internal/combat"
)

// Grid is the read-only board view the renderer needs; *combat.Board has it.
type Grid interface {
	Size() int
	Hidden() bool
	Grid() [][]combat.CellState
}

const (
	glyphWater = "≈"
	glyphShip  = "▲"
	glyphHit   = "X"
	glyphMiss  = "."
)

const (
	ansiReset = "\x1b[0m"
	ansiBlue  = "\x1b[34m"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiGray  = "\x1b[90m"
)

type Renderer struct {
	Color bool
}

// NewRenderer enables colour only when f is a terminal.
func NewRenderer(f *os.File) *Renderer {
	fd := f.Fd()
	return &Renderer{Color: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

// Board draws the grid with 1-based row and column labels. Ships are shown
// as water when the board is hidden.
func (r *Renderer) Board(g Grid) string {
	size := g.Size()
	w := len(strconv.Itoa(size))
	var sb strings.Builder

	sb.WriteString(strings.Repeat(" ", w) + " |")
	for c := 1; c <= size; c++ {
		fmt.Fprintf(&sb, " %*d |", w, c)
	}
	for i, row := range g.Grid() {
		fmt.Fprintf(&sb, "\n%*d |", w, i+1)
		for _, cell := range row {
			fmt.Fprintf(&sb, " %s%s |", strings.Repeat(" ", w-1), r.cell(cell, g.Hidden()))
		}
	}
	return sb.String()
}

func (r *Renderer) cell(s combat.CellState, hidden bool) string {
	glyph, color := glyphWater, ansiBlue
	switch s {
	case combat.CellShip:
		if !hidden {
			glyph, color = glyphShip, ansiGreen
		}
	case combat.CellHit:
		glyph, color = glyphHit, ansiRed
	case combat.CellMiss, combat.CellCleared:
		glyph, color = glyphMiss, ansiGray
	}
	if !r.Color {
		return glyph
	}
	return color + glyph + ansiReset
}
