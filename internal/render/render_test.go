package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Kopcheni1/BattleShip/internal/combat"
	"github.com/Kopcheni1/BattleShip/internal/render"
)

func testBoard(t *testing.T) *combat.Board {
	t.Helper()
	b := combat.NewBoard(6)
	if err := b.PlaceShip(combat.NewShip(combat.Coord{Row: 0, Col: 0}, 2, combat.Horizontal)); err != nil {
		t.Fatal(err)
	}
	b.BeginPlay()
	for _, at := range []combat.Coord{{Row: 0, Col: 0}, {Row: 5, Col: 5}} {
		if _, err := b.Shoot(at); err != nil {
			t.Fatal(err)
		}
	}
	return b
}

func TestRenderer_Board(t *testing.T) {
	r := &render.Renderer{}
	b := testBoard(t)

	lines := strings.Split(r.Board(b), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7", len(lines))
	}
	want := []string{
		"  | 1 | 2 | 3 | 4 | 5 | 6 |",
		"1 | X | ▲ | ≈ | ≈ | ≈ | ≈ |",
		"6 | ≈ | ≈ | ≈ | ≈ | ≈ | . |",
	}
	for i, line := range []string{lines[0], lines[1], lines[6]} {
		if line != want[i] {
			t.Errorf("line %q, want %q", line, want[i])
		}
	}

	b.SetHidden(true)
	hidden := r.Board(b)
	if strings.Contains(hidden, "▲") {
		t.Error("hidden board shows a ship")
	}
	if !strings.Contains(hidden, "X") {
		t.Error("hidden board must still show hits")
	}
}

func TestRenderer_Color(t *testing.T) {
	r := &render.Renderer{Color: true}
	out := r.Board(testBoard(t))
	if !strings.Contains(out, "\x1b[31mX\x1b[0m") {
		t.Errorf("hit is not coloured:\n%q", out)
	}
}

func TestNarrator(t *testing.T) {
	var buf bytes.Buffer
	n := render.NewNarrator(&buf)
	n.Handle(combat.Event{Turn: 2, Shot: 3, Side: "Computer", Type: combat.EvTurnStart})
	n.Handle(combat.Event{Turn: 3, Side: "Computer", Type: combat.EvSunk, Payload: map[string]any{
		"row": 2, "col": 4, "length": 1, "afloat": 2,
	}})
	n.Handle(combat.Event{Turn: 3, Side: "Computer", Type: combat.EvMatchEnd, Payload: map[string]any{"shots": 1500}})

	out := buf.String()
	for _, want := range []string{
		"3rd volley: Computer to fire!",
		"Computer fires at 3 5",
		"Ship sunk! 2 ships still afloat.",
		"Computer wins after 1,500 shots!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
}

func TestNarrator_RejectionsUsePlayerCoordinates(t *testing.T) {
	var buf bytes.Buffer
	n := render.NewNarrator(&buf)
	n.Handle(combat.Event{Side: "Player", Type: combat.EvShotRejected, Payload: map[string]any{
		"row": 6, "col": 0, "size": 6, "reason": combat.RejectOutOfBounds,
		"error": "shot at (6, 0) is outside the 6x6 board",
	}})
	n.Handle(combat.Event{Side: "Player", Type: combat.EvShotRejected, Payload: map[string]any{
		"row": 2, "col": 4, "size": 6, "reason": combat.RejectAlreadyFired,
		"error": "cell (2, 4) was already fired upon",
	}})

	out := buf.String()
	for _, want := range []string{
		"7 1 is off the board, rows and columns run 1 to 6.",
		"3 5 was already fired upon, pick another cell.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("narration lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "(6, 0)") || strings.Contains(out, "(2, 4)") {
		t.Errorf("narration leaks zero-based coordinates:\n%s", out)
	}
}
