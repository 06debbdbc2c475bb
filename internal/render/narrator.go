package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"

	"github.com/Kopcheni1/BattleShip/internal/combat"
)

var rule = strings.Repeat("-", 20)

// Narrator prints one match event at a time as player-facing text.
type Narrator struct {
	w io.Writer
}

func NewNarrator(w io.Writer) *Narrator { return &Narrator{w: w} }

func (n *Narrator) Greet() {
	fmt.Fprintln(n.w, rule)
	fmt.Fprintln(n.w, "  Welcome to")
	fmt.Fprintln(n.w, "  SEA BATTLE")
	fmt.Fprintln(n.w, rule)
	fmt.Fprintln(n.w, " enter a shot as: row col")
	fmt.Fprintln(n.w, " e.g. 3 5")
}

func (n *Narrator) Handle(ev combat.Event) {
	switch ev.Type {
	case combat.EvTurnStart:
		fmt.Fprintln(n.w, rule)
		fmt.Fprintf(n.w, "%s volley: %s to fire!\n", humanize.Ordinal(ev.Shot), ev.Side)
	case combat.EvShotRejected:
		fmt.Fprintln(n.w, rejectLine(ev))
	case combat.EvMiss, combat.EvHit, combat.EvSunk:
		fmt.Fprintf(n.w, "%s fires at %d %d\n", ev.Side, intOf(ev.Payload["row"])+1, intOf(ev.Payload["col"])+1)
		fmt.Fprintln(n.w, outcomeLine(ev))
	case combat.EvMatchEnd:
		fmt.Fprintln(n.w, rule)
		fmt.Fprintf(n.w, "%s wins after %s shots!\n", ev.Side, humanize.Comma(int64(intOf(ev.Payload["shots"]))))
	}
}

func outcomeLine(ev combat.Event) string {
	switch ev.Type {
	case combat.EvHit:
		return "A hit, the ship is damaged!"
	case combat.EvSunk:
		left := intOf(ev.Payload["afloat"])
		if left == 0 {
			return "Ship sunk! That was the last one."
		}
		return fmt.Sprintf("Ship sunk! %s still afloat.", english.Plural(left, "ship", ""))
	default:
		return "Splash, the shell missed!"
	}
}

// rejectLine uses the same 1-based coordinates the player typed.
func rejectLine(ev combat.Event) string {
	row, col := intOf(ev.Payload["row"])+1, intOf(ev.Payload["col"])+1
	if ev.Payload["reason"] == combat.RejectOutOfBounds {
		size := intOf(ev.Payload["size"])
		return fmt.Sprintf("%d %d is off the board, rows and columns run 1 to %d.", row, col, size)
	}
	return fmt.Sprintf("%d %d was already fired upon, pick another cell.", row, col)
}

func intOf(v any) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	default:
		return 0
	}
}
