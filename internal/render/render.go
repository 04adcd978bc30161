// Package render formats actions, solutions, and boards for terminal
// output, per spec §6's output contract. It is the only package that
// knows about 1-based display indices; internal/game stays purely
// structural.
package render

import (
	"fmt"
	"io"

	"github.com/FA555/SISSU/internal/game"
)

func placeString(p game.Place) string {
	switch p.Kind {
	case game.PlaceTray:
		return fmt.Sprintf("Tray %d", p.Index+1)
	case game.PlaceSlot:
		return fmt.Sprintf("Slot %d", p.Index+1)
	default:
		panic("render: unknown place kind")
	}
}

// ActionString formats a single action per spec §6.
func ActionString(a game.Action) string {
	switch a.Kind {
	case game.ActionPop:
		return fmt.Sprintf("Pop from %s", placeString(a.Src))
	case game.ActionMove:
		return fmt.Sprintf("Move %d cards from %s to %s", a.Count, placeString(a.Src), placeString(a.Dst))
	case game.ActionCollapse:
		return fmt.Sprintf("Collapse %s Dragon", a.Color)
	default:
		panic("render: unknown action kind")
	}
}

// Solution writes the "Found solution ..." header followed by one
// "Step i: ..." line per action.
func Solution(w io.Writer, actions []game.Action, iterations int) {
	fmt.Fprintf(w, "Found solution of %d step(s) in %d iterations\n", len(actions), iterations)
	for i, a := range actions {
		fmt.Fprintf(w, "Step %d: %s\n", i+1, ActionString(a))
	}
}

// NoSolution writes the exact line spec §6 requires for an unsolvable
// deal.
func NoSolution(w io.Writer) {
	fmt.Fprintln(w, "No solution found")
}

// Progress writes the "Iteration n" line emitted every LogEvery
// iterations during the search.
func Progress(w io.Writer, iteration int) {
	fmt.Fprintf(w, "Iteration %d\n", iteration)
}

func cardString(c game.Card) string {
	switch c.Kind {
	case game.CardNumber:
		return fmt.Sprintf("(%s %d)", c.Color, c.Rank)
	case game.CardDragon:
		return fmt.Sprintf("(%s Dragon)", c.Color)
	case game.CardFlower:
		return "(Flower)"
	case game.CardCollapsedDragon:
		return "(Full)"
	default:
		return "()"
	}
}

// Board writes a human-readable dump of an entire board: the slots
// first, then each tray. Useful for eyeballing what auto-foundation did
// to a raw deal.
func Board(w io.Writer, s *game.State) {
	fmt.Fprint(w, "[ ")
	for i := 0; i < game.SlotCount; i++ {
		card := s.SlotCard(i)
		if card.Kind == game.CardEmpty {
			fmt.Fprint(w, "() ")
		} else {
			fmt.Fprintf(w, "%s ", cardString(card))
		}
	}
	fmt.Fprintln(w, "]")

	for i := 0; i < game.TrayCount; i++ {
		fmt.Fprintf(w, "Tray %d: ", i+1)
		for _, card := range s.TrayCards(i) {
			fmt.Fprintf(w, "%s ", cardString(card))
		}
		fmt.Fprintln(w)
	}
}
