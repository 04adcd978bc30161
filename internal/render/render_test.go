package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/FA555/SISSU/internal/game"
)

func TestActionStringPop(t *testing.T) {
	require.Equal(t, "Pop from Tray 1", ActionString(game.Pop(game.TrayPlace(0))))
}

func TestActionStringMove(t *testing.T) {
	got := ActionString(game.Move(game.TrayPlace(2), game.SlotPlace(1), 3))
	require.Equal(t, "Move 3 cards from Tray 3 to Slot 2", got)
}

func TestActionStringCollapse(t *testing.T) {
	require.Equal(t, "Collapse Green Dragon", ActionString(game.Collapse(game.ColorGreen)))
}

func TestSolutionFormatsHeaderAndSteps(t *testing.T) {
	var buf bytes.Buffer
	actions := []game.Action{
		game.Pop(game.TrayPlace(0)),
		game.Collapse(game.ColorRed),
	}
	Solution(&buf, actions, 42)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, "Found solution of 2 step(s) in 42 iterations", lines[0])
	require.Equal(t, "Step 1: Pop from Tray 1", lines[1])
	require.Equal(t, "Step 2: Collapse Red Dragon", lines[2])
}

func TestNoSolutionText(t *testing.T) {
	var buf bytes.Buffer
	NoSolution(&buf)
	require.Equal(t, "No solution found\n", buf.String())
}

func TestProgressText(t *testing.T) {
	var buf bytes.Buffer
	Progress(&buf, 10000)
	require.Equal(t, "Iteration 10000\n", buf.String())
}

func TestBoardListsSlotsAndTrays(t *testing.T) {
	trays := [game.TrayCount][]game.Card{}
	// Black 2 buried under Green 3 survives normalization untouched
	// (see internal/game's foundation tests), so the board dump should
	// show both cards exactly as dealt.
	trays[0] = []game.Card{game.NewNumber(game.ColorBlack, 2), game.NewNumber(game.ColorGreen, 3)}
	var slots [game.SlotCount]game.Card
	slots[0] = game.NewDragon(game.ColorBlack)
	state := game.BuildRoot(trays, slots)

	var buf bytes.Buffer
	Board(&buf, state)

	out := buf.String()
	require.Contains(t, out, "(Black Dragon)")
	require.Contains(t, out, "Tray 1: (Black 2) (Green 3)")
	require.Contains(t, out, "Tray 2: ")
}
