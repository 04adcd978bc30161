// Package deal loads and validates a Shenzhen Solitaire deal from the
// plain-text input format described in spec §6: one tray per line,
// whitespace-separated card tokens, slots always empty on input.
package deal

import (
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/FA555/SISSU/internal/game"
)

// Load reads path and parses it into TrayCount trays and SlotCount
// (always empty) slots. Lines beyond TrayCount are ignored; fewer
// lines than TrayCount leave the remaining trays empty, matching the
// original loader.
func Load(path string) ([game.TrayCount][]game.Card, [game.SlotCount]game.Card, error) {
	var trays [game.TrayCount][]game.Card
	var slots [game.SlotCount]game.Card

	data, err := os.ReadFile(path)
	if err != nil {
		return trays, slots, errors.Wrapf(err, "deal: reading %s", path)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for i, line := range lines {
		if i >= game.TrayCount {
			break
		}
		tokens := strings.Fields(line)
		tray := make([]game.Card, 0, len(tokens))
		for _, tok := range tokens {
			card, err := parseToken(tok)
			if err != nil {
				return trays, slots, errors.Wrapf(err, "deal: line %d", i+1)
			}
			tray = append(tray, card)
		}
		trays[i] = tray
	}

	return trays, slots, nil
}

func parseToken(tok string) (game.Card, error) {
	tok = strings.TrimSpace(tok)

	switch tok {
	case "f":
		return game.Flower(), nil
	case "dr":
		return game.NewDragon(game.ColorRed), nil
	case "dg":
		return game.NewDragon(game.ColorGreen), nil
	case "db":
		return game.NewDragon(game.ColorBlack), nil
	}

	if len(tok) == 2 {
		color, ok := parseColorChar(tok[0])
		rank := tok[1]
		if ok && rank >= '1' && rank <= '9' {
			return game.NewNumber(color, int8(rank-'0')), nil
		}
	}

	return game.Card{}, errors.Errorf("deal: unrecognized card token %q", tok)
}

func parseColorChar(c byte) (game.Color, bool) {
	switch c {
	case 'r':
		return game.ColorRed, true
	case 'g':
		return game.ColorGreen, true
	case 'b':
		return game.ColorBlack, true
	default:
		return 0, false
	}
}
