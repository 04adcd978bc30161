package deal

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/FA555/SISSU/internal/game"
)

// Validate checks the card multiset implied by trays and slots against
// the rules in spec §6: no more than DragonCount dragons per color, no
// rank appearing more than once per color, and no "lower rank present
// while a higher rank is missing" gap in the 9-down-to-1 sequence. Every
// violation found is collected, not just the first.
func Validate(trays [game.TrayCount][]game.Card, slots [game.SlotCount]game.Card) error {
	var dragonCount [3]int
	var rankSeen [3][10]int // index by rank 1..9, index 0 unused

	visit := func(c game.Card) {
		switch c.Kind {
		case game.CardDragon:
			dragonCount[c.Color]++
		case game.CardNumber:
			rankSeen[c.Color][c.Rank]++
		}
	}
	for i := range trays {
		for _, c := range trays[i] {
			visit(c)
		}
	}
	for i := range slots {
		visit(slots[i])
	}

	var errs *multierror.Error
	for _, color := range [3]game.Color{game.ColorRed, game.ColorGreen, game.ColorBlack} {
		if n := dragonCount[color]; n > game.DragonCount {
			errs = multierror.Append(errs, fmt.Errorf("%s: %d dragons present, at most %d allowed", color, n, game.DragonCount))
		}

		counts := rankSeen[color]
		for rank := int8(1); rank <= 9; rank++ {
			if n := counts[rank]; n > 1 {
				errs = multierror.Append(errs, fmt.Errorf("%s %d: rank appears %d times, at most 1 allowed", color, rank, n))
			}
		}

		missing := false
		for rank := int8(9); rank >= 1; rank-- {
			present := counts[rank] > 0
			switch {
			case !present:
				missing = true
			case missing:
				errs = multierror.Append(errs, fmt.Errorf("%s %d: present while a higher rank is missing", color, rank))
			}
		}
	}

	return errs.ErrorOrNil()
}
