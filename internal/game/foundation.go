package game

// normalize applies auto-foundation to fixpoint (spec §4.3). It is
// run after BuildRoot's initial clone and after every Transit
// mutation, and defines the canonical form invariant I1: no Flower or
// rank-1 number is ever exposed, nor any number that is provably safe
// to foundation.
func (s *State) normalize() {
	for {
		changed := false

		var lowest [3]int8
		for i := range lowest {
			lowest[i] = 10
		}

		// Phase 1: left to right, unconditional removal at tray tops,
		// then fold the tray's remaining cards into lowest-per-color.
		for i := range s.trays {
			tray := s.trays[i]
			if len(tray) > 0 {
				top := tray[len(tray)-1]
				if top.Kind == CardFlower || (top.Kind == CardNumber && top.Rank == 1) {
					tray = tray[:len(tray)-1]
					s.trays[i] = tray
					changed = true
				}
			}
			for _, c := range s.trays[i] {
				if c.Kind == CardNumber && c.Rank < lowest[c.Color] {
					lowest[c.Color] = c.Rank
				}
			}
		}
		for _, c := range s.slots {
			if c.Kind == CardNumber && c.Rank < lowest[c.Color] {
				lowest[c.Color] = c.Rank
			}
		}
		s.lowestEachColor = lowest

		// Phase 2: conditional removal at every tray top and slot.
		for i := range s.trays {
			tray := s.trays[i]
			if len(tray) == 0 {
				continue
			}
			if isSafeToFoundation(tray[len(tray)-1], lowest) {
				s.trays[i] = tray[:len(tray)-1]
				changed = true
			}
		}
		for i := range s.slots {
			if isSafeToFoundation(s.slots[i], lowest) {
				s.slots[i] = Card{}
				changed = true
			}
		}

		if !changed {
			return
		}
	}
}

// isSafeToFoundation implements the conditional removal rule: ranks
// above 2 need every color's lowest remaining rank to be no smaller;
// rank 2 only needs its own color clear (rank 1 is handled
// unconditionally in phase 1, so it never reaches here).
func isSafeToFoundation(c Card, lowest [3]int8) bool {
	if c.Kind != CardNumber {
		return false
	}
	switch {
	case c.Rank > 2:
		for _, color := range colors {
			if c.Rank > lowest[color] {
				return false
			}
		}
		return true
	case c.Rank == 2:
		return c.Rank == lowest[c.Color]
	default:
		return false
	}
}
