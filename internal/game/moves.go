package game

// ValidActions enumerates tier-1 (primary) actions: transient pops,
// stack-run moves between trays, dragon collapses, and slot-to-tray
// parking returns. The search driver only falls back to
// ValidSlotActions when this tier yields no novel states.
func (s *State) ValidActions() []Action {
	var actions []Action

	actions = append(actions, s.popActions()...)
	actions = append(actions, s.trayMoveActions()...)
	actions = append(actions, s.collapseActions()...)
	actions = append(actions, s.slotReturnActions()...)

	return actions
}

// ValidSlotActions enumerates tier-2 (fallback) stash-parking actions:
// moving any tray top into any empty slot.
func (s *State) ValidSlotActions() []Action {
	var actions []Action
	for i := range s.trays {
		if len(s.trays[i]) == 0 {
			continue
		}
		for j := range s.slots {
			if s.slots[j].Kind == CardEmpty {
				actions = append(actions, Move(TrayPlace(i), SlotPlace(j), 1))
			}
		}
	}
	return actions
}

func (s *State) popActions() []Action {
	var actions []Action
	for i := range s.trays {
		tray := s.trays[i]
		if len(tray) == 0 {
			continue
		}
		top := tray[len(tray)-1]
		if top.Kind == CardNumber && top.Rank == s.lowestEachColor[top.Color] {
			actions = append(actions, Pop(TrayPlace(i)))
		}
	}
	return actions
}

func (s *State) trayMoveActions() []Action {
	var actions []Action
	for i := range s.trays {
		tray := s.trays[i]
		n := len(tray)
		if n == 0 {
			continue
		}
		for j := n - 1; j >= 0; j-- {
			card := tray[j]
			count := n - j
			for k := range s.trays {
				if k == i {
					continue
				}
				other := s.trays[k]
				if len(other) > 0 {
					if CanBeStacked(card, other[len(other)-1]) {
						actions = append(actions, Move(TrayPlace(i), TrayPlace(k), count))
					}
				} else if j > 0 {
					// Moving the entire tray onto an empty tray is
					// forbidden: it would produce an equivalent state.
					actions = append(actions, Move(TrayPlace(i), TrayPlace(k), count))
				}
			}
			if j > 0 && !CanBeStacked(tray[j], tray[j-1]) {
				break
			}
		}
	}
	return actions
}

func (s *State) collapseActions() []Action {
	var actions []Action
	var exposed [3]int
	var slotHasDragon [3]bool
	anyEmptySlot := false

	for i := range s.trays {
		tray := s.trays[i]
		if len(tray) == 0 {
			continue
		}
		top := tray[len(tray)-1]
		if top.Kind == CardDragon {
			exposed[top.Color]++
		}
	}
	for i := range s.slots {
		switch s.slots[i].Kind {
		case CardEmpty:
			anyEmptySlot = true
		case CardDragon:
			exposed[s.slots[i].Color]++
			slotHasDragon[s.slots[i].Color] = true
		}
	}

	for _, c := range colors {
		if exposed[c] == DragonCount && (anyEmptySlot || slotHasDragon[c]) {
			actions = append(actions, Collapse(c))
		}
	}
	return actions
}

func (s *State) slotReturnActions() []Action {
	var actions []Action
	for i := range s.slots {
		card := s.slots[i]
		if card.Kind == CardEmpty || card.Kind == CardCollapsedDragon {
			continue
		}
		for j := range s.trays {
			tray := s.trays[j]
			if len(tray) == 0 {
				actions = append(actions, Move(SlotPlace(i), TrayPlace(j), 1))
			} else if CanBeStacked(card, tray[len(tray)-1]) {
				actions = append(actions, Move(SlotPlace(i), TrayPlace(j), 1))
			}
		}
	}
	return actions
}
