package game

// ActionKind discriminates the three move-generator outputs.
type ActionKind uint8

const (
	ActionPop ActionKind = iota
	ActionMove
	ActionCollapse
)

// Action is the successor-generating operation produced by the move
// generator and consumed by State.Transit. Only the fields relevant to
// Kind are meaningful: Pop uses Src, Move uses Src/Dst/Count, Collapse
// uses Color.
type Action struct {
	Kind  ActionKind
	Src   Place
	Dst   Place
	Count int
	Color Color
}

// Pop builds a Pop action removing the top card of a tray.
func Pop(src Place) Action {
	return Action{Kind: ActionPop, Src: src}
}

// Move builds a Move action relocating a run of count cards.
func Move(src, dst Place, count int) Action {
	return Action{Kind: ActionMove, Src: src, Dst: dst, Count: count}
}

// Collapse builds a Collapse action for the given dragon color.
func Collapse(c Color) Action {
	return Action{Kind: ActionCollapse, Color: c}
}
