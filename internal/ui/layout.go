package ui

// Layout arranges panels on the screen, top to bottom.
type Layout interface {
	Panels() []Panel
}

const statusHeight = 1

// deckLayout is the roller filling the screen above a one-line status bar.
type deckLayout struct {
	roller *RollerView
}

func (l deckLayout) Panels() []Panel {
	return []Panel{
		{
			ID:   "roller",
			View: l.roller,
			Bounds: func(width, height int) (int, int, int, int) {
				return 0, 0, width, max(1, height-statusHeight)
			},
		},
		{
			ID: "status",
			Bounds: func(width, height int) (int, int, int, int) {
				return 0, max(1, height-statusHeight), width, statusHeight
			},
		},
	}
}
