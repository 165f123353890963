package navbar

// MenuState is the mobile dropdown state. Transition states for animation can
// be added here without changing callers that only ask IsOpen.
type MenuState uint8

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (m MenuState) String() string {
	switch m {
	case MenuOpen:
		return "open"
	default:
		return "closed"
	}
}

// IsOpen reports whether the dropdown panel is constructed.
func (m MenuState) IsOpen() bool { return m == MenuOpen }

// Toggled returns the opposite state.
func (m MenuState) Toggled() MenuState {
	if m.IsOpen() {
		return MenuClosed
	}
	return MenuOpen
}

// ToggleLabel is the accessible label of the menu button.
func (m MenuState) ToggleLabel() string {
	if m.IsOpen() {
		return "Close mobile menu"
	}
	return "Open mobile menu"
}

// Glyph names the icon drawn on the menu button.
func (m MenuState) Glyph() string {
	if m.IsOpen() {
		return "x"
	}
	return "menu"
}
