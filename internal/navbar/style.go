package navbar

import (
	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// Style classifies a link against the current route.
type Style uint8

const (
	StyleInactive Style = iota
	StyleActive
)

func (s Style) String() string {
	if s == StyleActive {
		return "active"
	}
	return "inactive"
}

const (
	activeClasses   = "text-blue-600 dark:text-blue-400"
	inactiveClasses = "text-gray-600 dark:text-gray-300 hover:text-blue-600 dark:hover:text-blue-400"
	transition      = "transition-colors duration-200"
)

// Layout is where a link is drawn.
type Layout uint8

const (
	LayoutDesktop Layout = iota
	LayoutMobile
)

var layoutBase = map[Layout]string{
	LayoutDesktop: "text-gray-600 font-medium",
	LayoutMobile:  "block py-2 text-gray-600",
}

// ResolveActiveStyle compares current and path byte for byte. No prefix or
// trailing slash matching: "/about/" is not "/about".
func ResolveActiveStyle(current, path string) Style {
	if current == path {
		return StyleActive
	}
	return StyleInactive
}

// Classes returns the colour classes of the style.
func (s Style) Classes() string {
	if s == StyleActive {
		return activeClasses
	}
	return inactiveClasses
}

// LinkClass composes the class attribute for a link drawn in layout.
func LinkClass(layout Layout, s Style) string {
	return twmerge.Merge(layoutBase[layout], s.Classes(), transition)
}
