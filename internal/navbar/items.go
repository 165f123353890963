package navbar

// Item is one top-level page link.
type Item struct {
	Path  string
	Label string
}

var defaultItems = [...]Item{
	{Path: "/", Label: "Home"},
	{Path: "/about", Label: "About"},
	{Path: "/experience", Label: "Experience"},
	{Path: "/portfolio", Label: "Portfolio"},
	{Path: "/contact", Label: "Contact"},
}

// DefaultItems returns a copy of the site's navigation links in display order.
func DefaultItems() []Item {
	out := make([]Item, len(defaultItems))
	copy(out, defaultItems[:])
	return out
}

// AriaLabel is the accessible name of the link to the item.
func (i Item) AriaLabel() string {
	return "Navigate to " + i.Label + " page"
}
