// Package navbar implements the site's top navigation bar: a desktop link
// row, a collapsible mobile menu, the dark-mode toggle, and the active-link
// highlight for the current route.
//
// A Bar is one mounted instance. Its theme flag is authoritative and is
// projected through a ThemeWriter; the current route is never owned by the
// bar and is passed in on every Snapshot.
package navbar

import (
	"sync"

	"github.com/abobadilla02/portfolio/internal/control"
	"github.com/abobadilla02/portfolio/internal/theme"
)

// ThemeWriter receives the dark flag whenever the bar changes it.
type ThemeWriter interface {
	SetDark(dark bool)
}

// Router performs navigation to a path on the bar's behalf.
type Router interface {
	Navigate(path string)
}

// RouterFunc adapts a function to Router.
type RouterFunc func(path string)

// Navigate calls f(path).
func (f RouterFunc) Navigate(path string) { f(path) }

const defaultBrand = "Alonso Bobadilla"

// Control names, also used as data-control attributes in the markup.
const (
	ControlTheme    = "theme-toggle"
	ControlMenu     = "menu-toggle"
	ControlNavigate = "nav-link"
)

// Bar is a mounted navigation bar. It is safe for concurrent use.
type Bar struct {
	mu    sync.Mutex
	id    string
	brand string
	items []Item
	dark  bool
	menu  MenuState
	theme ThemeWriter
}

// Option configures a Bar.
type Option func(*Bar)

// WithItems replaces the navigation links.
func WithItems(items []Item) Option {
	return func(b *Bar) {
		b.items = append([]Item(nil), items...)
	}
}

// WithBrand sets the brand text linking to the root route.
func WithBrand(brand string) Option {
	return func(b *Bar) {
		if brand != "" {
			b.brand = brand
		}
	}
}

// WithID sets the instance id rendered into the markup.
func WithID(id string) Option {
	return func(b *Bar) { b.id = id }
}

// New mounts a bar in light mode with the menu closed. A nil writer discards
// theme changes.
func New(w ThemeWriter, opts ...Option) *Bar {
	if w == nil {
		w = discardTheme{}
	}
	b := &Bar{
		brand: defaultBrand,
		items: DefaultItems(),
		menu:  MenuClosed,
		theme: w,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type discardTheme struct{}

func (discardTheme) SetDark(bool) {}

// ID returns the instance id.
func (b *Bar) ID() string { return b.id }

// Items returns a copy of the configured links.
func (b *Bar) Items() []Item {
	return append([]Item(nil), b.items...)
}

// Item looks up a configured link by exact path.
func (b *Bar) Item(path string) (Item, bool) {
	for _, it := range b.items {
		if it.Path == path {
			return it, true
		}
	}
	return Item{}, false
}

// Resolve finds the navigation target for path: a configured link, or the
// brand link to the root route.
func (b *Bar) Resolve(path string) (Item, bool) {
	if it, ok := b.Item(path); ok {
		return it, true
	}
	if path == "/" {
		return Item{Path: "/", Label: b.brand}, true
	}
	return Item{}, false
}

// IsDark reports the theme flag.
func (b *Bar) IsDark() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.dark
}

// Menu reports the mobile menu state.
func (b *Bar) Menu() MenuState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.menu
}

// ToggleTheme flips the theme flag and writes the marker under the same lock,
// so the flag and the document projection cannot be observed apart.
func (b *Bar) ToggleTheme() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.dark = !b.dark
	b.theme.SetDark(b.dark)
}

// ToggleMobileMenu flips the mobile menu.
func (b *Bar) ToggleMobileMenu() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.menu = b.menu.Toggled()
}

// HandleNavigate closes the menu, whatever its state, then hands the path to r.
// The router is called outside the lock.
func (b *Bar) HandleNavigate(r Router, item Item) {
	b.mu.Lock()
	b.menu = MenuClosed
	b.mu.Unlock()
	if r != nil {
		r.Navigate(item.Path)
	}
}

// Unmount resets the per-session state.
func (b *Bar) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.menu = MenuClosed
}

// ThemeControl is the dark-mode toggle.
func (b *Bar) ThemeControl() control.Control {
	return control.New(ControlTheme, b.ToggleTheme)
}

// MenuControl is the mobile menu button.
func (b *Bar) MenuControl() control.Control {
	return control.New(ControlMenu, b.ToggleMobileMenu)
}

// LinkControl activates navigation to item through r.
func (b *Bar) LinkControl(r Router, item Item) control.Control {
	return control.New(ControlNavigate, func() { b.HandleNavigate(r, item) })
}

// Link is a rendered navigation entry.
type Link struct {
	Item
	Style Style
}

// Active reports whether the link matches the current route.
func (l Link) Active() bool { return l.Style == StyleActive }

// DesktopClass is the class attribute in the desktop row.
func (l Link) DesktopClass() string { return LinkClass(LayoutDesktop, l.Style) }

// MobileClass is the class attribute in the dropdown.
func (l Link) MobileClass() string { return LinkClass(LayoutMobile, l.Style) }

// View is an immutable render model of a bar for one route.
type View struct {
	ID        string
	Brand     string
	Current   string
	Mode      theme.Mode
	Menu      MenuState
	Links     []Link
	Endpoints Endpoints
	SwapOOB   bool
}

// Snapshot resolves every link against current. Call it on every render: the
// route can change while the bar's own state does not.
func (b *Bar) Snapshot(current string) View {
	b.mu.Lock()
	defer b.mu.Unlock()
	links := make([]Link, len(b.items))
	for i, it := range b.items {
		links[i] = Link{Item: it, Style: ResolveActiveStyle(current, it.Path)}
	}
	return View{
		ID:        b.id,
		Brand:     b.brand,
		Current:   current,
		Mode:      theme.ModeOf(b.dark),
		Menu:      b.menu,
		Links:     links,
		Endpoints: DefaultEndpoints,
	}
}

// ActiveLink returns the link matching the current route, if any.
func (v View) ActiveLink() (Link, bool) {
	for _, l := range v.Links {
		if l.Active() {
			return l, true
		}
	}
	return Link{}, false
}
