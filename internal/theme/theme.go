// Package theme holds the explicit theme context shared by every themed
// consumer on a page.
//
// A Provider owns the projection of the dark-mode preference onto the
// document root. Writers (the navigation bar) push the preference in; the
// page layout reads the resulting root class list when it renders <html>.
//
//	p := theme.NewProvider()
//	p.SetDark(true)
//	p.RootClass() // "dark"
package theme

import (
	"sort"
	"strings"
	"sync"
)

// DarkClass is the marker placed on the document root in dark mode.
const DarkClass = "dark"

// Mode is the visible colour scheme.
type Mode int

const (
	Light Mode = iota
	Dark
)

// ModeOf maps the dark flag to a Mode.
func ModeOf(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// ToggleLabel is the accessible label of a control that switches away from m.
func (m Mode) ToggleLabel() string {
	if m == Dark {
		return "Switch to light mode"
	}
	return "Switch to dark mode"
}

// ToggleIcon names the glyph shown on the toggle: the sun in dark mode, the
// moon in light mode.
func (m Mode) ToggleIcon() string {
	if m == Dark {
		return "sun"
	}
	return "moon"
}

// Document is the class list of a document root element.
type Document struct {
	mu      sync.RWMutex
	classes map[string]struct{}
}

// NewDocument returns a root element carrying the given classes.
func NewDocument(classes ...string) *Document {
	d := &Document{classes: make(map[string]struct{}, len(classes))}
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			d.classes[c] = struct{}{}
		}
	}
	return d
}

// Set adds or removes class. Reapplying the same value is a no-op.
func (d *Document) Set(class string, present bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if present {
		d.classes[class] = struct{}{}
		return
	}
	delete(d.classes, class)
}

// Has reports whether class is present.
func (d *Document) Has(class string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.classes[class]
	return ok
}

// ClassList returns the classes in a stable order.
func (d *Document) ClassList() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]string, 0, len(d.classes))
	for c := range d.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Provider is the theme context. It is safe for concurrent use.
type Provider struct {
	doc *Document
}

// NewProvider returns a provider projecting onto a fresh document root.
func NewProvider() *Provider {
	return &Provider{doc: NewDocument()}
}

// NewProviderFor returns a provider projecting onto doc.
func NewProviderFor(doc *Document) *Provider {
	return &Provider{doc: doc}
}

// SetDark writes the dark marker. Idempotent.
func (p *Provider) SetDark(dark bool) {
	p.doc.Set(DarkClass, dark)
}

// Document exposes the root element for consumers that render it.
func (p *Provider) Document() *Document { return p.doc }

// RootClass is the class attribute value for the document root.
func (p *Provider) RootClass() string {
	return strings.Join(p.doc.ClassList(), " ")
}
