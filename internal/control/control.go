// Package control wraps an activation callback so a single control can be
// triggered by pointer and by keyboard with the same outcome.
package control

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// Activation keys. Both suppress the platform default before activating.
const (
	KeyEnter = "Enter"
	KeySpace = " "
)

// Trigger identifies how an activation reached the control.
type Trigger string

const (
	TriggerClick   Trigger = "click"
	TriggerKeyDown Trigger = "keydown"
)

// KeyEvent is a key press delivered to a control.
type KeyEvent struct {
	Key       string
	prevented bool
}

// PreventDefault marks the event as handled by the control.
func (e *KeyEvent) PreventDefault() { e.prevented = true }

// DefaultPrevented reports whether the control suppressed the default action.
func (e *KeyEvent) DefaultPrevented() bool { return e.prevented }

// IsActivationKey reports whether key activates a control.
func IsActivationKey(key string) bool {
	return key == KeyEnter || key == KeySpace
}

// Activation is a pointer or keyboard trigger decoded from a request.
type Activation struct {
	Trigger Trigger
	Key     string
}

// ParseActivation builds an Activation from the form values a control posts.
// An empty trigger is treated as a click so plain form posts keep working.
func ParseActivation(trigger, key string) (Activation, error) {
	switch Trigger(trigger) {
	case "", TriggerClick:
		return Activation{Trigger: TriggerClick}, nil
	case TriggerKeyDown:
		return Activation{Trigger: TriggerKeyDown, Key: key}, nil
	default:
		return Activation{}, fmt.Errorf("unknown trigger %q", trigger)
	}
}

// Control is anything a visitor can activate.
type Control struct {
	Name       string
	OnActivate func()
}

// New returns a control that calls fn on activation.
func New(name string, fn func()) Control {
	return Control{Name: name, OnActivate: fn}
}

// Click activates the control.
func (c Control) Click() {
	if c.OnActivate != nil {
		c.OnActivate()
	}
}

// KeyDown activates the control for Enter or Space and reports whether it did.
func (c Control) KeyDown(ev *KeyEvent) bool {
	if ev == nil || !IsActivationKey(ev.Key) {
		return false
	}
	ev.PreventDefault()
	c.Click()
	return true
}

// Dispatch routes a decoded activation and reports whether the control fired.
func (c Control) Dispatch(a Activation) bool {
	switch a.Trigger {
	case TriggerClick:
		c.Click()
		return true
	case TriggerKeyDown:
		return c.KeyDown(&KeyEvent{Key: a.Key})
	}
	return false
}

// keyFilter is the htmx trigger filter matching the activation keys.
const keyFilter = `keydown[key=='Enter'||key==' ']`

// Attrs returns the htmx attributes posting both triggers to endpoint. The
// inline handler suppresses the default so a focused button does not fire a
// second synthetic click.
func (c Control) Attrs(endpoint string, extra map[string]string) template.HTMLAttr {
	var b strings.Builder
	fmt.Fprintf(&b, `hx-post="%s" `, template.HTMLEscapeString(endpoint))
	fmt.Fprintf(&b, `hx-trigger="click, %s" `, template.HTMLEscapeString(keyFilter))
	b.WriteString(`hx-on:keydown="if(event.key==='Enter'||event.key===' '){event.preventDefault()}" `)

	vals := `js:{trigger: event.type === 'keydown' ? 'keydown' : 'click', key: event.key || ''`
	for _, k := range sortedKeys(extra) {
		vals += fmt.Sprintf(", %s: %q", k, extra[k])
	}
	vals += "}"
	fmt.Fprintf(&b, `hx-vals="%s" `, template.HTMLEscapeString(vals))
	fmt.Fprintf(&b, `data-control="%s"`, template.HTMLEscapeString(c.Name))
	return template.HTMLAttr(b.String())
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
