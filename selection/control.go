// Package selection keeps each season's output slot equal to the encoded set of checked episode controls.
package selection

import (
	"fmt"
	"strconv"
)

// Season keys controls and slots.
type Season int

// String returns the season number as written in forms and slot keys.
func (s Season) String() string {
	return strconv.Itoa(int(s))
}

// SlotKey returns the form field name the encoded selection of season is submitted under.
func SlotKey(season Season) string {
	return fmt.Sprintf("selected_episodes_%d", season)
}

// Control is a checkbox-like toggle for one episode identifier of one season.
type Control struct {
	id      string
	label   string
	season  Season
	checked bool

	subscribers []func(*Control)
}

// NewControl returns an unchecked control unless checked is set.
func NewControl(season Season, id, label string, checked bool) *Control {
	return &Control{
		id:      id,
		label:   label,
		season:  season,
		checked: checked,
	}
}

// ID returns the episode identifier submitted for this control.
func (c *Control) ID() string {
	return c.id
}

// Label returns the display name, falling back to the identifier.
func (c *Control) Label() string {
	if c.label == "" {
		return c.id
	}
	return c.label
}

// Season returns the owning season.
func (c *Control) Season() Season {
	return c.season
}

// Checked reports the current state.
func (c *Control) Checked() bool {
	return c.checked
}

// Toggle flips the state as a user action and notifies subscribers.
func (c *Control) Toggle() {
	c.Set(!c.checked)
}

// Set changes the state as a user action. Subscribers are notified only when the state changes.
func (c *Control) Set(checked bool) {
	if c.checked == checked {
		return
	}
	c.checked = checked
	c.notify()
}

// OnChange registers fn to run after every user change.
func (c *Control) OnChange(fn func(*Control)) {
	c.subscribers = append(c.subscribers, fn)
}

// force changes the state without notifying; bulk operations recompute once afterwards.
func (c *Control) force(checked bool) {
	c.checked = checked
}

func (c *Control) notify() {
	for _, fn := range c.subscribers {
		fn(c)
	}
}
