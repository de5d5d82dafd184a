// Package picker implements the color picker page: a toggleable menu of
// fixed colors, the current selection, and the applied color the page
// renders, kept in sync with a preference store.
package picker

import (
	"fmt"

	"github.com/huepick/huepick/color"
	"github.com/huepick/huepick/log"
	"github.com/huepick/huepick/prefs"
)

// DefaultColor is selected when nothing has been persisted yet.
const DefaultColor = "red"

// Page holds the picker state.
//
// Selected is what the user chose last; Applied is what gets rendered. They
// only differ between a selection and the effect that persists it, and
// before Mount on a fresh page.
type Page struct {
	store prefs.Store

	menuOpen bool
	selected string
	applied  string
}

// New creates a page and resolves its initial selection from store.
//
// A stored value wins; a missing or empty one falls back to DefaultColor.
// A nil store means there is nowhere to read from yet, and the selection
// starts as the empty placeholder. Read errors are returned as-is.
func New(store prefs.Store) (*Page, error) {
	p := &Page{store: store}

	if store == nil {
		return p, nil
	}

	stored, err := store.Get(prefs.Key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", prefs.Key, err)
	}

	if value, ok := stored.Get(); ok && value != "" {
		p.selected = value
	} else {
		p.selected = DefaultColor
	}

	log.WithField("selected", p.selected).Debug("picker initialized")
	return p, nil
}

// Mount runs the selection effect once for the initial value. When the value
// came from the store this rewrites it unchanged.
func (p *Page) Mount() error {
	return p.onSelectionChanged(p.selected)
}

// ToggleMenu shows or hides the option list.
func (p *Page) ToggleMenu() {
	p.menuOpen = !p.menuOpen
	log.Debugf("menu open: %v", p.menuOpen)
}

// SelectColor makes choice the selection, persists it and applies it.
// The menu stays as it is.
func (p *Page) SelectColor(choice string) error {
	p.selected = choice
	return p.onSelectionChanged(choice)
}

// onSelectionChanged writes value to the store, then applies it.
// On a failed write the applied color is left untouched.
func (p *Page) onSelectionChanged(value string) error {
	if p.store != nil {
		if err := p.store.Set(prefs.Key, value); err != nil {
			log.Errorf("persist %s=%q: %v", prefs.Key, value, err)
			return fmt.Errorf("save %s: %w", prefs.Key, err)
		}
		log.Infof("persisted %s=%q", prefs.Key, value)
	}

	p.applied = value
	return nil
}

// MenuOpen reports whether the option list is visible.
func (p *Page) MenuOpen() bool {
	return p.menuOpen
}

// Selected returns the current selection.
func (p *Page) Selected() string {
	return p.selected
}

// Applied returns the color the page renders.
func (p *Page) Applied() string {
	return p.applied
}

// Caption is the line echoing the applied color.
func (p *Page) Caption() string {
	return "This is the color you picked: " + p.applied
}

// Options returns the menu entries in display order.
func (p *Page) Options() []color.Choice {
	return color.Choices
}
