// Package nav is the navigation controller: the five in-page links and the
// open/closed state of the mobile menu.
package nav

import (
	"net/url"
	"strings"
)

// MenuParam is the query parameter carrying the mobile menu state, so the
// toggle works as a plain link when scripting is unavailable.
const MenuParam = "menu"

const menuOpen = "open"

// Link is one navigation entry pointing at an in-page anchor.
type Link struct {
	Label  string
	Anchor string
}

// Href is the in-page fragment, e.g. "#about".
func (l Link) Href() string { return "#" + l.Anchor }

// Links returns the navigation entries in display order.
func Links() []Link {
	labels := []string{"Home", "About", "Services", "Projects", "Contact"}
	links := make([]Link, len(labels))
	for i, label := range labels {
		links[i] = Link{Label: label, Anchor: strings.ToLower(label)}
	}
	return links
}

// UIState is the only mutable state of the page. The zero value is the
// initial state: menu closed.
type UIState struct {
	MobileMenuOpen bool
}

// Toggle flips the mobile menu.
func (s *UIState) Toggle() { s.MobileMenuOpen = !s.MobileMenuOpen }

// SelectLink closes the mobile menu.
func (s *UIState) SelectLink() { s.MobileMenuOpen = false }

// Toggled returns the state after a toggle.
func (s UIState) Toggled() UIState {
	s.Toggle()
	return s
}

// Selected returns the state after a link is chosen.
func (s UIState) Selected() UIState {
	s.SelectLink()
	return s
}

// FromQuery reads the state from request query values. Anything other than
// menu=open is the closed state.
func FromQuery(v url.Values) UIState {
	return UIState{MobileMenuOpen: v.Get(MenuParam) == menuOpen}
}

// Query encodes the state as a relative URL that reproduces it.
func (s UIState) Query() string {
	if !s.MobileMenuOpen {
		return "/"
	}
	return "/?" + url.Values{MenuParam: {menuOpen}}.Encode()
}

// LinkHref is where a mobile-menu entry points: the anchor, on the page
// rendered in the state that follows selecting it.
func (s UIState) LinkHref(l Link) string {
	return s.Selected().Query() + l.Href()
}
