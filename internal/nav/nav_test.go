package nav

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinks(t *testing.T) {
	links := Links()

	var labels, hrefs []string
	for _, l := range links {
		labels = append(labels, l.Label)
		hrefs = append(hrefs, l.Href())
	}
	assert.Equal(t, []string{"Home", "About", "Services", "Projects", "Contact"}, labels)
	assert.Equal(t, []string{"#home", "#about", "#services", "#projects", "#contact"}, hrefs)
}

func TestToggle_Parity(t *testing.T) {
	for _, start := range []bool{false, true} {
		for n := 0; n < 7; n++ {
			s := UIState{MobileMenuOpen: start}
			for i := 0; i < n; i++ {
				s.Toggle()
			}
			want := start
			if n%2 == 1 {
				want = !start
			}
			assert.Equal(t, want, s.MobileMenuOpen, "start=%v toggles=%d", start, n)
		}
	}
}

func TestSelectLink_AlwaysCloses(t *testing.T) {
	for _, start := range []bool{false, true} {
		s := UIState{MobileMenuOpen: start}
		s.SelectLink()
		assert.False(t, s.MobileMenuOpen)
	}
}

func TestStateMachine(t *testing.T) {
	var s UIState
	assert.False(t, s.MobileMenuOpen, "initial state is closed")

	assert.True(t, s.Toggled().MobileMenuOpen)
	assert.False(t, s.MobileMenuOpen, "Toggled does not mutate")

	s.Toggle()
	assert.False(t, s.Toggled().MobileMenuOpen)
	assert.False(t, s.Selected().MobileMenuOpen)
	assert.True(t, s.MobileMenuOpen, "Selected does not mutate")
}

func TestQueryRoundTrip(t *testing.T) {
	assert.Equal(t, "/", UIState{}.Query())
	assert.Equal(t, "/?menu=open", UIState{MobileMenuOpen: true}.Query())

	assert.True(t, FromQuery(url.Values{"menu": {"open"}}).MobileMenuOpen)
	assert.False(t, FromQuery(url.Values{"menu": {"closed"}}).MobileMenuOpen)
	assert.False(t, FromQuery(url.Values{}).MobileMenuOpen)
}

func TestLinkHref(t *testing.T) {
	about := Links()[1]
	assert.Equal(t, "/#about", UIState{MobileMenuOpen: true}.LinkHref(about))
	assert.Equal(t, "/#about", UIState{}.LinkHref(about))
}
