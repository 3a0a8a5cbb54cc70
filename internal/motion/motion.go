// Package motion defines the animation theme of the portfolio page: entrance
// variants, stagger timings, infinite loops, pointer interactions and the
// scroll-driven hero transform. A Theme is plain data; the page renderer turns
// it into CSS and data attributes for the browser.
package motion

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Easing is a CSS timing function.
type Easing string

const (
	Linear    Easing = "linear"
	EaseInOut Easing = "cubic-bezier(0.42, 0, 0.58, 1)"
	EaseOut   Easing = "cubic-bezier(0, 0, 0.58, 1)"
	Pulse     Easing = "cubic-bezier(0.4, 0, 0.6, 1)"
)

// Pose is a visual state of an element. X and Y are pixel offsets, Rotate is
// in degrees.
type Pose struct {
	Opacity float64
	X, Y    float64
	Scale   float64
	Rotate  float64
}

// Rest returns the untransformed, fully visible pose.
func Rest() Pose {
	return Pose{Opacity: 1, Scale: 1}
}

func (p Pose) WithOpacity(v float64) Pose {
	p.Opacity = v
	return p
}

func (p Pose) WithX(v float64) Pose {
	p.X = v
	return p
}

func (p Pose) WithY(v float64) Pose {
	p.Y = v
	return p
}

func (p Pose) WithScale(v float64) Pose {
	p.Scale = v
	return p
}

func (p Pose) WithRotate(v float64) Pose {
	p.Rotate = v
	return p
}

// Transform renders the CSS transform for the pose, or "none" when the pose
// is untransformed.
func (p Pose) Transform() string {
	var parts []string
	if p.X != 0 || p.Y != 0 {
		parts = append(parts, fmt.Sprintf("translate(%spx, %spx)", num(p.X), num(p.Y)))
	}
	if p.Scale != 1 {
		parts = append(parts, fmt.Sprintf("scale(%s)", num(p.Scale)))
	}
	if p.Rotate != 0 {
		parts = append(parts, fmt.Sprintf("rotate(%sdeg)", num(p.Rotate)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}

// Transition is the timing of a single change between two poses.
type Transition struct {
	Duration time.Duration
	Delay    time.Duration
	Ease     Easing
}

// Variant is an entrance animation from Hidden to Visible.
type Variant struct {
	Hidden     Pose
	Visible    Pose
	Transition Transition
}

// Stagger offsets sibling animations so they start one after another.
type Stagger struct {
	Base time.Duration
	Step time.Duration
}

// Delay returns the start delay of the i-th sibling.
func (s Stagger) Delay(i int) time.Duration {
	if i < 0 {
		i = 0
	}
	return s.Base + time.Duration(i)*s.Step
}

// Loop is an unbounded decorative animation cycling through Keyframes, which
// are spread evenly over Period.
type Loop struct {
	Name      string
	Keyframes []Pose
	Period    time.Duration
	Ease      Easing
}

// Interaction is a transient pointer effect. Hover applies while the pointer
// is over the element, Tap while it is pressed. A nil pose means no effect.
type Interaction struct {
	Name     string
	Hover    *Pose
	Tap      *Pose
	Duration time.Duration
}

// Seconds formats a duration as a CSS time value such as "0.28s".
func Seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
