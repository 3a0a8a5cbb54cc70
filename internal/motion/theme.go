package motion

import "time"

// Theme is the full set of animation constants for the page. It is passed
// explicitly to the renderer; nothing in this package keeps shared state.
type Theme struct {
	Container Stagger
	Item      Variant

	NavStagger Stagger
	NavItem    Variant

	SkillStagger Stagger
	SkillBar     Transition

	HeroText     Variant
	HeroImage    Variant
	TimelineItem Variant

	Loops        []Loop
	Interactions []Interaction

	Scroll ScrollRange
}

// DefaultTheme returns the canonical animation constants. Each call returns a
// new value.
func DefaultTheme() Theme {
	return Theme{
		Container: Stagger{Base: 200 * time.Millisecond, Step: 80 * time.Millisecond},
		Item: Variant{
			Hidden:     Rest().WithOpacity(0).WithY(18),
			Visible:    Rest(),
			Transition: Transition{Duration: 450 * time.Millisecond, Ease: EaseInOut},
		},

		NavStagger: Stagger{Step: 60 * time.Millisecond},
		NavItem: Variant{
			Hidden:     Rest().WithOpacity(0).WithY(-8),
			Visible:    Rest(),
			Transition: Transition{Duration: 300 * time.Millisecond, Ease: EaseOut},
		},

		SkillStagger: Stagger{Step: 100 * time.Millisecond},
		SkillBar:     Transition{Duration: time.Second, Ease: EaseOut},

		HeroText: Variant{
			Hidden:     Rest().WithOpacity(0).WithX(-80),
			Visible:    Rest(),
			Transition: Transition{Duration: 700 * time.Millisecond, Ease: EaseOut},
		},
		HeroImage: Variant{
			Hidden:     Rest().WithOpacity(0).WithScale(0.8),
			Visible:    Rest(),
			Transition: Transition{Duration: 700 * time.Millisecond, Ease: EaseOut},
		},
		TimelineItem: Variant{
			Hidden:     Rest().WithOpacity(0).WithX(-40),
			Visible:    Rest(),
			Transition: Transition{Duration: 500 * time.Millisecond, Ease: EaseOut},
		},

		Loops: []Loop{
			{
				Name:      "float",
				Keyframes: []Pose{Rest(), Rest().WithY(-20), Rest()},
				Period:    3 * time.Second,
				Ease:      EaseInOut,
			},
			{
				Name:      "glow-spin",
				Keyframes: []Pose{Rest(), Rest().WithRotate(360)},
				Period:    20 * time.Second,
				Ease:      Linear,
			},
			{
				Name:      "badge-up",
				Keyframes: []Pose{Rest(), Rest().WithY(-10), Rest()},
				Period:    2 * time.Second,
				Ease:      EaseInOut,
			},
			{
				Name:      "badge-down",
				Keyframes: []Pose{Rest(), Rest().WithY(10), Rest()},
				Period:    2200 * time.Millisecond,
				Ease:      EaseInOut,
			},
			{
				Name:      "scroll-hint",
				Keyframes: []Pose{Rest(), Rest().WithY(10), Rest()},
				Period:    1400 * time.Millisecond,
				Ease:      EaseInOut,
			},
			{
				Name:      "pulse",
				Keyframes: []Pose{Rest(), Rest().WithOpacity(0.5), Rest()},
				Period:    2 * time.Second,
				Ease:      Pulse,
			},
		},

		Interactions: []Interaction{
			hover("nav-link", Rest().WithY(-2)),
			hover("brand", Rest().WithScale(1.05)),
			tap("menu-toggle", Rest().WithScale(0.9)),
			hover("cta", Rest().WithScale(1.05)),
			hover("social", Rest().WithScale(1.15)),
			hover("service-card", Rest().WithY(-8).WithScale(1.02)),
			hover("project-card", Rest().WithY(-8)),
			{Name: "project-image", Hover: ptr(Rest().WithScale(1.1)), Duration: 600 * time.Millisecond},
			hover("mobile-link", Rest().WithX(10)),
		},

		Scroll: ScrollRange{
			End:         0.2,
			FromOpacity: 1,
			ToOpacity:   0,
			FromScale:   1,
			ToScale:     0.98,
		},
	}
}

func hover(name string, p Pose) Interaction {
	return Interaction{Name: name, Hover: ptr(p), Duration: 200 * time.Millisecond}
}

func tap(name string, p Pose) Interaction {
	return Interaction{Name: name, Tap: ptr(p), Duration: 150 * time.Millisecond}
}

func ptr(p Pose) *Pose { return &p }
