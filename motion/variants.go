package motion

import "time"

var (
	// FadeIn rises a block 20px while fading it in.
	FadeIn = Variant{
		Hidden:  State{Opacity: 0, Y: 20, Scale: 1},
		Visible: State{Opacity: 1, Y: 0, Scale: 1},
		Transition: Transition{
			Duration: 600 * time.Millisecond,
			Easing:   "ease-out",
		},
	}

	// StaggerContainer orchestrates its children; the container itself only fades.
	StaggerContainer = Variant{
		Hidden:  State{Opacity: 0, Scale: 1},
		Visible: State{Opacity: 1, Scale: 1},
		Transition: Transition{
			Duration:        300 * time.Millisecond,
			Easing:          "ease-out",
			StaggerChildren: 300 * time.Millisecond,
			DelayChildren:   200 * time.Millisecond,
		},
	}

	// ScaleUp grows a block from 80% on a spring.
	ScaleUp = Variant{
		Hidden:     State{Opacity: 0, Scale: 0.8},
		Visible:    State{Opacity: 1, Scale: 1},
		Transition: Transition{Spring: &Spring{Stiffness: 100, Damping: 15}},
	}

	// SlideDown brings the navigation bar in from above.
	SlideDown = Variant{
		Hidden:     State{Opacity: 1, Y: -100, Scale: 1},
		Visible:    State{Opacity: 1, Y: 0, Scale: 1},
		Transition: Transition{Spring: &Spring{Stiffness: 100, Damping: 15}},
	}

	// Collapse expands and collapses the mobile menu.
	Collapse = Variant{
		Hidden:  State{Opacity: 0, Scale: 1, Collapsed: true},
		Visible: State{Opacity: 1, Scale: 1},
		Transition: Transition{
			Duration: 300 * time.Millisecond,
			Easing:   "ease-in-out",
		},
		Height: true,
	}
)
