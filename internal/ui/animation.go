package ui

import "time"

//go:generate go tool stringer -type=Phase -trimprefix=Phase

// Phase is the quote box animation state.
//
//	Idle -> FadingOut -> Swapping -> FadingIn -> Idle
//
// Swapping is passed through immediately once the fade-out elapses.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseFadingOut
	PhaseSwapping
	PhaseFadingIn
)

// Default animation durations.
const (
	DefaultFadeOut = 600 * time.Millisecond
	DefaultFadeIn  = 600 * time.Millisecond
)

// transition is one run through the phase machine. The controller holds
// its lock across every method.
type transition struct {
	phase  Phase
	text   string
	author string

	// next is swapped in when the fade-out ends.
	nextText   string
	nextAuthor string

	timer Timer
}

// swapIn replaces the displayed text with the pending one.
func (t *transition) swapIn() {
	t.text, t.author = t.nextText, t.nextAuthor
}

// shown is the box for the current phase.
func (t *transition) shown() QuoteBox {
	switch t.phase {
	case PhaseFadingOut:
		return RenderQuoteBox(t.text, t.author, ClassFadeOut)
	case PhaseSwapping, PhaseFadingIn:
		return RenderQuoteBox(t.text, t.author, ClassFadeIn)
	default:
		return RenderQuoteBox(t.text, t.author, ClassNone)
	}
}
