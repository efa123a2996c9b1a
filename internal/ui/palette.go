package ui

import (
	"fmt"
	"math/rand/v2"
)

// Gradients are the page background pairs, start colour then end colour.
var Gradients = [...][2]string{
	{"#ffecd2", "#fcb69f"},
	{"#a1c4fd", "#c2e9fb"},
	{"#fbc7aa", "#f6d365"},
	{"#fdcbf1", "#e6dee9"},
	{"#e0c3fc", "#8ec5fc"},
	{"#ff9a9e", "#fad0c4"},
}

// Accents are the decorative shape colours.
var Accents = [...]string{
	"#ff6f91", "#ffc75f", "#845ec2", "#6a0572", "#ff7eb9", "#79ff97",
}

// Theme is one palette choice: a gradient pair and the accent that the
// first shape gets.
type Theme struct {
	Gradient    int
	AccentStart int
}

// Palette picks themes. Gradient and accent are drawn independently.
type Palette struct {
	intN func(n int) int
}

// NewPalette draws from r, or from the global source when r is nil.
func NewPalette(r *rand.Rand) *Palette {
	if r == nil {
		return &Palette{intN: rand.IntN}
	}
	return &Palette{intN: r.IntN}
}

// Pick returns a random theme.
func (p *Palette) Pick() Theme {
	return Theme{
		Gradient:    p.intN(len(Gradients)),
		AccentStart: p.intN(len(Accents)),
	}
}

// Background is the CSS background value for the theme's gradient.
func (t Theme) Background() string {
	pair := Gradients[mod(t.Gradient, len(Gradients))]
	return fmt.Sprintf("linear-gradient(135deg, %s 0%%, %s 100%%)", pair[0], pair[1])
}

// ShapeColor is the accent for the shape at position i. Neighbouring shapes
// always differ.
func (t Theme) ShapeColor(i int) string {
	return Accents[mod(t.AccentStart+i, len(Accents))]
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
