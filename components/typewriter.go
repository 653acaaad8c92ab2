package components

import "github.com/yohamta/donburi"

type TypewriterPhase int

const (
	PhaseTyping TypewriterPhase = iota
	PhaseHolding
	PhaseDeleting
	PhaseDone // typed once and stopped
)

// TypewriterData types, holds and deletes a cycle of phrases
type TypewriterData struct {
	Phrases []string
	Loop    bool
	Phrase  int // index into Phrases
	Shown   int // runes of the current phrase on screen
	Phase   TypewriterPhase
	Timer   int // frames left before the next step
	Frame   int // frames since creation, drives the caret blink
}

var Typewriter = donburi.NewComponentType[TypewriterData]()

// Text returns the part of the current phrase that is on screen.
func (t *TypewriterData) Text() string {
	if len(t.Phrases) == 0 {
		return ""
	}
	runes := []rune(t.Phrases[t.Phrase])
	n := t.Shown
	if n > len(runes) {
		n = len(runes)
	}
	return string(runes[:n])
}

// CaretVisible reports whether the blinking caret is drawn this frame.
func (t *TypewriterData) CaretVisible(halfPeriod int) bool {
	if halfPeriod <= 0 || (t.Phase != PhaseHolding && t.Phase != PhaseDone) {
		return true
	}
	return (t.Frame/halfPeriod)%2 == 0
}
