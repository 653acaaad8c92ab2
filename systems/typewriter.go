package systems

import (
	"github.com/automoto/folio-fx/components"
	cfg "github.com/automoto/folio-fx/config"
	"github.com/yohamta/donburi"
)

// UpdateTypewriter types the current phrase one rune at a time, holds it, deletes it
// and moves on to the next phrase. Without Loop it stops once the first phrase is typed.
func UpdateTypewriter(w donburi.World) {
	components.Typewriter.Each(w, func(e *donburi.Entry) {
		tw := components.Typewriter.Get(e)
		tw.Frame++
		if len(tw.Phrases) == 0 || tw.Phase == components.PhaseDone {
			return
		}

		tw.Timer--
		if tw.Timer > 0 {
			return
		}

		switch tw.Phase {
		case components.PhaseTyping:
			tw.Shown++
			if tw.Shown >= len([]rune(tw.Phrases[tw.Phrase])) {
				if !tw.Loop {
					tw.Phase = components.PhaseDone
					return
				}
				tw.Phase = components.PhaseHolding
				tw.Timer = cfg.Typewriter.HoldFrames
				return
			}
			tw.Timer = cfg.Typewriter.TypeFrames
		case components.PhaseHolding:
			tw.Phase = components.PhaseDeleting
			tw.Timer = cfg.Typewriter.DeleteFrames
		case components.PhaseDeleting:
			tw.Shown--
			if tw.Shown <= 0 {
				tw.Shown = 0
				tw.Phrase = (tw.Phrase + 1) % len(tw.Phrases)
				tw.Phase = components.PhaseTyping
				tw.Timer = cfg.Typewriter.TypeFrames
				return
			}
			tw.Timer = cfg.Typewriter.DeleteFrames
		}
	})
}
