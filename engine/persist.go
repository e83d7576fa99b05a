package engine

import "github.com/nathoo/unionroster/engine/save"

// Snapshot captures the state and the bookkeeping needed to resume it.
func (e *Engine) Snapshot() save.Snapshot {
	return save.Snapshot{
		State:       e.State,
		Turn:        e.TurnCount,
		RNGSeed:     e.RNG.Seed(),
		RNGPosition: e.RNG.Position(),
	}
}

// Restore replaces the current session with a loaded snapshot.
func (e *Engine) Restore(snap *save.Snapshot) {
	e.State = snap.State
	e.TurnCount = snap.Turn
	e.RestoreRNG(snap.RNGSeed, snap.RNGPosition)
}
