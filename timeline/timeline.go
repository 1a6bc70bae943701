package timeline

import (
	"github.com/lriva/percgrid/beat"
)

// Timeline regroups beats by instrument. Ticks maps each note identity to
// the ascending ticks it attacked at; Order lists the notes by first
// appearance so output stays deterministic.
type Timeline struct {
	Order []uint8
	Ticks map[uint8][]int64
}

// Build iterates the index in tick order, so every per-instrument list
// comes out ascending without re-sorting.
func Build(ix beat.Index) Timeline {
	tl := Timeline{Ticks: make(map[uint8][]int64)}
	for _, entry := range ix {
		for _, evt := range entry.Events {
			if _, ok := tl.Ticks[evt.Note]; !ok {
				tl.Order = append(tl.Order, evt.Note)
			}
			tl.Ticks[evt.Note] = append(tl.Ticks[evt.Note], entry.Tick)
		}
	}
	return tl
}
