// Package tubs renders per-instrument attack timelines as Time Unit Box
// System notation: each beat split into a fixed number of slots, 'X' for an
// attack and '.' for silence.
package tubs

import (
	"math"
	"strings"
)

// SlotsPerBeat is fixed regardless of the file's time signature.
const SlotsPerBeat = 12

// Grid is the rendered notation for one instrument plus the slot range it
// covers, for display and length checking.
type Grid struct {
	Symbols   string
	StartSlot int64
	EndSlot   int64
}

// Quantize maps a tick onto its 1-based grid slot; tick 0 maps to slot 0.
func Quantize(tick, ticksPerBeat int64) int64 {
	slotWidth := float64(ticksPerBeat) / float64(SlotsPerBeat)
	return int64(math.Ceil(float64(tick) / slotWidth))
}

// Render walks an instrument's ascending attack ticks, filling the slots
// between consecutive attacks with dots and marking each attack slot once.
// A second attack quantized into an already marked slot is dropped rather
// than double-marked. After the last attack the grid is padded out to the
// slot of maxTrackLen.
func Render(ticks []int64, ticksPerBeat, maxTrackLen int64) Grid {
	var sb strings.Builder
	var prevTick int64

	for _, tick := range ticks {
		slot := Quantize(tick, ticksPerBeat)
		prevSlot := Quantize(prevTick, ticksPerBeat)

		for s := prevSlot + 1; s < slot; s++ {
			sb.WriteByte('.')
		}

		if !(slot == prevSlot && tick > 0) {
			sb.WriteByte('X')
		}

		if tick == 0 {
			// keeps slot zero from being counted again by the next gap
			prevTick = 1
		} else {
			prevTick = tick
		}
	}

	start := Quantize(prevTick, ticksPerBeat)
	end := Quantize(maxTrackLen, ticksPerBeat)
	for s := start + 1; s <= end; s++ {
		sb.WriteByte('.')
	}

	return Grid{Symbols: sb.String(), StartSlot: start, EndSlot: end}
}
