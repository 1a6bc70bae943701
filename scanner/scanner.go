package scanner

import (
	"errors"
	"fmt"

	"github.com/lriva/percgrid/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// PercussionChannel is the reserved drum channel (0-based).
const PercussionChannel = 9

// Scan walks every track, accumulating an absolute tick counter over every
// event's delta (deltas occur on non-attack events too), and collects
// qualifying percussion attacks into a tick -> events map. Tempo and time
// signature are captured file-globally, last writer wins. MaxTrackLen is the
// longest final tick counter over all tracks.
func Scan(s *smf.SMF) (map[int64][]model.AttackEvent, model.FileMetadata, error) {
	metric, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		errText := fmt.Sprintf("unsupported time format %v, expected metric ticks", s.TimeFormat)
		return nil, model.FileMetadata{}, errors.New(errText)
	}

	meta := model.FileMetadata{
		TicksPerBeat: int64(metric),
		Numerator:    4,
		Denominator:  4,
	}
	beats := make(map[int64][]model.AttackEvent)

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)

			var channel uint8
			var key uint8
			var velocity uint8
			var bpm float64
			var num, denom, cpt, dsqpq uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				if velocity > 0 && channel == PercussionChannel {
					addAttack(beats, model.AttackEvent{
						AbsTick:  absTicks,
						Note:     key,
						Channel:  channel,
						Velocity: velocity,
					})
				}
			case event.Message.GetMetaTempo(&bpm):
				meta.BPM = bpm
				meta.TempoMicrosPerBeat = 60000000.0 / bpm
			case event.Message.GetMetaTimeSig(&num, &denom, &cpt, &dsqpq):
				meta.Numerator = num
				meta.Denominator = denom
			}
		}
		if absTicks > meta.MaxTrackLen {
			meta.MaxTrackLen = absTicks
		}
	}

	return beats, meta, nil
}

// A tick can hold attacks from several instruments, but never two attacks
// from the same instrument.
func addAttack(beats map[int64][]model.AttackEvent, evt model.AttackEvent) {
	for _, existing := range beats[evt.AbsTick] {
		if existing.Note == evt.Note {
			return
		}
	}
	beats[evt.AbsTick] = append(beats[evt.AbsTick], evt)
}
