package stats

import (
	"testing"

	"github.com/lriva/percgrid/beat"
	"github.com/lriva/percgrid/model"
	"github.com/lriva/percgrid/timeline"
	"github.com/stretchr/testify/assert"
)

func entry(tick int64, notes ...uint8) beat.Entry {
	e := beat.Entry{Tick: tick}
	for _, note := range notes {
		e.Events = append(e.Events, model.AttackEvent{
			AbsTick: tick, Note: note, Channel: 9, Velocity: 100,
		})
	}
	return e
}

func TestComputeTwoInstruments(t *testing.T) {
	// beat 0 has one instrument, beat 500 has both
	ix := beat.Index{entry(0, 38), entry(500, 38, 42)}
	tl := timeline.Build(ix)

	s := Compute(tl, ix, "song.mid")

	assert := assert.New(t)
	assert.Equal(model.ArithmeticMean, s.Arithmetic.Kind)
	assert.Equal(2, s.Arithmetic.Instruments)
	assert.InDelta(1.5, s.Arithmetic.Value, 1e-9)

	// min seeds at 2 (the instrument count), drops to 1 at beat 0;
	// one of two beats has 2+ instruments
	assert.Equal(model.BinaryMean, s.Binary.Kind)
	assert.Equal(2, s.Binary.Instruments)
	assert.InDelta(1.5, s.Binary.Value, 1e-9)

	assert.Equal(1, s.MinAtOnce)
	assert.Equal(2, s.MaxAtOnce)
}

func TestComputeMinSeedNeverLowered(t *testing.T) {
	// every beat carries both instruments, so the min stays at its seed
	// and the binary mean lands above the arithmetic one
	ix := beat.Index{entry(0, 38, 42), entry(500, 38, 42)}
	tl := timeline.Build(ix)

	s := Compute(tl, ix, "song.mid")

	assert := assert.New(t)
	assert.Equal(2, s.MinAtOnce)
	assert.InDelta(2.0, s.Arithmetic.Value, 1e-9)
	assert.InDelta(3.0, s.Binary.Value, 1e-9)
}

func TestComputeSingleInstrument(t *testing.T) {
	ix := beat.Index{entry(0, 38), entry(480, 38), entry(960, 38)}
	tl := timeline.Build(ix)

	s := Compute(tl, ix, "solo.mid")

	assert := assert.New(t)
	assert.Equal(1, s.Arithmetic.Instruments)
	assert.InDelta(1.0, s.Arithmetic.Value, 1e-9)
	assert.InDelta(1.0, s.Binary.Value, 1e-9)
	assert.Equal(1, s.MinAtOnce)
	assert.Equal(1, s.MaxAtOnce)
}

func TestComputeArithmeticMeanTimesBeatsIsSum(t *testing.T) {
	ix := beat.Index{entry(0, 38, 42, 46), entry(100, 38), entry(200, 42, 46)}
	tl := timeline.Build(ix)

	s := Compute(tl, ix, "song.mid")

	assert.InDelta(t, 6.0, s.Arithmetic.Value*float64(len(ix)), 1e-9)
	assert.GreaterOrEqual(t, s.Binary.Value, float64(s.MinAtOnce))
}
