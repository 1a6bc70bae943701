package stats

import (
	"fmt"

	"github.com/lriva/percgrid/beat"
	"github.com/lriva/percgrid/model"
	"github.com/lriva/percgrid/timeline"
)

// Summary holds the two per-file means plus the concurrency extremes seen
// while computing them.
type Summary struct {
	Arithmetic model.MeanResult
	Binary     model.MeanResult
	MaxAtOnce  int
	MinAtOnce  int
}

// Compute derives both means over the beats of one file. The index must be
// non-empty; callers guard the no-beats case before getting here. Fewer than
// two instruments is only worth a warning.
//
// MinAtOnce starts at the distinct instrument count rather than an unbounded
// sentinel. That seed is part of the binary mean's definition and must not
// be "fixed".
func Compute(tl timeline.Timeline, ix beat.Index, filename string) Summary {
	numInstruments := len(tl.Order)
	if numInstruments < 2 {
		fmt.Printf("LESS THAN 2 INSTRUMENTS: %v\n", filename)
	}

	var instSum int
	var binarySum int
	maxAtOnce := 1
	minAtOnce := numInstruments

	for _, entry := range ix {
		count := len(entry.Events)
		if count > maxAtOnce {
			maxAtOnce = count
		}
		if count < minAtOnce {
			minAtOnce = count
		}
		if count >= 2 {
			binarySum++
		}
		instSum += count
	}

	// sum of simultaneous-instrument counts over the beats that have any
	arithMean := float64(instSum) / float64(len(ix))

	// minimum concurrency plus the fraction of beats with 2+ instruments
	binMean := float64(minAtOnce) + float64(binarySum)/float64(len(ix))

	return Summary{
		Arithmetic: model.MeanResult{Kind: model.ArithmeticMean, Instruments: numInstruments, Value: arithMean},
		Binary:     model.MeanResult{Kind: model.BinaryMean, Instruments: numInstruments, Value: binMean},
		MaxAtOnce:  maxAtOnce,
		MinAtOnce:  minAtOnce,
	}
}
