// Package analysis runs the whole percussion pipeline for one file: scan,
// order, regroup, then statistics and grids.
package analysis

import (
	"errors"
	"path/filepath"

	"github.com/lriva/percgrid/beat"
	"github.com/lriva/percgrid/midi"
	"github.com/lriva/percgrid/model"
	"github.com/lriva/percgrid/percussion"
	"github.com/lriva/percgrid/report"
	"github.com/lriva/percgrid/scanner"
	"github.com/lriva/percgrid/stats"
	"github.com/lriva/percgrid/timeline"
	"github.com/lriva/percgrid/tubs"
	"gitlab.com/gomidi/midi/v2/smf"
)

// ErrNoBeats means no qualifying percussion attack exists anywhere in the
// file. Non-fatal; statistics and grids are skipped entirely.
var ErrNoBeats = errors.New("no percussion beats found")

type InstrumentGrid struct {
	Note uint8
	Name string
	Grid tubs.Grid
}

type Result struct {
	Filename string
	Meta     model.FileMetadata
	Timeline timeline.Timeline
	Grids    []InstrumentGrid
	Summary  stats.Summary
}

// Record is the report line for this result.
func (r *Result) Record() string {
	return report.FormatRecord(r.Filename, r.Meta, len(r.Timeline.Order))
}

// Run reads and analyzes the midi file at path.
func Run(path string) (*Result, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	return Analyze(parsed, filepath.Base(path))
}

// Analyze runs the pipeline over an already parsed file. It returns
// ErrNoBeats before statistics or grids ever run, so those stages never see
// an empty beat index.
func Analyze(s *smf.SMF, filename string) (*Result, error) {
	beats, meta, err := scanner.Scan(s)
	if err != nil {
		return nil, err
	}
	if len(beats) == 0 {
		return nil, ErrNoBeats
	}

	ix := beat.Build(beats)
	tl := timeline.Build(ix)

	res := Result{
		Filename: filename,
		Meta:     meta,
		Timeline: tl,
		Summary:  stats.Compute(tl, ix, filename),
	}
	for _, note := range tl.Order {
		res.Grids = append(res.Grids, InstrumentGrid{
			Note: note,
			Name: percussion.Name(note),
			Grid: tubs.Render(tl.Ticks[note], meta.TicksPerBeat, meta.MaxTrackLen),
		})
	}
	return &res, nil
}
