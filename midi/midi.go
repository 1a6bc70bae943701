package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

// ReadMidiFile parses a Standard MIDI File from disk. The smf reader can
// panic on some malformed files (https://github.com/gomidi/midi/issues/20),
// so that is recovered into a normal error here.
func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}
