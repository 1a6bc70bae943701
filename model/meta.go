package model

// FileMetadata holds file-level facts gathered during the scan. Tempo and
// time signature are file-global: a later meta event in any track
// overwrites the earlier value.
type FileMetadata struct {
	TicksPerBeat       int64
	TempoMicrosPerBeat float64
	BPM                float64
	Numerator          uint8
	Denominator        uint8
	MaxTrackLen        int64
}

type SongMetadata struct {
	Artist string
	Title  string
	Year   uint
}
