package model

type AnalyzeRequestBody struct {
	Path string `json:"path"`
}

type InstrumentResult struct {
	Note      uint8  `json:"note"`
	Name      string `json:"name"`
	Tubs      string `json:"tubs"`
	StartSlot int64  `json:"start_slot"`
	EndSlot   int64  `json:"end_slot"`
}

type AnalyzeResponse struct {
	Filename       string             `json:"filename"`
	NumInstruments int                `json:"num_instruments"`
	MaxTrackLen    int64              `json:"max_track_len"`
	TicksPerBeat   int64              `json:"ticks_per_beat"`
	TimeSignature  string             `json:"time_signature"`
	ArithmeticMean float64            `json:"arithmetic_mean"`
	BinaryMean     float64            `json:"binary_mean"`
	Instruments    []InstrumentResult `json:"instruments"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
