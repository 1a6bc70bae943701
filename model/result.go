package model

type MeanKind string

const (
	ArithmeticMean MeanKind = "am"
	BinaryMean     MeanKind = "bm"
)

// MeanResult is one of the two per-file summary statistics, carrying the
// distinct instrument count it was computed over.
type MeanResult struct {
	Kind        MeanKind
	Instruments int
	Value       float64
}
