package cycle

// Confidence values per regularity class. Confidence is monotonically
// non-increasing as regularity worsens.
const (
	confidenceVeryRegular       = 0.85
	confidenceRegular           = 0.70
	confidenceSomewhatIrregular = 0.55
	confidenceIrregular         = 0.40

	// ConfidenceInsufficientData applies when statistics are unavailable
	// (fewer than two logs, or all intervals filtered as outliers).
	ConfidenceInsufficientData = 0.30
)

// ConfidenceFor maps a regularity class to a confidence score in [0,1].
// Total function: any unrecognized class (including the empty value
// used when statistics are unavailable) yields the insufficient-data
// confidence.
func ConfidenceFor(r Regularity) float64 {
	switch r {
	case VeryRegular:
		return confidenceVeryRegular
	case Regular:
		return confidenceRegular
	case SomewhatIrregular:
		return confidenceSomewhatIrregular
	case Irregular:
		return confidenceIrregular
	default:
		return ConfidenceInsufficientData
	}
}
