package randid

import (
	"fmt"
	"math"
)

// ReferencePopulation is the number of IDs the collision estimate assumes.
// The safety thresholds are calibrated against it.
const ReferencePopulation = 100_000

// Probabilities below SafeThreshold are safe, below ModerateThreshold moderate.
const (
	SafeThreshold     = 0.001
	ModerateThreshold = 0.1
)

// Safety classifies the collision risk of an ID length.
type Safety string

const (
	SafetySafe     Safety = "safe"
	SafetyModerate Safety = "moderate"
	SafetyHighRisk Safety = "high-risk"
)

// Assessment describes the collision risk of an ID length.
type Assessment struct {
	Length         int     `json:"length"`
	Combinations   float64 `json:"combinations"`
	Probability    float64 `json:"probability"`
	Safety         Safety  `json:"safety"`
	Recommendation string  `json:"recommendation"`
}

// Combinations returns the number of distinct IDs of the given length.
func Combinations(length int) float64 {
	return math.Pow(float64(len(Charset)), float64(length))
}

// CollisionProbability estimates the chance that at least two of
// ReferencePopulation IDs of the given length are equal, using the birthday
// approximation 1 - e^(-n(n-1) / 2N).
func CollisionProbability(length int) float64 {
	n := float64(ReferencePopulation)
	exponent := -(n * (n - 1)) / (2 * Combinations(length))
	return 1 - math.Exp(exponent)
}

// Classify maps a collision probability to a safety tier.
func Classify(p float64) Safety {
	switch {
	case p < SafeThreshold:
		return SafetySafe
	case p < ModerateThreshold:
		return SafetyModerate
	default:
		return SafetyHighRisk
	}
}

// Recommend returns advice for IDs of the given length in tier s.
func Recommend(s Safety, length int) string {
	switch s {
	case SafetySafe:
		return fmt.Sprintf("Safe for up to 100k IDs (%.2e total combinations)", Combinations(length))
	case SafetyModerate:
		return "Moderate collision risk; consider increasing length for large-scale use"
	default:
		return "High collision risk; increase length or reduce the number of IDs"
	}
}

// FormatProbability renders p as a percentage with three decimals.
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.3f%%", p*100)
}

// Assess validates length and returns its collision assessment.
func Assess(length int) (Assessment, error) {
	if err := ValidateLength(length); err != nil {
		return Assessment{}, err
	}

	p := CollisionProbability(length)
	s := Classify(p)

	return Assessment{
		Length:         length,
		Combinations:   Combinations(length),
		Probability:    p,
		Safety:         s,
		Recommendation: Recommend(s, length),
	}, nil
}
