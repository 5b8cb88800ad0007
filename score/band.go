package score

import (
	"math"

	"github.com/openwellness/burnout-api/schema"
)

// ResolvePrediction picks the label with the highest probability and
// returns it together with that label's own probability. The
// confidence must come from the selected label, not a fixed position
// in the probability vector.
func ResolvePrediction(probs map[schema.RiskLabel]float64) (schema.RiskLabel, float64) {
	label := schema.RiskLabelLow
	confidence := -1.0
	for _, l := range schema.RiskLabels {
		if p, ok := probs[l]; ok && p > confidence {
			label = l
			confidence = p
		}
	}
	if confidence < 0 {
		confidence = 0
	}
	return label, confidence
}

// BandScore converts a label and its confidence into a 0-100 burnout
// score. Bands are conditional on the label so scores stay ordered
// Low < Medium < High:
//
//	Low:     0 +  40 * confidence  ->  [0, 40]
//	Medium: 40 +  30 * confidence  -> [40, 70]
//	High:   70 +  30 * confidence  -> [70, 100]
func BandScore(label schema.RiskLabel, confidence float64) int {
	var s float64
	switch label {
	case schema.RiskLabelLow:
		s = confidence * 40
	case schema.RiskLabelMedium:
		s = 40 + confidence*30
	default:
		s = 70 + confidence*30
	}

	score := int(math.Round(s))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
