package score

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/openwellness/burnout-api/schema"
)

func TestResolvePrediction(t *testing.T) {
	label, confidence := ResolvePrediction(map[schema.RiskLabel]float64{
		schema.RiskLabelLow:    0.1,
		schema.RiskLabelMedium: 0.08,
		schema.RiskLabelHigh:   0.82,
	})

	assert.Equal(t, schema.RiskLabelHigh, label, "wrong argmax label")
	assert.Equal(t, 0.82, confidence, "confidence must be the selected label's probability")
}

func TestResolvePredictionConfidenceFollowsLabel(t *testing.T) {
	// High wins but Medium holds a larger share than in the case above;
	// the confidence still has to track the winning label
	label, confidence := ResolvePrediction(map[schema.RiskLabel]float64{
		schema.RiskLabelLow:    0.05,
		schema.RiskLabelMedium: 0.45,
		schema.RiskLabelHigh:   0.5,
	})

	assert.Equal(t, schema.RiskLabelHigh, label)
	assert.Equal(t, 0.5, confidence)
}

type bandTestCase struct {
	label      schema.RiskLabel
	confidence float64
	expected   int
}

func TestBandScore(t *testing.T) {
	cases := []bandTestCase{
		{schema.RiskLabelLow, 0, 0},
		{schema.RiskLabelLow, 1, 40},
		{schema.RiskLabelLow, 0.5, 20},
		{schema.RiskLabelMedium, 0, 40},
		{schema.RiskLabelMedium, 1, 70},
		{schema.RiskLabelHigh, 0, 70},
		{schema.RiskLabelHigh, 1, 100},
		// 70 + round(0.82*30) = 95
		{schema.RiskLabelHigh, 0.82, 95},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, BandScore(c.label, c.confidence), "wrong score for %s/%f", c.label, c.confidence)
	}
}

func TestBandScoreOrdering(t *testing.T) {
	// scores stay ordered across labels regardless of confidence
	for conf := 0.0; conf <= 1.0; conf += 0.05 {
		low := BandScore(schema.RiskLabelLow, conf)
		medium := BandScore(schema.RiskLabelMedium, conf)
		high := BandScore(schema.RiskLabelHigh, conf)

		assert.True(t, low >= 0 && low <= 40)
		assert.True(t, medium >= 40 && medium <= 70)
		assert.True(t, high >= 70 && high <= 100)
	}
}
