package classifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/openwellness/burnout-api/schema"
)

const (
	defaultURL     = "http://127.0.0.1:8501/predict"
	defaultTimeout = 10 * time.Second
	statusOK       = "ok"
)

var (
	errResponseStatus = fmt.Errorf("response status not ok")
	errBadStatusCode  = fmt.Errorf("unexpected status code")
)

// FeatureVector is the input of the externally trained burnout model:
// the five raw metrics it was fitted on plus the two derived features.
type FeatureVector struct {
	StudyHours         float64 `json:"study_hours"`
	ScreenTimeHours    float64 `json:"screen_time_hours"`
	SleepHours         float64 `json:"sleep_hours"`
	SelfReportedStress int     `json:"self_reported_stress"`
	SentimentScore     float64 `json:"sentiment_score"`
	EngagementScore    float64 `json:"engagement_score"`
	CognitiveLoadScore float64 `json:"cognitive_load_score"`
}

// Classifier is the capability exposed by the model service. The
// returned probabilities cover every known risk label and sum to 1.
type Classifier interface {
	PredictProbabilities(features FeatureVector) (map[schema.RiskLabel]float64, error)
}

type classifier struct {
	url    string
	client *http.Client
}

type jsonResponse struct {
	Status        string             `json:"status"`
	Probabilities map[string]float64 `json:"probabilities"`
}

func (c classifier) PredictProbabilities(features FeatureVector) (map[schema.RiskLabel]float64, error) {
	body, err := json.Marshal(features)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Post(c.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d", errBadStatusCode, resp.StatusCode)
	}

	var r jsonResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, err
	}

	if r.Status != statusOK {
		return nil, errResponseStatus
	}

	probs := make(map[schema.RiskLabel]float64, len(r.Probabilities))
	for label, p := range r.Probabilities {
		l := schema.RiskLabel(label)
		if !l.Valid() {
			return nil, fmt.Errorf("unknown risk label %q in model response", label)
		}
		probs[l] = p
	}

	if len(probs) == 0 {
		return nil, errResponseStatus
	}

	return probs, nil
}

// New returns a Classifier backed by the model inference service. An
// empty url falls back to the default local endpoint.
func New(url string) Classifier {
	u := defaultURL
	if url != "" {
		u = url
	}

	return &classifier{
		url: u,
		client: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}
