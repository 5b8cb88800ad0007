package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/openwellness/burnout-api/api/mocks"
	"github.com/openwellness/burnout-api/schema"
	"github.com/openwellness/burnout-api/utils"
)

func validCheckoutRequest() CheckoutRequest {
	return CheckoutRequest{
		Email:                "user@example.com",
		Department:           "Engineering",
		StudyHours:           9,
		SleepHours:           4,
		ScreenTimeHours:      11,
		EngagementLevel:      0.5,
		AssignmentsPending:   7,
		UpcomingDeadlineLoad: 3,
		SelfReportedStress:   9,
		SentimentScore:       -0.4,
	}
}

func postCheckout(s *Server, req CheckoutRequest) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.submitCheckout)

	body, _ := json.Marshal(req)
	r := httptest.NewRequest("POST", "/", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestSubmitCheckout(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	cl := mocks.NewMockClassifier(ctl)

	s := Server{
		mongoStore: m,
		classifier: cl,
	}

	cl.EXPECT().PredictProbabilities(gomock.Any()).Return(map[schema.RiskLabel]float64{
		schema.RiskLabelLow:    0.1,
		schema.RiskLabelMedium: 0.08,
		schema.RiskLabelHigh:   0.82,
	}, nil).Times(1)

	var saved schema.CheckoutEvent
	m.EXPECT().SaveCheckout(gomock.Any()).DoAndReturn(func(c *schema.CheckoutEvent) error {
		saved = *c
		return nil
	}).Times(1)
	m.EXPECT().UpdateDailyAggregates(gomock.Any()).Return(nil).Times(1)

	w := postCheckout(&s, validCheckoutRequest())

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Score           int      `json:"score"`
		Label           string   `json:"label"`
		Recommendations []string `json:"recommendations"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	// 70 + round(0.82*30)
	assert.Equal(t, 95, jResp.Score, "wrong banded score")
	assert.Equal(t, "High", jResp.Label, "wrong label")
	assert.NotEmpty(t, jResp.Recommendations)

	assert.Equal(t, utils.HashUserID("user@example.com"), saved.UserIDHash, "email must be stored hashed")
	assert.Equal(t, 95, saved.BurnoutScore)
	assert.Equal(t, schema.RiskLabelHigh, saved.RiskLabel)
	assert.Equal(t, 5, saved.AssignmentsPending, "backlog counter must be clamped before persisting")
}

func TestSubmitCheckoutInvalidMetric(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{
		mongoStore: mocks.NewMockMongoStore(ctl),
		classifier: mocks.NewMockClassifier(ctl),
	}

	req := validCheckoutRequest()
	req.SelfReportedStress = 0

	w := postCheckout(&s, req)
	assert.Equal(t, http.StatusBadRequest, w.Code, "out-of-range metric must be rejected before classification")
}

func TestSubmitCheckoutClassifierUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	cl := mocks.NewMockClassifier(ctl)

	s := Server{
		mongoStore: m,
		classifier: cl,
	}

	cl.EXPECT().PredictProbabilities(gomock.Any()).Return(nil, errors.New("connection refused")).Times(1)
	// no partial write: the store must never be touched

	w := postCheckout(&s, validCheckoutRequest())
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
}

func TestSubmitCheckoutStoreWriteFailure(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	cl := mocks.NewMockClassifier(ctl)

	s := Server{
		mongoStore: m,
		classifier: cl,
	}

	cl.EXPECT().PredictProbabilities(gomock.Any()).Return(map[schema.RiskLabel]float64{
		schema.RiskLabelLow: 1,
	}, nil).Times(1)
	m.EXPECT().SaveCheckout(gomock.Any()).Return(errors.New("write failed")).Times(1)
	// aggregation must not run when the checkout write failed

	w := postCheckout(&s, validCheckoutRequest())
	assert.Equal(t, http.StatusInternalServerError, w.Code, "wrong status code")
}

func TestSubmitCheckoutAggregationFailureStillSucceeds(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)
	cl := mocks.NewMockClassifier(ctl)

	s := Server{
		mongoStore: m,
		classifier: cl,
	}

	cl.EXPECT().PredictProbabilities(gomock.Any()).Return(map[schema.RiskLabel]float64{
		schema.RiskLabelMedium: 0.9,
		schema.RiskLabelLow:    0.1,
	}, nil).Times(1)
	m.EXPECT().SaveCheckout(gomock.Any()).Return(nil).Times(1)
	m.EXPECT().UpdateDailyAggregates(gomock.Any()).Return(errors.New("rollup failed")).Times(1)

	// the checkout itself is durable; the rollup failure is retried in
	// the background and never surfaces to the submitter
	w := postCheckout(&s, validCheckoutRequest())
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Equal(t, "Medium", jResp["label"])
}

func TestCheckoutHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
	}

	m.EXPECT().GetUserHistory(utils.HashUserID("user@example.com"), 7).Return([]schema.CheckoutEvent{
		{Date: "2023-11-07", BurnoutScore: 52, RiskLabel: schema.RiskLabelMedium},
		{Date: "2023-11-06", BurnoutScore: 20, RiskLabel: schema.RiskLabelLow},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.checkoutHistory)

	req := httptest.NewRequest("GET", "/?email=user@example.com&days=7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Checkouts []schema.CheckoutEvent `json:"checkouts"`
	}
	assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &jResp))
	assert.Len(t, jResp.Checkouts, 2)
	assert.Equal(t, "2023-11-07", jResp.Checkouts[0].Date)
}
