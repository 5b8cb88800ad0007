package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"

	"github.com/openwellness/burnout-api/consts"
	"github.com/openwellness/burnout-api/external/classifier"
	"github.com/openwellness/burnout-api/schema"
	"github.com/openwellness/burnout-api/score"
	"github.com/openwellness/burnout-api/utils"
)

const defaultHistoryWindowDays = 30

// CheckoutRequest is one daily wellbeing submission.
type CheckoutRequest struct {
	Email                    string  `json:"email"`
	Department               string  `json:"department"`
	StudyHours               float64 `json:"study_hours"`
	SleepHours               float64 `json:"sleep_hours"`
	ScreenTimeHours          float64 `json:"screen_time_hours"`
	EngagementLevel          float64 `json:"engagement_level"`
	AssignmentDeadlineMissed int     `json:"assignment_deadline_missed"`
	AssignmentsPending       int     `json:"assignments_pending"`
	UpcomingDeadlineLoad     int     `json:"upcoming_deadline_load"`
	SelfReportedStress       int     `json:"self_reported_stress"`
	SentimentScore           float64 `json:"sentiment_score"`
	Reflection               string  `json:"reflection"`
}

func (r CheckoutRequest) validate() error {
	switch {
	case r.Email == "":
		return fmt.Errorf("empty email")
	case r.Department == "":
		return fmt.Errorf("empty department")
	case r.StudyHours < 0 || r.StudyHours > 24:
		return fmt.Errorf("study_hours out of range")
	case r.SleepHours < 0 || r.SleepHours > 24:
		return fmt.Errorf("sleep_hours out of range")
	case r.ScreenTimeHours < 0 || r.ScreenTimeHours > 24:
		return fmt.Errorf("screen_time_hours out of range")
	case r.EngagementLevel < 0 || r.EngagementLevel > 1:
		return fmt.Errorf("engagement_level out of range")
	case r.AssignmentDeadlineMissed != 0 && r.AssignmentDeadlineMissed != 1:
		return fmt.Errorf("assignment_deadline_missed must be 0 or 1")
	case r.AssignmentsPending < 0:
		return fmt.Errorf("negative assignments_pending")
	case r.UpcomingDeadlineLoad < 0:
		return fmt.Errorf("negative upcoming_deadline_load")
	case r.SelfReportedStress < 1 || r.SelfReportedStress > 10:
		return fmt.Errorf("self_reported_stress out of range")
	case r.SentimentScore < -1 || r.SentimentScore > 1:
		return fmt.Errorf("sentiment_score out of range")
	}
	return nil
}

// submitCheckout scores one submission and persists it, then
// synchronously recomputes the daily rollup of the affected date.
func (s *Server) submitCheckout(c *gin.Context) {
	var params CheckoutRequest
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := params.validate(); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	now := time.Now()
	checkout := schema.CheckoutEvent{
		UserIDHash:               utils.HashUserID(params.Email),
		Timestamp:                now.Unix(),
		Date:                     consts.DateOf(now),
		Department:               params.Department,
		StudyHours:               params.StudyHours,
		SleepHours:               params.SleepHours,
		ScreenTimeHours:          params.ScreenTimeHours,
		EngagementLevel:          params.EngagementLevel,
		AssignmentDeadlineMissed: params.AssignmentDeadlineMissed,
		AssignmentsPending:       params.AssignmentsPending,
		UpcomingDeadlineLoad:     params.UpcomingDeadlineLoad,
		SelfReportedStress:       params.SelfReportedStress,
		SentimentScore:           params.SentimentScore,
		ReflectionText:           params.Reflection,
	}

	engagement, cognitiveLoad := score.DeriveFeatures(&checkout)

	probs, err := s.classifier.PredictProbabilities(classifier.FeatureVector{
		StudyHours:         checkout.StudyHours,
		ScreenTimeHours:    checkout.ScreenTimeHours,
		SleepHours:         checkout.SleepHours,
		SelfReportedStress: checkout.SelfReportedStress,
		SentimentScore:     checkout.SentimentScore,
		EngagementScore:    engagement,
		CognitiveLoadScore: cognitiveLoad,
	})
	if err != nil {
		// fail fast: never record a score without its label
		abortWithEncoding(c, http.StatusServiceUnavailable, errorClassifierUnavailable, err)
		return
	}

	label, confidence := score.ResolvePrediction(probs)
	checkout.RiskLabel = label
	checkout.BurnoutScore = score.BandScore(label, confidence)

	if err := s.mongoStore.SaveCheckout(&checkout); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorCheckoutSave, err)
		return
	}

	// The individual record is durable at this point. A rollup failure
	// is reported and retried in the background but never turns the
	// user's own successful submission into a failure.
	if err := s.mongoStore.UpdateDailyAggregates(checkout.Date); err != nil {
		log.WithError(err).WithField("date", checkout.Date).Error("update daily aggregates")
		sentry.CaptureException(err)
		s.enqueueAggregateUpdate(checkout.Date)
	}

	c.JSON(http.StatusOK, gin.H{
		"score":           checkout.BurnoutScore,
		"label":           checkout.RiskLabel,
		"recommendations": score.Recommendations(c.GetHeader("Accept-Language"), checkout),
	})
}

func (s *Server) enqueueAggregateUpdate(date string) {
	if s.background == nil {
		return
	}

	if _, err := s.background.SendTask(&tasks.Signature{
		Name: "update_aggregates",
		Args: []tasks.Arg{
			{Type: "string", Value: date},
		},
	}); err != nil {
		log.WithError(err).Error("enqueue aggregate update")
		sentry.CaptureException(err)
	}
}

type historyQueryParams struct {
	Email string `form:"email"`
	Days  int    `form:"days"`
}

// checkoutHistory returns the requester's own past checkouts, most
// recent first.
func (s *Server) checkoutHistory(c *gin.Context) {
	var params historyQueryParams
	if err := c.Bind(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Email == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("empty email"))
		return
	}

	days := params.Days
	switch {
	case days == 0:
		days = defaultHistoryWindowDays
	case days < 0:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, fmt.Errorf("negative days"))
		return
	}

	history, err := s.mongoStore.GetUserHistory(utils.HashUserID(params.Email), days)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorCheckoutHistory, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkouts": history})
}
