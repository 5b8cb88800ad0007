package schema

const (
	CheckoutCollection = "individualCheckout"
)

type RiskLabel string

const (
	RiskLabelLow    RiskLabel = "Low"
	RiskLabelMedium RiskLabel = "Medium"
	RiskLabelHigh   RiskLabel = "High"
)

// RiskLabels lists every label the classifier may produce.
var RiskLabels = []RiskLabel{RiskLabelLow, RiskLabelMedium, RiskLabelHigh}

// Valid reports whether l is one of the known risk labels.
func (l RiskLabel) Valid() bool {
	switch l {
	case RiskLabelLow, RiskLabelMedium, RiskLabelHigh:
		return true
	}
	return false
}

// CheckoutEvent is one self-reported daily wellbeing submission.
// A user submits at most one per calendar date; resubmission on the
// same date overwrites the whole document.
type CheckoutEvent struct {
	UserIDHash               string    `json:"-" bson:"user_id_hash"`
	Timestamp                int64     `json:"ts" bson:"ts"`
	Date                     string    `json:"date" bson:"date"`
	Department               string    `json:"department" bson:"department"`
	StudyHours               float64   `json:"study_hours" bson:"study_hours"`
	SleepHours               float64   `json:"sleep_hours" bson:"sleep_hours"`
	ScreenTimeHours          float64   `json:"screen_time_hours" bson:"screen_time_hours"`
	EngagementLevel          float64   `json:"engagement_level" bson:"engagement_level"`
	AssignmentDeadlineMissed int       `json:"assignment_deadline_missed" bson:"assignment_deadline_missed"`
	AssignmentsPending       int       `json:"assignments_pending" bson:"assignments_pending"`
	UpcomingDeadlineLoad     int       `json:"upcoming_deadline_load" bson:"upcoming_deadline_load"`
	SelfReportedStress       int       `json:"self_reported_stress" bson:"self_reported_stress"`
	SentimentScore           float64   `json:"sentiment_score" bson:"sentiment_score"`
	BurnoutScore             int       `json:"burnout_score" bson:"burnout_score"`
	RiskLabel                RiskLabel `json:"risk_label" bson:"risk_label"`
	ReflectionText           string    `json:"reflection_text,omitempty" bson:"reflection_text"`
}
