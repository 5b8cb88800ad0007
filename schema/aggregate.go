package schema

const (
	DepartmentAggregateCollection   = "departmentAggregate"
	OrganizationAggregateCollection = "organizationAggregate"
)

// DepartmentAggregate summarizes every checkout of one department on
// one date. Rows are fully replaced on recomputation, never adjusted
// incrementally.
type DepartmentAggregate struct {
	Date              string  `json:"date" bson:"date"`
	Department        string  `json:"department" bson:"department"`
	AvgStress         float64 `json:"avg_stress" bson:"avg_stress"`
	AvgSleep          float64 `json:"avg_sleep" bson:"avg_sleep"`
	AvgWorkload       float64 `json:"avg_workload" bson:"avg_workload"`
	AvgScreenTime     float64 `json:"avg_screen_time" bson:"avg_screen_time"`
	AvgSentiment      float64 `json:"avg_sentiment" bson:"avg_sentiment"`
	RiskLowCount      int     `json:"risk_low_count" bson:"risk_low_count"`
	RiskMediumCount   int     `json:"risk_medium_count" bson:"risk_medium_count"`
	RiskHighCount     int     `json:"risk_high_count" bson:"risk_high_count"`
	TotalCheckouts    int     `json:"total_checkouts" bson:"total_checkouts"`
	ParticipationRate float64 `json:"participation_rate" bson:"participation_rate"`

	// Derived for query responses, never persisted.
	RiskLowPct    float64 `json:"risk_low_pct" bson:"-"`
	RiskMediumPct float64 `json:"risk_medium_pct" bson:"-"`
	RiskHighPct   float64 `json:"risk_high_pct" bson:"-"`
}

// OrganizationAggregate is the org-wide rollup for one date, derived
// solely from the DepartmentAggregate rows of that date. The avg_*
// figures are unweighted means across departments while the risk
// percentages are weighted by checkout count.
type OrganizationAggregate struct {
	Date              string  `json:"date" bson:"date"`
	AvgStress         float64 `json:"avg_stress" bson:"avg_stress"`
	AvgSleep          float64 `json:"avg_sleep" bson:"avg_sleep"`
	AvgWorkload       float64 `json:"avg_workload" bson:"avg_workload"`
	RiskLowPct        float64 `json:"risk_low_pct" bson:"risk_low_pct"`
	RiskMediumPct     float64 `json:"risk_medium_pct" bson:"risk_medium_pct"`
	RiskHighPct       float64 `json:"risk_high_pct" bson:"risk_high_pct"`
	TotalCheckouts    int     `json:"total_checkouts" bson:"total_checkouts"`
	ParticipationRate float64 `json:"participation_rate" bson:"participation_rate"`
}
