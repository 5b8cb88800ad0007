package score

import (
	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/openwellness/burnout-api/schema"
	"github.com/openwellness/burnout-api/utils"
)

type recommendationRule struct {
	messageID string
	fallback  string
	applies   func(e schema.CheckoutEvent) bool
}

var recommendationRules = []recommendationRule{
	{
		messageID: "recommendations.low_sleep",
		fallback:  "Sleep is critically low. Aim for 7-9 hours tonight.",
		applies:   func(e schema.CheckoutEvent) bool { return e.SleepHours < 6 },
	},
	{
		messageID: "recommendations.high_screen_time",
		fallback:  "High screen time detected. Reduce screen exposure before bed.",
		applies:   func(e schema.CheckoutEvent) bool { return e.ScreenTimeHours > 10 },
	},
	{
		messageID: "recommendations.high_stress",
		fallback:  "High stress detected. Consider breathing exercises or talking to someone.",
		applies:   func(e schema.CheckoutEvent) bool { return e.SelfReportedStress >= 8 },
	},
	{
		messageID: "recommendations.assignment_backlog",
		fallback:  "Break pending tasks into smaller steps.",
		applies:   func(e schema.CheckoutEvent) bool { return e.AssignmentsPending >= 4 },
	},
	{
		messageID: "recommendations.low_engagement",
		fallback:  "Low engagement today. Reflect on blockers or distractions.",
		applies:   func(e schema.CheckoutEvent) bool { return e.EngagementLevel < 0.6 },
	},
	{
		messageID: "recommendations.high_risk",
		fallback:  "Consider reaching out to a trusted person or support service.",
		applies:   func(e schema.CheckoutEvent) bool { return e.RiskLabel == schema.RiskLabelHigh },
	},
}

// Recommendations returns the localized rule-based suggestions that
// apply to a scored checkout. The rules are advisory wellbeing nudges,
// not a diagnosis.
func Recommendations(lang string, e schema.CheckoutEvent) []string {
	loc := utils.NewLocalizer(lang)

	recs := make([]string, 0)
	for _, r := range recommendationRules {
		if !r.applies(e) {
			continue
		}

		if msg, err := loc.Localize(&i18n.LocalizeConfig{MessageID: r.messageID}); err == nil {
			recs = append(recs, msg)
		} else {
			recs = append(recs, r.fallback)
		}
	}

	return recs
}
