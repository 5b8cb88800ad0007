package score

import (
	"github.com/openwellness/burnout-api/schema"
)

const (
	optimalStudyHours = 5.0
	studyHourSpread   = 6.0

	studyWeight      = 0.4
	engagementWeight = 0.6
	deadlinePenalty  = 0.3

	assignmentsWeight = 0.6
	deadlinesWeight   = 0.4

	// Counters above this value carry no extra signal for the model.
	maxCountedBacklog = 5
)

// EngagementScore maps study hours, self-reported engagement and a
// missed-deadline flag into a 0-10 engagement feature. Study time is
// scored against a 5-hour optimum, penalizing deviation in either
// direction.
func EngagementScore(studyHours, engagementLevel float64, missedDeadline bool) float64 {
	studyComponent := clamp01(1 - abs(studyHours-optimalStudyHours)/studyHourSpread)

	raw := studyWeight*studyComponent + engagementWeight*engagementLevel
	if missedDeadline {
		raw -= deadlinePenalty
	}

	return clamp(raw*10, 0, 10)
}

// CognitiveLoad maps the pending-assignment and upcoming-deadline
// counters into a 0-10 mental-load feature. Callers clamp both
// counters to maxCountedBacklog first; ClampBacklog does that.
func CognitiveLoad(assignmentsPending, upcomingDeadlines int) float64 {
	assignmentsNorm := clamp01(float64(assignmentsPending) / maxCountedBacklog)
	deadlinesNorm := clamp01(float64(upcomingDeadlines) / maxCountedBacklog)

	load := (assignmentsWeight*assignmentsNorm + deadlinesWeight*deadlinesNorm) * 10
	if load > 10 {
		return 10
	}
	return load
}

// ClampBacklog caps a backlog counter at the value the model was
// trained on.
func ClampBacklog(n int) int {
	if n > maxCountedBacklog {
		return maxCountedBacklog
	}
	return n
}

// DeriveFeatures clamps the backlog counters of a checkout and returns
// the two derived model features. The clamped counters are written
// back so the stored document matches what the classifier saw.
func DeriveFeatures(e *schema.CheckoutEvent) (engagement, cognitiveLoad float64) {
	e.AssignmentsPending = ClampBacklog(e.AssignmentsPending)
	e.UpcomingDeadlineLoad = ClampBacklog(e.UpcomingDeadlineLoad)

	engagement = EngagementScore(e.StudyHours, e.EngagementLevel, e.AssignmentDeadlineMissed != 0)
	cognitiveLoad = CognitiveLoad(e.AssignmentsPending, e.UpcomingDeadlineLoad)
	return engagement, cognitiveLoad
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
