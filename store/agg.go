package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/openwellness/burnout-api/schema"
)

func matchDate(date string) bson.M {
	return bson.M{"date": date}
}

func matchDateRange(start, end string) bson.M {
	return bson.M{
		"date": bson.M{
			"$gte": start,
			"$lte": end,
		},
	}
}

func aggStageMatchDate(date string) bson.M {
	return bson.M{"$match": matchDate(date)}
}

// aggStageCountLabel counts documents carrying the given risk label.
/*
{
	$sum: {
		$cond: [{$eq: ["$risk_label", label]}, 1, 0]
	}
}
*/
func aggStageCountLabel(label schema.RiskLabel) bson.M {
	return bson.M{
		"$sum": bson.M{
			"$cond": bson.A{
				bson.M{"$eq": bson.A{specifyField("risk_label"), string(label)}},
				1,
				0,
			},
		},
	}
}

// aggStageGroupByDepartment folds a date's checkouts into one group
// per department: arithmetic means of the wellbeing metrics, one
// counter per risk label, and the checkout total.
func aggStageGroupByDepartment() bson.M {
	return bson.M{
		"$group": bson.M{
			"_id":               specifyField("department"),
			"avg_stress":        bson.M{"$avg": specifyField("self_reported_stress")},
			"avg_sleep":         bson.M{"$avg": specifyField("sleep_hours")},
			"avg_workload":      bson.M{"$avg": specifyField("study_hours")},
			"avg_screen_time":   bson.M{"$avg": specifyField("screen_time_hours")},
			"avg_sentiment":     bson.M{"$avg": specifyField("sentiment_score")},
			"risk_low_count":    aggStageCountLabel(schema.RiskLabelLow),
			"risk_medium_count": aggStageCountLabel(schema.RiskLabelMedium),
			"risk_high_count":   aggStageCountLabel(schema.RiskLabelHigh),
			"total_checkouts":   bson.M{"$sum": 1},
		},
	}
}

func specifyField(fieldName string) string {
	return fmt.Sprintf("$%s", fieldName)
}
