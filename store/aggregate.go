package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openwellness/burnout-api/consts"
	"github.com/openwellness/burnout-api/schema"
)

// Aggregator recomputes the daily rollup tables.
type Aggregator interface {
	UpdateDailyAggregates(date string) error
}

// deptGroup is the shape produced by aggStageGroupByDepartment.
type deptGroup struct {
	Department      string  `bson:"_id"`
	AvgStress       float64 `bson:"avg_stress"`
	AvgSleep        float64 `bson:"avg_sleep"`
	AvgWorkload     float64 `bson:"avg_workload"`
	AvgScreenTime   float64 `bson:"avg_screen_time"`
	AvgSentiment    float64 `bson:"avg_sentiment"`
	RiskLowCount    int     `bson:"risk_low_count"`
	RiskMediumCount int     `bson:"risk_medium_count"`
	RiskHighCount   int     `bson:"risk_high_count"`
	TotalCheckouts  int     `bson:"total_checkouts"`
}

// UpdateDailyAggregates recomputes the department aggregates of a date
// from that date's checkouts, then recomputes the organization
// aggregate of the same date from the freshly written department rows.
//
// Both steps fully replace their target rows, so re-running with an
// unchanged checkout set reproduces identical documents and the call
// is safe to retry. The two collections are written sequentially
// without a cross-collection transaction; concurrent submissions for
// the same date converge because the last run recomputes both tables
// from the same full rescan.
func (m *mongoDB) UpdateDailyAggregates(date string) error {
	if _, err := consts.ParseDate(date); err != nil {
		return ErrInvalidDate
	}

	groups, err := m.groupCheckoutsByDepartment(date)
	if err != nil {
		return err
	}

	if err := m.replaceDepartmentAggregates(date, groups); err != nil {
		return err
	}

	return m.replaceOrganizationAggregate(date)
}

func (m *mongoDB) groupCheckoutsByDepartment(date string) ([]deptGroup, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	pipeline := []bson.M{
		aggStageMatchDate(date),
		aggStageGroupByDepartment(),
	}

	cursor, err := c.Collection(schema.CheckoutCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}

	groups := []deptGroup{}
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}

	return groups, nil
}

// replaceDepartmentAggregates writes one aggregate row per department
// that has checkouts on the date and removes the rows of departments
// that no longer have any. A department without checkouts gets no row;
// absence means no data, not zero stress. The removal matters when a
// same-day resubmission moves a user's only checkout to another
// department, which would otherwise leave a stale row behind.
func (m *mongoDB) replaceDepartmentAggregates(date string, groups []deptGroup) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	departments := make([]string, 0, len(groups))
	for _, g := range groups {
		departments = append(departments, g.Department)
	}

	for _, g := range groups {
		row := schema.DepartmentAggregate{
			Date:              date,
			Department:        g.Department,
			AvgStress:         g.AvgStress,
			AvgSleep:          g.AvgSleep,
			AvgWorkload:       g.AvgWorkload,
			AvgScreenTime:     g.AvgScreenTime,
			AvgSentiment:      g.AvgSentiment,
			RiskLowCount:      g.RiskLowCount,
			RiskMediumCount:   g.RiskMediumCount,
			RiskHighCount:     g.RiskHighCount,
			TotalCheckouts:    g.TotalCheckouts,
			ParticipationRate: m.participationRate(g.Department, g.TotalCheckouts),
		}

		filter := bson.M{"date": date, "department": g.Department}
		opts := options.Replace().SetUpsert(true)
		if _, err := c.Collection(schema.DepartmentAggregateCollection).ReplaceOne(ctx, filter, &row, opts); err != nil {
			return err
		}
	}

	_, err := c.Collection(schema.DepartmentAggregateCollection).DeleteMany(ctx, bson.M{
		"date":       date,
		"department": bson.M{"$nin": departments},
	})
	return err
}

// replaceOrganizationAggregate derives the single org row of a date
// from that date's department rows. The avg_* figures are unweighted
// means across departments so a large department cannot dominate the
// organizational read, while the risk percentages are weighted by
// checkout count because they are population statistics.
func (m *mongoDB) replaceOrganizationAggregate(date string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	cursor, err := c.Collection(schema.DepartmentAggregateCollection).Find(ctx, matchDate(date),
		options.Find().SetSort(bson.M{"department": 1}))
	if err != nil {
		return err
	}

	rows := []schema.DepartmentAggregate{}
	if err := cursor.All(ctx, &rows); err != nil {
		return err
	}

	if len(rows) == 0 {
		log.WithField("prefix", mongoLogPrefix).
			WithField("date", date).Warn("no department aggregates to roll up")
		_, err := c.Collection(schema.OrganizationAggregateCollection).DeleteOne(ctx, matchDate(date))
		return err
	}

	var (
		stressSum, sleepSum, workloadSum, participationSum float64
		lowSum, mediumSum, highSum, totalSum               int
	)
	for _, r := range rows {
		stressSum += r.AvgStress
		sleepSum += r.AvgSleep
		workloadSum += r.AvgWorkload
		participationSum += r.ParticipationRate
		lowSum += r.RiskLowCount
		mediumSum += r.RiskMediumCount
		highSum += r.RiskHighCount
		totalSum += r.TotalCheckouts
	}

	n := float64(len(rows))
	org := schema.OrganizationAggregate{
		Date:              date,
		AvgStress:         stressSum / n,
		AvgSleep:          sleepSum / n,
		AvgWorkload:       workloadSum / n,
		TotalCheckouts:    totalSum,
		ParticipationRate: participationSum / n,
	}

	if totalSum > 0 {
		org.RiskLowPct = float64(lowSum) / float64(totalSum)
		org.RiskMediumPct = float64(mediumSum) / float64(totalSum)
		org.RiskHighPct = float64(highSum) / float64(totalSum)
	}

	opts := options.Replace().SetUpsert(true)
	_, err = c.Collection(schema.OrganizationAggregateCollection).ReplaceOne(ctx, matchDate(date), &org, opts)
	return err
}

func (m *mongoDB) participationRate(department string, totalCheckouts int) float64 {
	if m.headcounts != nil {
		if headcount, ok := m.headcounts.DepartmentHeadcount(department); ok && headcount > 0 {
			rate := float64(totalCheckouts) / float64(headcount)
			if rate > 1 {
				return 1
			}
			return rate
		}
	}
	return m.participationFallback
}
