package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openwellness/burnout-api/consts"
	"github.com/openwellness/burnout-api/schema"
)

// AggregateReader - read-only range queries over the rollup tables
type AggregateReader interface {
	ListDepartmentAggregates(start, end string, departments []string) ([]schema.DepartmentAggregate, error)
	ListOrganizationAggregates(start, end string) ([]schema.OrganizationAggregate, error)
}

func validateRange(start, end string) error {
	if _, err := consts.ParseDate(start); err != nil {
		return ErrInvalidDate
	}
	if _, err := consts.ParseDate(end); err != nil {
		return ErrInvalidDate
	}
	if start > end {
		return ErrInvalidDateRange
	}
	return nil
}

// ListDepartmentAggregates returns the department rows of the date
// range ordered by (date, department), optionally restricted to the
// given departments. A range without data yields an empty slice.
func (m *mongoDB) ListDepartmentAggregates(start, end string, departments []string) ([]schema.DepartmentAggregate, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	query := matchDateRange(start, end)
	if len(departments) > 0 {
		query["department"] = bson.M{"$in": departments}
	}

	cursor, err := c.Collection(schema.DepartmentAggregateCollection).Find(ctx, query,
		options.Find().SetSort(bson.D{
			{Key: "date", Value: 1},
			{Key: "department", Value: 1},
		}))
	if err != nil {
		return nil, err
	}

	rows := []schema.DepartmentAggregate{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	for i := range rows {
		if rows[i].TotalCheckouts > 0 {
			total := float64(rows[i].TotalCheckouts)
			rows[i].RiskLowPct = float64(rows[i].RiskLowCount) / total
			rows[i].RiskMediumPct = float64(rows[i].RiskMediumCount) / total
			rows[i].RiskHighPct = float64(rows[i].RiskHighCount) / total
		}
	}

	return rows, nil
}

// ListOrganizationAggregates returns the organization rows of the date
// range ordered by date. A range without data yields an empty slice.
func (m *mongoDB) ListOrganizationAggregates(start, end string) ([]schema.OrganizationAggregate, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	cursor, err := c.Collection(schema.OrganizationAggregateCollection).Find(ctx, matchDateRange(start, end),
		options.Find().SetSort(bson.M{"date": 1}))
	if err != nil {
		return nil, err
	}

	rows := []schema.OrganizationAggregate{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}
