package background

import (
	log "github.com/sirupsen/logrus"
)

// UpdateAggregates re-runs the daily rollup for a date. Aggregation is
// idempotent, so the task is safe to retry after the submission that
// originally triggered it has long succeeded.
func (m *BackgroundManager) UpdateAggregates(date string) error {
	log.WithField("prefix", "background").WithField("date", date).Info("recomputing daily aggregates")

	if err := m.mongo.UpdateDailyAggregates(date); err != nil {
		log.WithField("prefix", "background").WithError(err).WithField("date", date).Error("recompute daily aggregates")
		return err
	}

	return nil
}
