package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openwellness/burnout-api/consts"
	"github.com/openwellness/burnout-api/schema"
)

// Checkout - individual checkout operations
type Checkout interface {
	SaveCheckout(checkout *schema.CheckoutEvent) error
	GetUserHistory(userIDHash string, windowDays int) ([]schema.CheckoutEvent, error)
}

// SaveCheckout writes one checkout document. The collection holds at
// most one document per (user_id_hash, date); a resubmission on the
// same date replaces the whole document, so the stored raw inputs
// always belong to the stored score.
func (m *mongoDB) SaveCheckout(checkout *schema.CheckoutEvent) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	filter := bson.M{
		"user_id_hash": checkout.UserIDHash,
		"date":         checkout.Date,
	}

	opts := options.Replace().SetUpsert(true)
	_, err := c.Collection(schema.CheckoutCollection).ReplaceOne(ctx, filter, checkout, opts)
	return err
}

// GetUserHistory returns a user's checkouts of the past windowDays
// days, most recent first.
func (m *mongoDB) GetUserHistory(userIDHash string, windowDays int) ([]schema.CheckoutEvent, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	c := m.client.Database(m.database)

	cutoff := consts.DateOf(time.Now().AddDate(0, 0, -windowDays))
	query := bson.M{
		"user_id_hash": userIDHash,
		"date":         bson.M{"$gte": cutoff},
	}

	cursor, err := c.Collection(schema.CheckoutCollection).Find(ctx, query,
		options.Find().SetSort(bson.M{"date": -1}))
	if err != nil {
		return nil, err
	}

	checkouts := []schema.CheckoutEvent{}
	if err := cursor.All(ctx, &checkouts); err != nil {
		return nil, err
	}

	return checkouts, nil
}
