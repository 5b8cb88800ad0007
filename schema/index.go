package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexCheckoutCollection())
	panicIfError(m.IndexDepartmentAggregateCollection())
	panicIfError(m.IndexOrganizationAggregateCollection())
}

// IndexCheckoutCollection enforces one checkout per user per date so
// that a same-day resubmission replaces instead of duplicating.
func (m *MongoDBIndexer) IndexCheckoutCollection() error {
	return m.createIndex(CheckoutCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id_hash", Value: 1},
			{Key: "date", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexDepartmentAggregateCollection() error {
	return m.createIndex(DepartmentAggregateCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "date", Value: 1},
			{Key: "department", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
}

func (m *MongoDBIndexer) IndexOrganizationAggregateCollection() error {
	return m.createIndex(OrganizationAggregateCollection, mongo.IndexModel{
		Keys:    bson.M{"date": 1},
		Options: options.Index().SetUnique(true),
	})
}
