package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix = "mongo"
	defaultTimeout = 5 * time.Second

	// participation fallback when a department has no registered
	// headcount and no rate is configured; a placeholder until true
	// headcount data arrives
	defaultParticipationRate = 0.8
)

// fallbackParticipationRate returns the configured participation rate
// used for departments without a registered headcount.
func fallbackParticipationRate() float64 {
	if rate := viper.GetFloat64("aggregation.participation_fallback"); rate > 0 {
		return rate
	}
	return defaultParticipationRate
}

// HeadcountProvider reports the expected headcount of a department.
// The second return value is false when no headcount is registered.
type HeadcountProvider interface {
	DepartmentHeadcount(department string) (int, bool)
}

// MongoStore - interface for mongodb operations
type MongoStore interface {
	Checkout
	Aggregator
	AggregateReader
	Closer
	Pinger
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client                *mongo.Client
	database              string
	headcounts            HeadcountProvider
	participationFallback float64
}

// Ping - ping mongo db
func (m *mongoDB) Ping() error {
	return m.client.Ping(context.Background(), nil)
}

// Close - close mongo db connections
func (m *mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// NewMongoStore - return mongo db operations. headcounts may be nil,
// in which case every department uses the fallback participation rate.
func NewMongoStore(client *mongo.Client, database string, headcounts HeadcountProvider) MongoStore {
	return &mongoDB{
		client:                client,
		database:              database,
		headcounts:            headcounts,
		participationFallback: fallbackParticipationRate(),
	}
}
