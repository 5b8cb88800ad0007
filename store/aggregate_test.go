package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/openwellness/burnout-api/schema"
)

type fixedHeadcounts map[string]int

func (f fixedHeadcounts) DepartmentHeadcount(department string) (int, bool) {
	n, ok := f[department]
	return n, ok
}

type AggregateTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewAggregateTestSuite(connURI, dbName string) *AggregateTestSuite {
	return &AggregateTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *AggregateTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName, fixedHeadcounts{
		"Counted": 4,
	})

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()
}

func (s *AggregateTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *AggregateTestSuite) submit(userIDHash, date, department string, stress int, sleep float64, label schema.RiskLabel) {
	c := &schema.CheckoutEvent{
		UserIDHash:         userIDHash,
		Timestamp:          time.Now().Unix(),
		Date:               date,
		Department:         department,
		StudyHours:         6,
		SleepHours:         sleep,
		ScreenTimeHours:    8,
		EngagementLevel:    0.5,
		SelfReportedStress: stress,
		SentimentScore:     -0.2,
		BurnoutScore:       80,
		RiskLabel:          label,
	}
	s.Require().NoError(s.store.SaveCheckout(c))
}

// Single checkout: one department row with the single event counted
// under its label, and an organization row entirely in that band.
func (s *AggregateTestSuite) TestSingleHighCheckout() {
	date := "2023-11-06"
	s.submit("agg-user-1", date, "Engineering", 9, 4, schema.RiskLabelHigh)

	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	depts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.NoError(err)
	s.Require().Len(depts, 1)
	s.Equal("Engineering", depts[0].Department)
	s.Equal(1, depts[0].TotalCheckouts)
	s.Equal(1, depts[0].RiskHighCount)
	s.Equal(0, depts[0].RiskLowCount)
	s.Equal(9.0, depts[0].AvgStress)
	s.Equal(4.0, depts[0].AvgSleep)

	orgs, err := s.store.ListOrganizationAggregates(date, date)
	s.NoError(err)
	s.Require().Len(orgs, 1)
	s.Equal(1, orgs[0].TotalCheckouts)
	s.Equal(1.0, orgs[0].RiskHighPct)
}

// Two checkouts in one department: exact means and one counter per
// label, with the label counters summing to the total.
func (s *AggregateTestSuite) TestTwoCheckoutsSameDepartment() {
	date := "2023-11-07"
	s.submit("agg-user-1", date, "Design", 2, 8, schema.RiskLabelLow)
	s.submit("agg-user-2", date, "Design", 8, 5, schema.RiskLabelHigh)

	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	depts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.NoError(err)
	s.Require().Len(depts, 1)
	s.Equal(2, depts[0].TotalCheckouts)
	s.Equal(1, depts[0].RiskLowCount)
	s.Equal(1, depts[0].RiskHighCount)
	s.Equal(5.0, depts[0].AvgStress)
	s.Equal(6.5, depts[0].AvgSleep)

	orgs, err := s.store.ListOrganizationAggregates(date, date)
	s.NoError(err)
	s.Require().Len(orgs, 1)
	s.Equal(depts[0].RiskLowCount+depts[0].RiskMediumCount+depts[0].RiskHighCount, orgs[0].TotalCheckouts)
}

// The organization averages are means of department means: a
// department reporting three times weighs exactly as much as one
// reporting once.
func (s *AggregateTestSuite) TestOrganizationMeanOfMeans() {
	date := "2023-11-08"
	s.submit("agg-user-1", date, "Research", 2, 8, schema.RiskLabelLow)
	s.submit("agg-user-2", date, "Support", 8, 6, schema.RiskLabelHigh)
	s.submit("agg-user-3", date, "Support", 8, 6, schema.RiskLabelHigh)
	s.submit("agg-user-4", date, "Support", 8, 6, schema.RiskLabelMedium)

	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	orgs, err := s.store.ListOrganizationAggregates(date, date)
	s.NoError(err)
	s.Require().Len(orgs, 1)

	// (2+8)/2, not the pooled mean (2+8+8+8)/4
	s.Equal(5.0, orgs[0].AvgStress)
	s.Equal(7.0, orgs[0].AvgSleep)

	// risk percentages are checkout-weighted, the opposite choice
	s.Equal(4, orgs[0].TotalCheckouts)
	s.InDelta(0.25, orgs[0].RiskLowPct, 1e-6)
	s.InDelta(0.25, orgs[0].RiskMediumPct, 1e-6)
	s.InDelta(0.5, orgs[0].RiskHighPct, 1e-6)
	s.InDelta(1.0, orgs[0].RiskLowPct+orgs[0].RiskMediumPct+orgs[0].RiskHighPct, 1e-6)
}

// Re-running aggregation with no new checkouts reproduces identical
// rows, so a transient failure can be retried blindly.
func (s *AggregateTestSuite) TestIdempotence() {
	date := "2023-11-09"
	s.submit("agg-user-1", date, "Engineering", 7, 6, schema.RiskLabelMedium)
	s.submit("agg-user-2", date, "Design", 3, 8, schema.RiskLabelLow)

	s.Require().NoError(s.store.UpdateDailyAggregates(date))
	firstDepts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.Require().NoError(err)
	firstOrgs, err := s.store.ListOrganizationAggregates(date, date)
	s.Require().NoError(err)

	s.Require().NoError(s.store.UpdateDailyAggregates(date))
	secondDepts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.Require().NoError(err)
	secondOrgs, err := s.store.ListOrganizationAggregates(date, date)
	s.Require().NoError(err)

	s.Equal(firstDepts, secondDepts)
	s.Equal(firstOrgs, secondOrgs)
}

// A department with no checkouts on a date gets no aggregate row;
// absence means no data, never zero stress.
func (s *AggregateTestSuite) TestAbsentDepartmentHasNoRow() {
	date := "2023-11-10"
	s.submit("agg-user-1", date, "Engineering", 5, 7, schema.RiskLabelMedium)

	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	depts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.NoError(err)
	s.Require().Len(depts, 1)
	s.Equal("Engineering", depts[0].Department)

	filtered, err := s.store.ListDepartmentAggregates(date, date, []string{"Design"})
	s.NoError(err)
	s.Empty(filtered)
}

// Participation uses the registered headcount when one exists and the
// placeholder fraction when it does not.
func (s *AggregateTestSuite) TestParticipationRate() {
	date := "2023-11-11"
	s.submit("agg-user-1", date, "Counted", 5, 7, schema.RiskLabelMedium)
	s.submit("agg-user-2", date, "Uncounted", 5, 7, schema.RiskLabelMedium)

	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	depts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.NoError(err)
	s.Require().Len(depts, 2)

	byName := map[string]schema.DepartmentAggregate{}
	for _, d := range depts {
		byName[d.Department] = d
	}
	s.InDelta(0.25, byName["Counted"].ParticipationRate, 1e-6)
	s.InDelta(defaultParticipationRate, byName["Uncounted"].ParticipationRate, 1e-6)
}

// A same-day resubmission that moves the user's only checkout to
// another department must also remove the old department's row, or the
// organization rollup would count a department with zero events.
func (s *AggregateTestSuite) TestResubmissionMovesDepartment() {
	date := "2023-11-13"
	s.submit("agg-user-1", date, "Engineering", 3, 8, schema.RiskLabelLow)
	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	s.submit("agg-user-1", date, "Design", 9, 4, schema.RiskLabelHigh)
	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	depts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.NoError(err)
	s.Require().Len(depts, 1, "the abandoned department must lose its row")
	s.Equal("Design", depts[0].Department)
	s.Equal(1, depts[0].TotalCheckouts)

	orgs, err := s.store.ListOrganizationAggregates(date, date)
	s.NoError(err)
	s.Require().Len(orgs, 1)
	s.Equal(1, orgs[0].TotalCheckouts)
	s.Equal(9.0, orgs[0].AvgStress)
	s.InDelta(1.0, orgs[0].RiskHighPct, 1e-6)
}

// A same-day resubmission flips the aggregate rather than inflating it.
func (s *AggregateTestSuite) TestResubmissionReplacesWithinAggregate() {
	date := "2023-11-12"
	s.submit("agg-user-1", date, "Engineering", 3, 8, schema.RiskLabelLow)
	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	s.submit("agg-user-1", date, "Engineering", 9, 4, schema.RiskLabelHigh)
	s.Require().NoError(s.store.UpdateDailyAggregates(date))

	depts, err := s.store.ListDepartmentAggregates(date, date, nil)
	s.NoError(err)
	s.Require().Len(depts, 1)
	s.Equal(1, depts[0].TotalCheckouts)
	s.Equal(0, depts[0].RiskLowCount)
	s.Equal(1, depts[0].RiskHighCount)
	s.Equal(9.0, depts[0].AvgStress)
}

func (s *AggregateTestSuite) TestEmptyRange() {
	depts, err := s.store.ListDepartmentAggregates("2001-01-01", "2001-01-31", nil)
	s.NoError(err)
	s.Empty(depts)

	orgs, err := s.store.ListOrganizationAggregates("2001-01-01", "2001-01-31")
	s.NoError(err)
	s.Empty(orgs)
}

func (s *AggregateTestSuite) TestInvalidDates() {
	s.Equal(ErrInvalidDate, s.store.UpdateDailyAggregates("11/06/2023"))

	_, err := s.store.ListOrganizationAggregates("2023-11-10", "2023-11-01")
	s.Equal(ErrInvalidDateRange, err)
}

func TestAggregateTestSuite(t *testing.T) {
	suite.Run(t, NewAggregateTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
