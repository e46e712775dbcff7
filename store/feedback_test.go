package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/somireddylaw/feedback-api/schema"
)

type FeedbackTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
}

func NewFeedbackTestSuite(connURI, dbName string) *FeedbackTestSuite {
	return &FeedbackTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *FeedbackTestSuite) SetupSuite() {
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

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	if err := schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *FeedbackTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	if _, err := s.testDatabase.Collection(schema.FeedbackCollection).InsertMany(ctx, []interface{}{
		schema.Feedback{
			ClientType: schema.ClientTypeIndividual,
			Email:      "august@example.com",
			Title:      "Mr.",
			FirstName:  "August",
			LastName:   "Ferdinand",
			Services:   []string{"Immigration"},
			Individuals: []string{
				"Alice",
			},
			Ratings: map[string]map[string]int{
				"Alice": {"Responsiveness": 4, "Clarity": 2},
			},
			Feedbacks: map[string]string{
				"Alice": "ok",
			},
			Recommend: schema.RecommendYes,
			CreatedAt: time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		schema.Feedback{
			ClientType: schema.ClientTypeIndividual,
			Email:      "maria.von@example.com",
			Title:      "Ms.",
			FirstName:  "Maria",
			LastName:   "Ferdinand",
			Services:   []string{"Corporate Law"},
			Individuals: []string{
				"Alice", "Bob",
			},
			Ratings: map[string]map[string]int{
				"Alice": {"Responsiveness": 5, "Clarity": 5},
				"Bob":   {"Responsiveness": 3, "Clarity": 3},
			},
			Feedbacks: map[string]string{
				"Alice": "excellent",
				"Bob":   "fine",
			},
			Recommend: schema.RecommendYes,
			CreatedAt: time.Date(2023, 6, 15, 23, 30, 0, 0, time.UTC),
		},
		schema.Feedback{
			ClientType:       schema.ClientTypeCorporate,
			Email:            "contact@globex.example",
			CompanyName:      "Globex",
			CompanyEmail:     "contact@globex.example",
			OrganizationName: "Globex Corporation",
			Services:         []string{"Corporate Law"},
			Individuals:      []string{"Bob"},
			Ratings: map[string]map[string]int{
				"Bob": {"Responsiveness": 1, "Clarity": 2},
			},
			Feedbacks: map[string]string{
				"Bob": "slow",
			},
			Recommend: schema.RecommendNo,
			CreatedAt: time.Date(2023, 7, 2, 8, 0, 0, 0, time.UTC),
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *FeedbackTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *FeedbackTestSuite) TestCreateFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	email := fmt.Sprintf("%s@example.com", uuid.New().String())
	id, err := store.CreateFeedback(schema.Feedback{
		ClientType:  schema.ClientTypeIndividual,
		Email:       email,
		FirstName:   "Test",
		LastName:    "Client",
		Services:    []string{"Immigration"},
		Individuals: []string{"Alice"},
		Recommend:   schema.RecommendYes,
	})
	s.NoError(err)
	s.NotEmpty(id)

	stored, err := store.GetFeedbackByEmail(email)
	s.NoError(err)
	s.Equal("Test", stored.FirstName)
	s.False(stored.CreatedAt.IsZero())
}

func (s *FeedbackTestSuite) TestCreateFeedbackDuplicateEmail() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	email := fmt.Sprintf("%s@example.com", uuid.New().String())
	first := schema.Feedback{
		ClientType: schema.ClientTypeIndividual,
		Email:      email,
		FirstName:  "First",
	}
	second := schema.Feedback{
		ClientType: schema.ClientTypeIndividual,
		Email:      email,
		FirstName:  "Second",
	}

	_, err := store.CreateFeedback(first)
	s.NoError(err)

	_, err = store.CreateFeedback(second)
	s.Equal(ErrDuplicateSubmission, err)

	// the first record stays untouched
	stored, err := store.GetFeedbackByEmail(email)
	s.NoError(err)
	s.Equal("First", stored.FirstName)
}

func (s *FeedbackTestSuite) TestGetFeedbackByEmailNotFound() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	_, err := store.GetFeedbackByEmail("nobody@example.com")
	s.Equal(ErrFeedbackNotFound, err)
}

func (s *FeedbackTestSuite) TestSearchFeedbackByName() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	// case-insensitive match against the last name
	feedbacks, err := store.SearchFeedbackByName("ferdinand")
	s.NoError(err)
	s.Len(feedbacks, 2)

	// multi-word query matches any word across both name fields
	feedbacks, err = store.SearchFeedbackByName("august maria")
	s.NoError(err)
	s.Len(feedbacks, 2)

	feedbacks, err = store.SearchFeedbackByName("nonexistent")
	s.NoError(err)
	s.Len(feedbacks, 0)

	feedbacks, err = store.SearchFeedbackByName("   ")
	s.NoError(err)
	s.Len(feedbacks, 0)
}

func (s *FeedbackTestSuite) TestSearchFeedbackByOrganization() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	feedbacks, err := store.SearchFeedbackByOrganization("globex")
	s.NoError(err)
	s.Len(feedbacks, 1)
	s.Equal("Globex Corporation", feedbacks[0].OrganizationName)
}

func (s *FeedbackTestSuite) TestListFeedbackByDateRange() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	start := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)

	// the record created at 23:30 on the end date is included
	feedbacks, err := store.ListFeedbackByDateRange(start, end)
	s.NoError(err)
	s.Len(feedbacks, 2)

	// newest first
	s.Equal("maria.von@example.com", feedbacks[0].Email)
	s.Equal("august@example.com", feedbacks[1].Email)

	feedbacks, err = store.ListFeedbackByDateRange(
		time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 7, 31, 0, 0, 0, 0, time.UTC),
	)
	s.NoError(err)
	s.Len(feedbacks, 1)
	s.Equal("contact@globex.example", feedbacks[0].Email)
}

func (s *FeedbackTestSuite) TestSearchFieldSuggestions() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	suggestions, err := store.SearchFieldSuggestions("email", "example.com")
	s.NoError(err)
	s.Contains(suggestions, "august@example.com")
	s.Contains(suggestions, "maria.von@example.com")

	suggestions, err = store.SearchFieldSuggestions("name", "ferdinand")
	s.NoError(err)
	s.Contains(suggestions, "August")
	s.Contains(suggestions, "Maria")

	suggestions, err = store.SearchFieldSuggestions("organization_name", "glob")
	s.NoError(err)
	s.Equal([]string{"Globex Corporation"}, suggestions)

	_, err = store.SearchFieldSuggestions("phone_number", "555")
	s.Error(err)
}

func (s *FeedbackTestSuite) TestGetIndividualRatingStats() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	stats, err := store.GetIndividualRatingStats()
	s.NoError(err)

	byName := map[string]schema.IndividualRatingStat{}
	for _, stat := range stats {
		byName[stat.Individual] = stat
	}

	alice, ok := byName["Alice"]
	s.True(ok)
	s.Equal(2, alice.Submissions)
	s.Equal(4.0, alice.AverageRating)

	bob, ok := byName["Bob"]
	s.True(ok)
	s.Equal(2, bob.Submissions)
	s.Equal(2.25, bob.AverageRating)
}

func (s *FeedbackTestSuite) TestUpdateFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	email := fmt.Sprintf("%s@example.com", uuid.New().String())
	id, err := store.CreateFeedback(schema.Feedback{
		ClientType: schema.ClientTypeIndividual,
		Email:      email,
		FirstName:  "Before",
		Recommend:  schema.RecommendMaybe,
	})
	s.NoError(err)

	objectID, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	updated, err := store.UpdateFeedback(objectID, schema.Feedback{
		FirstName: "After",
		Recommend: schema.RecommendYes,
	})
	s.NoError(err)
	s.Equal("After", updated.FirstName)
	s.Equal(schema.RecommendYes, updated.Recommend)
	s.Equal(email, updated.Email)
	s.False(updated.CreatedAt.IsZero())

	_, err = store.UpdateFeedback(primitive.NewObjectID(), schema.Feedback{})
	s.Equal(ErrFeedbackNotFound, err)
}

func (s *FeedbackTestSuite) TestDeleteFeedback() {
	store := NewMongoStore(s.mongoClient, s.testDBName)

	email := fmt.Sprintf("%s@example.com", uuid.New().String())
	id, err := store.CreateFeedback(schema.Feedback{
		ClientType: schema.ClientTypeIndividual,
		Email:      email,
	})
	s.NoError(err)

	objectID, err := primitive.ObjectIDFromHex(id)
	s.NoError(err)

	s.NoError(store.DeleteFeedback(objectID))
	s.Equal(ErrFeedbackNotFound, store.DeleteFeedback(objectID))

	var count int64
	count, err = s.testDatabase.Collection(schema.FeedbackCollection).CountDocuments(
		context.Background(), bson.M{"email": email})
	s.NoError(err)
	s.Zero(count)
}

func TestFeedbackTestSuite(t *testing.T) {
	suite.Run(t, NewFeedbackTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
