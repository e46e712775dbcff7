package store

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/somireddylaw/feedback-api/schema"
)

var (
	ErrDuplicateSubmission = fmt.Errorf("feedback already submitted for this email")
	ErrFeedbackNotFound    = fmt.Errorf("feedback not found")
)

type Feedback interface {
	CreateFeedback(feedback schema.Feedback) (string, error)
	GetFeedbackByEmail(email string) (*schema.Feedback, error)
	SearchFeedbackByName(name string) ([]schema.Feedback, error)
	SearchFeedbackByOrganization(organization string) ([]schema.Feedback, error)
	ListFeedback() ([]schema.Feedback, error)
	ListFeedbackByDateRange(start, end time.Time) ([]schema.Feedback, error)
	SearchFieldSuggestions(field, term string) ([]string, error)
	GetIndividualRatingStats() ([]schema.IndividualRatingStat, error)
	UpdateFeedback(id primitive.ObjectID, update schema.Feedback) (*schema.Feedback, error)
	DeleteFeedback(id primitive.ObjectID) error
}

// CreateFeedback adds a feedback record into db and returns its id. Email
// uniqueness is enforced by the unique index so that two concurrent
// submissions with the same email cannot both land.
func (m *mongoDB) CreateFeedback(feedback schema.Feedback) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	feedback.ID = primitive.NilObjectID
	feedback.CreatedAt = time.Now().UTC()

	c := m.client.Database(m.database)

	r, err := c.Collection(schema.FeedbackCollection).InsertOne(ctx, &feedback)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", ErrDuplicateSubmission
		}
		return "", err
	}

	id, ok := r.InsertedID.(primitive.ObjectID)
	if ok {
		return id.Hex(), nil
	}
	return "", fmt.Errorf("incorrect inserted id")
}

func (m *mongoDB) GetFeedbackByEmail(email string) (*schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	var feedback schema.Feedback
	err := c.FindOne(ctx, bson.M{"email": email}).Decode(&feedback)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	return &feedback, nil
}

// SearchFeedbackByName matches the given name against first and last names,
// case-insensitively. A multi-word query matches records containing any of
// the words.
func (m *mongoDB) SearchFeedbackByName(name string) ([]schema.Feedback, error) {
	pattern := strings.Join(strings.Fields(regexp.QuoteMeta(name)), "|")
	if pattern == "" {
		return []schema.Feedback{}, nil
	}

	re := primitive.Regex{Pattern: pattern, Options: "i"}
	return m.findFeedback(bson.M{
		"$or": bson.A{
			bson.M{"first_name": re},
			bson.M{"last_name": re},
		},
	})
}

func (m *mongoDB) SearchFeedbackByOrganization(organization string) ([]schema.Feedback, error) {
	if organization == "" {
		return []schema.Feedback{}, nil
	}

	re := primitive.Regex{Pattern: regexp.QuoteMeta(organization), Options: "i"}
	return m.findFeedback(bson.M{"organization_name": re})
}

func (m *mongoDB) ListFeedback() ([]schema.Feedback, error) {
	return m.findFeedback(bson.M{})
}

// ListFeedbackByDateRange returns records created within the inclusive window.
// The end bound is pushed to the end of its day so a record created any time
// on the end date is included.
func (m *mongoDB) ListFeedbackByDateRange(start, end time.Time) ([]schema.Feedback, error) {
	return m.findFeedback(bson.M{
		"created_at": bson.M{
			"$gte": start,
			"$lt":  end.AddDate(0, 0, 1),
		},
	})
}

func (m *mongoDB) findFeedback(filter bson.M) ([]schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	feedbacks := []schema.Feedback{}
	if err := cursor.All(ctx, &feedbacks); nil != err {
		return nil, err
	}

	return feedbacks, nil
}

var suggestionFields = map[string]string{
	"email":             "email",
	"name":              "first_name",
	"organization_name": "organization_name",
}

// SearchFieldSuggestions returns distinct values of one searchable field that
// contain the given term, for admin dashboard autocompletion.
func (m *mongoDB) SearchFieldSuggestions(field, term string) ([]string, error) {
	key, ok := suggestionFields[field]
	if !ok {
		return nil, fmt.Errorf("unsupported suggestion field: %s", field)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	re := primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}

	filter := bson.M{key: re}
	if field == "name" {
		filter = bson.M{"$or": bson.A{
			bson.M{"first_name": re},
			bson.M{"last_name": re},
		}}
	}

	values, err := c.Distinct(ctx, key, filter)
	if err != nil {
		return nil, err
	}

	suggestions := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok && s != "" {
			suggestions = append(suggestions, s)
		}
	}

	return suggestions, nil
}

// GetIndividualRatingStats aggregates every stored rating into a per-employee
// submission count and average score.
func (m *mongoDB) GetIndividualRatingStats() ([]schema.IndividualRatingStat, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	cursor, err := c.Aggregate(ctx, mongo.Pipeline{
		AggregationProject(bson.M{
			"ratings": bson.M{"$objectToArray": bson.M{"$ifNull": bson.A{"$ratings", bson.M{}}}},
		}),
		AggregationUnwind("$ratings"),
		AggregationAddFields(bson.M{
			"scores": bson.M{"$objectToArray": "$ratings.v"},
		}),
		AggregationUnwind("$scores"),
		AggregationGroup("$ratings.k", bson.D{
			bson.E{Key: "submissions", Value: bson.M{"$addToSet": "$_id"}},
			bson.E{Key: "average_rating", Value: bson.M{"$avg": "$scores.v"}},
		}),
		AggregationAddFields(bson.M{
			"submissions": bson.M{"$size": "$submissions"},
		}),
	})
	if err != nil {
		return nil, err
	}

	stats := []schema.IndividualRatingStat{}
	if err := cursor.All(ctx, &stats); nil != err {
		return nil, err
	}

	return stats, nil
}

// UpdateFeedback replaces the mutable fields of a record. The creation time
// and the record identity are kept as stored.
func (m *mongoDB) UpdateFeedback(id primitive.ObjectID, update schema.Feedback) (*schema.Feedback, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	result := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"title":                update.Title,
			"first_name":           update.FirstName,
			"last_name":            update.LastName,
			"company_name":         update.CompanyName,
			"company_phone_number": update.CompanyPhoneNumber,
			"organization_name":    update.OrganizationName,
			"phone_number":         update.PhoneNumber,
			"services":             update.Services,
			"individuals":          update.Individuals,
			"ratings":              update.Ratings,
			"feedbacks":            update.Feedbacks,
			"recommend":            update.Recommend,
			"subscribe_newsletter": update.SubscribeNewsletter,
		}},
		opts,
	)

	var feedback schema.Feedback
	if err := result.Decode(&feedback); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrFeedbackNotFound
		}
		return nil, err
	}

	return &feedback, nil
}

func (m *mongoDB) DeleteFeedback(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.FeedbackCollection)

	r, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if r.DeletedCount == 0 {
		return ErrFeedbackNotFound
	}
	return nil
}
