package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/somireddylaw/feedback-api/schema"
)

var (
	ErrQuestionNotFound = fmt.Errorf("question not found")
)

type Settings interface {
	GetSettings() (schema.Settings, error)
	UpdateSettings(settings schema.Settings) (schema.Settings, error)
	ListQuestions() ([]string, error)
	AddQuestion(question string) ([]string, error)
	UpdateQuestion(index int, question string) ([]string, error)
	DeleteQuestion(index int) ([]string, error)
	ReplaceIndividuals(individuals []schema.Individual) error
	ReplaceServices(services []string) error
}

// GetSettings returns the singleton settings document. A missing document is
// not an error: the form renders with empty option sets.
func (m *mongoDB) GetSettings() (schema.Settings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)

	var settings schema.Settings
	err := c.FindOne(ctx, bson.M{"_id": schema.SettingsDocID}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return schema.Settings{ID: schema.SettingsDocID}, nil
		}
		return schema.Settings{}, err
	}

	return settings, nil
}

// UpdateSettings replaces the whole settings document. Last write wins; there
// is no versioning or audit trail.
func (m *mongoDB) UpdateSettings(settings schema.Settings) (schema.Settings, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)

	settings.ID = schema.SettingsDocID
	settings.UpdatedAt = time.Now().UTC()

	opts := options.Replace().SetUpsert(true)
	if _, err := c.ReplaceOne(ctx, bson.M{"_id": schema.SettingsDocID}, &settings, opts); err != nil {
		return schema.Settings{}, err
	}

	return settings, nil
}

func (m *mongoDB) ListQuestions() ([]string, error) {
	settings, err := m.GetSettings()
	if err != nil {
		return nil, err
	}
	if settings.FeedbackQuestions == nil {
		return []string{}, nil
	}
	return settings.FeedbackQuestions, nil
}

func (m *mongoDB) AddQuestion(question string) ([]string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)

	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx,
		bson.M{"_id": schema.SettingsDocID},
		bson.M{
			"$push": bson.M{"feedback_questions": question},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
		opts,
	)
	if err != nil {
		return nil, err
	}

	return m.ListQuestions()
}

// UpdateQuestion replaces the question at the given position. The list is
// short (mutated only by the single admin), so a read-modify-write on the
// singleton document is sufficient.
func (m *mongoDB) UpdateQuestion(index int, question string) ([]string, error) {
	settings, err := m.GetSettings()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(settings.FeedbackQuestions) {
		return nil, ErrQuestionNotFound
	}

	settings.FeedbackQuestions[index] = question
	if _, err := m.UpdateSettings(settings); err != nil {
		return nil, err
	}
	return settings.FeedbackQuestions, nil
}

// DeleteQuestion removes the question at the given position; subsequent
// questions shift down one index.
func (m *mongoDB) DeleteQuestion(index int) ([]string, error) {
	settings, err := m.GetSettings()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(settings.FeedbackQuestions) {
		return nil, ErrQuestionNotFound
	}

	settings.FeedbackQuestions = append(
		settings.FeedbackQuestions[:index],
		settings.FeedbackQuestions[index+1:]...,
	)
	if _, err := m.UpdateSettings(settings); err != nil {
		return nil, err
	}
	return settings.FeedbackQuestions, nil
}

func (m *mongoDB) ReplaceIndividuals(individuals []schema.Individual) error {
	return m.replaceListField("individuals_list", individuals)
}

func (m *mongoDB) ReplaceServices(services []string) error {
	return m.replaceListField("services_list", services)
}

func (m *mongoDB) replaceListField(field string, value interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.SettingsCollection)

	opts := options.Update().SetUpsert(true)
	_, err := c.UpdateOne(ctx,
		bson.M{"_id": schema.SettingsDocID},
		bson.M{"$set": bson.M{
			field:        value,
			"updated_at": time.Now().UTC(),
		}},
		opts,
	)
	return err
}
