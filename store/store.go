package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

const defaultTimeout = 5 * time.Second

// MongoStore is the data access layer of the feedback service.
type MongoStore interface {
	Feedback
	Settings
	AdminAccount

	Ping() error
}

type mongoDB struct {
	client   *mongo.Client
	database string
}

// NewMongoStore returns a MongoStore client
func NewMongoStore(client *mongo.Client, database string) MongoStore {
	return &mongoDB{
		client:   client,
		database: database,
	}
}

func (m *mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()
	return m.client.Ping(ctx, nil)
}
