package schema

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDBIndexer creates all indexes this service relies on. The unique email
// index on the feedback collection is what enforces the one-submission-per-email
// invariant: duplicate detection happens in the database, not in application reads.
type MongoDBIndexer struct {
	connURI  string
	database string
}

func NewMongoDBIndexer(connURI, database string) *MongoDBIndexer {
	return &MongoDBIndexer{
		connURI:  connURI,
		database: database,
	}
}

func (m *MongoDBIndexer) IndexAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.connURI))
	if err != nil {
		return err
	}
	defer client.Disconnect(ctx)

	db := client.Database(m.database)

	if err := m.IndexFeedbackCollection(ctx, db); err != nil {
		return err
	}
	return m.IndexAdminAccountCollection(ctx, db)
}

func (m *MongoDBIndexer) IndexFeedbackCollection(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(FeedbackCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.M{"email": 1},
			Options: options.Index().SetName("unique_email").SetUnique(true),
		},
		{
			Keys:    bson.M{"created_at": 1},
			Options: options.Index().SetName("created_at"),
		},
	})
	if err != nil {
		log.WithError(err).Error("fail to create feedback indexes")
	}
	return err
}

func (m *MongoDBIndexer) IndexAdminAccountCollection(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(AdminAccountCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"email": 1},
		Options: options.Index().SetName("unique_email").SetUnique(true),
	})
	if err != nil {
		log.WithError(err).Error("fail to create admin account indexes")
	}
	return err
}
