package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/somireddylaw/feedback-api/schema"
)

var (
	ErrAdminAccountNotFound = fmt.Errorf("admin account not found")
	ErrInvalidCredentials   = fmt.Errorf("invalid email or password")
)

type AdminAccount interface {
	EnsureAdminAccount(email, password string) error
	VerifyAdminCredentials(email, password string) error
	UpdateAdminPassword(email, currentPassword, newPassword string) error
}

// EnsureAdminAccount seeds the administrator credential record on startup.
// An existing account is left untouched so a changed password survives
// restarts.
func (m *mongoDB) EnsureAdminAccount(email, password string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AdminAccountCollection)

	count, err := c.CountDocuments(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = c.InsertOne(ctx, &schema.AdminAccount{
		Email:        email,
		PasswordHash: hash,
		UpdatedAt:    time.Now().UTC(),
	})
	if mongo.IsDuplicateKeyError(err) {
		// concurrent seed, account already exists
		return nil
	}
	return err
}

func (m *mongoDB) VerifyAdminCredentials(email, password string) error {
	account, err := m.getAdminAccount(email)
	if err != nil {
		if err == ErrAdminAccountNotFound {
			return ErrInvalidCredentials
		}
		return err
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// UpdateAdminPassword rotates the administrator password after verifying the
// current one.
func (m *mongoDB) UpdateAdminPassword(email, currentPassword, newPassword string) error {
	if err := m.VerifyAdminCredentials(email, currentPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AdminAccountCollection)

	r, err := c.UpdateOne(ctx,
		bson.M{"email": email},
		bson.M{"$set": bson.M{
			"password_hash": hash,
			"updated_at":    time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if r.MatchedCount == 0 {
		return ErrAdminAccountNotFound
	}
	return nil
}

func (m *mongoDB) getAdminAccount(email string) (*schema.AdminAccount, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AdminAccountCollection)

	var account schema.AdminAccount
	err := c.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrAdminAccountNotFound
		}
		return nil, err
	}

	return &account, nil
}
