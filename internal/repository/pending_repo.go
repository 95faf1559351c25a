package repository

import (
	"context"
	"errors"
	"time"

	"feedback-collector/internal/database"
	"feedback-collector/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PendingRepo struct {
	collection *mongo.Collection
}

func NewPendingRepo(store *database.Store) *PendingRepo {
	return &PendingRepo{
		collection: store.Collection("pending_submissions"),
	}
}

// Save stores the submission under its token, replacing any earlier one.
func (r *PendingRepo) Save(ctx context.Context, pending *models.PendingSubmission) error {
	pending.CreatedAt = time.Now()
	_, err := r.collection.ReplaceOne(ctx,
		bson.M{"_id": pending.Token},
		pending,
		options.Replace().SetUpsert(true),
	)
	return err
}

// Find returns nil when the token is unknown or its entry has expired but not
// yet been reaped by the TTL monitor.
func (r *PendingRepo) Find(ctx context.Context, token string) (*models.PendingSubmission, error) {
	var pending models.PendingSubmission
	err := r.collection.FindOne(ctx, bson.M{"_id": token}).Decode(&pending)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	if pending.IsExpired() {
		return nil, nil
	}
	return &pending, nil
}

func (r *PendingRepo) Delete(ctx context.Context, token string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": token})
	return err
}

// EnsureIndexes creates necessary indexes for the pending_submissions collection
func (r *PendingRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0), // TTL index — auto-delete expired sessions
	})
	return err
}
