package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"feedback-collector/internal/database"
	"feedback-collector/internal/models"
	"feedback-collector/internal/stats"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// ErrDuplicateEmployee is returned when a record for the employee id already exists.
var ErrDuplicateEmployee = errors.New("feedback already recorded for employee")

type FeedbackRepo struct {
	collection *mongo.Collection
}

func NewFeedbackRepo(store *database.Store) *FeedbackRepo {
	return &FeedbackRepo{
		collection: store.Collection("feedbacks"),
	}
}

// Create inserts the record. The unique index on empid makes this an atomic
// insert-if-absent; a duplicate key violation maps to ErrDuplicateEmployee.
func (r *FeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.CreatedAt = time.Now()
	result, err := r.collection.InsertOne(ctx, feedback)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmployee
		}
		return fmt.Errorf("insert feedback: %w", err)
	}
	feedback.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

type ratingColumns struct {
	Punctuality   []*int `bson:"punctuality"`
	Clarification []*int `bson:"clarification"`
	Explanation   []*int `bson:"explanation"`
	Communication []*int `bson:"communication"`
	Feedback      []*int `bson:"feedback"`
}

// Stats collects every rating into one column per dimension and tallies them.
// An empty collection produces no group and therefore an empty result.
func (r *FeedbackRepo) Stats(ctx context.Context) (stats.Result, error) {
	group := bson.D{{Key: "_id", Value: nil}}
	for _, d := range stats.Dimensions {
		group = append(group, bson.E{Key: d, Value: bson.D{{Key: "$push", Value: "$" + d}}})
	}
	pipeline := mongo.Pipeline{{{Key: "$group", Value: group}}}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate ratings: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []ratingColumns
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode ratings: %w", err)
	}
	if len(rows) == 0 {
		return stats.Result{}, nil
	}

	row := rows[0]
	return stats.FromColumns(map[string][]*int{
		"punctuality":   row.Punctuality,
		"clarification": row.Clarification,
		"explanation":   row.Explanation,
		"communication": row.Communication,
		"feedback":      row.Feedback,
	}), nil
}

// EnsureIndexes creates necessary indexes for the feedbacks collection
func (r *FeedbackRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "empid", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
