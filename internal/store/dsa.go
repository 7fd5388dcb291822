package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/suryapratap64/Fullstack-docs/internal/models"
)

// DSAStore handles algorithm-question CRUD in MongoDB.
type DSAStore struct {
	col *mongo.Collection
}

func NewDSAStore(db *mongo.Database) *DSAStore {
	return &DSAStore{col: db.Collection("dsa_questions")}
}

func (s *DSAStore) Insert(ctx context.Context, q *models.DSAQuestion) (*models.DSAQuestion, error) {
	now := time.Now()
	q.CreatedAt = now
	q.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("mongo insert dsa: %w", err)
	}
	q.ID = res.InsertedID.(primitive.ObjectID)
	return q, nil
}

// ListByUser returns questions oldest-first so chapters keep their
// original reading order.
func (s *DSAStore) ListByUser(ctx context.Context, userID string) ([]models.DSAQuestion, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var questions []models.DSAQuestion
	if err := cur.All(ctx, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

// Update merges the non-nil fields of req into the question matching
// {id, userID}.
func (s *DSAStore) Update(ctx context.Context, id, userID string, req *models.UpdateDSARequest) (*models.DSAQuestion, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Chapter != nil {
		set["chapter"] = *req.Chapter
	}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Difficulty != nil {
		set["difficulty"] = *req.Difficulty
	}
	if req.ProblemStatement != nil {
		set["problem_statement"] = *req.ProblemStatement
	}
	if req.Solution != nil {
		set["solution"] = *req.Solution
	}
	if req.Code != nil {
		set["code"] = *req.Code
	}
	if req.CodeLanguage != nil {
		set["code_language"] = *req.CodeLanguage
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var q models.DSAQuestion
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// Delete removes the question matching {id, userID}; idempotent.
func (s *DSAStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	return err
}
