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

// JournalStore handles monthly-journal CRUD in MongoDB. A journal is
// unique per (user_id, month, year); the embedded posts array is
// rewritten as a whole by ReplacePosts.
type JournalStore struct {
	col *mongo.Collection
}

func NewJournalStore(db *mongo.Database) *JournalStore {
	return &JournalStore{col: db.Collection("gpt_months")}
}

// EnsureIndexes creates the unique (user_id, month, year) index that
// backs the one-journal-per-month invariant.
func (s *JournalStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "month", Value: 1},
			{Key: "year", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (s *JournalStore) Insert(ctx context.Context, j *models.MonthlyJournal) (*models.MonthlyJournal, error) {
	now := time.Now()
	j.CreatedAt = now
	j.UpdatedAt = now
	if j.Posts == nil {
		j.Posts = []models.Post{}
	}
	res, err := s.col.InsertOne(ctx, j)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("mongo insert journal: %w", err)
	}
	j.ID = res.InsertedID.(primitive.ObjectID)
	return j, nil
}

// ListByUser returns journals newest month first.
func (s *JournalStore) ListByUser(ctx context.Context, userID string) ([]models.MonthlyJournal, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "month", Value: -1},
	})
	cur, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var journals []models.MonthlyJournal
	if err := cur.All(ctx, &journals); err != nil {
		return nil, err
	}
	return journals, nil
}

// GetOwned loads the journal matching {id, userID}.
func (s *JournalStore) GetOwned(ctx context.Context, id, userID string) (*models.MonthlyJournal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var j models.MonthlyJournal
	err = s.col.FindOne(ctx, bson.M{"_id": oid, "user_id": userID}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Update merges the non-nil fields of req into the journal matching
// {id, userID}.
func (s *JournalStore) Update(ctx context.Context, id, userID string, req *models.UpdateJournalRequest) (*models.MonthlyJournal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Summary != nil {
		set["summary"] = *req.Summary
	}
	if req.Posts != nil {
		set["posts"] = *req.Posts
	}
	if req.IsFavorite != nil {
		set["is_favorite"] = *req.IsFavorite
	}
	if req.Stats != nil {
		set["stats"] = *req.Stats
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var j models.MonthlyJournal
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Delete removes the journal matching {id, userID}. Unlike the flat
// resources this reports ErrNotFound when nothing matched.
func (s *JournalStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReplacePosts writes back the full posts array of the journal matching
// {id, userID}. Callers serialize concurrent writers around the
// read-modify-write; see journal.Handler.
func (s *JournalStore) ReplacePosts(ctx context.Context, id, userID string, posts []models.Post) (*models.MonthlyJournal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var j models.MonthlyJournal
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{"posts": posts, "updated_at": time.Now()}},
		opts,
	).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// SetSummary stores the generated summary and flips ai_generated.
func (s *JournalStore) SetSummary(ctx context.Context, id, userID, summary string) (*models.MonthlyJournal, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var j models.MonthlyJournal
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": bson.M{
			"summary":      summary,
			"ai_generated": true,
			"updated_at":   time.Now(),
		}},
		opts,
	).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &j, nil
}
