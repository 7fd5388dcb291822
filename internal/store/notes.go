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

// NoteStore handles note CRUD in MongoDB. Every mutation filters by
// both _id and user_id so a caller can never touch another user's note.
type NoteStore struct {
	col *mongo.Collection
}

func NewNoteStore(db *mongo.Database) *NoteStore {
	return &NoteStore{col: db.Collection("notes")}
}

func (s *NoteStore) Insert(ctx context.Context, note *models.Note) (*models.Note, error) {
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now
	res, err := s.col.InsertOne(ctx, note)
	if err != nil {
		return nil, fmt.Errorf("mongo insert note: %w", err)
	}
	note.ID = res.InsertedID.(primitive.ObjectID)
	return note, nil
}

func (s *NoteStore) ListByUser(ctx context.Context, userID string) ([]models.Note, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var notes []models.Note
	if err := cur.All(ctx, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Update merges the non-nil fields of req into the note matching
// {id, userID}. Returns ErrNotFound when no owned note matches.
func (s *NoteStore) Update(ctx context.Context, id, userID string, req *models.UpdateNoteRequest) (*models.Note, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updated_at": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var note models.Note
	err = s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "user_id": userID},
		bson.M{"$set": set},
		opts,
	).Decode(&note)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// Delete removes the note matching {id, userID}. Deleting a missing
// note is not an error.
func (s *NoteStore) Delete(ctx context.Context, id, userID string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}
	_, err = s.col.DeleteOne(ctx, bson.M{"_id": oid, "user_id": userID})
	return err
}
