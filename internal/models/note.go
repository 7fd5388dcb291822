package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Note is a single note document stored in MongoDB.
type Note struct {
	ID        primitive.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    string             `json:"userId"    bson:"user_id"`
	Title     string             `json:"title"     bson:"title"`
	Content   string             `json:"content"   bson:"content"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// CreateNoteRequest is the JSON body for POST /notes.
type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateNoteRequest is the JSON body for PUT /notes. Nil fields are
// left untouched.
type UpdateNoteRequest struct {
	NoteID  string  `json:"noteId"`
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// DeleteNoteRequest is the JSON body for DELETE /notes.
type DeleteNoteRequest struct {
	NoteID string `json:"noteId"`
}
