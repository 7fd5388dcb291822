package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a vocabulary entry stored in MongoDB.
type Task struct {
	ID        primitive.ObjectID `json:"id"        bson:"_id,omitempty"`
	UserID    string             `json:"userId"    bson:"user_id"`
	English   string             `json:"english"   bson:"english"`
	Meaning   string             `json:"meaning"   bson:"meaning"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}

// CreateTaskRequest is the JSON body for POST /tasks.
type CreateTaskRequest struct {
	English string `json:"english"`
	Meaning string `json:"meaning"`
}

// UpdateTaskRequest is the JSON body for PUT /tasks.
type UpdateTaskRequest struct {
	TaskID  string  `json:"taskId"`
	English *string `json:"english"`
	Meaning *string `json:"meaning"`
}

// DeleteTaskRequest is the JSON body for DELETE /tasks.
type DeleteTaskRequest struct {
	TaskID string `json:"taskId"`
}
