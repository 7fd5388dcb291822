package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DSA question difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// ValidDSADifficulty reports whether d is one of the allowed levels.
func ValidDSADifficulty(d string) bool {
	return d == DifficultyEasy || d == DifficultyMedium || d == DifficultyHard
}

// DSAQuestion is an algorithm-practice question stored in MongoDB,
// grouped into chapters.
type DSAQuestion struct {
	ID               primitive.ObjectID `json:"id"               bson:"_id,omitempty"`
	UserID           string             `json:"userId"           bson:"user_id"`
	Chapter          string             `json:"chapter"          bson:"chapter"`
	Title            string             `json:"title"            bson:"title"`
	Difficulty       string             `json:"difficulty"       bson:"difficulty"`
	ProblemStatement string             `json:"problemStatement" bson:"problem_statement"`
	Solution         string             `json:"solution"         bson:"solution"`
	Code             string             `json:"code"             bson:"code"`
	CodeLanguage     string             `json:"codeLanguage"     bson:"code_language"`
	Tags             []string           `json:"tags"             bson:"tags"`
	CreatedAt        time.Time          `json:"createdAt"        bson:"created_at"`
	UpdatedAt        time.Time          `json:"updatedAt"        bson:"updated_at"`
}

// CreateDSARequest is the JSON body for POST /dsa.
type CreateDSARequest struct {
	Chapter          string   `json:"chapter"`
	Title            string   `json:"title"`
	Difficulty       string   `json:"difficulty"`
	ProblemStatement string   `json:"problemStatement"`
	Solution         string   `json:"solution"`
	Code             string   `json:"code"`
	CodeLanguage     string   `json:"codeLanguage"`
	Tags             []string `json:"tags"`
}

// UpdateDSARequest is the JSON body for PUT /dsa.
type UpdateDSARequest struct {
	DSAID            string    `json:"dsaId"`
	Chapter          *string   `json:"chapter"`
	Title            *string   `json:"title"`
	Difficulty       *string   `json:"difficulty"`
	ProblemStatement *string   `json:"problemStatement"`
	Solution         *string   `json:"solution"`
	Code             *string   `json:"code"`
	CodeLanguage     *string   `json:"codeLanguage"`
	Tags             *[]string `json:"tags"`
}

// DeleteDSARequest is the JSON body for DELETE /dsa.
type DeleteDSARequest struct {
	DSAID string `json:"dsaId"`
}
