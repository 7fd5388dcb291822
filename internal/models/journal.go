package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post categories and difficulty levels.
const (
	CategoryLearning       = "Learning"
	CategoryProject        = "Project"
	CategoryBugFix         = "Bug Fix"
	CategoryResearch       = "Research"
	CategoryImplementation = "Implementation"

	PostBeginner     = "Beginner"
	PostIntermediate = "Intermediate"
	PostAdvanced     = "Advanced"
)

// ValidPostCategory reports whether c is one of the allowed categories.
func ValidPostCategory(c string) bool {
	switch c {
	case CategoryLearning, CategoryProject, CategoryBugFix, CategoryResearch, CategoryImplementation:
		return true
	}
	return false
}

// ValidPostDifficulty reports whether d is one of the allowed levels.
func ValidPostDifficulty(d string) bool {
	return d == PostBeginner || d == PostIntermediate || d == PostAdvanced
}

// Post is a learning entry embedded in a MonthlyJournal. Posts exist
// only inside their parent journal and are addressed by their own id
// within its posts array.
type Post struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string             `json:"title"       bson:"title"`
	Description string             `json:"description" bson:"description"`
	Content     string             `json:"content"     bson:"content"`
	Category    string             `json:"category"    bson:"category"`
	Difficulty  string             `json:"difficulty"  bson:"difficulty"`
	Tags        []string           `json:"tags"        bson:"tags"`
	CreatedAt   time.Time          `json:"createdAt"   bson:"created_at"`
}

// JournalStats are client-maintained aggregates shown on the journal card.
type JournalStats struct {
	TotalLearnings    int    `json:"totalLearnings"    bson:"total_learnings"`
	ProjectsCompleted int    `json:"projectsCompleted" bson:"projects_completed"`
	BugsFixed         int    `json:"bugsFixed"         bson:"bugs_fixed"`
	AverageDifficulty string `json:"averageDifficulty" bson:"average_difficulty"`
}

// MonthlyJournal is one user's learning journal for a (month, year),
// unique per (user_id, month, year).
type MonthlyJournal struct {
	ID          primitive.ObjectID `json:"id"          bson:"_id,omitempty"`
	UserID      string             `json:"userId"      bson:"user_id"`
	Month       int                `json:"month"       bson:"month"`
	Year        int                `json:"year"        bson:"year"`
	Title       string             `json:"title"       bson:"title"`
	Summary     string             `json:"summary"     bson:"summary"`
	AIGenerated bool               `json:"aiGenerated" bson:"ai_generated"`
	Posts       []Post             `json:"posts"       bson:"posts"`
	Stats       JournalStats       `json:"stats"       bson:"stats"`
	Images      []string           `json:"images"      bson:"images"`
	IsFavorite  bool               `json:"isFavorite"  bson:"is_favorite"`
	CreatedAt   time.Time          `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time          `json:"updatedAt"   bson:"updated_at"`
}

// CreateJournalRequest is the JSON body for POST /gpt-month.
type CreateJournalRequest struct {
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Posts       []Post `json:"posts"`
	AIGenerated bool   `json:"aiGenerated"`
}

// UpdateJournalRequest is the JSON body for PUT /gpt-month?id=. Nil
// fields are left untouched.
type UpdateJournalRequest struct {
	Title      *string       `json:"title"`
	Summary    *string       `json:"summary"`
	Posts      *[]Post       `json:"posts"`
	IsFavorite *bool         `json:"isFavorite"`
	Stats      *JournalStats `json:"stats"`
}

// AddPostRequest is the JSON body for POST /gpt-month/posts.
type AddPostRequest struct {
	MonthID string `json:"monthId"`
	Post    Post   `json:"post"`
}

// UpdatePostRequest is the JSON body for PUT /gpt-month/posts.
type UpdatePostRequest struct {
	MonthID     string     `json:"monthId"`
	PostID      string     `json:"postId"`
	UpdatedPost PostUpdate `json:"updatedPost"`
}

// PostUpdate carries the partial fields merged into an existing post.
type PostUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Content     *string   `json:"content"`
	Category    *string   `json:"category"`
	Difficulty  *string   `json:"difficulty"`
	Tags        *[]string `json:"tags"`
}

// SummarizeRequest is the JSON body for POST /gpt-month/summarize.
type SummarizeRequest struct {
	MonthID string `json:"monthId"`
	Posts   []Post `json:"posts"`
}
