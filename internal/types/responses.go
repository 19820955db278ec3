package types

import (
	"time"

	"github.com/cooklyapp/backend/internal/models"
	"github.com/google/uuid"
)

// RecipeView is a recipe plus the derived, caller-dependent engagement
// fields. Derived fields are never persisted.
type RecipeView struct {
	models.Recipe
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
	IsLiked       bool    `json:"is_liked"`
	IsBookmarked  bool    `json:"is_bookmarked"`
	MyRating      *int    `json:"my_rating"`
}

// RatingSummary is the response for rating reads and writes
type RatingSummary struct {
	Average  float64 `json:"avg"`
	Count    int     `json:"count"`
	MyRating *int    `json:"my_rating"`
}

// CommentNode is a top-level comment with its attached replies
type CommentNode struct {
	models.Comment
	Replies []models.Comment `json:"replies"`
}

// PublicProfile is a user profile filtered by the owner's privacy settings
type PublicProfile struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	Location  string    `json:"location,omitempty"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login
type AuthResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}
