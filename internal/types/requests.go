package types

import "github.com/google/uuid"

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Avatar   string `json:"avatar"`
}

// LoginRequest is the request body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CreateRecipeRequest is the request body for publishing a recipe
type CreateRecipeRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category"`
	PrepTime     int      `json:"prep_time"`
	CookTime     int      `json:"cook_time"`
	Servings     int      `json:"servings"`
	Difficulty   string   `json:"difficulty"`
	ImageURL     string   `json:"image_url"`
	Ingredients  []string `json:"ingredients" binding:"required"`
	Instructions []string `json:"instructions" binding:"required"`
}

// RateRecipeRequest carries a 1-5 star value
type RateRecipeRequest struct {
	Value int `json:"value" binding:"required"`
}

// CreateCommentRequest creates a top-level comment (nil parent) or a reply
type CreateCommentRequest struct {
	Content  string     `json:"content" binding:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

// UpdateProfileRequest updates the caller's own profile. Pointer fields
// distinguish "not provided" from "set to zero value".
type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Bio      *string `json:"bio"`
	Location *string `json:"location"`
	Avatar   *string `json:"avatar"`

	ShowEmail      *bool   `json:"show_email"`
	ShowBio        *bool   `json:"show_bio"`
	ShowLocation   *bool   `json:"show_location"`
	ProfilePrivacy *string `json:"profile_privacy"`
}

// ChangePasswordRequest changes the caller's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
