package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecipeService handles recipe CRUD and the engagement operations
// (like, bookmark, rate). All mutations of the embedded likes, bookmarks
// and ratings documents run inside a transaction so a failed write never
// leaves a partial result behind.
type RecipeService struct {
	db *gorm.DB
}

func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// List returns all recipes matching the optional category and search
// filters, annotated for the caller. Search combines keyword matching with
// embedding-distance ordering on Postgres and falls back to plain LIKE on
// other dialects.
func (s *RecipeService) List(ctx context.Context, category, search string, callerID *uuid.UUID) ([]types.RecipeView, error) {
	var recipes []models.Recipe

	query := s.db.WithContext(ctx).Preload("Author")

	if category != "" && category != "all" {
		query = query.Where("category = ?", category)
	}

	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(search)
			query = query.
				Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients::text) LIKE ?", like, like, like).
				Clauses(clause.OrderBy{
					Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
				})
		} else {
			query = query.
				Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredients) LIKE ?", like, like, like).
				Order("created_at DESC")
		}
	} else {
		query = query.Order("created_at DESC")
	}

	if err := query.Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return AnnotateAll(recipes, callerID), nil
}

// Get returns a single annotated recipe.
func (s *RecipeService) Get(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*types.RecipeView, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).Preload("Author").First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := Annotate(&recipe, callerID)
	return &view, nil
}

// Create publishes a new recipe owned by authorID. The author reference is
// immutable after this point.
func (s *RecipeService) Create(ctx context.Context, authorID uuid.UUID, req *types.CreateRecipeRequest) (*models.Recipe, error) {
	recipe := models.Recipe{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		ImageURL:     req.ImageURL,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		AuthorID:     authorID,
		Likes:        models.UUIDSet{},
		Bookmarks:    models.UUIDSet{},
		Ratings:      models.RatingList{},
		Embedding:    GenerateEmbedding(req.Title + " " + req.Description),
	}
	if recipe.Category == "" {
		recipe.Category = "main-course"
	}
	if recipe.Difficulty == "" {
		recipe.Difficulty = "medium"
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}
	return &recipe, nil
}

// Delete removes a recipe and every comment attached to it. Only the
// author may delete.
func (s *RecipeService) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if recipe.AuthorID != callerID {
			return ErrForbidden
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&recipe).Error
	})
}

// ToggleLike flips the caller's like on the recipe and reports the new
// state plus the resulting count.
func (s *RecipeService) ToggleLike(ctx context.Context, id, userID uuid.UUID) (liked bool, count int, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		liked, count = toggleLike(&recipe, userID)
		return tx.Model(&recipe).Update("likes", recipe.Likes).Error
	})
	return liked, count, err
}

// ToggleBookmark flips the caller's bookmark on the recipe.
func (s *RecipeService) ToggleBookmark(ctx context.Context, id, userID uuid.UUID) (bookmarked bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		bookmarked = toggleBookmark(&recipe, userID)
		return tx.Model(&recipe).Update("bookmarks", recipe.Bookmarks).Error
	})
	return bookmarked, err
}

// GetRating returns the average, count and the caller's own rating.
func (s *RecipeService) GetRating(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*types.RatingSummary, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	view := Annotate(&recipe, callerID)
	return &types.RatingSummary{
		Average:  view.AverageRating,
		Count:    view.ReviewCount,
		MyRating: view.MyRating,
	}, nil
}

// Rate upserts the caller's rating. The new average and count are computed
// from the in-memory list inside the same transaction that persists it, so
// the response always reflects exactly the state that was written.
func (s *RecipeService) Rate(ctx context.Context, id, userID uuid.UUID, value int) (*types.RatingSummary, error) {
	if value < 1 || value > 5 {
		return nil, ErrInvalidRating
	}

	var summary types.RatingSummary
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		avg, count, err := upsertRating(&recipe, userID, value)
		if err != nil {
			return err
		}
		if err := tx.Model(&recipe).Update("ratings", recipe.Ratings).Error; err != nil {
			return err
		}

		my := value
		summary = types.RatingSummary{Average: avg, Count: count, MyRating: &my}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

// Bookmarked lists the recipes the caller has bookmarked, annotated.
func (s *RecipeService) Bookmarked(ctx context.Context, userID uuid.UUID) ([]types.RecipeView, error) {
	var recipes []models.Recipe

	if s.db.Dialector.Name() == "postgres" {
		member := fmt.Sprintf(`["%s"]`, userID)
		if err := s.db.WithContext(ctx).Preload("Author").
			Where("bookmarks @> ?", member).
			Order("created_at DESC").
			Find(&recipes).Error; err != nil {
			return nil, err
		}
	} else {
		// No JSONB containment outside Postgres; filter in memory.
		var all []models.Recipe
		if err := s.db.WithContext(ctx).Preload("Author").Order("created_at DESC").Find(&all).Error; err != nil {
			return nil, err
		}
		for _, r := range all {
			if r.Bookmarks.Contains(userID) {
				recipes = append(recipes, r)
			}
		}
	}

	return AnnotateAll(recipes, &userID), nil
}

// ByAuthor lists a user's recipes, annotated for the caller.
func (s *RecipeService) ByAuthor(ctx context.Context, authorID uuid.UUID, callerID *uuid.UUID) ([]types.RecipeView, error) {
	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return AnnotateAll(recipes, callerID), nil
}
