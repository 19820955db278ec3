package service

import (
	"context"
	"errors"
	"strings"

	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentService handles threaded comments on recipes.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListThreaded returns the two-level comment tree for a recipe.
func (s *CommentService) ListThreaded(ctx context.Context, recipeID uuid.UUID) ([]types.CommentNode, error) {
	var comments []models.Comment
	if err := s.db.WithContext(ctx).Preload("Author").
		Where("recipe_id = ?", recipeID).
		Order("created_at DESC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return BuildCommentTree(comments), nil
}

// Create adds a comment or a reply under a recipe. The recipe and, for
// replies, the parent comment are validated inside one transaction so a
// reply can never be attached to a parent on another recipe or nested
// below a reply.
func (s *CommentService) Create(ctx context.Context, recipeID, authorID uuid.UUID, content string, parentID *uuid.UUID) (*models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	comment := models.Comment{
		RecipeID: recipeID,
		AuthorID: authorID,
		Content:  content,
		ParentID: parentID,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Select("id").First(&recipe, "id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if parentID != nil {
			var parent models.Comment
			if err := tx.First(&parent, "id = ?", *parentID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrParentNotFound
				}
				return err
			}
			if parent.RecipeID != recipeID {
				return ErrParentMismatch
			}
			if parent.ParentID != nil {
				return ErrNestedReply
			}
		}

		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}

	// Load the author so clients have the name immediately.
	if err := s.db.WithContext(ctx).Preload("Author").First(&comment, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes a comment. Allowed for the comment's author and for the
// recipe's author. Deleting a top-level comment also removes its direct
// replies; the model is two-level, so no deeper cascade exists.
func (s *CommentService) Delete(ctx context.Context, commentID, callerID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, "id = ?", commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var recipe models.Recipe
		if err := tx.First(&recipe, "id = ?", comment.RecipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := AuthorizeCommentDelete(&comment, &recipe, callerID); err != nil {
			return err
		}

		if err := tx.Where("parent_id = ?", comment.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&comment).Error
	})
}
