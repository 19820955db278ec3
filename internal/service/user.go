package service

import (
	"context"
	"errors"

	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles profiles, follow relationships and account deletion.
type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// PublicProfile returns another user's profile with the owner's privacy
// settings applied.
func (s *UserService) PublicProfile(ctx context.Context, id uuid.UUID) (*types.PublicProfile, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := types.PublicProfile{
		ID:        user.ID,
		Name:      user.Name,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
	if user.Settings.ShowEmail {
		profile.Email = user.Email
	}
	if user.Settings.ShowBio {
		profile.Bio = user.Bio
	}
	if user.Settings.ShowLocation {
		profile.Location = user.Location
	}
	return &profile, nil
}

// UpdateProfile applies the provided fields to the caller's own profile.
func (s *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Avatar != nil {
		user.AvatarURL = *req.Avatar
	}
	if req.ShowEmail != nil {
		user.Settings.ShowEmail = *req.ShowEmail
	}
	if req.ShowBio != nil {
		user.Settings.ShowBio = *req.ShowBio
	}
	if req.ShowLocation != nil {
		user.Settings.ShowLocation = *req.ShowLocation
	}
	if req.ProfilePrivacy != nil {
		user.Settings.ProfilePrivacy = *req.ProfilePrivacy
	}

	if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Follow records callerID following followeeID.
func (s *UserService) Follow(ctx context.Context, callerID, followeeID uuid.UUID) error {
	if callerID == followeeID {
		return ErrForbidden
	}
	if _, err := s.Get(ctx, followeeID); err != nil {
		return err
	}

	var existing models.Follow
	err := s.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", callerID, followeeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	return s.db.WithContext(ctx).Create(&models.Follow{
		FollowerID: callerID,
		FolloweeID: followeeID,
	}).Error
}

// Unfollow removes the relationship if it exists.
func (s *UserService) Unfollow(ctx context.Context, callerID, followeeID uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", callerID, followeeID).
		Delete(&models.Follow{}).Error
}

// DeleteAccount removes the user and everything that depends on it: the
// user's recipes with their comments, the user's comments on other
// recipes, follow relationships in both directions, and finally the user
// record. All steps run in one transaction so the account can never end
// up half deleted.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, "id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var recipeIDs []uuid.UUID
		if err := tx.Model(&models.Recipe{}).
			Where("author_id = ?", userID).
			Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}

		if len(recipeIDs) > 0 {
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Unscoped().Where("author_id = ?", userID).Delete(&models.Recipe{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("author_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("follower_id = ? OR followee_id = ?", userID, userID).Delete(&models.Follow{}).Error; err != nil {
			return err
		}

		return tx.Unscoped().Delete(&user).Error
	})
}
