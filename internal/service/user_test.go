package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/service"
	"github.com/cooklyapp/backend/internal/testdb"
	"github.com/cooklyapp/backend/internal/types"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestPublicProfilePrivacy(t *testing.T) {
	db := testdb.SetupSQLite(t)
	ctx := context.Background()
	users := service.NewUserService(db)
	user := seedUser(t, db, "alice")

	_, err := users.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		Bio:      strPtr("Home cook."),
		Location: strPtr("Lisbon"),
	})
	require.NoError(t, err)

	profile, err := users.PublicProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Name)
	assert.Equal(t, "Home cook.", profile.Bio)
	assert.Equal(t, "Lisbon", profile.Location)
	assert.Empty(t, profile.Email)

	_, err = users.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{
		ShowEmail: boolPtr(true),
		ShowBio:   boolPtr(false),
	})
	require.NoError(t, err)

	profile, err = users.PublicProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, profile.Email)
	assert.Empty(t, profile.Bio)
	assert.Equal(t, "Lisbon", profile.Location)
}

func TestUpdateProfilePartial(t *testing.T) {
	db := testdb.SetupSQLite(t)
	ctx := context.Background()
	users := service.NewUserService(db)
	user := seedUser(t, db, "alice")

	_, err := users.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Bio: strPtr("Original bio")})
	require.NoError(t, err)

	updated, err := users.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Name: strPtr("Alice B")})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "Original bio", updated.Bio)
}

func TestUpdateProfileNotFound(t *testing.T) {
	db := testdb.SetupSQLite(t)
	users := service.NewUserService(db)

	_, err := users.UpdateProfile(context.Background(), uuid.New(), &types.UpdateProfileRequest{})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestFollowUnfollow(t *testing.T) {
	db := testdb.SetupSQLite(t)
	ctx := context.Background()
	users := service.NewUserService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	assert.ErrorIs(t, users.Follow(ctx, alice.ID, alice.ID), service.ErrForbidden)
	assert.ErrorIs(t, users.Follow(ctx, alice.ID, uuid.New()), service.ErrNotFound)

	require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))
	// Idempotent: a second follow does not duplicate the row.
	require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", alice.ID, bob.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)

	require.NoError(t, users.Unfollow(ctx, alice.ID, bob.ID))
	require.NoError(t, db.Model(&models.Follow{}).
		Where("follower_id = ?", alice.ID).
		Count(&count).Error)
	assert.Zero(t, count)

	// Unfollowing twice is a no-op.
	require.NoError(t, users.Unfollow(ctx, alice.ID, bob.ID))
}

func TestDeleteAccountRemovesEverything(t *testing.T) {
	db := testdb.SetupSQLite(t)
	ctx := context.Background()
	users := service.NewUserService(db)
	comments := service.NewCommentService(db)
	alice := seedUser(t, db, "alice")
	bob := seedUser(t, db, "bob")

	aliceRecipe := seedRecipe(t, db, alice.ID, "Alice Special")
	bobRecipe := seedRecipe(t, db, bob.ID, "Bob Classic")

	_, err := comments.Create(ctx, aliceRecipe.ID, bob.ID, "Nice one", nil)
	require.NoError(t, err)
	_, err = comments.Create(ctx, bobRecipe.ID, alice.ID, "Looks tasty", nil)
	require.NoError(t, err)
	require.NoError(t, users.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, users.Follow(ctx, bob.ID, alice.ID))

	require.NoError(t, users.DeleteAccount(ctx, alice.ID))

	_, err = users.Get(ctx, alice.ID)
	assert.ErrorIs(t, err, service.ErrNotFound)

	var recipeCount int64
	require.NoError(t, db.Model(&models.Recipe{}).Where("author_id = ?", alice.ID).Count(&recipeCount).Error)
	assert.Zero(t, recipeCount)

	// Bob's comment on Alice's recipe went with the recipe; Alice's
	// comment on Bob's recipe went with the account.
	var commentCount int64
	require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
	assert.Zero(t, commentCount)

	var followCount int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&followCount).Error)
	assert.Zero(t, followCount)

	// Bob's own recipe is untouched.
	recipes := service.NewRecipeService(db)
	_, err = recipes.Get(ctx, bobRecipe.ID, nil)
	assert.NoError(t, err)
}

func TestDeleteAccountNotFound(t *testing.T) {
	db := testdb.SetupSQLite(t)
	users := service.NewUserService(db)

	assert.ErrorIs(t, users.DeleteAccount(context.Background(), uuid.New()), service.ErrNotFound)
}
