package service

import (
	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/types"
	"github.com/google/uuid"
)

// Annotate computes the derived engagement fields for a recipe as seen by
// the given caller. A nil callerID means an anonymous request. Pure
// projection: the recipe is not modified. Every code path that returns
// recipes to a client (list, single fetch, bookmarked list) goes through
// this function so the derived-field semantics stay identical.
func Annotate(r *models.Recipe, callerID *uuid.UUID) types.RecipeView {
	view := types.RecipeView{Recipe: *r}

	view.ReviewCount = len(r.Ratings)
	if len(r.Ratings) > 0 {
		sum := 0
		for _, rt := range r.Ratings {
			sum += rt.Value
		}
		view.AverageRating = float64(sum) / float64(len(r.Ratings))
	}

	if callerID != nil {
		view.IsLiked = r.Likes.Contains(*callerID)
		view.IsBookmarked = r.Bookmarks.Contains(*callerID)
		for _, rt := range r.Ratings {
			if rt.UserID == *callerID {
				v := rt.Value
				view.MyRating = &v
				break
			}
		}
	}

	return view
}

// AnnotateAll applies Annotate to every recipe in the slice.
func AnnotateAll(recipes []models.Recipe, callerID *uuid.UUID) []types.RecipeView {
	views := make([]types.RecipeView, len(recipes))
	for i := range recipes {
		views[i] = Annotate(&recipes[i], callerID)
	}
	return views
}

// toggleLike flips the caller's membership in the likes set and returns
// the new membership plus the resulting count.
func toggleLike(r *models.Recipe, userID uuid.UUID) (liked bool, count int) {
	r.Likes, liked = toggleMember(r.Likes, userID)
	return liked, len(r.Likes)
}

// toggleBookmark flips the caller's membership in the bookmarks set.
func toggleBookmark(r *models.Recipe, userID uuid.UUID) (bookmarked bool) {
	r.Bookmarks, bookmarked = toggleMember(r.Bookmarks, userID)
	return bookmarked
}

func toggleMember(set models.UUIDSet, id uuid.UUID) (models.UUIDSet, bool) {
	for i, member := range set {
		if member == id {
			return append(set[:i], set[i+1:]...), false
		}
	}
	return append(set, id), true
}

// upsertRating replaces the caller's existing rating entry or appends a
// new one, then recomputes average and count from the in-memory list.
// The ratings list is left untouched when the value is out of range.
func upsertRating(r *models.Recipe, userID uuid.UUID, value int) (avg float64, count int, err error) {
	if value < 1 || value > 5 {
		return 0, 0, ErrInvalidRating
	}

	found := false
	for i := range r.Ratings {
		if r.Ratings[i].UserID == userID {
			r.Ratings[i].Value = value
			found = true
			break
		}
	}
	if !found {
		r.Ratings = append(r.Ratings, models.Rating{UserID: userID, Value: value})
	}

	sum := 0
	for _, rt := range r.Ratings {
		sum += rt.Value
	}
	return float64(sum) / float64(len(r.Ratings)), len(r.Ratings), nil
}
