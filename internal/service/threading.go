package service

import (
	"sort"

	"github.com/cooklyapp/backend/internal/models"
	"github.com/cooklyapp/backend/internal/types"
	"github.com/google/uuid"
)

// BuildCommentTree reconstructs the two-level display tree from the flat,
// recipe-scoped comment list. Top-level comments are ordered newest first,
// replies oldest first. A comment whose parent is not a top-level comment
// in the input (an orphan left behind by a corrupted dataset) is silently
// dropped. The result is never nil.
func BuildCommentTree(comments []models.Comment) []types.CommentNode {
	byParent := make(map[uuid.UUID][]models.Comment)
	var topLevel []models.Comment
	for _, c := range comments {
		if c.ParentID == nil {
			topLevel = append(topLevel, c)
		} else {
			byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
		}
	}

	sort.SliceStable(topLevel, func(i, j int) bool {
		return topLevel[i].CreatedAt.After(topLevel[j].CreatedAt)
	})

	tree := make([]types.CommentNode, 0, len(topLevel))
	for _, c := range topLevel {
		replies := byParent[c.ID]
		sort.SliceStable(replies, func(i, j int) bool {
			return replies[i].CreatedAt.Before(replies[j].CreatedAt)
		})
		if replies == nil {
			replies = []models.Comment{}
		}
		tree = append(tree, types.CommentNode{Comment: c, Replies: replies})
	}
	return tree
}

// AuthorizeCommentDelete allows deletion by the comment's author or by the
// author of the recipe the comment belongs to.
func AuthorizeCommentDelete(comment *models.Comment, recipe *models.Recipe, callerID uuid.UUID) error {
	if comment.AuthorID == callerID || recipe.AuthorID == callerID {
		return nil
	}
	return ErrForbidden
}
