package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/cooklyapp/backend/internal/middleware"
	"github.com/cooklyapp/backend/internal/service"
	"github.com/cooklyapp/backend/internal/types"
)

type CommentHandler struct {
	commentService *service.CommentService
	recipeService  *service.RecipeService
	userService    *service.UserService
	authService    *service.AuthService
	emailService   *service.EmailService
	limiter        *middleware.RateLimiter
}

func NewCommentHandler(
	commentService *service.CommentService,
	recipeService *service.RecipeService,
	userService *service.UserService,
	authService *service.AuthService,
	emailService *service.EmailService,
	limiter *middleware.RateLimiter,
) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		recipeService:  recipeService,
		userService:    userService,
		authService:    authService,
		emailService:   emailService,
		limiter:        limiter,
	}
}

func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	required := middleware.AuthMiddleware(h.authService)

	comments := router.Group("/recipes/:id/comments")
	{
		comments.GET("", h.ListComments)

		create := []gin.HandlerFunc{required}
		if h.limiter != nil {
			create = append(create, h.limiter.RateLimitMiddleware())
		}
		comments.POST("", append(create, h.CreateComment)...)

		comments.DELETE("/:commentId", required, h.DeleteComment)
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	tree, err := h.commentService.ListThreaded(c.Request.Context(), recipeID)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tree)
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	recipeID, ok := recipeIDParam(c)
	if !ok {
		return
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "comment content is required"})
		return
	}

	callerID, _ := middleware.CallerID(c)
	comment, err := h.commentService.Create(c.Request.Context(), recipeID, callerID, req.Content, req.ParentID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	h.notifyRecipeAuthor(c, recipeID, callerID)

	c.JSON(http.StatusCreated, comment)
}

// notifyRecipeAuthor emails the recipe's author about a new comment.
// Best effort: a failed notification never fails the request.
func (h *CommentHandler) notifyRecipeAuthor(c *gin.Context, recipeID, commenterID uuid.UUID) {
	if h.emailService == nil {
		return
	}

	view, err := h.recipeService.Get(c.Request.Context(), recipeID, nil)
	if err != nil || view.AuthorID == commenterID {
		return
	}
	author, err := h.userService.Get(c.Request.Context(), view.AuthorID)
	if err != nil {
		return
	}
	commenterName, _ := c.Get("user_name")
	name, _ := commenterName.(string)

	if err := h.emailService.SendCommentNotification(author, &view.Recipe, name); err != nil {
		log.Printf("failed to send comment notification: %v", err)
	}
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	commentID, err := uuid.Parse(c.Param("commentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	callerID, _ := middleware.CallerID(c)
	if err := h.commentService.Delete(c.Request.Context(), commentID, callerID); err != nil {
		handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
