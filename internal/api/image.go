package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cooklyapp/backend/internal/middleware"
	"github.com/cooklyapp/backend/internal/service"
)

const maxImageBytes = 5 << 20 // 5 MiB

type ImageHandler struct {
	imageService *service.ImageService
	authService  *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		authService:  authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/images", middleware.AuthMiddleware(h.authService), h.Upload)
}

// Upload accepts a multipart "image" file, stores it in S3 and returns
// the public URL to use as a recipe image.
func (h *ImageHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds maximum size"})
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}

	url, err := h.imageService.Upload(c.Request.Context(), data, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
