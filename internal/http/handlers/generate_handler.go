package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardstudio/internal/ai"
	"cardstudio/internal/domain"
)

type GenerateHandler struct {
	pipeline *ai.Pipeline
}

func NewGenerateHandler(pipeline *ai.Pipeline) *GenerateHandler {
	return &GenerateHandler{pipeline: pipeline}
}

// GenerateImage godoc
// @Summary Generate a card image
// @Description Enhances the prompt via the text model when configured and
// @Description returns a deterministic image URL; falls back to the raw
// @Description prompt when enhancement is unavailable or fails.
// @Tags generation
// @Accept json
// @Produce json
// @Param request body GenerateImageRequest true "Generation payload"
// @Success 200 {object} GenerateImageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/generate-image [post]
func (h *GenerateHandler) GenerateImage(c *gin.Context) {
	var req GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Width < 0 || req.Height < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "width and height must be positive"})
		return
	}

	result, err := h.pipeline.GenerateImage(c.Request.Context(), ai.ImageRequest{
		Prompt: strings.TrimSpace(req.Prompt),
		Width:  req.Width,
		Height: req.Height,
		Model:  strings.TrimSpace(req.Model),
	})
	if err != nil {
		if errors.Is(err, ai.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "image generation timed out"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateImageResponse{
		ImageURL:      result.ImageURL,
		ImageData:     result.ImageData,
		GeneratedText: result.Text,
		Fallback:      result.Fallback,
	})
}

// GenerateMessage godoc
// @Summary Generate a celebration message
// @Tags generation
// @Accept json
// @Produce json
// @Param request body GenerateMessageRequest true "Message payload"
// @Success 200 {object} GenerateMessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/generate-message [post]
func (h *GenerateHandler) GenerateMessage(c *gin.Context) {
	var req GenerateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	occasion := domain.Occasion(strings.TrimSpace(req.Type))
	switch occasion {
	case domain.OccasionBirthday, domain.OccasionAnniversary, domain.OccasionBoth:
	case "":
		occasion = domain.OccasionBirthday
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "type must be one of birthday|anniversary|both"})
		return
	}

	result, err := h.pipeline.GenerateMessage(c.Request.Context(), name, occasion)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, GenerateMessageResponse{
		Message:       result.Message,
		IsAIGenerated: result.AIGenerated,
	})
}
