package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardstudio/internal/domain"
	"cardstudio/internal/repository"
	"cardstudio/internal/service"
)

type TemplateHandler struct {
	repo     *repository.TemplateRepository
	renderer *service.RenderService
	// maxImageBytes caps inline data-URI backgrounds.
	maxImageBytes int
}

func NewTemplateHandler(repo *repository.TemplateRepository, renderer *service.RenderService, maxImageBytes int) *TemplateHandler {
	return &TemplateHandler{
		repo:          repo,
		renderer:      renderer,
		maxImageBytes: maxImageBytes,
	}
}

// List godoc
// @Summary List card templates
// @Tags templates
// @Produce json
// @Success 200 {object} TemplatesResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// Get godoc
// @Summary Get a template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} domain.Template
// @Failure 404 {object} ErrorResponse
// @Router /api/templates/{id} [get]
func (h *TemplateHandler) Get(c *gin.Context) {
	tpl, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Create godoc
// @Summary Create a template
// @Tags templates
// @Accept json
// @Produce json
// @Param request body TemplateRequest true "Template payload"
// @Success 201 {object} domain.Template
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	input, ok := h.bindTemplate(c)
	if !ok {
		return
	}

	tpl, err := h.repo.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, tpl)
}

// Update godoc
// @Summary Update a template
// @Tags templates
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body TemplateRequest true "Template payload"
// @Success 200 {object} domain.Template
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	input, ok := h.bindTemplate(c)
	if !ok {
		return
	}

	tpl, err := h.repo.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Delete godoc
// @Summary Delete a template
// @Tags templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}

// Render godoc
// @Summary Render a template as a PNG card
// @Description Substitutes the given name and message into the template's
// @Description text elements and returns the rasterized card.
// @Tags templates
// @Accept json
// @Produce png
// @Param id path string true "Template ID"
// @Param request body RenderRequest true "Render payload"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/templates/{id}/render [post]
func (h *TemplateHandler) Render(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	png, err := h.renderer.RenderPNG(c.Request.Context(), c.Param("id"), req.Name, req.Message, req.Width, req.Height)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *TemplateHandler) bindTemplate(c *gin.Context) (repository.TemplateInput, bool) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return repository.TemplateInput{}, false
	}

	if strings.HasPrefix(req.URL, "data:") && len(req.URL) > h.maxImageBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "background image exceeds the upload size limit"})
		return repository.TemplateInput{}, false
	}

	cardType := domain.CardType(strings.TrimSpace(req.CardType))
	if cardType == "" {
		cardType = domain.CardTypeBirthday
	}
	if cardType != domain.CardTypeBirthday && cardType != domain.CardTypeAnniversary {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cardType must be birthday or anniversary"})
		return repository.TemplateInput{}, false
	}

	elements, err := domain.DecodeElements(req.Elements)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "elements must be a JSON array or an encoded array string"})
		return repository.TemplateInput{}, false
	}

	return repository.TemplateInput{
		Name:     strings.TrimSpace(req.Name),
		URL:      req.URL,
		CardType: cardType,
		Width:    req.Width,
		Height:   req.Height,
		Elements: elements,
	}, true
}
