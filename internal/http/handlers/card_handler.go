package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"cardstudio/internal/domain"
	"cardstudio/internal/repository"
)

type CardHandler struct {
	repo *repository.CardRepository
}

func NewCardHandler(repo *repository.CardRepository) *CardHandler {
	return &CardHandler{repo: repo}
}

// List godoc
// @Summary List generated cards
// @Tags cards
// @Produce json
// @Success 200 {object} CardsResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/cards [get]
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cards": cards})
}

// Create godoc
// @Summary Save a generated card
// @Tags cards
// @Accept json
// @Produce json
// @Param request body CardRequest true "Card payload"
// @Success 201 {object} domain.Card
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/cards [post]
func (h *CardHandler) Create(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cardType := domain.CardType(strings.TrimSpace(req.CardType))
	if cardType == "" {
		cardType = domain.CardTypeBirthday
	}
	if cardType != domain.CardTypeBirthday && cardType != domain.CardTypeAnniversary {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cardType must be birthday or anniversary"})
		return
	}

	card, err := h.repo.Create(c.Request.Context(), repository.CardInput{
		RecipientName: strings.TrimSpace(req.RecipientName),
		Message:       req.Message,
		PhotoURL:      req.PhotoURL,
		CardType:      cardType,
		ImageURL:      req.ImageURL,
		PersonID:      req.PersonID,
		TemplateID:    req.TemplateID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, card)
}
