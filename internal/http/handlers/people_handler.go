package handlers

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"cardstudio/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type PeopleHandler struct {
	repo *repository.PeopleRepository
}

func NewPeopleHandler(repo *repository.PeopleRepository) *PeopleHandler {
	return &PeopleHandler{repo: repo}
}

// List godoc
// @Summary List people
// @Tags people
// @Produce json
// @Success 200 {object} PeopleResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/people [get]
func (h *PeopleHandler) List(c *gin.Context) {
	people, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"people": people})
}

// Get godoc
// @Summary Get a person
// @Tags people
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} domain.Person
// @Failure 404 {object} ErrorResponse
// @Router /api/people/{id} [get]
func (h *PeopleHandler) Get(c *gin.Context) {
	person, err := h.repo.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, person)
}

// Create godoc
// @Summary Create a person
// @Tags people
// @Accept json
// @Produce json
// @Param request body PersonRequest true "Person payload"
// @Success 201 {object} domain.Person
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/people [post]
func (h *PeopleHandler) Create(c *gin.Context) {
	input, ok := h.bindPerson(c)
	if !ok {
		return
	}

	person, err := h.repo.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, person)
}

// Update godoc
// @Summary Update a person
// @Tags people
// @Accept json
// @Produce json
// @Param id path string true "Person ID"
// @Param request body PersonRequest true "Person payload"
// @Success 200 {object} domain.Person
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/people/{id} [put]
func (h *PeopleHandler) Update(c *gin.Context) {
	input, ok := h.bindPerson(c)
	if !ok {
		return
	}

	person, err := h.repo.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, person)
}

// Delete godoc
// @Summary Delete a person
// @Tags people
// @Produce json
// @Param id path string true "Person ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/people/{id} [delete]
func (h *PeopleHandler) Delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "person not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "person deleted"})
}

func (h *PeopleHandler) bindPerson(c *gin.Context) (repository.PersonInput, bool) {
	var req PersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return repository.PersonInput{}, false
	}

	req.Email = strings.TrimSpace(req.Email)
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email address"})
		return repository.PersonInput{}, false
	}

	dob, err := parseDate(req.DateOfBirth)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfBirth must use YYYY-MM-DD"})
		return repository.PersonInput{}, false
	}
	doj, err := parseDate(req.DateOfJoining)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "dateOfJoining must use YYYY-MM-DD"})
		return repository.PersonInput{}, false
	}

	if dob == nil && doj == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one of dateOfBirth or dateOfJoining is required"})
		return repository.PersonInput{}, false
	}

	return repository.PersonInput{
		Name:          strings.TrimSpace(req.Name),
		Email:         req.Email,
		Photo:         req.Photo,
		DateOfBirth:   dob,
		DateOfJoining: doj,
	}, true
}

func parseDate(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
