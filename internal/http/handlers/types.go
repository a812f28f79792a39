package handlers

import (
	"encoding/json"

	"cardstudio/internal/domain"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type PersonRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Photo         string `json:"photo"`
	DateOfBirth   string `json:"dateOfBirth"`
	DateOfJoining string `json:"dateOfJoining"`
}

type PeopleResponse struct {
	People []domain.Person `json:"people"`
}

// TemplateRequest accepts elements either as a JSON array or as a JSON
// string containing an encoded array; both forms are normalized before
// persistence.
type TemplateRequest struct {
	Name     string          `json:"name" binding:"required"`
	URL      string          `json:"url"`
	CardType string          `json:"cardType"`
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	Elements json.RawMessage `json:"elements"`
}

type TemplatesResponse struct {
	Templates []domain.Template `json:"templates"`
}

type RenderRequest struct {
	Name    string `json:"name"`
	Message string `json:"message"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type CardRequest struct {
	RecipientName string  `json:"recipientName" binding:"required"`
	Message       string  `json:"message"`
	PhotoURL      string  `json:"photoUrl"`
	CardType      string  `json:"cardType"`
	ImageURL      string  `json:"imageUrl"`
	PersonID      *string `json:"personId"`
	TemplateID    *string `json:"templateId"`
}

type CardsResponse struct {
	Cards []domain.Card `json:"cards"`
}

type GenerateImageRequest struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Model  string `json:"model"`
}

type GenerateImageResponse struct {
	ImageURL      string `json:"imageUrl,omitempty"`
	ImageData     string `json:"imageData,omitempty"`
	GeneratedText string `json:"generatedText,omitempty"`
	Fallback      bool   `json:"fallback,omitempty"`
}

type GenerateMessageRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type GenerateMessageResponse struct {
	Message       string `json:"message"`
	IsAIGenerated bool   `json:"isAIGenerated"`
}
