package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"cardstudio/internal/ai"
	"cardstudio/internal/domain"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	pipeline := ai.NewPipeline(ai.Config{
		EnhanceTimeout: time.Second,
		Seed:           func() int64 { return 7 },
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h := NewGenerateHandler(pipeline)

	r := gin.New()
	r.POST("/api/generate-image", h.GenerateImage)
	r.POST("/api/generate-message", h.GenerateMessage)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateImageFallbackWithoutProvider(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/api/generate-image", GenerateImageRequest{Prompt: "balloons", Width: 512, Height: 512})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp GenerateImageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !resp.Fallback {
		t.Fatal("expected fallback without a configured text model")
	}
	if !strings.Contains(resp.ImageURL, "balloons") {
		t.Fatalf("ImageURL = %q", resp.ImageURL)
	}
}

func TestGenerateImageRejectsNegativeDimensions(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/api/generate-image", GenerateImageRequest{Width: -1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateMessageRequiresName(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/api/generate-message", GenerateMessageRequest{Type: "birthday"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGenerateMessageFallback(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/api/generate-message", GenerateMessageRequest{Name: "Ada", Type: "anniversary"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp GenerateMessageResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.IsAIGenerated {
		t.Fatal("fallback message must not be marked AI generated")
	}
	if resp.Message != ai.FallbackMessage("Ada", domain.OccasionAnniversary) {
		t.Fatalf("Message = %q", resp.Message)
	}
}

func TestGenerateMessageRejectsUnknownType(t *testing.T) {
	r := testRouter()

	w := postJSON(t, r, "/api/generate-message", GenerateMessageRequest{Name: "Ada", Type: "graduation"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
