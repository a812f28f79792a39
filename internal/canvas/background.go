package canvas

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/disintegration/imaging"
)

// Template backgrounds come from remote URLs or inline data URIs; fetched
// bodies are capped so one oversized image cannot exhaust memory.
const maxBackgroundBytes = 10 << 20

// Loader resolves a template's background reference into a decoded image.
// A load failure is a recoverable state for the compositor: the caller
// passes nil to BuildPaintList and the render continues with the flat
// fallback background.
type Loader struct {
	client *http.Client
}

func NewLoader() *Loader {
	return &Loader{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (l *Loader) Load(ctx context.Context, url string) (image.Image, error) {
	switch {
	case url == "":
		return nil, fmt.Errorf("empty background url")
	case strings.HasPrefix(url, "data:"):
		return decodeDataURI(url)
	case strings.HasPrefix(url, "http://"), strings.HasPrefix(url, "https://"):
		return l.fetch(ctx, url)
	default:
		return nil, fmt.Errorf("unsupported background url scheme")
	}
}

func (l *Loader) fetch(ctx context.Context, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build background request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch background: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch background: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBackgroundBytes))
	if err != nil {
		return nil, fmt.Errorf("read background: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("decode background: %w", err)
	}
	return img, nil
}

func decodeDataURI(uri string) (image.Image, error) {
	comma := strings.IndexByte(uri, ',')
	if comma < 0 {
		return nil, fmt.Errorf("malformed data uri")
	}
	header, payload := uri[:comma], uri[comma+1:]
	if !strings.Contains(header, "base64") {
		return nil, fmt.Errorf("data uri is not base64-encoded")
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode data uri: %w", err)
	}

	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode data uri image: %w", err)
	}
	return img, nil
}
