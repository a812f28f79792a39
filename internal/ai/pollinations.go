package ai

import (
	"fmt"
	"net/url"
	"strconv"
)

// Pollinations synthesizes image URLs directly from the encoded prompt; no
// network round trip happens until something fetches the bytes. Same prompt
// and dimensions yield the same URL modulo the seed parameter.
type Pollinations struct {
	baseURL string
}

func NewPollinations(baseURL string) *Pollinations {
	if baseURL == "" {
		baseURL = "https://image.pollinations.ai"
	}
	return &Pollinations{baseURL: baseURL}
}

func (p *Pollinations) ImageURL(prompt string, width, height int, seed int64) string {
	params := url.Values{}
	params.Set("width", strconv.Itoa(width))
	params.Set("height", strconv.Itoa(height))
	params.Set("seed", strconv.FormatInt(seed, 10))
	params.Set("model", "flux")
	params.Set("nologo", "true")

	return fmt.Sprintf("%s/prompt/%s?%s", p.baseURL, url.PathEscape(prompt), params.Encode())
}
