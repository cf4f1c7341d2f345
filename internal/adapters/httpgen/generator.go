package httpgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"roadmapio/internal/application"
	"roadmapio/internal/ports"
)

// Generator implements ports.RoadmapGenerator against a remote generation
// endpoint. The endpoint accepts POST {"title": ..., "languageName": ...}
// and returns {"sections": [...]}.
type Generator struct {
	endpoint string
	client   *http.Client
}

var _ ports.RoadmapGenerator = (*Generator)(nil)

// Option configures the Generator
type Option func(*Generator)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(g *Generator) {
		g.client = client
	}
}

// WithTimeout sets the request timeout on the default client
func WithTimeout(timeout time.Duration) Option {
	return func(g *Generator) {
		g.client.Timeout = timeout
	}
}

// NewGenerator creates a new HTTP generator for the given endpoint
func NewGenerator(endpoint string, opts ...Option) *Generator {
	g := &Generator{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type generateRequest struct {
	Title        string `json:"title"`
	LanguageName string `json:"languageName,omitempty"`
}

type generateResponse struct {
	Sections []struct {
		Title       string `json:"title"`
		Description string `json:"description,omitempty"`
		Topics      []struct {
			Title     string   `json:"title"`
			SubTopics []string `json:"subtopics,omitempty"`
		} `json:"topics"`
	} `json:"sections"`
	Error string `json:"error,omitempty"`
}

// GenerateRoadmap requests a roadmap outline from the remote endpoint
func (g *Generator) GenerateRoadmap(ctx context.Context, title, languageName string) ([]ports.OutlineSection, error) {
	body, err := json.Marshal(generateRequest{Title: title, LanguageName: languageName})
	if err != nil {
		return nil, fmt.Errorf("encoding generation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &application.GenerationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &application.GenerationError{Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &application.GenerationError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
		}
	}

	var decoded generateResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decoding generation response: %w", err)
	}
	if decoded.Error != "" {
		return nil, &application.GenerationError{Message: decoded.Error}
	}

	sections := make([]ports.OutlineSection, 0, len(decoded.Sections))
	for _, raw := range decoded.Sections {
		if raw.Title == "" {
			continue
		}
		section := ports.OutlineSection{Title: raw.Title, Description: raw.Description}
		for _, topic := range raw.Topics {
			if topic.Title == "" {
				continue
			}
			section.Topics = append(section.Topics, ports.OutlineTopic{
				Title:     topic.Title,
				SubTopics: topic.SubTopics,
			})
		}
		sections = append(sections, section)
	}

	if len(sections) == 0 {
		return nil, &application.GenerationError{Message: "generation returned no sections"}
	}

	return sections, nil
}

// errorMessage pulls the error field out of a failure body, falling back to
// the HTTP status text.
func errorMessage(data []byte, statusCode int) string {
	var decoded generateResponse
	if err := json.Unmarshal(data, &decoded); err == nil && decoded.Error != "" {
		return decoded.Error
	}
	return http.StatusText(statusCode)
}

// IsAvailable reports whether an endpoint is configured
func (g *Generator) IsAvailable() bool {
	return g.endpoint != ""
}
