package claudecli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"roadmapio/internal/ports"
)

// Generator implements ports.RoadmapGenerator using the Claude Code CLI
type Generator struct {
	model string
}

var _ ports.RoadmapGenerator = (*Generator)(nil)

// Option configures the Generator
type Option func(*Generator)

// WithModel sets the Claude model to use
func WithModel(model string) Option {
	return func(g *Generator) {
		g.model = model
	}
}

// NewGenerator creates a new Claude CLI generator
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		model: "haiku", // Default to haiku for speed
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// claudeResponse represents the JSON output from claude CLI
type claudeResponse struct {
	Type         string  `json:"type"`
	Subtype      string  `json:"subtype"`
	IsError      bool    `json:"is_error"`
	Result       string  `json:"result"`
	SessionID    string  `json:"session_id"`
	TotalCostUSD float64 `json:"total_cost_usd"`
}

// outlineSectionJSON represents the expected JSON format from Claude's response
type outlineSectionJSON struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Topics      []struct {
		Title     string   `json:"title"`
		SubTopics []string `json:"subtopics,omitempty"`
	} `json:"topics"`
}

// GenerateRoadmap asks the claude CLI for a learning roadmap outline
func (g *Generator) GenerateRoadmap(ctx context.Context, title, languageName string) ([]ports.OutlineSection, error) {
	prompt := buildOutlinePrompt(title, languageName)

	args := []string{
		"-p", prompt,
		"--output-format", "json",
		"--model", g.model,
	}

	cmd := exec.CommandContext(ctx, "claude", args...)
	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("claude CLI error: %s", string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("claude CLI error: %w", err)
	}

	var response claudeResponse
	if err := json.Unmarshal(output, &response); err != nil {
		return nil, fmt.Errorf("failed to parse claude response: %w", err)
	}

	if response.IsError {
		return nil, fmt.Errorf("claude returned an error: %s", response.Result)
	}

	return parseOutline(response.Result)
}

func buildOutlinePrompt(title, languageName string) string {
	subject := title
	if languageName != "" {
		subject = fmt.Sprintf("%s (%s)", title, languageName)
	}

	return fmt.Sprintf(`You are building a personal learning roadmap.

Create a structured study outline for: %s

Break it into 4-8 sections ordered from fundamentals to advanced material.
Each section has 3-8 topics; a topic may carry a short list of subtopics
when it covers several distinct skills.

Return ONLY a JSON array (no markdown, no code blocks):
[
  {"title": "Fundamentals", "description": "Core building blocks", "topics": [
    {"title": "Variables and types"},
    {"title": "Control flow", "subtopics": ["Conditionals", "Loops"]}
  ]}
]`, subject)
}

// parseOutline extracts the outline JSON array from Claude's response
func parseOutline(result string) ([]ports.OutlineSection, error) {
	result = strings.TrimSpace(result)

	// Try to extract JSON from markdown code blocks if present
	codeBlockRe := regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")
	if matches := codeBlockRe.FindStringSubmatch(result); len(matches) > 1 {
		result = strings.TrimSpace(matches[1])
	}

	// Find JSON array in the text (handles surrounding text)
	jsonStartIdx := strings.Index(result, "[")
	jsonEndIdx := strings.LastIndex(result, "]")
	if jsonStartIdx == -1 || jsonEndIdx == -1 || jsonEndIdx <= jsonStartIdx {
		return nil, fmt.Errorf("no valid JSON array found in response")
	}

	jsonStr := result[jsonStartIdx : jsonEndIdx+1]

	var rawSections []outlineSectionJSON
	if err := json.Unmarshal([]byte(jsonStr), &rawSections); err != nil {
		return nil, fmt.Errorf("failed to parse outline JSON: %w (json: %s)", err, jsonStr)
	}

	var sections []ports.OutlineSection
	for _, raw := range rawSections {
		if raw.Title == "" {
			continue // Skip invalid entries
		}
		section := ports.OutlineSection{
			Title:       raw.Title,
			Description: raw.Description,
		}
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
		return nil, fmt.Errorf("no valid sections found in response")
	}

	return sections, nil
}

// IsAvailable checks if the claude CLI is installed and accessible
func (g *Generator) IsAvailable() bool {
	_, err := exec.LookPath("claude")
	return err == nil
}
