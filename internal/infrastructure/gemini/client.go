package gemini

import (
	"context"
	"fmt"
	"log"

	"github.com/projectcart/backend/internal/domain"
	"google.golang.org/genai"
)

// Client generates project checklists using Google's Gemini API
type Client struct {
	client *genai.Client
	model  string
	debug  bool
}

// NewClient creates a new Gemini checklist client
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	if model == "" {
		model = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// SetDebug enables or disables debug logging
func (c *Client) SetDebug(enabled bool) {
	c.debug = enabled
}

// GenerateChecklist asks the model for a structured shopping checklist
// covering the given project description
func (c *Client) GenerateChecklist(ctx context.Context, projectQuery string) ([]domain.ChecklistItem, error) {
	if projectQuery == "" {
		return nil, domain.ErrInvalidRequest
	}

	if c.debug {
		log.Printf("[GEMINI] GenerateChecklist called with query: %q", projectQuery)
	}

	prompt := buildChecklistPrompt(projectQuery)

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrChecklistGeneration, err)
	}

	text := result.Text()
	if text == "" {
		return nil, fmt.Errorf("%w: empty model response", domain.ErrChecklistGeneration)
	}

	items, err := ParseChecklist(text)
	if err != nil {
		if c.debug {
			log.Printf("[GEMINI] Failed to parse model response: %v", err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrChecklistGeneration, err)
	}

	if c.debug {
		log.Printf("[GEMINI] Generated %d checklist items", len(items))
	}
	return items, nil
}
