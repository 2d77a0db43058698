package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Client calls the Gemini API in structured-JSON response mode and hands the
// raw text back to the caller. The model is treated as untrusted; parsing
// and schema enforcement of the returned text live in the application layer.
type Client struct {
	client *genai.Client
	model  string
}

// taskListSchema constrains generation output to {"tasks":[string,...]}.
var taskListSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"tasks": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
	},
	Required: []string{"tasks"},
}

// validationSchema constrains verdict output to {"valid","reason","confidence"}.
var validationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"valid":      {Type: genai.TypeBoolean},
		"reason":     {Type: genai.TypeString},
		"confidence": {Type: genai.TypeNumber},
	},
	Required: []string{"valid", "reason", "confidence"},
}

// New creates a Gemini client. An empty API key is an error here; the caller
// decides whether a missing credential disables the feature or aborts.
func New(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// GenerateText sends a text-only prompt and returns the raw response text,
// expected (but not guaranteed) to match the task-list schema.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   taskListSchema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	return resp.Text(), nil
}

// GenerateWithImage sends a prompt plus an inline image and returns the raw
// response text, expected to match the validation schema.
func (c *Client) GenerateWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(image, mimeType),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   validationSchema,
	})
	if err != nil {
		return "", fmt.Errorf("gemini validate failed: %w", err)
	}
	return resp.Text(), nil
}
