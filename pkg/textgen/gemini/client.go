// Package gemini implements textgen.Generator with the Google Gen AI SDK.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agenthub/pkg/metrics"
	"agenthub/pkg/serrors"
	"agenthub/pkg/textgen"

	"google.golang.org/genai"
)

const (
	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.5-flash"

	serviceName = "gemini"
)

type Options struct {
	APIKey string
	Model  string
	// HTTPClient and BaseURL override the SDK transport, mostly for tests.
	HTTPClient *http.Client
	BaseURL    string
}

type Client struct {
	client *genai.Client
	model  string
}

var _ textgen.Generator = (*Client)(nil)

// New creates a Gemini API client. An empty API key is rejected with
// serrors.ErrUnavailable.
func New(ctx context.Context, options Options) (*Client, error) {
	if options.APIKey == "" {
		return nil, serrors.With(serrors.ErrUnavailable, "GEMINI_API_KEY is not set")
	}
	if options.Model == "" {
		options.Model = DefaultModel
	}

	cfg := &genai.ClientConfig{
		APIKey:     options.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: options.HTTPClient,
	}
	if options.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = options.BaseURL
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create genai client: %w", err)
	}

	return &Client{client: client, model: options.Model}, nil
}

func (c *Client) Model() string { return c.model }

func (c *Client) Generate(ctx context.Context, system, prompt string) (text string, err error) {
	start := time.Now()
	defer func() { metrics.ObserveOutbound(serviceName, "generate_content", start, err) }()

	var config *genai.GenerateContentConfig
	if system != "" {
		config = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), config)
	if err != nil {
		if isRateLimited(err) {
			return "", serrors.Wrap(serrors.ErrRateLimited, err, "gemini quota exhausted")
		}

		return "", fmt.Errorf("could not generate content: %w", err)
	}

	text = strings.TrimSpace(result.Text())
	if text == "" {
		return "", errors.New("gemini returned an empty response")
	}

	return text, nil
}

func isRateLimited(err error) bool {
	var apiErr genai.APIError

	return errors.As(err, &apiErr) && apiErr.Code == http.StatusTooManyRequests
}
