package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Client interface {
	// Chat sends the messages as one completion request and returns the
	// provider's response body untouched.
	Chat(ctx context.Context, messages []ChatMessage) (json.RawMessage, error)
}

type DeepSeek struct {
	apiKey      string
	baseURL     string
	chatModel   string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
}

const (
	baseURL     = "https://api.deepseek.com/v1"
	chatModel   = "deepseek-chat"
	temperature = 0.7
	maxTokens   = 2000
)

type Option func(*DeepSeek)

// WithBaseURL points the client at another API root, e.g. a test server.
func WithBaseURL(u string) Option {
	return func(c *DeepSeek) {
		if u != "" {
			c.baseURL = u
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *DeepSeek) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func NewDeepSeek(apiKey string, opts ...Option) *DeepSeek {
	c := &DeepSeek{
		apiKey:      apiKey,
		baseURL:     baseURL,
		chatModel:   chatModel,
		temperature: temperature,
		maxTokens:   maxTokens,
		httpClient:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *DeepSeek) Chat(ctx context.Context, messages []ChatMessage) (json.RawMessage, error) {
	url, err := url.JoinPath(c.baseURL, "/chat/completions")
	if err != nil {
		return nil, err
	}

	chatReq := ChatRequest{
		Model:       c.chatModel,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	}

	body, err := json.Marshal(chatReq)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request failed: %w", err)
	}

	return readJSONResponse(resp)
}

func readJSONResponse(resp *http.Response) (json.RawMessage, error) {
	if resp == nil || resp.Body == nil {
		return nil, fmt.Errorf("response is nil")
	}
	defer resp.Body.Close()

	respByte, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: respByte}
	}

	if !json.Valid(respByte) {
		return nil, fmt.Errorf("malformed response body: %q", truncate(respByte, 200))
	}

	return json.RawMessage(respByte), nil
}

func truncate(b []byte, n int) []byte {
	if len(b) > n {
		return b[:n]
	}
	return b
}
