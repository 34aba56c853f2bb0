package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/partscout/backend/internal/domain"
	"golang.org/x/time/rate"
)

// Client handles communication with a local Ollama chat API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	debug       bool
}

// chatMessage is one message in an Ollama chat exchange
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest is the Ollama /api/chat request body
type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

// chatResponse is the Ollama /api/chat response body
type chatResponse struct {
	Model   string      `json:"model"`
	Message chatMessage `json:"message"`
	Done    bool        `json:"done"`
	Error   string      `json:"error,omitempty"`
}

// NewClient creates a new Ollama API client
func NewClient(baseURL, model string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	// Local models serve one request at a time; a small burst keeps the
	// interactive path responsive without queueing unbounded work.
	limiter := rate.NewLimiter(rate.Limit(1), 3)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		model:       model,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request/response logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// Chat sends a single-turn prompt and returns the model's reply text.
// One attempt only: the caller treats any failure as "model unavailable"
// and falls back, so retrying here would just slow the interactive path.
func (c *Client) Chat(ctx context.Context, prompt string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	reqBody := chatRequest{
		Model:    c.model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
		Stream:   false,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to serialize request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/chat", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.debug {
		log.Printf("[OLLAMA] POST %s/api/chat model=%s", c.baseURL, c.model)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrLLMFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrLLMFailure, resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", domain.ErrLLMFailure, err)
	}

	if chatResp.Error != "" {
		return "", fmt.Errorf("%w: %s", domain.ErrLLMFailure, chatResp.Error)
	}

	if c.debug {
		log.Printf("[OLLAMA] reply: %q", chatResp.Message.Content)
	}

	return chatResp.Message.Content, nil
}
