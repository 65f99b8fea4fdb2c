package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Role of a chat message.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ChatMessage is one message of a completion request.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Messages []ChatMessage `json:"messages"`
}

type completionResponse struct {
	Completion string `json:"completion"`
}

// maxResponseBytes caps the completion body read from the endpoint.
const maxResponseBytes = 1 << 20

// ErrEmptyCompletion is returned when the endpoint answers without text.
var ErrEmptyCompletion = errors.New("empty completion")

// Completer produces a completion for a system and user prompt.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client is an HTTP Completer for an endpoint accepting {messages} and answering {completion}.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient constructs a Client. A zero timeout means 20s.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
}

// Complete posts the two messages and returns the trimmed completion.
// Non-2xx statuses and transport failures are errors.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.endpoint == "" {
		return "", errors.New("completion endpoint not configured")
	}
	body, err := json.Marshal(completionRequest{Messages: []ChatMessage{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: user},
	}})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return "", fmt.Errorf("completion request failed with status %d", resp.StatusCode)
	}
	var out completionResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&out); err != nil {
		return "", fmt.Errorf("decode completion: %w", err)
	}
	text := strings.TrimSpace(out.Completion)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
