// Package llm implements a client for OpenAI-compatible chat-completion
// endpoints with bounded, jittered exponential retries.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/flashcards-backend/internal/config"
)

const (
	chatCompletionsPath = "/chat/completions"
	maxResponseBytes    = 4 << 20
)

// Client calls the chat-completion endpoint.
type Client struct {
	baseURL string
	apiKey  string

	defaults     Params
	maxRetries   int
	initialDelay time.Duration
	maxDelay     time.Duration
	timeout      time.Duration

	httpClient *http.Client
	sleeper    Sleeper
	random     func() float64
	log        *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithSleeper replaces the wait between attempts (tests use a fake clock).
func WithSleeper(s Sleeper) Option {
	return func(c *Client) {
		if s != nil {
			c.sleeper = s
		}
	}
}

// WithRandom replaces the jitter source. fn must return values in [0, 1).
func WithRandom(fn func() float64) Option {
	return func(c *Client) {
		if fn != nil {
			c.random = fn
		}
	}
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a Client. It fails with *ValidationError, without touching the
// network, when no API key is configured.
func New(cfg config.LLMConfig, opts ...Option) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, newValidationError("api key is required")
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, newValidationError("base url is required")
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}
	initialDelay := cfg.InitialDelay
	if initialDelay <= 0 {
		initialDelay = time.Second
	}
	maxDelay := cfg.MaxDelay
	if maxDelay <= 0 {
		maxDelay = 10 * time.Second
	}

	c := &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		defaults:     DefaultParams(cfg),
		maxRetries:   maxRetries,
		initialDelay: initialDelay,
		maxDelay:     maxDelay,
		timeout:      cfg.Timeout,
		httpClient: &http.Client{Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        20,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		}},
		sleeper: timerSleeper{},
		random:  rand.Float64,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "llm")

	return c, nil
}

type chatRequest struct {
	Params
	Messages []Message `json:"messages"`
}

// Chat sends one system and one user message and returns the validated
// completion. Retryable failures are retried up to the configured number of
// attempts; once exhausted the last failure is returned inside a *NetworkError.
// Fatal failures (*ValidationError, *APIError with status < 500) are returned
// as-is after the first attempt.
func (c *Client) Chat(ctx context.Context, systemMessage, userMessage string, overrides *Params) (*ChatCompletion, error) {
	req := chatRequest{
		Params: MergeParams(c.defaults, overrides),
		Messages: []Message{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: userMessage},
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("llm: encode request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("llm: chat: %w", err)
		}

		completion, err := c.doOnce(ctx, body)
		if err == nil {
			c.log.DebugContext(ctx, "llm completion received",
				slog.String("model", completion.Model),
				slog.Int("attempt", attempt+1),
				slog.Int("prompt_tokens", completion.Usage.PromptTokens),
				slog.Int("completion_tokens", completion.Usage.CompletionTokens),
			)
			return completion, nil
		}
		lastErr = err

		if Classify(err) == ClassFatal {
			return nil, err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("llm: chat: %w", ctxErr)
		}
		if attempt == c.maxRetries-1 {
			break
		}

		delay := Backoff(attempt, c.initialDelay, c.maxDelay, c.random)
		c.log.WarnContext(ctx, "llm request retrying",
			slog.Int("attempt", attempt+1),
			slog.Int("max_retries", c.maxRetries),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()),
		)

		if err := c.sleeper.Sleep(ctx, delay); err != nil {
			return nil, fmt.Errorf("llm: chat: %w", err)
		}
	}

	return nil, &NetworkError{Attempts: c.maxRetries, Err: lastErr}
}

func (c *Client) doOnce(ctx context.Context, body []byte) (*ChatCompletion, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+chatCompletionsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("llm: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("llm: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    upstreamErrorMessage(raw),
			Body:       string(raw),
		}
	}

	return DecodeChatCompletion(raw)
}

// upstreamErrorMessage extracts error.message from an OpenAI-style error body.
func upstreamErrorMessage(raw []byte) string {
	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return body.Error.Message
}
