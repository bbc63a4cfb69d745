//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/flashcards-backend/internal/app"
	"github.com/heartmarshall/flashcards-backend/internal/config"
)

const (
	testJWTSecret = "e2e-secret-at-least-32-characters-long"
	testIssuer    = "https://id.e2e.test"
	testAudience  = "authenticated"
)

// sampleText is long enough to pass the default minimum text length.
var sampleText = strings.Repeat("Photosynthesis converts light energy into chemical energy stored in glucose. ", 20)

// fakeModel is an OpenAI-compatible completion endpoint. Each successful call
// returns cardsPerCall flashcards numbered by call.
type fakeModel struct {
	mu           sync.Mutex
	calls        int
	cardsPerCall int
	failStatus   int
}

func (m *fakeModel) setFailure(status int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failStatus = status
}

func (m *fakeModel) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *fakeModel) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.calls++
	call, fail, n := m.calls, m.failStatus, m.cardsPerCall
	m.mu.Unlock()

	if fail != 0 {
		http.Error(w, `{"error":{"message":"model unavailable"}}`, fail)
		return
	}

	cards := make([]map[string]string, n)
	for i := range cards {
		cards[i] = map[string]string{
			"front_original": fmt.Sprintf("Question %d.%d about photosynthesis?", call, i+1),
			"back_original":  fmt.Sprintf("Answer %d.%d", call, i+1),
		}
	}
	content, _ := json.Marshal(map[string]any{"flashcards": cards})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
		"id":      fmt.Sprintf("chatcmpl-%d", call),
		"object":  "chat.completion",
		"created": time.Now().Unix(),
		"model":   "fake-model",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]string{"role": "assistant", "content": string(content)},
			"finish_reason": "stop",
		}},
		"usage": map[string]int{"prompt_tokens": 100, "completion_tokens": 50, "total_tokens": 150},
	})
}

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Model  *fakeModel
}

type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func testConfig(modelURL string) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{JWTSecret: testJWTSecret, JWTIssuer: testIssuer, JWTAudience: testAudience},
		LLM: config.LLMConfig{
			APIKey:       "test-key",
			BaseURL:      modelURL,
			Model:        "fake-model",
			Timeout:      5 * time.Second,
			MaxRetries:   2,
			InitialDelay: time.Millisecond,
			MaxDelay:     2 * time.Millisecond,
			Temperature:  0.7,
			TopP:         1,
			MaxTokens:    2000,
		},
		Generation: config.GenerationConfig{
			MinTextLength:      1000,
			MaxTextLength:      10000,
			MaxBulkApprove:     100,
			RateLimitPerMinute: 100,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
			MaxAge:         600,
		},
	}
}

// setupTestServer runs the full HTTP stack against a PostgreSQL container
// and a fake completion endpoint.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	model := &fakeModel{cardsPerCall: 3}
	modelSrv := httptest.NewServer(model)
	t.Cleanup(modelSrv.Close)

	cfg := testConfig(modelSrv.URL)
	svc, err := app.NewServices(cfg, pool, logger)
	require.NoError(t, err)

	handler, stop := app.NewHandler(cfg, svc, pool, logger)
	t.Cleanup(stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{URL: srv.URL, Client: srv.Client(), Pool: pool, Model: model}
}

// tokenFor signs an access token the way the identity provider would.
func tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		Issuer:    testIssuer,
		Audience:  jwt.ClaimStrings{testAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return token
}

// call sends a JSON request and decodes a JSON response body into a map.
func (ts *testServer) call(t *testing.T, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) == 0 {
		return resp.StatusCode, nil
	}
	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

// createDocument stores a document without generating flashcards.
func (ts *testServer) createDocument(t *testing.T, token string) string {
	t.Helper()
	status, body := ts.call(t, http.MethodPost, "/api/documents", token, map[string]any{
		"name":            "Biology notes",
		"content":         sampleText,
		"skip_generation": true,
	})
	require.Equal(t, http.StatusCreated, status, body)
	return body["document"].(map[string]any)["id"].(string)
}

// listFlashcards returns the flashcards of a document, optionally filtered by query.
func (ts *testServer) listFlashcards(t *testing.T, token, docID, query string) []map[string]any {
	t.Helper()
	path := "/api/documents/" + docID + "/flashcards"
	if query != "" {
		path += "?" + query
	}
	status, body := ts.call(t, http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, status, body)

	items := body["flashcards"].([]any)
	out := make([]map[string]any, len(items))
	for i, item := range items {
		out[i] = item.(map[string]any)
	}
	return out
}
