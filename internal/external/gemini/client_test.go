package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarinaMa20040822/starwish/backend/pkg/config"
	"github.com/KarinaMa20040822/starwish/backend/pkg/httputil"
	"github.com/KarinaMa20040822/starwish/backend/pkg/logger"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Env: "test", LogLevel: "error"}
	log := logger.New(cfg)
	httpClient := httputil.New(cfg, log).DisableRetry()

	return NewClient(config.GeminiConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gemini-2.5-flash",
	}, httpClient, log)
}

func TestGenerateText(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1beta/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "今日運勢如何", req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "  吉星高照。  "}},
				}},
			},
		})
	})

	text, err := c.GenerateText(context.Background(), "今日運勢如何")
	require.NoError(t, err)
	assert.Equal(t, "吉星高照。", text)
}

func TestGenerateChatRoles(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 3)
		assert.Equal(t, "user", req.Contents[0].Role)
		assert.Equal(t, "model", req.Contents[1].Role)
		assert.Equal(t, "user", req.Contents[2].Role)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "回覆"}},
				}},
			},
		})
	})

	text, err := c.GenerateChat(context.Background(), []Turn{
		{Text: "第一問"},
		{FromModel: true, Text: "第一答"},
		{Text: "第二問"},
	})
	require.NoError(t, err)
	assert.Equal(t, "回覆", text)
}

func TestGenerateTextAPIError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": 400, "message": "invalid key"},
		})
	})

	_, err := c.GenerateText(context.Background(), "hi")
	assert.Error(t, err)
}

func TestGenerateTextNoCandidates(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"candidates": []interface{}{}})
	})

	_, err := c.GenerateText(context.Background(), "hi")
	assert.Error(t, err)
}

func TestGenerateTextDisabled(t *testing.T) {
	cfg := &config.Config{Env: "test", LogLevel: "error"}
	log := logger.New(cfg)
	c := NewClient(config.GeminiConfig{}, httputil.New(cfg, log), log)

	assert.False(t, c.Enabled())
	_, err := c.GenerateText(context.Background(), "hi")
	assert.Error(t, err)
}
