package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/braid-labs/braid/pkg/registry"
)

type staticTokens map[string]string

func (s staticTokens) AccessToken(_ context.Context, _, provider string) (string, error) {
	token, ok := s[provider]
	if !ok {
		return "", fmt.Errorf("no token for %s", provider)
	}
	return token, nil
}

func testRegistry(t *testing.T, baseURL string) *registry.Registry {
	t.Helper()
	dir := t.TempDir()

	spec := map[string]any{
		"service":  "notion",
		"version":  "1",
		"base_url": baseURL,
		"tools": []any{
			map[string]any{
				"tool_name":        "notion_create_page",
				"description":      "Create a page",
				"method":           "POST",
				"path":             "/v1/pages",
				"adapter_function": "create_page",
				"input_schema": map[string]any{
					"type":     "object",
					"required": []any{"title"},
					"properties": map[string]any{
						"title":     map[string]any{"type": "string"},
						"page_size": map[string]any{"type": "integer", "maximum": 50},
					},
				},
				"idempotency_key_policy": "hash",
				"error_map": map[string]any{
					"429": "TOOL_RATE_LIMITED",
					"404": "not_found",
				},
			},
			map[string]any{
				"tool_name":        "notion_get_page",
				"description":      "Get a page",
				"method":           "GET",
				"path":             "/v1/pages/{page_id}",
				"adapter_function": "get_page",
				"input_schema":     map[string]any{"type": "object"},
			},
		},
	}
	data, err := json.Marshal(spec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notion.json"), data, 0o644))
	return registry.NewRegistry(dir)
}

func TestInvokeSuccess(t *testing.T) {
	var gotAuth, gotIdem, gotPath string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotIdem = r.Header.Get("Idempotency-Key")
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]any{"id": "page-1"})
	}))
	defer server.Close()

	inv := NewHTTPInvoker(testRegistry(t, server.URL), staticTokens{"notion": "tok"}, time.Second)
	result := inv.Invoke(context.Background(), Call{
		UserID:   "u1",
		ToolName: "notion_create_page",
		Payload:  map[string]any{"title": "Weekly notes"},
	})

	require.True(t, result.OK, result.ErrorCode)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "/v1/pages", gotPath)
	assert.Equal(t, "Weekly notes", gotBody["title"])
	assert.Equal(t, PayloadHash(map[string]any{"title": "Weekly notes"}), gotIdem)
	data := result.Data.(map[string]any)
	assert.Equal(t, "page-1", data["id"])
}

func TestInvokePathParams(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("filter")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	inv := NewHTTPInvoker(testRegistry(t, server.URL), staticTokens{"notion": "tok"}, time.Second)

	t.Run("substituted into path, dropped from query", func(t *testing.T) {
		result := inv.Invoke(context.Background(), Call{
			UserID:   "u1",
			ToolName: "notion_get_page",
			Payload:  map[string]any{"page_id": "abc123", "filter": "all"},
		})
		require.True(t, result.OK)
		assert.Equal(t, "/v1/pages/abc123", gotPath)
		assert.Equal(t, "all", gotQuery)
	})

	t.Run("missing path param", func(t *testing.T) {
		result := inv.Invoke(context.Background(), Call{
			UserID:   "u1",
			ToolName: "notion_get_page",
			Payload:  map[string]any{},
		})
		require.False(t, result.OK)
		assert.Equal(t, "missing_path_param:page_id", result.ErrorCode)
	})
}

func TestInvokeValidation(t *testing.T) {
	inv := NewHTTPInvoker(testRegistry(t, "http://unused.invalid"), staticTokens{"notion": "tok"}, time.Second)

	t.Run("missing required field", func(t *testing.T) {
		result := inv.Invoke(context.Background(), Call{
			UserID:   "u1",
			ToolName: "notion_create_page",
			Payload:  map[string]any{},
		})
		require.False(t, result.OK)
		assert.Equal(t, "notion_create_page:VALIDATION_REQUIRED:title", result.ErrorCode)
	})

	t.Run("wrong type", func(t *testing.T) {
		result := inv.Invoke(context.Background(), Call{
			UserID:   "u1",
			ToolName: "notion_create_page",
			Payload:  map[string]any{"title": 42},
		})
		require.False(t, result.OK)
		assert.Equal(t, "notion_create_page:VALIDATION_TYPE:title", result.ErrorCode)
	})

	t.Run("max violation", func(t *testing.T) {
		result := inv.Invoke(context.Background(), Call{
			UserID:   "u1",
			ToolName: "notion_create_page",
			Payload:  map[string]any{"title": "x", "page_size": 99},
		})
		require.False(t, result.OK)
		assert.Equal(t, "notion_create_page:VALIDATION_MAX:page_size", result.ErrorCode)
	})
}

func TestInvokeUpstreamErrors(t *testing.T) {
	var status int
	var body string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "req-9")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	defer server.Close()

	inv := NewHTTPInvoker(testRegistry(t, server.URL), staticTokens{"notion": "tok"}, time.Second)
	call := Call{UserID: "u1", ToolName: "notion_create_page", Payload: map[string]any{"title": "x"}}

	t.Run("mapped status", func(t *testing.T) {
		status, body = 429, `{"code": "rate_limited", "message": "slow down"}`
		result := inv.Invoke(context.Background(), call)
		require.False(t, result.OK)
		assert.Equal(t,
			"notion_create_page:TOOL_RATE_LIMITED|status=429|code=rate_limited|message=slow down|request_id=req-9",
			result.ErrorCode)
		assert.Equal(t, "TOOL_RATE_LIMITED", CanonicalCode(result.ErrorCode))
	})

	t.Run("unmapped status defaults to TOOL_FAILED", func(t *testing.T) {
		status, body = 500, `{"error": {"code": "internal", "message": "boom"}}`
		result := inv.Invoke(context.Background(), call)
		require.False(t, result.OK)
		assert.Contains(t, result.ErrorCode, "notion_create_page:TOOL_FAILED|status=500")
		assert.Contains(t, result.ErrorCode, "code=internal")
	})

	t.Run("business mapping passes through", func(t *testing.T) {
		status, body = 404, `{}`
		result := inv.Invoke(context.Background(), call)
		assert.Equal(t, "not_found", CanonicalCode(result.ErrorCode))
	})
}

func TestInvokeTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	inv := NewHTTPInvoker(testRegistry(t, server.URL), staticTokens{"notion": "tok"}, 20*time.Millisecond)
	result := inv.Invoke(context.Background(), Call{
		UserID:   "u1",
		ToolName: "notion_create_page",
		Payload:  map[string]any{"title": "x"},
	})
	require.False(t, result.OK)
	assert.Equal(t, "TOOL_TIMEOUT", CanonicalCode(result.ErrorCode))
}

func TestInvokeTokenMissing(t *testing.T) {
	inv := NewHTTPInvoker(testRegistry(t, "http://unused.invalid"), staticTokens{}, time.Second)
	result := inv.Invoke(context.Background(), Call{
		UserID:   "u1",
		ToolName: "notion_create_page",
		Payload:  map[string]any{"title": "x"},
	})
	require.False(t, result.OK)
	assert.Equal(t, "token_missing:notion", result.ErrorCode)
}

func TestInvokeNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("plain text"))
	}))
	defer server.Close()

	inv := NewHTTPInvoker(testRegistry(t, server.URL), staticTokens{"notion": "tok"}, time.Second)
	result := inv.Invoke(context.Background(), Call{
		UserID:   "u1",
		ToolName: "notion_create_page",
		Payload:  map[string]any{"title": "x"},
	})
	require.True(t, result.OK)
	data := result.Data.(map[string]any)
	assert.Equal(t, "plain text", data["raw_text"])
}

func TestPayloadHashStableUnderKeyOrder(t *testing.T) {
	a := PayloadHash(map[string]any{"a": 1, "b": "x"})
	b := PayloadHash(map[string]any{"b": "x", "a": 1})
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestCanonicalCode(t *testing.T) {
	assert.Equal(t, "TOOL_TIMEOUT", CanonicalCode("notion_create_page:TOOL_TIMEOUT|status=0|code=timeout|message=|request_id="))
	assert.Equal(t, "notion_create_page:VALIDATION_REQUIRED:title", CanonicalCode("notion_create_page:VALIDATION_REQUIRED:title"))
	assert.Equal(t, "token_missing:notion", CanonicalCode("token_missing:notion"))
	assert.Equal(t, "TOOL_FAILED", CanonicalCode("TOOL_FAILED"))
}
