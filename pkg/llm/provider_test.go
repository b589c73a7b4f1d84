package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	name   string
	answer string
	err    error
	calls  int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) Complete(_ context.Context, _ CompletionRequest) (string, error) {
	s.calls++
	return s.answer, s.err
}

func TestParseFirstJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		want    map[string]any
		wantErr bool
	}{
		{
			name:   "whole body",
			answer: `{"a": 1}`,
			want:   map[string]any{"a": float64(1)},
		},
		{
			name:   "fenced in prose",
			answer: "Here is the plan:\n```json\n{\"a\": {\"b\": 2}}\n```\nDone.",
			want:   map[string]any{"a": map[string]any{"b": float64(2)}},
		},
		{
			name:   "greedy span keeps nested braces",
			answer: `prefix {"tasks": [{"task_id": "t1"}]} suffix`,
			want:   map[string]any{"tasks": []any{map[string]any{"task_id": "t1"}}},
		},
		{
			name:    "no object",
			answer:  "sorry, I cannot help",
			wantErr: true,
		},
		{
			name:    "malformed",
			answer:  `{"a": `,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFirstJSONObject(tt.answer)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoJSONObject)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClientComplete(t *testing.T) {
	t.Run("primary answer wins", func(t *testing.T) {
		primary := &stubProvider{name: "p", answer: "ok"}
		fallback := &stubProvider{name: "f", answer: "never"}
		answer, provider, err := NewClient(primary, fallback).Complete(context.Background(), CompletionRequest{})
		require.NoError(t, err)
		assert.Equal(t, "ok", answer)
		assert.Equal(t, "p", provider)
		assert.Zero(t, fallback.calls)
	})

	t.Run("error falls back", func(t *testing.T) {
		primary := &stubProvider{name: "p", err: errors.New("boom")}
		fallback := &stubProvider{name: "f", answer: "rescued"}
		answer, provider, err := NewClient(primary, fallback).Complete(context.Background(), CompletionRequest{})
		require.NoError(t, err)
		assert.Equal(t, "rescued", answer)
		assert.Equal(t, "f", provider)
	})

	t.Run("empty answer falls back", func(t *testing.T) {
		primary := &stubProvider{name: "p", answer: "  "}
		fallback := &stubProvider{name: "f", answer: "rescued"}
		answer, _, err := NewClient(primary, fallback).Complete(context.Background(), CompletionRequest{})
		require.NoError(t, err)
		assert.Equal(t, "rescued", answer)
	})

	t.Run("both fail reports both", func(t *testing.T) {
		primary := &stubProvider{name: "p", err: errors.New("down")}
		fallback := &stubProvider{name: "f", err: errors.New("also down")}
		_, _, err := NewClient(primary, fallback).Complete(context.Background(), CompletionRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "p")
		assert.Contains(t, err.Error(), "also down")
	})

	t.Run("no fallback surfaces primary error", func(t *testing.T) {
		primary := &stubProvider{name: "p", err: errors.New("down")}
		_, provider, err := NewClient(primary, nil).Complete(context.Background(), CompletionRequest{})
		require.Error(t, err)
		assert.Equal(t, "p", provider)
	})
}

func TestClientCompleteJSON(t *testing.T) {
	t.Run("non-JSON primary answer triggers fallback", func(t *testing.T) {
		primary := &stubProvider{name: "p", answer: "no json here"}
		fallback := &stubProvider{name: "f", answer: `{"ok": true}`}
		obj, provider, err := NewClient(primary, fallback).CompleteJSON(context.Background(), CompletionRequest{})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"ok": true}, obj)
		assert.Equal(t, "f", provider)
	})

	t.Run("primary JSON short-circuits", func(t *testing.T) {
		primary := &stubProvider{name: "p", answer: `{"plan": "x"}`}
		fallback := &stubProvider{name: "f"}
		obj, provider, err := NewClient(primary, fallback).CompleteJSON(context.Background(), CompletionRequest{})
		require.NoError(t, err)
		assert.Equal(t, "x", obj["plan"])
		assert.Equal(t, "p", provider)
		assert.Zero(t, fallback.calls)
	})
}
