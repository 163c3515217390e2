package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicStub serves a canned Messages API response and hands back a
// provider pointed at it.
func anthropicStub(t *testing.T, status int, body map[string]any) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
		}
		json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{client: &client, model: "claude-haiku-4-5-20251001"}
}

func anthropicMessage(text, stopReason string) map[string]any {
	return map[string]any{
		"id":          "msg_01",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stopReason,
		"usage":       map[string]any{"input_tokens": 74, "output_tokens": 212},
	}
}

func TestAnthropicGenerate_Lesson(t *testing.T) {
	lesson := `{"title":"Closures capture variables","explanation":"An inner function keeps the variables of its enclosing scope alive.","exercise":"Write a counter factory."}`
	p := anthropicStub(t, http.StatusOK, anthropicMessage(lesson, "end_turn"))

	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a programming mentor writing micro-lessons.",
		Messages:  []Message{{Role: RoleUser, Content: "Teach closures to a struggling learner."}},
		MaxTokens: 512,
	})
	if err != nil {
		t.Fatal(err)
	}
	if string(resp.Content) != lesson {
		t.Errorf("content = %s", resp.Content)
	}
	if resp.Usage.InputTokens != 74 || resp.Usage.OutputTokens != 212 {
		t.Errorf("usage = %+v, want 74 in / 212 out", resp.Usage)
	}
	if resp.Usage.TotalTokens != 286 {
		t.Errorf("total tokens = %d, want 286", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Errorf("stop reason = %q, want end", resp.StopReason)
	}
	if resp.Model != "claude-haiku-4-5-20251001" {
		t.Errorf("model = %q, want the ID the backend reported", resp.Model)
	}
}

func TestAnthropicGenerate_MaxTokensStop(t *testing.T) {
	p := anthropicStub(t, http.StatusOK, anthropicMessage(`{"title":"Truncat`, "max_tokens"))

	resp, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "Teach recursion."}},
		MaxTokens: 16,
	})
	if err != nil {
		t.Fatal(err)
	}
	if resp.StopReason != "max_tokens" {
		t.Errorf("stop reason = %q, want max_tokens", resp.StopReason)
	}
}

func TestAnthropicGenerate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		check  func(error) bool
	}{
		{"rate limit", http.StatusTooManyRequests, func(err error) bool {
			var rl *ErrRateLimit
			return errors.As(err, &rl)
		}},
		{"server error", http.StatusInternalServerError, func(err error) bool {
			var unavail *ErrProviderUnavailable
			return errors.As(err, &unavail)
		}},
		{"overloaded", http.StatusServiceUnavailable, func(err error) bool {
			var unavail *ErrProviderUnavailable
			return errors.As(err, &unavail)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := anthropicStub(t, tt.status, map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "nope"},
			})
			_, err := p.Generate(context.Background(), Request{
				Messages:  []Message{{Role: RoleUser, Content: "hi"}},
				MaxTokens: 32,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !tt.check(err) {
				t.Errorf("wrong error type: %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicGenerate_NoTextContent(t *testing.T) {
	body := anthropicMessage("", "end_turn")
	body["content"] = []map[string]any{}
	p := anthropicStub(t, http.StatusOK, body)

	_, err := p.Generate(context.Background(), Request{
		Messages:  []Message{{Role: RoleUser, Content: "hi"}},
		MaxTokens: 32,
	})
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Errorf("got %v, want ErrInvalidResponse", err)
	}
}

func TestAnthropicMessages_Roles(t *testing.T) {
	msgs := anthropicMessages([]Message{
		{Role: RoleUser, Content: "Teach loops."},
		{Role: RoleAssistant, Content: `{"title":"For loops"}`},
		{Role: RoleUser, Content: "Simpler, please."},
	})
	if len(msgs) != 3 {
		t.Fatalf("got %d messages, want 3", len(msgs))
	}
	if msgs[0].Role != anthropic.MessageParamRoleUser ||
		msgs[1].Role != anthropic.MessageParamRoleAssistant ||
		msgs[2].Role != anthropic.MessageParamRoleUser {
		t.Errorf("roles = %v/%v/%v", msgs[0].Role, msgs[1].Role, msgs[2].Role)
	}
}

func TestAnthropicModelAliases(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"claude-opus", "claude-opus-4-1-20250805"},
		{"claude-sonnet", "claude-sonnet-4-5-20250929"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-haiku-4-5-20251001", "claude-haiku-4-5-20251001"}, // Pass-through
	}
	for _, tt := range tests {
		if got := resolveModel(tt.in, anthropicModels); got != tt.want {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
