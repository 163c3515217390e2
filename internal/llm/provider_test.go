package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/ndthanh/studycoach/internal/store"
)

func TestMockProvider_FIFO(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`"first"`)},
		MockResponse{Content: json.RawMessage(`"second"`)},
	)

	ctx := context.Background()
	r1, err := mock.Generate(ctx, Request{})
	if err != nil {
		t.Fatal(err)
	}
	r2, err := mock.Generate(ctx, Request{})
	if err != nil {
		t.Fatal(err)
	}
	if string(r1.Content) != `"first"` || string(r2.Content) != `"second"` {
		t.Errorf("got %s then %s", r1.Content, r2.Content)
	}

	_, err = mock.Generate(ctx, Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("empty queue: got %v, want ErrProviderUnavailable", err)
	}
}

type recordingSink struct {
	events []store.LLMRequestEventData
}

func (r *recordingSink) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestLogging_RecordsSuccessAndFailure(t *testing.T) {
	sink := &recordingSink{}
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
		},
	)
	p := WithLogging(mock, "anthropic", sink)

	ctx := WithPurpose(context.Background(), "lesson")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatal(err)
	}
	// Queue empty: this one fails.
	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected failure on empty queue")
	}

	if len(sink.events) != 2 {
		t.Fatalf("got %d events, want 2", len(sink.events))
	}
	ok, bad := sink.events[0], sink.events[1]
	if !ok.Success || ok.InputTokens != 10 || ok.Purpose != "lesson" {
		t.Errorf("success event = %+v", ok)
	}
	if bad.Success || bad.ErrorMessage == "" {
		t.Errorf("failure event = %+v", bad)
	}
}

func TestLogging_ProviderColumnIsBackendNotModel(t *testing.T) {
	sink := &recordingSink{}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "openrouter", sink)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatal(err)
	}
	if len(sink.events) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Provider != "openrouter" {
		t.Errorf("provider = %q, want openrouter", ev.Provider)
	}
	if ev.Model == ev.Provider {
		t.Errorf("model %q should not collapse into the provider name", ev.Model)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("anthropic without API key should fail validation")
	}

	cfg.Anthropic.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("keyed config should validate: %v", err)
	}

	cfg.Provider = "mock"
	if err := cfg.Validate(); err != nil {
		t.Errorf("mock provider needs no key: %v", err)
	}

	cfg.Provider = "carrier-pigeon"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown provider should fail validation")
	}
}

func TestNewProvider_Mock(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "mock"}, &recordingSink{})
	if err != nil {
		t.Fatal(err)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model = %q, want mock", p.ModelID())
	}
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "abacus"}, &recordingSink{})
	if err == nil {
		t.Error("expected error for unknown provider")
	}
}
