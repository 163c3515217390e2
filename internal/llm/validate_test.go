package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var lessonSchema = &Schema{
	Name:        "test-lesson",
	Description: "A generated micro-lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string"},
			"steps": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []any{"title", "steps"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"title": "Recursion basics", "steps": ["base case", "recursive case"]}`)
	if err := validateResponse(lessonSchema, raw); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"title": "No steps"}`)
	err := validateResponse(lessonSchema, raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"title": 42, "steps": []}`)
	err := validateResponse(lessonSchema, raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	raw := json.RawMessage(`here is your lesson!`)
	err := validateResponse(lessonSchema, raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("got %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`anything goes`)); err != nil {
		t.Errorf("nil schema should pass everything: %v", err)
	}
}
