package lessongen

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndthanh/studycoach/internal/llm"
	"github.com/ndthanh/studycoach/internal/skillgraph"
)

var recursionSkill = skillgraph.Skill{
	ID: "recursion", Name: "Recursion", Category: "functions", Complexity: 6,
}

func TestGenerate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "Thinking Recursively",
			"explanation": "A recursive function calls itself on a smaller input.",
			"worked_example": "1. Define the base case...",
			"exercise": {
				"prompt": "Write a function that sums 1..n recursively.",
				"answer": "sum(n) = n == 0 ? 0 : n + sum(n-1)",
				"explanation": "Base case 0, each call peels off one term."
			}
		}`),
	})
	svc := NewService(mock, Config{})

	lesson, err := svc.Generate(context.Background(), LessonInput{
		Skill:         recursionSkill,
		Mastery:       0.35,
		Accuracy:      0.4,
		Prerequisites: []string{"Functions & Parameters"},
	})
	require.NoError(t, err)
	assert.Equal(t, "recursion", lesson.SkillID)
	assert.Equal(t, "Thinking Recursively", lesson.Title)
	assert.NotEmpty(t, lesson.Exercise.Prompt)
	assert.NotEmpty(t, lesson.Exercise.Answer)

	// The prompt should carry the learner context.
	require.Len(t, mock.Calls, 1)
	sent := mock.Calls[0]
	assert.Equal(t, LessonSchema, sent.Schema, "lesson schema not attached to request")
	userMsg := sent.Messages[0].Content
	for _, want := range []string{"Recursion", "35%", "Functions & Parameters"} {
		assert.Contains(t, userMsg, want)
	}
}

func TestGenerate_StruggleNoted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"title": "t", "explanation": "e", "worked_example": "w",
			"exercise": {"prompt": "p", "answer": "a", "explanation": "x"}
		}`),
	})
	svc := NewService(mock, Config{})

	_, err := svc.Generate(context.Background(), LessonInput{
		Skill:         recursionSkill,
		StruggleNoted: true,
	})
	require.NoError(t, err)
	assert.Contains(t, mock.Calls[0].Messages[0].Content, "predicted to struggle")
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue fails
	svc := NewService(mock, Config{})

	_, err := svc.Generate(context.Background(), LessonInput{Skill: recursionSkill})
	require.Error(t, err, "expected provider error to surface")
}

func TestGenerateScaffold(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{
			"summary": "Start from plain function calls and work up to self-reference.",
			"steps": ["Trace a nested function call", "Write a countdown loop as a function", "Convert the loop to a recursive call"]
		}`),
	})
	svc := NewService(mock, Config{})

	sc, err := svc.GenerateScaffold(context.Background(), ScaffoldInput{
		Skill:         recursionSkill,
		Mastery:       0.2,
		Prerequisites: []string{"Functions & Parameters"},
	})
	require.NoError(t, err)
	assert.Equal(t, "recursion", sc.SkillID)
	require.Len(t, sc.Steps, 3)
	assert.Equal(t, ScaffoldSchema, mock.Calls[0].Schema, "scaffold schema not attached to request")
}
