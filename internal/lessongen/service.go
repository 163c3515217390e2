package lessongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ndthanh/studycoach/internal/llm"
)

// Service generates lessons and scaffolds through an LLM provider.
// Generation is synchronous; callers own any concurrency.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a lesson generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultConfig().MaxTokens
	}
	if cfg.Temperature <= 0 {
		cfg.Temperature = DefaultConfig().Temperature
	}
	return &Service{provider: provider, cfg: cfg}
}

type lessonOutput struct {
	Title         string `json:"title"`
	Explanation   string `json:"explanation"`
	WorkedExample string `json:"worked_example"`
	Exercise      struct {
		Prompt      string `json:"prompt"`
		Answer      string `json:"answer"`
		Explanation string `json:"explanation"`
	} `json:"exercise"`
}

// Generate builds a micro-lesson for the given skill.
func (s *Service) Generate(ctx context.Context, input LessonInput) (*Lesson, error) {
	ctx = llm.WithPurpose(ctx, "lesson")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(input)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out lessonOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}

	return &Lesson{
		SkillID:       input.Skill.ID,
		Title:         out.Title,
		Explanation:   out.Explanation,
		WorkedExample: out.WorkedExample,
		Exercise: Exercise{
			Prompt:      out.Exercise.Prompt,
			Answer:      out.Exercise.Answer,
			Explanation: out.Exercise.Explanation,
		},
	}, nil
}

type scaffoldOutput struct {
	Summary string   `json:"summary"`
	Steps   []string `json:"steps"`
}

// GenerateScaffold builds a step-down study plan for a skill the
// learner is predicted to struggle with.
func (s *Service) GenerateScaffold(ctx context.Context, input ScaffoldInput) (*Scaffold, error) {
	ctx = llm.WithPurpose(ctx, "scaffold")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: scaffoldSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildScaffoldUserMessage(input)},
		},
		Schema:      ScaffoldSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("scaffold generation: %w", err)
	}

	var out scaffoldOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse scaffold response: %w", err)
	}

	return &Scaffold{
		SkillID: input.Skill.ID,
		Summary: out.Summary,
		Steps:   out.Steps,
	}, nil
}
