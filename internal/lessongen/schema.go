package lessongen

import "github.com/ndthanh/studycoach/internal/llm"

// LessonSchema defines the JSON schema for micro-lesson generation.
var LessonSchema = &llm.Schema{
	Name:        "micro-lesson",
	Description: "A micro-lesson with explanation, worked example, and one exercise",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short title for the lesson (3-8 words)",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Clear explanation of the concept (4-6 sentences)",
			},
			"worked_example": map[string]any{
				"type":        "string",
				"description": "A complete worked example with numbered steps and code where appropriate",
			},
			"exercise": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{
						"type":        "string",
						"description": "A practice task slightly easier than typical problems for this skill",
					},
					"answer": map[string]any{
						"type":        "string",
						"description": "The expected solution or answer",
					},
					"explanation": map[string]any{
						"type":        "string",
						"description": "Brief explanation of the answer",
					},
				},
				"required":             []any{"prompt", "answer", "explanation"},
				"additionalProperties": false,
			},
		},
		"required":             []any{"title", "explanation", "worked_example", "exercise"},
		"additionalProperties": false,
	},
}

// ScaffoldSchema defines the JSON schema for scaffolded study plans.
var ScaffoldSchema = &llm.Schema{
	Name:        "scaffold-plan",
	Description: "A step-down study plan for a skill the learner is predicted to struggle with",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "2-3 sentence summary of the approach",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "3-6 concrete study steps, each building on the previous",
			},
		},
		"required":             []any{"summary", "steps"},
		"additionalProperties": false,
	},
}
