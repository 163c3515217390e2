// Package lessongen generates micro-lessons and scaffolded practice
// plans for skills the learner is struggling with, using an LLM provider.
package lessongen

import "github.com/ndthanh/studycoach/internal/skillgraph"

// Config tunes lesson generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1500,
		Temperature: 0.7,
	}
}

// LessonInput carries the learner context a lesson is built from.
type LessonInput struct {
	Skill skillgraph.Skill

	// Mastery is the learner's current estimate for the skill.
	Mastery float64

	// Accuracy is the observed fraction of correct attempts.
	Accuracy float64

	// Prerequisites names the skill's direct prerequisites, strongest
	// first, so the lesson can build on what the learner already has.
	Prerequisites []string

	// StruggleNoted is set when the struggle predictor recommended
	// scaffolding before this lesson was requested.
	StruggleNoted bool
}

// Lesson is a generated micro-lesson.
type Lesson struct {
	SkillID       string
	Title         string
	Explanation   string
	WorkedExample string
	Exercise      Exercise
}

// Exercise is a single practice task with a verifiable answer.
type Exercise struct {
	Prompt      string
	Answer      string
	Explanation string
}

// ScaffoldInput carries the context for a scaffolded study plan.
type ScaffoldInput struct {
	Skill         skillgraph.Skill
	Mastery       float64
	Prerequisites []string
}

// Scaffold is a generated step-down plan for a skill the learner is
// predicted to struggle with.
type Scaffold struct {
	SkillID string
	Summary string
	Steps   []string
}
