package lessongen

import (
	"fmt"
	"strings"
)

const lessonSystemPrompt = `You are a pragmatic programming mentor for adult self-learners. The learner is working through a skill tree and needs a short, focused lesson on one concept.`

func buildLessonUserMessage(input LessonInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Skill: %s\n", input.Skill.Name))
	b.WriteString(fmt.Sprintf("Category: %s\n", input.Skill.Category))
	b.WriteString(fmt.Sprintf("Difficulty (1-10): %d\n", input.Skill.Complexity))
	b.WriteString(fmt.Sprintf("Learner mastery estimate: %.0f%%\n", input.Mastery*100))
	b.WriteString(fmt.Sprintf("Learner accuracy so far: %.0f%%\n", input.Accuracy*100))

	if len(input.Prerequisites) > 0 {
		b.WriteString(fmt.Sprintf("Prerequisites the learner already studied: %s\n",
			strings.Join(input.Prerequisites, ", ")))
	}
	if input.StruggleNoted {
		b.WriteString("The learner is predicted to struggle with this skill; keep the lesson gentler than usual.\n")
	}

	b.WriteString(`
Instructions:
Create a micro-lesson that:
1. Explains the concept in 4-6 sentences. Assume an adult who knows the listed prerequisites but nothing about this skill. No filler.
2. Shows one complete worked example with numbered steps. Use short code snippets where they clarify.
3. Poses one exercise that is slightly easier than a typical problem for this skill, solvable using only the explanation and worked example.
4. The exercise must have a single verifiable answer, with a brief explanation.
5. Use plain ASCII text. Keep code language-neutral pseudocode unless the skill is language-specific.`)

	return b.String()
}

const scaffoldSystemPrompt = `You are a pragmatic programming mentor. A learner is about to attempt a skill they are predicted to struggle with. Break the skill down into a short, ordered study plan.`

func buildScaffoldUserMessage(input ScaffoldInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Skill: %s\n", input.Skill.Name))
	b.WriteString(fmt.Sprintf("Category: %s\n", input.Skill.Category))
	b.WriteString(fmt.Sprintf("Difficulty (1-10): %d\n", input.Skill.Complexity))
	b.WriteString(fmt.Sprintf("Learner mastery estimate: %.0f%%\n", input.Mastery*100))
	if len(input.Prerequisites) > 0 {
		b.WriteString(fmt.Sprintf("Prerequisites: %s\n", strings.Join(input.Prerequisites, ", ")))
	}

	b.WriteString(`
Instructions:
Produce a step-down plan:
1. Summarize the approach in 2-3 sentences.
2. List 3-6 concrete study steps, each a single sentence, ordered from easiest to hardest. The first step should feel almost trivial given the prerequisites; the last step should be the skill itself.
3. No motivational filler.`)

	return b.String()
}
