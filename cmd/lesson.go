package cmd

import (
	"fmt"
	"strings"

	"github.com/ndthanh/studycoach/internal/lessongen"
	"github.com/ndthanh/studycoach/internal/llm"
	"github.com/spf13/cobra"
)

var lessonCmd = &cobra.Command{
	Use:   "lesson <skill-id>",
	Short: "Generate a micro-lesson for a skill",
	Long: "Lesson asks the configured LLM provider for a short lesson tailored to your\n" +
		"mastery of the skill. Requires an API key (STUDYCOACH_LLM_PROVIDER and the\n" +
		"matching STUDYCOACH_*_API_KEY, or a standard *_API_KEY env var).",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, st, err := openService(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		ctx := cmd.Context()

		skill, err := svc.Graph().Get(args[0])
		if err != nil {
			return err
		}

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: %w", err)
			}
			cfg = discovered
		}

		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return err
		}
		gen := lessongen.NewService(provider, lessongen.Config{})

		rec, err := svc.GetMastery(ctx, userID(cmd), skill.ID)
		if err != nil {
			return err
		}
		var prereqs []string
		for _, p := range svc.Graph().PrerequisitesOf(skill.ID) {
			prereqs = append(prereqs, p.Skill.Name)
		}

		if scaffold, _ := cmd.Flags().GetBool("scaffold"); scaffold {
			plan, err := gen.GenerateScaffold(ctx, lessongen.ScaffoldInput{
				Skill:         skill,
				Mastery:       rec.Mastery,
				Prerequisites: prereqs,
			})
			if err != nil {
				return err
			}
			fmt.Printf("%s — study plan\n\n%s\n\n", skill.Name, plan.Summary)
			for i, step := range plan.Steps {
				fmt.Printf("%d. %s\n", i+1, step)
			}
			return nil
		}

		pred, err := svc.PredictStruggle(ctx, userID(cmd), skill.ID)
		if err != nil {
			return err
		}

		lesson, err := gen.Generate(ctx, lessongen.LessonInput{
			Skill:         skill,
			Mastery:       rec.Mastery,
			Accuracy:      rec.Accuracy(),
			Prerequisites: prereqs,
			StruggleNoted: pred.Action == "scaffold",
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s\n%s\n\n", lesson.Title, strings.Repeat("─", len(lesson.Title)))
		fmt.Println(lesson.Explanation)
		fmt.Printf("\nWorked example:\n%s\n", lesson.WorkedExample)
		fmt.Printf("\nTry it:\n%s\n", lesson.Exercise.Prompt)
		fmt.Printf("\nAnswer: %s\n%s\n", lesson.Exercise.Answer, lesson.Exercise.Explanation)
		return nil
	},
}

func init() {
	lessonCmd.Flags().Bool("scaffold", false, "Generate a step-down study plan instead of a lesson")
}
