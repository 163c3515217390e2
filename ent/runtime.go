// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ndthanh/studycoach/ent/llmrequestevent"
	"github.com/ndthanh/studycoach/ent/masteryrecord"
	"github.com/ndthanh/studycoach/ent/predictionrecord"
	"github.com/ndthanh/studycoach/ent/reviewcard"
	"github.com/ndthanh/studycoach/ent/reviewlog"
	"github.com/ndthanh/studycoach/ent/schema"
	"github.com/ndthanh/studycoach/ent/skill"
	"github.com/ndthanh/studycoach/ent/skilldependency"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequestevent.InputTokensValidator is a validator for the "input_tokens" field. It is called by the builders before save.
	llmrequestevent.InputTokensValidator = llmrequesteventDescInputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequestevent.OutputTokensValidator is a validator for the "output_tokens" field. It is called by the builders before save.
	llmrequestevent.OutputTokensValidator = llmrequesteventDescOutputTokens.Validators[0].(func(int) error)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequestevent.LatencyMsValidator is a validator for the "latency_ms" field. It is called by the builders before save.
	llmrequestevent.LatencyMsValidator = llmrequesteventDescLatencyMs.Validators[0].(func(int64) error)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	masteryrecordFields := schema.MasteryRecord{}.Fields()
	_ = masteryrecordFields
	// masteryrecordDescUserID is the schema descriptor for user_id field.
	masteryrecordDescUserID := masteryrecordFields[0].Descriptor()
	// masteryrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	masteryrecord.UserIDValidator = masteryrecordDescUserID.Validators[0].(func(string) error)
	// masteryrecordDescSkillID is the schema descriptor for skill_id field.
	masteryrecordDescSkillID := masteryrecordFields[1].Descriptor()
	// masteryrecord.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryrecord.SkillIDValidator = masteryrecordDescSkillID.Validators[0].(func(string) error)
	// masteryrecordDescMastery is the schema descriptor for mastery field.
	masteryrecordDescMastery := masteryrecordFields[2].Descriptor()
	// masteryrecord.MasteryValidator is a validator for the "mastery" field. It is called by the builders before save.
	masteryrecord.MasteryValidator = masteryrecordDescMastery.Validators[0].(func(float64) error)
	// masteryrecordDescAttempts is the schema descriptor for attempts field.
	masteryrecordDescAttempts := masteryrecordFields[3].Descriptor()
	// masteryrecord.DefaultAttempts holds the default value on creation for the attempts field.
	masteryrecord.DefaultAttempts = masteryrecordDescAttempts.Default.(int)
	// masteryrecord.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	masteryrecord.AttemptsValidator = masteryrecordDescAttempts.Validators[0].(func(int) error)
	// masteryrecordDescCorrect is the schema descriptor for correct field.
	masteryrecordDescCorrect := masteryrecordFields[4].Descriptor()
	// masteryrecord.DefaultCorrect holds the default value on creation for the correct field.
	masteryrecord.DefaultCorrect = masteryrecordDescCorrect.Default.(int)
	// masteryrecord.CorrectValidator is a validator for the "correct" field. It is called by the builders before save.
	masteryrecord.CorrectValidator = masteryrecordDescCorrect.Validators[0].(func(int) error)
	predictionrecordMixin := schema.PredictionRecord{}.Mixin()
	predictionrecordMixinFields0 := predictionrecordMixin[0].Fields()
	_ = predictionrecordMixinFields0
	predictionrecordFields := schema.PredictionRecord{}.Fields()
	_ = predictionrecordFields
	// predictionrecordDescTimestamp is the schema descriptor for timestamp field.
	predictionrecordDescTimestamp := predictionrecordMixinFields0[1].Descriptor()
	// predictionrecord.DefaultTimestamp holds the default value on creation for the timestamp field.
	predictionrecord.DefaultTimestamp = predictionrecordDescTimestamp.Default.(func() time.Time)
	// predictionrecordDescPredictionID is the schema descriptor for prediction_id field.
	predictionrecordDescPredictionID := predictionrecordFields[0].Descriptor()
	// predictionrecord.PredictionIDValidator is a validator for the "prediction_id" field. It is called by the builders before save.
	predictionrecord.PredictionIDValidator = predictionrecordDescPredictionID.Validators[0].(func(string) error)
	// predictionrecordDescUserID is the schema descriptor for user_id field.
	predictionrecordDescUserID := predictionrecordFields[1].Descriptor()
	// predictionrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	predictionrecord.UserIDValidator = predictionrecordDescUserID.Validators[0].(func(string) error)
	// predictionrecordDescSkillID is the schema descriptor for skill_id field.
	predictionrecordDescSkillID := predictionrecordFields[2].Descriptor()
	// predictionrecord.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	predictionrecord.SkillIDValidator = predictionrecordDescSkillID.Validators[0].(func(string) error)
	// predictionrecordDescSampleSize is the schema descriptor for sample_size field.
	predictionrecordDescSampleSize := predictionrecordFields[7].Descriptor()
	// predictionrecord.DefaultSampleSize holds the default value on creation for the sample_size field.
	predictionrecord.DefaultSampleSize = predictionrecordDescSampleSize.Default.(int)
	// predictionrecord.SampleSizeValidator is a validator for the "sample_size" field. It is called by the builders before save.
	predictionrecord.SampleSizeValidator = predictionrecordDescSampleSize.Validators[0].(func(int) error)
	// predictionrecordDescProbability is the schema descriptor for probability field.
	predictionrecordDescProbability := predictionrecordFields[8].Descriptor()
	// predictionrecord.ProbabilityValidator is a validator for the "probability" field. It is called by the builders before save.
	predictionrecord.ProbabilityValidator = predictionrecordDescProbability.Validators[0].(func(float64) error)
	// predictionrecordDescConfidence is the schema descriptor for confidence field.
	predictionrecordDescConfidence := predictionrecordFields[9].Descriptor()
	// predictionrecord.ConfidenceValidator is a validator for the "confidence" field. It is called by the builders before save.
	predictionrecord.ConfidenceValidator = predictionrecordDescConfidence.Validators[0].(func(float64) error)
	reviewcardFields := schema.ReviewCard{}.Fields()
	_ = reviewcardFields
	// reviewcardDescUserID is the schema descriptor for user_id field.
	reviewcardDescUserID := reviewcardFields[0].Descriptor()
	// reviewcard.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewcard.UserIDValidator = reviewcardDescUserID.Validators[0].(func(string) error)
	// reviewcardDescSkillID is the schema descriptor for skill_id field.
	reviewcardDescSkillID := reviewcardFields[1].Descriptor()
	// reviewcard.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	reviewcard.SkillIDValidator = reviewcardDescSkillID.Validators[0].(func(string) error)
	// reviewcardDescStability is the schema descriptor for stability field.
	reviewcardDescStability := reviewcardFields[2].Descriptor()
	// reviewcard.StabilityValidator is a validator for the "stability" field. It is called by the builders before save.
	reviewcard.StabilityValidator = reviewcardDescStability.Validators[0].(func(float64) error)
	// reviewcardDescElapsedDays is the schema descriptor for elapsed_days field.
	reviewcardDescElapsedDays := reviewcardFields[4].Descriptor()
	// reviewcard.DefaultElapsedDays holds the default value on creation for the elapsed_days field.
	reviewcard.DefaultElapsedDays = reviewcardDescElapsedDays.Default.(float64)
	// reviewcard.ElapsedDaysValidator is a validator for the "elapsed_days" field. It is called by the builders before save.
	reviewcard.ElapsedDaysValidator = reviewcardDescElapsedDays.Validators[0].(func(float64) error)
	// reviewcardDescScheduledDays is the schema descriptor for scheduled_days field.
	reviewcardDescScheduledDays := reviewcardFields[5].Descriptor()
	// reviewcard.DefaultScheduledDays holds the default value on creation for the scheduled_days field.
	reviewcard.DefaultScheduledDays = reviewcardDescScheduledDays.Default.(float64)
	// reviewcard.ScheduledDaysValidator is a validator for the "scheduled_days" field. It is called by the builders before save.
	reviewcard.ScheduledDaysValidator = reviewcardDescScheduledDays.Validators[0].(func(float64) error)
	// reviewcardDescReps is the schema descriptor for reps field.
	reviewcardDescReps := reviewcardFields[6].Descriptor()
	// reviewcard.DefaultReps holds the default value on creation for the reps field.
	reviewcard.DefaultReps = reviewcardDescReps.Default.(int)
	// reviewcard.RepsValidator is a validator for the "reps" field. It is called by the builders before save.
	reviewcard.RepsValidator = reviewcardDescReps.Validators[0].(func(int) error)
	// reviewcardDescLapses is the schema descriptor for lapses field.
	reviewcardDescLapses := reviewcardFields[7].Descriptor()
	// reviewcard.DefaultLapses holds the default value on creation for the lapses field.
	reviewcard.DefaultLapses = reviewcardDescLapses.Default.(int)
	// reviewcard.LapsesValidator is a validator for the "lapses" field. It is called by the builders before save.
	reviewcard.LapsesValidator = reviewcardDescLapses.Validators[0].(func(int) error)
	// reviewcardDescState is the schema descriptor for state field.
	reviewcardDescState := reviewcardFields[8].Descriptor()
	// reviewcard.DefaultState holds the default value on creation for the state field.
	reviewcard.DefaultState = reviewcardDescState.Default.(string)
	reviewlogMixin := schema.ReviewLog{}.Mixin()
	reviewlogMixinFields0 := reviewlogMixin[0].Fields()
	_ = reviewlogMixinFields0
	reviewlogFields := schema.ReviewLog{}.Fields()
	_ = reviewlogFields
	// reviewlogDescTimestamp is the schema descriptor for timestamp field.
	reviewlogDescTimestamp := reviewlogMixinFields0[1].Descriptor()
	// reviewlog.DefaultTimestamp holds the default value on creation for the timestamp field.
	reviewlog.DefaultTimestamp = reviewlogDescTimestamp.Default.(func() time.Time)
	// reviewlogDescUserID is the schema descriptor for user_id field.
	reviewlogDescUserID := reviewlogFields[0].Descriptor()
	// reviewlog.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewlog.UserIDValidator = reviewlogDescUserID.Validators[0].(func(string) error)
	// reviewlogDescSkillID is the schema descriptor for skill_id field.
	reviewlogDescSkillID := reviewlogFields[1].Descriptor()
	// reviewlog.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	reviewlog.SkillIDValidator = reviewlogDescSkillID.Validators[0].(func(string) error)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescSkillID is the schema descriptor for skill_id field.
	skillDescSkillID := skillFields[0].Descriptor()
	// skill.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	skill.SkillIDValidator = skillDescSkillID.Validators[0].(func(string) error)
	// skillDescName is the schema descriptor for name field.
	skillDescName := skillFields[1].Descriptor()
	// skill.NameValidator is a validator for the "name" field. It is called by the builders before save.
	skill.NameValidator = skillDescName.Validators[0].(func(string) error)
	// skillDescCategory is the schema descriptor for category field.
	skillDescCategory := skillFields[2].Descriptor()
	// skill.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	skill.CategoryValidator = skillDescCategory.Validators[0].(func(string) error)
	// skillDescComplexity is the schema descriptor for complexity field.
	skillDescComplexity := skillFields[3].Descriptor()
	// skill.ComplexityValidator is a validator for the "complexity" field. It is called by the builders before save.
	skill.ComplexityValidator = skillDescComplexity.Validators[0].(func(int) error)
	skilldependencyFields := schema.SkillDependency{}.Fields()
	_ = skilldependencyFields
	// skilldependencyDescSkillID is the schema descriptor for skill_id field.
	skilldependencyDescSkillID := skilldependencyFields[0].Descriptor()
	// skilldependency.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	skilldependency.SkillIDValidator = skilldependencyDescSkillID.Validators[0].(func(string) error)
	// skilldependencyDescRequiresID is the schema descriptor for requires_id field.
	skilldependencyDescRequiresID := skilldependencyFields[1].Descriptor()
	// skilldependency.RequiresIDValidator is a validator for the "requires_id" field. It is called by the builders before save.
	skilldependency.RequiresIDValidator = skilldependencyDescRequiresID.Validators[0].(func(string) error)
	// skilldependencyDescStrength is the schema descriptor for strength field.
	skilldependencyDescStrength := skilldependencyFields[2].Descriptor()
	// skilldependency.DefaultStrength holds the default value on creation for the strength field.
	skilldependency.DefaultStrength = skilldependencyDescStrength.Default.(float64)
	// skilldependency.StrengthValidator is a validator for the "strength" field. It is called by the builders before save.
	skilldependency.StrengthValidator = skilldependencyDescStrength.Validators[0].(func(float64) error)
}
