package prompt

import (
	"crypto/sha256"
	"fmt"
)

// Judge prompts for session quality scoring. The scoring controller replays
// a completed investigation to an LLM judge and parses a numeric score from
// the response. Prompt text is hashed so stored scores can be invalidated
// when the prompts change.

const judgeSystemPrompt = `You are an expert evaluator of SRE incident investigations.

You will be shown the full record of an automated investigation: the alert
that triggered it, the tools that were called, the observations gathered,
and the final analysis. Judge the investigation on these dimensions:

1. Tool usage (0-25): Were the right tools called? Were results interpreted correctly?
2. Evidence quality (0-25): Are conclusions supported by gathered observations?
3. Root cause analysis (0-25): Does the analysis identify a plausible, specific root cause?
4. Actionability (0-25): Are the recommendations concrete and safe for an operator to execute?

Be strict. An investigation that guesses without evidence, or recommends
vague next steps, should score poorly even if the final answer happens to
be correct.`

const judgePromptScore = `Evaluate the following investigation.

%[1]s

%[2]s`

const judgePromptScoreReminder = `Your previous response failed to parse: no standalone score was found on the last line.

%[1]s`

const judgePromptFollowupMissingTools = `The investigation record contains no tool interactions. If the agent had no tools available, evaluate reasoning quality only and note the missing tool usage in your assessment. Score the tool usage dimension as 0.`

// GetCurrentPromptHash returns the SHA256 of the concatenated judge prompts.
// Stored alongside each session score; scores computed against older prompt
// versions are recomputed rather than reused.
func GetCurrentPromptHash() [32]byte {
	return sha256.Sum256([]byte(judgeSystemPrompt + judgePromptScore + judgePromptScoreReminder + judgePromptFollowupMissingTools))
}

// BuildScoringSystemPrompt returns the system prompt for the scoring judge.
func (b *PromptBuilder) BuildScoringSystemPrompt() string {
	return judgeSystemPrompt
}

// BuildScoringInitialPrompt builds the first user message for a scoring run.
func (b *PromptBuilder) BuildScoringInitialPrompt(sessionInvestigationContext, outputSchema string) string {
	return fmt.Sprintf(judgePromptScore, sessionInvestigationContext, outputSchema)
}

// BuildScoringOutputSchemaReminderPrompt builds the retry message sent when
// the judge's response could not be parsed into a score.
func (b *PromptBuilder) BuildScoringOutputSchemaReminderPrompt(outputSchema string) string {
	return fmt.Sprintf(judgePromptScoreReminder, outputSchema)
}

// BuildScoringMissingToolsReportPrompt builds the follow-up message used when
// the session under evaluation recorded no tool interactions.
func (b *PromptBuilder) BuildScoringMissingToolsReportPrompt() string {
	return judgePromptFollowupMissingTools
}
