package context

import (
	"fmt"
	"strings"

	"github.com/tarsy-project/tarsy/ent"
	"github.com/tarsy-project/tarsy/ent/alertsession"
	"github.com/tarsy-project/tarsy/ent/timelineevent"
)

const investigationSeparator = "═══════════════════════════════════════════════════════════════════════════════"

// noHistoryPlaceholder is shown for agents that produced no timeline events
// and did not complete (failed before any LLM interaction was recorded).
const noHistoryPlaceholder = "(No investigation history available)\n\n"

// AgentInvestigation is one agent's contribution to a stage: identity,
// outcome, and the full timeline of its execution. Built by the session
// executor for synthesis context and by the chat executor for the
// structured investigation history.
type AgentInvestigation struct {
	AgentName    string
	AgentIndex   int // 1-based, chain config ordering
	LLMBackend   string
	LLMProvider  string
	Status       alertsession.Status
	ErrorMessage string
	Events       []*ent.TimelineEvent
}

// StageInvestigation groups the agent investigations of one chain stage,
// plus the synthesis result when the stage had one.
type StageInvestigation struct {
	StageName       string
	StageIndex      int
	Agents          []AgentInvestigation
	SynthesisResult string
}

// FormatInvestigationContext formats timeline events from the original
// investigation into a readable context for chat sessions.
// This is called by the executor/service layer, not by the prompt builder.
func FormatInvestigationContext(events []*ent.TimelineEvent) string {
	var sb strings.Builder
	sb.WriteString(investigationSeparator + "\n")
	sb.WriteString("📋 INVESTIGATION HISTORY\n")
	sb.WriteString(investigationSeparator + "\n\n")
	sb.WriteString("# Original Investigation\n\n")
	formatTimelineEvents(&sb, events)
	return sb.String()
}

// FormatStructuredInvestigation formats a stage-by-stage investigation
// history for chat context. Single-agent stages use a simplified header;
// parallel stages reuse the synthesis block format byte-for-byte so the
// LLM sees identical structure in both flows.
func FormatStructuredInvestigation(stages []StageInvestigation, executiveSummary string) string {
	var sb strings.Builder
	sb.WriteString(investigationSeparator + "\n")
	sb.WriteString("📋 INVESTIGATION HISTORY\n")
	sb.WriteString(investigationSeparator + "\n\n")

	for i, stage := range stages {
		// Sequential numbering — StageIndex may have gaps (skipped stages).
		fmt.Fprintf(&sb, "## Stage %d: %s\n\n", i+1, stage.StageName)

		switch {
		case len(stage.Agents) == 1:
			formatSingleAgent(&sb, stage.Agents[0])
		case len(stage.Agents) > 1:
			sb.WriteString(FormatInvestigationForSynthesis(stage.Agents, stage.StageName))
		}

		if stage.SynthesisResult != "" {
			sb.WriteString("### Synthesis Result\n\n")
			sb.WriteString(stage.SynthesisResult)
			sb.WriteString("\n\n")
		}
	}

	if executiveSummary != "" {
		sb.WriteString("## Executive Summary\n\n")
		sb.WriteString(executiveSummary)
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatInvestigationForSynthesis formats parallel agent investigations for
// the synthesis agent. The output is wrapped in HTML comment markers so the
// chat formatter can reuse the block verbatim.
func FormatInvestigationForSynthesis(agents []AgentInvestigation, stageName string) string {
	succeeded := 0
	for _, a := range agents {
		if a.Status == alertsession.StatusCompleted {
			succeeded++
		}
	}

	var sb strings.Builder
	sb.WriteString("<!-- PARALLEL_RESULTS_START -->\n")
	fmt.Fprintf(&sb, "### Parallel Investigation Results: %q — %d/%d agents succeeded\n\n",
		stageName, succeeded, len(agents))

	for _, a := range agents {
		fmt.Fprintf(&sb, "#### Agent %d: %s (%s)\n", a.AgentIndex, a.AgentName, agentStrategyLabel(a))
		fmt.Fprintf(&sb, "**Status**: %s\n", a.Status)
		if a.ErrorMessage != "" {
			fmt.Fprintf(&sb, "**Error**: %s\n", a.ErrorMessage)
		}
		sb.WriteString("\n")

		if len(a.Events) == 0 {
			if a.Status != alertsession.StatusCompleted {
				sb.WriteString(noHistoryPlaceholder)
			}
			continue
		}
		formatTimelineEvents(&sb, a.Events)
	}

	sb.WriteString("<!-- PARALLEL_RESULTS_END -->\n")
	return sb.String()
}

// formatSingleAgent writes the simplified single-agent block used by
// FormatStructuredInvestigation.
func formatSingleAgent(sb *strings.Builder, a AgentInvestigation) {
	fmt.Fprintf(sb, "**Agent:** %s (%s)\n", a.AgentName, agentStrategyLabel(a))
	fmt.Fprintf(sb, "**Status**: %s\n", a.Status)
	if a.ErrorMessage != "" {
		fmt.Fprintf(sb, "**Error**: %s\n", a.ErrorMessage)
	}
	sb.WriteString("\n")

	if len(a.Events) == 0 {
		if a.Status != alertsession.StatusCompleted {
			sb.WriteString(noHistoryPlaceholder)
		}
		return
	}
	formatTimelineEvents(sb, a.Events)
}

// agentStrategyLabel renders "backend" or "backend, provider" for agent headers.
func agentStrategyLabel(a AgentInvestigation) string {
	if a.LLMProvider == "" {
		return a.LLMBackend
	}
	return a.LLMBackend + ", " + a.LLMProvider
}

// formatTimelineEvents renders timeline events as markdown blocks. A tool
// call immediately followed by an mcp_tool_summary is deduplicated: the
// summary replaces the raw tool result.
func formatTimelineEvents(sb *strings.Builder, events []*ent.TimelineEvent) {
	for i := 0; i < len(events); i++ {
		event := events[i]
		if event == nil {
			continue
		}
		switch event.EventType {
		case timelineevent.EventTypeLlmThinking:
			sb.WriteString("**Internal Reasoning:**\n\n")
			sb.WriteString(event.Content)
			sb.WriteString("\n\n")
		case timelineevent.EventTypeLlmResponse:
			sb.WriteString("**Agent Response:**\n\n")
			sb.WriteString(event.Content)
			sb.WriteString("\n\n")
		case timelineevent.EventTypeFinalAnalysis:
			sb.WriteString("**Final Analysis:**\n\n")
			sb.WriteString(event.Content)
			sb.WriteString("\n\n")
		case timelineevent.EventTypeLlmToolCall:
			sb.WriteString("**Tool Call:** ")
			sb.WriteString(toolCallHeader(event))
			sb.WriteString("\n")

			// Dedup: a summary right after a tool call replaces the raw result.
			if i+1 < len(events) && events[i+1] != nil &&
				events[i+1].EventType == timelineevent.EventTypeMcpToolSummary {
				sb.WriteString("**Result (summarized):**\n\n")
				sb.WriteString(events[i+1].Content)
				sb.WriteString("\n\n")
				i++
			} else if event.Content != "" {
				sb.WriteString("**Result:**\n\n")
				sb.WriteString(event.Content)
				sb.WriteString("\n\n")
			}
		case timelineevent.EventTypeMcpToolSummary:
			sb.WriteString("**Tool Result Summary:**\n\n")
			sb.WriteString(event.Content)
			sb.WriteString("\n\n")
		default:
			sb.WriteString("**" + strings.ReplaceAll(string(event.EventType), "_", " ") + ":**\n\n")
			sb.WriteString(event.Content)
			sb.WriteString("\n\n")
		}
	}
}

// toolCallHeader renders "server.tool(arguments)" from tool call metadata,
// falling back to the raw content when metadata is incomplete.
func toolCallHeader(event *ent.TimelineEvent) string {
	serverName, _ := event.Metadata["server_name"].(string)
	toolName, _ := event.Metadata["tool_name"].(string)
	if serverName == "" || toolName == "" {
		return event.Content
	}
	arguments, _ := event.Metadata["arguments"].(string)
	return fmt.Sprintf("%s.%s(%s)", serverName, toolName, arguments)
}
