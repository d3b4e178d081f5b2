// Package testdata defines expected WebSocket event sequences for e2e tests.
//
// WS events are verified with structural assertions (not golden files) because
// the catchup/NOTIFY race makes exact event ordering non-deterministic.
// AssertEventsInOrder checks that each expected event appears in the actual
// events in the correct relative order, tolerating extra or duplicate events.
package testdata

// ExpectedEvent defines a single expected WebSocket event for structural matching.
// Only non-empty fields are matched against actual events.
type ExpectedEvent struct {
	Type      string            // required: "session.status", "stage.status", etc.
	Status    string            // optional: match if non-empty
	StageName string            // optional: match if non-empty (for stage.status events)
	EventType string            // optional: match if non-empty (for timeline_event.created)
	Content   string            // optional: exact match on "content" field if non-empty
	Metadata  map[string]string // optional: partial match on metadata — only specified keys are checked
	Group     int               // optional: non-zero = events with same Group can match in any order
}

// ────────────────────────────────────────────────────────────
// Scenario: Pipeline
// Single investigation stage (DataCollector, native-thinking):
// thinking + tool call → thinking + final answer → executive summary.
// ────────────────────────────────────────────────────────────

var PipelineExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},

	{Type: "stage.status", StageName: "investigation", Status: "started"},

	// Iteration 1: thinking + intermediate response + tool call.
	{Type: "timeline_event.created", EventType: "llm_thinking"},
	{Type: "timeline_event.created", EventType: "llm_response"},
	{Type: "timeline_event.completed", EventType: "llm_thinking", Content: "Let me check the pod status.", Group: 1},
	{Type: "timeline_event.completed", EventType: "llm_response", Content: "I'll look up the pods.", Group: 1},

	{Type: "timeline_event.created", EventType: "llm_tool_call", Metadata: map[string]string{
		"server_name": "test-mcp",
		"tool_name":   "get_pods",
		"arguments":   `{"namespace":"default"}`,
	}},
	{Type: "timeline_event.completed", EventType: "llm_tool_call"},

	// Iteration 2: thinking + final answer.
	{Type: "timeline_event.created", EventType: "llm_thinking"},
	{Type: "timeline_event.completed", EventType: "llm_thinking", Content: "The pod is clearly OOMKilled.", Group: 2},
	{Type: "timeline_event.completed", EventType: "llm_response", Content: "Investigation complete: pod-1 is OOMKilled with 5 restarts.", Group: 2},
	{Type: "timeline_event.created", EventType: "final_analysis"},

	{Type: "stage.status", StageName: "investigation", Status: "completed"},

	// Executive summary runs after the chain, then the session lands.
	{Type: "timeline_event.created", EventType: "executive_summary"},
	{Type: "session.status", Status: "completed"},
}

// ────────────────────────────────────────────────────────────
// Scenario: Cancellation
// ────────────────────────────────────────────────────────────

// CancellationInvestigationExpectedEvents covers a session cancelled while two
// parallel investigators are blocked mid-LLM-call.
var CancellationInvestigationExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "investigation", Status: "started"},
	{Type: "session.status", Status: "cancelled"},
}

// CancellationChatExpectedEvents covers a completed investigation followed by a
// cancelled chat message and a successful follow-up chat.
var CancellationChatExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "quick-check", Status: "started"},
	{Type: "timeline_event.created", EventType: "final_analysis"},
	{Type: "stage.status", StageName: "quick-check", Status: "completed"},
	{Type: "session.status", Status: "completed"},
	// Chat 1 (cancelled) then chat 2 (completed). The relative-order matcher
	// pairs the first started with chat 1 and the completed with chat 2.
	{Type: "stage.status", StageName: "Chat Response", Status: "started"},
	{Type: "stage.status", StageName: "Chat Response", Status: "completed"},
}

// ────────────────────────────────────────────────────────────
// Scenario: Timeout
// ────────────────────────────────────────────────────────────

// TimeoutInvestigationExpectedEvents covers a session whose only agent blocks
// until the session deadline fires — the worker persists it as failed.
var TimeoutInvestigationExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "investigation", Status: "started"},
	{Type: "session.status", Status: "failed"},
}

// TimeoutChatExpectedEvents covers a completed investigation, a chat that hits
// the chat deadline, and a successful follow-up chat.
var TimeoutChatExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "quick-check", Status: "started"},
	{Type: "stage.status", StageName: "quick-check", Status: "completed"},
	{Type: "session.status", Status: "completed"},
	{Type: "stage.status", StageName: "Chat Response", Status: "started"},
	{Type: "stage.status", StageName: "Chat Response", Status: "completed"},
}

// ────────────────────────────────────────────────────────────
// Scenario: Failure Propagation (partial continuation)
// preparation succeeds → parallel-check fails (policy=all) → chain breaks,
// but the session keeps the completed stages' analysis and lands on partial.
// ────────────────────────────────────────────────────────────

var FailurePropagationExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "preparation", Status: "started"},
	{Type: "timeline_event.completed", EventType: "llm_thinking", Content: "Analyzing the alert data."},
	{Type: "timeline_event.created", EventType: "final_analysis"},
	{Type: "stage.status", StageName: "preparation", Status: "completed"},
	{Type: "stage.status", StageName: "parallel-check", Status: "started"},
	{Type: "stage.status", StageName: "parallel-check", Status: "failed"},
	{Type: "session.status", Status: "partial"},
}

// ────────────────────────────────────────────────────────────
// Scenario: Orchestrator
// ────────────────────────────────────────────────────────────

// OrchestratorExpectedEvents covers the happy path: the orchestrator dispatches
// a sub-agent, the sub-agent reports back, and the session completes.
var OrchestratorExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "orchestrate", Status: "started"},
	{Type: "timeline_event.created", EventType: "task_assigned"},
	{Type: "timeline_event.created", EventType: "final_analysis"},
	{Type: "stage.status", StageName: "orchestrate", Status: "completed"},
	{Type: "session.status", Status: "completed"},
}

// OrchestratorCancellationExpectedEvents covers cancelling a session while the
// orchestrator and both sub-agents are blocked mid-LLM-call.
var OrchestratorCancellationExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "orchestrate", Status: "started"},
	{Type: "session.status", Status: "cancelled"},
}

// ────────────────────────────────────────────────────────────
// Scenario: Failure Resilience
// analysis (Analyzer fails, Investigator succeeds, policy=any) → synthesis →
// summary; the executive summary call fails open.
// ────────────────────────────────────────────────────────────

var FailureResilienceExpectedEvents = []ExpectedEvent{
	{Type: "session.status", Status: "in_progress"},
	{Type: "stage.status", StageName: "analysis", Status: "started"},
	{Type: "stage.status", StageName: "analysis", Status: "completed"},
	{Type: "stage.status", StageName: "analysis - Synthesis", Status: "completed"},
	{Type: "stage.status", StageName: "summary", Status: "started"},
	{Type: "stage.status", StageName: "summary", Status: "completed"},
	{Type: "session.status", Status: "completed"},
}
