package prompt

import (
	"fmt"
	"strings"

	"github.com/tarsy-project/tarsy/pkg/agent"
)

// buildChatUserMessage builds the user message for a chat follow-up session.
func (b *PromptBuilder) buildChatUserMessage(
	execCtx *agent.ExecutionContext,
	tools []agent.ToolDefinition,
) string {
	chat := execCtx.ChatContext
	if chat == nil {
		return ""
	}

	var sb strings.Builder

	// Available tools (ReAct only)
	if len(tools) > 0 {
		sb.WriteString("Answer the following question using the available tools.\n\n")
		sb.WriteString("Available tools:\n\n")
		sb.WriteString(FormatToolDescriptions(tools))
		sb.WriteString("\n\n")
	}

	// Investigation context (pre-formatted by executor — includes the full
	// original investigation timeline)
	sb.WriteString(chat.InvestigationContext)

	// Previous chat exchanges in this session
	if history := FormatChatHistory(chat.ChatHistory); history != "" {
		sb.WriteString("\n\n")
		sb.WriteString(history)
	}

	// Current task
	sb.WriteString(fmt.Sprintf(`
%s
🎯 CURRENT TASK
%s

**Question:** %s

**Your Task:**
Answer the user's question based on the investigation context above.
- Reference investigation history when relevant
- Use tools to get fresh data if needed
- Provide clear, actionable responses

Begin your response:
`, separator, separator, chat.UserQuestion))

	return sb.String()
}

// FormatChatHistory renders previous chat exchanges for prompt injection.
// Returns "" when there are no exchanges. Intermediate tool results and
// observations are included so the LLM doesn't re-run tools it already ran.
func FormatChatHistory(exchanges []agent.ChatExchange) string {
	if len(exchanges) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(separator)
	sb.WriteString(fmt.Sprintf("\n💬 CHAT HISTORY (%d previous exchange%s)\n", len(exchanges), pluralS(len(exchanges))))
	sb.WriteString(separator)
	sb.WriteString("\n")

	for i, exchange := range exchanges {
		sb.WriteString(fmt.Sprintf("\n### Exchange %d\n\n", i+1))
		sb.WriteString("**USER:** ")
		sb.WriteString(exchange.UserQuestion)
		sb.WriteString("\n")

		for _, msg := range exchange.Messages {
			switch msg.Role {
			case agent.RoleAssistant:
				sb.WriteString("\n**ASSISTANT:**\n")
				sb.WriteString(msg.Content)
				sb.WriteString("\n")
			case agent.RoleTool:
				sb.WriteString("\n**Observation (tool):**\n")
				sb.WriteString(msg.Content)
				sb.WriteString("\n")
			case agent.RoleUser:
				// Mid-exchange user messages are observations fed back to
				// the LLM (tool results, format corrections).
				content := strings.TrimSpace(strings.TrimPrefix(msg.Content, "Observation:"))
				sb.WriteString("\n**Observation:**\n")
				sb.WriteString(content)
				sb.WriteString("\n")
			}
		}
	}

	return sb.String()
}

func pluralS(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
