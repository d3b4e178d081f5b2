package hooks

import (
	"context"
	"fmt"

	"github.com/tarsy-project/tarsy/pkg/models"
	"github.com/tarsy-project/tarsy/pkg/services"
)

// LLMPersistenceHook writes finalized LLM interaction records to the history
// store. Register it under KindLLM.
type LLMPersistenceHook struct {
	Interactions *services.InteractionService
}

func (h *LLMPersistenceHook) Name() string { return "llm-persistence" }

func (h *LLMPersistenceHook) OnFinalized(ctx context.Context, rec *Record) error {
	req, ok := rec.Payload.(models.CreateLLMInteractionRequest)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for %s record", rec.Payload, rec.Kind)
	}
	_, err := h.Interactions.CreateLLMInteraction(ctx, req)
	return err
}

// MCPPersistenceHook writes finalized tool-call and tool-list records to the
// history store. Register it under KindToolCall and KindToolList.
type MCPPersistenceHook struct {
	Interactions *services.InteractionService
}

func (h *MCPPersistenceHook) Name() string { return "mcp-persistence" }

func (h *MCPPersistenceHook) OnFinalized(ctx context.Context, rec *Record) error {
	req, ok := rec.Payload.(models.CreateMCPInteractionRequest)
	if !ok {
		return fmt.Errorf("unexpected payload type %T for %s record", rec.Payload, rec.Kind)
	}
	_, err := h.Interactions.CreateMCPInteraction(ctx, req)
	return err
}

// NewPersistencePipeline builds the standard pipeline used by session
// executors: LLM, tool-call, and tool-list records all persist through the
// interaction service.
func NewPersistencePipeline(interactions *services.InteractionService) *Pipeline {
	p := NewPipeline()
	p.Register(KindLLM, &LLMPersistenceHook{Interactions: interactions})
	mcpHook := &MCPPersistenceHook{Interactions: interactions}
	p.Register(KindToolCall, mcpHook)
	p.Register(KindToolList, mcpHook)
	return p
}
