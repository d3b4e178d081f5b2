// Package controller provides iteration strategy implementations for agents.
package controller

import (
	"fmt"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/config"
)

// Factory creates controllers by iteration strategy.
// Implements agent.ControllerFactory.
type Factory struct{}

// NewFactory creates a new controller factory.
func NewFactory() *Factory {
	return &Factory{}
}

// CreateController builds a Controller for the given strategy.
func (f *Factory) CreateController(strategy config.IterationStrategy, execCtx *agent.ExecutionContext) (agent.Controller, error) {
	switch strategy {
	case "", config.IterationStrategyReact, config.IterationStrategyReactStage, config.IterationStrategyChat:
		// ReAct variants share one loop. Stage scoping and chat mode are
		// prompt-level concerns driven by the execution context.
		return NewReActController(), nil
	case config.IterationStrategyNativeThinking:
		return NewNativeThinkingController(), nil
	case config.IterationStrategyLangChain:
		return NewIteratingController(), nil
	case config.IterationStrategySynthesis, config.IterationStrategySynthesisNativeThinking:
		if execCtx == nil || execCtx.PromptBuilder == nil {
			return nil, fmt.Errorf("synthesis controller requires a prompt builder")
		}
		return NewSynthesisController(execCtx.PromptBuilder), nil
	case config.IterationStrategyScoring, config.IterationStrategyScoringNativeThinking:
		return NewScoringController(), nil
	default:
		return nil, fmt.Errorf("unknown iteration strategy: %q", strategy)
	}
}
