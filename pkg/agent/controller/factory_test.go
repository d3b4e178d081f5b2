package controller

import (
	"testing"

	"github.com/tarsy-project/tarsy/pkg/agent"
	"github.com/tarsy-project/tarsy/pkg/agent/prompt"
	"github.com/tarsy-project/tarsy/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactory_CreateController(t *testing.T) {
	factory := NewFactory()

	// Minimal execution context for testing
	execCtx := &agent.ExecutionContext{
		SessionID:  "test-session",
		StageID:    "test-stage",
		AgentName:  "test-agent",
		AgentIndex: 1,
	}

	t.Run("unknown strategy returns error", func(t *testing.T) {
		controller, err := factory.CreateController(config.IterationStrategy("invalid"), execCtx)
		require.Error(t, err)
		assert.Nil(t, controller)
		assert.Contains(t, err.Error(), "unknown iteration strategy")
		assert.Contains(t, err.Error(), "invalid")
	})

	t.Run("react returns ReActController", func(t *testing.T) {
		controller, err := factory.CreateController(config.IterationStrategyReact, execCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*ReActController)
		assert.True(t, ok, "expected ReActController")
	})

	t.Run("empty strategy defaults to ReActController", func(t *testing.T) {
		controller, err := factory.CreateController("", execCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*ReActController)
		assert.True(t, ok, "expected ReActController")
	})

	t.Run("react-stage returns ReActController", func(t *testing.T) {
		controller, err := factory.CreateController(config.IterationStrategyReactStage, execCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*ReActController)
		assert.True(t, ok, "expected ReActController")
	})

	t.Run("chat returns ReActController", func(t *testing.T) {
		controller, err := factory.CreateController(config.IterationStrategyChat, execCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*ReActController)
		assert.True(t, ok, "expected ReActController")
	})

	t.Run("native-thinking returns NativeThinkingController", func(t *testing.T) {
		controller, err := factory.CreateController(config.IterationStrategyNativeThinking, execCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*NativeThinkingController)
		assert.True(t, ok, "expected NativeThinkingController")
	})

	t.Run("langchain returns IteratingController", func(t *testing.T) {
		controller, err := factory.CreateController(config.IterationStrategyLangChain, execCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*IteratingController)
		assert.True(t, ok, "expected IteratingController")
	})

	t.Run("synthesis returns SingleShotController", func(t *testing.T) {
		pb := prompt.NewPromptBuilder(config.NewMCPServerRegistry(map[string]*config.MCPServerConfig{}))
		synthExecCtx := &agent.ExecutionContext{
			SessionID:     "test-session",
			StageID:       "test-stage",
			AgentName:     "test-agent",
			AgentIndex:    1,
			PromptBuilder: pb,
		}
		controller, err := factory.CreateController(config.IterationStrategySynthesis, synthExecCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*SingleShotController)
		assert.True(t, ok, "expected SingleShotController")
	})

	t.Run("synthesis without prompt builder returns error", func(t *testing.T) {
		_, err := factory.CreateController(config.IterationStrategySynthesis, execCtx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "prompt builder")
	})

	t.Run("scoring returns ScoringController", func(t *testing.T) {
		controller, err := factory.CreateController(config.IterationStrategyScoring, execCtx)
		require.NoError(t, err)
		require.NotNil(t, controller)

		_, ok := controller.(*ScoringController)
		assert.True(t, ok, "expected ScoringController")
	})

	t.Run("typo in strategy returns error", func(t *testing.T) {
		typo := config.IterationStrategy("syntesis") // typo of "synthesis"
		controller, err := factory.CreateController(typo, execCtx)

		require.Error(t, err)
		assert.Nil(t, controller)
		assert.Contains(t, err.Error(), "unknown iteration strategy")
		assert.Contains(t, err.Error(), "syntesis")
	})
}
