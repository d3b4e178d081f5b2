// Package configs provides test configuration loading for e2e tests.
// Configs are stored as YAML files (the same format as production) and loaded
// through the production config.Initialize path, ensuring built-in agents,
// merge logic, and validation are all exercised.
package configs

import (
	"context"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tarsy-project/tarsy/pkg/config"
)

// configsDir returns the absolute path to the configs testdata directory.
// Uses runtime.Caller so it works regardless of the working directory.
func configsDir() string {
	_, thisFile, _, _ := runtime.Caller(0)
	return filepath.Dir(thisFile)
}

// builtinProviderEnvVars are the environment variables referenced by the
// built-in LLM providers. The validator requires them to be set even though
// tests replace the LLM client with a scripted mock.
var builtinProviderEnvVars = []string{
	"GOOGLE_API_KEY",
	"OPENAI_API_KEY",
	"ANTHROPIC_API_KEY",
	"XAI_API_KEY",
	"GOOGLE_CLOUD_PROJECT",
	"GOOGLE_CLOUD_LOCATION",
}

// Load loads a named test configuration using the production config.Initialize path.
// The name corresponds to a subdirectory under testdata/configs/ containing
// tarsy.yaml and llm-providers.yaml.
//
// Available configs: pipeline, single-stage, two-stage-fail-fast, parallel-any,
// parallel-all, replica, chat, forced-conclusion, full-flow, concurrency,
// multi-replica, react-streaming, cancellation, timeout, failure-propagation,
// failure-resilience, orchestrator, orchestrator-cancel.
func Load(t *testing.T, name string) *config.Config {
	t.Helper()
	for _, envVar := range builtinProviderEnvVars {
		t.Setenv(envVar, "e2e-test-value")
	}
	dir := filepath.Join(configsDir(), name)
	cfg, err := config.Initialize(context.Background(), dir)
	require.NoError(t, err, "failed to load test config %q from %s", name, dir)
	return cfg
}
