package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/riskgridgo/internal/app"
	"github.com/vk/riskgridgo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an end-to-end planner run.
type HarnessResult struct {
	PlanOutput string
	LogOutput  string
	Err        error
	App        *app.App
}

// RunPlannerTest provides a standardized harness for running the app end to
// end: it writes the given grid files into a temporary directory, runs the
// app against it with the real HCL loader, and captures the plan output and
// logs separately.
func RunPlannerTest(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunPlannerTestWithContext(context.Background(), t, files)
}

// RunPlannerTestWithContext is RunPlannerTest with a caller-provided context.
func RunPlannerTestWithContext(ctx context.Context, t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", ".tmp-planner-test-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	// The test provides relative paths (e.g., "grids/network.hcl"), which
	// naturally creates the subdirectory structure within the root tmpDir.
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig := &app.Config{
		GridPath:  tmpDir,
		LogLevel:  "debug",
		LogFormat: "text",
	}

	planBuffer := &SafeBuffer{}
	logBuffer := &SafeBuffer{}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(planBuffer, logBuffer, appConfig, hcl.NewLoader())
	}()

	if panicErr != nil {
		return &HarnessResult{
			PlanOutput: planBuffer.String(),
			LogOutput:  logBuffer.String(),
			Err:        fmt.Errorf("application startup panicked | %v", panicErr),
			App:        nil,
		}
	}

	runErr := testApp.Run(ctx, appConfig)

	if os.Getenv("RGGO_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		PlanOutput: planBuffer.String(),
		LogOutput:  logBuffer.String(),
		Err:        runErr,
		App:        testApp,
	}
}
