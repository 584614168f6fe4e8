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

	"github.com/vk/overlaygo/internal/app"
	"github.com/vk/overlaygo/internal/hcl"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
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

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunMergeTest provides a standardized harness for end-to-end tests: it
// writes the base registry document and overlay files to a temporary
// directory, runs the app against them, and captures the emitted document,
// the log output, and any error (including recovered startup panics).
func RunMergeTest(t *testing.T, registryYAML string, overlays map[string]string, configure ...func(*app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	overlayDir := filepath.Join(tmpDir, "overlays")
	require.NoError(t, os.Mkdir(overlayDir, 0755))

	registryPath := filepath.Join(tmpDir, "registry.yaml")
	require.NoError(t, os.WriteFile(registryPath, []byte(registryYAML), 0644))

	// Overlay names may contain subdirectories (e.g. "python/pillow.hcl"),
	// which naturally creates the nested structure under the overlay dir.
	for name, content := range overlays {
		path := filepath.Join(overlayDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		RegistryPath: registryPath,
		OverlayPath:  overlayDir,
		LogFormat:    "text",
		LogLevel:     "debug",
	})
	require.NoError(t, err)
	for _, fn := range configure {
		fn(appConfig)
	}

	out := &bytes.Buffer{}
	logBuf := &SafeBuffer{}
	result := &HarnessResult{}

	func() {
		defer func() {
			if r := recover(); r != nil {
				result.Err = fmt.Errorf("application startup panicked: %v", r)
			}
		}()
		result.App = app.NewApp(out, logBuf, appConfig, hcl.NewLoader())
		result.Err = result.App.Run(context.Background())
	}()

	result.Output = out.String()
	result.LogOutput = logBuf.String()
	return result
}
