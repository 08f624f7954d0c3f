package transcat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNeedsCompile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "app_ru.ts")
	output := filepath.Join(dir, "app_ru.qm")

	require.NoError(t, os.WriteFile(input, []byte("source"), 0o644))

	t.Run("missing output", func(t *testing.T) {
		require.True(t, NeedsCompile(input, output))
	})

	require.NoError(t, os.WriteFile(output, []byte("catalog"), 0o644))

	t.Run("output newer than input", func(t *testing.T) {
		older := time.Now().Add(-time.Hour)
		require.NoError(t, os.Chtimes(input, older, older))
		require.False(t, NeedsCompile(input, output))
	})

	t.Run("input newer than output", func(t *testing.T) {
		newer := time.Now().Add(time.Hour)
		require.NoError(t, os.Chtimes(input, newer, newer))
		require.True(t, NeedsCompile(input, output))
	})

	t.Run("missing input counts as stale", func(t *testing.T) {
		require.True(t, NeedsCompile(filepath.Join(dir, "absent.ts"), output))
	})
}

func TestCompileErrorFormat(t *testing.T) {
	err := CompileError("ReleaseCatalog", []string{"line one", "line two"}, os.ErrNotExist)

	msg := err.Error()
	if !strings.Contains(msg, "ReleaseCatalog compile failed") {
		t.Errorf("Expected rule name in error, got %q", msg)
	}
	if !strings.Contains(msg, "Tool output:") || !strings.Contains(msg, "line two") {
		t.Errorf("Expected captured output in error, got %q", msg)
	}

	bare := CompileError("ReleaseCatalog", nil, nil)
	if bare.Error() != "ReleaseCatalog compile failed" {
		t.Errorf("Unexpected bare error format: %q", bare.Error())
	}
}

func TestCleanOutputs(t *testing.T) {
	projectDir := t.TempDir()
	inputs := []string{"translations/app_ru.ts"}

	registry := NewCatalogRegistry(testManifest(inputs))
	config := &CompileConfig{ProjectDir: projectDir}

	output := filepath.Join(projectDir, "build", "translations", "app_ru.qm")
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o755))
	require.NoError(t, os.WriteFile(output, []byte("catalog"), 0o644))

	require.NoError(t, CleanOutputs(config, registry))
	_, err := os.Stat(output)
	require.True(t, os.IsNotExist(err))

	// Cleaning an already clean tree is not an error.
	require.NoError(t, CleanOutputs(config, registry))
}

func TestResolvePath(t *testing.T) {
	testCases := []struct {
		projectDir string
		path       string
		expected   string
	}{
		{"", "translations/app_ru.ts", "translations/app_ru.ts"},
		{"/proj", "translations/app_ru.ts", filepath.Join("/proj", "translations/app_ru.ts")},
		{"/proj", "/abs/app_ru.ts", "/abs/app_ru.ts"},
	}

	for _, tc := range testCases {
		if got := resolvePath(tc.projectDir, tc.path); got != tc.expected {
			t.Errorf("resolvePath(%q, %q) = %q, want %q", tc.projectDir, tc.path, got, tc.expected)
		}
	}
}
