package transcat

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestBuildStatus(t *testing.T) {
	inputs := []string{"translations/app_de.ts", "translations/app_ru.ts"}
	projectDir := writeProject(t, inputs...)

	registry := NewCatalogRegistry(testManifest(inputs))
	config := &CompileConfig{ProjectDir: projectDir, ToolPath: "lrelease"}

	report := BuildStatus(config, registry)

	require.Equal(t, "lrelease", report.Tool)
	require.Equal(t, "UTF-8", report.Encoding)
	require.Len(t, report.Entries, 2)

	first := report.Entries[0]
	require.Equal(t, "translations/app_de.ts", first.Input)
	require.Equal(t, filepath.Join("build", "translations", "app_de.qm"), first.Output)
	require.Equal(t, "de", first.Locale)
	require.False(t, first.Exists)
	require.True(t, first.Stale)
	require.Equal(t, inputs, report.Stale())

	// A compiled catalog newer than its source is reported current.
	output := filepath.Join(projectDir, "build", "translations", "app_de.qm")
	require.NoError(t, os.MkdirAll(filepath.Dir(output), 0o755))
	require.NoError(t, os.WriteFile(output, []byte("catalog"), 0o644))

	report = BuildStatus(config, registry)
	require.True(t, report.Entries[0].Exists)
	require.False(t, report.Entries[0].Stale)
	require.Equal(t, []string{"translations/app_ru.ts"}, report.Stale())
}

func TestStatusWriteJSON(t *testing.T) {
	report := &StatusReport{
		Tool:     "lrelease-qt5",
		Encoding: "UTF-8",
		Entries: []StatusEntry{
			{Input: "translations/app_uk.ts", Output: "build/translations/app_uk.qm", Locale: "uk", Rule: "ReleaseCatalog", Stale: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteJSON(&buf))

	var decoded StatusReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, report.Tool, decoded.Tool)
	require.Len(t, decoded.Entries, 1)
	require.True(t, decoded.Entries[0].Stale)
}

func TestStatusWriteTable(t *testing.T) {
	report := &StatusReport{
		Tool: "lrelease",
		Entries: []StatusEntry{
			{Input: "translations/app_cs.ts", Output: "build/translations/app_cs.qm", Locale: "cs", Rule: "ReleaseCatalog", Stale: true},
			{Input: "translations/app_de.ts", Output: "build/translations/app_de.qm", Locale: "de", Rule: "ReleaseCatalog", Exists: true},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, report.WriteTable(&buf))

	out := buf.String()
	require.Contains(t, out, "app_cs.ts")
	require.Contains(t, out, "stale")
	require.Contains(t, out, "up to date")
}