//go:build mage

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	transcat "github.com/localekit/translation-catalog-go"
)

// Translations compiles every stale translation catalog listed in the
// project manifest.
func Translations(ctx context.Context) error {
	registry, config, err := project()
	if err != nil {
		return err
	}

	results, err := registry.CompileAll(ctx, config)
	for _, result := range results {
		switch {
		case result.Skipped:
			fmt.Printf("up to date  %s\n", result.Input)
		case result.Success:
			fmt.Printf("compiled    %s -> %s\n", result.Input, result.Output)
		default:
			fmt.Printf("FAILED      %s: %v\n", result.Input, result.Error)
		}
	}
	return err
}

// Status prints the per-catalog staleness table.
func Status() error {
	registry, config, err := project()
	if err != nil {
		return err
	}
	return transcat.BuildStatus(config, registry).WriteTable(os.Stdout)
}

// Clean removes the compiled catalog files.
func Clean() error {
	registry, config, err := project()
	if err != nil {
		return err
	}
	return transcat.CleanOutputs(config, registry)
}

// Test runs the Go test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Build compiles the transcat command. Depends on Test.
func Build() error {
	mg.Deps(Test)
	return sh.RunV("go", "build", "./cmd/transcat")
}

func project() (*transcat.CompilerRegistry, *transcat.CompileConfig, error) {
	manifest := transcat.DefaultManifest()
	if _, err := os.Stat(transcat.DefaultManifestName); err == nil {
		loaded, err := transcat.LoadManifest(transcat.DefaultManifestName)
		if err != nil {
			return nil, nil, err
		}
		manifest = loaded
	}

	config := &transcat.CompileConfig{
		ProjectDir:    ".",
		ToolPath:      transcat.ResolveReleaseTool(transcat.ReleaseToolOverride(manifest)),
		StopOnFailure: true,
	}
	return transcat.NewCatalogRegistry(manifest), config, nil
}
