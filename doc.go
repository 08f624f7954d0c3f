// Package transcat orchestrates compilation of translation-source files
// into the binary catalog files an application loads at runtime.
//
// This package is the standalone equivalent of the translation build step
// usually buried inside a project's build configuration: it resolves the
// external release tool, keeps the ordered list of translation-source
// files, and registers a compile rule mapping each source file to its
// compiled catalog.
//
// # Pipeline
//
// A compile run goes through three stages:
//   - Tool resolution: pick the release-tool executable, with a
//     platform-specific fallback when the default name is not on PATH.
//   - Rule registration: declare how an input file maps to an output
//     file name and to a command line.
//   - Execution: invoke the tool once per stale input, capturing output.
//
// # Basic Usage
//
// Load a manifest and compile everything that is out of date:
//
//	manifest, err := transcat.LoadManifest("transcat.toml")
//	if err != nil {
//	    return err
//	}
//
//	config := &transcat.CompileConfig{
//	    ProjectDir:    ".",
//	    ToolPath:      transcat.ResolveReleaseTool(manifest.Tool),
//	    StopOnFailure: true,
//	}
//
//	registry := transcat.NewCatalogRegistry(manifest)
//	results, err := registry.CompileAll(ctx, config)
//
// # Architecture
//
// The registry holds declarative compile rules:
//
//	CompilerRegistry
//	└── CompileRule (*.ts → <base>.qm)
//
// Each rule carries its ordered input set, output naming, a command
// template with placeholder substitution, and the no-link /
// target-predeps flags consumed by the registry's scheduling.
//
// # Error Handling
//
// Tool resolution never validates that the resolved executable exists;
// a missing tool or a missing input file surfaces as a failed command
// invocation for that one input. Other inputs are unaffected unless
// CompileConfig.StopOnFailure is set.
//
// # Platform Support
//
// Full support on Linux and macOS. On Windows the default tool name is
// used as-is; the distribution-specific fallback probe is unix-only.
package transcat
