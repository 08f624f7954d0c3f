package transcat

// CompileResult contains the outcome of compiling one translation-source file.
//
// After an invocation completes, this structure provides:
//   - Success status indicating whether the catalog was produced
//   - Skipped flag set when the existing catalog was already up to date
//   - Output lines captured from the release tool (stdout/stderr)
//   - Error information if the invocation failed
type CompileResult struct {
	Input       string   // Translation-source file this result belongs to
	Output      string   // Path of the compiled catalog file
	Success     bool     // True if the catalog exists and is current
	Skipped     bool     // True if the output was already newer than the input
	OutputLines []string // Lines of output from the release tool
	Error       error    // Error if the invocation failed, nil otherwise
}

// CompileConfig contains configuration for a compile run.
//
// Paths:
//   - ProjectDir: directory that relative manifest paths are resolved against
//
// Tool invocation:
//   - ToolPath: the resolved release-tool executable (see ResolveReleaseTool)
//   - ExtraArgs: additional arguments appended after the command template
//   - Env: environment variables set for each tool invocation
//
// Behaviour:
//   - Verbose: record the expanded command line in each result
//   - ForceRebuild: compile every input regardless of staleness
//   - StopOnFailure: stop the run after the first failed input
type CompileConfig struct {
	// Paths
	ProjectDir string // Root directory for relative input/output paths

	// Tool invocation
	ToolPath  string            // Release-tool executable, name or absolute path
	ExtraArgs []string          // Additional tool arguments
	Env       map[string]string // Environment variables for tool invocations

	// Behaviour
	Verbose       bool // Record expanded command lines in results
	ForceRebuild  bool // Ignore staleness and recompile everything
	StopOnFailure bool // Stop after the first failed input
}

// RuleFlags mirror the build-engine flags a compile rule is registered with.
//
// NoLink marks the rule's outputs as pure data artifacts that never enter
// a link step. TargetPredeps marks the rule as a prerequisite that must
// complete before rules without the flag run.
type RuleFlags struct {
	NoLink        bool // Outputs are not link inputs
	TargetPredeps bool // Rule runs before non-predeps rules
}
