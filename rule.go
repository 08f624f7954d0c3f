package transcat

import (
	"fmt"
	"path/filepath"
	"strings"
)

// CatalogSuffix is the extension of compiled translation-catalog files.
const CatalogSuffix = ".qm"

// SourceSuffix is the extension of translation-source files.
const SourceSuffix = ".ts"

// CompileRule declares a repeatable transformation from each
// translation-source file to a compiled-catalog file.
//
// A rule is a declarative record: the ordered input set, the output
// naming scheme, a command template, and the flags the scheduler
// consumes. It is created once at configuration time and is immutable
// for the lifetime of the run.
//
// # Command Templates
//
// The Command slice supports placeholders, substituted per input:
//
//	{{tool}}     - the resolved release-tool executable
//	{{input}}    - the translation-source file
//	{{output}}   - the computed catalog path
//	{{base}}     - the input's base name without extension
//	{{encoding}} - the rule's source encoding tag
//
// # Example
//
// The stock catalog rule is equivalent to:
//
//	rule := &transcat.CompileRule{
//	    Name:          "ReleaseCatalog",
//	    Inputs:        []string{"translations/app_ru.ts"},
//	    InputPatterns: []string{`\.ts$`},
//	    OutputDir:     "build/translations",
//	    OutputSuffix:  transcat.CatalogSuffix,
//	    Command:       []string{"{{tool}}", "-silent", "{{input}}", "-qm", "{{output}}"},
//	    SourceEncoding: "UTF-8",
//	    Flags:         transcat.RuleFlags{NoLink: true, TargetPredeps: true},
//	}
type CompileRule struct {
	// Name is the human-readable rule name used in errors and logs.
	Name string

	// Inputs is the ordered list of translation-source files.
	Inputs []string

	// InputPatterns are regex patterns an input file must match for this
	// rule to handle it (e.g. `\.ts$`).
	InputPatterns []string

	// OutputDir is the directory compiled catalogs are placed in.
	OutputDir string

	// OutputSuffix is appended to the input's base name to form the
	// output file name.
	OutputSuffix string

	// Command is the invocation template, one placeholder-bearing
	// element per argument. The first element is the program.
	Command []string

	// SourceEncoding tags the encoding of the translation sources.
	// It is rule metadata surfaced in status output; the stock command
	// template does not pass it to the tool.
	SourceEncoding string

	// Flags are the scheduling flags this rule is registered with.
	Flags RuleFlags
}

// NewCatalogRule returns the stock .ts → .qm rule over the given ordered
// inputs, writing catalogs into outputDir.
func NewCatalogRule(inputs []string, outputDir string) *CompileRule {
	return &CompileRule{
		Name:           "ReleaseCatalog",
		Inputs:         append([]string{}, inputs...),
		InputPatterns:  []string{`\.ts$`},
		OutputDir:      outputDir,
		OutputSuffix:   CatalogSuffix,
		Command:        []string{"{{tool}}", "-silent", "{{input}}", "-qm", "{{output}}"},
		SourceEncoding: "UTF-8",
		Flags:          RuleFlags{NoLink: true, TargetPredeps: true},
	}
}

// CanCompile checks if this rule handles the given input file.
func (r *CompileRule) CanCompile(input string) bool {
	return MatchesPattern(filepath.Base(input), r.InputPatterns...)
}

// OutputFor derives the output path for one input file: the input's base
// name with the rule's output suffix, placed in the rule's output
// directory.
func (r *CompileRule) OutputFor(input string) string {
	return filepath.Join(r.OutputDir, BaseName(input)+r.OutputSuffix)
}

// Outputs returns the output path for every configured input, in input
// order. Each input maps to exactly one output.
func (r *CompileRule) Outputs() []string {
	outputs := make([]string, 0, len(r.Inputs))
	for _, input := range r.Inputs {
		outputs = append(outputs, r.OutputFor(input))
	}
	return outputs
}

// ExpandCommand substitutes the rule's placeholders for one input file
// and returns the argv to execute.
func (r *CompileRule) ExpandCommand(tool, input, output string) ([]string, error) {
	if len(r.Command) == 0 {
		return nil, fmt.Errorf("no command configured for %s rule", r.Name)
	}

	args := make([]string, len(r.Command))
	for i, arg := range r.Command {
		arg = strings.ReplaceAll(arg, "{{tool}}", tool)
		arg = strings.ReplaceAll(arg, "{{input}}", input)
		arg = strings.ReplaceAll(arg, "{{output}}", output)
		arg = strings.ReplaceAll(arg, "{{base}}", BaseName(input))
		arg = strings.ReplaceAll(arg, "{{encoding}}", r.SourceEncoding)
		args[i] = arg
	}

	return args, nil
}
