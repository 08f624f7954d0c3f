package transcat

import (
	"context"
	"fmt"
	"path/filepath"
)

// CompilerRegistry manages the registration and scheduling of compile rules.
//
// The registry is the extra-compilers list of this package: rules are
// registered once at configuration time, then consumed for the lifetime
// of the run.
//
// # Usage
//
// Create a registry with the stock catalog rule from a manifest:
//
//	registry := transcat.NewCatalogRegistry(manifest)
//
// Or create an empty registry and register custom rules:
//
//	registry := &transcat.CompilerRegistry{}
//	registry.Register(myRule)
//
// # Rule Selection
//
// RuleFor extracts the base filename from an input path and returns the
// first registered rule whose InputPatterns match it.
//
// # Scheduling
//
// CompileAll runs rules flagged TargetPredeps before all others; within
// a rule, inputs run sequentially in list order. No parallelism is
// attempted between invocations.
//
// # Thread Safety
//
// CompilerRegistry is NOT thread-safe for registration. Register all
// rules before concurrent use; read operations are then safe.
type CompilerRegistry struct {
	rules []*CompileRule
}

// NewCatalogRegistry creates a registry with the manifest's catalog rule
// registered.
func NewCatalogRegistry(manifest *Manifest) *CompilerRegistry {
	registry := &CompilerRegistry{}
	registry.Register(NewCatalogRule(manifest.Translations, manifest.OutputDir))
	return registry
}

// Register adds a rule to the registry. Rules are consulted in
// registration order.
func (g *CompilerRegistry) Register(rule *CompileRule) {
	g.rules = append(g.rules, rule)
}

// Rules returns a copy of the registered rules.
func (g *CompilerRegistry) Rules() []*CompileRule {
	return append([]*CompileRule{}, g.rules...)
}

// RuleFor returns the rule handling the given input file, or an error if
// no registered rule matches. Only the base filename is used for matching.
func (g *CompilerRegistry) RuleFor(input string) (*CompileRule, error) {
	filename := filepath.Base(input)

	for _, rule := range g.rules {
		if rule.CanCompile(filename) {
			return rule, nil
		}
	}

	return nil, fmt.Errorf("no compile rule found for input file: %s", filename)
}

// LinkInputs returns the outputs of every rule not flagged NoLink, in
// registration order. Catalog rules are data-only, so for the stock
// registry this is empty.
func (g *CompilerRegistry) LinkInputs() []string {
	var outputs []string
	for _, rule := range g.rules {
		if rule.Flags.NoLink {
			continue
		}
		outputs = append(outputs, rule.Outputs()...)
	}
	return uniqueStrings(outputs)
}

// CompileAll compiles every input of every registered rule.
//
// Rules flagged TargetPredeps run first, then the rest, each preserving
// registration order; a rule's inputs run sequentially in list order.
// Per input the invocation is skipped when the existing output is
// already newer than the input, unless config.ForceRebuild is set.
//
// # Return Values
//
// Returns one CompileResult per processed input and the first error
// encountered (if any). Even when an error is returned, the results
// slice holds partial results for the inputs processed so far.
//
// # Error Handling
//
// A failed input only affects its own result. If config.StopOnFailure
// is set, processing stops after the first failure; otherwise every
// input is attempted and the first error is returned at the end.
//
// # Context Cancellation
//
// If the context is canceled, processing stops immediately, a result
// carrying the context error is appended, and the context error is
// returned.
func (g *CompilerRegistry) CompileAll(ctx context.Context, config *CompileConfig) ([]*CompileResult, error) {
	var results []*CompileResult
	var firstError error

	for _, rule := range g.scheduled() {
		for _, input := range rule.Inputs {
			if ctxErr := ctx.Err(); ctxErr != nil {
				if firstError == nil {
					firstError = ctxErr
				}
				results = append(results, &CompileResult{
					Input:   input,
					Success: false,
					Error:   ctxErr,
				})
				return results, firstError
			}

			result, err := compileCatalog(ctx, config, rule, input)
			if err != nil {
				if firstError == nil {
					firstError = err
				}
				if result == nil {
					result = &CompileResult{
						Input:   input,
						Success: false,
						Error:   err,
					}
				}
			}

			results = append(results, result)

			if !result.Success && config.StopOnFailure {
				return results, firstError
			}
		}
	}

	return results, firstError
}

// scheduled returns the rules in execution order: target-predeps rules
// first, then the rest, each group in registration order.
func (g *CompilerRegistry) scheduled() []*CompileRule {
	ordered := make([]*CompileRule, 0, len(g.rules))
	for _, rule := range g.rules {
		if rule.Flags.TargetPredeps {
			ordered = append(ordered, rule)
		}
	}
	for _, rule := range g.rules {
		if !rule.Flags.TargetPredeps {
			ordered = append(ordered, rule)
		}
	}
	return ordered
}
