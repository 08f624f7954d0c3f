package transcat

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// compileCatalog runs one rule invocation for one input file.
//
// The invocation is skipped when the output already exists and is newer
// than the input, unless config.ForceRebuild is set. After the tool
// exits the output file must exist, or the invocation is treated as
// failed even on a zero exit status.
func compileCatalog(ctx context.Context, config *CompileConfig, rule *CompileRule, input string) (*CompileResult, error) {
	result := &CompileResult{
		Input:  input,
		Output: rule.OutputFor(input),
	}

	inputPath := resolvePath(config.ProjectDir, input)
	outputPath := resolvePath(config.ProjectDir, result.Output)

	if !config.ForceRebuild && !NeedsCompile(inputPath, outputPath) {
		result.Skipped = true
		result.Success = true
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		result.Error = errors.Wrapf(err, "cannot create output directory for %s", result.Output)
		return result, result.Error
	}

	args, err := rule.ExpandCommand(config.ToolPath, inputPath, outputPath)
	if err != nil {
		result.Error = err
		return result, result.Error
	}
	args = append(args, config.ExtraArgs...)

	if config.Verbose {
		result.OutputLines = append(result.OutputLines,
			fmt.Sprintf("Running: %s", strings.Join(args, " ")))
	}

	// Input and output paths are already resolved against ProjectDir,
	// so the tool runs in the process working directory.
	//nolint:gosec // Command comes from trusted rule configuration
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	cmd.Env = os.Environ()
	for key, value := range config.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	output, err := cmd.CombinedOutput()
	if trimmed := strings.TrimSpace(string(output)); trimmed != "" {
		result.OutputLines = append(result.OutputLines, strings.Split(trimmed, "\n")...)
	}

	if err != nil {
		result.Error = CompileError(rule.Name, result.OutputLines, err)
		return result, result.Error
	}

	// A zero exit status without the catalog on disk is still a failure.
	if _, statErr := os.Stat(outputPath); statErr != nil {
		result.Error = CompileError(rule.Name, result.OutputLines,
			fmt.Errorf("catalog not produced: %s", result.Output))
		return result, result.Error
	}

	result.Success = true
	return result, nil
}

// NeedsCompile reports whether the output file must be (re)built: it is
// missing, or older than the input.
//
// An unreadable input also counts as needing a compile; the subsequent
// tool invocation reports the real failure for that one input.
func NeedsCompile(input, output string) bool {
	outInfo, err := os.Stat(output)
	if err != nil {
		return true
	}

	inInfo, err := os.Stat(input)
	if err != nil {
		return true
	}

	return inInfo.ModTime().After(outInfo.ModTime())
}

// CleanOutputs removes the compiled catalog files of every registered
// rule. Outputs that do not exist are ignored.
func CleanOutputs(config *CompileConfig, registry *CompilerRegistry) error {
	for _, rule := range registry.Rules() {
		for _, output := range rule.Outputs() {
			path := resolvePath(config.ProjectDir, output)
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return errors.Wrapf(err, "cannot remove %s", output)
			}
		}
	}
	return nil
}

func resolvePath(projectDir, path string) string {
	if projectDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectDir, path)
}
