package transcat

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// DefaultReleaseTool is the standard name of the catalog release tool.
const DefaultReleaseTool = "lrelease"

// unixFallbackTool is the distribution-specific name some unix packagings
// install instead of the plain tool name.
const unixFallbackTool = "lrelease-qt5"

// ResolveReleaseTool determines the release-tool executable to invoke.
//
// Resolution order:
//  1. A non-empty override wins and is returned verbatim.
//  2. Otherwise the default name is used.
//  3. On unix-like platforms, if the default name is not on PATH, the
//     distribution-specific fallback name is substituted.
//
// The result is a name or path to hand to the command runner, not a
// verified executable: absence of a working tool surfaces later as a
// failed invocation, never here. Resolve once per run and treat the
// result as immutable.
func ResolveReleaseTool(override string) string {
	if override != "" {
		return override
	}

	tool := DefaultReleaseTool
	if runtime.GOOS != "windows" {
		if _, err := exec.LookPath(tool); err != nil {
			tool = unixFallbackTool
		}
	}
	return tool
}

// ReleaseToolEnv is the environment variable overriding release-tool
// resolution, mirroring the build-system variable the tool name is
// traditionally configured through.
const ReleaseToolEnv = "LRELEASE"

// ReleaseToolOverride returns the configured tool override for a
// project: the environment variable wins over the manifest's tool
// entry. The result feeds ResolveReleaseTool.
func ReleaseToolOverride(manifest *Manifest) string {
	if override := os.Getenv(ReleaseToolEnv); override != "" {
		return override
	}
	return manifest.Tool
}

// ReleaseToolRequirements returns the tool dependencies of the catalog
// compile rule, for diagnostic probing by the check command.
func ReleaseToolRequirements() []ToolRequirement {
	return []ToolRequirement{
		{
			Name:         DefaultReleaseTool,
			Alternatives: []string{unixFallbackTool},
			Purpose:      "translation catalog release tool",
		},
	}
}

// ToolRequirement describes an external tool dependency.
//
// This structure allows a rule to declare:
//   - Required tools (must be available)
//   - Optional tools (nice to have, but not required)
//   - Alternative tools (any one of several names satisfies the requirement)
type ToolRequirement struct {
	// Name is the primary tool binary name (e.g., "lrelease").
	Name string

	// Alternatives are alternative tool names that can satisfy this requirement.
	// If any tool in Alternatives is found, the requirement is satisfied.
	Alternatives []string

	// Optional indicates this tool won't cause an error if missing.
	Optional bool

	// Purpose is a human-readable description of why this tool is needed.
	Purpose string
}

// CheckToolAvailable checks if a tool is available in the system PATH.
//
// This is a simple wrapper around exec.LookPath that provides a
// consistent error message. It is diagnostic only: compile runs never
// pre-validate the tool and rely on invocation failure instead.
func CheckToolAvailable(tool string) error {
	_, err := exec.LookPath(tool)
	if err != nil {
		return fmt.Errorf("%s not found in PATH", tool)
	}
	return nil
}

// Check verifies the requirement: the primary name is probed first,
// then each alternative in order. Optional requirements never fail.
func (r ToolRequirement) Check() error {
	if CheckToolAvailable(r.Name) == nil {
		return nil
	}
	for _, alt := range r.Alternatives {
		if CheckToolAvailable(alt) == nil {
			return nil
		}
	}
	if r.Optional {
		return nil
	}

	if r.Purpose != "" {
		return fmt.Errorf("%s (%s) not found in PATH", r.Name, r.Purpose)
	}
	return fmt.Errorf("%s not found in PATH", r.Name)
}

// CheckRequiredTools verifies all requirements, reporting every missing
// required tool in a single error.
func CheckRequiredTools(requirements []ToolRequirement) error {
	var missing []string
	for _, req := range requirements {
		if err := req.Check(); err != nil {
			missing = append(missing, err.Error())
		}
	}

	switch len(missing) {
	case 0:
		return nil
	case 1:
		return fmt.Errorf("%s", missing[0])
	default:
		return fmt.Errorf("missing required tools: %s", strings.Join(missing, "; "))
	}
}
