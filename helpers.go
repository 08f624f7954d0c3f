package transcat

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// MatchesPattern checks if a filename matches any of the given regex patterns.
//
// Rule implementations use this to decide whether they handle a given
// input file. Invalid patterns are silently skipped.
func MatchesPattern(filename string, patterns ...string) bool {
	for _, pattern := range patterns {
		if matched, _ := regexp.MatchString(pattern, filename); matched {
			return true
		}
	}
	return false
}

// MatchesExtension checks if a filename has any of the given extensions.
//
// The check is case-insensitive and works with or without a leading dot.
func MatchesExtension(filename string, extensions ...string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(filename), strings.ToLower(ext)) {
			return true
		}
	}
	return false
}

// BaseName returns the base name of a path with its extension removed.
//
// This is the name component a compile rule derives its output file name
// from: for "translations/app_ru.ts" it returns "app_ru".
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CompileError creates a standardized compile error with output context.
//
// The formatted message contains the rule name, the underlying error (if
// any), and the full captured tool output (if any):
//
//	ReleaseCatalog compile failed: exit status 1
//
//	Tool output:
//	... output lines ...
func CompileError(rule string, output []string, err error) error {
	outputStr := strings.TrimSpace(strings.Join(output, "\n"))

	var prefix string
	if err != nil {
		prefix = fmt.Sprintf("%s compile failed: %v", rule, err)
	} else {
		prefix = fmt.Sprintf("%s compile failed", rule)
	}

	if outputStr != "" {
		return fmt.Errorf("%s\n\nTool output:\n%s", prefix, outputStr)
	}

	return fmt.Errorf("%s", prefix)
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{})
	var result []string

	for _, value := range values {
		if value == "" {
			continue
		}
		if _, ok := seen[value]; ok {
			continue
		}
		seen[value] = struct{}{}
		result = append(result, value)
	}

	return result
}
