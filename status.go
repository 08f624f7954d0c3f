package transcat

import (
	"io"
	"os"

	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// StatusEntry describes one configured translation file and the state of
// its compiled catalog.
type StatusEntry struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Locale string `json:"locale,omitempty"`
	Rule   string `json:"rule"`
	Exists bool   `json:"exists"`
	Stale  bool   `json:"stale"`
}

// StatusReport is the staleness view over every registered rule, in
// scheduling order.
type StatusReport struct {
	Tool     string        `json:"tool"`
	Encoding string        `json:"source_encoding,omitempty"`
	Entries  []StatusEntry `json:"entries"`
}

// BuildStatus inspects the filesystem and reports, per configured input,
// whether its catalog exists and whether it is stale. Inputs that are
// themselves missing show up as stale; the failure itself only surfaces
// when compiling (see NeedsCompile).
func BuildStatus(config *CompileConfig, registry *CompilerRegistry) *StatusReport {
	report := &StatusReport{Tool: config.ToolPath}

	for _, rule := range registry.Rules() {
		if report.Encoding == "" {
			report.Encoding = rule.SourceEncoding
		}
		for _, input := range rule.Inputs {
			output := rule.OutputFor(input)
			outputPath := resolvePath(config.ProjectDir, output)

			_, statErr := os.Stat(outputPath)

			report.Entries = append(report.Entries, StatusEntry{
				Input:  input,
				Output: output,
				Locale: LocaleFromPath(input),
				Rule:   rule.Name,
				Exists: statErr == nil,
				Stale:  NeedsCompile(resolvePath(config.ProjectDir, input), outputPath),
			})
		}
	}

	return report
}

// Stale returns the inputs whose catalogs need compiling.
func (r *StatusReport) Stale() []string {
	var stale []string
	for _, entry := range r.Entries {
		if entry.Stale {
			stale = append(stale, entry.Input)
		}
	}
	return stale
}

// WriteTable renders the report as a text table.
func (r *StatusReport) WriteTable(w io.Writer) error {
	table := tablewriter.NewTable(w)
	table.Header([]string{"Input", "Locale", "Output", "State"})

	for _, entry := range r.Entries {
		state := "up to date"
		if entry.Stale {
			state = "stale"
		}
		if err := table.Append([]string{entry.Input, entry.Locale, entry.Output, state}); err != nil {
			return errors.Wrap(err, "cannot append status row")
		}
	}

	return errors.Wrap(table.Render(), "cannot render status table")
}

// WriteJSON renders the report as indented JSON.
func (r *StatusReport) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "cannot marshal status report")
	}

	_, err = w.Write(append(data, '\n'))
	return err
}
