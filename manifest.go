package transcat

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

// DefaultManifestName is the manifest file looked up in the project root.
const DefaultManifestName = "transcat.toml"

// DefaultOutputDir is where compiled catalogs are placed when the
// manifest does not configure an output directory.
const DefaultOutputDir = "build/translations"

// Manifest is the hand-maintained project description: the release-tool
// override, the output directory, and the ordered translation-source
// file list. It is loaded once per run and immutable thereafter.
//
// Extending the project to a new locale means adding one entry to
// Translations; every entry maps to exactly one compiled catalog.
type Manifest struct {
	// Tool overrides release-tool resolution when non-empty.
	Tool string `toml:"tool"`

	// OutputDir is the directory compiled catalogs are written to.
	OutputDir string `toml:"output_dir"`

	// SourceEncoding tags the encoding of the translation sources.
	// Only the UTF-8 family is accepted.
	SourceEncoding string `toml:"source_encoding"`

	// Translations is the ordered list of translation-source files,
	// one per supported locale.
	Translations []string `toml:"translations"`
}

// DefaultManifest returns the stock project layout: the four shipped
// locales under translations/, compiled into build/translations.
func DefaultManifest() *Manifest {
	return &Manifest{
		OutputDir:      DefaultOutputDir,
		SourceEncoding: "UTF-8",
		Translations: []string{
			"translations/app_cs.ts",
			"translations/app_de.ts",
			"translations/app_ru.ts",
			"translations/app_uk.ts",
		},
	}
}

// LoadManifest reads and validates a TOML manifest file.
//
// Missing optional fields are filled with defaults. Input files are NOT
// checked for existence: per the error model, a missing source file
// fails its own compile step at invocation time, nothing earlier.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read manifest %s", path)
	}

	manifest := &Manifest{}
	if err := toml.Unmarshal(data, manifest); err != nil {
		return nil, errors.Wrapf(err, "cannot parse manifest %s", path)
	}

	manifest.applyDefaults()

	if err := manifest.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid manifest %s", path)
	}

	return manifest, nil
}

func (m *Manifest) applyDefaults() {
	if m.OutputDir == "" {
		m.OutputDir = DefaultOutputDir
	}
	if m.SourceEncoding == "" {
		m.SourceEncoding = "UTF-8"
	}
}

// Validate applies the structural rules on a loaded manifest.
func (m *Manifest) Validate() error {
	if len(m.Translations) == 0 {
		return fmt.Errorf("manifest lists no translation files")
	}

	seen := make(map[string]struct{}, len(m.Translations))
	for _, path := range m.Translations {
		if strings.TrimSpace(path) == "" {
			return fmt.Errorf("manifest lists an empty translation path")
		}
		if !MatchesExtension(path, SourceSuffix) {
			return fmt.Errorf("translation file %s does not have the %s extension", path, SourceSuffix)
		}
		if _, dup := seen[path]; dup {
			return fmt.Errorf("translation file %s is listed twice", path)
		}
		seen[path] = struct{}{}
	}

	switch strings.ToUpper(strings.ReplaceAll(m.SourceEncoding, "-", "")) {
	case "UTF8":
	default:
		return fmt.Errorf("unsupported source encoding %q (only the UTF-8 family is supported)", m.SourceEncoding)
	}

	return nil
}

// LocaleFromPath derives the locale tag from a translation file name.
//
// The convention is a trailing underscore-separated tag in the base
// name: "translations/app_ru.ts" yields "ru", "app_pt_BR.ts" yields
// "pt-BR". Trailing segments are tried longest-first so a compound tag
// wins over its last component. Returns the empty string when the name
// carries no recognizable tag.
func LocaleFromPath(path string) string {
	parts := strings.Split(BaseName(path), "_")

	for i := 1; i < len(parts); i++ {
		candidate := strings.Join(parts[i:], "-")
		if candidate == "" {
			continue
		}
		if tag, err := language.Parse(candidate); err == nil {
			return tag.String()
		}
	}
	return ""
}
