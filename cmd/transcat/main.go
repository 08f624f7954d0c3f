package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	transcat "github.com/localekit/translation-catalog-go"
)

var (
	app = kingpin.New("transcat", "Compile translation-source files into the catalog files the application loads at runtime.")

	manifestPath = app.Flag("manifest", "Project manifest file.").Short('m').Default(transcat.DefaultManifestName).String()
	projectDir   = app.Flag("project-dir", "Directory relative manifest paths resolve against.").Short('C').Default(".").String()
	verbose      = app.Flag("verbose", "Log expanded tool command lines.").Short('v').Bool()
	quiet        = app.Flag("quiet", "Only log failures.").Short('q').Bool()

	compileCmd   = app.Command("compile", "Compile every stale translation catalog.")
	compileForce = compileCmd.Flag("force", "Recompile even when outputs are current.").Short('f').Bool()
	compileKeep  = compileCmd.Flag("keep-going", "Continue past failed inputs.").Short('k').Bool()

	checkCmd = app.Command("check", "Verify release-tool availability and manifest validity.")

	statusCmd  = app.Command("status", "Show per-catalog staleness.")
	statusJSON = statusCmd.Flag("json", "Emit the report as JSON.").Bool()

	cleanCmd = app.Command("clean", "Remove compiled catalog files.")
)

func main() {
	// .env is optional; real environments provide the variables directly.
	_ = godotenv.Load()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	switch {
	case *quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case *verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	manifest, err := loadManifest(*manifestPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load manifest")
	}

	config := &transcat.CompileConfig{
		ProjectDir:    *projectDir,
		ToolPath:      transcat.ResolveReleaseTool(transcat.ReleaseToolOverride(manifest)),
		Verbose:       *verbose,
		ForceRebuild:  *compileForce,
		StopOnFailure: !*compileKeep,
	}
	registry := transcat.NewCatalogRegistry(manifest)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch command {
	case compileCmd.FullCommand():
		if !runCompile(ctx, config, registry) {
			os.Exit(1)
		}
	case checkCmd.FullCommand():
		if !runCheck(config, manifest) {
			os.Exit(1)
		}
	case statusCmd.FullCommand():
		if err := runStatus(config, registry); err != nil {
			log.Fatal().Err(err).Msg("cannot write status report")
		}
	case cleanCmd.FullCommand():
		if err := transcat.CleanOutputs(config, registry); err != nil {
			log.Fatal().Err(err).Msg("clean failed")
		}
		log.Info().Msg("compiled catalogs removed")
	}
}

// loadManifest falls back to the stock project layout when the default
// manifest file is absent; an explicitly named manifest must exist.
func loadManifest(path string) (*transcat.Manifest, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && path == transcat.DefaultManifestName {
		log.Debug().Str("manifest", path).Msg("manifest not found, using defaults")
		return transcat.DefaultManifest(), nil
	}
	return transcat.LoadManifest(path)
}

func runCompile(ctx context.Context, config *transcat.CompileConfig, registry *transcat.CompilerRegistry) bool {
	results, err := registry.CompileAll(ctx, config)

	for _, result := range results {
		switch {
		case result.Skipped:
			log.Debug().Str("input", result.Input).Msg("up to date")
		case result.Success:
			log.Info().Str("input", result.Input).Str("output", result.Output).Msg("compiled")
		default:
			log.Error().Str("input", result.Input).Err(result.Error).Msg("compile failed")
		}
		if config.Verbose {
			for _, line := range result.OutputLines {
				log.Debug().Msg(line)
			}
		}
	}

	if err != nil {
		log.Error().Err(err).Msg("translation compile run failed")
		return false
	}
	return true
}

func runCheck(config *transcat.CompileConfig, manifest *transcat.Manifest) bool {
	log.Info().Str("tool", config.ToolPath).Msg("release tool resolved")
	log.Info().Int("translations", len(manifest.Translations)).
		Str("output_dir", manifest.OutputDir).
		Str("source_encoding", manifest.SourceEncoding).
		Msg("manifest valid")

	if err := transcat.CheckRequiredTools(transcat.ReleaseToolRequirements()); err != nil {
		log.Error().Err(err).Msg("release tool missing")
		return false
	}
	return true
}

func runStatus(config *transcat.CompileConfig, registry *transcat.CompilerRegistry) error {
	report := transcat.BuildStatus(config, registry)
	if *statusJSON {
		return report.WriteJSON(os.Stdout)
	}
	return report.WriteTable(os.Stdout)
}
