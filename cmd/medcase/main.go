package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/evanschultz/medcase-visualizer/pkg/casefile"
	"github.com/evanschultz/medcase-visualizer/pkg/config"
	"github.com/evanschultz/medcase-visualizer/pkg/logger"
	"github.com/evanschultz/medcase-visualizer/pkg/mapping"
	"github.com/evanschultz/medcase-visualizer/pkg/models"
)

var (
	cfgFile     string
	modelPath   string
	notesPath   string
	summaryPath string
)

var rootCmd = &cobra.Command{
	Use:   "medcase",
	Short: "Explore a clinical case against a body-region model",
	Long: `medcase shows free-text clinical notes, a discharge summary with selectable
phrases, and a body-region model whose meshes are colored by the terms found
in the notes.

Selecting a summary phrase locates it in the notes. Selecting a body region
shows what was found there.`,
	SilenceUsage: true,
	RunE:         runView,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./medcase.yaml or ~/.medcase/medcase.yaml)")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "glTF/GLB body model (default: virtual body)")
	rootCmd.PersistentFlags().StringVar(&notesPath, "notes", "", "clinical notes file")
	rootCmd.PersistentFlags().StringVar(&summaryPath, "summary", "", "discharge summary file, one point per line")

	rootCmd.AddCommand(viewCmd, extractCmd, phrasesCmd, mappingsCmd, paintCmd, reportCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// env is what every command needs: config with flag overrides, logger,
// mapping table and the case.
type env struct {
	cfg   *config.Config
	log   *zap.Logger
	table *mapping.Table
	kase  models.Case
}

// setup loads everything a command needs. Only the interactive viewer keeps
// the default log file; other commands log to stderr unless log.file is set.
func setup(interactive bool) (*env, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if modelPath != "" {
		cfg.Model.Path = modelPath
	}
	if notesPath != "" {
		cfg.Case.NotesPath = notesPath
	}
	if summaryPath != "" {
		cfg.Case.SummaryPath = summaryPath
	}

	if !interactive && cfg.Log.File == config.DefaultLogFile {
		cfg.Log.File = "stderr"
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, err
	}

	table, err := cfg.Table()
	if err != nil {
		return nil, err
	}

	kase, err := casefile.Load(cfg.Case.Title, cfg.Case.NotesPath, cfg.Case.SummaryPath)
	if err != nil {
		return nil, err
	}

	log.Debug("configuration loaded",
		zap.String("model", cfg.Model.Path),
		zap.Int("mappings", table.Len()))

	return &env{cfg: cfg, log: log, table: table, kase: kase}, nil
}
