package cmd

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/abhisek/namegen/internal/corpus"
	"github.com/abhisek/namegen/internal/logging"
	"github.com/abhisek/namegen/internal/namegen"
	"github.com/abhisek/namegen/internal/store"
)

// logger is configured from the persistent flags before any command runs.
var logger = logging.New()

var rootCmd = &cobra.Command{
	Use:   "namegen",
	Short: "Generate names from a corpus of examples",
	Long: "namegen learns which runs of characters follow which in a list of names " +
		"and samples new, natural-looking names from that distribution.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env file is fine.
		_ = godotenv.Load()
		return setupLogger(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides NAMEGEN_DB env var)")
	pf.BoolP("verbose", "v", false, "Log training and generation details")
	pf.String("log-format", string(logging.FormatText), "Log format: text or json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

func setupLogger(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	formatName, _ := cmd.Flags().GetString("log-format")

	format, err := logging.ParseFormat(formatName)
	if err != nil {
		return err
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.New(
		logging.WithLevel(level),
		logging.WithFormat(format),
		logging.WithOutput(cmd.ErrOrStderr()),
	)
	return nil
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then NAMEGEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// addModelFlags registers the corpus and model flags shared by commands that
// train a distribution.
func addModelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("corpus", "c", "", "Corpus file with one example per entry (overrides NAMEGEN_CORPUS)")
	f.String("separator", "", `Entry separator: a single character or \n, \t, \r (default \n)`)
	f.Int("max-chunk", 0, "Context and continuation window in characters (default 8)")
	f.Int("min-length", 0, "Shortest accepted name (default 3)")
	f.String("window", "", "Lookup context for long names: skip-head or tail")
}

// loadModel resolves configuration from env and flags, reads the corpus and
// trains a model on it. It also returns the number of training examples.
func loadModel(cmd *cobra.Command) (*namegen.Model, int, error) {
	cfg, err := namegen.ConfigFromEnv()
	if err != nil {
		return nil, 0, err
	}
	corpusCfg, err := corpus.ConfigFromEnv()
	if err != nil {
		return nil, 0, err
	}

	f := cmd.Flags()
	if f.Changed("corpus") {
		corpusCfg.Path, _ = f.GetString("corpus")
	}
	if f.Changed("separator") {
		corpusCfg.Separator, _ = f.GetString("separator")
	}
	if f.Changed("max-chunk") {
		cfg.MaxChunkSize, _ = f.GetInt("max-chunk")
	}
	if f.Changed("min-length") {
		cfg.MinLength, _ = f.GetInt("min-length")
	}
	if f.Changed("window") {
		w, _ := f.GetString("window")
		if err := cfg.Window.UnmarshalText([]byte(w)); err != nil {
			return nil, 0, err
		}
	}

	load, err := corpusCfg.Source()
	if err != nil {
		return nil, 0, err
	}
	m, err := namegen.NewModel(cfg, namegen.WithLogger(logger))
	if err != nil {
		return nil, 0, err
	}

	var examples int
	_, err = m.TrainFrom(func() ([]string, error) {
		names, err := load()
		examples = len(names)
		return names, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("train: %w", err)
	}
	return m, examples, nil
}
