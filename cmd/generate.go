package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/namegen/internal/history"
	"github.com/abhisek/namegen/internal/namegen"
	"github.com/abhisek/namegen/internal/store"
	"github.com/abhisek/namegen/internal/ui/theme"
)

// uniqueAttempts bounds how many walks --unique may spend per requested name.
const uniqueAttempts = 20

type generateFunc func(ctx context.Context, src namegen.RandomSource, start string) (namegen.Result, error)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Train on a corpus and print generated names",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		count, _ := cmd.Flags().GetInt("count")
		start, _ := cmd.Flags().GetString("start")
		unique, _ := cmd.Flags().GetBool("unique")
		noHistory, _ := cmd.Flags().GetBool("no-history")
		if count < 1 {
			return fmt.Errorf("--count must be at least 1, got %d", count)
		}

		seed, _ := cmd.Flags().GetUint64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = uint64(time.Now().UnixNano())
		}

		m, corpusSize, err := loadModel(cmd)
		if err != nil {
			return err
		}

		generate := generateFunc(func(_ context.Context, src namegen.RandomSource, start string) (namegen.Result, error) {
			return m.Generate(src, start)
		})
		if !noHistory {
			dbPath, err := resolveDBPath(cmd)
			if err != nil {
				return fmt.Errorf("resolve database path: %w", err)
			}
			st, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open store: %w", err)
			}
			defer st.Close()

			rec := history.NewRecorder(m, st.EventRepo(), history.Run{Seed: seed, CorpusSize: corpusSize}, logger)
			generate = rec.Generate
			logger.Debug("recording generation history", slog.String("run_id", rec.RunID()))
		}

		src := namegen.NewSource(seed)
		out := cmd.OutOrStdout()
		seen := make(map[string]bool)
		produced, attempts := 0, 0
		for produced < count {
			if unique && attempts >= count*uniqueAttempts {
				break
			}
			attempts++

			res, err := generate(ctx, src, start)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			if unique && seen[res.Name] {
				continue
			}
			seen[res.Name] = true
			produced++

			fmt.Fprintln(out, formatResult(res))
		}

		if produced < count {
			fmt.Fprintln(cmd.ErrOrStderr(), theme.Hint.Render(
				fmt.Sprintf("only %d unique names after %d attempts", produced, attempts)))
		}
		fmt.Fprintln(cmd.ErrOrStderr(), theme.Hint.Render(fmt.Sprintf("seed %d", seed)))

		logger.Info("generation finished",
			slog.Uint64("seed", seed),
			slog.Int("names", produced),
			slog.Int("attempts", attempts),
		)
		return nil
	},
}

func init() {
	addModelFlags(generateCmd)
	f := generateCmd.Flags()
	f.IntP("count", "n", 10, "Number of names to generate")
	f.StringP("start", "s", "", "Prefix every name grows from")
	f.Uint64("seed", 0, "Random seed for reproducible output (default: time-based)")
	f.BoolP("unique", "u", false, "Skip names already printed in this run")
	f.Bool("no-history", false, "Do not record generated names in the database")
}

// formatResult renders a generated name, flagging walks that did not end
// cleanly.
func formatResult(res namegen.Result) string {
	name := theme.Name.Render(res.Name)
	if res.Name == "" {
		name = theme.Hint.Render("(empty)")
	}
	switch res.Outcome {
	case namegen.OutcomeNoMatch:
		return name + "  " + theme.Warn.Render("(no continuation)")
	case namegen.OutcomeStepCap:
		return name + "  " + theme.Warn.Render(fmt.Sprintf("(stopped after %d steps)", res.Steps))
	default:
		return name
	}
}
