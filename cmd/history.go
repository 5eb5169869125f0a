package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/namegen/internal/namegen"
	"github.com/abhisek/namegen/internal/store"
	"github.com/abhisek/namegen/internal/ui/theme"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect previously generated names",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recently generated names",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		runID, _ := cmd.Flags().GetString("run")
		outcome, _ := cmd.Flags().GetString("outcome")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryGenerations(cmd.Context(), store.QueryOpts{
			Limit:   limit,
			RunID:   runID,
			Outcome: outcome,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No generated names found.")
			return nil
		}

		// Header.
		fmt.Fprintf(out, "%-5s  %-19s  %-8s  %-9s  %-5s  %s\n",
			"ID", "Timestamp", "Run", "Outcome", "Steps", "Name")
		fmt.Fprintln(out, theme.Rule(72))

		for _, e := range events {
			fmt.Fprintf(out, "%-5d  %-19s  %-8s  %s  %-5d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				shortRunID(e.RunID),
				renderOutcome(e.Outcome),
				e.Steps,
				e.Name,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View one generated name with the parameters that produced it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetGeneration(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:          %d\n", e.ID)
		fmt.Fprintf(out, "Time:        %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Run:         %s\n", e.RunID)
		fmt.Fprintf(out, "Seed:        %d\n", e.Seed)
		fmt.Fprintf(out, "Name:        %s\n", theme.Name.Render(e.Name))
		fmt.Fprintf(out, "Start:       %q\n", e.Start)
		fmt.Fprintf(out, "Outcome:     %s\n", renderOutcome(e.Outcome))
		fmt.Fprintf(out, "Steps:       %d\n", e.Steps)
		fmt.Fprintf(out, "Min length:  %d\n", e.MinLength)
		fmt.Fprintf(out, "Window size: %d (%s)\n", e.MaxChunkSize, e.Window)
		fmt.Fprintf(out, "Corpus size: %d\n", e.CorpusSize)
		return nil
	},
}

func init() {
	historyListCmd.Flags().Int("limit", 20, "Maximum number of names to show")
	historyListCmd.Flags().String("run", "", "Only show names from this run ID")
	historyListCmd.Flags().String("outcome", "", "Only show names with this outcome (ended, no_match, step_cap)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func renderOutcome(outcome string) string {
	padded := fmt.Sprintf("%-9s", outcome)
	if namegen.Outcome(outcome) == namegen.OutcomeEnded {
		return theme.Ended.Render(padded)
	}
	return theme.Warn.Render(padded)
}
