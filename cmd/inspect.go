package cmd

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/namegen/internal/namegen"
	"github.com/abhisek/namegen/internal/ui/theme"
)

// startKeyAlias selects the Start bucket on the command line.
const startKeyAlias = "^"

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Train on a corpus and summarize the learned distribution",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, _ := cmd.Flags().GetStringSlice("key")
		top, _ := cmd.Flags().GetInt("top")

		m, corpusSize, err := loadModel(cmd)
		if err != nil {
			return err
		}
		d := m.Distribution()
		out := cmd.OutOrStdout()

		printSummary(out, d, corpusSize)

		if top > 0 {
			fmt.Fprintln(out)
			printTopKeys(out, d, top)
		}

		for _, key := range keys {
			fmt.Fprintln(out)
			printBucket(out, d, key)
		}
		return nil
	},
}

func init() {
	addModelFlags(inspectCmd)
	f := inspectCmd.Flags()
	f.StringSliceP("key", "k", nil, `Show the continuations of a context key ("^" for the start bucket); repeatable`)
	f.Int("top", 0, "List the N context keys with the most continuations")
}

func printSummary(out io.Writer, d *namegen.Distribution, corpusSize int) {
	st := d.Stats()
	fmt.Fprintln(out, theme.Title.Render("Distribution"))
	fmt.Fprintln(out, theme.Rule(40))
	rows := []struct {
		label string
		value int
	}{
		{"Examples", corpusSize},
		{"Window size", d.MaxChunkSize()},
		{"Context keys", st.Keys},
		{"Continuations", st.Continuations},
		{"Start bucket", st.StartBucket},
		{"Longest key", st.LongestKey},
	}
	for _, r := range rows {
		fmt.Fprintf(out, "%s %d\n", theme.Label.Render(fmt.Sprintf("%-15s", r.label+":")), r.value)
	}
}

func printTopKeys(out io.Writer, d *namegen.Distribution, n int) {
	keys := d.Keys()
	sizes := make(map[string]int, len(keys))
	for _, k := range keys {
		sizes[k] = len(d.Continuations(k))
	}
	// Stable sort keeps first-seen order among equal sizes.
	slices.SortStableFunc(keys, func(a, b string) int { return sizes[b] - sizes[a] })
	if len(keys) > n {
		keys = keys[:n]
	}

	fmt.Fprintf(out, "%-12s  %s\n", "Key", "Continuations")
	fmt.Fprintln(out, theme.Rule(40))
	for _, k := range keys {
		fmt.Fprintf(out, "%s  %d\n", theme.Key.Render(fmt.Sprintf("%-12s", displayKey(k))), sizes[k])
	}
}

func printBucket(out io.Writer, d *namegen.Distribution, key string) {
	lookup := namegen.Fold(key)
	if key == startKeyAlias {
		lookup = namegen.Start
	}
	if !d.Has(lookup) {
		fmt.Fprintf(out, "%s %s\n", theme.Key.Render(key), theme.Hint.Render("is not a context key"))
		return
	}

	bucket := d.Continuations(lookup)
	counts, order := tally(bucket)

	fmt.Fprintf(out, "%s %s\n", theme.Key.Render(displayKey(lookup)),
		theme.Hint.Render(fmt.Sprintf("%d continuations, %d distinct", len(bucket), len(order))))
	for _, c := range order {
		share := float64(counts[c]) / float64(len(bucket)) * 100
		fmt.Fprintf(out, "  %-14s %5d  %5.1f%%\n", displayContinuation(c), counts[c], share)
	}
}

// tally counts duplicates, ordering distinct continuations by count and then
// by first appearance.
func tally(bucket []string) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string
	for _, c := range bucket {
		if counts[c] == 0 {
			order = append(order, c)
		}
		counts[c]++
	}
	slices.SortStableFunc(order, func(a, b string) int { return counts[b] - counts[a] })
	return counts, order
}

func displayKey(key string) string {
	if key == namegen.Start {
		return startKeyAlias
	}
	return key
}

// displayContinuation shows the End marker as "$".
func displayContinuation(c string) string {
	if namegen.IsEnded(c) {
		return strings.TrimSuffix(c, namegen.End) + "$"
	}
	return c
}
