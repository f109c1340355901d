// ABOUTME: Stats command summarizes a day of logged interactions
// ABOUTME: Intent and source distributions plus average processing time
package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/jarvis-standalone/internal/auditlog"
)

var statsDate string

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize logged interactions",
		Long: `Summarize a day of logged interactions: totals, intent and source
distributions, and average processing time.`,
		RunE: runStats,
	}

	cmd.Flags().StringVar(&statsDate, "date", "", "Day to summarize (YYYY-MM-DD, default today)")

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if statsDate != "" {
		parsed, err := time.Parse("2006-01-02", statsDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want YYYY-MM-DD: %w", statsDate, err)
		}
		day = parsed
	}

	entries, err := auditlog.ReadDay("", day)
	if err != nil {
		return fmt.Errorf("reading interaction log: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Date:               %s\n", day.Format("2006-01-02"))
	fmt.Fprintf(out, "Total interactions: %d\n", len(entries))
	if len(entries) == 0 {
		return nil
	}

	summary := auditlog.Summarize(entries)

	fmt.Fprintln(out, "Intents:")
	for _, count := range summary.Intents {
		fmt.Fprintf(out, "  %-10s %d\n", count.Label, count.Count)
	}
	fmt.Fprintln(out, "Sources:")
	for _, count := range summary.Sources {
		fmt.Fprintf(out, "  %-10s %d\n", count.Label, count.Count)
	}
	fmt.Fprintf(out, "Avg processing:     %.3fs\n", summary.AvgProcessing)
	fmt.Fprintf(out, "Sessions:           %d\n", summary.Sessions)

	return nil
}
