// ABOUTME: Export command prints logged interactions for a given day as JSON
// ABOUTME: Reads the append-only JSONL interaction log, not live session state
package commands

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/jarvis-standalone/internal/auditlog"
)

var exportDate string

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export logged interactions as JSON",
		Long: `Export logged interactions from the append-only interaction log.

Examples:
  jarvis export
  jarvis export --date 2026-08-30`,
		RunE: runExport,
	}

	cmd.Flags().StringVar(&exportDate, "date", "", "Day to export (YYYY-MM-DD, default today)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	day := time.Now()
	if exportDate != "" {
		parsed, err := time.Parse("2006-01-02", exportDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q, want YYYY-MM-DD: %w", exportDate, err)
		}
		day = parsed
	}

	entries, err := auditlog.ReadDay("", day)
	if err != nil {
		return fmt.Errorf("reading interaction log: %w", err)
	}

	doc := map[string]interface{}{
		"exported_at":        time.Now(),
		"date":               day.Format("2006-01-02"),
		"total_interactions": len(entries),
		"interactions":       entries,
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling export: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
