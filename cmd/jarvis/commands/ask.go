// ABOUTME: One-shot query command: process a single message and print the reply
// ABOUTME: Reads the message from args or stdin
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harper/jarvis-standalone/internal/models"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask [message]",
		Short: "Ask JARVIS a single question",
		Long: `Process a single message and print the reply.

Examples:
  jarvis ask "What time is it?"
  echo "Explain quantum computing" | jarvis ask`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = args[0]
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = string(data)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("no message provided")
	}

	engine, _, err := newEngine()
	if err != nil {
		return err
	}

	resp, err := engine.Process(cmd.Context(), text)
	if err != nil {
		return fmt.Errorf("invalid input (%s): %w", models.KindOf(err), err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, resp.Text)
	if verbose {
		fmt.Fprintf(out, "[intent=%s source=%s %.3fs error=%t]\n",
			resp.Metadata.Intent, resp.Metadata.Source, resp.Metadata.ProcessingTime, resp.Metadata.Error)
	}

	return nil
}
