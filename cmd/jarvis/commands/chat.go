// ABOUTME: Interactive chat REPL against the dialogue engine
// ABOUTME: Slash commands cover clear, export, stats, and quit
package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/harper/jarvis-standalone/internal/models"
)

// NewChatCmd creates the chat command
func NewChatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Long: `Start an interactive chat session with JARVIS.

Simple messages (greetings, time, date, status, thanks) are answered
locally; anything else goes to the Groq backend with recent turns as
context.

Slash commands:
  /clear    forget the retained conversation history
  /export   print retained history as JSON
  /stats    print session statistics
  /quit     end the session`,
		RunE: runChat,
	}

	return cmd
}

func runChat(cmd *cobra.Command, args []string) error {
	engine, client, err := newEngine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !quiet {
		fmt.Fprintln(out, "JARVIS online. Type /quit to end the session.")
		if !client.Available() {
			fmt.Fprintf(out, "Note: model backend unavailable (%s); complex messages will get a degraded reply.\n",
				client.ConnectionError())
		}
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, "You: ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if done, err := runSlashCommand(cmd, engine, line); err != nil {
				return err
			} else if done {
				break
			}
			continue
		}

		resp, err := engine.Process(cmd.Context(), line)
		if err != nil {
			// Validation failure: no turn recorded, ask to rephrase.
			fmt.Fprintf(out, "JARVIS: I can't process that input (%s). Please rephrase.\n", models.KindOf(err))
			continue
		}

		fmt.Fprintf(out, "JARVIS: %s\n", resp.Text)
		if verbose {
			fmt.Fprintf(out, "  [intent=%s source=%s %.3fs error=%t]\n",
				resp.Metadata.Intent, resp.Metadata.Source, resp.Metadata.ProcessingTime, resp.Metadata.Error)
		}
	}

	return scanner.Err()
}

// runSlashCommand handles REPL commands. Returns done=true on /quit.
func runSlashCommand(cmd *cobra.Command, engine engineSurface, line string) (bool, error) {
	out := cmd.OutOrStdout()

	switch strings.ToLower(line) {
	case "/quit", "/exit":
		fmt.Fprintln(out, "JARVIS: Goodbye, sir.")
		return true, nil

	case "/clear":
		engine.Clear()
		fmt.Fprintln(out, "JARVIS: Conversation history cleared.")

	case "/export":
		doc := engine.ExportHistory()
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return false, fmt.Errorf("marshaling history: %w", err)
		}
		fmt.Fprintln(out, string(data))

	case "/stats":
		printStats(out, engine.Stats())

	default:
		fmt.Fprintf(out, "JARVIS: Unknown command %q. Available: /clear /export /stats /quit\n", line)
	}

	return false, nil
}

// engineSurface is the REPL's view of the engine, narrowed for tests.
type engineSurface interface {
	Clear()
	ExportHistory() models.ExportDocument
	Stats() models.SessionStats
}

// printStats renders session statistics for terminal display.
func printStats(out io.Writer, stats models.SessionStats) {
	fmt.Fprintf(out, "Session:          %s\n", stats.SessionID)
	fmt.Fprintf(out, "Uptime:           %s\n", formatUptime(time.Duration(stats.UptimeSeconds*float64(time.Second))))
	fmt.Fprintf(out, "Total queries:    %d\n", stats.TotalQueries)
	fmt.Fprintf(out, "Retained turns:   %d\n", stats.RetainedTurns)
	if stats.LastInteraction.IsZero() {
		fmt.Fprintf(out, "Last interaction: never\n")
	} else {
		fmt.Fprintf(out, "Last interaction: %s\n", formatTime(stats.LastInteraction))
	}
	status := "offline"
	if stats.BackendOnline {
		status = "online"
	}
	fmt.Fprintf(out, "Model backend:    %s\n", status)
}
