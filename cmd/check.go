package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duartefontes/pedidozap/internal/display"
	"github.com/duartefontes/pedidozap/internal/logger"
	"github.com/duartefontes/pedidozap/internal/parser"
)

// messageSeparator splits a batch file into individual messages.
const messageSeparator = "---"

type checkMessageResult struct {
	Rank       int     `json:"rank"`
	Client     string  `json:"client,omitempty"`
	Items      int     `json:"items"`
	Total      float64 `json:"total"`
	NoteLines  int     `json:"noteLines"`
	Scheduled  string  `json:"scheduled,omitempty"`
	FirstItem  string  `json:"firstItem,omitempty"`
	RawPreview string  `json:"rawPreview"`
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Triage a batch of messages by parsed order value",
	Long: "Parse a file of messages separated by `---` lines and rank them by how\n" +
		"much of each message was recognized, so the busiest orders get typed first.",
	Example: `  pedidozap check --catalog catalogo.json --file mensagens.txt
  pedidozap check -c catalogo.json -f mensagens.txt --json`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringVarP(&flagFile, "file", "f", "", "File of messages separated by --- lines")
}

func runCheck(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if flagFile == "" {
		return invalidArgsError(
			"--file is required for check",
			"pedidozap check --catalog catalogo.json --file mensagens.txt",
		)
	}

	products, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(flagFile)
	if err != nil {
		return upstreamError("reading message", err)
	}

	messages := splitMessages(string(data))
	if len(messages) == 0 {
		return notFoundError(
			fmt.Sprintf("no messages found in %s", flagFile),
			"Separate messages with a `---` line.",
		)
	}

	results := make([]checkMessageResult, 0, len(messages))
	for _, msg := range messages {
		order := parser.Parse(msg, products)

		result := checkMessageResult{
			Client:     order.ClientName,
			Items:      len(order.Items),
			Total:      order.Total(),
			RawPreview: previewLine(msg),
		}
		if order.ScheduledTime != nil {
			result.Scheduled = order.ScheduledTime.Format("15:04")
		}
		if order.Notes != "" {
			result.NoteLines = len(strings.Split(order.Notes, "\n"))
		}
		if len(order.Items) > 0 {
			result.FirstItem = order.Items[0].Product.Name
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Total != results[j].Total {
			return results[i].Total > results[j].Total
		}
		return results[i].Items > results[j].Items
	})
	for i := range results {
		results[i].Rank = i + 1
	}

	if flagJSON {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(results)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d message(s) in %s\n\n", len(results), flagFile)
	for _, r := range results {
		client := r.Client
		if client == "" {
			client = "(sem nome)"
		}
		fmt.Fprintf(
			cmd.OutOrStdout(),
			"%d. %s — %d item(ns), %s\n   horário: %s | anotações: %d linha(s)\n   \"%s\"\n\n",
			r.Rank,
			client,
			r.Items,
			display.FormatPrice(r.Total),
			emptyIf(r.Scheduled, "-"),
			r.NoteLines,
			r.RawPreview,
		)
	}
	return nil
}

// splitMessages cuts the batch file on separator lines, dropping empty chunks.
func splitMessages(text string) []string {
	var messages []string
	var current []string

	flush := func() {
		chunk := strings.TrimSpace(strings.Join(current, "\n"))
		if chunk != "" {
			messages = append(messages, chunk)
		}
		current = current[:0]
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == messageSeparator {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return messages
}

func previewLine(msg string) string {
	for _, line := range strings.Split(msg, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			if runes := []rune(trimmed); len(runes) > 60 {
				return string(runes[:60]) + "…"
			}
			return trimmed
		}
	}
	return ""
}

func emptyIf(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
