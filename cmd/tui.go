package cmd

import (
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/duartefontes/pedidozap/internal/display"
	"github.com/duartefontes/pedidozap/internal/logger"
	"github.com/duartefontes/pedidozap/internal/parser"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Review a parsed order interactively in the terminal",
	Example: `  pedidozap tui --catalog catalogo.json --file mensagem.txt
  pedidozap tui -c catalogo.json -m "boa tarde, quero 2 frangos assados"`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	registerMessageFlags(tuiCmd.Flags())
}

func runTUI(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	if !isInteractiveSession(cmd.InOrStdin(), cmd.OutOrStdout()) {
		return invalidArgsError(
			"`pedidozap tui` requires an interactive terminal",
			"Use `pedidozap --message \"...\" --json` in pipelines.",
		)
	}

	products, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}
	message, err := readMessage(cmd)
	if err != nil {
		return err
	}

	order := parser.Parse(message, products)
	if len(order.Items) == 0 && order.Notes == "" {
		return notFoundError(
			"nothing recognized in the message",
			"Check the catalog file covers the products mentioned.",
		)
	}

	model := newOrderTUIModel(order)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	final, err := program.Run()
	if err != nil {
		return internalError("running review session", err)
	}

	reviewed, ok := final.(orderTUIModel)
	if !ok || !reviewed.confirmed {
		return nil
	}

	if flagJSON {
		return display.PrintOrderJSON(cmd.OutOrStdout(), reviewed.order)
	}
	display.PrintOrder(cmd.OutOrStdout(), reviewed.order)
	return nil
}

func isInteractiveSession(stdin io.Reader, stdout io.Writer) bool {
	inputFile, ok := stdin.(*os.File)
	if !ok {
		return false
	}
	if !term.IsTerminal(int(inputFile.Fd())) {
		return false
	}
	return isTTY(stdout)
}
