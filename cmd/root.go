package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/duartefontes/pedidozap/internal/catalog"
	"github.com/duartefontes/pedidozap/internal/display"
	"github.com/duartefontes/pedidozap/internal/logger"
	"github.com/duartefontes/pedidozap/internal/parser"
)

var (
	flagMessage    string
	flagFile       string
	flagCatalog    string
	flagCatalogURL string
	flagJSON       bool
	flagVerbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "pedidozap",
	Short: "Parse WhatsApp order messages against a product catalog",
	Long: "CLI tool that turns free-form WhatsApp order messages (Portuguese, typos\n" +
		"and all) into structured orders: client name, matched items, pickup time\n" +
		"and leftover notes. Needs a product catalog file or URL.\n\n" +
		"Agent-friendly mode: minor syntax issues are auto-corrected when intent is clear " +
		"(for example: -catalogo produtos.json, msg=\"2 frangos\", --mesage).",
	Example: `  pedidozap --catalog catalogo.json --message "2 frangos assados"
  pedidozap -c catalogo.json -f mensagem.txt --json
  cat mensagem.txt | pedidozap -c catalogo.json
  pedidozap catalog -c catalogo.toml
  pedidozap check -c catalogo.json -f mensagens.txt`,
	RunE: runParse,
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flagCatalog, "catalog", "c", "", "Catalog file (.json or .toml)")
	pf.StringVar(&flagCatalogURL, "catalog-url", "", "Catalog HTTP endpoint returning {\"products\": [...]}")
	pf.BoolVar(&flagJSON, "json", false, "Output as JSON")
	pf.BoolVar(&flagVerbose, "verbose", false, "Print parsing decisions to stderr")

	registerMessageFlags(rootCmd.Flags())
}

// Execute runs the root command.
func Execute() {
	os.Exit(runCLI(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func runCLI(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	resetCLIState()

	normalizedArgs, notes := normalizeCLIArgs(args)
	for _, note := range notes {
		fmt.Fprintf(stderr, "note: %s\n", note)
	}

	if len(normalizedArgs) == 0 {
		if err := printQuickStart(stdout, !isTTY(stdout)); err != nil {
			cliErr := classifyCLIError(err)
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
			return cliErr.ExitCode
		}
		return ExitSuccess
	}

	if shouldAutoJSON(normalizedArgs, isTTY(stdout)) {
		normalizedArgs = append(normalizedArgs, "--json")
	}

	setCommandIO(rootCmd, stdin, stdout, stderr)
	rootCmd.SetArgs(normalizedArgs)

	if err := rootCmd.Execute(); err != nil {
		cliErr := classifyCLIError(err)
		if hasJSONPreference(normalizedArgs) {
			if jerr := printCLIErrorJSON(stderr, cliErr); jerr != nil {
				fmt.Fprintln(stderr, formatCLIErrorText(classifyCLIError(jerr)))
				return ExitInternal
			}
		} else {
			fmt.Fprintln(stderr, formatCLIErrorText(cliErr))
		}
		return cliErr.ExitCode
	}
	return ExitSuccess
}

func setCommandIO(cmd *cobra.Command, stdin io.Reader, stdout, stderr io.Writer) {
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	for _, child := range cmd.Commands() {
		setCommandIO(child, stdin, stdout, stderr)
	}
}

func resetCLIState() {
	flagMessage = ""
	flagFile = ""
	flagCatalog = ""
	flagCatalogURL = ""
	flagJSON = false
	flagVerbose = false
}

func registerMessageFlags(f *pflag.FlagSet) {
	f.StringVarP(&flagMessage, "message", "m", "", "Message text to parse")
	f.StringVarP(&flagFile, "file", "f", "", "File containing the message text")
}

// hasPipedInput reports whether stdin carries data (not an interactive terminal).
func hasPipedInput(stdin io.Reader) bool {
	file, ok := stdin.(*os.File)
	if !ok {
		// Non-file stdin (tests, pipes wired programmatically) counts as input.
		return true
	}
	return !isTTY(file)
}

// resolveCatalog loads the product list from --catalog or --catalog-url.
func resolveCatalog(cmd *cobra.Command) ([]catalog.Product, error) {
	switch {
	case flagCatalog != "":
		products, err := catalog.LoadFile(flagCatalog)
		if err != nil {
			return nil, upstreamError("loading catalog", err)
		}
		logger.Debug("catalog: %d products from %s", len(products), flagCatalog)
		return products, nil
	case flagCatalogURL != "":
		client := catalog.NewClient(flagCatalogURL)
		products, err := client.Fetch(cmd.Context())
		if err != nil {
			return nil, upstreamError("fetching catalog", err)
		}
		logger.Debug("catalog: %d products from %s", len(products), flagCatalogURL)
		return products, nil
	default:
		return nil, invalidArgsError(
			"please provide --catalog FILE or --catalog-url URL",
			"pedidozap --catalog catalogo.json --message \"2 frangos assados\"",
			"pedidozap --catalog-url http://localhost:8080/products -m \"2 frangos\"",
		)
	}
}

// readMessage resolves the message text from --message, --file or stdin.
func readMessage(cmd *cobra.Command) (string, error) {
	if flagMessage != "" {
		return flagMessage, nil
	}
	if flagFile != "" {
		data, err := os.ReadFile(flagFile)
		if err != nil {
			return "", upstreamError("reading message", err)
		}
		return string(data), nil
	}
	if hasPipedInput(cmd.InOrStdin()) {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", upstreamError("reading message", err)
		}
		if strings.TrimSpace(string(data)) != "" {
			return string(data), nil
		}
	}
	return "", invalidArgsError(
		"please provide --message TEXT, --file PATH, or pipe the message on stdin",
		"pedidozap -c catalogo.json -m \"2 frangos assados\"",
		"cat mensagem.txt | pedidozap -c catalogo.json",
	)
}

func runParse(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	products, err := resolveCatalog(cmd)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd)
	if err != nil {
		return err
	}

	order := parser.Parse(message, products)

	if flagJSON {
		return display.PrintOrderJSON(cmd.OutOrStdout(), order)
	}
	display.PrintOrder(cmd.OutOrStdout(), order)
	if len(order.Items) == 0 && order.Notes != "" {
		display.PrintWarning(cmd.OutOrStdout(), "nenhum item reconhecido; revise as observações")
	}
	return nil
}
