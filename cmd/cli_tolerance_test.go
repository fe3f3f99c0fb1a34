package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCLIArgs_RewritesCommonFlagSyntax(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"-message", "2 frangos", "json"})

	assert.Equal(t, []string{"--message", "2 frangos", "--json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesTypoFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"--mesage", "2 frangos"})

	assert.Equal(t, []string{"--message", "2 frangos"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesAliasFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"--msg", "2 frangos", "--catalogo", "catalogo.json"})

	assert.Equal(t, []string{"--message", "2 frangos", "--catalog", "catalogo.json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_RewritesCommandTypo(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"catalogg", "--catalog", "catalogo.json"})

	assert.Equal(t, []string{"catalog", "--catalog", "catalogo.json"}, args)
	assert.NotEmpty(t, notes)
}

func TestNormalizeCLIArgs_DoesNotRewriteCompletionPositionalArgs(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"completion", "zsh"})

	assert.Equal(t, []string{"completion", "zsh"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_DoesNotRewriteHelpCommandArgAsFlag(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"help", "catalog"})

	assert.Equal(t, []string{"help", "catalog"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_RespectsDoubleDashBoundary(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"check", "--", "file", "mensagens.txt"})

	assert.Equal(t, []string{"check", "--", "file", "mensagens.txt"}, args)
	assert.Empty(t, notes)
}

func TestNormalizeCLIArgs_LeavesKnownShorthandUntouched(t *testing.T) {
	args, notes := normalizeCLIArgs([]string{"-c", "catalogo.json", "-m", "2 frangos"})

	assert.Equal(t, []string{"-c", "catalogo.json", "-m", "2 frangos"}, args)
	assert.Empty(t, notes)
}

func TestExplainCLIError_UnknownFlagIncludesSuggestionAndExamples(t *testing.T) {
	msg := explainCLIError(errors.New("unknown flag: --mesage"))

	assert.Contains(t, msg, "Try `--message`.")
	assert.Contains(t, msg, "pedidozap --catalog catalogo.json --message")
}

func TestExplainCLIError_UnknownCommandIncludesSuggestionAndExamples(t *testing.T) {
	msg := explainCLIError(errors.New("unknown command \"catalogg\" for \"pedidozap\""))

	assert.Contains(t, msg, "Did you mean `catalog`?")
	assert.Contains(t, msg, "pedidozap catalog --catalog catalogo.json")
}
