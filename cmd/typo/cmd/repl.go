package cmd

import (
	"os"

	"github.com/bastiangx/typo/internal/cli"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var replLimit int

var replCmd = &cobra.Command{
	Use:     "repl",
	Aliases: []string{"cli"},
	Short:   "Check words interactively",
	Long: "Reads lines from stdin and prints a verdict for every word, with\n" +
		"suggestions for misspellings. Useful for testing dictionaries.",
	RunE: runRepl,
}

func init() {
	replCmd.Flags().IntVarP(&replLimit, "limit", "n", 0, "Number of suggestions per word (default from config)")
}

func runRepl(cmd *cobra.Command, args []string) error {
	log.SetReportTimestamp(false)

	aff, dic := resolveFiles()
	t := loadTypo(cmd.Context(), aff, dic)

	limit := replLimit
	if limit <= 0 {
		limit = appConfig.CLI.DefaultLimit
	}
	log.Debug("Input info:",
		"limit", limit,
		"maxWordLength", appConfig.Server.MaxWordLength,
		"timings", appConfig.CLI.ShowTimings)

	h := cli.NewInputHandler(t, limit, appConfig.Server.MaxWordLength, appConfig.CLI.ShowTimings, os.Stdin, os.Stdout)
	return h.Start()
}
