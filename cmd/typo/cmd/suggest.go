package cmd

import (
	"fmt"

	"github.com/bastiangx/typo/internal/cli"
	"github.com/spf13/cobra"
)

var suggestLimit int

var suggestCmd = &cobra.Command{
	Use:   "suggest <word>",
	Short: "List corrections for a word",
	Args:  cobra.ExactArgs(1),
	RunE:  runSuggest,
}

func init() {
	suggestCmd.Flags().IntVarP(&suggestLimit, "limit", "n", 0, "Number of suggestions (default from config)")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	aff, dic := resolveFiles()
	t := loadTypo(cmd.Context(), aff, dic)

	limit := suggestLimit
	if limit <= 0 {
		limit = appConfig.CLI.DefaultLimit
	}
	words, err := t.SuggestN(args[0], limit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(words) == 0 {
		ok, _ := t.Check(args[0])
		fmt.Fprintln(out, cli.FormatVerdict(args[0], ok, nil))
		return nil
	}
	fmt.Fprint(out, cli.FormatList(words))
	return nil
}
