package cmd

import (
	"fmt"

	"github.com/bastiangx/typo/internal/cli"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dictionary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		aff, dic := resolveFiles()
		t := loadTypo(cmd.Context(), aff, dic)
		fmt.Fprint(cmd.OutOrStdout(), cli.FormatStats(t.Locale(), t.DictionaryStats()))
		if dic != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  file:           %s\n", dic)
		}
		if activeConfigPath != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  config:         %s\n", activeConfigPath)
		}
		return nil
	},
}
