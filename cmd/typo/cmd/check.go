package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/typo/internal/cli"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	checkFile  string
	checkLimit int
)

var checkCmd = &cobra.Command{
	Use:   "check [words...]",
	Short: "Check words or a text file",
	Long: "Prints a verdict for every word given as arguments, read from --file,\n" +
		"or read from stdin when neither is given. Exits with status 1 when any\n" +
		"word is misspelled.",
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFile, "file", "f", "", "Text file to check ('-' for stdin)")
	checkCmd.Flags().IntVarP(&checkLimit, "limit", "n", 0, "Number of suggestions per word (default from config)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	text, err := checkInput(args)
	if err != nil {
		return err
	}

	aff, dic := resolveFiles()
	t := loadTypo(cmd.Context(), aff, dic)

	limit := checkLimit
	if limit <= 0 {
		limit = appConfig.CLI.DefaultLimit
	}
	h := cli.NewInputHandler(t, limit, appConfig.Server.MaxWordLength, false, nil, cmd.OutOrStdout())

	misspelled := 0
	for _, line := range strings.Split(text, "\n") {
		misspelled += h.CheckText(line)
	}
	log.Debugf("%d misspelled words", misspelled)
	if misspelled > 0 {
		return errMisspelled
	}
	return nil
}

func checkInput(args []string) (string, error) {
	switch {
	case checkFile == "-" || (checkFile == "" && len(args) == 0):
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	case checkFile != "":
		data, err := os.ReadFile(checkFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", checkFile, err)
		}
		return string(data), nil
	default:
		return strings.Join(args, " "), nil
	}
}
