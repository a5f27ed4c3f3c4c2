package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bastiangx/typo/internal/logger"
	"github.com/bastiangx/typo/internal/utils"
	"github.com/bastiangx/typo/pkg/config"
	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/bastiangx/typo/pkg/typo"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	affPath    string
	dicPath    string
	dataDir    string
	locale     string
	configPath string
	debugMode  bool

	appConfig        = config.DefaultConfig()
	activeConfigPath string
)

var rootCmd = &cobra.Command{
	Use:   "typo",
	Short: "Hunspell compatible spell checker",
	Long: "Checks and corrects words against Hunspell .aff/.dic dictionaries.\n" +
		"Runs as a msgpack IPC server for editors, or as a CLI for quick checks.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// errMisspelled makes `typo check` exit with status 1.
var errMisspelled = errors.New("misspelled words found")

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExitCode maps an Execute error to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, errMisspelled) {
		log.Error(err)
	}
	return 1
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&affPath, "aff", "", "Affix file (.aff); optional with --dic")
	f.StringVar(&dicPath, "dic", "", "Word list file (.dic); overrides --data/--locale lookup")
	f.StringVar(&dataDir, "data", "", "Directory containing <locale>.aff/.dic pairs (default from config)")
	f.StringVar(&locale, "locale", "en_US", "Dictionary locale")
	f.StringVar(&configPath, "config", "", "Config file (default "+config.FileName+" in the user config dir)")
	f.BoolVarP(&debugMode, "debug", "d", false, "Toggle debug mode")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(replCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup applies logging and config before any subcommand. Flags given on the
// command line win over config values.
func setup(cmd *cobra.Command, args []string) error {
	logger.Setup(debugMode)

	cfg, used, err := config.LoadConfigWithPriority(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	appConfig, activeConfigPath = cfg, used
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(used))

	if !cmd.Flags().Changed("locale") && cfg.Dict.Locale != "" {
		locale = cfg.Dict.Locale
	}
	if !cmd.Flags().Changed("data") {
		dataDir = cfg.Dict.DataDir
	}
	return nil
}

// resolveFiles returns the .aff/.dic pair to load. Empty paths mean the
// built-in fallback word list.
func resolveFiles() (string, string) {
	if dicPath != "" {
		return affPath, dicPath
	}

	dir := dataDir
	if resolver, err := utils.NewPathResolver(); err == nil {
		if resolved, err := resolver.GetDataDir(dataDir); err == nil {
			dir = resolved
		}
	} else {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}
	log.Debugf("Using data dir at: %s", dir)

	aff, dic, err := dictionary.FindDictionary(dir, locale)
	if err != nil {
		log.Warnf("No dictionary for %s in %s, using built-in word list", locale, dir)
		return "", ""
	}
	return aff, dic
}

// loadTypo reads the files and builds an instance. Missing or unreadable
// files fall back to the built-in word list.
func loadTypo(ctx context.Context, aff, dic string) *typo.Typo {
	opts := typo.Options{
		Debug:          debugMode,
		MaxSuggestions: appConfig.Server.MaxSuggestions,
	}
	if dic == "" {
		return typo.New(locale, "", "", opts)
	}
	affText, dicText, err := dictionary.ReadFiles(ctx, aff, dic)
	if err != nil {
		log.Warnf("Failed to read dictionary files: %v", err)
		return typo.New(locale, "", "", opts)
	}
	return typo.New(locale, affText, dicText, opts)
}
