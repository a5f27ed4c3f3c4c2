package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/typo/pkg/server"
	"github.com/bastiangx/typo/pkg/typo"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var noWatch bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the msgpack IPC server on stdin/stdout",
	Long: "Reads msgpack requests from stdin and writes responses to stdout.\n" +
		"Logs go to stderr. The dictionary is reloaded when its files change.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Do not reload the dictionary on file changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	aff, dic := resolveFiles()
	t := loadTypo(ctx, aff, dic)
	srv := server.NewServer(t, appConfig)

	if appConfig.Server.WatchFiles && !noWatch && dic != "" {
		load := server.FileLoader(locale, aff, dic, typo.Options{
			Debug:          debugMode,
			MaxSuggestions: appConfig.Server.MaxSuggestions,
		})
		go func() {
			if err := srv.Watch(ctx, []string{aff, dic}, server.DefaultDebounce, load); err != nil {
				log.Warnf("Dictionary watching disabled: %v", err)
			}
		}()
	}

	showStartupInfo(t, dic)

	go sigHandler(ctx)
	return srv.Start(ctx)
}

// sigHandler exits once a signal arrives, since the decoder may be blocked
// on stdin.
func sigHandler(ctx context.Context) {
	<-ctx.Done()
	log.Debug("Exiting...")
	os.Exit(0)
}

// showStartupInfo displays some basic info about the init process.
// println writes to stderr, stdout belongs to the IPC stream.
func showStartupInfo(t *typo.Typo, dic string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	stats := t.DictionaryStats()
	println("===========")
	println("   Typo    ")
	println("===========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("locale: %s", t.Locale())
	if stats.IsFallback {
		log.Info("dictionary: built-in word list")
	} else {
		log.Infof("dictionary: ( %s )", dic)
	}
	log.Infof("words: %d", stats.WordCount)
	log.Info("status: ready")
	println("===========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
