package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bastiangx/typo/pkg/dictionary"
	"github.com/bastiangx/typo/pkg/typo"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce groups the burst of events an editor or package manager
// produces for one save.
const DefaultDebounce = 250 * time.Millisecond

// LoadFunc builds a fresh instance from the files on disk.
type LoadFunc func(ctx context.Context) (*typo.Typo, error)

// FileLoader returns a LoadFunc reading affPath and dicPath. Unlike typo.New
// it reports unreadable or unparsable files as errors instead of falling back,
// so a truncated file never replaces a working dictionary.
func FileLoader(locale, affPath, dicPath string, opts typo.Options) LoadFunc {
	return func(ctx context.Context) (*typo.Typo, error) {
		aff, dic, err := dictionary.ReadFiles(ctx, affPath, dicPath)
		if err != nil {
			return nil, err
		}
		d, err := dictionary.LoadDictionary(aff, dic)
		if err != nil {
			return nil, err
		}
		return typo.NewFromDictionary(locale, d, opts), nil
	}
}

// Watch reloads the dictionary whenever one of paths changes, until ctx is
// done. Parent directories are watched rather than the files themselves so
// that atomic replace-by-rename is noticed. A failed reload keeps the current
// instance.
func (s *Server) Watch(ctx context.Context, paths []string, debounce time.Duration, load LoadFunc) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := fw.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			dirs[dir] = true
		}
	}
	if len(watched) == 0 {
		return nil
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !watched[filepath.Clean(event.Name)] {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			s.log.Debug("Dictionary file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(debounce)
			pending = true

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			s.log.Warnf("File watcher error: %v", err)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false
			s.reload(ctx, load)
		}
	}
}

func (s *Server) reload(ctx context.Context, load LoadFunc) {
	start := time.Now()
	t, err := load(ctx)
	if err != nil {
		s.log.Warnf("Reloading dictionary failed, keeping current one: %v", err)
		return
	}
	if t.DictionaryStats().IsFallback && !s.Typo().DictionaryStats().IsFallback {
		s.log.Warn("Reload produced the built-in word list, keeping current dictionary")
		return
	}
	s.Swap(t)
	stats := t.DictionaryStats()
	s.log.Info("Dictionary reloaded", "locale", t.Locale(), "words", stats.WordCount,
		"fallback", stats.IsFallback, "took", time.Since(start))
}
