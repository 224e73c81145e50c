// Package watch re-runs a recipe whenever the project's file tree changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/errgroup"

	"github.com/jig-dev/jig/config"
	"github.com/jig-dev/jig/internal"
	"github.com/jig-dev/jig/internal/ctxlog"
)

var (
	// KeyDebounceMS is how long to wait after the last change before
	// re-running, coalescing editor save bursts.
	KeyDebounceMS = config.NewKey("watch-debounce-ms", 400, "gte=0")
	// KeyIgnore lists directory names that are never watched.
	KeyIgnore = config.NewKey("watch-ignore",
		[]string{".git", ".hg", ".svn", "target", "node_modules"}, "")
)

// Configure registers the watch config keys. Call it from main before
// cmd.Main().
var Configure = sync.OnceFunc(func() {
	internal.CheckCanCustomize()
	config.AddKey(KeyDebounceMS)
	config.AddKey(KeyIgnore)
})

type Options struct {
	Debounce time.Duration
	// Ignore lists directory names to skip entirely.
	Ignore []string
	// ClearScreen wipes the terminal before each run.
	ClearScreen bool
}

// OptionsFromConfig builds watch options from the user config.
func OptionsFromConfig() Options {
	return Options{
		Debounce:    time.Duration(config.Get(KeyDebounceMS)) * time.Millisecond,
		Ignore:      config.Get(KeyIgnore),
		ClearScreen: true,
	}
}

// Watch runs `run` once, then again every time something under root changes,
// until the context is canceled. A failing run is reported but does not stop
// the watch.
func Watch(ctx context.Context, root string, opts Options, run func(context.Context) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}
	defer w.Close() //nolint:errcheck

	dirs, err := watchDirs(root, opts.Ignore)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		if err := w.Add(d); err != nil {
			return fmt.Errorf("failed to watch %s: %w", d, err)
		}
	}

	log := ctxlog.FromContext(ctx)
	trigger := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return collectEvents(ctx, w, opts, trigger)
	})
	g.Go(func() error {
		runOnce := func() {
			if opts.ClearScreen {
				clearScreen()
			}
			if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				fmt.Fprintln(os.Stderr, err.Error())
			}
		}
		runOnce()
		for {
			select {
			case <-ctx.Done():
				return nil
			case <-trigger:
			}
			// wait out the debounce window, restarting it on further changes
			t := time.NewTimer(opts.Debounce)
		debounce:
			for {
				select {
				case <-ctx.Done():
					t.Stop()
					return nil
				case <-trigger:
					if !t.Stop() {
						<-t.C
					}
					t.Reset(opts.Debounce)
				case <-t.C:
					break debounce
				}
			}
			log.Debug("file change detected, re-running")
			runOnce()
		}
	})
	return g.Wait()
}

func collectEvents(ctx context.Context, w *fsnotify.Watcher, opts Options, trigger chan<- struct{}) error {
	log := ctxlog.FromContext(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op == fsnotify.Chmod {
				continue
			}
			if shouldSkip(filepath.Base(ev.Name), opts.Ignore) {
				continue
			}
			// new directories need their own watches
			if ev.Has(fsnotify.Create) {
				if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
					if err := w.Add(ev.Name); err != nil {
						log.Warn("failed to watch new directory", "dir", ev.Name, "error", err)
					}
				}
			}
			select {
			case trigger <- struct{}{}:
			default:
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("file watcher error", "error", err)
		}
	}
}

// watchDirs enumerates the directories under root, skipping ignored ones.
func watchDirs(root string, ignore []string) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && shouldSkip(d.Name(), ignore) {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate directories under %s: %w", root, err)
	}
	return dirs, nil
}

func shouldSkip(name string, ignore []string) bool {
	return slices.Contains(ignore, name)
}

func clearScreen() {
	// wipe the screen and park the cursor at the top left
	fmt.Print("\x1b[2J\x1b[H")
}
