package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/npillmayer/latinga"
	"github.com/npillmayer/latinga/internal/tracing"
	"github.com/spf13/cobra"
)

// debounceDefault is the quiet period after the last event for a file
// before it is converted.
const debounceDefault = 300 * time.Millisecond

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Convert files in a directory whenever they change",
	Long: `Watches a directory and converts every file which is created or written
to, once writes have settled. --glob selects files by name (default "*.txt").
Output files, recognized by their suffix, are not converted again.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := opts.complete(cmd); err != nil {
			return err
		}
		tb, err := opts.tables()
		if err != nil {
			return err
		}
		e, err := tb.newEngine()
		if err != nil {
			return err
		}
		defer e.Dispose()
		w := newDirWatcher(args[0], e, &opts, cmd.ErrOrStderr())
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintf(cmd.ErrOrStderr(), "watching %s, press Ctrl-C to stop\n", args[0])
		return w.Run(ctx)
	},
}

// dirWatcher converts files of a directory on change.
type dirWatcher struct {
	dir       string
	pattern   string
	suffix    string
	overwrite bool
	engine    *latinga.Engine
	debounce  time.Duration
	stderr    io.Writer
	converted func(path string) // called after a file has been converted
}

func newDirWatcher(dir string, e *latinga.Engine, o *options, stderr io.Writer) *dirWatcher {
	pattern := o.glob
	if pattern == "" {
		pattern = "*.txt"
	}
	return &dirWatcher{
		dir:       dir,
		pattern:   filepath.Base(pattern),
		suffix:    o.outputSuffix(),
		overwrite: o.overwrite,
		engine:    e,
		debounce:  debounceDefault,
		stderr:    stderr,
	}
}

// accepts is true for files the watcher converts.
func (w *dirWatcher) accepts(path string) bool {
	if ok, _ := filepath.Match(w.pattern, filepath.Base(path)); !ok {
		return false
	}
	return w.overwrite || !isOutputPath(path, w.suffix)
}

// Run watches the directory until ctx is cancelled. Files are converted
// by the calling goroutine, which is the only user of the engine.
func (w *dirWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %q: %w", w.dir, err)
	}

	// a single timer, reset on every event, flushes all pending paths
	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case <-timer.C:
			for path := range pending {
				w.convert(path)
			}
			pending = make(map[string]bool)

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !w.accepts(event.Name) {
				continue
			}
			pending[event.Name] = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(w.stderr, "file watcher error: %v\n", err)
		}
	}
}

func (w *dirWatcher) convert(path string) {
	if !isRegular(path) {
		return
	}
	if err := convertFile(w.engine, path, w.overwrite, w.suffix); err != nil {
		fmt.Fprintf(w.stderr, "%s: %v\n", path, err)
		return
	}
	tracing.Infof("converted %s", path)
	if w.converted != nil {
		w.converted(path)
	}
}
