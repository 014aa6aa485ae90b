package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/goliatone/go-portfolio/internal/logging"
	"github.com/goliatone/go-portfolio/pkg/interfaces"
)

// ErrRootRequired is returned when the watcher has no directory to watch.
var ErrRootRequired = errors.New("watch: content root required")

// Watcher invalidates cached collections when files under a content root
// change. It watches the root and each content type directory beneath it.
type Watcher struct {
	root        string
	invalidator interfaces.CacheInvalidator
	logger      interfaces.Logger
	onChange    func(contentType string)

	ready     chan struct{}
	readyOnce sync.Once
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithLogger sets the watcher logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithOnChange registers a callback invoked after a content type is
// invalidated.
func WithOnChange(fn func(contentType string)) Option {
	return func(w *Watcher) {
		w.onChange = fn
	}
}

// New returns a watcher for root. invalidator may be nil when only change
// notifications are wanted.
func New(root string, invalidator interfaces.CacheInvalidator, opts ...Option) *Watcher {
	root = strings.TrimSpace(root)
	if root != "" {
		root = filepath.Clean(root)
	}
	w := &Watcher{
		root:        root,
		invalidator: invalidator,
		logger:      logging.NoOp(),
		ready:       make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}
	return w
}

// Ready is closed once the initial directories are being watched.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	if w.root == "" {
		return ErrRootRequired
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: create watcher: %w", err)
	}
	defer fsw.Close()

	if err := w.addTree(fsw); err != nil {
		return err
	}
	w.readyOnce.Do(func() { close(w.ready) })
	w.logger.Info("watch.started", "root", w.root)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("watch.stopped", "root", w.root)
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			w.handle(fsw, event)
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch.error", "error", err)
		}
	}
}

func (w *Watcher) addTree(fsw *fsnotify.Watcher) error {
	if err := fsw.Add(w.root); err != nil {
		return fmt.Errorf("watch: add %s: %w", w.root, err)
	}
	entries, err := os.ReadDir(w.root)
	if err != nil {
		return fmt.Errorf("watch: read %s: %w", w.root, err)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(w.root, entry.Name())
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch: add %s: %w", dir, err)
		}
	}
	return nil
}

func (w *Watcher) handle(fsw *fsnotify.Watcher, event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}
	contentType, depth := w.classify(event.Name)
	if contentType == "" {
		return
	}
	if depth == 1 && event.Has(fsnotify.Create) && dirExists(event.Name) {
		if err := fsw.Add(event.Name); err != nil {
			w.logger.Warn("watch.add_failed", "path", event.Name, "error", err)
		}
	}

	w.logger.Debug("watch.changed", "content_type", contentType, "path", event.Name, "op", event.Op.String())
	if w.invalidator != nil {
		w.invalidator.Invalidate(contentType)
	}
	if w.onChange != nil {
		w.onChange(contentType)
	}
}

// classify maps a changed path to its content type, the first path segment
// below root, and reports how deep below root the path is.
func (w *Watcher) classify(name string) (string, int) {
	rel, err := filepath.Rel(w.root, name)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", 0
	}
	parts := strings.Split(filepath.ToSlash(rel), "/")
	if strings.HasPrefix(parts[0], ".") {
		return "", 0
	}
	return parts[0], len(parts)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
