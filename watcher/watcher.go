// Package watcher reports files created below a directory tree.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/alburdette619/docthis/ignore"
	"github.com/alburdette619/docthis/logging"
	"github.com/fsnotify/fsnotify"
)

// Handler is called with the absolute paths of newly created files once
// the debounce window has passed. Paths are unique and in creation order.
type Handler func(paths []string)

// Options configures a Watcher.
type Options struct {
	// Debounce is how long to wait for more events before calling the
	// handler.
	Debounce time.Duration

	// BufferSize bounds the number of pending events.
	BufferSize int
}

// DefaultOptions returns the defaults used when New is passed nil.
func DefaultOptions() Options {
	return Options{
		Debounce:   100 * time.Millisecond,
		BufferSize: 1000,
	}
}

// Watcher watches a tree for file creation. Directories created while
// watching are added automatically. The handler runs on a single goroutine.
type Watcher struct {
	root     string
	fsw      *fsnotify.Watcher
	match    func(rel string) bool
	handler  Handler
	debounce time.Duration

	created  chan string
	done     chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	watching bool
}

// New creates a watcher for root. match filters created files by their
// slash-separated path relative to root; nil accepts every file.
func New(root string, match func(rel string) bool, handler Handler, opts *Options) (*Watcher, error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		root:     root,
		fsw:      fsw,
		match:    match,
		handler:  handler,
		debounce: opts.Debounce,
		created:  make(chan string, opts.BufferSize),
		done:     make(chan struct{}),
	}, nil
}

// Start adds the tree and begins delivering events. It returns
// immediately; watching stops on Stop or when ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.watching {
		w.mu.Unlock()
		return nil
	}
	w.watching = true
	w.mu.Unlock()

	if err := w.addRecursive(w.root); err != nil {
		return err
	}

	go w.processEvents(ctx)
	go w.debounceLoop(ctx)
	return nil
}

// Stop stops watching. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.fsw.Close()

		w.mu.Lock()
		w.watching = false
		w.mu.Unlock()
	})
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if path != w.root && ignore.SkipDir(d.Name()) {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}

func (w *Watcher) processEvents(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) {
				continue
			}

			info, err := os.Stat(event.Name)
			if err != nil {
				continue
			}
			if info.IsDir() {
				if !ignore.SkipDir(info.Name()) {
					if err := w.addRecursive(event.Name); err != nil {
						logging.Logger().Warnw("failed to watch directory", "dir", event.Name, "err", err)
					}
				}
				continue
			}

			if w.match != nil {
				rel, err := filepath.Rel(w.root, event.Name)
				if err != nil || !w.match(filepath.ToSlash(rel)) {
					continue
				}
			}

			select {
			case w.created <- event.Name:
			default:
				logging.Logger().Warnw("dropping file event, buffer full", "file", event.Name)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logging.Logger().Warnw("file watcher error", "err", err)
		}
	}
}

func (w *Watcher) debounceLoop(ctx context.Context) {
	var batch []string
	var timer *time.Timer
	var timerC <-chan time.Time

	flush := func() {
		if len(batch) > 0 && w.handler != nil {
			w.handler(dedupe(batch))
		}
		batch = nil
		if timer != nil {
			timer.Stop()
			timer, timerC = nil, nil
		}
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case <-w.done:
			flush()
			return
		case path := <-w.created:
			batch = append(batch, path)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerC:
			flush()
		}
	}
}

func dedupe(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}
	return out
}
