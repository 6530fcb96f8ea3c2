package scene

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/spaghettifunk/animath/engine/containers"
	"github.com/spaghettifunk/animath/engine/core"
)

// Watcher re-evaluates a scene file every time it changes on disk. Results
// are fired on the event bus, sent on Reports and Errors, and the latest
// reports are kept in a bounded history.
type Watcher struct {
	path      string
	evaluator *Evaluator
	bus       *core.EventBus

	mutex   sync.RWMutex
	history *containers.RingQueue[*Report]

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
	wg       sync.WaitGroup
	reports  chan *Report
	errors   chan error
}

// NewWatcher watches path. A nil bus gets a private one. historySize bounds
// how many reports History keeps.
func NewWatcher(path string, evaluator *Evaluator, bus *core.EventBus, historySize int) (*Watcher, error) {
	if _, err := FormatFromPath(path); err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if bus == nil {
		bus = core.NewEventBus()
	}

	return &Watcher{
		path:      filepath.Clean(path),
		evaluator: evaluator,
		bus:       bus,
		history:   containers.NewRingQueue[*Report](historySize),
		fsnotify:  fsWatch,
		done:      make(chan struct{}),
		reports:   make(chan *Report),
		errors:    make(chan error),
	}, nil
}

func (w *Watcher) Bus() *core.EventBus { return w.bus }

// Reports delivers one report per successful evaluation. It is closed when
// the watcher stops.
func (w *Watcher) Reports() <-chan *Report { return w.reports }

// Errors delivers load, evaluation and file system failures. It is closed
// when the watcher stops.
func (w *Watcher) Errors() <-chan error { return w.errors }

// History returns the kept reports, oldest first.
func (w *Watcher) History() []*Report {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.history.Items()
}

/**
 * @brief Evaluates the scene once, then again on every write. Editors that
 * save by replacing the file are covered by watching the parent directory.
 * The watcher stops when ctx is done or Close is called.
 */
func (w *Watcher) Start(ctx context.Context) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return core.ErrWatcherClosed
	}
	if w.started {
		return nil
	}
	if err := w.fsnotify.Add(filepath.Dir(w.path)); err != nil {
		return err
	}
	w.started = true

	w.wg.Add(1)
	go w.run(ctx)
	return nil
}

// Close stops the watcher and waits for it to exit.
func (w *Watcher) Close() error {
	w.mutex.Lock()
	if w.isClosed {
		w.mutex.Unlock()
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	close(w.done)
	started := w.started
	w.mutex.Unlock()

	w.wg.Wait()
	if !started {
		close(w.reports)
		close(w.errors)
	}
	return w.fsnotify.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer w.wg.Done()
	defer close(w.errors)
	defer close(w.reports)

	w.reload(ctx)
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				core.LogDebug("scene file changed: %s", e)
				w.reload(ctx)
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("%s", err)
			w.sendError(ctx, err)

		case <-ctx.Done():
			return
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	s, err := Load(w.path)
	if err != nil {
		w.fail(ctx, err)
		return
	}
	w.bus.Fire(core.EVENT_CODE_SCENE_LOADED, w, core.EventContext{Source: w.path, Data: s})

	report, err := w.evaluator.Evaluate(ctx, s)
	if err != nil {
		w.fail(ctx, err)
		return
	}

	w.mutex.Lock()
	w.history.Push(report)
	w.mutex.Unlock()
	w.bus.Fire(core.EVENT_CODE_SCENE_EVALUATED, w, core.EventContext{Source: w.path, Data: report})

	select {
	case w.reports <- report:
	case <-ctx.Done():
	case <-w.done:
	}
}

func (w *Watcher) fail(ctx context.Context, err error) {
	core.LogError("scene %s: %s", w.path, err)
	w.bus.Fire(core.EVENT_CODE_SCENE_FAILED, w, core.EventContext{Source: w.path, Err: err})
	w.sendError(ctx, err)
}

func (w *Watcher) sendError(ctx context.Context, err error) {
	select {
	case w.errors <- err:
	case <-ctx.Done():
	case <-w.done:
	}
}
