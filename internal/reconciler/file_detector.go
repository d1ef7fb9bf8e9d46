package reconciler

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"depmanager/pkg/logging"
)

// DefaultDebounceInterval is used when NewFileDetector gets a zero interval.
const DefaultDebounceInterval = 500 * time.Millisecond

// FileDetector emits a ChangeEvent each time a single file changes.
type FileDetector struct {
	mu sync.Mutex

	// path is the cleaned absolute path of the watched file
	path string

	// watcher is the fsnotify watcher instance
	watcher *fsnotify.Watcher

	// debounceInterval is how long to wait for additional changes
	debounceInterval time.Duration

	// pending is the event waiting for its debounce timer, if any
	pending *debounceEntry

	// stopCh signals shutdown
	stopCh chan struct{}

	// running indicates if the detector is active
	running bool
}

// debounceEntry tracks a pending event for debouncing.
type debounceEntry struct {
	event ChangeEvent
	timer *time.Timer
}

// NewFileDetector creates a detector for the file at path.
func NewFileDetector(path string, debounceInterval time.Duration) (*FileDetector, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounceInterval <= 0 {
		debounceInterval = DefaultDebounceInterval
	}

	return &FileDetector{
		path:             filepath.Clean(abs),
		debounceInterval: debounceInterval,
		stopCh:           make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (d *FileDetector) Path() string {
	return d.path
}

// Start begins watching and sends debounced events to changes until ctx is
// done or Stop is called. Calling Start on a running detector is a no-op.
func (d *FileDetector) Start(ctx context.Context, changes chan<- ChangeEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(d.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	d.watcher = watcher
	d.running = true
	d.stopCh = make(chan struct{})

	go d.processEvents(ctx, watcher, d.stopCh, changes)

	logging.Info("Reconciler", "Watching %s for changes", d.path)
	return nil
}

// processEvents handles filesystem events until shutdown.
func (d *FileDetector) processEvents(ctx context.Context, watcher *fsnotify.Watcher, stopCh <-chan struct{}, changes chan<- ChangeEvent) {
	for {
		select {
		case <-ctx.Done():
			d.cleanupPending()
			return

		case <-stopCh:
			d.cleanupPending()
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			d.handleFsEvent(event, changes)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logging.Error("Reconciler", err, "Filesystem watcher error")
		}
	}
}

// handleFsEvent processes a single filesystem event.
func (d *FileDetector) handleFsEvent(event fsnotify.Event, changes chan<- ChangeEvent) {
	if filepath.Clean(event.Name) != d.path {
		return
	}

	var operation ChangeOperation
	switch {
	case event.Has(fsnotify.Create):
		operation = OperationCreate
	case event.Has(fsnotify.Write):
		operation = OperationUpdate
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		operation = OperationDelete
	default:
		return
	}

	logging.Debug("Reconciler", "Raw event %s on %s", event.Op, event.Name)
	d.debounceEvent(ChangeEvent{
		FilePath:  d.path,
		Operation: operation,
		Timestamp: time.Now(),
	}, changes)
}

// debounceEvent collapses rapid successive changes into one event.
func (d *FileDetector) debounceEvent(event ChangeEvent, changes chan<- ChangeEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.timer.Stop()
		event.Operation = mergeOperations(d.pending.event.Operation, event.Operation)
	}

	entry := &debounceEntry{event: event}
	entry.timer = time.AfterFunc(d.debounceInterval, func() {
		d.mu.Lock()
		current := d.pending == entry
		if current {
			d.pending = nil
		}
		d.mu.Unlock()

		if !current {
			return
		}
		select {
		case changes <- entry.event:
			logging.Debug("Reconciler", "Emitted change event: %s %s", entry.event.Operation, entry.event.FilePath)
		default:
			logging.Warn("Reconciler", "Change event channel full, dropping event for %s", entry.event.FilePath)
		}
	})
	d.pending = entry
}

// mergeOperations merges two operations into a single logical operation.
func mergeOperations(old, new ChangeOperation) ChangeOperation {
	// Delete followed by Create is the editor save-by-rename pattern.
	if old == OperationDelete && new == OperationCreate {
		return OperationUpdate
	}
	if old == OperationCreate && new != OperationDelete {
		return OperationCreate
	}
	return new
}

// cleanupPending cancels the pending debounce timer.
func (d *FileDetector) cleanupPending() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.pending != nil {
		d.pending.timer.Stop()
		d.pending = nil
	}
}

// Stop gracefully stops the detector. It is safe to call more than once.
func (d *FileDetector) Stop() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running {
		return nil
	}

	d.running = false
	close(d.stopCh)

	var err error
	if d.watcher != nil {
		err = d.watcher.Close()
		if err != nil {
			logging.Error("Reconciler", err, "Error closing filesystem watcher")
		}
		d.watcher = nil
	}

	logging.Info("Reconciler", "Stopped watching %s", d.path)
	return err
}
