package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	debounce  = 100 * time.Millisecond
	scriptExt = ".tengo"
)

type ChangeKind int

const (
	ChangeSpec ChangeKind = iota + 1
	ChangeScript
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSpec:
		return "spec"
	case ChangeScript:
		return "script"
	default:
		return "unknown"
	}
}

// Change is one edited prefab file.
type Change struct {
	Path string
	Kind ChangeKind
}

// Classify reports what kind of prefab file p is, if any.
func Classify(p string) (ChangeKind, bool) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		return ChangeSpec, true
	case scriptExt:
		return ChangeScript, true
	}
	return 0, false
}

// Watcher reports edits to specs and scripts in the watched directories.
// Repeated writes to one file within the debounce window are reported once.
type Watcher struct {
	Events <-chan Change
	Errors <-chan error

	fsw     *fsnotify.Watcher
	events  chan Change
	errs    chan error
	stop    chan struct{}
	stopped chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fsw:     fsw,
		events:  make(chan Change, 16),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	w.Events, w.Errors = w.events, w.errs
	go w.loop()
	return w, nil
}

// Close stops the watcher and closes both channels. It is safe to call more
// than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		err = w.fsw.Close()
		<-w.stopped
		close(w.events)
		close(w.errs)
	})
	return err
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	seen := make(map[string]time.Time)
	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			kind, ok := Classify(ev.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if at, ok := seen[ev.Name]; ok && now.Sub(at) < debounce {
				continue
			}
			seen[ev.Name] = now
			select {
			case w.events <- Change{Path: ev.Name, Kind: kind}:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// keep only the first unread error
			select {
			case w.errs <- err:
			default:
			}
		case <-w.stop:
			return
		}
	}
}
