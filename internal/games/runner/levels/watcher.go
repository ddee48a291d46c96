package levels

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/mode-runner/internal/games/runner"
)

// debounce is how long a file must stay quiet before it is reloaded.
// Editors often write a file in several operations.
const debounce = 100 * time.Millisecond

// Update is the result of reloading a watched level file.
// Exactly one of Level and Err is set.
type Update struct {
	Level *runner.Level
	Err   error
}

// Watcher reloads a level file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Update
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching the level file at path.
// The parent directory is watched so that editors that replace the file
// through a rename are still seen.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan Update, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Updates delivers one Update per settled change.
// The channel is closed after Close.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.updates)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			l, err := LoadFile(w.path)
			if !w.send(Update{Level: l, Err: err}) {
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if !w.send(Update{Err: err}) {
				return
			}

		case <-w.closeCh:
			return
		}
	}
}

// send delivers u unless the watcher is closing.
func (w *Watcher) send(u Update) bool {
	select {
	case w.updates <- u:
		return true
	case <-w.closeCh:
		return false
	}
}
