// Package watcher reports changes to a single file, typically the config.
package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

type fileStamp struct {
	modTime time.Time
	size    int64
	exists  bool
}

type Watcher struct {
	path         string
	last         fileStamp
	mu           sync.Mutex
	pollInterval time.Duration
	onChange     func(path string)
	stop         chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
}

func New(path string, pollInterval time.Duration, onChange func(path string)) *Watcher {
	return &Watcher{
		path:         filepath.Clean(path),
		pollInterval: pollInterval,
		onChange:     onChange,
		stop:         make(chan struct{}),
	}
}

// Start records the current state of the file and begins watching with
// fsnotify plus a polling fallback.
func (w *Watcher) Start() error {
	w.mu.Lock()
	w.last = stat(w.path)
	w.mu.Unlock()

	// Watch the directory: editors often replace the file by rename.
	fsw, err := fsnotify.NewWatcher()
	if err == nil {
		if addErr := fsw.Add(filepath.Dir(w.path)); addErr != nil {
			fsw.Close()
		} else {
			w.wg.Add(1)
			go func() {
				defer w.wg.Done()
				for {
					select {
					case event, ok := <-fsw.Events:
						if !ok {
							return
						}
						if filepath.Clean(event.Name) == w.path &&
							event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
							w.check()
						}
					case _, ok := <-fsw.Errors:
						if !ok {
							return
						}
					case <-w.stop:
						fsw.Close()
						return
					}
				}
			}()
		}
	}

	// Polling fallback (always runs as safety net)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.check()
			case <-w.stop:
				return
			}
		}
	}()

	return nil
}

// Stop signals goroutines to exit and waits for them to finish.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

// check fires onChange once per observed change, whichever goroutine sees
// it first.
func (w *Watcher) check() {
	cur := stat(w.path)

	w.mu.Lock()
	changed := !cur.same(w.last)
	w.last = cur
	w.mu.Unlock()

	if changed && cur.exists && w.onChange != nil {
		w.onChange(w.path)
	}
}

func (s fileStamp) same(o fileStamp) bool {
	return s.exists == o.exists && s.size == o.size && s.modTime.Equal(o.modTime)
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size(), exists: true}
}
