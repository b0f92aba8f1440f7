// Package fnotify reports debounced changes to a set of files.
package fnotify

import (
	"log"
	"path/filepath"
	"time"

	"gopkg.in/fsnotify.v1"
)

// A Notifier watches files and reports each changed file once its changes
// have settled for Debounce.
type Notifier struct {
	name     string
	Debounce time.Duration
	shutdown chan bool
}

// DefaultDebounce is the quiet period before a change is reported.
const DefaultDebounce = 250 * time.Millisecond

// New creates a Notifier; name labels its log lines.
func New(name string) *Notifier {
	return &Notifier{
		name:     name,
		Debounce: DefaultDebounce,
		shutdown: make(chan bool, 1),
	}
}

// Close stops a running Notify.
func (n *Notifier) Close() {
	n.shutdown <- true
}

// Notify sends the path of each changed file in files to res until Close is
// called. Files are watched through their directories, so files that are
// replaced by rename or created later are still reported.
func (n *Notifier) Notify(files []string, res chan<- string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, f := range files {
		f = filepath.Clean(f)
		watched[f] = true
		dir := filepath.Dir(f)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	pendingChanges := map[string]bool{}

	throttler := time.NewTimer(n.Debounce)
	if !throttler.Stop() {
		<-throttler.C
	}
	defer throttler.Stop()
	throttleChan := func() <-chan time.Time {
		if len(pendingChanges) == 0 {
			return nil
		}
		return throttler.C
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(event.Name)
			if !watched[name] {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) != 0 {
				pendingChanges[name] = true
				throttler.Reset(n.Debounce)
			}
		case <-throttleChan():
			for file := range pendingChanges {
				delete(pendingChanges, file)
				log.Println("watcher", n.name, "changed:", file)
				res <- file
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("watcher", n.name, "error:", err)
		case <-n.shutdown:
			return nil
		}
	}
}
