package action

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hoodstats/go-hoodstats/flock"
	"github.com/hoodstats/go-hoodstats/fnotify"
	"github.com/hoodstats/go-hoodstats/sources"
)

// Watch runs Enrich, then runs it again whenever an input file changes,
// until interrupted. Failed runs are logged and leave the previous output in
// place.
func Watch(src *sources.Sources) error {
	lock := flock.New(src.Root.Path(LockFile))
	if err := lock.Lock(false); err != nil {
		return err
	}
	defer lock.Unlock()

	notifier := fnotify.New("inputs")
	changes := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- notifier.Notify(src.InputPaths(), changes)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	runEnrich(src)
	for {
		select {
		case file := <-changes:
			log.Println("input changed:", file)
			runEnrich(src)
		case err := <-done:
			return err
		case sig := <-interrupt:
			log.Println("watch: received", sig, "- exiting")
			notifier.Close()
			for {
				select {
				case <-changes:
				case err := <-done:
					return err
				}
			}
		}
	}
}

func runEnrich(src *sources.Sources) {
	if missing := src.Missing(); len(missing) > 0 {
		log.Println("waiting for missing inputs:", missing)
		return
	}
	if err := enrich(src); err != nil {
		log.Println("enrich failed:", err)
	}
}
