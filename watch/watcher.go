package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/spiceio/spicekit/rawfile"
)

// pollInterval is the fallback re-check cadence when fsnotify is
// unavailable.
const pollInterval = 200 * time.Millisecond

// Event carries the outcome of one parse of the watched file. Exactly one
// of Doc and Err is set.
type Event struct {
	Doc *rawfile.Document
	Err error
}

// File parses path immediately, then re-parses it after every write,
// sending each outcome on the returned channel. The channel is closed when
// ctx is cancelled. Parse failures are delivered as events, not terminal:
// a half-written file becomes readable on the next write.
//
// An error is returned only when the file cannot be watched at all.
func File(ctx context.Context, path string) (<-chan Event, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("watch raw file: %w", err)
	}

	ch := make(chan Event, 1)
	go func() {
		defer close(ch)

		emit(ctx, ch, path)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			pollLoop(ctx, ch, path)
			return
		}
		defer watcher.Close()

		// Watch the directory; watching the file directly breaks when the
		// simulator replaces it via rename.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			pollLoop(ctx, ch, path)
			return
		}
		watchLoop(ctx, ch, path, watcher)
	}()
	return ch, nil
}

func watchLoop(ctx context.Context, ch chan<- Event, path string, watcher *fsnotify.Watcher) {
	base := filepath.Base(path)
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			emit(ctx, ch, path)

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watcher errors are usually transient; keep going.
		}
	}
}

func pollLoop(ctx context.Context, ch chan<- Event, path string) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.ModTime().Equal(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			emit(ctx, ch, path)
		}
	}
}

// emit reads and parses the file, delivering the outcome unless ctx is done.
func emit(ctx context.Context, ch chan<- Event, path string) {
	var ev Event
	raw, err := os.ReadFile(path)
	if err != nil {
		ev.Err = fmt.Errorf("read raw file: %w", err)
	} else {
		ev.Doc, ev.Err = rawfile.Parse(string(raw))
	}
	select {
	case ch <- ev:
	case <-ctx.Done():
	}
}
