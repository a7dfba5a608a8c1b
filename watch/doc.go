// Package watch re-parses a raw file as a simulator rewrites it.
//
// Simulators typically rewrite the whole raw file at the end of each run;
// watch.File delivers a freshly parsed Document (or the parse error) after
// every write, so a viewer can stay current without re-reading on a timer.
//
// Example usage:
//
//	events, err := watch.File(ctx, "sim.raw")
//	if err != nil {
//	    // handle error
//	}
//	for ev := range events {
//	    if ev.Err != nil {
//	        continue
//	    }
//	    render(ev.Doc)
//	}
//
// Uses fsnotify on the containing directory, with a polling fallback when
// the platform watcher is unavailable.
package watch
