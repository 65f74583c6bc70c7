package convert

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay is how long Watch waits after the last change before
// converting again. Editors often write a file in several steps.
const DebounceDelay = 500 * time.Millisecond

// Watch converts input once, then again every time it changes, until ctx is
// cancelled. Failed conversions after the first are logged and do not stop
// the watch.
func Watch(ctx context.Context, input, output string, opts Options) error {
	logger := opts.logger()

	if _, err := ConvertFile(input, output, opts); err != nil {
		return err
	}

	absInput, err := filepath.Abs(input)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", input, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are still seen.
	if err := watcher.Add(filepath.Dir(absInput)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(absInput), err)
	}

	logger.Printf("watching %s", absInput)

	// Conversions run on this goroutine, so they never overlap and Watch
	// returns only after the one in progress has finished.
	debounce := time.NewTimer(DebounceDelay)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if abs, _ := filepath.Abs(event.Name); abs != absInput {
				continue
			}

			debounce.Reset(DebounceDelay)
		case <-debounce.C:
			logger.Printf("input changed %q, converting", absInput)

			if _, err := ConvertFile(input, output, opts); err != nil {
				logger.Printf("conversion failed: %v", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			logger.Printf("watcher error: %v", err)
		}
	}
}
