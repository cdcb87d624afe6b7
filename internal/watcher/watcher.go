// Package watcher monitors the observer file and reloads it on change.
//
// The observer file is a small JSON document holding the coordinates
// and target sidereal time:
//
//	{"latitude": 36.717, "longitude": 127.837, "target": "13:30:00"}
//
// When the file is rewritten the new observer is parsed and handed to
// the configured callback, so a running clock can move to a new site or
// target without a restart. Editors typically replace rather than
// rewrite files, so the watch is on the parent directory and events are
// debounced before reloading.
package watcher

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ryan-winkler/transitwatch/internal/clockface"
	"github.com/ryan-winkler/transitwatch/internal/sidereal"
)

// observerFile is the on-disk JSON shape.
type observerFile struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Target    string  `json:"target"` // HH:MM:SS, optional — empty keeps the configured target
}

// LoadFile reads and validates an observer file. The fallback target is
// used when the file omits one.
func LoadFile(path string, fallbackTarget clockface.Clock) (sidereal.Observer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sidereal.Observer{}, fmt.Errorf("read observer file: %w", err)
	}
	var of observerFile
	if err := json.Unmarshal(data, &of); err != nil {
		return sidereal.Observer{}, fmt.Errorf("parse observer file %s: %w", path, err)
	}
	if of.Latitude < -90 || of.Latitude > 90 {
		return sidereal.Observer{}, fmt.Errorf("observer file %s: latitude %v out of [-90,90]", path, of.Latitude)
	}
	if of.Longitude <= -180 || of.Longitude > 180 {
		return sidereal.Observer{}, fmt.Errorf("observer file %s: longitude %v out of (-180,180]", path, of.Longitude)
	}

	target := fallbackTarget
	if of.Target != "" {
		target, err = clockface.Parse(of.Target)
		if err != nil {
			return sidereal.Observer{}, fmt.Errorf("observer file %s: %w", path, err)
		}
	}
	return sidereal.Observer{Latitude: of.Latitude, Longitude: of.Longitude, Target: target}, nil
}

// Watcher reloads the observer file when it changes.
type Watcher struct {
	path           string
	fallbackTarget clockface.Clock
	logger         *slog.Logger
	onChange       func(sidereal.Observer)

	fsw    *fsnotify.Watcher
	stopCh chan struct{}
}

// New creates a Watcher for the given observer file. onChange is called
// from the watch goroutine with each successfully reloaded observer.
func New(path string, fallbackTarget clockface.Clock, logger *slog.Logger, onChange func(sidereal.Observer)) *Watcher {
	return &Watcher{
		path:           path,
		fallbackTarget: fallbackTarget,
		logger:         logger,
		onChange:       onChange,
		stopCh:         make(chan struct{}),
	}
}

// Start begins watching. Call Stop() to clean up.
func (w *Watcher) Start() error {
	if w.path == "" {
		return fmt.Errorf("observer file path is empty")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	w.fsw = fsw

	// Watch the directory, not the file: save-via-rename (vim, most
	// editors) would otherwise detach the watch on the first write.
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	w.logger.Info("observer file watcher started", "file", w.path)
	go w.loop()
	return nil
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	close(w.stopCh)
	if w.fsw != nil {
		w.fsw.Close()
	}
}

func (w *Watcher) loop() {
	// Debounce: reload only after events stop arriving for the file.
	var pending time.Time
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			pending = time.Now()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watcher error", "error", err)

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < 200*time.Millisecond {
				continue
			}
			pending = time.Time{}
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	obs, err := LoadFile(w.path, w.fallbackTarget)
	if err != nil {
		// A half-written or invalid file is not fatal: keep the current
		// observer and wait for the next save.
		w.logger.Error("observer reload failed", "file", w.path, "error", err)
		return
	}
	w.logger.Info("observer reloaded",
		"lat", obs.Latitude, "lon", obs.Longitude, "target", obs.Target.String())
	w.onChange(obs)
}
