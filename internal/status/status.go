// Package status shares the state of a running timer with other processes
// through a small JSON file.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ayoisaiah/cadence/internal/osutil"
	"github.com/ayoisaiah/cadence/internal/phase"
	"github.com/ayoisaiah/cadence/internal/timeutil"
)

// Status represents the status of a running timer.
type Status struct {
	UpdatedAt  time.Time     `json:"updated_at"`
	EndTime    time.Time     `json:"end_time"`
	SessionID  string        `json:"session_id"`
	Label      string        `json:"label"`
	Kind       phase.Kind    `json:"kind"`
	Remaining  time.Duration `json:"remaining"`
	Index      int           `json:"index"`
	PhaseCount int           `json:"phase_count"`
	Running    bool          `json:"running"`
}

// RemainingAt returns the time left in the phase at t. A running timer is
// measured against its end time, a paused one reports the stored value.
func (s *Status) RemainingAt(t time.Time) time.Duration {
	if !s.Running {
		return s.Remaining
	}

	return max(0, s.EndTime.Sub(t))
}

// Line formats the status as a single line such as "[Work 2/4]: 12:34".
func (s *Status) Line(now time.Time) string {
	secs := int(s.RemainingAt(now).Round(time.Second) / time.Second)

	line := fmt.Sprintf(
		"[%s %d/%d]: %s",
		s.Label,
		s.Index+1,
		s.PhaseCount,
		timeutil.Countdown(secs),
	)

	if !s.Running {
		line += " (paused)"
	}

	return line
}

// Write replaces the status file at path with s.
func Write(path string, s *Status) error {
	b, err := json.Marshal(s)
	if err != nil {
		return errWriteStatus.Fmt(path).Wrap(err)
	}

	if err := os.MkdirAll(filepath.Dir(path), osutil.DirPermission); err != nil {
		return errWriteStatus.Fmt(path).Wrap(err)
	}

	// write then rename so readers never see a partial file
	tmp := path + ".tmp"

	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return errWriteStatus.Fmt(path).Wrap(err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return errWriteStatus.Fmt(path).Wrap(err)
	}

	return nil
}

// Read returns the status stored at path. It returns nil without an error
// when no timer is running.
func Read(path string) (*Status, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, errReadStatus.Fmt(path).Wrap(err)
	}

	var s Status

	if err := json.Unmarshal(b, &s); err != nil {
		return nil, errReadStatus.Fmt(path).Wrap(err)
	}

	return &s, nil
}

// Remove deletes the status file. A missing file is not an error.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

// Watch calls fn with the current status and again whenever the file at
// path changes, until ctx is done. fn receives nil once the file is removed.
func Watch(ctx context.Context, path string, fn func(*Status)) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, osutil.DirPermission); err != nil {
		return errWatchStatus.Fmt(path).Wrap(err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errWatchStatus.Fmt(path).Wrap(err)
	}

	defer watcher.Close()

	// the file is replaced on every write, so watch its directory
	if err := watcher.Add(dir); err != nil {
		return errWatchStatus.Fmt(path).Wrap(err)
	}

	notify := func() error {
		s, err := Read(path)
		if err != nil {
			return err
		}

		fn(s)

		return nil
	}

	if err := notify(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(ev.Name) != filepath.Clean(path) {
				continue
			}

			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) {
				continue
			}

			if err := notify(); err != nil {
				return err
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			return errWatchStatus.Fmt(path).Wrap(err)
		}
	}
}
