// Package watch re-exports a schedule text file to an .ics file whenever
// the text file changes, checking on a cron schedule.
package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"questcal/internal/config"
	"questcal/internal/exporter"
	appLog "questcal/internal/log"
)

// Job remembers the last exported input version.
type Job struct {
	cfg *config.Config

	mu      sync.Mutex
	lastMod time.Time
	lastLen int64
}

// NewJob validates the watch configuration.
func NewJob(cfg *config.Config) (*Job, error) {
	if cfg == nil {
		return nil, errors.New("watch: config is nil")
	}
	if cfg.Watch.Input == "" {
		return nil, errors.New("watch: input path is empty")
	}
	if cfg.Watch.Output == "" {
		return nil, errors.New("watch: output path is empty")
	}
	return &Job{cfg: cfg}, nil
}

// RunOnce exports the input when it changed since the previous successful
// run. It reports whether an export was written.
func (j *Job) RunOnce() (bool, error) {
	j.mu.Lock()
	defer j.mu.Unlock()

	info, err := os.Stat(j.cfg.Watch.Input)
	if err != nil {
		return false, err
	}
	if info.ModTime().Equal(j.lastMod) && info.Size() == j.lastLen {
		return false, nil
	}

	text, err := os.ReadFile(j.cfg.Watch.Input)
	if err != nil {
		return false, err
	}
	req, err := exporter.FromConfig(j.cfg, string(text))
	if err != nil {
		return false, err
	}
	res, err := exporter.Run(req)
	if err != nil {
		return false, err
	}
	if err := writeAtomic(j.cfg.Watch.Output, []byte(res.Document)); err != nil {
		return false, err
	}

	j.lastMod = info.ModTime()
	j.lastLen = info.Size()
	appLog.Info("watch: calendar re-exported", "input", j.cfg.Watch.Input, "output", j.cfg.Watch.Output, "events", len(res.Events))
	return true, nil
}

// Run checks the input on the configured cron schedule until ctx is
// canceled. The first check happens immediately.
func Run(ctx context.Context, cfg *config.Config) error {
	job, err := NewJob(cfg)
	if err != nil {
		return err
	}

	tick := func() {
		if _, err := job.RunOnce(); err != nil {
			appLog.Error("watch: export failed", err, "input", cfg.Watch.Input)
		}
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.Watch.Cron, tick); err != nil {
		return err
	}

	tick()
	c.Start()
	appLog.Info("watch: started", "cron", cfg.Watch.Cron, "input", cfg.Watch.Input)

	<-ctx.Done()
	<-c.Stop().Done()
	appLog.Info("watch: stopped")
	return nil
}

// writeAtomic writes data via a temp file + rename in the target directory.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".questcal-*.ics.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

// WriteFile is exported for the CLI's one-shot export.
func WriteFile(path string, data []byte) error {
	return writeAtomic(path, data)
}
