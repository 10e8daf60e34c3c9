package crontab

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
)

var crontab = cron.New()

// RegisterCron schedules fn every period. A run is skipped while the
// previous one is still in flight, so cycles never overlap.
func RegisterCron(period time.Duration, fn func()) error {
	var running atomic.Bool
	if _, err := crontab.AddFunc(fmt.Sprintf("@every %s", period.String()), func() {
		if !running.CompareAndSwap(false, true) {
			return
		}
		defer running.Store(false)
		fn()
	}); err != nil {
		return err
	}
	return nil
}

// Start ...
func Start() {
	crontab.Start()
}

// Stop stops scheduling new runs; the returned context is done once all
// in-flight runs finish.
func Stop() context.Context {
	return crontab.Stop()
}
