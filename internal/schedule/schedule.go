// Package schedule fires the daily reminder scan at a fixed UTC hour. The
// trigger runs at most one tick at a time: a tick that is still in flight
// when the next one is due causes the new one to be skipped and logged,
// never interleaved.
package schedule

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Daily wraps a single recurring cron entry.
type Daily struct {
	cron *cron.Cron
}

// New builds the trigger, firing job every day at hourUTC (0-23).
func New(hourUTC int, job func(), logger *slog.Logger) (*Daily, error) {
	if hourUTC < 0 || hourUTC > 23 {
		return nil, fmt.Errorf("reminder hour %d out of range", hourUTC)
	}
	if logger == nil {
		logger = slog.Default()
	}

	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{logger})),
	)
	if _, err := c.AddFunc(fmt.Sprintf("0 %d * * *", hourUTC), job); err != nil {
		return nil, fmt.Errorf("registering reminder schedule: %w", err)
	}
	return &Daily{cron: c}, nil
}

// Start begins firing in a background goroutine.
func (d *Daily) Start() { d.cron.Start() }

// Stop stops the timer. In-flight ticks are left to finish on their own;
// shutdown does not wait for them.
func (d *Daily) Stop() { d.cron.Stop() }

// cronLogger adapts slog to cron.Logger so skipped ticks show up in our logs.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info("cron: "+msg, slog.Any("details", keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, slog.String("error", err.Error()), slog.Any("details", keysAndValues))
}
