// SPDX-License-Identifier: MIT
package worksheet

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Options configures Run.
type Options struct {
	// Workers bounds the number of tasks running at once; values below 1 mean 1.
	Workers int
	// Steps attaches a step log to every matrix task and copies it into the report.
	Steps bool
	// Defaults fill the tolerance and iteration cap of root-finding tasks.
	Defaults Defaults
	// Logger receives one progress line per task; nil discards them.
	Logger *log.Logger
}

// Run executes every task of sheet and returns the report in worksheet order.
//
// Tasks run concurrently on up to opts.Workers goroutines. Task failures are
// recorded in their entries and never abort the run. When ctx is cancelled no
// further task starts; tasks that never ran are reported with the context
// error, and Run returns that error alongside the partial report.
func Run(ctx context.Context, sheet Sheet, opts Options) (Report, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	entries := make([]Entry, len(sheet.Tasks))
	started := make([]bool, len(sheet.Tasks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, task := range sheet.Tasks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			started[i] = true
			begin := time.Now()
			entries[i] = runTask(task, opts.Defaults, opts.Steps)
			if entries[i].Failed() {
				logger.Printf("task %q (%s) failed after %s: %s", task.Name, task.Op, time.Since(begin), entries[i].Error)
			} else {
				logger.Printf("task %q (%s) done in %s", task.Name, task.Op, time.Since(begin))
			}
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	skipped := false
	for i, task := range sheet.Tasks {
		if !started[i] {
			skipped = true
			entries[i] = Entry{Name: task.Name, Op: task.Op, Error: fmt.Sprintf("not run: %v", err)}
		}
	}
	if skipped {
		return Report{Results: entries}, err
	}
	return Report{Results: entries}, nil
}
