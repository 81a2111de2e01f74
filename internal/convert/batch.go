package convert

import (
	"context"
	"errors"
	"sync"

	"xcurscale/internal/logger"
	"xcurscale/pkg/xcursor"
)

// Job pairs one input cursor file with its output path.
type Job struct {
	Input  string
	Output string
}

// Options controls a batch run.
type Options struct {
	// Factor is the integer scale factor applied to every file.
	Factor uint32

	// Jobs is the number of files converted concurrently. Values below 1
	// mean sequential. Per-file conversions share no state, so any degree
	// of parallelism is safe.
	Jobs int

	// IgnoreUnrecognized skips inputs that are not Xcursor files instead
	// of failing the batch. Every other error still fails the batch.
	IgnoreUnrecognized bool

	Log logger.Logger
}

// Run converts every job. All jobs are attempted even after a failure; the
// returned error joins the per-file errors, or is nil when every file
// converted (or was skipped under IgnoreUnrecognized).
func Run(ctx context.Context, jobs []Job, opts Options) error {
	log := opts.Log
	if log == nil {
		log = logger.FromContext(ctx)
	}

	workers := opts.Jobs
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var (
		mu       sync.Mutex
		failures []error
	)
	work := make(chan Job)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range work {
				err := ConvertFile(job.Input, job.Output, opts.Factor)
				switch {
				case err == nil:
					log.Debug("converted cursor", "input", job.Input, "output", job.Output, "scale", opts.Factor)
				case opts.IgnoreUnrecognized && errors.Is(err, xcursor.ErrNotXcursor):
					log.Warn("skipping unrecognized file", "input", job.Input)
				default:
					log.Error("conversion failed", "input", job.Input, "error", err)
					mu.Lock()
					failures = append(failures, err)
					mu.Unlock()
				}
			}
		}()
	}

	for _, job := range jobs {
		if ctx.Err() != nil {
			break
		}
		work <- job
	}
	close(work)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		failures = append(failures, err)
	}
	return errors.Join(failures...)
}
