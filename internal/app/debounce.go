package app

import (
	"sync"
	"time"
)

// revalidator collapses rapid consecutive validation triggers into one
// pass. Debounce is a scheduling optimization only: the run function
// always executes against the latest state, and a result computed for a
// superseded generation is discarded rather than raced.
type revalidator struct {
	mu     sync.Mutex
	window time.Duration
	gen    uint64
	timer  *time.Timer
}

func newRevalidator(window time.Duration) *revalidator {
	return &revalidator{window: window}
}

// Request schedules run after the debounce window, superseding any
// pending request. run receives a stale check: it must call it after
// computing and drop the result when it reports true.
func (r *revalidator) Request(run func(stale func() bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	gen := r.gen
	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.window, func() {
		run(func() bool {
			r.mu.Lock()
			defer r.mu.Unlock()
			return gen != r.gen
		})
	})
}

// Cancel drops any pending request. An explicit validate-now action
// supersedes whatever was scheduled.
func (r *revalidator) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen++
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
