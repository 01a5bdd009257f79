// Package preview serves read-only HTTP and websocket views over running
// and completed slice jobs. It depends on internal/slicepipeline only
// through the data it is handed after a slice completes — the core never
// imports this package, so headless use of internal/slicepipeline never
// pulls in an HTTP server or a websocket library.
package preview

import (
	"sync"
	"time"

	"github.com/chazu/lignin-slicer/internal/config"
	"github.com/chazu/lignin-slicer/internal/gcodegen"
	"github.com/chazu/lignin-slicer/internal/slicepipeline"
	"github.com/google/uuid"
)

// SliceJob is a snapshot of one slice run, identified by a stable job ID so
// a client can poll or subscribe to it after submitting a file.
type SliceJob struct {
	ID        uuid.UUID
	StartedAt time.Time
	UpdatedAt time.Time
	Profile   config.PrintProfile

	LayerCount     int
	CompletedCount int
	Done           bool
	Err            error

	Stack   *slicepipeline.LayerStack
	Program *gcodegen.GCodeProgram

	WarningCount int
}

// Registry tracks in-flight and completed SliceJobs in memory. It is
// intentionally not persisted — a restart loses job history, which is
// fine for a preview surface whose only consumer is whoever just submitted
// the job.
type Registry struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*SliceJob
	subs map[uuid.UUID][]chan struct{}
}

// NewRegistry returns an empty job registry.
func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[uuid.UUID]*SliceJob),
		subs: make(map[uuid.UUID][]chan struct{}),
	}
}

// Start registers a new job with the given expected layer count and
// returns it. Callers report progress via Advance and completion via
// Finish.
func (r *Registry) Start(profile config.PrintProfile, layerCount int) *SliceJob {
	job := &SliceJob{
		ID:         uuid.New(),
		StartedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Profile:    profile,
		LayerCount: layerCount,
	}
	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()
	return job
}

// Advance records that one more layer of job id has completed and notifies
// any subscribers watching its progress stream.
func (r *Registry) Advance(id uuid.UUID) {
	r.mu.Lock()
	job, ok := r.jobs[id]
	if ok {
		job.CompletedCount++
		job.UpdatedAt = time.Now()
	}
	subs := r.subs[id]
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Finish marks job id complete, attaching its final stack, G-code program
// summary, and any terminal error.
func (r *Registry) Finish(id uuid.UUID, stack *slicepipeline.LayerStack, program *gcodegen.GCodeProgram, err error) {
	r.mu.Lock()
	job, ok := r.jobs[id]
	if ok {
		job.Done = true
		job.Stack = stack
		job.Program = program
		job.Err = err
		job.UpdatedAt = time.Now()
		if stack != nil {
			job.WarningCount = len(stack.Warnings())
		}
	}
	subs := r.subs[id]
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Get returns job id and whether it exists.
func (r *Registry) Get(id uuid.UUID) (*SliceJob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	return job, ok
}

// Subscribe returns a channel that is notified when job id advances or
// finishes. The channel holds at most one pending notification; an advance
// that arrives while one is still pending is folded into it rather than
// delivered separately. The returned func unsubscribes and closes the
// channel.
func (r *Registry) Subscribe(id uuid.UUID) (ch chan struct{}, cancel func()) {
	ch = make(chan struct{}, 1)
	r.mu.Lock()
	r.subs[id] = append(r.subs[id], ch)
	r.mu.Unlock()

	cancel = func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		subs := r.subs[id]
		for i, c := range subs {
			if c == ch {
				r.subs[id] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		close(ch)
	}
	return ch, cancel
}
