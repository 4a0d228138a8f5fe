package pipe

import (
	"errors"
	"fmt"

	"github.com/rs/xid"

	"github.com/pipelined/raw/log"
)

// Runner drives a sink until its upstream source is exhausted.
type Runner struct {
	uid    string
	name   string
	sink   Sink
	looper Looper
	log    Logger
}

// Option provides a way to set functional parameters to runner.
type Option func(r *Runner)

// New creates a new runner for provided sink and applies options.
func New(sink Sink, options ...Option) *Runner {
	r := &Runner{
		uid:  newUID(),
		sink: sink,
		log:  log.GetLogger(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// WithLogger sets logger to Runner. If this option is not provided,
// logrus logger is used.
func WithLogger(logger Logger) Option {
	return func(r *Runner) {
		r.log = logger
	}
}

// WithName sets name to Runner.
func WithName(n string) Option {
	return func(r *Runner) {
		r.name = n
	}
}

// WithLoop makes runner restart the looper every time the sink reports
// exhaustion, for as long as the looper asks for it.
func WithLoop(l Looper) Option {
	return func(r *Runner) {
		r.looper = l
	}
}

// RunError is returned if the runner was successfully started, but
// step and/or flush failed.
type RunError struct {
	ErrStep  error
	ErrFlush error
}

func (e *RunError) Error() string {
	switch {
	case e.ErrStep != nil && e.ErrFlush != nil:
		return fmt.Sprintf("flush error: %v after step error: %v", e.ErrFlush, e.ErrStep)
	case e.ErrStep != nil:
		return fmt.Sprintf("step error: %v", e.ErrStep)
	case e.ErrFlush != nil:
		return fmt.Sprintf("flush error: %v", e.ErrFlush)
	}
	return ""
}

// Is checks if any of errors match provided sentinel error.
func (e *RunError) Is(err error) bool {
	if e.ErrStep != nil && errors.Is(e.ErrStep, err) {
		return true
	}
	if e.ErrFlush != nil && errors.Is(e.ErrFlush, err) {
		return true
	}
	return false
}

// Run executes the pipeline until the source is exhausted. It prepares
// the sink, then steps it in a loop and finishes with done. Errors of
// failed steps and flushes are combined into RunError.
func (r *Runner) Run() error {
	if err := r.sink.Prepare(); err != nil {
		return err
	}
	r.log.Debug("runner ", r.uid, " ", r.name, " started")

	var errStep error
	for {
		ok, err := r.sink.Step(false)
		if err != nil {
			errStep = err
			break
		}
		if ok {
			continue
		}
		if r.looper != nil && r.looper.Loop() {
			r.log.Debug("runner ", r.uid, " rewind")
			if err := r.looper.Rewind(); err != nil {
				errStep = err
				break
			}
			continue
		}
		break
	}

	errFlush := r.sink.Done()
	r.log.Debug("runner ", r.uid, " ", r.name, " done")
	if errStep != nil || errFlush != nil {
		return &RunError{ErrStep: errStep, ErrFlush: errFlush}
	}
	return nil
}

// newUID returns new unique id value.
func newUID() string {
	return xid.New().String()
}
