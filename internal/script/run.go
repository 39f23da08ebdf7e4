package script

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/lvvec/vector"
)

// Step records the vector state after one op.
type Step struct {
	Index  int    // position of the op in the script
	Op     string // rendered op, e.g. "push-n 20"
	Len    int    // Len() after the op
	Cap    int    // Cap() after the op
	Grew   bool   // capacity increased during the op
	Shrank bool   // capacity decreased during the op
	Value  string // element read by an at op
	Err    error  // recoverable error raised by the op, if any
}

// Trace is the ordered list of steps produced by Run.
type Trace struct {
	Name  string
	steps vector.Vector[Step]
}

// Steps returns the recorded steps in script order.
func (t *Trace) Steps() []Step {
	return t.steps.Slice()
}

// Len returns the number of recorded steps.
func (t *Trace) Len() int {
	return t.steps.Len()
}

// Growths counts steps during which capacity increased.
func (t *Trace) Growths() int {
	n := 0
	for _, s := range t.Steps() {
		if s.Grew {
			n++
		}
	}

	return n
}

// Shrinks counts steps during which capacity decreased.
func (t *Trace) Shrinks() int {
	n := 0
	for _, s := range t.Steps() {
		if s.Shrank {
			n++
		}
	}

	return n
}

// Errors counts steps that recorded a recoverable error.
func (t *Trace) Errors() int {
	n := 0
	for _, s := range t.Steps() {
		if s.Err != nil {
			n++
		}
	}

	return n
}

// runner holds replay state for one script.
type runner struct {
	v   *vector.Vector[string]
	gen int // next generated value suffix for push-n
}

// Run replays s on a fresh vector.Vector[string].
//
// Recoverable vector errors (ErrIndexOutOfRange, ErrCapacity) and
// ErrPopEmpty are recorded on the step and replay continues. A failed
// expect, a clone mismatch, or ctx cancellation stops replay and is
// returned with the trace recorded so far.
func Run(ctx context.Context, s *Script) (*Trace, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	tr := &Trace{Name: s.Name}
	r := &runner{v: vector.New[string]()}
	defer func() { r.v.Destroy() }()

	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			return tr, fmt.Errorf("op %d: %w", i, err)
		}
		before := r.v.Cap()
		step := Step{Index: i, Op: op.String()}
		fatal := r.apply(op, &step)
		step.Len, step.Cap = r.v.Len(), r.v.Cap()
		step.Grew = step.Cap > before
		step.Shrank = step.Cap < before
		tr.steps.Push(step)
		if fatal != nil {
			return tr, fmt.Errorf("op %d (%s): %w", i, step.Op, fatal)
		}
	}

	return tr, nil
}

// apply executes op. Recoverable errors go to step.Err; the return value is fatal.
func (r *runner) apply(op Op, step *Step) error {
	k, err := op.Kind()
	if err != nil {
		return err
	}
	switch k {
	case KindPush:
		r.v.Push(*op.Push)
	case KindPushN:
		for j := 0; j < *op.PushN; j++ {
			r.v.Push("v" + strconv.Itoa(r.gen))
			r.gen++
		}
	case KindPop:
		for j := 0; j < *op.Pop; j++ {
			if r.v.IsEmpty() {
				step.Err = ErrPopEmpty
				break
			}
			r.v.Pop()
		}
	case KindReserve:
		step.Err = r.v.Reserve(*op.Reserve)
	case KindAt:
		p, err := r.v.At(*op.At)
		if err != nil {
			step.Err = err
		} else {
			step.Value = *p
		}
	case KindClear:
		r.v.Clear()
	case KindClone:
		c := r.v.Clone()
		if c.Len() != r.v.Len() || c.Cap() != r.v.Cap() || !slices.Equal(c.Slice(), r.v.Slice()) {
			return fmt.Errorf("%w: got %v, source %v", ErrCloneMismatch, c, r.v)
		}
		r.v.Destroy()
		r.v = c
	case KindExpect:
		return r.check(op.Expect)
	}

	return nil
}

// check compares the vector against e.
func (r *runner) check(e *Expect) error {
	if e.Len != nil && *e.Len != r.v.Len() {
		return fmt.Errorf("%w: len=%d, want %d", ErrExpectation, r.v.Len(), *e.Len)
	}
	if e.Cap != nil && *e.Cap != r.v.Cap() {
		return fmt.Errorf("%w: cap=%d, want %d", ErrExpectation, r.v.Cap(), *e.Cap)
	}

	return nil
}
