// Package script parses and replays YAML operation scripts against a
// vector.Vector[string], recording a size/capacity trace per operation.
//
// A script looks like:
//
//	name: scenario
//	ops:
//	  - push: "1"
//	  - push-n: 20
//	  - pop: 2
//	  - reserve: 64
//	  - at: 3
//	  - clear: true
//	  - clone: true
//	  - expect: {len: 0, cap: 16}
//
// Each op sets exactly one action key.
package script

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for script decoding and replay.
var (
	// ErrNoOps indicates a script with no operations.
	ErrNoOps = errors.New("script: no ops")
	// ErrEmptyOp indicates an op that sets no action key.
	ErrEmptyOp = errors.New("script: op sets no action")
	// ErrAmbiguousOp indicates an op that sets more than one action key.
	ErrAmbiguousOp = errors.New("script: op sets more than one action")
	// ErrBadCount indicates a negative push-n or pop count.
	ErrBadCount = errors.New("script: count must be non-negative")
	// ErrPopEmpty indicates a pop against an empty vector; it is recorded, not executed.
	ErrPopEmpty = errors.New("script: pop on empty vector")
	// ErrExpectation indicates an expect op did not match the vector state.
	ErrExpectation = errors.New("script: expectation failed")
	// ErrCloneMismatch indicates a clone differed from its source.
	ErrCloneMismatch = errors.New("script: clone differs from source")
)

// Kind identifies the action of an Op.
type Kind int

const (
	KindInvalid Kind = iota
	KindPush
	KindPushN
	KindPop
	KindReserve
	KindAt
	KindClear
	KindClone
	KindExpect
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindPush:    "push",
	KindPushN:   "push-n",
	KindPop:     "pop",
	KindReserve: "reserve",
	KindAt:      "at",
	KindClear:   "clear",
	KindClone:   "clone",
	KindExpect:  "expect",
}

// String returns the YAML key of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// Expect asserts the vector state at a point in the script. Nil fields are not checked.
type Expect struct {
	Len *int `yaml:"len,omitempty"`
	Cap *int `yaml:"cap,omitempty"`
}

// Op is one scripted operation. Exactly one field is set.
type Op struct {
	Push    *string `yaml:"push,omitempty"`
	PushN   *int    `yaml:"push-n,omitempty"`
	Pop     *int    `yaml:"pop,omitempty"`
	Reserve *int    `yaml:"reserve,omitempty"`
	At      *int    `yaml:"at,omitempty"`
	Clear   bool    `yaml:"clear,omitempty"`
	Clone   bool    `yaml:"clone,omitempty"`
	Expect  *Expect `yaml:"expect,omitempty"`
}

// Kind returns the single action set on op, or KindInvalid with
// ErrEmptyOp / ErrAmbiguousOp.
func (op Op) Kind() (Kind, error) {
	set := make([]Kind, 0, 1)
	if op.Push != nil {
		set = append(set, KindPush)
	}
	if op.PushN != nil {
		set = append(set, KindPushN)
	}
	if op.Pop != nil {
		set = append(set, KindPop)
	}
	if op.Reserve != nil {
		set = append(set, KindReserve)
	}
	if op.At != nil {
		set = append(set, KindAt)
	}
	if op.Clear {
		set = append(set, KindClear)
	}
	if op.Clone {
		set = append(set, KindClone)
	}
	if op.Expect != nil {
		set = append(set, KindExpect)
	}
	switch len(set) {
	case 0:
		return KindInvalid, ErrEmptyOp
	case 1:
		return set[0], nil
	default:
		return KindInvalid, fmt.Errorf("%w: %v", ErrAmbiguousOp, set)
	}
}

// String renders op the way it reads in a script, e.g. "push-n 20".
func (op Op) String() string {
	k, err := op.Kind()
	if err != nil {
		return k.String()
	}
	switch k {
	case KindPush:
		return fmt.Sprintf("push %q", *op.Push)
	case KindPushN:
		return fmt.Sprintf("push-n %d", *op.PushN)
	case KindPop:
		return fmt.Sprintf("pop %d", *op.Pop)
	case KindReserve:
		return fmt.Sprintf("reserve %d", *op.Reserve)
	case KindAt:
		return fmt.Sprintf("at %d", *op.At)
	case KindExpect:
		s := "expect"
		if op.Expect.Len != nil {
			s += fmt.Sprintf(" len=%d", *op.Expect.Len)
		}
		if op.Expect.Cap != nil {
			s += fmt.Sprintf(" cap=%d", *op.Expect.Cap)
		}

		return s
	default:
		return k.String()
	}
}

// Script is a named sequence of ops.
type Script struct {
	Name string `yaml:"name"`
	Ops  []Op   `yaml:"ops"`
}

// Validate checks every op has exactly one action and non-negative counts.
func (s *Script) Validate() error {
	if len(s.Ops) == 0 {
		return ErrNoOps
	}
	for i, op := range s.Ops {
		k, err := op.Kind()
		if err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
		if (k == KindPushN && *op.PushN < 0) || (k == KindPop && *op.Pop < 0) {
			return fmt.Errorf("op %d (%s): %w", i, k, ErrBadCount)
		}
	}

	return nil
}

// Decode reads one YAML script from r. Unknown keys are rejected.
func Decode(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var s Script
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoOps
		}

		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Load opens path and decodes the script it holds.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("script: open %s: %w", path, err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}
