// Package errs defines the error taxonomy raised by the merger-tree
// builder: invalid_data, invalid_argument, and subhalo_not_found. All
// three are fatal — the build aborts and no trees are returned.
package errs

import (
	"errors"
	"fmt"

	"github.com/LBJ-Wade/shark/pkg/logging"
)

// Kind classifies a BuildError.
type Kind string

const (
	// KindInvalidData marks a structural violation in inputs or during
	// linking: multiple descendants, non-adjacent snapshots, missing
	// tree assignment, a halo absent from an expected satellite list.
	KindInvalidData Kind = "invalid_data"

	// KindInvalidArgument marks a violated post-condition after
	// central-subhalo definition: zero or more than one CENTRAL per
	// halo, or an interpolated subhalo with non-positive concentration.
	KindInvalidArgument Kind = "invalid_argument"

	// KindSubhaloNotFound marks a resolvable but unsatisfied descendant
	// reference. Carries the missing descendant id for caller
	// inspection.
	KindSubhaloNotFound Kind = "subhalo_not_found"
)

// Sentinel errors usable with errors.Is.
var (
	ErrInvalidData     = errors.New(string(KindInvalidData))
	ErrInvalidArgument = errors.New(string(KindInvalidArgument))
	ErrSubhaloNotFound = errors.New(string(KindSubhaloNotFound))
)

func sentinelFor(k Kind) error {
	switch k {
	case KindInvalidData:
		return ErrInvalidData
	case KindInvalidArgument:
		return ErrInvalidArgument
	case KindSubhaloNotFound:
		return ErrSubhaloNotFound
	default:
		return errors.New(string(k))
	}
}

// BuildError is the structured error type raised by every stage of the
// build pipeline.
type BuildError struct {
	Kind      Kind
	Op        string // the stage/operation that raised it, e.g. "linker.link"
	HaloID    *int64
	SubhaloID *int64
	Snapshot  *int
	// MissingDescendantID carries the descendant subhalo id a
	// subhalo_not_found error failed to resolve, for callers that want
	// it without parsing Msg.
	MissingDescendantID *int64
	Msg                 string
	cause               error
}

func (e *BuildError) Error() string {
	s := fmt.Sprintf("%s: %s", e.Op, e.Msg)
	if e.HaloID != nil {
		s += fmt.Sprintf(" (halo_id=%d)", *e.HaloID)
	}
	if e.SubhaloID != nil {
		s += fmt.Sprintf(" (subhalo_id=%d)", *e.SubhaloID)
	}
	if e.Snapshot != nil {
		s += fmt.Sprintf(" (snapshot=%d)", *e.Snapshot)
	}
	if e.MissingDescendantID != nil {
		s += fmt.Sprintf(" (missing_descendant_id=%d)", *e.MissingDescendantID)
	}
	return s
}

func (e *BuildError) Unwrap() error {
	if e.cause != nil {
		return e.cause
	}
	return sentinelFor(e.Kind)
}

func (e *BuildError) Is(target error) bool {
	return target == sentinelFor(e.Kind)
}

// Fields renders a BuildError's structured context as logging fields,
// for attaching to an "error" level log line alongside the error itself.
func Fields(err error) []logging.Field {
	var be *BuildError
	if !errors.As(err, &be) {
		return []logging.Field{logging.Error(err)}
	}

	fields := []logging.Field{
		logging.String("error_kind", string(be.Kind)),
		logging.Operation(be.Op),
		logging.Error(be),
	}
	if be.HaloID != nil {
		fields = append(fields, logging.HaloID(*be.HaloID))
	}
	if be.SubhaloID != nil {
		fields = append(fields, logging.SubhaloID(*be.SubhaloID))
	}
	if be.Snapshot != nil {
		fields = append(fields, logging.SnapshotField(*be.Snapshot))
	}
	if be.MissingDescendantID != nil {
		fields = append(fields, logging.Int64("missing_descendant_id", *be.MissingDescendantID))
	}
	return fields
}

// Builder is a fluent constructor for BuildError, following the
// teacher's error-builder convention: accumulate context, then Build().
type Builder struct {
	err *BuildError
}

// NewError starts building an error for kind k raised by operation op.
func NewError(k Kind, op string) *Builder {
	return &Builder{err: &BuildError{Kind: k, Op: op}}
}

// InvalidData starts an invalid_data error.
func InvalidData(op string) *Builder { return NewError(KindInvalidData, op) }

// InvalidArgument starts an invalid_argument error.
func InvalidArgument(op string) *Builder { return NewError(KindInvalidArgument, op) }

// SubhaloNotFoundErr starts a subhalo_not_found error.
func SubhaloNotFoundErr(op string) *Builder { return NewError(KindSubhaloNotFound, op) }

func (b *Builder) Halo(id int64) *Builder {
	b.err.HaloID = &id
	return b
}

func (b *Builder) Subhalo(id int64) *Builder {
	b.err.SubhaloID = &id
	return b
}

func (b *Builder) Snapshot(s int) *Builder {
	b.err.Snapshot = &s
	return b
}

// MissingDescendant records the descendant subhalo id a subhalo_not_found
// error could not resolve.
func (b *Builder) MissingDescendant(id int64) *Builder {
	b.err.MissingDescendantID = &id
	return b
}

func (b *Builder) Cause(err error) *Builder {
	b.err.cause = err
	return b
}

func (b *Builder) Msg(format string, args ...any) *Builder {
	b.err.Msg = fmt.Sprintf(format, args...)
	return b
}

func (b *Builder) Build() *BuildError {
	return b.err
}

func (b *Builder) Err() error {
	return b.err
}
