package pipeline

import (
	"context"
	"errors"
)

type Stage string

const (
	StageExtract   Stage = "extract"
	StageSummarize Stage = "summarize"
)

type Kind string

const (
	KindUpstream Kind = "upstream"
	KindTimeout  Kind = "timeout"
)

var (
	ErrUpstream = errors.New("upstream failure")
	ErrTimeout  = errors.New("upstream timeout")
)

// Error reports which stage failed and how.
type Error struct {
	Stage Stage
	Kind  Kind

	Err error
}

func (e *Error) Error() string {
	return string(e.Stage) + ": " + string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrTimeout:
		return e.Kind == KindTimeout

	case ErrUpstream:
		return e.Kind == KindUpstream
	}

	return false
}

func wrapError(stage Stage, err error) error {
	kind := KindUpstream

	if errors.Is(err, context.DeadlineExceeded) {
		kind = KindTimeout
	}

	return &Error{
		Stage: stage,
		Kind:  kind,

		Err: err,
	}
}
