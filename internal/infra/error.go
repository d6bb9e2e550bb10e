package infra

import (
	"errors"

	"cast-booking/internal/pkg/errs"
)

type RemoteErrorKind string

// RemoteError wraps a failure talking to an external collaborator. Every
// kind is recoverable by retry; caller state must be left unchanged.
type RemoteError struct {
	Kind RemoteErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RemoteError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RemoteError) Unwrap() error {
	return e.err
}

func WrapRemoteErr(msg string, err error, kinds ...RemoteErrorKind) error {
	kind := KindUpstreamFailure
	if len(kinds) > 0 {
		kind = kinds[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RemoteError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind RemoteErrorKind) bool {
	var e RemoteError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Collaborator-specific error kinds
const (
	KindNotFound        RemoteErrorKind = "NOT_FOUND"
	KindUpstreamFailure RemoteErrorKind = "UPSTREAM_FAILURE"
	KindDecodeFailure   RemoteErrorKind = "DECODE_FAILURE"
	KindBadRequest      RemoteErrorKind = "BAD_REQUEST"
)
