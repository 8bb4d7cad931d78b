// Package fault carries the stable error kinds the API surfaces to callers.
// Usecases return *Fault values; the HTTP layer maps Kind to a status code and
// never exposes store or processor internals.
package fault

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindNotFound        Kind = "not_found"
	KindInvalidState    Kind = "invalid_state"
	KindInvalidArgument Kind = "invalid_argument"
	KindUpstream        Kind = "upstream_failure"
	KindPartial         Kind = "partial_failure"
	KindInternal        Kind = "internal"
)

type Fault struct {
	Kind Kind
	Msg  string
	// Completed lists the steps of a multi-step operation that finished
	// before the failure; only set on KindPartial.
	Completed []string
	Err       error
}

func (f *Fault) Error() string {
	if f.Err != nil {
		return f.Msg + ": " + f.Err.Error()
	}
	return f.Msg
}

func (f *Fault) Unwrap() error { return f.Err }

func NotFound(what string) *Fault {
	return &Fault{Kind: KindNotFound, Msg: what + " not found"}
}

func InvalidState(msg string) *Fault {
	return &Fault{Kind: KindInvalidState, Msg: msg}
}

func InvalidArgument(msg string) *Fault {
	return &Fault{Kind: KindInvalidArgument, Msg: msg}
}

func Upstream(msg string, err error) *Fault {
	return &Fault{Kind: KindUpstream, Msg: msg, Err: err}
}

func Partial(msg string, completed []string, err error) *Fault {
	return &Fault{Kind: KindPartial, Msg: msg, Completed: completed, Err: err}
}

func Invalidf(format string, args ...any) *Fault {
	return &Fault{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// KindOf extracts the kind from err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return KindInternal
}

// Message returns the user-safe message for err.
func Message(err error) string {
	var f *Fault
	if errors.As(err, &f) {
		if len(f.Completed) > 0 {
			return f.Msg + " (completed: " + strings.Join(f.Completed, ", ") + ")"
		}
		return f.Msg
	}
	return "internal error"
}
