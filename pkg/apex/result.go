package apex

import (
	"errors"
	"fmt"
)

var (
	ErrPlayerNotFound  = errors.New("player not found")
	ErrNoGameData      = errors.New("no game data")
	ErrUnknownMode     = errors.New("unknown mode")
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrModeMissing     = errors.New("mode missing from rotation payload")
)

type Status int

const (
	StatusOK Status = iota
	StatusPlayerNotFound
	StatusNoGameData
	StatusUpstreamError
	StatusUnexpected
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusPlayerNotFound:
		return "player_not_found"
	case StatusNoGameData:
		return "no_game_data"
	case StatusUpstreamError:
		return "upstream_error"
	case StatusUnexpected:
		return "unexpected"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// UpstreamError is a transport failure or a non-2xx answer. Status is 0 when
// no response was received.
type UpstreamError struct {
	Status int
	Text   string
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Status == 0 {
		return fmt.Sprintf("upstream unreachable: %s", e.Text)
	}
	return fmt.Sprintf("upstream error %d: %s", e.Status, e.Text)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// UnexpectedError covers responses that could not be interpreted at all.
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected response: %v", e.Err)
}

func (e *UnexpectedError) Unwrap() error { return e.Err }

// Result is the outcome of one client call. Exactly one of Data (StatusOK),
// Message (not found / no data), Upstream or Unexpected is meaningful,
// selected by Status.
type Result[T any] struct {
	Status     Status
	Data       *T
	Message    string
	Upstream   *UpstreamError
	Unexpected *UnexpectedError

	// Unknown lists enumeration values the client did not recognise. It is
	// only populated alongside StatusOK.
	Unknown []UnknownVariant
}

func (r Result[T]) OK() bool { return r.Status == StatusOK }

// Retryable reports whether repeating the call could succeed. Absence is
// terminal; only upstream failures qualify.
func (r Result[T]) Retryable() bool { return r.Status == StatusUpstreamError }

// Err returns nil for StatusOK and an error matching the status otherwise.
func (r Result[T]) Err() error {
	switch r.Status {
	case StatusOK:
		return nil
	case StatusPlayerNotFound:
		return fmt.Errorf("%w: %s", ErrPlayerNotFound, r.Message)
	case StatusNoGameData:
		return fmt.Errorf("%w: %s", ErrNoGameData, r.Message)
	case StatusUpstreamError:
		if r.Upstream != nil {
			return r.Upstream
		}
	case StatusUnexpected:
		if r.Unexpected != nil {
			return r.Unexpected
		}
	}
	return fmt.Errorf("result status %s", r.Status)
}

func ok[T any](data *T, unknown []UnknownVariant) Result[T] {
	return Result[T]{Status: StatusOK, Data: data, Unknown: unknown}
}

func notFound[T any](msg string) Result[T] {
	return Result[T]{Status: StatusPlayerNotFound, Message: msg}
}

func noGameData[T any](msg string) Result[T] {
	return Result[T]{Status: StatusNoGameData, Message: msg}
}

func upstreamFailure[T any](err *UpstreamError) Result[T] {
	return Result[T]{Status: StatusUpstreamError, Upstream: err}
}

func unexpected[T any](err error) Result[T] {
	return Result[T]{Status: StatusUnexpected, Unexpected: &UnexpectedError{Err: err}}
}
