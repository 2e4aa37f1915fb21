package transport

import (
	"errors"
	"fmt"
)

// ErrTransport is the sentinel matched by a connection-level failure: the
// socket closed, read/write failed, or a frame was malformed. The session
// should reconnect rather than retry the action that triggered it.
var ErrTransport = errors.New("transport: connection failure")

// ErrRuleViolation is the sentinel matched by a rejected action the server
// considered illegal under the current game state (BAD_COMMAND or
// INAPPROPRIATE_GAME_STATE). The session should drop the attempted action
// and resynchronize from the next game_state snapshot rather than retry it.
var ErrRuleViolation = errors.New("transport: rule violation")

// ErrTimeout is the sentinel matched by a server-reported TIMEOUT. The
// caller missed its window to act this turn; no local state correction is
// needed, the turn simply passed.
var ErrTimeout = errors.New("transport: turn timed out")

// ResultError wraps a non-OKAY ResultCode returned by the server, carrying
// enough context to log it and classify it against the sentinels above with
// errors.Is.
type ResultError struct {
	Action ActionCode
	Result ResultCode
}

func (e *ResultError) Error() string {
	return fmt.Sprintf("transport: action %d returned %s", e.Action, e.Result)
}

// Unwrap lets errors.Is match ResultError against the taxonomy sentinels
// based on the wrapped ResultCode.
func (e *ResultError) Unwrap() error {
	switch e.Result {
	case ResultBadCommand, ResultInappropriateGameState:
		return ErrRuleViolation
	case ResultTimeout:
		return ErrTimeout
	case ResultInternalServerError:
		return ErrTransport
	default:
		return nil
	}
}

// NewResultError builds a ResultError for a non-OKAY result, or nil if
// result is ResultOkay.
func NewResultError(action ActionCode, result ResultCode) error {
	if result == ResultOkay {
		return nil
	}
	return &ResultError{Action: action, Result: result}
}
