package transport

// ActionCode identifies the kind of request a client frame carries.
type ActionCode uint32

const (
	ActionLogin       ActionCode = 1
	ActionLogout      ActionCode = 2
	ActionMap         ActionCode = 3
	ActionGameState   ActionCode = 4
	ActionGameActions ActionCode = 5
	ActionTurn        ActionCode = 6
	ActionChat        ActionCode = 100
	ActionMove        ActionCode = 101
	ActionShoot       ActionCode = 102
)

// ResultCode identifies how the server responded to a request.
type ResultCode uint32

const (
	ResultOkay                   ResultCode = 0
	ResultBadCommand             ResultCode = 1
	ResultAccessDenied           ResultCode = 2
	ResultInappropriateGameState ResultCode = 3
	ResultTimeout                ResultCode = 4
	ResultInternalServerError    ResultCode = 500
)

// String implements fmt.Stringer for log lines.
func (r ResultCode) String() string {
	switch r {
	case ResultOkay:
		return "OKAY"
	case ResultBadCommand:
		return "BAD_COMMAND"
	case ResultAccessDenied:
		return "ACCESS_DENIED"
	case ResultInappropriateGameState:
		return "INAPPROPRIATE_GAME_STATE"
	case ResultTimeout:
		return "TIMEOUT"
	case ResultInternalServerError:
		return "INTERNAL_SERVER_ERROR"
	default:
		return "UNKNOWN_RESULT"
	}
}
