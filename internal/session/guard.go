package session

// Guard state machine. The guard gates a protected subtree on session
// resolution: nothing renders while the first resolution pass is pending,
// unauthenticated visitors are redirected to the login entry point, and
// role-gated views treat an insufficient role as unauthenticated.

// State of a client session as seen by the guard.
type State int

const (
	StateInitializing State = iota
	StateUnauthenticated
	StateAuthenticated
)

// Decision for the protected subtree.
type Decision int

const (
	DecisionLoading Decision = iota
	DecisionRedirect
	DecisionAllow
)

// GuardInput is the session-manager state the guard evaluates. It is
// re-evaluated on every state change; there is no terminal state.
type GuardInput struct {
	Initializing bool
	User         *User
}

// StateOf classifies the input. Initializing wins over everything else.
func StateOf(in GuardInput) State {
	switch {
	case in.Initializing:
		return StateInitializing
	case in.User == nil:
		return StateUnauthenticated
	default:
		return StateAuthenticated
	}
}

// Evaluate gates a protected view open to any authenticated user.
func Evaluate(in GuardInput) Decision {
	return EvaluateRole(in, "")
}

// EvaluateRole gates a role-specific view. An authenticated user whose role
// does not match is treated as unauthenticated and redirected.
func EvaluateRole(in GuardInput, required Role) Decision {
	switch StateOf(in) {
	case StateInitializing:
		return DecisionLoading
	case StateUnauthenticated:
		return DecisionRedirect
	default:
		if required != "" && in.User.Role != required {
			return DecisionRedirect
		}
		return DecisionAllow
	}
}
