package entity

// ResolutionState is the outcome of resolving the current actor
type ResolutionState int

const (
	// ResolutionPending means no answer is available yet
	ResolutionPending ResolutionState = iota
	ResolutionAuthenticated
	ResolutionUnauthenticated
)

func (s ResolutionState) String() string {
	switch s {
	case ResolutionAuthenticated:
		return "authenticated"
	case ResolutionUnauthenticated:
		return "unauthenticated"
	default:
		return "pending"
	}
}

// Resolution is who the actor is for the current request.
// Session is set only when State is ResolutionAuthenticated.
type Resolution struct {
	State   ResolutionState
	Session *Session
}

// Authenticated builds a resolution for a signed-in actor
func Authenticated(session *Session) Resolution {
	return Resolution{State: ResolutionAuthenticated, Session: session}
}

// Unauthenticated is the resolution for an anonymous actor
func Unauthenticated() Resolution {
	return Resolution{State: ResolutionUnauthenticated}
}

// IsAuthenticated reports whether the actor is signed in
func (r Resolution) IsAuthenticated() bool {
	return r.State == ResolutionAuthenticated && r.Session != nil
}

// Role returns the actor's role, or the empty role when not signed in
func (r Resolution) Role() Role {
	if !r.IsAuthenticated() {
		return ""
	}
	return r.Session.Role
}
