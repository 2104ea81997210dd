package models

import "fmt"

// DefaultMaxLoginAttempts is the number of failed tries allowed per session.
const DefaultMaxLoginAttempts = 3

// LoginSession counts failed login attempts for one interactive session.
// It is owned by the caller that drives the retry loop; starting a new
// session is the only way to reset it.
type LoginSession struct {
	Attempts    int
	MaxAttempts int
}

// NewLoginSession returns a session allowing max failed attempts.
// Non-positive values fall back to DefaultMaxLoginAttempts.
func NewLoginSession(max int) *LoginSession {
	if max <= 0 {
		max = DefaultMaxLoginAttempts
	}
	return &LoginSession{MaxAttempts: max}
}

// Remaining returns how many failed attempts are still allowed.
func (s *LoginSession) Remaining() int {
	if r := s.MaxAttempts - s.Attempts; r > 0 {
		return r
	}
	return 0
}

// Exhausted reports whether the session has used all attempts.
func (s *LoginSession) Exhausted() bool {
	return s.Attempts >= s.MaxAttempts
}

// Fail records one failed attempt.
func (s *LoginSession) Fail() {
	s.Attempts++
}

// OutcomeKind enumerates login results.
type OutcomeKind int

const (
	OutcomeSuccess OutcomeKind = iota
	OutcomeRejected
	OutcomeLocked
	OutcomeAlreadyLocked
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeRejected:
		return "rejected"
	case OutcomeLocked:
		return "locked"
	case OutcomeAlreadyLocked:
		return "already locked"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// LoginOutcome is the result of a single login attempt.
// Username is set on success; Remaining is meaningful for rejections.
type LoginOutcome struct {
	Kind      OutcomeKind
	Username  string
	Remaining int
}

// Terminal reports whether the login loop must stop after this outcome.
func (o LoginOutcome) Terminal() bool {
	return o.Kind != OutcomeRejected || o.Remaining == 0
}
