// Package approval tracks a user's membership state through the admin
// approval workflow and drives which application surface is visible.
package approval

import (
	"sync"

	"github.com/financeflowpro/backend/internal/models"
)

type State int

const (
	StateUnauthenticated State = iota
	StatePending
	StateApproved
	StateRejected
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StatePending:
		return "pending"
	case StateApproved:
		return "approved"
	case StateRejected:
		return "rejected"
	}
	return "unknown"
}

// StateFor maps a stored user status to a session state. The visible mode is
// a pure function of the latest status; unknown values are treated as
// pending so no data is revealed by accident.
func StateFor(status models.UserStatus) State {
	switch status {
	case models.StatusApproved:
		return StateApproved
	case models.StatusRejected:
		return StateRejected
	default:
		return StatePending
	}
}

// Hooks are the entry actions fired when the machine enters a state:
// OnPending shows the blocking "awaiting approval" view, OnApproved reveals
// the application surface, OnRejected clears the local session and returns
// the user to the login screen. Nil hooks are skipped.
type Hooks struct {
	OnPending  func()
	OnApproved func()
	OnRejected func()
}

type Machine struct {
	mu    sync.Mutex
	state State
	hooks Hooks
}

// NewMachine starts in StateUnauthenticated.
func NewMachine(hooks Hooks) *Machine {
	return &Machine{state: StateUnauthenticated, hooks: hooks}
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Observe feeds a freshly fetched status into the machine and returns the
// resulting state. An unchanged status is a no-op. Approved→Pending is
// operationally unreachable without a direct backend edit, but the
// regression is honored: the pending view returns and polling may resume.
func (m *Machine) Observe(status models.UserStatus) State {
	next := StateFor(status)

	m.mu.Lock()
	if next == m.state {
		m.mu.Unlock()
		return next
	}
	m.state = next
	hooks := m.hooks
	m.mu.Unlock()

	switch next {
	case StatePending:
		if hooks.OnPending != nil {
			hooks.OnPending()
		}
	case StateApproved:
		if hooks.OnApproved != nil {
			hooks.OnApproved()
		}
	case StateRejected:
		if hooks.OnRejected != nil {
			hooks.OnRejected()
		}
	}
	return next
}

// Logout returns the machine to StateUnauthenticated without firing hooks.
// The next sign-in fetches a fresh status and starts a new session.
func (m *Machine) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = StateUnauthenticated
}
