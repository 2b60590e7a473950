package pages

import (
	"errors"
	"sync"

	"github.com/dmitrijs2005/authpages/internal/client/client"
	"github.com/dmitrijs2005/authpages/internal/client/session"
	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/dmitrijs2005/authpages/internal/logging"
)

type State int

const (
	StateIdle State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

var (
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrSubmitInProgress = errors.New("submit already in progress")
)

// Texts shown to the user.
const (
	MsgLoggedIn         = "You have logged in successfully."
	MsgNotLoggedIn      = "You are not logged in."
	MsgPasswordMismatch = "Passwords do not match."
	MsgNetworkError     = "Network error, please try again."
	MsgSessionNotSaved  = "Could not save the session, please try again."
)

// Deps are the collaborators shared by all components. Store may be nil
// for RegisterForm. A nil Log discards.
type Deps struct {
	API    client.Client
	Store  session.Store
	Log    logging.Logger
	Policy view.MessagePolicy
}

func (d Deps) logger(component string) logging.Logger {
	l := d.Log
	if l == nil {
		l = logging.Discard()
	}
	return l.With("component", component)
}

// machine guards a form's state. begin and finish bracket one submission.
type machine struct {
	mu    sync.Mutex
	state State
}

// begin enters Validating, refusing while another submission is running.
func (m *machine) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == StateValidating || m.state == StateSubmitting {
		return ErrSubmitInProgress
	}
	m.state = StateValidating
	return nil
}

func (m *machine) set(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *machine) get() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}
