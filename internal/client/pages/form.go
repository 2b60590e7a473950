package pages

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/authpages/internal/client/client"
	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/dmitrijs2005/authpages/internal/logging"
)

// form holds what LoginForm and RegisterForm have in common.
type form struct {
	m      machine
	view   view.Form
	log    logging.Logger
	policy view.MessagePolicy
}

// State reports where the form is in its lifecycle.
func (f *form) State() State {
	return f.m.get()
}

// submitting disables the submit control for the duration of a request.
func (f *form) submitting() {
	f.m.set(StateSubmitting)
	f.view.SetSubmitEnabled(false)
}

func (f *form) succeed(path string) {
	f.m.set(StateSucceeded)
	f.view.HideError()
	f.view.Navigate(path)
}

// fail shows content, re-enables the form and returns err unchanged.
func (f *form) fail(content view.HTML, err error) error {
	f.view.ShowError(content)
	f.view.SetSubmitEnabled(true)
	f.m.set(StateFailed)
	return err
}

// failRequest maps an API error to the message shown: the server's text
// for a rejected request, a generic network message for anything else.
func (f *form) failRequest(ctx context.Context, err error) error {
	var se *client.StatusError
	if errors.As(err, &se) {
		f.log.Info(ctx, "request rejected", "status", se.Code)
		return f.fail(f.policy.Render(se.Body), err)
	}
	f.log.Error(ctx, "request failed", "error", err)
	return f.fail(view.Text(MsgNetworkError), err)
}
