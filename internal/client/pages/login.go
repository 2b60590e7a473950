package pages

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/authpages/internal/client/client"
	"github.com/dmitrijs2005/authpages/internal/client/models"
	"github.com/dmitrijs2005/authpages/internal/client/session"
	"github.com/dmitrijs2005/authpages/internal/client/view"
)

// LoginForm handles submissions of the login form.
//
// On 200 the response body is stored as the session token and the page
// navigates to the authenticated page. Any other outcome shows an error
// and leaves the stored token untouched.
type LoginForm struct {
	form
	api   client.Client
	store session.Store
}

func NewLoginForm(d Deps, v view.Form) *LoginForm {
	return &LoginForm{
		form:  form{view: v, log: d.logger(view.IDLoginForm), policy: d.Policy},
		api:   d.API,
		store: d.Store,
	}
}

// Submit runs one login attempt. It returns nil once the page has
// navigated away, otherwise the error behind the message on display.
func (f *LoginForm) Submit(ctx context.Context) error {
	if err := f.m.begin(); err != nil {
		return err
	}

	req := models.LoginRequest{
		Username: f.view.Value(view.IDUsername),
		Password: f.view.Value(view.IDPassword),
	}
	f.view.HideError()

	f.submitting()
	token, err := f.api.Login(ctx, req)
	if err != nil {
		return f.failRequest(ctx, err)
	}

	if err := f.store.Set(ctx, token); err != nil {
		f.log.Error(ctx, "storing session token failed", "error", err)
		return f.fail(view.Text(MsgSessionNotSaved), fmt.Errorf("store token: %w", err))
	}

	f.log.Info(ctx, "logged in", "username", req.Username)
	f.succeed(view.PathAuthenticated)
	return nil
}
