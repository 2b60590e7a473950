package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/authpages/internal/client/session"
	"github.com/dmitrijs2005/authpages/internal/client/view"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a username, a password and its confirmation, then
// submits the registration form. On success the login page is loaded.
//
// The password buffers are wiped before returning. Input errors and the
// form's error are returned; the form has already shown the message.
func (a *App) Register(ctx context.Context) error {
	a.page = view.PathRegister

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.ttyFD, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	confirm, err := getPassword(a.reader, a.ttyFD, "Confirm password", a.out)
	if err != nil {
		return err
	}
	defer wipe(confirm)

	a.registerView.fill(map[string]string{
		view.IDUsername:        userName,
		view.IDPassword:        string(password),
		view.IDConfirmPassword: string(confirm),
	})

	err = a.register.Submit(ctx)
	if err == nil {
		a.println("Registration successful.")
	}
	a.follow(ctx)
	return err
}

// Login prompts for credentials and submits the login form. On success
// the token is stored and the authenticated page is loaded.
func (a *App) Login(ctx context.Context) error {
	a.page = view.PathLogin

	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.ttyFD, "Enter password", a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	a.loginView.fill(map[string]string{
		view.IDUsername: userName,
		view.IDPassword: string(password),
	})

	err = a.login.Submit(ctx)
	a.follow(ctx)
	return err
}

// Whoami loads the authenticated page, which asks the API who the stored
// session belongs to.
func (a *App) Whoami(ctx context.Context) error {
	a.navigate(view.PathAuthenticated)
	a.follow(ctx)
	return nil
}

// Logout removes the stored session token and loads the login page.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "clearing session failed", "error", err)
		a.println("Error: could not clear the session.")
		return err
	}
	a.println("Logged out.")
	a.navigate(view.PathLogin)
	a.follow(ctx)
	return nil
}

// Status prints the current page and whether a session token is stored.
func (a *App) Status(ctx context.Context) error {
	page := a.page
	if page == "" {
		page = "none"
	}

	_, err := a.store.Get(ctx)
	var sessionState string
	switch {
	case err == nil:
		sessionState = "stored"
		if ts, ok := a.store.(session.Timestamped); ok {
			if at, err := ts.SavedAt(ctx); err == nil {
				sessionState += " (since " + at.Local().Format(time.DateTime) + ")"
			}
		}
	case errors.Is(err, session.ErrNoToken):
		sessionState = "none"
	default:
		a.log.Error(ctx, "reading session failed", "error", err)
		sessionState = "unreadable"
	}

	a.println(fmt.Sprintf("page: %s, session: %s", page, sessionState))
	return nil
}
