package pages

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/authpages/internal/client/client"
	"github.com/dmitrijs2005/authpages/internal/client/models"
	"github.com/dmitrijs2005/authpages/internal/client/session"
	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/dmitrijs2005/authpages/internal/logging"
)

// Banner fills the header and info regions of a protected page.
type Banner struct {
	api   client.Client
	store session.Store
	view  view.Banner
	log   logging.Logger
}

func NewBanner(d Deps, v view.Banner) *Banner {
	return &Banner{api: d.API, store: d.Store, view: v, log: d.logger("banner")}
}

// Welcome is the header shown to an authenticated user.
func Welcome(username string) view.HTML {
	return view.Text(fmt.Sprintf("Welcome, %s.", username))
}

// Render runs once per page load.
//
// Without a stored token it navigates to the login page and returns
// session.ErrNoToken; no request is made. Otherwise it sends exactly one
// authenticate request: on success the header greets the user, on any
// failure the header says so and the info region offers the login link.
func (b *Banner) Render(ctx context.Context) (*models.UserInfo, error) {
	token, err := b.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, session.ErrNoToken) {
			b.log.Error(ctx, "reading session token failed", "error", err)
		}
		b.view.Navigate(view.PathLogin)
		return nil, err
	}

	info, err := b.api.Authenticate(ctx, token)
	if err == nil && (info == nil || info.Username == "") {
		err = fmt.Errorf("%w: missing Username", client.ErrMalformedResponse)
	}
	if err != nil {
		var se *client.StatusError
		switch {
		case errors.As(err, &se):
			b.log.Info(ctx, "session rejected", "status", se.Code)
			b.view.SetHeader(view.Text(MsgNotLoggedIn))
		case errors.Is(err, client.ErrMalformedResponse):
			b.log.Warn(ctx, "unreadable user info", "error", err)
			b.view.SetHeader(view.Text(MsgNotLoggedIn))
		default:
			b.log.Error(ctx, "authenticate request failed", "error", err)
			b.view.SetHeader(view.Text(MsgNetworkError))
		}
		b.view.SetInfo(view.LoginLink)
		return nil, err
	}

	b.view.SetHeader(Welcome(info.Username))
	b.view.SetInfo(view.Text(MsgLoggedIn))
	return info, nil
}
