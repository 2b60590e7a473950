package pages

import (
	"context"

	"github.com/dmitrijs2005/authpages/internal/client/client"
	"github.com/dmitrijs2005/authpages/internal/client/models"
	"github.com/dmitrijs2005/authpages/internal/client/view"
)

// RegisterForm handles submissions of the registration form. A password
// that differs from its confirmation is rejected locally without a request.
type RegisterForm struct {
	form
	api client.Client
}

func NewRegisterForm(d Deps, v view.Form) *RegisterForm {
	return &RegisterForm{
		form: form{view: v, log: d.logger(view.IDRegisterForm), policy: d.Policy},
		api:  d.API,
	}
}

// Submit runs one registration attempt. On 201 the page navigates to the
// login page and nil is returned.
func (f *RegisterForm) Submit(ctx context.Context) error {
	if err := f.m.begin(); err != nil {
		return err
	}

	password := f.view.Value(view.IDPassword)
	confirm := f.view.Value(view.IDConfirmPassword)
	f.view.HideError()

	if password != confirm {
		f.view.ShowError(view.Text(MsgPasswordMismatch))
		f.m.set(StateFailed)
		return ErrPasswordMismatch
	}

	req := models.RegisterRequest{
		Username: f.view.Value(view.IDUsername),
		Password: password,
	}

	f.submitting()
	if err := f.api.Register(ctx, req); err != nil {
		return f.failRequest(ctx, err)
	}

	f.log.Info(ctx, "registered", "username", req.Username)
	f.succeed(view.PathLogin)
	return nil
}
