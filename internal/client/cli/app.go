package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/authpages/internal/client/pages"
	"github.com/dmitrijs2005/authpages/internal/client/session"
	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/dmitrijs2005/authpages/internal/logging"
)

type App struct {
	deps   pages.Deps
	store  session.Store
	log    logging.Logger
	reader *bufio.Reader
	ttyFD  int
	out    io.Writer

	page    string
	pending []string

	loginView    *terminalView
	registerView *terminalView
	login        *pages.LoginForm
	register     *pages.RegisterForm
}

// NewApp wires the page handlers to a terminal reading from in and
// writing to out.
func NewApp(d pages.Deps, in io.Reader, out io.Writer) *App {
	a := &App{
		deps:   d,
		store:  d.Store,
		log:    d.Log,
		reader: bufio.NewReader(in),
		ttyFD:  terminalFD(in),
		out:    out,
	}
	if a.log == nil {
		a.log = logging.Discard()
	}
	a.log = a.log.With("component", "cli")

	a.loginView = newTerminalView(a)
	a.registerView = newTerminalView(a)
	a.login = pages.NewLoginForm(d, a.loginView)
	a.register = pages.NewRegisterForm(d, a.registerView)
	return a
}

// Run opens the authenticated page and then serves commands until the
// user exits or input ends.
func (a *App) Run(ctx context.Context) {
	a.println("Welcome to authpages CLI (type 'help' for commands)")
	a.navigate(view.PathAuthenticated)
	a.follow(ctx)
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

// Page is the path of the page currently loaded.
func (a *App) Page() string {
	return a.page
}

func (a *App) println(s string) {
	fmt.Fprintln(a.out, s)
}

func (a *App) getStatus() string {
	if a.page == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.page)
}

// navigate queues path; follow loads it once the current handler is done.
func (a *App) navigate(path string) {
	a.pending = append(a.pending, path)
}

func (a *App) follow(ctx context.Context) {
	for len(a.pending) > 0 {
		path := a.pending[0]
		a.pending = a.pending[1:]
		a.load(ctx, path)
	}
}

func (a *App) load(ctx context.Context, path string) {
	a.page = path
	a.log.Debug(ctx, "page loaded", "path", path)

	switch path {
	case view.PathAuthenticated:
		_, _ = pages.NewBanner(a.deps, newTerminalView(a)).Render(ctx)
	case view.PathLogin:
		a.println("Please log in (type 'login'), or 'register' to create an account.")
	case view.PathRegister:
		a.println("Create an account with 'register'.")
	}
}
