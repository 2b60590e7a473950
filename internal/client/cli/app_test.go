package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/authpages/internal/client/client"
	"github.com/dmitrijs2005/authpages/internal/client/pages"
	"github.com/dmitrijs2005/authpages/internal/client/session"
	"github.com/dmitrijs2005/authpages/internal/client/view"
	"github.com/dmitrijs2005/authpages/internal/testkit/fakeapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	app   *App
	out   *bytes.Buffer
	store *session.MemoryStore
	api   *fakeapi.Server
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	api := fakeapi.New([]byte("test-secret"))
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)

	store := session.NewMemoryStore()
	out := &bytes.Buffer{}
	app := NewApp(pages.Deps{API: c, Store: store}, strings.NewReader(""), out)
	return &harness{app: app, out: out, store: store, api: api}
}

// stubInputs replaces the prompt helpers with canned answers, served in order.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ *bufio.Reader, _ int, _ string, _ io.Writer) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func TestApp_RegisterLoginWhoamiLogout(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	stubInputs(t, []string{"alice"}, []string{"pw", "pw"})
	require.NoError(t, h.app.Register(ctx))
	assert.Equal(t, view.PathLogin, h.app.Page())
	assert.Contains(t, h.out.String(), "Registration successful.")

	stubInputs(t, []string{"alice"}, []string{"pw"})
	h.out.Reset()
	require.NoError(t, h.app.Login(ctx))
	assert.Equal(t, view.PathAuthenticated, h.app.Page())
	assert.Contains(t, h.out.String(), "Welcome, alice.")
	assert.Contains(t, h.out.String(), pages.MsgLoggedIn)

	token, err := h.store.Get(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	h.out.Reset()
	require.NoError(t, h.app.Whoami(ctx))
	assert.Contains(t, h.out.String(), "Welcome, alice.")
	assert.Equal(t, 2, h.api.Hits("/api/authenticate"))

	require.NoError(t, h.app.Logout(ctx))
	_, err = h.store.Get(ctx)
	require.ErrorIs(t, err, session.ErrNoToken)
	assert.Equal(t, view.PathLogin, h.app.Page())
}

func TestApp_RegisterPasswordMismatch(t *testing.T) {
	h := newHarness(t)

	stubInputs(t, []string{"bob"}, []string{"one", "two"})
	err := h.app.Register(context.Background())
	require.ErrorIs(t, err, pages.ErrPasswordMismatch)

	assert.Contains(t, h.out.String(), "Error: "+pages.MsgPasswordMismatch)
	assert.Equal(t, view.PathRegister, h.app.Page())
	assert.Equal(t, 0, h.api.Hits("/api/register"))
}

func TestApp_LoginShowsServerMessage(t *testing.T) {
	h := newHarness(t)

	stubInputs(t, []string{"nobody"}, []string{"pw"})
	err := h.app.Login(context.Background())

	var se *client.StatusError
	require.True(t, errors.As(err, &se))
	assert.Contains(t, h.out.String(), "Error: No user with given username exists!")
	assert.Equal(t, view.PathLogin, h.app.Page())
}

func TestApp_WhoamiWithoutSessionRedirectsToLogin(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, h.app.Whoami(context.Background()))
	assert.Equal(t, view.PathLogin, h.app.Page())
	assert.Contains(t, h.out.String(), "Please log in")
	assert.Equal(t, 0, h.api.Hits("/api/authenticate"))
}

func TestApp_WhoamiWithRejectedToken(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	require.NoError(t, h.store.Set(ctx, "not-a-jwt"))

	require.NoError(t, h.app.Whoami(ctx))
	out := h.out.String()
	assert.Contains(t, out, pages.MsgNotLoggedIn)
	assert.Contains(t, out, "Log in (/login.html)")
	assert.Equal(t, view.PathAuthenticated, h.app.Page())
}

func TestApp_Status(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	require.NoError(t, h.app.Status(ctx))
	assert.Contains(t, h.out.String(), "page: none, session: none")

	require.NoError(t, h.store.Set(ctx, "tok"))
	at, err := h.store.SavedAt(ctx)
	require.NoError(t, err)

	h.out.Reset()
	require.NoError(t, h.app.Status(ctx))
	assert.Contains(t, h.out.String(), "session: stored (since "+at.Local().Format(time.DateTime)+")")

	require.NoError(t, h.store.Set(ctx, ""))
	h.out.Reset()
	require.NoError(t, h.app.Status(ctx))
	assert.Contains(t, h.out.String(), "session: none")
	assert.NotContains(t, h.out.String(), "since")
}

// plainStore records no save time.
type plainStore struct{ session.Store }

func TestApp_StatusWithoutSaveTime(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "tok"))

	out := &bytes.Buffer{}
	app := NewApp(pages.Deps{Store: plainStore{store}}, strings.NewReader(""), out)
	require.NoError(t, app.Status(ctx))
	assert.Equal(t, "page: none, session: stored\n", out.String())
}

func TestApp_InputErrorStopsCommand(t *testing.T) {
	h := newHarness(t)

	stubInputs(t, nil, nil)
	require.ErrorIs(t, h.app.Login(context.Background()), io.EOF)
	assert.Equal(t, 0, h.api.Hits("/api/login"))
}

func TestApp_Run(t *testing.T) {
	api := fakeapi.New([]byte("k"))
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	app := NewApp(pages.Deps{API: c, Store: session.NewMemoryStore()}, strings.NewReader("status\nexit\n"), out)
	app.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to authpages CLI")
	assert.Contains(t, out.String(), "auth (/login.html)> ")
	assert.Contains(t, out.String(), "page: /login.html, session: none")
	assert.Contains(t, out.String(), "Bye!")
}

func TestApp_RunWithPipedInput(t *testing.T) {
	api := fakeapi.New([]byte("k"))
	srv := httptest.NewServer(api.Handler())
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(srv.URL)
	require.NoError(t, err)

	script := strings.Join([]string{
		"register", "erin", "pw", "pw",
		"login", "erin", "pw",
		"exit",
	}, "\n") + "\n"

	store := session.NewMemoryStore()
	out := &bytes.Buffer{}
	app := NewApp(pages.Deps{API: c, Store: store}, strings.NewReader(script), out)
	app.Run(context.Background())

	assert.Contains(t, out.String(), "Registration successful.")
	assert.Contains(t, out.String(), "Welcome, erin.")
	assert.Contains(t, out.String(), "Bye!")
	assert.Equal(t, view.PathAuthenticated, app.Page())

	token, err := store.Get(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}
