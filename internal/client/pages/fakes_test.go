package pages

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/authpages/internal/client/models"
	"github.com/dmitrijs2005/authpages/internal/client/view"
)

// ---- fake API ----

type fakeAPI struct {
	mu sync.Mutex

	AuthInfo *models.UserInfo
	AuthErr  error

	LoginToken string
	LoginErr   error

	RegisterErr error

	// loginGate, when set, blocks Login until it is closed; loginEntered
	// is signalled once Login has been entered.
	loginGate    chan struct{}
	loginEntered chan struct{}

	AuthCalls     int
	LoginCalls    int
	RegisterCalls int

	LastToken    string
	LastLogin    models.LoginRequest
	LastRegister models.RegisterRequest
}

func (f *fakeAPI) Authenticate(ctx context.Context, token string) (*models.UserInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.AuthCalls++
	f.LastToken = token
	return f.AuthInfo, f.AuthErr
}

func (f *fakeAPI) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	f.mu.Lock()
	f.LoginCalls++
	f.LastLogin = req
	gate, entered := f.loginGate, f.loginEntered
	f.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.LoginToken, f.LoginErr
}

func (f *fakeAPI) Register(ctx context.Context, req models.RegisterRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.RegisterCalls++
	f.LastRegister = req
	return f.RegisterErr
}

func (f *fakeAPI) calls() (auth, login, register int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.AuthCalls, f.LoginCalls, f.RegisterCalls
}

// ---- fake page ----

type fakePage struct {
	mu sync.Mutex

	values map[string]string

	header view.HTML
	info   view.HTML

	errorVisible bool
	errorContent view.HTML

	submitEnabled bool
	submitToggles []bool
	navigatedTo   []string
}

func newFakePage(values map[string]string) *fakePage {
	if values == nil {
		values = map[string]string{}
	}
	return &fakePage{values: values, submitEnabled: true}
}

func (p *fakePage) Navigate(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navigatedTo = append(p.navigatedTo, path)
}

func (p *fakePage) SetHeader(content view.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.header = content
}

func (p *fakePage) SetInfo(content view.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.info = content
}

func (p *fakePage) Value(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values[id]
}

func (p *fakePage) set(id, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.values[id] = value
}

func (p *fakePage) ShowError(content view.HTML) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errorVisible = true
	p.errorContent = content
}

func (p *fakePage) HideError() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errorVisible = false
}

func (p *fakePage) SetSubmitEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.submitEnabled = enabled
	p.submitToggles = append(p.submitToggles, enabled)
}

func (p *fakePage) navigations() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.navigatedTo...)
}

func (p *fakePage) submitState() (enabled bool, toggles []bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.submitEnabled, append([]bool(nil), p.submitToggles...)
}

// ---- failing store ----

type failingStore struct {
	getErr error
	setErr error
}

func (s failingStore) Get(context.Context) (string, error) { return "", s.getErr }
func (s failingStore) Set(context.Context, string) error   { return s.setErr }
func (s failingStore) Clear(context.Context) error         { return nil }

var errBoom = errors.New("boom")
