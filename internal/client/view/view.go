// Package view declares what the page handlers need from a page: the
// elements they read and write, and navigation. A browser binding, the
// terminal front end and test fakes all implement these interfaces.
package view

// Element IDs the handlers bind to.
const (
	IDHeader          = "header"
	IDInfo            = "info"
	IDUsername        = "Username"
	IDPassword        = "Password"
	IDConfirmPassword = "confirm_password"
	IDErrorMessage    = "errorMessage"
	IDLoginForm       = "loginForm"
	IDRegisterForm    = "registerForm"
)

// Page paths used as navigation targets.
const (
	PathLogin         = "/login.html"
	PathRegister      = "/register.html"
	PathAuthenticated = "/authenticated.html"
)

type Navigator interface {
	// Navigate leaves the current page for path.
	Navigate(path string)
}

// Banner binds the header and info regions of a protected page.
type Banner interface {
	Navigator
	SetHeader(content HTML)
	SetInfo(content HTML)
}

// Form binds a submitted form: its input values, its errorMessage
// element and its submit control.
type Form interface {
	Navigator
	// Value returns the current content of the input with the given id.
	Value(id string) string
	// ShowError makes errorMessage visible with content.
	ShowError(content HTML)
	// HideError hides errorMessage.
	HideError()
	// SetSubmitEnabled enables or disables the submit control.
	SetSubmitEnabled(enabled bool)
}
