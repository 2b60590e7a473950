// Package pages implements the three page components of the auth flow:
//
//   - Banner renders the welcome/login banner of a protected page from the
//     stored session token.
//   - LoginForm posts credentials, stores the returned token and moves on
//     to the authenticated page.
//   - RegisterForm checks the password confirmation locally, posts the new
//     account and moves on to the login page.
//
// Components never touch global state: the API client, the session store
// and the page itself (see package view) are injected, so they run the
// same against a browser binding, the terminal front end or test fakes.
//
// # Form lifecycle
//
//	Idle -> Validating -> Submitting -> Succeeded
//	           |              |
//	           +---> Failed <-+
//
// Failed is not terminal: a new Submit starts again from Validating.
// While a request is in flight the submit control is disabled and a
// second Submit returns ErrSubmitInProgress without sending anything.
// Every failure, including transport failures, ends in Failed with a
// visible error message.
package pages
