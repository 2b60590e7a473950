// Package cli provides the interactive terminal front end for the auth
// pages.
//
// It binds the page handlers (banner, login form, registration form) to
// stdin/stdout through a terminal view. Pages are addressed by path and
// navigating to one loads it: the authenticated page runs the banner, the
// login and registration pages print a hint.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
