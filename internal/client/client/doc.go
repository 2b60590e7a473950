// Package client talks to the auth API.
//
// # Overview
//
// The package provides a transport-agnostic contract (see the Client
// interface) covering the three endpoints the pages rely on, and an
// HTTP/JSON implementation (see HTTPClient):
//
//	GET  /api/authenticate   Authorization: Bearer <token>  -> 2xx + UserInfo JSON
//	POST /api/login          {"Username","Password"}        -> 200 + raw token body
//	POST /api/register       {"username","password"}        -> 201
//
// # Error Handling
//
// A response with any other status is returned as *StatusError, which
// carries the status code and the response body text (the server's
// human-readable message). StatusError unwraps to ErrUnauthorized for 401
// and 403 and to ErrUnexpectedStatus otherwise. Transport failures,
// including timeouts, wrap ErrUnavailable. Callers match with errors.Is
// and errors.As.
//
// Every request carries a fresh X-Request-ID header that is also logged.
package client
