// Package cli provides the interactive admin console.
//
// It wires configuration, the local database, the session, the API gateway
// and services, and runs a REPL over them. Without a session only captcha,
// login and register are available; after login the console can manage
// users, roles, menus and orders and hold an AI chat whose transcript is
// kept on this machine.
//
// Results are printed as indented JSON. Failures are printed as the
// gateway's user-facing message; an authorization failure logs the user out.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
