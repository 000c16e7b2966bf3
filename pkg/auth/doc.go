// Package auth verifies identifier/secret pairs and ties a successful login to
// an authenticated session.
//
// Secrets are stored as bcrypt hashes. Every failed check returns
// ErrInvalidCredentials so callers cannot tell an unknown identifier from a
// wrong secret.
//
//	creds, _ := auth.NewDemoStore(cfg)
//	svc := auth.NewService(creds, sessions, auth.WithLogger(log))
//
//	r.With(svc.RequireLogin("/login")).Get("/dashboard", dashboard)
//
// Login rotates the session token; Logout deletes the session and clears the
// cookie.
package auth
