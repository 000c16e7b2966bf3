// Package session manages server-side browser sessions.
//
// A Manager issues opaque random tokens, hands them to the client through a
// Transport (a sealed cookie by default) and keeps the session record in a
// Store. Two stores are provided: MemoryStore for single-instance deployments
// and RedisStore for shared state.
//
//	jar, _ := cookie.New(secrets)
//	mgr := session.NewFromConfig(cfg,
//	    session.WithCookieJar(jar),
//	    session.WithStore(session.NewRedisStore(rdb, cfg.RedisPrefix)),
//	)
//	r.Use(mgr.Middleware)
//
// Sessions expire after IdleTimeout without requests and never outlive
// MaxLifetime. SignIn always rotates the token; SignOut deletes the record and
// clears the cookie.
package session
