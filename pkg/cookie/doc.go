// Package cookie wraps net/http cookies with sealed (AES-GCM encrypted) values
// and one-time flash messages.
//
//	jar, err := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	_ = jar.SetSealed(w, "sid", token, cookie.WithMaxAge(3600))
//	token, err := jar.GetSealed(r, "sid")
//
// Keys are derived from each secret with SHA-256. Passing several secrets
// allows rotation: new cookies are sealed with the first, old ones still open
// with any of them.
package cookie
