package middleware

import (
	"crypto/subtle"
	"net/http"
)

// BasicAuth guards a handler with a single username and password.
// With both left empty it lets every request through.
type BasicAuth struct {
	realm    string
	username []byte
	password []byte
}

// NewBasicAuth creates a gate that challenges clients with the given realm.
func NewBasicAuth(realm, username, password string) *BasicAuth {
	return &BasicAuth{
		realm:    realm,
		username: []byte(username),
		password: []byte(password),
	}
}

// Enabled reports whether credentials are required.
func (a *BasicAuth) Enabled() bool {
	return len(a.username) > 0 || len(a.password) > 0
}

// Handler wraps next. A disabled gate returns next unchanged.
func (a *BasicAuth) Handler(next http.Handler) http.Handler {
	if !a.Enabled() {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !a.allows(r) {
			w.Header().Set("WWW-Authenticate", `Basic realm="`+a.realm+`"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// allows checks the request's credentials. Both fields are always compared.
func (a *BasicAuth) allows(r *http.Request) bool {
	user, pass, ok := r.BasicAuth()
	if !ok {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), a.username)
	passOK := subtle.ConstantTimeCompare([]byte(pass), a.password)
	return userOK&passOK == 1
}
