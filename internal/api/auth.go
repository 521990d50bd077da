package api

import (
	"net/http"
	"strings"
)

// Authorizer decides whether a request may reach the engine.
type Authorizer interface {
	// Authorize reports whether the request carries valid credentials.
	Authorize(r *http.Request) bool
	// Name identifies the scheme in logs and error payloads.
	Name() string
}

// AllowAll admits every request. Used when no API token is configured.
type AllowAll struct{}

func (AllowAll) Authorize(*http.Request) bool { return true }
func (AllowAll) Name() string                 { return "open" }

// BearerToken admits requests whose Authorization header carries the
// configured static token.
type BearerToken struct {
	Token string
}

func (b BearerToken) Authorize(r *http.Request) bool {
	header := r.Header.Get("Authorization")
	value, ok := strings.CutPrefix(header, "Bearer ")
	return ok && value == b.Token
}

func (BearerToken) Name() string { return "bearer" }

// RequireAuthorization wraps routes behind the given authorizer, returning
// 401 with a JSON body on rejection.
func RequireAuthorization(auth Authorizer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !auth.Authorize(r) {
				writeError(w, http.StatusUnauthorized, "Unauthorized", nil)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
