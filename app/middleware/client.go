// Package middleware holds the HTTP middleware shared by every route.
package middleware

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"github.com/google/uuid"
)

const (
	// ClientHeader carries the browser's client id
	ClientHeader = "X-Client-ID"
	// ClientCookie is the cookie fallback for ClientHeader
	ClientCookie = "client_id"

	clientCookieMaxAge = 365 * 24 * time.Hour
)

type clientKey struct{}

var validClientID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ClientID resolves the client id from the header or cookie. When neither
// holds a usable id a new one is issued as a cookie.
func ClientID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(ClientHeader)
		if !validClientID.MatchString(id) {
			id = ""
			if c, err := r.Cookie(ClientCookie); err == nil && validClientID.MatchString(c.Value) {
				id = c.Value
			}
		}

		if id == "" {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     ClientCookie,
				Value:    id,
				Path:     "/",
				MaxAge:   int(clientCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		w.Header().Set(ClientHeader, id)
		next.ServeHTTP(w, r.WithContext(WithClientID(r.Context(), id)))
	})
}

// WithClientID stores id in ctx
func WithClientID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, clientKey{}, id)
}

// ClientIDFrom returns the client id stored by ClientID
func ClientIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(clientKey{}).(string)
	return id
}
