package app

import (
	"net/http"

	"github.com/heartmarshall/joinrss-backend/internal/transport/middleware"
	"github.com/heartmarshall/joinrss-backend/internal/transport/rest"
)

// NewRouter builds the HTTP handler with the full middleware chain.
// Bearer tokens are only checked on routes that need a session, so a stale
// token never blocks login or the health endpoints. The caller owns limiter and must
// Stop it on shutdown.
func NewRouter(c *Container, limiter *middleware.RateLimiter) http.Handler {
	health := rest.NewHealthHandler(c.Pool, c.Schema, BuildVersion(), rest.RegistrySettings{
		ExportMaxRows:       c.Config.Export.MaxRows,
		ExportDefaultFormat: c.Config.Export.DefaultFormat,
		SessionTTL:          c.Config.Auth.SessionTTL,
		LoginPerMinute:      c.Config.RateLimit.LoginPerMinute,
	}, c.Logger)
	authH := rest.NewAuthHandler(c.Auth, c.Logger)
	members := rest.NewMemberHandler(c.Members, c.Logger)

	requireSession := middleware.Chain(middleware.Auth(c.Auth), middleware.RequireSession)
	signedIn := func(h http.HandlerFunc) http.Handler {
		return requireSession(h)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.Handle("POST /auth/login", limiter.Limit(c.Config.RateLimit.LoginPerMinute)(http.HandlerFunc(authH.Login)))
	mux.Handle("GET /auth/session", signedIn(authH.Session))
	mux.Handle("POST /auth/logout", signedIn(authH.Logout))

	mux.Handle("GET /members", signedIn(members.List))
	mux.Handle("POST /members", signedIn(members.Create))
	mux.Handle("POST /members/search", signedIn(members.Search))
	mux.Handle("GET /members/export", signedIn(members.Export))
	mux.Handle("GET /members/{id}", signedIn(members.Get))
	mux.Handle("PATCH /members/{id}", signedIn(members.Update))
	mux.Handle("DELETE /members/{id}", signedIn(members.Delete))

	return middleware.Chain(
		middleware.Recovery(c.Logger),
		middleware.RequestID,
		middleware.Logger(c.Logger),
		middleware.CORS(c.Config.CORS),
	)(mux)
}
