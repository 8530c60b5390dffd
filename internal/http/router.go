package http

import (
	"net/http"

	"libraryapi/internal/session"
)

// RouterDeps bundles everything the route table needs.
type RouterDeps struct {
	Auth       *AuthHandler
	Books      *BookHandler
	Borrowings *BorrowingHandler
	Stats      *StatsHandler
	Sessions   *session.Store
}

// NewRouter builds the route table. Catalog reads and stats are public;
// everything that acts as a user sits behind the auth middleware.
func NewRouter(deps RouterDeps) http.Handler {
	requireAuth := AuthMiddleware(deps.Sessions)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	mux.HandleFunc("POST /auth/signup", deps.Auth.Signup)
	mux.HandleFunc("POST /auth/login", deps.Auth.Login)
	mux.Handle("POST /auth/logout", requireAuth(http.HandlerFunc(deps.Auth.Logout)))
	mux.Handle("GET /me", requireAuth(http.HandlerFunc(deps.Auth.Me)))

	mux.HandleFunc("GET /books", deps.Books.List)
	mux.Handle("POST /books", requireAuth(http.HandlerFunc(deps.Books.Create)))
	mux.Handle("DELETE /books/{id}", requireAuth(http.HandlerFunc(deps.Books.Delete)))

	mux.Handle("GET /borrowings", requireAuth(http.HandlerFunc(deps.Borrowings.List)))
	mux.Handle("POST /borrowings", requireAuth(http.HandlerFunc(deps.Borrowings.Create)))
	mux.Handle("POST /borrowings/{id}/return", requireAuth(http.HandlerFunc(deps.Borrowings.Return)))

	mux.HandleFunc("GET /stats", deps.Stats.Summary)

	return mux
}
