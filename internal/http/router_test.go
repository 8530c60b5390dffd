package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"libraryapi/internal/account"
	"libraryapi/internal/borrow"
	"libraryapi/internal/catalog"
	"libraryapi/internal/session"
	"libraryapi/internal/stats"
	"libraryapi/internal/store"
)

// testServer wires the full stack against a fresh in-memory store. Handler
// tests hit the real engine; there is nothing worth mocking behind it.
type testServer struct {
	router   http.Handler
	sessions *session.Store
	accounts *account.Service
	books    *catalog.Service
	loans    *borrow.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	memory := store.NewMemory()
	accountRepo := store.NewAccountRepo(memory)
	bookRepo := store.NewBookRepo(memory)
	borrowRepo := store.NewBorrowRepo(memory)
	statsRepo := store.NewStatsRepo(memory)

	sessions := session.NewStore(time.Hour)
	accounts := account.NewService(accountRepo)
	books := catalog.NewService(bookRepo)
	loans := borrow.NewService(borrowRepo)

	router := NewRouter(RouterDeps{
		Auth:       NewAuthHandler(accounts, sessions),
		Books:      NewBookHandler(books),
		Borrowings: NewBorrowingHandler(loans),
		Stats:      NewStatsHandler(stats.NewService(statsRepo)),
		Sessions:   sessions,
	})

	return &testServer{
		router:   router,
		sessions: sessions,
		accounts: accounts,
		books:    books,
		loans:    loans,
	}
}

// loginAs registers the account if needed and opens a session with the given
// role, returning the bearer token and account ID.
func (s *testServer) loginAs(t *testing.T, email, role string) (token, userID string) {
	t.Helper()
	ctx := context.Background()

	acct, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		acct, err = s.accounts.Register(ctx, email, "Test User")
		require.NoError(t, err)
	}

	sess, err := s.sessions.Open(ctx, acct.ID, role)
	require.NoError(t, err)
	return sess.Token, acct.ID
}

func (s *testServer) addBook(t *testing.T, draft catalog.Draft) catalog.Book {
	t.Helper()
	book, err := s.books.Add(context.Background(), draft)
	require.NoError(t, err)
	return book
}
