package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryapi/internal/account"
	"libraryapi/internal/testutil"
)

func TestBorrowBook(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := newTestServer(t)
		book := server.addBook(t, testutil.SampleDraft())
		token, _ := server.loginAs(t, "ada@x.com", account.RoleMember)

		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings",
			map[string]any{"book_id": book.ID}, token))

		require.Equal(t, http.StatusCreated, w.Code)
		data := testutil.DecodeBody(w)["data"].(map[string]any)
		assert.Equal(t, "borrowed", data["status"])
		assert.Equal(t, "borrowed", data["display_status"])
	})

	t.Run("requires auth", func(t *testing.T) {
		server := newTestServer(t)
		book := server.addBook(t, testutil.SampleDraft())

		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequest(http.MethodPost, "/borrowings",
			map[string]any{"book_id": book.ID}))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("double borrow is a conflict", func(t *testing.T) {
		server := newTestServer(t)
		book := server.addBook(t, testutil.SampleDraft())
		token, _ := server.loginAs(t, "ada@x.com", account.RoleMember)

		body := map[string]any{"book_id": book.ID}
		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings", body, token))
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings", body, token))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "ALREADY_BORROWED")
	})

	t.Run("no copies is a conflict", func(t *testing.T) {
		server := newTestServer(t)
		draft := testutil.SampleDraft()
		draft.TotalCopies = 1
		book := server.addBook(t, draft)

		firstToken, _ := server.loginAs(t, "first@x.com", account.RoleMember)
		secondToken, _ := server.loginAs(t, "second@x.com", account.RoleMember)

		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings",
			map[string]any{"book_id": book.ID}, firstToken))
		require.Equal(t, http.StatusCreated, w.Code)

		w = httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings",
			map[string]any{"book_id": book.ID}, secondToken))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "NO_COPIES_AVAILABLE")
	})

	t.Run("unknown book", func(t *testing.T) {
		server := newTestServer(t)
		token, _ := server.loginAs(t, "ada@x.com", account.RoleMember)

		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings",
			map[string]any{"book_id": "missing"}, token))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestReturnBook(t *testing.T) {
	t.Run("success then conflict on second return", func(t *testing.T) {
		server := newTestServer(t)
		book := server.addBook(t, testutil.SampleDraft())
		token, userID := server.loginAs(t, "ada@x.com", account.RoleMember)

		loan, err := server.loans.Borrow(context.Background(), userID, book.ID)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings/"+loan.ID+"/return", nil, token))
		require.Equal(t, http.StatusOK, w.Code)
		data := testutil.DecodeBody(w)["data"].(map[string]any)
		assert.Equal(t, "returned", data["status"])
		assert.NotNil(t, data["returned_at"])

		w = httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings/"+loan.ID+"/return", nil, token))
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "NOT_BORROWED")
	})

	t.Run("unknown borrowing", func(t *testing.T) {
		server := newTestServer(t)
		token, _ := server.loginAs(t, "ada@x.com", account.RoleMember)

		w := httptest.NewRecorder()
		server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodPost, "/borrowings/missing/return", nil, token))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListBorrowings(t *testing.T) {
	server := newTestServer(t)
	book := server.addBook(t, testutil.SampleDraft())
	token, userID := server.loginAs(t, "ada@x.com", account.RoleMember)

	_, err := server.loans.Borrow(context.Background(), userID, book.ID)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/borrowings", nil, token))

	require.Equal(t, http.StatusOK, w.Code)
	body := testutil.DecodeBody(w)
	data := body["data"].([]any)
	require.Len(t, data, 1)

	loan := data[0].(map[string]any)
	assert.Equal(t, userID, loan["user_id"])

	// The joined book rides along for display.
	joined, ok := loan["book"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Dune", joined["title"])
}

func TestStatsEndpoint(t *testing.T) {
	server := newTestServer(t)
	server.addBook(t, testutil.SampleDraft())

	w := httptest.NewRecorder()
	server.router.ServeHTTP(w, testutil.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, w.Code)
	data := testutil.DecodeBody(w)["data"].(map[string]any)
	assert.Equal(t, float64(1), data["total_books"])
	assert.Equal(t, float64(2), data["available_copies"])
	assert.Equal(t, float64(0), data["active_loans"])
	assert.Equal(t, float64(1), data["categories"])
}
