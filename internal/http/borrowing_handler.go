package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"libraryapi/internal/borrow"
	"libraryapi/internal/httpx"
)

type BorrowingHandler struct {
	loans *borrow.Service
}

func NewBorrowingHandler(loans *borrow.Service) *BorrowingHandler {
	return &BorrowingHandler{loans: loans}
}

// borrowingView is the wire shape of a loan: the stored record plus the
// display status derived from the due date at response time.
type borrowingView struct {
	borrow.Borrowing
	DisplayStatus string `json:"display_status"`
}

func viewOf(b borrow.Borrowing, now time.Time) borrowingView {
	return borrowingView{Borrowing: b, DisplayStatus: b.DisplayStatus(now)}
}

// List returns the authenticated user's borrowings in insertion order, each
// with its joined book when the book still exists.
func (h *BorrowingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	loans, err := h.loans.ListForUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, borrow.ErrNoActiveUser) {
			JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	now := time.Now()
	views := make([]borrowingView, 0, len(loans))
	for _, l := range loans {
		views = append(views, viewOf(l, now))
	}
	JSONSuccess(w, views, map[string]any{"total": len(views)})
}

type borrowReq struct {
	BookID string `json:"book_id" validate:"required"`
}

// Create borrows a book for the authenticated user.
func (h *BorrowingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFrom(r)

	var req borrowReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	loan, err := h.loans.Borrow(r.Context(), userID, req.BookID)
	if err != nil {
		switch {
		case errors.Is(err, borrow.ErrNoActiveUser):
			JSONError(w, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		case errors.Is(err, borrow.ErrBookNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
		case errors.Is(err, borrow.ErrNoCopies):
			JSONError(w, http.StatusConflict, "NO_COPIES_AVAILABLE", "No copies of this book are available", nil)
		case errors.Is(err, borrow.ErrAlreadyBorrowed):
			JSONError(w, http.StatusConflict, "ALREADY_BORROWED", "You already have this book on loan", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	JSONSuccessCreated(w, viewOf(loan, time.Now()))
}

// Return closes a loan. Returning an already-returned loan is a conflict and
// never touches availability a second time.
func (h *BorrowingHandler) Return(w http.ResponseWriter, r *http.Request) {
	borrowingID := r.PathValue("id")
	if borrowingID == "" {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Missing borrowing id", nil)
		return
	}

	loan, err := h.loans.Return(r.Context(), borrowingID)
	if err != nil {
		switch {
		case errors.Is(err, borrow.ErrNotFound):
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Borrowing not found", nil)
		case errors.Is(err, borrow.ErrNotBorrowed):
			JSONError(w, http.StatusConflict, "NOT_BORROWED", "This loan is not active", nil)
		default:
			JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		}
		return
	}

	JSONSuccess(w, viewOf(loan, time.Now()), nil)
}
