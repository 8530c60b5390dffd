package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"libraryapi/internal/account"
	"libraryapi/internal/catalog"
	"libraryapi/internal/httpx"
)

type BookHandler struct {
	books *catalog.Service
}

func NewBookHandler(books *catalog.Service) *BookHandler {
	return &BookHandler{books: books}
}

// List answers the catalog search. A missing or blank q returns the whole
// catalog in insertion order.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	books, err := h.books.Search(r.Context(), query)
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccess(w, books, map[string]any{"total": len(books)})
}

type addBookReq struct {
	Title         string `json:"title" validate:"required,max=200"`
	Author        string `json:"author" validate:"required,max=200"`
	ISBN          string `json:"isbn" validate:"required,isbn"`
	Category      string `json:"category" validate:"required,max=100"`
	Description   string `json:"description" validate:"max=2000"`
	CoverImage    string `json:"cover_image" validate:"omitempty,url"`
	TotalCopies   int    `json:"total_copies" validate:"required,gte=1,lte=1000"`
	PublishedYear int    `json:"published_year" validate:"required,gte=1,lte=2100"`
}

// Create adds a catalog entry. Admins and librarians only.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !account.CanManageCatalog(httpx.RoleFrom(r)) {
		JSONError(w, http.StatusForbidden, "FORBIDDEN", "Catalog management requires admin or librarian role", nil)
		return
	}

	var req addBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Invalid request body", nil)
		return
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Author = strings.TrimSpace(req.Author)

	if details := ValidateStruct(req); len(details) > 0 {
		JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", details)
		return
	}

	book, err := h.books.Add(r.Context(), catalog.Draft{
		Title:         req.Title,
		Author:        req.Author,
		ISBN:          req.ISBN,
		Category:      req.Category,
		Description:   req.Description,
		CoverImage:    req.CoverImage,
		TotalCopies:   req.TotalCopies,
		PublishedYear: req.PublishedYear,
	})
	if err != nil {
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccessCreated(w, book)
}

// Delete removes a catalog entry and its loan records. Admins and librarians
// only. Active loans of the book are dropped along with it.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if !account.CanManageCatalog(httpx.RoleFrom(r)) {
		JSONError(w, http.StatusForbidden, "FORBIDDEN", "Catalog management requires admin or librarian role", nil)
		return
	}

	bookID := r.PathValue("id")
	if bookID == "" {
		JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "Missing book id", nil)
		return
	}

	if err := h.books.Delete(r.Context(), bookID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			JSONError(w, http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
			return
		}
		JSONError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	JSONSuccessNoContent(w)
}
