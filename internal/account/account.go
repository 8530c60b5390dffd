package account

import (
	"errors"
	"time"
)

// Roles mirror what the dashboard exposes: members borrow books, admins and
// librarians also manage the catalog.
const (
	RoleAdmin     = "admin"
	RoleLibrarian = "librarian"
	RoleMember    = "member"
)

var (
	// ErrNotFound is returned when no account matches the lookup.
	ErrNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when registering an email that already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// Account is a registered library user. Accounts are created on signup and
// never mutated or deleted afterwards. The email is the identity and is
// compared case-insensitively.
type Account struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"` // admin, librarian, member
	CreatedAt time.Time `json:"created_at"`
}

// CanManageCatalog reports whether the role may add or delete books.
func CanManageCatalog(role string) bool {
	return role == RoleAdmin || role == RoleLibrarian
}
