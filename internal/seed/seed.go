// Package seed loads a small sample library so the service is usable out of
// the box: state is process-local and starts empty otherwise.
package seed

import (
	"context"

	"libraryapi/internal/account"
	"libraryapi/internal/catalog"
)

var sampleAccounts = []account.Account{
	{Email: "admin@library.com", Name: "Sarah Okafor", Role: account.RoleAdmin},
	{Email: "librarian@library.com", Name: "Maya Chen", Role: account.RoleLibrarian},
	{Email: "member@library.com", Name: "Jon Alvarez", Role: account.RoleMember},
}

var sampleBooks = []catalog.Draft{
	{Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", Category: "Science Fiction",
		Description: "Paul Atreides and the desert planet Arrakis.", TotalCopies: 3, PublishedYear: 1965},
	{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", Category: "Fiction",
		Description: "Winston Smith under the eye of Big Brother.", TotalCopies: 4, PublishedYear: 1949},
	{Title: "The Hobbit", Author: "J.R.R. Tolkien", ISBN: "9780547928227", Category: "Fantasy",
		Description: "Bilbo Baggins walks out his front door.", TotalCopies: 2, PublishedYear: 1937},
	{Title: "The Name of the Wind", Author: "Patrick Rothfuss", ISBN: "9780756404741", Category: "Fantasy",
		Description: "Kvothe tells his own story.", TotalCopies: 2, PublishedYear: 2007},
	{Title: "Pride and Prejudice", Author: "Jane Austen", ISBN: "9780141439518", Category: "Classic",
		Description: "Elizabeth Bennet and Mr. Darcy.", TotalCopies: 3, PublishedYear: 1813},
	{Title: "A Brief History of Time", Author: "Stephen Hawking", ISBN: "9780553380163", Category: "Science",
		Description: "From the Big Bang to black holes.", TotalCopies: 2, PublishedYear: 1988},
	{Title: "The Pragmatic Programmer", Author: "David Thomas", ISBN: "9780135957059", Category: "Technology",
		Description: "Your journey to mastery.", TotalCopies: 5, PublishedYear: 1999},
	{Title: "Clean Code", Author: "Robert C. Martin", ISBN: "9780132350884", Category: "Technology",
		Description: "A handbook of agile software craftsmanship.", TotalCopies: 3, PublishedYear: 2008},
	{Title: "Educated", Author: "Tara Westover", ISBN: "9780399590504", Category: "Memoir",
		Description: "A memoir of family and self-invention.", TotalCopies: 2, PublishedYear: 2018},
	{Title: "Thinking, Fast and Slow", Author: "Daniel Kahneman", ISBN: "9780374533557", Category: "Psychology",
		Description: "The two systems that drive the way we think.", TotalCopies: 2, PublishedYear: 2011},
}

// Load inserts the sample accounts and books. Call it on a fresh store; it
// does not check for duplicates beyond what the repositories enforce.
func Load(ctx context.Context, accounts account.Repository, books catalog.Repository) error {
	for _, a := range sampleAccounts {
		acct := a
		if err := accounts.Create(ctx, &acct); err != nil {
			return err
		}
	}
	for _, d := range sampleBooks {
		b := &catalog.Book{
			Title:           d.Title,
			Author:          d.Author,
			ISBN:            d.ISBN,
			Category:        d.Category,
			Description:     d.Description,
			CoverImage:      d.CoverImage,
			TotalCopies:     d.TotalCopies,
			AvailableCopies: d.TotalCopies,
			PublishedYear:   d.PublishedYear,
		}
		if err := books.Insert(ctx, b); err != nil {
			return err
		}
	}
	return nil
}
