// Command librarian is a developer utility: it loads the sample library into
// a fresh in-memory store and runs catalog queries or the full borrow/return
// flow against it from the terminal. State lives only for the one invocation.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"libraryapi/internal/account"
	"libraryapi/internal/borrow"
	"libraryapi/internal/catalog"
	"libraryapi/internal/seed"
	"libraryapi/internal/stats"
	"libraryapi/internal/store"
)

type library struct {
	accounts *account.Service
	books    *catalog.Service
	loans    *borrow.Service
	stats    *stats.Service
}

func newLibrary(ctx context.Context) (*library, error) {
	memory := store.NewMemory()
	accountRepo := store.NewAccountRepo(memory)
	bookRepo := store.NewBookRepo(memory)

	if err := seed.Load(ctx, accountRepo, bookRepo); err != nil {
		return nil, err
	}

	return &library{
		accounts: account.NewService(accountRepo),
		books:    catalog.NewService(bookRepo),
		loans:    borrow.NewService(store.NewBorrowRepo(memory)),
		stats:    stats.NewService(store.NewStatsRepo(memory)),
	}, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:          "librarian",
		Short:        "Explore the sample library from the terminal",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(searchCmd(), statsCmd(), demoCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog by title, author, category, or ISBN",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := newLibrary(cmd.Context())
			if err != nil {
				return err
			}

			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			books, err := lib.books.Search(cmd.Context(), query)
			if err != nil {
				return err
			}

			if len(books) == 0 {
				fmt.Println("no books match")
				return nil
			}
			for _, b := range books {
				fmt.Printf("%-28s %-20s %-16s %s  %d/%d available\n",
					b.Title, b.Author, b.Category, b.ISBN, b.AvailableCopies, b.TotalCopies)
			}
			return nil
		},
	}
}

func statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the dashboard counters for the sample library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := newLibrary(cmd.Context())
			if err != nil {
				return err
			}

			summary, err := lib.stats.Summary(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("books: %d\navailable copies: %d\nactive loans: %d\ncategories: %d\n",
				summary.TotalBooks, summary.AvailableCopies, summary.ActiveLoans, summary.Categories)
			return nil
		},
	}
}

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the borrow/return flow end to end and print each step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lib, err := newLibrary(ctx)
			if err != nil {
				return err
			}

			member, err := lib.accounts.Register(ctx, "demo@library.com", "Demo Member")
			if err != nil {
				return err
			}
			fmt.Printf("registered %s (%s)\n", member.Name, member.Email)

			books, err := lib.books.Search(ctx, "dune")
			if err != nil {
				return err
			}
			if len(books) == 0 {
				return fmt.Errorf("sample catalog is missing the demo book")
			}
			book := books[0]
			fmt.Printf("found %q, %d of %d copies available\n", book.Title, book.AvailableCopies, book.TotalCopies)

			loan, err := lib.loans.Borrow(ctx, member.ID, book.ID)
			if err != nil {
				return err
			}
			fmt.Printf("borrowed %q, due %s\n", book.Title, loan.DueDate.Format("2006-01-02"))

			if _, err := lib.loans.Borrow(ctx, member.ID, book.ID); err != nil {
				fmt.Printf("second borrow refused: %v\n", err)
			}

			loans, err := lib.loans.ListForUser(ctx, member.ID)
			if err != nil {
				return err
			}
			titles := make([]string, 0, len(loans))
			for _, l := range loans {
				if l.Book != nil {
					titles = append(titles, l.Book.Title)
				}
			}
			fmt.Printf("active loans: %s\n", strings.Join(titles, ", "))

			returned, err := lib.loans.Return(ctx, loan.ID)
			if err != nil {
				return err
			}
			fmt.Printf("returned %q at %s\n", book.Title, returned.ReturnedAt.Format("2006-01-02 15:04"))

			if _, err := lib.loans.Return(ctx, loan.ID); err != nil {
				fmt.Printf("second return refused: %v\n", err)
			}
			return nil
		},
	}
}
