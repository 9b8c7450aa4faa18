package service

import (
	"context"
	"fmt"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
	apperrors "github.com/bookcourier/ui-gateway/internal/errors"
	"github.com/bookcourier/ui-gateway/internal/ports"
)

// BookServiceOptions groups dependencies for BookService.
type BookServiceOptions struct {
	Books ports.BookGateway
}

// BookService orchestrates catalog operations. Ownership rules are checked
// locally so a librarian editing another librarian's book fails fast; the
// backend still enforces them authoritatively.
type BookService struct {
	books ports.BookGateway
}

// NewBookService constructs a new BookService.
func NewBookService(opts BookServiceOptions) *BookService {
	return &BookService{books: opts.Books}
}

// List returns the public catalog of available books.
func (s *BookService) List(ctx context.Context) ([]model.Book, error) {
	return s.books.List(ctx)
}

// GetByID returns one book with its reviews.
func (s *BookService) GetByID(ctx context.Context, id string) (*model.Book, error) {
	if id == "" {
		return nil, apperrors.Validation("book id is required")
	}
	return s.books.GetByID(ctx, id)
}

// ListMine returns the books added by the calling librarian.
func (s *BookService) ListMine(ctx context.Context) ([]model.Book, error) {
	return s.books.ListMine(ctx)
}

// Create adds a book to the catalog.
func (s *BookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	book, err := s.books.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return book, nil
}

// Update applies a partial edit to a book the caller manages.
func (s *BookService) Update(ctx context.Context, sess domainauth.Session, id string, req model.UpdateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	book, err := s.manageable(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if err := s.books.Update(ctx, book.ID, req); err != nil {
		return nil, fmt.Errorf("update book: %w", err)
	}
	return s.books.GetByID(ctx, book.ID)
}

// SetAvailability toggles whether a book can receive new orders. Orders
// already placed are unaffected.
func (s *BookService) SetAvailability(ctx context.Context, sess domainauth.Session, id string, available bool) (*model.Book, error) {
	book, err := s.manageable(ctx, sess, id)
	if err != nil {
		return nil, err
	}
	if book.IsAvailable == available {
		return book, nil
	}
	if err := s.books.SetAvailability(ctx, book.ID, available); err != nil {
		return nil, fmt.Errorf("set availability: %w", err)
	}
	book.IsAvailable = available
	return book, nil
}

// Delete removes a book the caller manages.
func (s *BookService) Delete(ctx context.Context, sess domainauth.Session, id string) error {
	book, err := s.manageable(ctx, sess, id)
	if err != nil {
		return err
	}
	if err := s.books.Delete(ctx, book.ID); err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// manageable loads a book and checks the caller may manage it: the librarian
// who added it, or any admin.
func (s *BookService) manageable(ctx context.Context, sess domainauth.Session, id string) (*model.Book, error) {
	book, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !book.CanBeManagedBy(sess.UserID, sess.Role == domainauth.RoleAdmin) {
		return nil, apperrors.Forbidden("you do not manage this book")
	}
	return book, nil
}
