//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Wishlist is the set of books a user has bookmarked. Membership is toggled;
// the backend stores it per user.
type Wishlist struct {
	UserID string `json:"userId"`
	Books  []Book `json:"books"`
}

// Contains reports whether the wishlist holds the given book.
func (w *Wishlist) Contains(bookID string) bool {
	for i := range w.Books {
		if w.Books[i].ID == bookID {
			return true
		}
	}
	return false
}
