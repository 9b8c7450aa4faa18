// Package fakebackend runs an in-memory BookCourier backend over httptest.
// The real REST gateways talk to it exactly as they would to production, so
// end-to-end tests exercise the full path from router to backend wire format.
package fakebackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	domainauth "github.com/bookcourier/ui-gateway/internal/domain/auth"
	"github.com/bookcourier/ui-gateway/internal/domain/model"
)

// account pairs a user record with its login password.
type account struct {
	model.User
	Password string
}

// Server is an in-memory backend. All state is guarded by one mutex; tests
// drive it concurrently through the HTTP surface only.
type Server struct {
	srv *httptest.Server

	mu     sync.Mutex
	nextID int
	users  map[string]*account       // by user ID
	tokens map[string]string         // bearer token -> user ID
	books  map[string]*model.Book    // by book ID
	orders map[string]*model.Order   // by order ID
	wished map[string][]string       // user ID -> book IDs
	rated  map[string][]model.Review // book ID -> reviews
}

// New starts a fake backend and registers its shutdown with the test.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		users:  make(map[string]*account),
		tokens: make(map[string]string),
		books:  make(map[string]*model.Book),
		orders: make(map[string]*model.Order),
		wished: make(map[string][]string),
		rated:  make(map[string][]model.Review),
	}
	s.srv = httptest.NewServer(s.routes())
	t.Cleanup(s.srv.Close)
	return s
}

// URL returns the backend base URL for restapi.Config.
func (s *Server) URL() string {
	return s.srv.URL
}

// SeedUser registers an account directly and returns its record.
func (s *Server) SeedUser(role domainauth.Role, email, password string) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := model.User{
		ID:        s.id("u"),
		Name:      strings.Split(email, "@")[0],
		Email:     email,
		Role:      role,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = &account{User: u, Password: password}
	return u
}

// SeedBook adds a catalog entry owned by the given user and returns it.
func (s *Server) SeedBook(ownerID, title string, price int64, available bool) model.Book {
	s.mu.Lock()
	defer s.mu.Unlock()

	b := model.Book{
		ID:          s.id("b"),
		Title:       title,
		Author:      "Test Author",
		Price:       price,
		IsAvailable: available,
		AddedBy:     ownerID,
		CreatedAt:   time.Now(),
	}
	s.books[b.ID] = &b
	return b
}

// Order returns a snapshot of a stored order, or nil.
func (s *Server) Order(id string) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil
	}
	snapshot := *o
	return &snapshot
}

// id mints a sequential identifier. Callers hold the mutex.
func (s *Server) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s%d", prefix, s.nextID)
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users/login", s.handleLogin)
	mux.HandleFunc("POST /users/register", s.handleRegister)
	mux.HandleFunc("POST /users/google", s.handleGoogle)
	mux.HandleFunc("PATCH /users/profile", s.handleUpdateProfile)
	mux.HandleFunc("POST /users/request-librarian", s.handleRequestLibrarian)

	mux.HandleFunc("GET /books", s.handleListBooks)
	mux.HandleFunc("GET /books/my", s.handleMyBooks)
	mux.HandleFunc("GET /books/{id}", s.handleGetBook)
	mux.HandleFunc("POST /books", s.handleCreateBook)
	mux.HandleFunc("PATCH /books/{id}", s.handleUpdateBook)
	mux.HandleFunc("PATCH /books/{id}/publish", s.handlePublishBook)
	mux.HandleFunc("DELETE /books/{id}", s.handleDeleteBook)

	mux.HandleFunc("POST /orders", s.handleCreateOrder)
	mux.HandleFunc("GET /orders/my", s.handleMyOrders)
	mux.HandleFunc("GET /orders/all", s.handleAllOrders)
	mux.HandleFunc("GET /orders/{id}", s.handleGetOrder)
	mux.HandleFunc("PATCH /orders/{id}/status", s.handleOrderStatus)

	mux.HandleFunc("GET /admin/users", s.handleAdminUsers)
	mux.HandleFunc("GET /admin/librarian-requests", s.handleLibrarianRequests)
	mux.HandleFunc("PATCH /admin/make-librarian/{id}", s.handleMakeLibrarian)
	mux.HandleFunc("PATCH /admin/reject-librarian/{id}", s.handleRejectLibrarian)
	mux.HandleFunc("PATCH /admin/demote-librarian/{id}", s.handleDemoteLibrarian)
	mux.HandleFunc("DELETE /admin/user/{id}", s.handleDeleteUser)

	mux.HandleFunc("GET /wishlist", s.handleGetWishlist)
	mux.HandleFunc("POST /wishlist", s.handleAddWishlist)
	mux.HandleFunc("DELETE /wishlist/{id}", s.handleRemoveWishlist)

	mux.HandleFunc("POST /reviews/{bookID}", s.handleSubmitReview)

	mux.HandleFunc("POST /payment/create-checkout-session", s.handleCheckout)

	return mux
}

// authResponse mirrors the backend wire shape: token next to the flat user.
type authResponse struct {
	Token string `json:"token"`
	model.User
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds model.Credentials
	if !decode(w, r, &creds) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.users {
		if acct.Email == creds.Email && acct.Password == creds.Password {
			writeJSON(w, http.StatusOK, authResponse{Token: s.mintToken(acct.ID), User: acct.User})
			return
		}
	}
	writeErr(w, http.StatusUnauthorized, "invalid email or password")
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.users {
		if acct.Email == req.Email {
			writeErr(w, http.StatusConflict, "an account with this email already exists")
			return
		}
	}

	u := model.User{
		ID:        s.id("u"),
		Name:      req.Name,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		Role:      domainauth.RoleUser,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = &account{User: u, Password: req.Password}
	writeJSON(w, http.StatusCreated, authResponse{Token: s.mintToken(u.ID), User: u})
}

func (s *Server) handleGoogle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		PhotoURL string `json:"photoURL"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acct := range s.users {
		if acct.Email == req.Email {
			writeJSON(w, http.StatusOK, authResponse{Token: s.mintToken(acct.ID), User: acct.User})
			return
		}
	}

	u := model.User{
		ID:        s.id("u"),
		Name:      req.Name,
		Email:     req.Email,
		PhotoURL:  req.PhotoURL,
		Role:      domainauth.RoleUser,
		CreatedAt: time.Now(),
	}
	s.users[u.ID] = &account{User: u}
	writeJSON(w, http.StatusCreated, authResponse{Token: s.mintToken(u.ID), User: u})
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req model.UpdateProfileRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.Name != nil {
		acct.Name = *req.Name
	}
	if req.PhotoURL != nil {
		acct.PhotoURL = *req.PhotoURL
	}
	writeJSON(w, http.StatusOK, acct.User)
}

func (s *Server) handleRequestLibrarian(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if acct.Role != domainauth.RoleUser {
		writeErr(w, http.StatusConflict, "only readers can request librarian access")
		return
	}
	acct.LibrarianRequest = true
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	books := make([]model.Book, 0, len(s.books))
	for _, b := range s.books {
		books = append(books, *b)
	}
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "book not found")
		return
	}
	detail := *b
	detail.Reviews = append([]model.Review(nil), s.rated[b.ID]...)
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleMyBooks(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	books := []model.Book{}
	for _, b := range s.books {
		if b.AddedBy == acct.ID {
			books = append(books, *b)
		}
	}
	writeJSON(w, http.StatusOK, books)
}

func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req model.CreateBookRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if acct.Role == domainauth.RoleUser {
		writeErr(w, http.StatusForbidden, "librarian role required")
		return
	}

	available := true
	if req.IsAvailable != nil {
		available = *req.IsAvailable
	}
	b := model.Book{
		ID:          s.id("b"),
		Title:       req.Title,
		Author:      req.Author,
		Description: req.Description,
		Category:    req.Category,
		CoverImage:  req.CoverImage,
		Price:       req.Price,
		IsAvailable: available,
		AddedBy:     acct.ID,
		AddedByName: acct.Name,
		CreatedAt:   time.Now(),
	}
	s.books[b.ID] = &b
	writeJSON(w, http.StatusCreated, b)
}

func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.caller(w, r); !ok {
		return
	}
	var req model.UpdateBookRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "book not found")
		return
	}
	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.Author != nil {
		b.Author = *req.Author
	}
	if req.Description != nil {
		b.Description = *req.Description
	}
	if req.Category != nil {
		b.Category = *req.Category
	}
	if req.CoverImage != nil {
		b.CoverImage = *req.CoverImage
	}
	if req.Price != nil {
		b.Price = *req.Price
	}
	if req.IsAvailable != nil {
		b.IsAvailable = *req.IsAvailable
	}
	writeJSON(w, http.StatusOK, *b)
}

func (s *Server) handlePublishBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.caller(w, r); !ok {
		return
	}
	var req struct {
		IsAvailable bool `json:"isAvailable"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.books[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "book not found")
		return
	}
	b.IsAvailable = req.IsAvailable
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.caller(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.books[r.PathValue("id")]; !ok {
		writeErr(w, http.StatusNotFound, "book not found")
		return
	}
	delete(s.books, r.PathValue("id"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req model.CreateOrderRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	b, found := s.books[req.BookID]
	if !found {
		writeErr(w, http.StatusNotFound, "book not found")
		return
	}
	if !b.IsAvailable {
		writeErr(w, http.StatusConflict, "book is not available")
		return
	}

	o := model.Order{
		ID:            s.id("o"),
		UserID:        acct.ID,
		UserName:      acct.Name,
		BookID:        b.ID,
		BookTitle:     b.Title,
		BookCover:     b.CoverImage,
		Price:         b.Price,
		Phone:         req.Phone,
		Address:       req.Address,
		Status:        model.OrderPending,
		PaymentStatus: model.PaymentUnpaid,
		CreatedAt:     time.Now(),
	}
	s.orders[o.ID] = &o
	writeJSON(w, http.StatusCreated, o)
}

func (s *Server) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []model.Order{}
	for _, o := range s.orders {
		if o.UserID == acct.ID {
			orders = append(orders, *o)
		}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleAllOrders(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.caller(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []model.Order{}
	for _, o := range s.orders {
		orders = append(orders, *o)
	}
	writeJSON(w, http.StatusOK, orders)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.caller(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, *o)
}

func (s *Server) handleOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.caller(w, r); !ok {
		return
	}
	var req model.UpdateOrderStatusRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "order not found")
		return
	}
	o.Status = req.Status
	if req.PaymentStatus != nil {
		o.PaymentStatus = *req.PaymentStatus
	}
	writeJSON(w, http.StatusOK, *o)
}

func (s *Server) handleAdminUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.admin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []model.User{}
	for _, acct := range s.users {
		users = append(users, acct.User)
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleLibrarianRequests(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.admin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	users := []model.User{}
	for _, acct := range s.users {
		if acct.LibrarianRequest {
			users = append(users, acct.User)
		}
	}
	writeJSON(w, http.StatusOK, users)
}

func (s *Server) handleMakeLibrarian(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.admin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "user not found")
		return
	}
	acct.Role = domainauth.RoleLibrarian
	acct.LibrarianRequest = false
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRejectLibrarian(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.admin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "user not found")
		return
	}
	acct.LibrarianRequest = false
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDemoteLibrarian(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.admin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "user not found")
		return
	}
	acct.Role = domainauth.RoleUser
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.admin(w, r); !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	acct, ok := s.users[r.PathValue("id")]
	if !ok {
		writeErr(w, http.StatusNotFound, "user not found")
		return
	}
	if acct.Role == domainauth.RoleAdmin {
		writeErr(w, http.StatusConflict, "admin accounts cannot be deleted")
		return
	}
	delete(s.users, acct.ID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	wl := model.Wishlist{UserID: acct.ID, Books: []model.Book{}}
	for _, id := range s.wished[acct.ID] {
		if b, found := s.books[id]; found {
			wl.Books = append(wl.Books, *b)
		}
	}
	writeJSON(w, http.StatusOK, wl)
}

func (s *Server) handleAddWishlist(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req struct {
		BookID string `json:"bookId"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.books[req.BookID]; !found {
		writeErr(w, http.StatusNotFound, "book not found")
		return
	}
	for _, id := range s.wished[acct.ID] {
		if id == req.BookID {
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	s.wished[acct.ID] = append(s.wished[acct.ID], req.BookID)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleRemoveWishlist(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := s.wished[acct.ID]
	for i, id := range ids {
		if id == r.PathValue("id") {
			s.wished[acct.ID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	acct, ok := s.caller(w, r)
	if !ok {
		return
	}
	var req model.SubmitReviewRequest
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	bookID := r.PathValue("bookID")
	b, found := s.books[bookID]
	if !found {
		writeErr(w, http.StatusNotFound, "book not found")
		return
	}

	delivered := false
	for _, o := range s.orders {
		if o.UserID == acct.ID && o.BookID == bookID && o.Status == model.OrderDelivered {
			delivered = true
			break
		}
	}
	if !delivered {
		writeErr(w, http.StatusForbidden, "reviews require a delivered order for this book")
		return
	}
	for _, review := range s.rated[bookID] {
		if review.UserID == acct.ID {
			writeErr(w, http.StatusConflict, "you already reviewed this book")
			return
		}
	}

	s.rated[bookID] = append(s.rated[bookID], model.Review{
		ID:        s.id("r"),
		BookID:    bookID,
		UserID:    acct.ID,
		Name:      acct.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	})

	total := 0
	for _, review := range s.rated[bookID] {
		total += review.Rating
	}
	b.ReviewCount = len(s.rated[bookID])
	b.AverageRating = float64(total) / float64(b.ReviewCount)
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) handleCheckout(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.caller(w, r); !ok {
		return
	}
	var req struct {
		OrderID string `json:"orderId"`
	}
	if !decode(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, found := s.orders[req.OrderID]; !found {
		writeErr(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"url": "https://checkout.example.test/cs_" + req.OrderID,
	})
}

// mintToken issues a bearer token for a user. Callers hold the mutex.
func (s *Server) mintToken(userID string) string {
	token := s.id("tok-")
	s.tokens[token] = userID
	return token
}

// caller resolves the bearer token to an account, answering 401 when absent.
func (s *Server) caller(w http.ResponseWriter, r *http.Request) (*account, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		writeErr(w, http.StatusUnauthorized, "missing bearer token")
		return nil, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	userID, ok := s.tokens[token]
	if !ok {
		writeErr(w, http.StatusUnauthorized, "invalid token")
		return nil, false
	}
	acct, ok := s.users[userID]
	if !ok {
		writeErr(w, http.StatusUnauthorized, "account no longer exists")
		return nil, false
	}
	return acct, true
}

// admin resolves the caller and requires the admin role.
func (s *Server) admin(w http.ResponseWriter, r *http.Request) (*account, bool) {
	acct, ok := s.caller(w, r)
	if !ok {
		return nil, false
	}
	if acct.Role != domainauth.RoleAdmin {
		writeErr(w, http.StatusForbidden, "admin role required")
		return nil, false
	}
	return acct, true
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeErr(w, http.StatusBadRequest, "malformed request body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErr(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"message": msg})
}
