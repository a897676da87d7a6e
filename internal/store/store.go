// Package store holds the process-wide application state shared by every
// page: the active page token, the session, the cart, fetched catalog and
// history data, and the transient notification. All mutation goes through
// the operations defined here; failures never escape an operation, they are
// converted into notifications plus a boolean result.
package store

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/session"
)

// Backend is the slice of the API client the store consumes.
type Backend interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest, photo *api.Upload) (string, error)
	Products(ctx context.Context) ([]domain.Product, error)
	ProductComments(ctx context.Context, id int64) ([]domain.Comment, error)
	AddComment(ctx context.Context, productID int64, req api.CommentRequest) error
	CreateOrder(ctx context.Context, req api.OrderRequest, coupon string) (*domain.Order, error)
	UserOrders(ctx context.Context, userID string) ([]domain.Order, error)
	PendingUsers(ctx context.Context) ([]domain.PendingUser, error)
	ApproveUser(ctx context.Context, userID string) error
	CreateProduct(ctx context.Context, req api.ProductRequest, image *api.Upload) (*domain.Product, error)
}

// TokenStore persists the bearer token across runs.
type TokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

const DefaultNotificationTTL = 3 * time.Second

type Config struct {
	Backend Backend
	Tokens  TokenStore
	Logger  zerolog.Logger
	// NotificationTTL overrides the auto-dismiss window; zero means default.
	NotificationTTL time.Duration
}

type Store struct {
	backend   Backend
	tokens    TokenStore
	log       zerolog.Logger
	notifyTTL time.Duration

	mu       sync.RWMutex
	page     string
	session  *domain.Session
	cart     []domain.CartItem
	products []domain.Product
	history  []domain.Order
	pending  []domain.PendingUser

	notification *domain.Notification
	notifySeq    uint64
	notifyTimer  *time.Timer

	// epoch is bumped whenever the session is replaced or cleared, so
	// responses that complete afterwards cannot mutate the new state.
	epoch uint64

	catalog singleflight.Group
}

func New(cfg Config) *Store {
	ttl := cfg.NotificationTTL
	if ttl <= 0 {
		ttl = DefaultNotificationTTL
	}
	s := &Store{
		backend:   cfg.Backend,
		tokens:    cfg.Tokens,
		log:       cfg.Logger,
		notifyTTL: ttl,
		page:      "home",
	}
	s.restoreSession()
	return s
}

// restoreSession decodes any persisted token. A malformed token means no
// session, and the stored value is removed.
func (s *Store) restoreSession() {
	token := s.tokens.Token()
	if token == "" {
		return
	}
	sess, err := session.Decode(token)
	if err != nil {
		s.log.Warn().Err(err).Msg("discarding undecodable stored token")
		if err := s.tokens.Clear(); err != nil {
			s.log.Warn().Err(err).Msg("could not clear stored token")
		}
		return
	}
	s.session = sess
}

// Navigate sets the active page token.
func (s *Store) Navigate(page string) {
	s.mu.Lock()
	s.page = page
	s.mu.Unlock()
}

func (s *Store) Page() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.page
}

// Session returns a copy of the active session, or nil when signed out.
func (s *Store) Session() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

func (s *Store) CartItems() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.CartItem, len(s.cart))
	copy(items, s.cart)
	return items
}

func (s *Store) CartTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CartTotal(s.cart)
}

func (s *Store) Products() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]domain.Product, len(s.products))
	copy(products, s.products)
	return products
}

func (s *Store) History() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := make([]domain.Order, len(s.history))
	copy(history, s.history)
	return history
}

func (s *Store) PendingUsers() []domain.PendingUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pending := make([]domain.PendingUser, len(s.pending))
	copy(pending, s.pending)
	return pending
}

func (s *Store) currentEpoch() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// apply runs fn under the lock unless the session changed since epoch was
// captured, in which case the response is stale and discarded.
func (s *Store) apply(epoch uint64, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.epoch != epoch {
		s.log.Debug().Msg("discarding stale response from a replaced session")
		return false
	}
	fn()
	return true
}
