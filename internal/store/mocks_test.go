package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

type mockBackend struct {
	m sync.Mutex

	loginResp     *api.AuthResponse
	loginErr      error
	registerMsg   string
	registerErr   error
	products      []domain.Product
	productsErr   error
	comments      []domain.Comment
	commentsErr   error
	commentErr    error
	order         *domain.Order
	orderErr      error
	orders        []domain.Order
	ordersErr     error
	ordersGate    chan struct{} // when set, UserOrders blocks until closed
	ordersEntered chan struct{} // when set, closed as UserOrders is entered
	pendingUsers  []domain.PendingUser
	pendingErr    error
	approveErr    error
	created       *domain.Product
	createErr     error

	createOrderCalls int
	userOrdersCalls  int
	approveCalls     int
	lastCoupon       string
	lastOrderReq     api.OrderRequest
	lastComment      api.CommentRequest
	callOrder        []string
}

func (m *mockBackend) Login(_ context.Context, _, _ string) (*api.AuthResponse, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResp, nil
}

func (m *mockBackend) Register(_ context.Context, _ api.RegisterRequest, _ *api.Upload) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.registerMsg, m.registerErr
}

func (m *mockBackend) Products(_ context.Context) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.products, m.productsErr
}

func (m *mockBackend) ProductComments(_ context.Context, _ int64) ([]domain.Comment, error) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.comments, m.commentsErr
}

func (m *mockBackend) AddComment(_ context.Context, _ int64, req api.CommentRequest) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.lastComment = req
	return m.commentErr
}

func (m *mockBackend) CreateOrder(_ context.Context, req api.OrderRequest, coupon string) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.createOrderCalls++
	m.lastOrderReq = req
	m.lastCoupon = coupon
	m.callOrder = append(m.callOrder, "CreateOrder")
	if m.orderErr != nil {
		return nil, m.orderErr
	}
	if m.order != nil {
		return m.order, nil
	}
	return &domain.Order{ID: "o1"}, nil
}

func (m *mockBackend) UserOrders(_ context.Context, _ string) ([]domain.Order, error) {
	m.m.Lock()
	gate := m.ordersGate
	entered := m.ordersEntered
	m.ordersEntered = nil
	m.m.Unlock()
	if entered != nil {
		close(entered)
	}
	if gate != nil {
		<-gate
	}

	m.m.Lock()
	defer m.m.Unlock()
	m.userOrdersCalls++
	m.callOrder = append(m.callOrder, "UserOrders")
	return m.orders, m.ordersErr
}

func (m *mockBackend) PendingUsers(_ context.Context) ([]domain.PendingUser, error) {
	m.m.Lock()
	defer m.m.Unlock()
	return m.pendingUsers, m.pendingErr
}

func (m *mockBackend) ApproveUser(_ context.Context, _ string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.approveCalls++
	return m.approveErr
}

func (m *mockBackend) CreateProduct(_ context.Context, req api.ProductRequest, _ *api.Upload) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.createErr != nil {
		return nil, m.createErr
	}
	if m.created != nil {
		return m.created, nil
	}
	return &domain.Product{ID: 100, Name: req.Name, Price: req.Price}, nil
}

type mockTokens struct {
	m     sync.Mutex
	token string
}

func (t *mockTokens) Token() string {
	t.m.Lock()
	defer t.m.Unlock()
	return t.token
}

func (t *mockTokens) Save(token string) error {
	t.m.Lock()
	defer t.m.Unlock()
	t.token = token
	return nil
}

func (t *mockTokens) Clear() error {
	t.m.Lock()
	defer t.m.Unlock()
	t.token = ""
	return nil
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

func newTestStore(t *testing.T, backend *mockBackend) (*Store, *mockTokens) {
	t.Helper()
	tokens := &mockTokens{}
	s := New(Config{
		Backend:         backend,
		Tokens:          tokens,
		Logger:          zerolog.Nop(),
		NotificationTTL: 50 * time.Millisecond,
	})
	return s, tokens
}

// loginAs drives a full login through the mock backend so the store ends up
// with a real decoded session.
func loginAs(t *testing.T, s *Store, backend *mockBackend, role domain.Role) {
	t.Helper()
	token := signedToken(t, jwt.MapClaims{
		"id":    "u1",
		"name":  "Rosa",
		"email": "rosa@arepabuelas.com",
		"role":  string(role),
	})
	backend.m.Lock()
	backend.loginResp = &api.AuthResponse{Token: token, Role: string(role)}
	backend.loginErr = nil
	backend.m.Unlock()
	require.True(t, s.Login(context.Background(), "rosa@arepabuelas.com", "pw"))
}
