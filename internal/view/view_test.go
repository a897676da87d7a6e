package view

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/store"
)

type fakeBackend struct {
	products []domain.Product
}

func (f *fakeBackend) Login(context.Context, string, string) (*api.AuthResponse, error) {
	return nil, nil
}
func (f *fakeBackend) Register(context.Context, api.RegisterRequest, *api.Upload) (string, error) {
	return "", nil
}
func (f *fakeBackend) Products(context.Context) ([]domain.Product, error) {
	return f.products, nil
}
func (f *fakeBackend) ProductComments(context.Context, int64) ([]domain.Comment, error) {
	return []domain.Comment{{User: "Luis", Text: "deliciosa"}}, nil
}
func (f *fakeBackend) AddComment(context.Context, int64, api.CommentRequest) error { return nil }
func (f *fakeBackend) CreateOrder(context.Context, api.OrderRequest, string) (*domain.Order, error) {
	return nil, nil
}
func (f *fakeBackend) UserOrders(context.Context, string) ([]domain.Order, error) { return nil, nil }
func (f *fakeBackend) PendingUsers(context.Context) ([]domain.PendingUser, error) { return nil, nil }
func (f *fakeBackend) ApproveUser(context.Context, string) error                  { return nil }
func (f *fakeBackend) CreateProduct(context.Context, api.ProductRequest, *api.Upload) (*domain.Product, error) {
	return nil, nil
}

type noTokens struct{}

func (noTokens) Token() string     { return "" }
func (noTokens) Save(string) error { return nil }
func (noTokens) Clear() error      { return nil }

func newViewStore(t *testing.T, products []domain.Product) *store.Store {
	t.Helper()
	s := store.New(store.Config{
		Backend:         &fakeBackend{products: products},
		Tokens:          noTokens{},
		Logger:          zerolog.Nop(),
		NotificationTTL: time.Minute,
	})
	require.True(t, s.FetchProducts(context.Background()))
	return s
}

func TestRenderHomeListsCatalog(t *testing.T) {
	s := newViewStore(t, []domain.Product{{ID: 1, Name: "Arepa de queso", Price: 4.5}})
	var out strings.Builder

	New(s, &out).Render(context.Background())

	assert.Contains(t, out.String(), "Arepa de queso")
	assert.Contains(t, out.String(), "4.50")
}

func TestRenderCartShowsTwoDecimalTotal(t *testing.T) {
	s := newViewStore(t, nil)
	s.Navigate("cart")
	var out strings.Builder

	New(s, &out).Render(context.Background())

	assert.Contains(t, out.String(), "(empty)")
	assert.Contains(t, out.String(), "Total: 0.00")
}

func TestRenderMissingProductFallsBackToHome(t *testing.T) {
	s := newViewStore(t, []domain.Product{{ID: 1, Name: "Arepa de queso"}})
	s.Navigate("product/99")
	var out strings.Builder

	New(s, &out).Render(context.Background())

	assert.Equal(t, "home", s.Page())
	assert.Contains(t, out.String(), "== Arepabuelas ==")
}

func TestRenderProductDetailWithComments(t *testing.T) {
	s := newViewStore(t, []domain.Product{{ID: 1, Name: "Arepa de queso", Description: "Clasica", Price: 4.5}})
	s.Navigate("product/1")
	var out strings.Builder

	New(s, &out).Render(context.Background())

	assert.Contains(t, out.String(), "Clasica")
	assert.Contains(t, out.String(), "Luis: deliciosa")
}

func TestRenderGuardsProtectedPages(t *testing.T) {
	s := newViewStore(t, nil)
	s.Navigate("checkout")
	var out strings.Builder

	New(s, &out).Render(context.Background())

	assert.Contains(t, out.String(), "== Sign in ==", "checkout without a session renders login")
}
