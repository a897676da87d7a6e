package store

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

func TestLoginPopulatesSessionAndNavigatesHome(t *testing.T) {
	backend := &mockBackend{}
	s, tokens := newTestStore(t, backend)
	s.Navigate("login")

	loginAs(t, s, backend, domain.RoleUser)

	sess := s.Session()
	require.NotNil(t, sess)
	assert.Equal(t, "u1", sess.UserID)
	assert.Equal(t, "Rosa", sess.Name)
	assert.Equal(t, domain.RoleUser, sess.Role)
	assert.Equal(t, "home", s.Page())
	assert.NotEmpty(t, tokens.Token())

	n := s.Notification()
	require.NotNil(t, n)
	assert.Equal(t, domain.SeveritySuccess, n.Severity)
	assert.Contains(t, n.Message, "Rosa")

	// the notification self-dismisses after the configured window
	assert.Eventually(t, func() bool { return s.Notification() == nil },
		time.Second, 5*time.Millisecond)
}

func TestLoginFailureSurfacesBackendMessage(t *testing.T) {
	backend := &mockBackend{
		loginErr: &api.APIError{Status: http.StatusUnauthorized, Message: "Correo o contrasena incorrectos"},
	}
	s, tokens := newTestStore(t, backend)

	ok := s.Login(context.Background(), "x@y.z", "bad")

	assert.False(t, ok)
	assert.Nil(t, s.Session())
	assert.Empty(t, tokens.Token())
	n := s.Notification()
	require.NotNil(t, n)
	assert.Equal(t, domain.SeverityError, n.Severity)
	assert.Equal(t, "Correo o contrasena incorrectos", n.Message)
}

func TestLoginRejectsUndecodableToken(t *testing.T) {
	backend := &mockBackend{loginResp: &api.AuthResponse{Token: "not-a-jwt"}}
	s, _ := newTestStore(t, backend)

	assert.False(t, s.Login(context.Background(), "x@y.z", "pw"))
	assert.Nil(t, s.Session())
}

func TestRegisterNavigatesToLogin(t *testing.T) {
	backend := &mockBackend{registerMsg: "Registro exitoso"}
	s, _ := newTestStore(t, backend)

	ok := s.Register(context.Background(), "Rosa", "rosa@arepabuelas.com", "pw", nil)

	assert.True(t, ok)
	assert.Equal(t, "login", s.Page())
	n := s.Notification()
	require.NotNil(t, n)
	assert.Equal(t, "Registro exitoso", n.Message)
	assert.Equal(t, domain.SeveritySuccess, n.Severity)
}

func TestRegisterFailure(t *testing.T) {
	backend := &mockBackend{
		registerErr: &api.APIError{Status: http.StatusConflict, Message: "Este correo ya esta registrado"},
	}
	s, _ := newTestStore(t, backend)
	s.Navigate("register")

	assert.False(t, s.Register(context.Background(), "Rosa", "rosa@arepabuelas.com", "pw", nil))
	assert.Equal(t, "register", s.Page())
	n := s.Notification()
	require.NotNil(t, n)
	assert.Equal(t, "Este correo ya esta registrado", n.Message)
}

func TestLogoutClearsEverything(t *testing.T) {
	backend := catalogBackend()
	backend.orders = []domain.Order{{ID: "o1"}}
	s, tokens := newTestStore(t, backend)
	loginAs(t, s, backend, domain.RoleUser)
	require.True(t, s.FetchProducts(context.Background()))
	s.AddToCart(1)
	require.True(t, s.FetchOrderHistory(context.Background(), "u1"))
	require.NotEmpty(t, s.History())

	s.Logout()

	assert.Nil(t, s.Session())
	assert.Empty(t, s.CartItems())
	assert.Empty(t, s.History())
	assert.Empty(t, tokens.Token())
	assert.Equal(t, "home", s.Page())
}

func TestSessionRestoredFromPersistedToken(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"id": "u9", "name": "Carlos", "role": "admin"})
	tokens := &mockTokens{token: token}
	s := New(Config{Backend: &mockBackend{}, Tokens: tokens, Logger: zerolog.Nop(), NotificationTTL: 50 * time.Millisecond})

	sess := s.Session()
	require.NotNil(t, sess)
	assert.Equal(t, "u9", sess.UserID)
	assert.True(t, sess.IsAdmin())
}

func TestMalformedPersistedTokenIsCleared(t *testing.T) {
	tokens := &mockTokens{token: "garbage"}
	s := New(Config{Backend: &mockBackend{}, Tokens: tokens, Logger: zerolog.Nop(), NotificationTTL: 50 * time.Millisecond})

	assert.Nil(t, s.Session())
	assert.Empty(t, tokens.Token())
}
