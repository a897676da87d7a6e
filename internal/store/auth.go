package store

import (
	"context"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/session"
)

// Login authenticates against the backend and, on success, installs the
// decoded session, persists the token and navigates home. Failures surface
// as notifications; the method never returns an error.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	resp, err := s.backend.Login(ctx, email, password)
	if err != nil {
		s.notify(api.ErrorMessage(err, "Login failed, please try again."), domain.SeverityError)
		return false
	}

	sess, err := session.Decode(resp.Token)
	if err != nil {
		s.log.Warn().Err(err).Msg("backend issued an undecodable token")
		s.notify("Login failed, please try again.", domain.SeverityError)
		return false
	}

	if err := s.tokens.Save(resp.Token); err != nil {
		s.log.Warn().Err(err).Msg("could not persist session token")
	}

	name := sess.Name
	if name == "" {
		name = sess.Email
	}

	s.mu.Lock()
	s.epoch++ // a new session replaces any previous one
	s.session = sess
	s.history = nil
	s.pending = nil
	s.page = "home"
	s.notifyLocked("Welcome, "+name+"!", domain.SeveritySuccess)
	s.mu.Unlock()
	return true
}

// Register submits the signup form. The account stays pending until an
// administrator approves it, so success navigates to the login page rather
// than signing the user in.
func (s *Store) Register(ctx context.Context, name, email, password string, photo *api.Upload) bool {
	msg, err := s.backend.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	}, photo)
	if err != nil {
		s.notify(api.ErrorMessage(err, "Registration failed, please try again."), domain.SeverityError)
		return false
	}
	if msg == "" {
		msg = "Registration successful. An administrator will activate your account."
	}

	s.mu.Lock()
	s.page = "login"
	s.notifyLocked(msg, domain.SeveritySuccess)
	s.mu.Unlock()
	return true
}

// Logout clears the session, the cart, the purchase history and the
// persisted token, then navigates home.
func (s *Store) Logout() {
	if err := s.tokens.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("could not clear stored token")
	}

	s.mu.Lock()
	s.epoch++
	s.session = nil
	s.cart = nil
	s.history = nil
	s.pending = nil
	s.page = "home"
	s.notifyLocked("You have signed out.", domain.SeveritySuccess)
	s.mu.Unlock()
}
