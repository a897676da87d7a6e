package store

import (
	"context"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

// requireAdmin is the operation-level guard; the router already keeps
// non-admins off the admin page, this keeps a racing call honest.
func (s *Store) requireAdmin() bool {
	if !s.Session().IsAdmin() {
		s.notify("Administrator access required.", domain.SeverityWarn)
		return false
	}
	return true
}

// FetchPendingUsers loads the accounts awaiting approval. Failures leave the
// previous list unchanged.
func (s *Store) FetchPendingUsers(ctx context.Context) bool {
	if !s.requireAdmin() {
		return false
	}
	epoch := s.currentEpoch()

	pending, err := s.backend.PendingUsers(ctx)
	if err != nil {
		s.notify(api.ErrorMessage(err, "Could not load pending users."), domain.SeverityError)
		return false
	}

	return s.apply(epoch, func() {
		s.pending = pending
	})
}

// ApproveUser forwards the approval and removes the account from the local
// pending list on success.
func (s *Store) ApproveUser(ctx context.Context, userID string) bool {
	if !s.requireAdmin() {
		return false
	}
	epoch := s.currentEpoch()

	if err := s.backend.ApproveUser(ctx, userID); err != nil {
		s.notify(api.ErrorMessage(err, "Could not approve the user."), domain.SeverityError)
		return false
	}

	return s.apply(epoch, func() {
		for i := range s.pending {
			if s.pending[i].ID == userID {
				s.pending = append(s.pending[:i], s.pending[i+1:]...)
				break
			}
		}
		s.notifyLocked("User approved.", domain.SeveritySuccess)
	})
}

// CreateProduct submits the product form and prepends the created product to
// the local catalog on success.
func (s *Store) CreateProduct(ctx context.Context, req api.ProductRequest, image *api.Upload) bool {
	if !s.requireAdmin() {
		return false
	}
	epoch := s.currentEpoch()

	product, err := s.backend.CreateProduct(ctx, req, image)
	if err != nil {
		s.notify(api.ErrorMessage(err, "Could not create the product."), domain.SeverityError)
		return false
	}
	if product.Image == "" {
		product.Image = domain.DefaultProductImage
	}

	return s.apply(epoch, func() {
		s.products = append([]domain.Product{*product}, s.products...)
		s.notifyLocked("Product created successfully.", domain.SeveritySuccess)
	})
}
