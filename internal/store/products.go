package store

import (
	"context"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/api"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

// FetchProducts replaces the catalog with the backend's current product
// list. Concurrent calls are collapsed into a single backend request. On
// failure the previous catalog stays untouched.
func (s *Store) FetchProducts(ctx context.Context) bool {
	v, err, _ := s.catalog.Do("products", func() (any, error) {
		return s.backend.Products(ctx)
	})
	if err != nil {
		s.notify(api.ErrorMessage(err, "Could not load the catalog."), domain.SeverityError)
		return false
	}

	products := v.([]domain.Product)
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return true
}

// FetchProductComments loads the comment thread for one product. Comments
// are not held in store state; the detail view re-fetches them per render.
func (s *Store) FetchProductComments(ctx context.Context, productID int64) ([]domain.Comment, bool) {
	comments, err := s.backend.ProductComments(ctx, productID)
	if err != nil {
		s.notify(api.ErrorMessage(err, "Could not load comments."), domain.SeverityError)
		return nil, false
	}
	return comments, true
}

// AddProductComment submits a comment on behalf of the signed-in user. The
// local product state is not mutated; the thread repopulates on re-fetch.
func (s *Store) AddProductComment(ctx context.Context, productID int64, text string) bool {
	sess := s.Session()
	if sess == nil {
		s.notify("You need to sign in to comment.", domain.SeverityWarn)
		return false
	}

	err := s.backend.AddComment(ctx, productID, api.CommentRequest{
		Text:      text,
		UserID:    sess.UserID,
		ProductID: productID,
	})
	if err != nil {
		s.notify(api.ErrorMessage(err, "Could not submit your comment."), domain.SeverityError)
		return false
	}
	s.notify("Comment submitted.", domain.SeveritySuccess)
	return true
}
