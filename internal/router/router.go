// Package router resolves the active page token into an authorized view.
// Resolution is stateless and re-evaluated on every render; there is no
// history stack.
package router

import (
	"strings"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/domain"
)

type View string

const (
	ViewHome     View = "home"
	ViewProduct  View = "product"
	ViewLogin    View = "login"
	ViewRegister View = "register"
	ViewCart     View = "cart"
	ViewCheckout View = "checkout"
	ViewProfile  View = "profile"
	ViewAdmin    View = "admin"
)

// Route is the outcome of resolving a page token: which view renders, plus
// the entity id suffix when the token carried one (e.g. "product/3").
type Route struct {
	View     View
	EntityID string
}

// Split cuts a page token on the first "/" into the main page and the
// optional id remainder.
func Split(token string) (page, id string) {
	page, id, _ = strings.Cut(token, "/")
	return page, id
}

// Resolve applies the guard rules and dispatches the token to a view.
// Profile and checkout require a session; admin requires the admin role.
// Unrecognized tokens fall back to home.
func Resolve(token string, sess *domain.Session) Route {
	page, id := Split(token)

	if (page == "profile" || page == "checkout") && sess == nil {
		return Route{View: ViewLogin}
	}
	if page == "admin" && !sess.IsAdmin() {
		return Route{View: ViewHome}
	}

	switch page {
	case "home":
		return Route{View: ViewHome}
	case "product":
		return Route{View: ViewProduct, EntityID: id}
	case "login":
		return Route{View: ViewLogin}
	case "register":
		return Route{View: ViewRegister}
	case "cart":
		return Route{View: ViewCart}
	case "checkout":
		return Route{View: ViewCheckout}
	case "profile":
		return Route{View: ViewProfile}
	case "admin":
		return Route{View: ViewAdmin}
	default:
		return Route{View: ViewHome}
	}
}
