// Package view renders the active page as text. Views only read store state
// and invoke store operations; everything of consequence happens elsewhere.
package view

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/router"
	"github.com/ricardocortesc/Arepabuelas-FRONT/internal/store"
)

type Renderer struct {
	store *store.Store
	out   io.Writer
}

func New(st *store.Store, out io.Writer) *Renderer {
	return &Renderer{store: st, out: out}
}

// Render resolves the current page token through the router guard and draws
// the authorized view.
func (r *Renderer) Render(ctx context.Context) {
	if n := r.store.Notification(); n != nil {
		fmt.Fprintf(r.out, "[%s] %s\n", n.Severity, n.Message)
	}

	route := router.Resolve(r.store.Page(), r.store.Session())
	switch route.View {
	case router.ViewProduct:
		r.renderProduct(ctx, route.EntityID)
	case router.ViewLogin:
		r.renderLogin()
	case router.ViewRegister:
		r.renderRegister()
	case router.ViewCart:
		r.renderCart()
	case router.ViewCheckout:
		r.renderCheckout()
	case router.ViewProfile:
		r.renderProfile()
	case router.ViewAdmin:
		r.renderAdmin()
	default:
		r.renderHome()
	}
}

func (r *Renderer) renderHome() {
	fmt.Fprintln(r.out, "== Arepabuelas ==")
	for _, p := range r.store.Products() {
		fmt.Fprintf(r.out, "  #%d %s — %.2f\n", p.ID, p.Name, p.Price)
	}
}

func (r *Renderer) renderProduct(ctx context.Context, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		r.store.Navigate("home")
		r.renderHome()
		return
	}

	for _, p := range r.store.Products() {
		if p.ID == id {
			fmt.Fprintf(r.out, "== %s ==\n%s\nPrice: %.2f\n", p.Name, p.Description, p.Price)
			if comments, ok := r.store.FetchProductComments(ctx, id); ok {
				for _, c := range comments {
					fmt.Fprintf(r.out, "  %s: %s\n", c.User, c.Text)
				}
			}
			return
		}
	}

	// product missing: back to home rather than an error page
	r.store.Navigate("home")
	r.renderHome()
}

func (r *Renderer) renderLogin() {
	fmt.Fprintln(r.out, "== Sign in ==")
	fmt.Fprintln(r.out, "  login <email> <password> | register")
}

func (r *Renderer) renderRegister() {
	fmt.Fprintln(r.out, "== Register ==")
	fmt.Fprintln(r.out, "  register <name> <email> <password> [photo-file]")
}

func (r *Renderer) renderCart() {
	fmt.Fprintln(r.out, "== Cart ==")
	items := r.store.CartItems()
	if len(items) == 0 {
		fmt.Fprintln(r.out, "  (empty)")
	}
	for _, it := range items {
		fmt.Fprintf(r.out, "  #%d %s x%d — %.2f\n", it.ID, it.Name, it.Quantity, it.Price*float64(it.Quantity))
	}
	fmt.Fprintf(r.out, "Total: %.2f\n", r.store.CartTotal())
}

func (r *Renderer) renderCheckout() {
	fmt.Fprintln(r.out, "== Checkout ==")
	fmt.Fprintf(r.out, "Total: %.2f\n", r.store.CartTotal())
	if r.store.CouponEligible() {
		fmt.Fprintln(r.out, "First order? A welcome coupon may apply.")
	}
	fmt.Fprintln(r.out, "  order <card-name> <card-number> <MM/YY> <cvv> [coupon]")
}

func (r *Renderer) renderProfile() {
	sess := r.store.Session()
	fmt.Fprintf(r.out, "== %s ==\n%s\n", sess.Name, sess.Email)
	for _, o := range r.store.History() {
		fmt.Fprintf(r.out, "  %s %s — %.2f", o.ID, o.Date.Format("2006-01-02"), o.Total)
		if o.Discount > 0 {
			fmt.Fprintf(r.out, " (discount %.2f, paid %.2f)", o.Discount, o.FinalTotal)
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) renderAdmin() {
	fmt.Fprintln(r.out, "== Admin ==")
	fmt.Fprintln(r.out, "Pending users:")
	for _, u := range r.store.PendingUsers() {
		fmt.Fprintf(r.out, "  %s %s <%s>\n", u.ID, u.Name, u.Email)
	}
	fmt.Fprintln(r.out, "  approve <user-id> | newproduct <name> <price> <description>")
}
