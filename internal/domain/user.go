package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// DefaultUserPhoto is used when a token carries no photo claim.
const DefaultUserPhoto = "https://placehold.co/100x100/888888/FFFFFF?text=User"

// Session is the client-side view of an authenticated user, derived from the
// bearer token. Display fields only; the backend is the authority on validity.
type Session struct {
	UserID   string `json:"userId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoUrl"`
	Role     Role   `json:"role"`
	Token    string `json:"-"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

// PendingUser is a registered account awaiting admin approval.
type PendingUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Photo string `json:"photo,omitempty"`
}
