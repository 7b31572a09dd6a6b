package domain

// User is the authenticated shopper identity. Token is opaque to the rest of
// the system.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}
