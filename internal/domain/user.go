package domain

// User is the customer identity cached for the active session.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AdminUser lives only in admin-mode memory and is never persisted; a
// restart of the client returns to the admin login screen.
type AdminUser struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}
