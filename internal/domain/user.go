package domain

// User is an account holder. PasswordHash is never exposed outside the
// application layer.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
}

// Public returns the caller-safe projection of the user.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Username: u.Username}
}

// PublicUser is the {id, username} view returned by the auth flows.
type PublicUser struct {
	ID       int64
	Username string
}

// AuthResult is the outcome of a successful signup or signin.
type AuthResult struct {
	Message string
	User    PublicUser
	Token   string
}
