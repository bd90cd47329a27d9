package entity

// UserLoginData is the authenticated principal taken from the access token.
// Per-user isolation of transactions is enforced by the store on UserID.
type UserLoginData struct {
	ID       string
	Username string
	Email    string
}
