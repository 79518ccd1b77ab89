package identity

// Account is a registered user of the API. PasswordHash never leaves the
// package; responses carry PublicUser instead.
type Account struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
}

// PublicUser is the account view embedded in auth responses.
type PublicUser struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (a *Account) Public() PublicUser {
	return PublicUser{ID: a.ID, Name: a.Name, Email: a.Email}
}
