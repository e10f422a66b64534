package models

// LoginResult is the outcome of a single login attempt.
// The message is safe to show to the end caller: it never reveals whether
// the account exists.
type LoginResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SeedResult reports the outcome of seeding the initial admin account.
// Password is populated only when the seed generated one, and only on this
// result value; the generated password is never persisted or logged.
type SeedResult struct {
	Created  bool   `json:"created"`
	Username string `json:"username"`
	Password string `json:"-"`
	Message  string `json:"message"`
}
