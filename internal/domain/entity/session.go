package entity

import "time"

// Session is the terminal-side session record created at login: the remote
// bearer token, the cached user profile, and a bcrypt hash of the account
// password used to re-authorize privileged payment mutations. It is
// persisted in the local store so a terminal restart does not force
// re-login while the remote token is still valid.
type Session struct {
	ID         string    `json:"id"`
	Token      string    `json:"token"` // bearer token for the store API
	User       User      `json:"user"`
	ReauthHash string    `json:"reauth_hash,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
