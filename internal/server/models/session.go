package models

// SessionData is the payload stored in the session store under a token.
// It is a lookup-only back-reference: deleting the user does not remove
// the session entries pointing at it.
type SessionData struct {
	UserID string `json:"userId"`
}
