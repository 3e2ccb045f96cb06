package store

// Session is the cached authentication credential. Empty strings stand for
// "no value"; IsAuthenticated is true exactly when both are set.
type Session struct {
	Token           string
	Email           string
	IsAuthenticated bool
}

func newSession(token, email string) Session {
	return Session{Token: token, Email: email, IsAuthenticated: token != "" && email != ""}
}

// SetCredentials stores a fresh login and asks for it to be persisted.
// Values are trusted as returned by the API.
type SetCredentials struct {
	Token string
	Email string
}

func (a SetCredentials) Reduce(s State) (State, []Effect) {
	s.Session = newSession(a.Token, a.Email)
	return s, []Effect{{Kind: PersistSession, Token: a.Token, Email: a.Email}}
}

// Logout clears the session and the durable copy. Idempotent.
type Logout struct{}

func (Logout) Reduce(s State) (State, []Effect) {
	s.Session = Session{}
	return s, []Effect{{Kind: ClearSession}}
}

// RestoreSession applies credentials read from durable storage. It only
// authenticates when both values are present; otherwise the state is left
// as is.
type RestoreSession struct {
	Token string
	Email string
}

func (a RestoreSession) Reduce(s State) (State, []Effect) {
	if a.Token == "" || a.Email == "" {
		return s, nil
	}
	s.Session = newSession(a.Token, a.Email)
	return s, nil
}
