package session

import "argentbank/pkg/api"

// State is a snapshot of the session as the view layer reads it. An empty
// Err means no error. IsAuthenticated is true exactly when Token is set;
// every transition below preserves that.
type State struct {
	Token           string
	IsAuthenticated bool
	User            *api.Profile
	DisplayName     string
	RememberMe      bool
	IsLoading       bool
	Err             string
}

// The transitions are pure: old state in, new state out, no persistence.
// The Manager applies them under its lock and does the store write-through
// separately, so they stay testable without a store double.

func pending(s State) State {
	s.IsLoading = true
	s.Err = ""
	return s
}

func failed(s State, msg string) State {
	s.IsLoading = false
	s.Err = msg
	return s
}

func loginSucceeded(s State, token string, rememberMe bool) State {
	s.Token = token
	s.IsAuthenticated = true
	s.RememberMe = rememberMe
	s.IsLoading = false
	s.Err = ""
	return s
}

func profileFetched(s State, p *api.Profile) State {
	s.User = p
	s.DisplayName = displayNameOf(p)
	s.IsLoading = false
	s.Err = ""
	return s
}

// sessionExpired is the implicit logout taken when a profile operation
// hits a 401. Everything is cleared and a user-facing message is left
// behind.
func sessionExpired(State) State {
	return State{Err: SessionExpiredMessage}
}

func reset() State {
	return State{}
}

func displayNameOf(p *api.Profile) string {
	if p == nil {
		return ""
	}
	if p.UserName != "" {
		return p.UserName
	}
	return p.FirstName
}
