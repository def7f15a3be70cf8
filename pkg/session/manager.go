package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"argentbank/pkg/api"
	"argentbank/pkg/store"
)

// SessionExpiredMessage is what the view shows after an implicit logout.
const SessionExpiredMessage = "Your session has expired. Please log in again."

const networkErrMessage = "Network error"

var (
	ErrEmptyCredentials = errors.New("email and password are required")
	ErrEmptyUserName    = errors.New("user name is required")
	ErrNotAuthenticated = errors.New("not authenticated")
)

// Manager owns the authentication and profile state for one client process.
// Remote failures never propagate past it: they land in State.Err and the
// method returns nil. Local precondition failures (empty credentials, no
// token) return a sentinel error without touching state.
//
// Operations may be called from concurrent goroutines; each applies its
// result atomically under the lock. A logout that happens while a request
// is in flight bumps the epoch so the late response is dropped instead of
// resurrecting a token.
type Manager struct {
	mu    sync.Mutex
	state State
	epoch uint64

	client api.ClientInterface
	store  store.Store
	logger *slog.Logger
}

func NewManager(client api.ClientInterface, st store.Store, logger *slog.Logger) *Manager {
	return &Manager{
		client: client,
		store:  st,
		logger: logger,
	}
}

// Initialize restores the persisted token and remember-me flag. No network
// call is made; the profile stays absent until the view asks for it.
func (m *Manager) Initialize() error {
	token, err := m.store.Get(store.KeyToken)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	remember, err := m.store.Get(store.KeyRememberMe)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = State{
		Token:           token,
		IsAuthenticated: token != "",
		RememberMe:      remember == "true",
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) Login(ctx context.Context, email, password string, rememberMe bool) error {
	if email == "" || password == "" {
		return ErrEmptyCredentials
	}

	m.mu.Lock()
	epoch := m.epoch
	m.state = pending(m.state)
	m.mu.Unlock()

	token, err := m.client.Login(ctx, email, password)

	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		// logged out while the request was in flight
		return nil
	}
	if err != nil {
		m.state = failed(m.state, errMessage(err))
		return nil
	}

	m.state = loginSucceeded(m.state, token, rememberMe)
	m.persistCredentials(token, rememberMe)
	return nil
}

func (m *Manager) FetchProfile(ctx context.Context) error {
	m.mu.Lock()
	token := m.state.Token
	if token == "" {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	epoch := m.epoch
	m.state = pending(m.state)
	m.mu.Unlock()

	profile, err := m.client.FetchProfile(ctx, token)

	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		return nil
	}
	if err != nil {
		m.applyRemoteFailure(err)
		return nil
	}

	m.state = profileFetched(m.state, profile)
	return nil
}

// UpdateUserName persists a new display name through the profile-update
// endpoint. The server's record replaces the cached one; on failure the
// prior confirmed value stays visible.
func (m *Manager) UpdateUserName(ctx context.Context, userName string) error {
	if userName == "" {
		return ErrEmptyUserName
	}

	m.mu.Lock()
	token := m.state.Token
	if token == "" {
		m.mu.Unlock()
		return ErrNotAuthenticated
	}
	if m.state.User != nil && m.state.User.UserName == userName {
		// already confirmed, nothing to do
		m.mu.Unlock()
		return nil
	}
	epoch := m.epoch
	m.state = pending(m.state)
	m.mu.Unlock()

	profile, err := m.client.UpdateUserName(ctx, token, userName)

	m.mu.Lock()
	defer m.mu.Unlock()
	if epoch != m.epoch {
		return nil
	}
	if err != nil {
		m.applyRemoteFailure(err)
		return nil
	}

	m.state = profileFetched(m.state, profile)
	return nil
}

// Logout clears the in-memory session and purges persisted credentials.
// Synchronous, no network call.
func (m *Manager) Logout() error {
	m.mu.Lock()
	m.epoch++
	m.state = reset()
	m.mu.Unlock()

	return m.purgeCredentials()
}

// ClearError drops a stale error message so it is not shown again on the
// next view mount.
func (m *Manager) ClearError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.Err = ""
}

// applyRemoteFailure routes a profile-operation error. A 401 means the
// token is no longer valid and takes the sessionExpired transition; any
// other failure only surfaces a message. Callers hold the lock.
func (m *Manager) applyRemoteFailure(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
		m.epoch++
		m.state = sessionExpired(m.state)
		if perr := m.purgeCredentials(); perr != nil {
			m.logger.Error("purge credentials", "error", perr)
		}
		return
	}
	m.state = failed(m.state, errMessage(err))
}

// persistCredentials is the write-through after a successful login. With
// remember-me off any stale persisted token is removed too. Store failures
// are logged, not surfaced: the in-memory session is already valid.
func (m *Manager) persistCredentials(token string, rememberMe bool) {
	if rememberMe {
		if err := m.store.Set(store.KeyToken, token); err != nil {
			m.logger.Error("persist token", "error", err)
		}
		if err := m.store.Set(store.KeyRememberMe, "true"); err != nil {
			m.logger.Error("persist remember-me", "error", err)
		}
		return
	}
	if err := m.purgeCredentials(); err != nil {
		m.logger.Error("purge credentials", "error", err)
	}
}

func (m *Manager) purgeCredentials() error {
	if err := m.store.Delete(store.KeyToken); err != nil {
		return err
	}
	return m.store.Delete(store.KeyRememberMe)
}

func errMessage(err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return networkErrMessage
}
