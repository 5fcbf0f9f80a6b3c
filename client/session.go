package client

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/dishcovery/dishcovery/backend/internal/api"
)

// Session is the client-persisted auth state: the signed-in user summary
// and a cache of wishlist recipe ids mirroring the server.
type Session struct {
	User     *api.UserSummary `json:"user,omitempty"`
	Token    string           `json:"token,omitempty"`
	Wishlist []string         `json:"wishlist"`
}

// DisplayName derives a name to show from the email local part.
func (s *Session) DisplayName() string {
	if s.User == nil {
		return ""
	}
	if at := strings.Index(s.User.Email, "@"); at > 0 {
		return s.User.Email[:at]
	}
	return s.User.Email
}

// SignedIn reports whether a user is stored in the session.
func (s *Session) SignedIn() bool {
	return s.User != nil
}

// Store persists a Session as JSON at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultSessionPath returns the conventional session location under the
// user's config directory.
func DefaultSessionPath() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "dishcovery", "session.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "dishcovery", "session.json")
}

// Load reads the persisted session. A missing file yields an empty,
// signed-out session.
func (st *Store) Load() (*Session, error) {
	data, err := os.ReadFile(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return &Session{Wishlist: []string{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Wishlist == nil {
		s.Wishlist = []string{}
	}
	return &s, nil
}

func (st *Store) Save(s *Session) error {
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(st.path, data, 0o600)
}

// Clear removes the persisted session (logout).
func (st *Store) Clear() error {
	err := os.Remove(st.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Auth mediates sign-in state and wishlist calls, mirroring the behavior
// of the web frontend's auth context: the wishlist cache is re-synced
// from the server right after login and reconciled from every add/remove
// response (the server's returned id list is authoritative).
type Auth struct {
	client  *Client
	store   *Store
	session *Session
}

func NewAuth(c *Client, store *Store) (*Auth, error) {
	session, err := store.Load()
	if err != nil {
		return nil, err
	}
	if session.Token != "" {
		c.SetToken(session.Token)
	}
	return &Auth{client: c, store: store, session: session}, nil
}

func (a *Auth) Session() *Session {
	return a.session
}

// Login signs in, persists the user summary and token, and refreshes the
// wishlist cache from the server. A wishlist fetch failure does not fail
// the login; the cache just starts empty.
func (a *Auth) Login(ctx context.Context, email, password string) error {
	result, err := a.client.SignIn(ctx, email, password)
	if err != nil {
		return err
	}

	a.session.User = &result.User
	a.session.Token = result.Token
	a.session.Wishlist = []string{}
	a.client.SetToken(result.Token)

	if recipes, err := a.client.Wishlist(ctx, result.UserID); err == nil {
		ids := make([]string, 0, len(recipes))
		for _, r := range recipes {
			ids = append(ids, r.ID.String())
		}
		a.session.Wishlist = ids
	}

	return a.store.Save(a.session)
}

// Logout clears the in-memory and persisted session.
func (a *Auth) Logout() error {
	a.session = &Session{Wishlist: []string{}}
	a.client.SetToken("")
	return a.store.Clear()
}

// AddToWishlist calls the server and replaces the cached id list with the
// server's response.
func (a *Auth) AddToWishlist(ctx context.Context, recipeID string) error {
	if !a.session.SignedIn() {
		return errors.New("not signed in")
	}
	wishlist, err := a.client.AddToWishlist(ctx, a.session.User.ID, recipeID)
	if err != nil {
		return err
	}
	a.session.Wishlist = wishlist
	return a.store.Save(a.session)
}

// RemoveFromWishlist calls the server and replaces the cached id list
// with the server's response.
func (a *Auth) RemoveFromWishlist(ctx context.Context, recipeID string) error {
	if !a.session.SignedIn() {
		return errors.New("not signed in")
	}
	wishlist, err := a.client.RemoveFromWishlist(ctx, a.session.User.ID, recipeID)
	if err != nil {
		return err
	}
	a.session.Wishlist = wishlist
	return a.store.Save(a.session)
}

// IsInWishlist answers from the local cache without a network call.
func (a *Auth) IsInWishlist(recipeID string) bool {
	for _, id := range a.session.Wishlist {
		if id == recipeID {
			return true
		}
	}
	return false
}
