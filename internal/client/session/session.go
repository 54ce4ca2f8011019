// Package session holds the console's login state: the bearer credential, the
// user profile and the permitted menu set. The three parts are always set and
// cleared together, in memory and in the local metadata area.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/adminconsole/internal/dbx"
	"github.com/golang-jwt/jwt/v5"
)

const (
	keyToken = "token"
	keyUser  = "user"
	keyMenus = "menus"
)

// ErrExpired is returned by Load when the persisted credential had already
// expired. The stored session is discarded.
var ErrExpired = errors.New("session expired, please log in again")

// State is a consistent copy of the session.
type State struct {
	Credential string
	Profile    *models.User
	Menus      []models.Menu
}

type Session struct {
	mu         sync.RWMutex
	db         *sql.DB
	credential string
	profile    *models.User
	menus      []models.Menu

	now func() time.Time
}

// New returns an empty session persisted in db. A nil db keeps the session
// in memory only.
func New(db *sql.DB) *Session {
	return &Session{db: db, now: time.Now}
}

// Load restores the persisted session. A credential whose exp claim has
// passed is dropped and ErrExpired returned.
func (s *Session) Load(ctx context.Context) error {
	if s.db == nil {
		return nil
	}

	repo := metadata.NewSQLiteRepository(s.db)
	token, err := repo.Get(ctx, keyToken)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if len(token) == 0 {
		return nil
	}

	var profile *models.User
	if raw, err := repo.Get(ctx, keyUser); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	} else if len(raw) > 0 {
		profile = &models.User{}
		if err := json.Unmarshal(raw, profile); err != nil {
			return fmt.Errorf("failed to decode stored profile: %w", err)
		}
	}

	var menus []models.Menu
	if raw, err := repo.Get(ctx, keyMenus); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	} else if len(raw) > 0 {
		if err := json.Unmarshal(raw, &menus); err != nil {
			return fmt.Errorf("failed to decode stored menus: %w", err)
		}
	}

	if exp, ok := tokenExpiry(string(token)); ok && !s.now().Before(exp) {
		if err := s.Clear(ctx); err != nil {
			return err
		}
		return ErrExpired
	}

	s.mu.Lock()
	s.credential = string(token)
	s.profile = profile
	s.menus = menus
	s.mu.Unlock()
	return nil
}

// Login replaces the whole session. On a persistence failure the in-memory
// state is left as it was.
func (s *Session) Login(ctx context.Context, credential string, profile models.User, menus []models.Menu) error {
	if credential == "" {
		return errors.New("empty credential")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(ctx, credential, profile, menus); err != nil {
		return err
	}

	p := profile
	s.credential = credential
	s.profile = &p
	s.menus = cloneMenus(menus)
	return nil
}

// Clear drops the whole session. Memory is cleared even when the stored copy
// could not be removed; that failure is returned.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.credential = ""
	s.profile = nil
	s.menus = nil

	if s.db == nil {
		return nil
	}
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, keyToken, keyUser, keyMenus)
	})
	if err != nil {
		return fmt.Errorf("failed to clear stored session: %w", err)
	}
	return nil
}

// Invalidate is called when the server rejects the credential.
func (s *Session) Invalidate(ctx context.Context) error {
	return s.Clear(ctx)
}

func (s *Session) persist(ctx context.Context, credential string, profile models.User, menus []models.Menu) error {
	if s.db == nil {
		return nil
	}

	rawUser, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if menus == nil {
		menus = []models.Menu{}
	}
	rawMenus, err := json.Marshal(menus)
	if err != nil {
		return fmt.Errorf("failed to encode menus: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyToken, []byte(credential)); err != nil {
			return err
		}
		if err := repo.Set(ctx, keyUser, rawUser); err != nil {
			return err
		}
		return repo.Set(ctx, keyMenus, rawMenus)
	})
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

func (s *Session) Credential() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}

// Profile returns a copy of the current user, if any.
func (s *Session) Profile() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return models.User{}, false
	}
	return *s.profile, true
}

func (s *Session) Menus() []models.Menu {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMenus(s.menus)
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential != ""
}

func (s *Session) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := State{Credential: s.credential, Menus: cloneMenus(s.menus)}
	if s.profile != nil {
		p := *s.profile
		st.Profile = &p
	}
	return st
}

// ExpiresAt reports the exp claim of the credential when it is a JWT that
// carries one.
func (s *Session) ExpiresAt() (time.Time, bool) {
	return tokenExpiry(s.Credential())
}

// tokenExpiry reads exp without verifying the signature.
func tokenExpiry(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func cloneMenus(menus []models.Menu) []models.Menu {
	if menus == nil {
		return nil
	}
	out := make([]models.Menu, len(menus))
	for i, m := range menus {
		out[i] = m
		out[i].Children = cloneMenus(m.Children)
	}
	return out
}
