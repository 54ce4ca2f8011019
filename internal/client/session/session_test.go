package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/adminconsole/internal/client/models"
	"github.com/dmitrijs2005/adminconsole/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/adminconsole/internal/client/storage"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

var (
	alice = models.User{ID: 1, Username: "alice", Nickname: "Al", RoleID: 2}
	menus = []models.Menu{{
		ID: 1, Name: "System", Path: "/system",
		Children: []models.Menu{{ID: 2, ParentID: 1, Name: "Users", Path: "/system/users"}},
	}}
)

func TestNew_IsEmpty(t *testing.T) {
	s := New(nil)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Credential())
	_, ok := s.Profile()
	assert.False(t, ok)
	assert.Nil(t, s.Menus())
	_, ok = s.ExpiresAt()
	assert.False(t, ok)
}

func TestLogin_SetsAllParts(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Login(context.Background(), "tok", alice, menus))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok", s.Credential())
	p, ok := s.Profile()
	require.True(t, ok)
	assert.Equal(t, alice, p)
	assert.Equal(t, menus, s.Menus())
}

func TestLogin_RejectsEmptyCredential(t *testing.T) {
	s := New(nil)
	require.Error(t, s.Login(context.Background(), "", alice, nil))
	assert.False(t, s.IsAuthenticated())
}

func TestMenus_ReturnsCopy(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Login(context.Background(), "tok", alice, menus))

	got := s.Menus()
	got[0].Children[0].Name = "changed"

	assert.Equal(t, "Users", s.Menus()[0].Children[0].Name)
}

func TestClear_DropsAllParts(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := New(db)
	require.NoError(t, s.Login(ctx, "tok", alice, menus))

	require.NoError(t, s.Invalidate(ctx))

	st := s.Snapshot()
	assert.Empty(t, st.Credential)
	assert.Nil(t, st.Profile)
	assert.Nil(t, st.Menus)

	stored, err := metadata.NewSQLiteRepository(db).List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, stored, keyToken)
	assert.NotContains(t, stored, keyUser)
	assert.NotContains(t, stored, keyMenus)
}

func TestLoad_RestoresPersistedSession(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	token := signedToken(t, time.Now().Add(time.Hour))

	require.NoError(t, New(db).Login(ctx, token, alice, menus))

	restored := New(db)
	require.NoError(t, restored.Load(ctx))

	assert.Equal(t, token, restored.Credential())
	p, ok := restored.Profile()
	require.True(t, ok)
	assert.Equal(t, alice.Username, p.Username)
	assert.Equal(t, menus, restored.Menus())

	exp, ok := restored.ExpiresAt()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 2*time.Second)
}

func TestLoad_NothingStored(t *testing.T) {
	s := New(setupDB(t))
	require.NoError(t, s.Load(context.Background()))
	assert.False(t, s.IsAuthenticated())
}

func TestLoad_ExpiredCredentialIsDiscarded(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, New(db).Login(ctx, signedToken(t, time.Now().Add(-time.Minute)), alice, menus))

	s := New(db)
	err := s.Load(ctx)
	require.ErrorIs(t, err, ErrExpired)
	assert.False(t, s.IsAuthenticated())

	token, err := metadata.NewSQLiteRepository(db).Get(ctx, keyToken)
	require.NoError(t, err)
	assert.Nil(t, token)
}

func TestLoad_OpaqueCredentialIsKept(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, New(db).Login(ctx, "opaque-token", alice, nil))

	s := New(db)
	require.NoError(t, s.Load(ctx))
	assert.Equal(t, "opaque-token", s.Credential())
	_, ok := s.ExpiresAt()
	assert.False(t, ok)
}

func TestLogin_PersistFailureKeepsPreviousState(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := New(db)
	require.NoError(t, s.Login(ctx, "first", alice, menus))
	require.NoError(t, db.Close())

	err := s.Login(ctx, "second", models.User{ID: 9, Username: "bob"}, nil)
	require.Error(t, err)

	assert.Equal(t, "first", s.Credential())
	p, _ := s.Profile()
	assert.Equal(t, "alice", p.Username)
}

func TestClear_PersistFailureStillClearsMemory(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	s := New(db)
	require.NoError(t, s.Login(ctx, "tok", alice, menus))
	require.NoError(t, db.Close())

	require.Error(t, s.Clear(ctx))
	assert.False(t, s.IsAuthenticated())
}

func TestSnapshot_NeverPartial(t *testing.T) {
	s := New(nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			_ = s.Login(ctx, "tok", alice, menus)
			_ = s.Clear(ctx)
		}
		close(stop)
	}()

	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				st := s.Snapshot()
				if st.Credential == "" {
					assert.Nil(t, st.Profile)
					assert.Nil(t, st.Menus)
				} else {
					assert.NotNil(t, st.Profile)
					assert.Len(t, st.Menus, 1)
				}
			}
		}()
	}
	wg.Wait()
}
