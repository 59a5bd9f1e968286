package sessionstore

import (
	"io/ioutil"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cardlect/cardlect/core/identity"
)

func testSession() identity.Session {
	return identity.Session{
		Identity: identity.Identity{
			ID:       "uid-finance",
			Name:     "Peter Mugisha",
			Email:    "finance@cardlect.io",
			Role:     identity.RoleFinance,
			TenantID: identity.DemoTenantID,
		},
		EstablishedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func Test_fileStore_SaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".cardlect", "session.json")
	store := NewFileStore(path)

	// nothing persisted yet
	_, ok, err := store.Load()
	assert.NoError(t, err)
	assert.False(t, ok)

	sess := testSession()
	assert.NoError(t, store.Save(sess))

	got, ok, err := store.Load()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sess.Identity.ID, got.Identity.ID)
	assert.Equal(t, sess.Identity.Role, got.Identity.Role)
	assert.True(t, sess.EstablishedAt.Equal(got.EstablishedAt))

	assert.NoError(t, store.Clear())
	_, ok, err = store.Load()
	assert.NoError(t, err)
	assert.False(t, ok)

	// clearing an already-empty store is fine
	assert.NoError(t, store.Clear())
}

func Test_fileStore_Save_overwrites(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "session.json"))

	first := testSession()
	assert.NoError(t, store.Save(first))

	second := first
	second.Identity.ID = "uid-teacher"
	second.Identity.Role = identity.RoleTeacher
	assert.NoError(t, store.Save(second))

	got, ok, err := store.Load()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "uid-teacher", got.Identity.ID)
}

func Test_fileStore_Load_corruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	assert.NoError(t, ioutil.WriteFile(path, []byte("{not json"), 0o600))

	// corrupt state counts as no session, never a partial one
	sess, ok, err := NewFileStore(path).Load()
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, identity.Session{}, sess)
}

func Test_fileStore_Save_leavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(filepath.Join(dir, "session.json"))
	assert.NoError(t, store.Save(testSession()))

	entries, err := ioutil.ReadDir(dir)
	assert.NoError(t, err)
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "session.json", entries[0].Name())
	}
}

func Test_memoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, ok, err := store.Load()
	assert.NoError(t, err)
	assert.False(t, ok)

	sess := testSession()
	assert.NoError(t, store.Save(sess))

	got, ok, err := store.Load()
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, sess, got)

	assert.NoError(t, store.Clear())
	_, ok, err = store.Load()
	assert.NoError(t, err)
	assert.False(t, ok)
}
