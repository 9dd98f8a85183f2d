package repository

import (
	"os"
	"path/filepath"
	"testing"

	"access-log-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadUsers_Default(t *testing.T) {
	users, err := LoadUsers("")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUsers(), users)
}

func TestLoadUsers_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`users:
  - id: 10
    username: alice
    password: wonderland
  - username: bob
    password: builder
`), 0o600))

	users, err := LoadUsers(path)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, models.User{ID: 10, Username: "alice", Password: "wonderland"}, users[0])
	assert.Equal(t, uint(2), users[1].ID)
}

func TestLoadUsers_Errors(t *testing.T) {
	_, err := LoadUsers(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "users.yaml")
	require.NoError(t, os.WriteFile(path, []byte("users:\n  - username: nopass\n"), 0o600))
	_, err = LoadUsers(path)
	assert.Error(t, err)
}
