package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"access-log-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLogRepo_SeedSetsNextID(t *testing.T) {
	repo := NewMemoryLogRepo(
		models.LogEntry{ID: 4, Username: "Aryan", Action: "login"},
		models.LogEntry{ID: 2, Username: "admin", Action: "login"},
	)

	entry := &models.LogEntry{Username: "Aryan", Action: "logout"}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.Equal(t, uint(5), entry.ID)
}

func TestMemoryLogRepo_ListReturnsCopy(t *testing.T) {
	repo := NewMemoryLogRepo()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &models.LogEntry{Username: "Aryan", Action: "login"}))

	logs, err := repo.List(ctx)
	require.NoError(t, err)
	logs[0].Action = "tampered"

	logs, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "login", logs[0].Action)
}

func TestMemoryLogRepo_UpdateAndDelete(t *testing.T) {
	repo := NewMemoryLogRepo()
	ctx := context.Background()
	ts := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	entry := &models.LogEntry{Username: "Aryan", Action: "login", Timestamp: ts}
	require.NoError(t, repo.Create(ctx, entry))

	updated, err := repo.UpdateAction(ctx, entry.ID, "logout")
	require.NoError(t, err)
	assert.Equal(t, "logout", updated.Action)
	assert.Equal(t, ts, updated.Timestamp)

	_, err = repo.UpdateAction(ctx, 42, "x")
	assert.ErrorIs(t, err, ErrLogNotFound)

	require.NoError(t, repo.Delete(ctx, entry.ID))
	assert.ErrorIs(t, repo.Delete(ctx, entry.ID), ErrLogNotFound)
}

func TestMemoryLogRepo_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewMemoryLogRepo()
	ctx := context.Background()

	const n = 100
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(ctx, &models.LogEntry{Username: "user", Action: fmt.Sprintf("action %d", i)})
		}(i)
	}
	wg.Wait()

	logs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, logs, n)

	seen := make(map[uint]bool, n)
	for _, l := range logs {
		assert.False(t, seen[l.ID], "duplicate id %d", l.ID)
		seen[l.ID] = true
	}
}

func TestMemoryUserRepo_FindByUsername(t *testing.T) {
	repo := NewMemoryUserRepo(append(models.DefaultUsers(), models.User{ID: 9, Username: "Aryan", Password: "other"}))
	ctx := context.Background()

	user, err := repo.FindByUsername(ctx, "Aryan")
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)

	_, err = repo.FindByUsername(ctx, "aryan")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
