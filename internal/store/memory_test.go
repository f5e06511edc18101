package store

import (
	"fmt"
	"sync"
	"testing"

	"github.com/isdelr/identity-be/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_InsertAssignsSequentialIDs(t *testing.T) {
	s := NewMemoryStore()

	for i := 1; i <= 3; i++ {
		user, err := s.Insert("user", fmt.Sprintf("user%d@example.com", i), "hash")
		require.NoError(t, err)
		assert.Equal(t, int64(i), user.ID)
		assert.Equal(t, models.StatusActive, user.Status)
	}
	assert.Equal(t, 3, s.Count())
}

func TestMemoryStore_InsertDuplicateEmail(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Insert("alice", "alice@example.com", "hash")
	require.NoError(t, err)

	_, err = s.Insert("other alice", "alice@example.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
	assert.Equal(t, 1, s.Count())
}

func TestMemoryStore_FindByEmail(t *testing.T) {
	s := NewMemoryStore()
	inserted, err := s.Insert("alice", "alice@example.com", "hash")
	require.NoError(t, err)

	found, err := s.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, inserted.ID, found.ID)
	assert.Equal(t, "hash", found.PasswordHash)

	// Exact-match lookup: no case normalization.
	_, err = s.FindByEmail("Alice@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_FindByID(t *testing.T) {
	s := NewMemoryStore()
	inserted, err := s.Insert("bob", "bob@example.com", "hash")
	require.NoError(t, err)

	found, err := s.FindByID(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", found.Email)

	_, err = s.FindByID(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	s := NewMemoryStore()
	inserted, err := s.Insert("bob", "bob@example.com", "hash")
	require.NoError(t, err)

	updated, err := s.UpdateStatus(inserted.ID, models.StatusBlocked)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBlocked, updated.Status)

	found, err := s.FindByID(inserted.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusBlocked, found.Status)

	_, err = s.UpdateStatus(999, models.StatusActive)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	_, err := s.Insert("alice", "alice@example.com", "hash")
	require.NoError(t, err)

	found, err := s.FindByEmail("alice@example.com")
	require.NoError(t, err)
	found.PasswordHash = "tampered"

	again, err := s.FindByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hash", again.PasswordHash)
}

func TestMemoryStore_ConcurrentInsertSameEmail(t *testing.T) {
	s := NewMemoryStore()

	const attempts = 16
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Insert("racer", "race@example.com", "hash")
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrDuplicateEmail)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, s.Count())
}
