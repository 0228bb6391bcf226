package confirm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgErrors "taskboard/pkg/errors"
)

func newTestStager(ttl time.Duration) (*Stager, *time.Time) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	s := NewStager(ttl)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestConfirm_AppliesOnce(t *testing.T) {
	s, _ := newTestStager(time.Minute)
	calls := 0
	c := s.Stage("delete_task", "Supprimer", "La tâche sera supprimée", func() (interface{}, error) {
		calls++
		return "ok", nil
	})

	assert.Equal(t, 0, calls, "staging must not mutate")

	result, err := s.Confirm(c.ID)
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, calls)

	_, err = s.Confirm(c.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrConfirmationMissing)
	assert.Equal(t, 1, calls)
}

func TestCancel_NeverApplies(t *testing.T) {
	s, _ := newTestStager(time.Minute)
	applied := false
	c := s.Stage("delete_team", "t", "m", func() (interface{}, error) {
		applied = true
		return nil, nil
	})

	require.NoError(t, s.Cancel(c.ID))
	_, err := s.Confirm(c.ID)
	assert.Error(t, err)
	assert.False(t, applied)
}

func TestConfirm_Expired(t *testing.T) {
	s, now := newTestStager(time.Minute)
	c := s.Stage("delete_users", "t", "m", func() (interface{}, error) {
		t.Fatal("expired confirmation applied")
		return nil, nil
	})

	*now = now.Add(2 * time.Minute)
	_, err := s.Confirm(c.ID)
	assert.ErrorIs(t, err, pkgErrors.ErrConfirmationExpired)
}

func TestPurgeExpired(t *testing.T) {
	s, now := newTestStager(time.Minute)
	noop := func() (interface{}, error) { return nil, nil }
	s.Stage("a", "t", "m", noop)
	*now = now.Add(30 * time.Second)
	s.Stage("b", "t", "m", noop)

	*now = now.Add(45 * time.Second)
	assert.Equal(t, 1, s.PurgeExpired())
	assert.Equal(t, 1, s.Pending())
}
