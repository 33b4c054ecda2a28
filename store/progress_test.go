package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndReadUserData(t *testing.T) {
	s := newTestStore(t)

	record, err := s.AddUserData(42, 120, 9001)
	require.NoError(t, err)
	require.NotZero(t, record.ID)

	records, err := s.UserData(42)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, 120, records[0].TimeSpent)
	require.Equal(t, 9001, records[0].HighScore)

	// snapshots accumulate per user, nothing is overwritten
	_, err = s.AddUserData(42, 300, 9500)
	require.NoError(t, err)

	records, err = s.UserData(42)
	require.NoError(t, err)
	require.Len(t, records, 2)

	other, err := s.UserData(7)
	require.NoError(t, err)
	require.Empty(t, other)
}
