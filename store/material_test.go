package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddAndListMaterials(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddMaterial("Algebra notes", "math", "https://cdn.example.com/algebra.pdf")
	require.NoError(t, err)

	material, err := s.AddMaterial("", "math", "https://cdn.example.com/x.pdf")
	require.Error(t, err)
	require.Nil(t, material)

	materials, err := s.Materials()
	require.NoError(t, err)
	require.Len(t, materials, 1)
	require.Equal(t, "Algebra notes", materials[0].Name)
}
