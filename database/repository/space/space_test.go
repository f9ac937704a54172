package spaceRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickcowork/models"
)

func TestGetByID(t *testing.T) {
	repo := NewMemorySpaceRepo()

	space, err := repo.GetByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Art Studio Loft", space.Title)

	_, err = repo.GetByID("does-not-exist")
	assert.ErrorIs(t, err, ErrSpaceNotFound)
}

func TestListPreservesSeedOrder(t *testing.T) {
	repo := NewMemorySpaceRepo()

	spaces := repo.List()
	require.Len(t, spaces, 6)
	for i, s := range spaces {
		assert.Equal(t, seedSpaces()[i].ID, s.ID)
	}
}

func TestListReturnsACopy(t *testing.T) {
	repo := NewMemorySpaceRepo()

	first := repo.List()
	first[0].Title = "mutated"

	again := repo.List()
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestFilterByType(t *testing.T) {
	repo := NewMemorySpaceRepo()

	offices := repo.FilterByType(models.SpaceTypeOffice)
	require.Len(t, offices, 2)
	for _, s := range offices {
		assert.Equal(t, models.SpaceTypeOffice, s.Type)
	}

	all := repo.FilterByType(models.SpaceTypeAll)
	assert.Len(t, all, 6)
}

func TestSeedInvariants(t *testing.T) {
	for _, s := range seedSpaces() {
		assert.Greater(t, s.Price, 0.0, "space %s", s.ID)
		assert.GreaterOrEqual(t, s.Capacity, 1, "space %s", s.ID)
		assert.NotEmpty(t, s.Images, "space %s", s.ID)
		assert.True(t, models.ValidSpaceType(s.Type), "space %s", s.ID)
		assert.GreaterOrEqual(t, s.Rating, 0.0, "space %s", s.ID)
		assert.LessOrEqual(t, s.Rating, 5.0, "space %s", s.ID)
	}
}
