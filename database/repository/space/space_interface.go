package spaceRepo

import (
	"errors"

	"quickcowork/models"
)

// ErrSpaceNotFound signals an unknown space id. Callers render a not-found
// state instead of failing hard.
var ErrSpaceNotFound = errors.New("space not found")

// SpaceRepository serves the read-only space catalog.
type SpaceRepository interface {
	// GetByID returns the space with the given id, or ErrSpaceNotFound.
	GetByID(id string) (*models.Space, error)
	// List returns the full catalog in seed insertion order.
	List() []models.Space
	// FilterByType returns the subsequence whose type equals t.
	// models.SpaceTypeAll means no filtering.
	FilterByType(t models.SpaceType) []models.Space
}
