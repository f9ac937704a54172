package catalog

import (
	spaceRepo "quickcowork/database/repository/space"
	"quickcowork/models"
)

// CatalogService serves the browse surface: catalog lookups plus the
// filter/sort/search pipeline.
type CatalogService interface {
	// GetSpace returns a single catalog space, or spaceRepo.ErrSpaceNotFound.
	GetSpace(id string) (*models.Space, error)
	// ListSpaces returns the full catalog in display order.
	ListSpaces() []models.Space
	// Search applies criteria to the catalog and returns the spaces to
	// display, filtered and ordered.
	Search(criteria models.FilterCriteria) []models.Space
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo spaceRepo.SpaceRepository
}

func (s *DefaultCatalogService) GetSpace(id string) (*models.Space, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCatalogService) ListSpaces() []models.Space {
	return s.Repo.List()
}

func (s *DefaultCatalogService) Search(criteria models.FilterCriteria) []models.Space {
	return ApplyCriteria(s.Repo.List(), criteria)
}
