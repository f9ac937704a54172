package spaceRepo

import "quickcowork/models"

// MemorySpaceRepo serves the seed catalog from memory. The catalog is
// immutable after construction, so reads need no synchronization.
type MemorySpaceRepo struct {
	spaces []models.Space
	byID   map[string]int
}

// NewMemorySpaceRepo builds a repository over the seed catalog.
func NewMemorySpaceRepo() *MemorySpaceRepo {
	spaces := seedSpaces()
	byID := make(map[string]int, len(spaces))
	for i, s := range spaces {
		byID[s.ID] = i
	}
	return &MemorySpaceRepo{spaces: spaces, byID: byID}
}

func (r *MemorySpaceRepo) GetByID(id string) (*models.Space, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrSpaceNotFound
	}
	s := r.spaces[i]
	return &s, nil
}

func (r *MemorySpaceRepo) List() []models.Space {
	out := make([]models.Space, len(r.spaces))
	copy(out, r.spaces)
	return out
}

func (r *MemorySpaceRepo) FilterByType(t models.SpaceType) []models.Space {
	if t == models.SpaceTypeAll {
		return r.List()
	}
	var out []models.Space
	for _, s := range r.spaces {
		if s.Type == t {
			out = append(out, s)
		}
	}
	return out
}
