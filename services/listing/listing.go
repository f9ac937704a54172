package listing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	recordsRepo "quickcowork/database/repository/records"
	"quickcowork/models"
)

// ListingService owns owner-created listings: creation into the review
// queue and the admin moderation actions. Approved listings live in the
// records store, separate from the seed catalog.
type ListingService interface {
	Create(ctx context.Context, ownerID string, space models.Space) (*models.PendingListing, error)
	Pending(ctx context.Context) ([]models.PendingListing, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

// DefaultListingService is the production implementation.
type DefaultListingService struct {
	Records recordsRepo.RecordsRepository
}

func (s *DefaultListingService) Create(ctx context.Context, ownerID string, space models.Space) (*models.PendingListing, error) {
	if !models.ValidSpaceType(space.Type) {
		return nil, fmt.Errorf("unknown space type %q", space.Type)
	}
	if space.Price <= 0 {
		return nil, fmt.Errorf("price must be positive")
	}
	if space.Capacity < 1 {
		return nil, fmt.Errorf("capacity must be at least 1")
	}
	if len(space.Images) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}

	space.ID = uuid.New().String()
	l := models.PendingListing{
		ID:        space.ID,
		OwnerID:   ownerID,
		Space:     space,
		Status:    models.ListingStatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.Records.SaveListing(ctx, l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (s *DefaultListingService) Pending(ctx context.Context) ([]models.PendingListing, error) {
	return s.Records.GetListingsByStatus(ctx, models.ListingStatusPending)
}

func (s *DefaultListingService) Approve(ctx context.Context, id string) error {
	return s.Records.UpdateListingStatus(ctx, id, models.ListingStatusApproved)
}

func (s *DefaultListingService) Reject(ctx context.Context, id string) error {
	return s.Records.UpdateListingStatus(ctx, id, models.ListingStatusRejected)
}
