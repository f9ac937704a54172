package recordsRepo

import (
	"context"
	"errors"

	"quickcowork/models"
)

// ErrRecordNotFound signals a missing persisted record.
var ErrRecordNotFound = errors.New("record not found")

// RecordsRepository persists the mutable marketplace records: confirmed
// bookings, owner-created listings awaiting review, and the per-user
// last-booking summary shown on the confirmation view.
type RecordsRepository interface {
	SaveBooking(ctx context.Context, b models.Booking) error
	GetBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error)
	GetBookingsBySpace(ctx context.Context, spaceID string) ([]models.Booking, error)
	CountBookings(ctx context.Context) (int64, error)

	SaveLastBooking(ctx context.Context, userID string, s models.BookingSummary) error
	// GetLastBooking returns ErrRecordNotFound when the user has no booking yet.
	GetLastBooking(ctx context.Context, userID string) (*models.BookingSummary, error)

	SaveListing(ctx context.Context, l models.PendingListing) error
	GetListing(ctx context.Context, id string) (*models.PendingListing, error)
	GetListingsByOwner(ctx context.Context, ownerID string) ([]models.PendingListing, error)
	GetListingsByStatus(ctx context.Context, status string) ([]models.PendingListing, error)
	UpdateListingStatus(ctx context.Context, id, status string) error
	CountListings(ctx context.Context) (int64, error)
}
