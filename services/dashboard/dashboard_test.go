package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recordsRepo "quickcowork/database/repository/records"
	userRepo "quickcowork/database/repository/user"
	"quickcowork/models"
	"quickcowork/services/user"
)

type stubRecords struct {
	bookings []models.Booking
	listings []models.PendingListing
}

func (s *stubRecords) SaveBooking(context.Context, models.Booking) error { return nil }

func (s *stubRecords) GetBookingsByUser(_ context.Context, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRecords) GetBookingsBySpace(_ context.Context, spaceID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.bookings {
		if b.SpaceID == spaceID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubRecords) CountBookings(context.Context) (int64, error) {
	return int64(len(s.bookings)), nil
}

func (s *stubRecords) SaveLastBooking(context.Context, string, models.BookingSummary) error {
	return nil
}

func (s *stubRecords) GetLastBooking(context.Context, string) (*models.BookingSummary, error) {
	return nil, recordsRepo.ErrRecordNotFound
}

func (s *stubRecords) SaveListing(context.Context, models.PendingListing) error { return nil }

func (s *stubRecords) GetListing(context.Context, string) (*models.PendingListing, error) {
	return nil, recordsRepo.ErrRecordNotFound
}

func (s *stubRecords) GetListingsByOwner(_ context.Context, ownerID string) ([]models.PendingListing, error) {
	var out []models.PendingListing
	for _, l := range s.listings {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubRecords) GetListingsByStatus(_ context.Context, status string) ([]models.PendingListing, error) {
	var out []models.PendingListing
	for _, l := range s.listings {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *stubRecords) UpdateListingStatus(context.Context, string, string) error { return nil }

func (s *stubRecords) CountListings(context.Context) (int64, error) {
	return int64(len(s.listings)), nil
}

func testDashboardService(records *stubRecords) *DefaultDashboardService {
	return &DefaultDashboardService{
		Records: records,
		Users:   &user.DefaultUserService{Repo: userRepo.NewMemoryUserRepo()},
	}
}

func TestRenterViewListsOwnBookingsOnly(t *testing.T) {
	records := &stubRecords{bookings: []models.Booking{
		{ID: "b1", UserID: "renter-1", SpaceID: "1", CreatedAt: time.Now()},
		{ID: "b2", UserID: "renter-2", SpaceID: "2", CreatedAt: time.Now()},
	}}
	svc := testDashboardService(records)

	view, err := svc.ForUser(context.Background(), models.User{ID: "renter-1", Role: models.RoleRenter})
	require.NoError(t, err)

	assert.Equal(t, models.RoleRenter, view.Role)
	require.NotNil(t, view.Renter)
	assert.Nil(t, view.Owner)
	assert.Nil(t, view.Admin)
	require.Len(t, view.Renter.Bookings, 1)
	assert.Equal(t, "b1", view.Renter.Bookings[0].ID)
}

func TestOwnerViewIncludesBookingsAgainstApprovedListings(t *testing.T) {
	records := &stubRecords{
		listings: []models.PendingListing{
			{ID: "s9", OwnerID: "owner-1", Status: models.ListingStatusApproved, Space: models.Space{ID: "s9"}},
			{ID: "s10", OwnerID: "owner-1", Status: models.ListingStatusPending, Space: models.Space{ID: "s10"}},
		},
		bookings: []models.Booking{
			{ID: "b1", UserID: "renter-1", SpaceID: "s9"},
			{ID: "b2", UserID: "renter-1", SpaceID: "s10"},
		},
	}
	svc := testDashboardService(records)

	view, err := svc.ForUser(context.Background(), models.User{ID: "owner-1", Role: models.RoleOwner})
	require.NoError(t, err)

	require.NotNil(t, view.Owner)
	assert.Len(t, view.Owner.Listings, 2)
	// Only the approved listing's bookings count.
	require.Len(t, view.Owner.Bookings, 1)
	assert.Equal(t, "b1", view.Owner.Bookings[0].ID)
}

func TestAdminViewStats(t *testing.T) {
	records := &stubRecords{
		bookings: []models.Booking{{ID: "b1"}, {ID: "b2"}},
		listings: []models.PendingListing{
			{ID: "l1", Status: models.ListingStatusPending},
			{ID: "l2", Status: models.ListingStatusApproved},
		},
	}
	svc := testDashboardService(records)

	view, err := svc.ForUser(context.Background(), models.User{ID: "admin-1", Role: models.RoleAdmin})
	require.NoError(t, err)

	require.NotNil(t, view.Admin)
	assert.Equal(t, int64(2), view.Admin.TotalBookings)
	assert.Equal(t, int64(2), view.Admin.TotalListings)
	assert.Equal(t, 1, view.Admin.PendingApprovals)
}

func TestUnknownRoleIsAnError(t *testing.T) {
	svc := testDashboardService(&stubRecords{})

	_, err := svc.ForUser(context.Background(), models.User{ID: "x", Role: "superuser"})
	assert.Error(t, err)
}
