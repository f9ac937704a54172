package listing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	recordsRepo "quickcowork/database/repository/records"
	"quickcowork/models"
)

type memRecords struct {
	listings map[string]models.PendingListing
}

func newMemRecords() *memRecords {
	return &memRecords{listings: make(map[string]models.PendingListing)}
}

func (m *memRecords) SaveBooking(context.Context, models.Booking) error { return nil }
func (m *memRecords) GetBookingsByUser(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}
func (m *memRecords) GetBookingsBySpace(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}
func (m *memRecords) CountBookings(context.Context) (int64, error) { return 0, nil }
func (m *memRecords) SaveLastBooking(context.Context, string, models.BookingSummary) error {
	return nil
}
func (m *memRecords) GetLastBooking(context.Context, string) (*models.BookingSummary, error) {
	return nil, recordsRepo.ErrRecordNotFound
}

func (m *memRecords) SaveListing(_ context.Context, l models.PendingListing) error {
	m.listings[l.ID] = l
	return nil
}

func (m *memRecords) GetListing(_ context.Context, id string) (*models.PendingListing, error) {
	l, ok := m.listings[id]
	if !ok {
		return nil, recordsRepo.ErrRecordNotFound
	}
	return &l, nil
}

func (m *memRecords) GetListingsByOwner(_ context.Context, ownerID string) ([]models.PendingListing, error) {
	var out []models.PendingListing
	for _, l := range m.listings {
		if l.OwnerID == ownerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memRecords) GetListingsByStatus(_ context.Context, status string) ([]models.PendingListing, error) {
	var out []models.PendingListing
	for _, l := range m.listings {
		if l.Status == status {
			out = append(out, l)
		}
	}
	return out, nil
}

func (m *memRecords) UpdateListingStatus(_ context.Context, id, status string) error {
	l, ok := m.listings[id]
	if !ok {
		return recordsRepo.ErrRecordNotFound
	}
	l.Status = status
	m.listings[id] = l
	return nil
}

func (m *memRecords) CountListings(context.Context) (int64, error) {
	return int64(len(m.listings)), nil
}

func validSpace() models.Space {
	return models.Space{
		Title:    "Rooftop Studio",
		Type:     models.SpaceTypeStudio,
		Price:    275,
		Capacity: 5,
		Location: "Hyderabad",
		Images:   []string{"rooftop.jpg"},
	}
}

func TestCreateQueuesListingForReview(t *testing.T) {
	records := newMemRecords()
	svc := &DefaultListingService{Records: records}

	created, err := svc.Create(context.Background(), "owner-1", validSpace())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, models.ListingStatusPending, created.Status)

	pending, err := svc.Pending(context.Background())
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestCreateRejectsInvalidSpaces(t *testing.T) {
	svc := &DefaultListingService{Records: newMemRecords()}
	ctx := context.Background()

	bad := validSpace()
	bad.Type = "warehouse"
	_, err := svc.Create(ctx, "owner-1", bad)
	assert.Error(t, err)

	bad = validSpace()
	bad.Price = 0
	_, err = svc.Create(ctx, "owner-1", bad)
	assert.Error(t, err)

	bad = validSpace()
	bad.Capacity = 0
	_, err = svc.Create(ctx, "owner-1", bad)
	assert.Error(t, err)

	bad = validSpace()
	bad.Images = nil
	_, err = svc.Create(ctx, "owner-1", bad)
	assert.Error(t, err)
}

func TestApproveAndReject(t *testing.T) {
	records := newMemRecords()
	svc := &DefaultListingService{Records: records}
	ctx := context.Background()

	first, err := svc.Create(ctx, "owner-1", validSpace())
	require.NoError(t, err)
	second, err := svc.Create(ctx, "owner-1", validSpace())
	require.NoError(t, err)

	require.NoError(t, svc.Approve(ctx, first.ID))
	require.NoError(t, svc.Reject(ctx, second.ID))

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	approved, _ := records.GetListing(ctx, first.ID)
	assert.Equal(t, models.ListingStatusApproved, approved.Status)

	rejected, _ := records.GetListing(ctx, second.ID)
	assert.Equal(t, models.ListingStatusRejected, rejected.Status)

	assert.ErrorIs(t, svc.Approve(ctx, "ghost"), recordsRepo.ErrRecordNotFound)
}
