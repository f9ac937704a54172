package recordsRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/go-redis/redis/v8"

	"quickcowork/models"
	"quickcowork/utils"
)

const (
	userBookingsIndex  = "bookings:user:"  // set of booking ids per user
	spaceBookingsIndex = "bookings:space:" // set of booking ids per space
	ownerListingsIndex = "listings:owner:" // set of listing ids per owner
	statusListingIndex = "listings:status:"
)

// RedisRecordsRepo implements RecordsRepository on Redis. Records are JSON
// values under fixed key prefixes with set-based secondary indexes.
type RedisRecordsRepo struct {
	client *redis.Client
}

// NewRedisRecordsRepo creates a records repository over the given client.
func NewRedisRecordsRepo(client *redis.Client) *RedisRecordsRepo {
	return &RedisRecordsRepo{client: client}
}

func (r *RedisRecordsRepo) SaveBooking(ctx context.Context, b models.Booking) error {
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, utils.BookingKeyPrefix+b.ID, data, 0)
	pipe.SAdd(ctx, userBookingsIndex+b.UserID, b.ID)
	pipe.SAdd(ctx, spaceBookingsIndex+b.SpaceID, b.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist booking %s: %w", b.ID, err)
	}
	return nil
}

func (r *RedisRecordsRepo) getBookings(ctx context.Context, indexKey string) ([]models.Booking, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read booking index: %w", err)
	}
	bookings := make([]models.Booking, 0, len(ids))
	for _, id := range ids {
		data, err := r.client.Get(ctx, utils.BookingKeyPrefix+id).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read booking %s: %w", id, err)
		}
		var b models.Booking
		if err := json.Unmarshal([]byte(data), &b); err != nil {
			return nil, fmt.Errorf("failed to decode booking %s: %w", id, err)
		}
		bookings = append(bookings, b)
	}
	// Set members come back in arbitrary order; newest first for display.
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

func (r *RedisRecordsRepo) GetBookingsByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return r.getBookings(ctx, userBookingsIndex+userID)
}

func (r *RedisRecordsRepo) GetBookingsBySpace(ctx context.Context, spaceID string) ([]models.Booking, error) {
	return r.getBookings(ctx, spaceBookingsIndex+spaceID)
}

func (r *RedisRecordsRepo) CountBookings(ctx context.Context) (int64, error) {
	var count int64
	iter := r.client.Scan(ctx, 0, utils.BookingKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}

func (r *RedisRecordsRepo) SaveLastBooking(ctx context.Context, userID string, s models.BookingSummary) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal booking summary: %w", err)
	}
	if err := r.client.Set(ctx, utils.LastBookingKeyPrefix+userID, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to persist booking summary: %w", err)
	}
	return nil
}

func (r *RedisRecordsRepo) GetLastBooking(ctx context.Context, userID string) (*models.BookingSummary, error) {
	data, err := r.client.Get(ctx, utils.LastBookingKeyPrefix+userID).Result()
	if err == redis.Nil {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read booking summary: %w", err)
	}
	var s models.BookingSummary
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		return nil, fmt.Errorf("failed to decode booking summary: %w", err)
	}
	return &s, nil
}

func (r *RedisRecordsRepo) SaveListing(ctx context.Context, l models.PendingListing) error {
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, utils.ListingKeyPrefix+l.ID, data, 0)
	pipe.SAdd(ctx, ownerListingsIndex+l.OwnerID, l.ID)
	pipe.SAdd(ctx, statusListingIndex+l.Status, l.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist listing %s: %w", l.ID, err)
	}
	return nil
}

func (r *RedisRecordsRepo) GetListing(ctx context.Context, id string) (*models.PendingListing, error) {
	data, err := r.client.Get(ctx, utils.ListingKeyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read listing %s: %w", id, err)
	}
	var l models.PendingListing
	if err := json.Unmarshal([]byte(data), &l); err != nil {
		return nil, fmt.Errorf("failed to decode listing %s: %w", id, err)
	}
	return &l, nil
}

func (r *RedisRecordsRepo) getListings(ctx context.Context, indexKey string) ([]models.PendingListing, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read listing index: %w", err)
	}
	listings := make([]models.PendingListing, 0, len(ids))
	for _, id := range ids {
		l, err := r.GetListing(ctx, id)
		if err == ErrRecordNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		listings = append(listings, *l)
	}
	sort.Slice(listings, func(i, j int) bool {
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
	return listings, nil
}

func (r *RedisRecordsRepo) GetListingsByOwner(ctx context.Context, ownerID string) ([]models.PendingListing, error) {
	return r.getListings(ctx, ownerListingsIndex+ownerID)
}

func (r *RedisRecordsRepo) GetListingsByStatus(ctx context.Context, status string) ([]models.PendingListing, error) {
	return r.getListings(ctx, statusListingIndex+status)
}

func (r *RedisRecordsRepo) UpdateListingStatus(ctx context.Context, id, status string) error {
	l, err := r.GetListing(ctx, id)
	if err != nil {
		return err
	}
	oldStatus := l.Status
	l.Status = status
	data, err := json.Marshal(l)
	if err != nil {
		return fmt.Errorf("failed to marshal listing: %w", err)
	}
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, utils.ListingKeyPrefix+l.ID, data, 0)
	pipe.SRem(ctx, statusListingIndex+oldStatus, l.ID)
	pipe.SAdd(ctx, statusListingIndex+status, l.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to update listing %s: %w", id, err)
	}
	return nil
}

func (r *RedisRecordsRepo) CountListings(ctx context.Context) (int64, error) {
	var count int64
	iter := r.client.Scan(ctx, 0, utils.ListingKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}
