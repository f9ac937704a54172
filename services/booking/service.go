package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	recordsRepo "quickcowork/database/repository/records"
	"quickcowork/models"
	"quickcowork/services/catalog"
	"quickcowork/utils"
)

// SubmitResult carries the outcome of an asynchronous booking submission.
type SubmitResult struct {
	Summary *models.BookingSummary
	Err     error
}

// BookingService validates drafts, quotes prices and submits bookings.
type BookingService interface {
	Quote(spaceID string, durationHours int) (*models.Quote, error)
	ValidateDraft(draft models.BookingDraft) error
	// Submit runs the booking asynchronously and delivers exactly one
	// result on the returned channel.
	Submit(ctx context.Context, userID string, draft models.BookingDraft) <-chan SubmitResult
	LastBooking(ctx context.Context, userID string) (*models.BookingSummary, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Catalog catalog.CatalogService
	Records recordsRepo.RecordsRepository
	// Latency simulates the checkout round trip before a booking is marked
	// submitted. Zero is fine for tests.
	Latency time.Duration
}

func (s *DefaultBookingService) Quote(spaceID string, durationHours int) (*models.Quote, error) {
	space, err := s.Catalog.GetSpace(spaceID)
	if err != nil {
		return nil, err
	}
	q := ComputeQuote(space.Price, durationHours)
	return &q, nil
}

func (s *DefaultBookingService) ValidateDraft(draft models.BookingDraft) error {
	space, err := s.Catalog.GetSpace(draft.SpaceID)
	if err != nil {
		return err
	}
	return Validate(draft, *space)
}

func (s *DefaultBookingService) Submit(ctx context.Context, userID string, draft models.BookingDraft) <-chan SubmitResult {
	out := make(chan SubmitResult, 1)
	go func() {
		defer close(out)

		space, err := s.Catalog.GetSpace(draft.SpaceID)
		if err != nil {
			out <- SubmitResult{Err: err}
			return
		}
		if err := Validate(draft, *space); err != nil {
			out <- SubmitResult{Err: err}
			return
		}

		// Simulated checkout latency; a cancelled request stops waiting.
		if s.Latency > 0 {
			select {
			case <-time.After(s.Latency):
			case <-ctx.Done():
				out <- SubmitResult{Err: ctx.Err()}
				return
			}
		}

		record := models.Booking{
			ID:            uuid.New().String(),
			SpaceID:       space.ID,
			UserID:        userID,
			StartDate:     draft.StartDate,
			EndDate:       draft.EndDate,
			StartTime:     draft.StartTime,
			DurationHours: draft.DurationHours,
			GuestCount:    draft.GuestCount,
			Quote:         ComputeQuote(space.Price, draft.DurationHours),
			Status:        "Confirmed",
			CreatedAt:     time.Now(),
		}

		if err := s.Records.SaveBooking(ctx, record); err != nil {
			out <- SubmitResult{Err: fmt.Errorf("failed to persist booking: %w", err)}
			return
		}

		summary := models.BookingSummary{Booking: record, Space: *space}
		if err := s.Records.SaveLastBooking(ctx, userID, summary); err != nil {
			// The booking itself is saved; the confirmation view just loses
			// its cached summary.
			utils.GetLogger().Warn("failed to persist last-booking summary",
				zap.String("userID", userID), zap.Error(err))
		}

		out <- SubmitResult{Summary: &summary}
	}()
	return out
}

func (s *DefaultBookingService) LastBooking(ctx context.Context, userID string) (*models.BookingSummary, error) {
	return s.Records.GetLastBooking(ctx, userID)
}
