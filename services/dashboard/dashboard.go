package dashboard

import (
	"context"
	"fmt"

	recordsRepo "quickcowork/database/repository/records"
	"quickcowork/models"
	"quickcowork/services/user"
)

// RenterView is what a renter sees: their bookings.
type RenterView struct {
	Bookings []models.Booking `json:"bookings"`
}

// OwnerView is what an owner sees: their listings and the bookings made
// against them.
type OwnerView struct {
	Listings []models.PendingListing `json:"listings"`
	Bookings []models.Booking        `json:"bookings"`
}

// AdminView carries the platform stats shown on the admin panel.
type AdminView struct {
	TotalUsers       int   `json:"totalUsers"`
	TotalBookings    int64 `json:"totalBookings"`
	TotalListings    int64 `json:"totalListings"`
	PendingApprovals int   `json:"pendingApprovals"`
}

// View is the role-tagged dashboard payload. Exactly one of the role
// fields is set, matching Role.
type View struct {
	Role   models.Role `json:"role"`
	Renter *RenterView `json:"renter,omitempty"`
	Owner  *OwnerView  `json:"owner,omitempty"`
	Admin  *AdminView  `json:"admin,omitempty"`
}

// DashboardService assembles the per-role dashboard views.
type DashboardService interface {
	ForUser(ctx context.Context, u models.User) (*View, error)
}

// DefaultDashboardService is the production implementation.
type DefaultDashboardService struct {
	Records recordsRepo.RecordsRepository
	Users   user.UserService
}

// ForUser dispatches on the account role. The switch is exhaustive over
// models.Role; an unknown role is an error, not a silent default.
func (s *DefaultDashboardService) ForUser(ctx context.Context, u models.User) (*View, error) {
	switch u.Role {
	case models.RoleRenter:
		return s.renterView(ctx, u)
	case models.RoleOwner:
		return s.ownerView(ctx, u)
	case models.RoleAdmin:
		return s.adminView(ctx, u)
	default:
		return nil, fmt.Errorf("unknown role %q", u.Role)
	}
}

func (s *DefaultDashboardService) renterView(ctx context.Context, u models.User) (*View, error) {
	bookings, err := s.Records.GetBookingsByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &View{Role: models.RoleRenter, Renter: &RenterView{Bookings: bookings}}, nil
}

func (s *DefaultDashboardService) ownerView(ctx context.Context, u models.User) (*View, error) {
	listings, err := s.Records.GetListingsByOwner(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	var bookings []models.Booking
	for _, l := range listings {
		if l.Status != models.ListingStatusApproved {
			continue
		}
		bs, err := s.Records.GetBookingsBySpace(ctx, l.Space.ID)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, bs...)
	}
	return &View{Role: models.RoleOwner, Owner: &OwnerView{Listings: listings, Bookings: bookings}}, nil
}

func (s *DefaultDashboardService) adminView(ctx context.Context, u models.User) (*View, error) {
	users, err := s.Users.GetAll()
	if err != nil {
		return nil, err
	}
	totalBookings, err := s.Records.CountBookings(ctx)
	if err != nil {
		return nil, err
	}
	totalListings, err := s.Records.CountListings(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.Records.GetListingsByStatus(ctx, models.ListingStatusPending)
	if err != nil {
		return nil, err
	}
	return &View{Role: models.RoleAdmin, Admin: &AdminView{
		TotalUsers:       len(users),
		TotalBookings:    totalBookings,
		TotalListings:    totalListings,
		PendingApprovals: len(pending),
	}}, nil
}
