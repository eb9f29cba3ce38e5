package repository

import (
    "context"

    "github.com/eventflow/registration/internal/model"
)

// PricingStore adapts the per-table repositories to the narrow store
// interface the pricing engine consumes. It carries no state of its
// own; every call delegates to exactly one repository method.
type PricingStore struct {
    regs      *RegistrationRepo
    atts      *AttendeeRepo
    bookings  *RoomBookingRepo
    meals     *MealRepo
    discounts *DiscountRepo
    items     *ItemRepo
}

// NewPricingStore constructs a PricingStore and panics if any
// repository is nil, mirroring the handler constructors.
func NewPricingStore(regs *RegistrationRepo, atts *AttendeeRepo, bookings *RoomBookingRepo, meals *MealRepo, discounts *DiscountRepo, items *ItemRepo) *PricingStore {
    if regs == nil || atts == nil || bookings == nil || meals == nil || discounts == nil || items == nil {
        panic("nil repository passed to NewPricingStore")
    }
    return &PricingStore{
        regs:      regs,
        atts:      atts,
        bookings:  bookings,
        meals:     meals,
        discounts: discounts,
        items:     items,
    }
}

func (s *PricingStore) Registration(ctx context.Context, id uint64) (*model.Registration, error) {
    return s.regs.GetByID(ctx, id)
}

func (s *PricingStore) DeleteItems(ctx context.Context, registrationID uint64) error {
    return s.items.DeleteByRegistration(ctx, registrationID)
}

func (s *PricingStore) Attendees(ctx context.Context, registrationID uint64) ([]model.Attendee, error) {
    return s.atts.ListByRegistration(ctx, registrationID)
}

func (s *PricingStore) Bookings(ctx context.Context, registrationID uint64) ([]model.RoomBooking, error) {
    return s.bookings.ListByRegistration(ctx, registrationID)
}

func (s *PricingStore) NightlyRates(ctx context.Context, lodgingOptionIDs []uint64) (map[uint64]float64, error) {
    return s.bookings.NightlyRates(ctx, lodgingOptionIDs)
}

func (s *PricingStore) AssignedRoomCounts(ctx context.Context, bookingIDs []uint64) (map[uint64]int, error) {
    return s.bookings.AssignedRoomCounts(ctx, bookingIDs)
}

func (s *PricingStore) BookingGuests(ctx context.Context, bookingIDs []uint64) (map[uint64][]uint64, error) {
    return s.bookings.GuestsByBooking(ctx, bookingIDs)
}

func (s *PricingStore) PurchasedMeals(ctx context.Context, attendeeIDs []uint64) ([]model.PurchasedMeal, error) {
    return s.meals.PurchasedByAttendees(ctx, attendeeIDs)
}

func (s *PricingStore) Discounts(ctx context.Context, eventID uint64) ([]model.Discount, error) {
    return s.discounts.ListByEvent(ctx, eventID)
}

func (s *PricingStore) InsertItems(ctx context.Context, items []model.RegistrationItem) error {
    return s.items.InsertBulk(ctx, items)
}

func (s *PricingStore) SumItemAmounts(ctx context.Context, registrationID uint64) (float64, error) {
    return s.items.SumAmounts(ctx, registrationID)
}

func (s *PricingStore) UpdateRegistrationTotal(ctx context.Context, registrationID uint64, total float64) error {
    return s.regs.UpdateAmountTotal(ctx, registrationID, total)
}
