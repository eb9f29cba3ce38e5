package model

import "time"

// RoomBooking is a date-ranged lodging reservation under a registration.
// A booking optionally references a priced lodging option, carries up to
// two room keys with a per-key deposit, and has zero or more assigned
// rooms and zero or more guest attendees (stored in the
// room_booking_rooms and room_booking_guests join tables).
//
// Fields:
//  ID               – primary key identifier.
//  RegistrationID   – registration this booking belongs to.
//  LodgingOptionID  – priced lodging option, nil when none selected.
//  CheckinDate      – stay start date.
//  CheckoutDate     – stay end date; nights are computed as the whole-day
//                     difference, partial days rounding up, clamped to >= 0.
//  NumKeys          – requested key count; charged after clamping to 0–2.
//  KeyDepositPerKey – deposit amount per key in dollars.
//  CreatedAt        – creation timestamp.
type RoomBooking struct {
    ID               uint64    // room_bookings.id
    RegistrationID   uint64    // room_bookings.registration_id
    LodgingOptionID  *uint64   // room_bookings.lodging_option_id (nullable)
    CheckinDate      time.Time // room_bookings.checkin_date
    CheckoutDate     time.Time // room_bookings.checkout_date
    NumKeys          int       // room_bookings.num_keys
    KeyDepositPerKey float64   // room_bookings.key_deposit_per_key
    CreatedAt        time.Time // room_bookings.created_at
}

// LodgingOption is a priced room type offered for an event.
//
// Fields:
//  ID          – primary key identifier.
//  EventID     – event offering this option.
//  Name        – display name (e.g. "Double room").
//  NightlyRate – price per room per night in dollars.
type LodgingOption struct {
    ID          uint64  // lodging_options.id
    EventID     uint64  // lodging_options.event_id
    Name        string  // lodging_options.name
    NightlyRate float64 // lodging_options.nightly_rate
}
