package model

import "time"

// Registration represents one attendee group's enrollment in an event.
// A registration is created by a single user and accumulates attendees,
// room bookings and meal passes. Its AmountTotal field is owned by the
// pricing engine: after every rebuild it equals the sum of the amounts
// of all registration items.
//
// Fields:
//  ID          – primary key identifier.
//  EventID     – event this registration belongs to.
//  CreatedBy   – user who created (and owns) the registration.
//  Status      – lifecycle state (pending, confirmed, cancelled).
//  AmountTotal – computed total written by the pricing rebuild.
//  CreatedAt   – creation timestamp; early-bird discount windows are
//                evaluated against this time, not the current time.
//  UpdatedAt   – last update timestamp.
type Registration struct {
    ID          uint64    // registrations.id
    EventID     uint64    // registrations.event_id
    CreatedBy   uint64    // registrations.created_by
    Status      string    // registrations.status
    AmountTotal float64   // registrations.amount_total
    CreatedAt   time.Time // registrations.created_at
    UpdatedAt   time.Time // registrations.updated_at
}
