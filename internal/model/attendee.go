package model

import "time"

// Attendee roles recognised by the pricing engine. Role-gated discounts
// name one of these in their requires_role column.
const (
    RoleAttendee  = "attendee"
    RoleVolunteer = "volunteer"
    RolePresenter = "presenter"
)

// Ticket statuses. Only active attendees participate in discount
// targeting; void tickets are read but never counted.
const (
    TicketStatusActive = "active"
    TicketStatusVoid   = "void"
)

// Attendee is one person under a registration. Role, department and
// ticket status are set by upstream flows; the pricing engine only
// reads them. The flat department surcharge is charged as its own
// line item when positive.
//
// Fields:
//  ID                  – primary key identifier.
//  RegistrationID      – registration this attendee belongs to.
//  EventID             – event reference (denormalised for check-in lookups).
//  FullName            – display name used in item descriptions.
//  Role                – attendee, volunteer or presenter.
//  DepartmentCode      – short department identifier.
//  DepartmentSurcharge – flat surcharge amount in dollars (0 = none).
//  TicketStatus        – active or void.
//  CreatedAt           – creation timestamp.
type Attendee struct {
    ID                  uint64    // attendees.id
    RegistrationID      uint64    // attendees.registration_id
    EventID             uint64    // attendees.event_id
    FullName            string    // attendees.full_name
    Role                string    // attendees.role
    DepartmentCode      string    // attendees.department_code
    DepartmentSurcharge float64   // attendees.department_surcharge
    TicketStatus        string    // attendees.ticket_status
    CreatedAt           time.Time // attendees.created_at
}
