package repository

import (
    "context"
    "database/sql"

    "github.com/eventflow/registration/internal/model"
)

// AttendeeRepo provides read access to the attendees table. The pricing
// engine never mutates attendees; role, department surcharge and ticket
// status are maintained by upstream flows.
type AttendeeRepo struct {
    db *sql.DB
}

// NewAttendeeRepo returns a new AttendeeRepo bound to the given database.
func NewAttendeeRepo(db *sql.DB) *AttendeeRepo { return &AttendeeRepo{db: db} }

// ListByRegistration returns every attendee under a registration,
// including void tickets, ordered by creation. Callers filter on ticket
// status themselves; the engine needs the full set because surcharges
// and meal charges are keyed by attendee ID.
func (r *AttendeeRepo) ListByRegistration(ctx context.Context, registrationID uint64) ([]model.Attendee, error) {
    const q = `SELECT id, registration_id, event_id, full_name, role, department_code,
                      department_surcharge, ticket_status, created_at
               FROM attendees WHERE registration_id = ? ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q, registrationID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    atts := make([]model.Attendee, 0)
    for rows.Next() {
        var a model.Attendee
        if err := rows.Scan(
            &a.ID, &a.RegistrationID, &a.EventID, &a.FullName, &a.Role, &a.DepartmentCode,
            &a.DepartmentSurcharge, &a.TicketStatus, &a.CreatedAt,
        ); err != nil {
            return nil, err
        }
        atts = append(atts, a)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return atts, nil
}
