package repository

import (
    "context"
    "database/sql"
    "strings"

    "github.com/eventflow/registration/internal/model"
)

// RoomBookingRepo provides read access to room bookings and their two
// join tables: room_booking_rooms (assigned physical rooms) and
// room_booking_guests (attendees sharing the booking). It also resolves
// nightly rates from lodging_options, since the pricing engine only
// ever needs the rate, not the full option row.
type RoomBookingRepo struct {
    db *sql.DB
}

// NewRoomBookingRepo returns a new RoomBookingRepo bound to the given database.
func NewRoomBookingRepo(db *sql.DB) *RoomBookingRepo { return &RoomBookingRepo{db: db} }

// ListByRegistration returns all room bookings under a registration,
// ordered by creation.
func (r *RoomBookingRepo) ListByRegistration(ctx context.Context, registrationID uint64) ([]model.RoomBooking, error) {
    const q = `SELECT id, registration_id, lodging_option_id, checkin_date, checkout_date,
                      num_keys, key_deposit_per_key, created_at
               FROM room_bookings WHERE registration_id = ? ORDER BY id`
    rows, err := r.db.QueryContext(ctx, q, registrationID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    bookings := make([]model.RoomBooking, 0)
    for rows.Next() {
        var b model.RoomBooking
        var loID sql.NullInt64
        if err := rows.Scan(
            &b.ID, &b.RegistrationID, &loID, &b.CheckinDate, &b.CheckoutDate,
            &b.NumKeys, &b.KeyDepositPerKey, &b.CreatedAt,
        ); err != nil {
            return nil, err
        }
        if loID.Valid {
            id := uint64(loID.Int64)
            b.LodgingOptionID = &id
        }
        bookings = append(bookings, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return bookings, nil
}

// NightlyRates resolves the nightly rate for each of the given lodging
// options. Unknown IDs are simply absent from the result map; callers
// treat a missing rate as zero and emit no room-night charge.
func (r *RoomBookingRepo) NightlyRates(ctx context.Context, lodgingOptionIDs []uint64) (map[uint64]float64, error) {
    rates := make(map[uint64]float64, len(lodgingOptionIDs))
    if len(lodgingOptionIDs) == 0 {
        return rates, nil
    }
    q := `SELECT id, nightly_rate FROM lodging_options WHERE id IN (` + placeholders(len(lodgingOptionIDs)) + `)`
    rows, err := r.db.QueryContext(ctx, q, idArgs(lodgingOptionIDs)...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    for rows.Next() {
        var id uint64
        var rate float64
        if err := rows.Scan(&id, &rate); err != nil {
            return nil, err
        }
        rates[id] = rate
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return rates, nil
}

// AssignedRoomCounts returns how many physical rooms are assigned to
// each of the given bookings. Bookings without assignments are absent
// from the map.
func (r *RoomBookingRepo) AssignedRoomCounts(ctx context.Context, bookingIDs []uint64) (map[uint64]int, error) {
    counts := make(map[uint64]int, len(bookingIDs))
    if len(bookingIDs) == 0 {
        return counts, nil
    }
    q := `SELECT room_booking_id, COUNT(*) FROM room_booking_rooms
          WHERE room_booking_id IN (` + placeholders(len(bookingIDs)) + `)
          GROUP BY room_booking_id`
    rows, err := r.db.QueryContext(ctx, q, idArgs(bookingIDs)...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    for rows.Next() {
        var id uint64
        var n int
        if err := rows.Scan(&id, &n); err != nil {
            return nil, err
        }
        counts[id] = n
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return counts, nil
}

// GuestsByBooking returns the attendee IDs sharing each of the given
// bookings. The pricing engine splits a booking's room-night total into
// equal per-guest shares over exactly this list.
func (r *RoomBookingRepo) GuestsByBooking(ctx context.Context, bookingIDs []uint64) (map[uint64][]uint64, error) {
    guests := make(map[uint64][]uint64, len(bookingIDs))
    if len(bookingIDs) == 0 {
        return guests, nil
    }
    q := `SELECT room_booking_id, attendee_id FROM room_booking_guests
          WHERE room_booking_id IN (` + placeholders(len(bookingIDs)) + `)
          ORDER BY room_booking_id, attendee_id`
    rows, err := r.db.QueryContext(ctx, q, idArgs(bookingIDs)...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    for rows.Next() {
        var bookingID, attendeeID uint64
        if err := rows.Scan(&bookingID, &attendeeID); err != nil {
            return nil, err
        }
        guests[bookingID] = append(guests[bookingID], attendeeID)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return guests, nil
}

// placeholders builds a "?, ?, ?" list for IN clauses.
func placeholders(n int) string {
    ps := make([]string, n)
    for i := range ps {
        ps[i] = "?"
    }
    return strings.Join(ps, ",")
}

// idArgs widens a slice of IDs into the interface slice QueryContext expects.
func idArgs(ids []uint64) []interface{} {
    args := make([]interface{}, 0, len(ids))
    for _, id := range ids {
        args = append(args, id)
    }
    return args
}
