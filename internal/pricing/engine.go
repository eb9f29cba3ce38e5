// Package pricing implements the registration pricing rebuild: a fixed
// pipeline that wipes a registration's line items, recomputes room,
// key-deposit, surcharge and meal charges, applies the event's discount
// rules in class order, and persists the resulting items plus the
// authoritative total. A rebuild is idempotent; running it twice with
// unchanged inputs yields the same item set and total.
package pricing

import (
    "context"
    "fmt"
    "math"
    "strconv"
    "time"

    "golang.org/x/sync/singleflight"

    "github.com/eventflow/registration/internal/model"
)

// Store is the narrow view of the relational store the engine needs.
// The repository package provides the MySQL implementation; tests use
// an in-memory one. Every method must observe the writes of methods
// called before it within one rebuild (strict read-after-write).
type Store interface {
    Registration(ctx context.Context, id uint64) (*model.Registration, error)
    DeleteItems(ctx context.Context, registrationID uint64) error
    Attendees(ctx context.Context, registrationID uint64) ([]model.Attendee, error)
    Bookings(ctx context.Context, registrationID uint64) ([]model.RoomBooking, error)
    NightlyRates(ctx context.Context, lodgingOptionIDs []uint64) (map[uint64]float64, error)
    AssignedRoomCounts(ctx context.Context, bookingIDs []uint64) (map[uint64]int, error)
    BookingGuests(ctx context.Context, bookingIDs []uint64) (map[uint64][]uint64, error)
    PurchasedMeals(ctx context.Context, attendeeIDs []uint64) ([]model.PurchasedMeal, error)
    Discounts(ctx context.Context, eventID uint64) ([]model.Discount, error)
    InsertItems(ctx context.Context, items []model.RegistrationItem) error
    SumItemAmounts(ctx context.Context, registrationID uint64) (float64, error)
    UpdateRegistrationTotal(ctx context.Context, registrationID uint64, total float64) error
}

// Engine runs pricing rebuilds. Concurrent rebuild requests for the
// same registration are coalesced through a singleflight group keyed by
// registration ID; without the guard, two interleaved wipe/insert
// sequences can leave a duplicated or partially-missing item set.
type Engine struct {
    store Store
    group singleflight.Group
    now   func() time.Time // injectable clock for tests
}

// NewEngine constructs an Engine. The store must be non-nil.
func NewEngine(store Store) *Engine {
    if store == nil {
        panic("nil store passed to NewEngine")
    }
    return &Engine{store: store, now: time.Now}
}

// Rebuild recomputes and replaces all line items for a registration and
// returns the new total. The caller must have verified that the
// requesting user owns the registration; the engine assumes authorized
// input and treats a missing registration as a precondition failure.
// Duplicate concurrent calls for one registration share a single run
// and its result.
func (e *Engine) Rebuild(ctx context.Context, registrationID uint64) (float64, error) {
    v, err, _ := e.group.Do(strconv.FormatUint(registrationID, 10), func() (interface{}, error) {
        return e.rebuild(ctx, registrationID)
    })
    if err != nil {
        return 0, err
    }
    return v.(float64), nil
}

// bookingCost records one booking's room-night total and its equal
// per-guest split, kept for discount targeting after base charges are
// emitted.
type bookingCost struct {
    total    float64
    perGuest map[uint64]float64
}

// chargeAccumulator is the running state threaded through the pipeline
// stages: later discount classes read the room shares and meal
// subtotals that the base-charge stage collected.
type chargeAccumulator struct {
    bookingOrder   []uint64
    bookingCosts   map[uint64]bookingCost
    mealByAttendee map[uint64]float64
    mealTotal      float64
}

// rebuild is the pipeline proper. Stage order is fixed: wipe, base
// charges, discount evaluation, discount persist, totalize. A failure
// at any stage aborts the remaining stages and leaves whatever was
// already committed; a full rerun is self-correcting because of the
// wipe-then-reinsert design.
func (e *Engine) rebuild(ctx context.Context, registrationID uint64) (float64, error) {
    reg, err := e.store.Registration(ctx, registrationID)
    if err != nil {
        return 0, err
    }

    // Stage 1: wipe.
    if err := e.store.DeleteItems(ctx, registrationID); err != nil {
        return 0, fmt.Errorf("wipe items: %w", err)
    }

    // Stage 2: base charges.
    attendees, err := e.store.Attendees(ctx, registrationID)
    if err != nil {
        return 0, fmt.Errorf("load attendees: %w", err)
    }
    acc := &chargeAccumulator{
        bookingCosts:   make(map[uint64]bookingCost),
        mealByAttendee: make(map[uint64]float64),
    }
    baseItems, err := e.baseCharges(ctx, reg, attendees, acc)
    if err != nil {
        return 0, err
    }
    if err := e.store.InsertItems(ctx, baseItems); err != nil {
        return 0, fmt.Errorf("insert base items: %w", err)
    }

    // Stage 3: discount evaluation.
    discounts, err := e.store.Discounts(ctx, reg.EventID)
    if err != nil {
        return 0, fmt.Errorf("load discounts: %w", err)
    }
    discountItems, err := e.evaluateDiscounts(ctx, reg, parseRules(discounts), attendees, acc)
    if err != nil {
        return 0, err
    }

    // Stage 4: persist discounts in one batch. Base charges stay
    // committed if this fails; there is no compensating rollback.
    if err := e.store.InsertItems(ctx, discountItems); err != nil {
        return 0, fmt.Errorf("insert discount items: %w", err)
    }

    // Stage 5: totalize from what is actually persisted.
    total, err := e.store.SumItemAmounts(ctx, registrationID)
    if err != nil {
        return 0, fmt.Errorf("sum items: %w", err)
    }
    if err := e.store.UpdateRegistrationTotal(ctx, registrationID, total); err != nil {
        return 0, fmt.Errorf("update total: %w", err)
    }
    return total, nil
}

// baseCharges computes the positive items: room nights, key deposits,
// department surcharges and meals. It fills the accumulator with the
// per-booking costs and meal subtotals the discount stage targets.
func (e *Engine) baseCharges(ctx context.Context, reg *model.Registration, attendees []model.Attendee, acc *chargeAccumulator) ([]model.RegistrationItem, error) {
    items := make([]model.RegistrationItem, 0)

    bookings, err := e.store.Bookings(ctx, reg.ID)
    if err != nil {
        return nil, fmt.Errorf("load bookings: %w", err)
    }
    bookingIDs := make([]uint64, 0, len(bookings))
    lodgingIDs := make([]uint64, 0, len(bookings))
    seenLodging := make(map[uint64]struct{})
    for _, b := range bookings {
        bookingIDs = append(bookingIDs, b.ID)
        if b.LodgingOptionID != nil {
            if _, ok := seenLodging[*b.LodgingOptionID]; !ok {
                seenLodging[*b.LodgingOptionID] = struct{}{}
                lodgingIDs = append(lodgingIDs, *b.LodgingOptionID)
            }
        }
    }
    rates, err := e.store.NightlyRates(ctx, lodgingIDs)
    if err != nil {
        return nil, fmt.Errorf("load nightly rates: %w", err)
    }
    roomCounts, err := e.store.AssignedRoomCounts(ctx, bookingIDs)
    if err != nil {
        return nil, fmt.Errorf("load room counts: %w", err)
    }
    guests, err := e.store.BookingGuests(ctx, bookingIDs)
    if err != nil {
        return nil, fmt.Errorf("load booking guests: %w", err)
    }

    for _, b := range bookings {
        nights := nightsBetween(b.CheckinDate, b.CheckoutDate)
        numRooms := roomCounts[b.ID]
        var rate float64
        if b.LodgingOptionID != nil {
            rate = rates[*b.LodgingOptionID]
        }
        if nights > 0 && numRooms > 0 && rate > 0 {
            total := float64(nights) * float64(numRooms) * rate
            items = append(items, model.RegistrationItem{
                RegistrationID: reg.ID,
                Kind:           model.ItemKindRoomNight,
                RefTable:       "room_bookings",
                RefID:          &b.ID,
                Qty:            float64(nights * numRooms),
                UnitPrice:      rate,
                Amount:         total,
                Description: fmt.Sprintf("Room nights (%d room%s x %d night%s)",
                    numRooms, plural(numRooms), nights, plural(nights)),
            })
            // Equal split among the booking's current guests; a
            // guestless booking contributes no per-guest shares.
            bc := bookingCost{total: total, perGuest: make(map[uint64]float64)}
            if g := guests[b.ID]; len(g) > 0 {
                share := total / float64(len(g))
                for _, attendeeID := range g {
                    bc.perGuest[attendeeID] = share
                }
            }
            acc.bookingOrder = append(acc.bookingOrder, b.ID)
            acc.bookingCosts[b.ID] = bc
        }

        // Key deposits are charged independently of room nights.
        keys := b.NumKeys
        if keys < 0 {
            keys = 0
        }
        if keys > 2 {
            keys = 2
        }
        if keys > 0 && b.KeyDepositPerKey > 0 {
            items = append(items, model.RegistrationItem{
                RegistrationID: reg.ID,
                Kind:           model.ItemKindKeyDeposit,
                RefTable:       "room_bookings",
                RefID:          &b.ID,
                Qty:            float64(keys),
                UnitPrice:      b.KeyDepositPerKey,
                Amount:         float64(keys) * b.KeyDepositPerKey,
                Description:    "Room key deposit",
            })
        }
    }

    // Department surcharges: one item per attendee with a positive
    // flat amount, regardless of ticket status.
    for _, a := range attendees {
        if a.DepartmentSurcharge > 0 {
            items = append(items, model.RegistrationItem{
                RegistrationID: reg.ID,
                Kind:           model.ItemKindDepartmentSurcharge,
                RefTable:       "attendees",
                RefID:          &a.ID,
                Qty:            1,
                UnitPrice:      a.DepartmentSurcharge,
                Amount:         a.DepartmentSurcharge,
                Description:    fmt.Sprintf("Department surcharge - %s", a.FullName),
            })
        }
    }

    // Meals: one item per purchased pass with a positive session price.
    attendeeIDs := make([]uint64, 0, len(attendees))
    for _, a := range attendees {
        attendeeIDs = append(attendeeIDs, a.ID)
    }
    meals, err := e.store.PurchasedMeals(ctx, attendeeIDs)
    if err != nil {
        return nil, fmt.Errorf("load meal passes: %w", err)
    }
    for _, m := range meals {
        if m.Price <= 0 {
            continue
        }
        items = append(items, model.RegistrationItem{
            RegistrationID: reg.ID,
            Kind:           model.ItemKindMeal,
            RefTable:       "attendee_meal_passes",
            RefID:          &m.MealSessionID,
            Qty:            1,
            UnitPrice:      m.Price,
            Amount:         m.Price,
            Description:    fmt.Sprintf("Meal - %s @ %s %s", m.AttendeeName, m.MealDate, m.MealType),
        })
        acc.mealTotal += m.Price
        acc.mealByAttendee[m.AttendeeID] += m.Price
    }

    return items, nil
}

// evaluateDiscounts runs the four discount classes in fixed order and
// returns the negative items to persist. Classes A-C gate on the
// current time; class D gates on the registration's creation time and
// is the single point where the pipeline re-reads persisted state.
func (e *Engine) evaluateDiscounts(ctx context.Context, reg *model.Registration, rules []rule, attendees []model.Attendee, acc *chargeAccumulator) ([]model.RegistrationItem, error) {
    now := e.now().UTC()
    items := make([]model.RegistrationItem, 0)

    active := make([]model.Attendee, 0, len(attendees))
    for _, a := range attendees {
        if a.TicketStatus == model.TicketStatusActive {
            active = append(active, a)
        }
    }
    hasRole := func(role string) bool {
        for _, a := range active {
            if a.Role == role {
                return true
            }
        }
        return false
    }
    targetsOf := func(r rule) []model.Attendee {
        if r.requiresRole == "" {
            return active
        }
        out := make([]model.Attendee, 0, len(active))
        for _, a := range active {
            if a.Role == r.requiresRole {
                out = append(out, a)
            }
        }
        return out
    }
    emit := func(r rule, amount float64, fallback string) {
        amount = r.capped(amount)
        if amount <= 0 {
            return // sub-zero discounts are silently dropped, not errors
        }
        unit := -round2(amount)
        label := r.label
        if label == "" {
            label = fallback
        }
        items = append(items, model.RegistrationItem{
            RegistrationID: reg.ID,
            Kind:           model.ItemKindDiscount,
            RefTable:       "event_discounts",
            Qty:            1,
            UnitPrice:      unit,
            Amount:         unit,
            Description:    label,
        })
    }

    // Class A: room-scope discounts against per-guest room shares.
    for _, r := range rules {
        if r.scope != ScopeRoom || !r.activeAt(now) {
            continue
        }
        if r.requiresRole != "" && !hasRole(r.requiresRole) {
            continue
        }
        targets := targetsOf(r)
        var base float64
        for _, bookingID := range acc.bookingOrder {
            bc := acc.bookingCosts[bookingID]
            for _, a := range targets {
                base += bc.perGuest[a.ID]
            }
        }
        if base <= 0 {
            continue
        }
        emit(r, r.amountAgainst(base), "Room discount")
    }

    // Class B: meal-scope discounts without a group threshold, against
    // the target attendees' meal subtotals.
    for _, r := range rules {
        if r.scope != ScopeMeal || r.minAttendees > 0 || !r.activeAt(now) {
            continue
        }
        if r.requiresRole != "" && !hasRole(r.requiresRole) {
            continue
        }
        var base float64
        for _, a := range targetsOf(r) {
            base += acc.mealByAttendee[a.ID]
        }
        if base <= 0 {
            continue
        }
        emit(r, r.amountAgainst(base), "Meal discount")
    }

    // Class C: group meal discounts, once against the event-wide meal
    // total when the active-attendee count meets the threshold. Role is
    // not checked for this class.
    for _, r := range rules {
        if r.scope != ScopeMeal || r.minAttendees == 0 || !r.activeAt(now) {
            continue
        }
        if len(active) < r.minAttendees || acc.mealTotal <= 0 {
            continue
        }
        emit(r, r.amountAgainst(acc.mealTotal), "Group meal discount")
    }

    // Class D: blanket (early-bird) discounts. The window is checked
    // against the registration's creation time, not the current time.
    // The base is the persisted subtotal plus every discount computed
    // so far in this run, so successive scope=all discounts compound.
    persistedRead := false
    var persisted float64
    for _, r := range rules {
        if r.scope != ScopeAll {
            continue
        }
        if r.startsAt != nil && reg.CreatedAt.Before(*r.startsAt) {
            continue
        }
        if r.endsAt != nil && reg.CreatedAt.After(*r.endsAt) {
            continue
        }
        if !persistedRead {
            var err error
            persisted, err = e.store.SumItemAmounts(ctx, reg.ID)
            if err != nil {
                return nil, fmt.Errorf("sum persisted items: %w", err)
            }
            persistedRead = true
        }
        base := persisted
        for _, it := range items {
            base += it.Amount
        }
        if base <= 0 {
            continue
        }
        emit(r, r.amountAgainst(base), "Early-bird discount")
    }

    return items, nil
}

// nightsBetween returns the whole-day difference between checkin and
// checkout, partial days rounding up, clamped to >= 0. Equal dates are
// zero nights.
func nightsBetween(checkin, checkout time.Time) int {
    d := checkout.Sub(checkin)
    if d <= 0 {
        return 0
    }
    return int(math.Ceil(d.Hours() / 24))
}

// round2 rounds to 2 decimal places. Discount amounts are rounded here
// exactly once, when they become line items.
func round2(v float64) float64 {
    return math.Round(v*100) / 100
}

func plural(n int) string {
    if n > 1 {
        return "s"
    }
    return ""
}
