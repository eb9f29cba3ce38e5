package pricing

import (
    "context"
    "errors"
    "sync"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/eventflow/registration/internal/model"
)

var testNow = time.Date(2025, 7, 10, 12, 0, 0, 0, time.UTC)

// memStore is an in-memory Store covering the full pipeline, including
// the read-after-write visibility the engine relies on between stages.
type memStore struct {
    mu sync.Mutex

    reg        model.Registration
    attendees  []model.Attendee
    bookings   []model.RoomBooking
    rates      map[uint64]float64
    roomCounts map[uint64]int
    guests     map[uint64][]uint64
    meals      []model.PurchasedMeal
    discounts  []model.Discount

    items        []model.RegistrationItem
    total        float64
    totalWritten bool

    deleteCalls int
    failDelete  bool
    deleteGate  chan struct{} // when set, DeleteItems blocks until closed
}

func newMemStore() *memStore {
    return &memStore{
        reg: model.Registration{
            ID:        1,
            EventID:   1,
            CreatedBy: 7,
            Status:    "pending",
            CreatedAt: time.Date(2025, 5, 20, 9, 0, 0, 0, time.UTC),
        },
        rates:      map[uint64]float64{},
        roomCounts: map[uint64]int{},
        guests:     map[uint64][]uint64{},
    }
}

func (s *memStore) Registration(_ context.Context, id uint64) (*model.Registration, error) {
    if id != s.reg.ID {
        return nil, errors.New("registration not found")
    }
    reg := s.reg
    return &reg, nil
}

func (s *memStore) DeleteItems(_ context.Context, registrationID uint64) error {
    s.mu.Lock()
    s.deleteCalls++
    gate := s.deleteGate
    s.mu.Unlock()
    if gate != nil {
        <-gate
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    if s.failDelete {
        return errors.New("delete failed")
    }
    kept := s.items[:0]
    for _, it := range s.items {
        if it.RegistrationID != registrationID {
            kept = append(kept, it)
        }
    }
    s.items = kept
    return nil
}

func (s *memStore) Attendees(_ context.Context, _ uint64) ([]model.Attendee, error) {
    return s.attendees, nil
}

func (s *memStore) Bookings(_ context.Context, _ uint64) ([]model.RoomBooking, error) {
    return s.bookings, nil
}

func (s *memStore) NightlyRates(_ context.Context, ids []uint64) (map[uint64]float64, error) {
    out := map[uint64]float64{}
    for _, id := range ids {
        if r, ok := s.rates[id]; ok {
            out[id] = r
        }
    }
    return out, nil
}

func (s *memStore) AssignedRoomCounts(_ context.Context, ids []uint64) (map[uint64]int, error) {
    out := map[uint64]int{}
    for _, id := range ids {
        if n, ok := s.roomCounts[id]; ok {
            out[id] = n
        }
    }
    return out, nil
}

func (s *memStore) BookingGuests(_ context.Context, ids []uint64) (map[uint64][]uint64, error) {
    out := map[uint64][]uint64{}
    for _, id := range ids {
        if g, ok := s.guests[id]; ok {
            out[id] = g
        }
    }
    return out, nil
}

func (s *memStore) PurchasedMeals(_ context.Context, _ []uint64) ([]model.PurchasedMeal, error) {
    return s.meals, nil
}

func (s *memStore) Discounts(_ context.Context, _ uint64) ([]model.Discount, error) {
    return s.discounts, nil
}

func (s *memStore) InsertItems(_ context.Context, items []model.RegistrationItem) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.items = append(s.items, items...)
    return nil
}

func (s *memStore) SumItemAmounts(_ context.Context, registrationID uint64) (float64, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    var sum float64
    for _, it := range s.items {
        if it.RegistrationID == registrationID {
            sum += it.Amount
        }
    }
    return sum, nil
}

func (s *memStore) UpdateRegistrationTotal(_ context.Context, _ uint64, total float64) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.total = total
    s.totalWritten = true
    return nil
}

func newTestEngine(s *memStore) *Engine {
    e := NewEngine(s)
    e.now = func() time.Time { return testNow }
    return e
}

func date(y int, m time.Month, d int) time.Time {
    return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func itemsOfKind(items []model.RegistrationItem, kind string) []model.RegistrationItem {
    out := []model.RegistrationItem{}
    for _, it := range items {
        if it.Kind == kind {
            out = append(out, it)
        }
    }
    return out
}

func TestNightsBetween(t *testing.T) {
    assert.Equal(t, 3, nightsBetween(date(2025, 7, 1), date(2025, 7, 4)))
    assert.Equal(t, 0, nightsBetween(date(2025, 7, 1), date(2025, 7, 1)))
    assert.Equal(t, 0, nightsBetween(date(2025, 7, 4), date(2025, 7, 1)))
    // Partial days round up.
    in := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
    out := time.Date(2025, 7, 2, 10, 0, 0, 0, time.UTC)
    assert.Equal(t, 1, nightsBetween(in, out))
}

func TestRebuildRoomNights(t *testing.T) {
    s := newMemStore()
    lodging := uint64(5)
    s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Dana Reyes", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
    s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, LodgingOptionID: &lodging, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 4)}}
    s.rates[lodging] = 100
    s.roomCounts[10] = 2
    s.guests[10] = []uint64{1}

    total, err := newTestEngine(s).Rebuild(context.Background(), 1)
    require.NoError(t, err)

    require.Len(t, s.items, 1)
    it := s.items[0]
    assert.Equal(t, model.ItemKindRoomNight, it.Kind)
    assert.Equal(t, float64(6), it.Qty) // 2 rooms x 3 nights
    assert.Equal(t, float64(100), it.UnitPrice)
    assert.Equal(t, float64(600), it.Amount)
    assert.Equal(t, "Room nights (2 rooms x 3 nights)", it.Description)
    assert.Equal(t, float64(600), total)
    assert.Equal(t, total, s.total)
}

func TestRebuildSkipsChargelessBookings(t *testing.T) {
    lodging := uint64(5)

    t.Run("zero nights", func(t *testing.T) {
        s := newMemStore()
        s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, LodgingOptionID: &lodging, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 1)}}
        s.rates[lodging] = 100
        s.roomCounts[10] = 1

        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        assert.Empty(t, s.items)
        assert.Equal(t, float64(0), total)
    })

    t.Run("no assigned rooms", func(t *testing.T) {
        s := newMemStore()
        s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, LodgingOptionID: &lodging, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 4)}}
        s.rates[lodging] = 100

        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        assert.Empty(t, s.items)
        assert.Equal(t, float64(0), total)
    })

    t.Run("no lodging option", func(t *testing.T) {
        s := newMemStore()
        s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 4)}}
        s.roomCounts[10] = 1

        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        assert.Empty(t, s.items)
        assert.Equal(t, float64(0), total)
    })
}

func TestKeyDepositClamped(t *testing.T) {
    s := newMemStore()
    s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 2), NumKeys: 5, KeyDepositPerKey: 10}}

    total, err := newTestEngine(s).Rebuild(context.Background(), 1)
    require.NoError(t, err)

    require.Len(t, s.items, 1)
    it := s.items[0]
    assert.Equal(t, model.ItemKindKeyDeposit, it.Kind)
    assert.Equal(t, float64(2), it.Qty) // requested 5 keys, charged for 2
    assert.Equal(t, float64(20), it.Amount)
    assert.Equal(t, float64(20), total)
}

func TestCompMealDiscountZeroesMeals(t *testing.T) {
    s := newMemStore()
    s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Priya Shah", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
    s.meals = []model.PurchasedMeal{
        {AttendeeID: 1, MealSessionID: 20, AttendeeName: "Priya Shah", MealDate: "2025-07-11", MealType: "lunch", Price: 25.50},
        {AttendeeID: 1, MealSessionID: 21, AttendeeName: "Priya Shah", MealDate: "2025-07-11", MealType: "dinner", Price: 10.25},
    }
    s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "Comp meals", Scope: "meal", Kind: "comp"}}

    total, err := newTestEngine(s).Rebuild(context.Background(), 1)
    require.NoError(t, err)

    disc := itemsOfKind(s.items, model.ItemKindDiscount)
    require.Len(t, disc, 1)
    assert.Equal(t, -35.75, disc[0].Amount)
    assert.Equal(t, float64(0), total)
}

func TestPercentDiscountCappedAtMaxAmount(t *testing.T) {
    s := newMemStore()
    maxAmount := 100.0
    s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Omar Haddad", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
    s.meals = []model.PurchasedMeal{{AttendeeID: 1, MealSessionID: 20, AttendeeName: "Omar Haddad", MealDate: "2025-07-11", MealType: "lunch", Price: 1500}}
    s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "10% off meals", Scope: "meal", Kind: "percent", Value: 10, MaxAmount: &maxAmount}}

    total, err := newTestEngine(s).Rebuild(context.Background(), 1)
    require.NoError(t, err)

    disc := itemsOfKind(s.items, model.ItemKindDiscount)
    require.Len(t, disc, 1)
    assert.Equal(t, -100.0, disc[0].Amount) // 10% of 1500 is 150, capped at 100
    assert.Equal(t, 1400.0, total)
}

func TestEarlyBirdUsesRegistrationCreationTime(t *testing.T) {
    baseStore := func() *memStore {
        s := newMemStore()
        s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Li Wen", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
        s.meals = []model.PurchasedMeal{{AttendeeID: 1, MealSessionID: 20, AttendeeName: "Li Wen", MealDate: "2025-07-11", MealType: "lunch", Price: 100}}
        return s
    }

    t.Run("registration created before window", func(t *testing.T) {
        s := baseStore()
        // Registration was created 2025-05-20; window opens later even
        // though "now" (2025-07-10) would be inside it.
        starts := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
        s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "Early bird", Scope: "all", Kind: "percent", Value: 10, StartsAt: &starts}}

        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        assert.Empty(t, itemsOfKind(s.items, model.ItemKindDiscount))
        assert.Equal(t, 100.0, total)
    })

    t.Run("registration created inside window", func(t *testing.T) {
        s := baseStore()
        // Window closed before "now" but the registration was created
        // inside it, so the discount still applies.
        starts := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
        ends := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
        s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "Early bird", Scope: "all", Kind: "percent", Value: 10, StartsAt: &starts, EndsAt: &ends}}

        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        disc := itemsOfKind(s.items, model.ItemKindDiscount)
        require.Len(t, disc, 1)
        assert.Equal(t, -10.0, disc[0].Amount)
        assert.Equal(t, 90.0, total)
    })
}

func TestGroupMealDiscountThreshold(t *testing.T) {
    minAttendees := 10
    role := model.RolePresenter
    buildStore := func(activeCount int) *memStore {
        s := newMemStore()
        for i := 1; i <= activeCount; i++ {
            s.attendees = append(s.attendees, model.Attendee{ID: uint64(i), RegistrationID: 1, FullName: "Guest", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive})
            s.meals = append(s.meals, model.PurchasedMeal{AttendeeID: uint64(i), MealSessionID: 20, AttendeeName: "Guest", MealDate: "2025-07-11", MealType: "lunch", Price: 10})
        }
        // Role is configured but must not be checked for the group class.
        s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "Group meals", Scope: "meal", Kind: "percent", Value: 20, MinAttendees: &minAttendees, RequiresRole: &role}}
        return s
    }

    t.Run("below threshold", func(t *testing.T) {
        s := buildStore(9)
        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        assert.Empty(t, itemsOfKind(s.items, model.ItemKindDiscount))
        assert.Equal(t, 90.0, total)
    })

    t.Run("at threshold", func(t *testing.T) {
        s := buildStore(10)
        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        disc := itemsOfKind(s.items, model.ItemKindDiscount)
        require.Len(t, disc, 1)
        assert.Equal(t, -20.0, disc[0].Amount) // 20% of the full 100 meal total
        assert.Equal(t, 80.0, total)
    })
}

func TestRoleGatedRoomDiscount(t *testing.T) {
    buildStore := func(requiredRole string) *memStore {
        s := newMemStore()
        lodging := uint64(5)
        s.attendees = []model.Attendee{
            {ID: 1, RegistrationID: 1, FullName: "Vol", Role: model.RoleVolunteer, TicketStatus: model.TicketStatusActive},
            {ID: 2, RegistrationID: 1, FullName: "Att", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive},
            {ID: 3, RegistrationID: 1, FullName: "Pres", Role: model.RolePresenter, TicketStatus: model.TicketStatusVoid},
        }
        s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, LodgingOptionID: &lodging, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 4)}}
        s.rates[lodging] = 100
        s.roomCounts[10] = 1
        s.guests[10] = []uint64{1, 2, 3} // 300 total, 100 per guest
        s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "Role comp", Scope: "room", Kind: "comp", RequiresRole: &requiredRole}}
        return s
    }

    t.Run("active volunteer share is comped", func(t *testing.T) {
        s := buildStore(model.RoleVolunteer)
        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        disc := itemsOfKind(s.items, model.ItemKindDiscount)
        require.Len(t, disc, 1)
        assert.Equal(t, -100.0, disc[0].Amount) // only the volunteer's share
        assert.Equal(t, 200.0, total)
    })

    t.Run("void presenter does not satisfy the role gate", func(t *testing.T) {
        s := buildStore(model.RolePresenter)
        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        assert.Empty(t, itemsOfKind(s.items, model.ItemKindDiscount))
        assert.Equal(t, 300.0, total)
    })
}

func TestStackedBlanketDiscountsCompound(t *testing.T) {
    s := newMemStore()
    s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Mika", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
    s.meals = []model.PurchasedMeal{{AttendeeID: 1, MealSessionID: 20, AttendeeName: "Mika", MealDate: "2025-07-11", MealType: "lunch", Price: 100}}
    s.discounts = []model.Discount{
        {ID: 1, EventID: 1, Label: "First 10%", Scope: "all", Kind: "percent", Value: 10},
        {ID: 2, EventID: 1, Label: "Second 10%", Scope: "all", Kind: "percent", Value: 10},
    }

    total, err := newTestEngine(s).Rebuild(context.Background(), 1)
    require.NoError(t, err)

    disc := itemsOfKind(s.items, model.ItemKindDiscount)
    require.Len(t, disc, 2)
    assert.Equal(t, -10.0, disc[0].Amount) // 10% of 100
    assert.Equal(t, -9.0, disc[1].Amount)  // 10% of 90: later discounts see earlier ones
    assert.Equal(t, 81.0, total)
}

func TestFixedRoomDiscountNeedsARoomBase(t *testing.T) {
    t.Run("no room charges", func(t *testing.T) {
        s := newMemStore()
        s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Sam", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
        s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "$50 off lodging", Scope: "room", Kind: "fixed", Value: 50}}

        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        assert.Empty(t, itemsOfKind(s.items, model.ItemKindDiscount))
        assert.Equal(t, 0.0, total)
    })

    t.Run("flat amount once a base exists", func(t *testing.T) {
        s := newMemStore()
        lodging := uint64(5)
        s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Sam", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
        s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, LodgingOptionID: &lodging, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 2)}}
        s.rates[lodging] = 100
        s.roomCounts[10] = 1
        s.guests[10] = []uint64{1}
        s.discounts = []model.Discount{{ID: 1, EventID: 1, Label: "$50 off lodging", Scope: "room", Kind: "fixed", Value: 50}}

        total, err := newTestEngine(s).Rebuild(context.Background(), 1)
        require.NoError(t, err)
        disc := itemsOfKind(s.items, model.ItemKindDiscount)
        require.Len(t, disc, 1)
        assert.Equal(t, -50.0, disc[0].Amount)
        assert.Equal(t, 50.0, total)
    })
}

func TestRebuildIsIdempotent(t *testing.T) {
    s := newMemStore()
    lodging := uint64(5)
    s.attendees = []model.Attendee{
        {ID: 1, RegistrationID: 1, FullName: "Ana Silva", Role: model.RoleVolunteer, DepartmentSurcharge: 15, TicketStatus: model.TicketStatusActive},
        {ID: 2, RegistrationID: 1, FullName: "Joe King", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive},
    }
    s.bookings = []model.RoomBooking{{ID: 10, RegistrationID: 1, LodgingOptionID: &lodging, CheckinDate: date(2025, 7, 1), CheckoutDate: date(2025, 7, 4), NumKeys: 1, KeyDepositPerKey: 10}}
    s.rates[lodging] = 80
    s.roomCounts[10] = 1
    s.guests[10] = []uint64{1, 2}
    s.meals = []model.PurchasedMeal{
        {AttendeeID: 1, MealSessionID: 20, AttendeeName: "Ana Silva", MealDate: "2025-07-02", MealType: "lunch", Price: 12.5},
        {AttendeeID: 2, MealSessionID: 21, AttendeeName: "Joe King", MealDate: "2025-07-02", MealType: "dinner", Price: 20},
    }
    s.discounts = []model.Discount{
        {ID: 1, EventID: 1, Label: "Volunteer meals", Scope: "meal", Kind: "comp", RequiresRole: strPtr(model.RoleVolunteer)},
        {ID: 2, EventID: 1, Label: "5% off everything", Scope: "all", Kind: "percent", Value: 5},
    }

    e := newTestEngine(s)
    total1, err := e.Rebuild(context.Background(), 1)
    require.NoError(t, err)
    first := append([]model.RegistrationItem(nil), s.items...)

    total2, err := e.Rebuild(context.Background(), 1)
    require.NoError(t, err)

    assert.Equal(t, total1, total2)
    assert.Equal(t, first, s.items)

    // The persisted total always equals the item sum, to the cent.
    var sum float64
    for _, it := range s.items {
        sum += it.Amount
    }
    assert.InDelta(t, sum, s.total, 1e-9)
}

func TestWipeFailureAbortsRebuild(t *testing.T) {
    s := newMemStore()
    s.items = []model.RegistrationItem{{RegistrationID: 1, Kind: model.ItemKindMeal, Qty: 1, UnitPrice: 10, Amount: 10}}
    s.failDelete = true

    _, err := newTestEngine(s).Rebuild(context.Background(), 1)
    require.Error(t, err)
    assert.Len(t, s.items, 1) // prior state untouched
    assert.False(t, s.totalWritten)
}

func TestUnknownScopeAndKindAreIgnored(t *testing.T) {
    s := newMemStore()
    s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Noa", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
    s.meals = []model.PurchasedMeal{{AttendeeID: 1, MealSessionID: 20, AttendeeName: "Noa", MealDate: "2025-07-11", MealType: "lunch", Price: 100}}
    s.discounts = []model.Discount{
        {ID: 1, EventID: 1, Label: "Mystery", Scope: "loyalty", Kind: "percent", Value: 50},
        {ID: 2, EventID: 1, Label: "Mystery", Scope: "meal", Kind: "tiered", Value: 50},
    }

    total, err := newTestEngine(s).Rebuild(context.Background(), 1)
    require.NoError(t, err)
    assert.Empty(t, itemsOfKind(s.items, model.ItemKindDiscount))
    assert.Equal(t, 100.0, total)
}

func TestConcurrentRebuildsCoalesce(t *testing.T) {
    s := newMemStore()
    s.attendees = []model.Attendee{{ID: 1, RegistrationID: 1, FullName: "Kai", Role: model.RoleAttendee, TicketStatus: model.TicketStatusActive}}
    s.meals = []model.PurchasedMeal{{AttendeeID: 1, MealSessionID: 20, AttendeeName: "Kai", MealDate: "2025-07-11", MealType: "lunch", Price: 40}}
    s.deleteGate = make(chan struct{})

    e := newTestEngine(s)
    totals := make([]float64, 2)
    errs := make([]error, 2)
    var wg sync.WaitGroup
    for i := 0; i < 2; i++ {
        wg.Add(1)
        go func(i int) {
            defer wg.Done()
            totals[i], errs[i] = e.Rebuild(context.Background(), 1)
        }(i)
    }
    // Give both goroutines time to reach the singleflight group before
    // the in-flight run is released.
    time.Sleep(50 * time.Millisecond)
    close(s.deleteGate)
    wg.Wait()

    require.NoError(t, errs[0])
    require.NoError(t, errs[1])
    assert.Equal(t, 1, s.deleteCalls) // duplicate triggers shared one pipeline run
    assert.Equal(t, totals[0], totals[1])
    assert.Equal(t, 40.0, totals[0])
}

func strPtr(s string) *string { return &s }
