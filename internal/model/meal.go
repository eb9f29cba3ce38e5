package model

// MealSession is one priced meal offering (a date plus a meal type)
// under an event.
//
// Fields:
//  ID       – primary key identifier.
//  EventID  – event offering this session.
//  MealDate – calendar date of the meal, stored as YYYY-MM-DD.
//  MealType – breakfast, lunch or dinner.
//  Price    – price per pass in dollars.
type MealSession struct {
    ID       uint64  // meal_sessions.id
    EventID  uint64  // meal_sessions.event_id
    MealDate string  // meal_sessions.meal_date
    MealType string  // meal_sessions.meal_type
    Price    float64 // meal_sessions.price
}

// MealPass links one attendee to one meal session. Only passes with
// Purchased set contribute charges during a pricing rebuild.
type MealPass struct {
    AttendeeID    uint64 // attendee_meal_passes.attendee_id
    MealSessionID uint64 // attendee_meal_passes.meal_session_id
    Purchased     bool   // attendee_meal_passes.purchased
}

// PurchasedMeal is the read row consumed by the pricing engine: a
// purchased pass joined with its session price and the attendee's name
// so the engine can emit a descriptive line item without further
// lookups.
type PurchasedMeal struct {
    AttendeeID    uint64  // attendee_meal_passes.attendee_id
    MealSessionID uint64  // attendee_meal_passes.meal_session_id
    AttendeeName  string  // attendees.full_name
    MealDate      string  // meal_sessions.meal_date
    MealType      string  // meal_sessions.meal_type
    Price         float64 // meal_sessions.price
}
