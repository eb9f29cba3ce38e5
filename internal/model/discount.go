package model

import "time"

// Discount is a configured rule that reduces charges for registrations
// of an event. Scope and kind are stored as strings; the pricing
// package parses them into closed enum types before evaluation.
//
// IsStackable and Priority are persisted and orderable but are not
// read by the rebuild pipeline: all qualifying discounts in a class
// apply, unconditionally stacked, in creation order.
//
// Fields:
//  ID           – primary key identifier.
//  EventID      – event this rule is scoped to.
//  Code         – optional promo code, nil when the rule is automatic.
//  Label        – description used for the emitted line item.
//  Scope        – "room", "meal" or "all".
//  Kind         – "percent", "fixed" or "comp".
//  Value        – percent points for percent, dollars for fixed;
//                 ignored for comp (comp always yields 100% of the base).
//  StartsAt     – activity window start, nil = unbounded.
//  EndsAt       – activity window end, nil = unbounded.
//  RequiresRole – role an active attendee must hold, nil = any.
//  MinAttendees – group threshold for meal-scope rules, nil/0 = none.
//  IsStackable  – persisted, never read by the rebuild.
//  Priority     – persisted, never read by the rebuild.
//  MaxAmount    – cap on the computed discount amount, nil = uncapped.
//  CreatedAt    – creation timestamp; ties in application order break
//                 on this.
type Discount struct {
    ID           uint64     // event_discounts.id
    EventID      uint64     // event_discounts.event_id
    Code         *string    // event_discounts.code (nullable)
    Label        string     // event_discounts.label
    Scope        string     // event_discounts.scope
    Kind         string     // event_discounts.kind
    Value        float64    // event_discounts.value
    StartsAt     *time.Time // event_discounts.starts_at (nullable)
    EndsAt       *time.Time // event_discounts.ends_at (nullable)
    RequiresRole *string    // event_discounts.requires_role (nullable)
    MinAttendees *int       // event_discounts.min_attendees (nullable)
    IsStackable  bool       // event_discounts.is_stackable
    Priority     *int       // event_discounts.priority (nullable)
    MaxAmount    *float64   // event_discounts.max_amount (nullable)
    CreatedAt    time.Time  // event_discounts.created_at
}
