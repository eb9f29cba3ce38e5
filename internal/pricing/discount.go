package pricing

import (
    "time"

    "github.com/eventflow/registration/internal/model"
)

// Scope identifies which charge base a discount rule applies to. The
// store persists scopes as strings; rules with an unrecognised scope
// match no evaluation class and are skipped, so parsing them out up
// front preserves that behaviour while keeping the class dispatch a
// checked switch.
type Scope int

const (
    ScopeRoom Scope = iota // applies to per-guest room-night shares
    ScopeMeal              // applies to meal subtotals
    ScopeAll               // applies to the whole running subtotal
)

// Kind identifies how a discount amount is derived from its base.
type Kind int

const (
    KindPercent Kind = iota // Value percent of the base
    KindFixed               // flat Value, independent of the base size
    KindComp                // 100% of the base, Value ignored
)

// rule is the typed form of a persisted discount row. Only the fields
// the pipeline reads are carried over; is_stackable and priority are
// persisted on the row but deliberately not enforced here, so every
// qualifying rule applies (unconditional stacking in creation order).
type rule struct {
    label        string
    scope        Scope
    kind         Kind
    value        float64
    startsAt     *time.Time
    endsAt       *time.Time
    requiresRole string // empty when the rule is not role-gated
    minAttendees int    // 0 when the rule has no group threshold
    maxAmount    *float64
}

// parseRule converts a store row into a typed rule. It reports false
// for rows whose scope or kind is not one of the known values; such
// rows are ignored by the rebuild, matching the stringly-typed original
// where they simply matched no branch.
func parseRule(d model.Discount) (rule, bool) {
    r := rule{
        label:     d.Label,
        value:     d.Value,
        startsAt:  d.StartsAt,
        endsAt:    d.EndsAt,
        maxAmount: d.MaxAmount,
    }
    switch d.Scope {
    case "room":
        r.scope = ScopeRoom
    case "meal":
        r.scope = ScopeMeal
    case "all":
        r.scope = ScopeAll
    default:
        return rule{}, false
    }
    switch d.Kind {
    case "percent":
        r.kind = KindPercent
    case "fixed":
        r.kind = KindFixed
    case "comp":
        r.kind = KindComp
    default:
        return rule{}, false
    }
    if d.RequiresRole != nil {
        r.requiresRole = *d.RequiresRole
    }
    if d.MinAttendees != nil && *d.MinAttendees > 0 {
        r.minAttendees = *d.MinAttendees
    }
    return r, true
}

// parseRules converts and filters a slice of store rows, preserving
// their order.
func parseRules(discounts []model.Discount) []rule {
    rules := make([]rule, 0, len(discounts))
    for _, d := range discounts {
        if r, ok := parseRule(d); ok {
            rules = append(rules, r)
        }
    }
    return rules
}

// activeAt reports whether the rule's activity window contains t. A
// missing bound is unbounded on that side.
func (r rule) activeAt(t time.Time) bool {
    if r.startsAt != nil && r.startsAt.After(t) {
        return false
    }
    if r.endsAt != nil && r.endsAt.Before(t) {
        return false
    }
    return true
}

// amountAgainst derives the discount amount for the given base. Comp
// always yields the full base regardless of the configured value.
func (r rule) amountAgainst(base float64) float64 {
    switch r.kind {
    case KindComp:
        return base
    case KindPercent:
        return r.value / 100 * base
    case KindFixed:
        return r.value
    }
    return 0
}

// capped clamps a computed amount to the rule's max_amount when set.
func (r rule) capped(amount float64) float64 {
    if r.maxAmount != nil && amount > *r.maxAmount {
        return *r.maxAmount
    }
    return amount
}
