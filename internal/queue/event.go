// Package queue defines message payloads exchanged over the message broker.
package queue

// PricingRebuiltEvent is published after a registration's line items and
// total have been successfully recomputed. It carries enough information
// for downstream consumers to log, notify, or trigger analytics without
// querying the primary database.
type PricingRebuiltEvent struct {
    RegistrationID uint64  `json:"registration_id"`
    EventID        uint64  `json:"event_id"`
    UserID         uint64  `json:"user_id"`
    ItemCount      int     `json:"item_count"`
    Total          float64 `json:"total"`
    RebuiltAt      string  `json:"rebuilt_at"`
}
