package model

import "time"

// Line item kinds emitted by the pricing rebuild. Positive amounts are
// charges; discount items carry a negative unit price.
const (
    ItemKindRoomNight           = "room_night"
    ItemKindKeyDeposit          = "key_deposit"
    ItemKindDepartmentSurcharge = "department_surcharge"
    ItemKindMeal                = "meal"
    ItemKindDiscount            = "discount"
)

// RegistrationItem is one signed, priced entry contributing to a
// registration's total. Items are the pricing engine's sole persisted
// output besides the total and are fully regenerated on every rebuild
// (delete-all-then-reinsert); they are never partially updated.
//
// Fields:
//  ID             – primary key identifier.
//  RegistrationID – registration the item belongs to.
//  Kind           – one of the ItemKind constants above.
//  RefTable       – source table the item was derived from.
//  RefID          – row in RefTable, nil for discount items.
//  Qty            – quantity (nights × rooms, key count, or 1).
//  UnitPrice      – price per unit; negative for discounts.
//  Amount         – Qty × UnitPrice, the value summed into the total.
//  Description    – human-readable line shown on the review page.
//  CreatedAt      – creation timestamp.
type RegistrationItem struct {
    ID             uint64    // registration_items.id
    RegistrationID uint64    // registration_items.registration_id
    Kind           string    // registration_items.kind
    RefTable       string    // registration_items.ref_table
    RefID          *uint64   // registration_items.ref_id (nullable)
    Qty            float64   // registration_items.qty
    UnitPrice      float64   // registration_items.unit_price
    Amount         float64   // registration_items.amount
    Description    string    // registration_items.description
    CreatedAt      time.Time // registration_items.created_at
}
