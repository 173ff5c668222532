package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device is an item in a user's personal inventory.
type Device struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PurchaseDate Date      `json:"purchase_date"`
	InUse        bool      `json:"in_use"`
	UserID       uuid.UUID `json:"user_id"` // Owner of the device.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DevicePatch lists the fields of a partial update. Nil fields are left untouched.
type DevicePatch struct {
	Name         *string
	Location     *string
	PurchaseDate *Date
	InUse        *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p DevicePatch) IsEmpty() bool {
	return p.Name == nil && p.Location == nil && p.PurchaseDate == nil && p.InUse == nil
}
