package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceModel mirrors the 'devices' table. DeletedAt makes every query through
// this model skip soft-deleted rows.
type DeviceModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index:idx_devices_user_id;index:idx_devices_user_in_use,priority:1;index:idx_devices_user_location,priority:1;index:idx_devices_user_purchase_date,priority:1"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Location     string    `gorm:"type:varchar(255);not null;index:idx_devices_user_location,priority:2"`
	PurchaseDate Date      `gorm:"type:date;not null;index:idx_devices_user_purchase_date,priority:2"`
	InUse        bool      `gorm:"not null;default:false;index:idx_devices_user_in_use,priority:2"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index:idx_devices_deleted_at"`
}

// TableName explicitly sets the table name for GORM.
func (DeviceModel) TableName() string {
	return "devices"
}

func (m *DeviceModel) BeforeCreate(_ *gorm.DB) error {
	return assignID(&m.ID)
}
