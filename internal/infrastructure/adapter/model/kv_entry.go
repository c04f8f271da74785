package model

import (
	"time"
)

// KVEntry is one row of the key-value table
type KVEntry struct {
	Key       string    `gorm:"primaryKey;type:varchar(255)"`
	Value     []byte    `gorm:"type:bytea;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}
