package models

// Priority is a static reference value used to rank items. Read-only from
// the API's perspective; seeded at startup.
type Priority struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Level string `gorm:"type:varchar(50);not null" json:"level"`
}
