package models

// SubItem is a note attached to an Item. Its lifecycle is tied entirely to
// the parent: deleting the Item removes its SubItems.
type SubItem struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Description string `gorm:"type:text;not null" json:"description"`
	ItemID      uint64 `gorm:"not null" json:"itemId"`

	// Relations
	Item Item `gorm:"foreignKey:ItemID" json:"-"`
}
