package models

import "time"

type ItemStatus int

const (
	StatusOpen       ItemStatus = 1
	StatusInProgress ItemStatus = 2
	StatusCompleted  ItemStatus = 3
)

// Valid reports whether the status is one of the known enum values.
func (s ItemStatus) Valid() bool {
	return s >= StatusOpen && s <= StatusCompleted
}

type Item struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	Description string     `gorm:"type:text;not null" json:"description"`
	Class       string     `gorm:"type:varchar(100)" json:"class"`
	DueBy       time.Time  `json:"dueBy"`
	Status      ItemStatus `gorm:"not null;default:1" json:"status"`
	PriorityID  *uint64    `json:"priorityId"`
	CreatedDate time.Time  `json:"createdDate"`
	UpdatedDate *time.Time `json:"updatedDate"`
	CompletedOn *time.Time `json:"completedOn"`
	AppUserID   uint64     `gorm:"not null" json:"-"`

	// Relations
	AppUser  AppUser   `gorm:"foreignKey:AppUserID" json:"-"`
	Priority *Priority `gorm:"foreignKey:PriorityID" json:"-"`
	SubItems []SubItem `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"subItems,omitempty"`
}
