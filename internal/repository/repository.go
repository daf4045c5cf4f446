package repository

import (
	"errors"

	"github.com/mkobayashi/todo-web-api/internal/models"
)

// ErrMissingUser is returned when a repository operation is invoked without
// an owning user id.
var ErrMissingUser = errors.New("repository: missing user id")

// ItemRepository defines the data access boundary for items, sub-items and
// the priority reference list. Every operation except ListPriorities takes
// the authenticated user's id first and is scoped to rows that user owns;
// an ownership mismatch is indistinguishable from a missing row.
type ItemRepository interface {
	// ListPriorities returns all priority reference records
	ListPriorities() ([]models.Priority, error)

	// ListItems returns all items owned by the user, including sub-items
	ListItems(userID uint64) ([]models.Item, error)

	// GetItem returns a single owned item with its sub-items
	GetItem(userID, itemID uint64) (*models.Item, error)

	// AddItem persists a new item stamped with the user id and creation time
	AddItem(userID uint64, item *models.Item) (*models.Item, error)

	// UpdateItem overwrites the mutable fields of an owned item
	UpdateItem(userID, itemID uint64, draft *models.Item) (*models.Item, error)

	// DeleteItem removes an owned item and its sub-items atomically.
	// Deleting an absent item is success.
	DeleteItem(userID, itemID uint64) error

	// GetSubItem resolves a sub-item through its parent item's ownership
	GetSubItem(userID, subItemID uint64) (*models.SubItem, error)

	// AddSubItem persists a new sub-item after verifying the parent item
	// belongs to the user
	AddSubItem(userID uint64, subItem *models.SubItem) (*models.SubItem, error)

	// DeleteSubItem removes a sub-item through the ownership-checked lookup.
	// Deleting an absent sub-item is success.
	DeleteSubItem(userID, subItemID uint64) error
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.AppUser) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.AppUser, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.AppUser, error)
}
