package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mkobayashi/todo-web-api/internal/models"
	"github.com/mkobayashi/todo-web-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotAuthenticated    = errors.New("no authenticated user")
	ErrItemNotFound        = errors.New("item not found")
	ErrSubItemNotFound     = errors.New("sub-item not found")
	ErrDescriptionRequired = errors.New("description is required")
	ErrInvalidStatus       = errors.New("invalid status value")
	ErrItemNotSaved        = errors.New("item could not be saved")
	ErrSubItemNotSaved     = errors.New("sub-item could not be saved")
	ErrDeleteFailed        = errors.New("delete failed")
)

// ItemService owns the business rules for items and sub-items. It turns the
// repository's outcomes into explicit error kinds so handlers can tell
// not-found from invalid input from a failed write.
type ItemService struct {
	itemRepo repository.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo repository.ItemRepository) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
	}
}

// ItemInput represents the mutable fields of an item, used for both create
// and full replace.
type ItemInput struct {
	Description string
	Class       string
	DueBy       time.Time
	Status      models.ItemStatus
	PriorityID  *uint64
}

func (in *ItemInput) validate() error {
	if strings.TrimSpace(in.Description) == "" {
		return ErrDescriptionRequired
	}
	if in.Status == 0 {
		in.Status = models.StatusOpen
	}
	if !in.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ListItems returns all items owned by the user.
func (s *ItemService) ListItems(userID uint64) ([]models.Item, error) {
	items, err := s.itemRepo.ListItems(userID)
	if err != nil {
		if errors.Is(err, repository.ErrMissingUser) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	return items, nil
}

// GetItem returns one owned item with its sub-items.
func (s *ItemService) GetItem(userID, itemID uint64) (*models.Item, error) {
	item, err := s.itemRepo.GetItem(userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMissingUser):
			return nil, ErrNotAuthenticated
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	return item, nil
}

// CreateItem validates the input and persists a new item for the user.
func (s *ItemService) CreateItem(userID uint64, input ItemInput) (*models.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := &models.Item{
		Description: input.Description,
		Class:       input.Class,
		DueBy:       input.DueBy,
		Status:      input.Status,
		PriorityID:  input.PriorityID,
	}

	created, err := s.itemRepo.AddItem(userID, item)
	if err != nil {
		if errors.Is(err, repository.ErrMissingUser) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("%w: %v", ErrItemNotSaved, err)
	}

	return created, nil
}

// UpdateItem replaces the mutable fields of an owned item.
func (s *ItemService) UpdateItem(userID, itemID uint64, input ItemInput) (*models.Item, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	draft := &models.Item{
		Description: input.Description,
		Class:       input.Class,
		DueBy:       input.DueBy,
		Status:      input.Status,
		PriorityID:  input.PriorityID,
	}

	updated, err := s.itemRepo.UpdateItem(userID, itemID, draft)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMissingUser):
			return nil, ErrNotAuthenticated
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrItemNotSaved, err)
	}

	return updated, nil
}

// DeleteItem removes an owned item and its sub-items. Absent items delete
// successfully.
func (s *ItemService) DeleteItem(userID, itemID uint64) error {
	if err := s.itemRepo.DeleteItem(userID, itemID); err != nil {
		if errors.Is(err, repository.ErrMissingUser) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	return nil
}

// CreateSubItem attaches a note to one of the user's items. The parent item
// must belong to the caller.
func (s *ItemService) CreateSubItem(userID uint64, itemID uint64, description string) (*models.SubItem, error) {
	if strings.TrimSpace(description) == "" {
		return nil, ErrDescriptionRequired
	}

	subItem := &models.SubItem{
		Description: description,
		ItemID:      itemID,
	}

	created, err := s.itemRepo.AddSubItem(userID, subItem)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMissingUser):
			return nil, ErrNotAuthenticated
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSubItemNotSaved, err)
	}

	return created, nil
}

// GetSubItem resolves a sub-item through its parent's ownership.
func (s *ItemService) GetSubItem(userID, subItemID uint64) (*models.SubItem, error) {
	subItem, err := s.itemRepo.GetSubItem(userID, subItemID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrMissingUser):
			return nil, ErrNotAuthenticated
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, ErrSubItemNotFound
		}
		return nil, fmt.Errorf("failed to find sub-item: %w", err)
	}

	return subItem, nil
}

// DeleteSubItem removes a sub-item. Absent sub-items delete successfully.
func (s *ItemService) DeleteSubItem(userID, subItemID uint64) error {
	if err := s.itemRepo.DeleteSubItem(userID, subItemID); err != nil {
		if errors.Is(err, repository.ErrMissingUser) {
			return ErrNotAuthenticated
		}
		return fmt.Errorf("%w: %v", ErrDeleteFailed, err)
	}

	return nil
}
