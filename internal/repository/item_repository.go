package repository

import (
	"errors"
	"time"

	"github.com/mkobayashi/todo-web-api/internal/models"
	"gorm.io/gorm"
)

// ErrNothingUpdated is returned when an item update affects no rows.
var ErrNothingUpdated = errors.New("repository: update affected no rows")

// GormItemRepository is a GORM implementation of ItemRepository
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

// ListPriorities returns all priority reference records
func (r *GormItemRepository) ListPriorities() ([]models.Priority, error) {
	var priorities []models.Priority
	if err := r.db.Find(&priorities).Error; err != nil {
		return nil, err
	}
	return priorities, nil
}

// ListItems returns all items owned by the user, including sub-items
func (r *GormItemRepository) ListItems(userID uint64) ([]models.Item, error) {
	if userID == 0 {
		return nil, ErrMissingUser
	}

	var items []models.Item
	if err := r.db.
		Preload("SubItems").
		Where("app_user_id = ?", userID).
		Find(&items).Error; err != nil {
		return nil, err
	}

	return items, nil
}

// GetItem returns a single owned item with its sub-items. A row owned by a
// different user is reported as not found.
func (r *GormItemRepository) GetItem(userID, itemID uint64) (*models.Item, error) {
	if userID == 0 {
		return nil, ErrMissingUser
	}

	var item models.Item
	if err := r.db.
		Preload("SubItems").
		Where("app_user_id = ? AND id = ?", userID, itemID).
		First(&item).Error; err != nil {
		return nil, err
	}

	return &item, nil
}

// AddItem persists a new item stamped with the user id and creation time
func (r *GormItemRepository) AddItem(userID uint64, item *models.Item) (*models.Item, error) {
	if userID == 0 {
		return nil, ErrMissingUser
	}

	item.AppUserID = userID
	item.CreatedDate = time.Now()

	if err := r.db.Create(item).Error; err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItem locates the owned item, overwrites its mutable fields and
// stamps the update time. Moving the status into Completed sets CompletedOn;
// moving it away clears it; any other transition leaves it untouched.
func (r *GormItemRepository) UpdateItem(userID, itemID uint64, draft *models.Item) (*models.Item, error) {
	if userID == 0 {
		return nil, ErrMissingUser
	}

	var existing models.Item
	if err := r.db.
		Where("app_user_id = ? AND id = ?", userID, itemID).
		First(&existing).Error; err != nil {
		return nil, err
	}

	now := time.Now()
	if existing.Status != models.StatusCompleted && draft.Status == models.StatusCompleted {
		existing.CompletedOn = &now
	}
	if existing.Status == models.StatusCompleted && draft.Status != models.StatusCompleted {
		existing.CompletedOn = nil
	}

	existing.Class = draft.Class
	existing.Description = draft.Description
	existing.DueBy = draft.DueBy
	existing.Status = draft.Status
	existing.PriorityID = draft.PriorityID
	existing.UpdatedDate = &now

	res := r.db.Save(&existing)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNothingUpdated
	}

	return &existing, nil
}

// DeleteItem removes an owned item and all of its sub-items inside one
// transaction, so a crash cannot leave a parent without children or vice
// versa. Deleting an absent item is success.
func (r *GormItemRepository) DeleteItem(userID, itemID uint64) error {
	if userID == 0 {
		return ErrMissingUser
	}

	var item models.Item
	err := r.db.
		Where("app_user_id = ? AND id = ?", userID, itemID).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("item_id = ?", item.ID).Delete(&models.SubItem{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Item{}, item.ID).Error
	})
}

// GetSubItem resolves the sub-item, then verifies the parent item belongs to
// the user. Either lookup failing reads as not found.
func (r *GormItemRepository) GetSubItem(userID, subItemID uint64) (*models.SubItem, error) {
	if userID == 0 {
		return nil, ErrMissingUser
	}

	var subItem models.SubItem
	if err := r.db.First(&subItem, subItemID).Error; err != nil {
		return nil, err
	}

	var item models.Item
	if err := r.db.
		Where("app_user_id = ? AND id = ?", userID, subItem.ItemID).
		First(&item).Error; err != nil {
		return nil, err
	}

	return &subItem, nil
}

// AddSubItem persists a new sub-item. The parent item's ownership is checked
// before the insert, so a caller cannot attach notes to another user's item.
func (r *GormItemRepository) AddSubItem(userID uint64, subItem *models.SubItem) (*models.SubItem, error) {
	if userID == 0 {
		return nil, ErrMissingUser
	}

	var item models.Item
	if err := r.db.
		Where("app_user_id = ? AND id = ?", userID, subItem.ItemID).
		First(&item).Error; err != nil {
		return nil, err
	}

	if err := r.db.Create(subItem).Error; err != nil {
		return nil, err
	}

	return subItem, nil
}

// DeleteSubItem removes a sub-item through the ownership-checked lookup.
// Deleting an absent sub-item is success.
func (r *GormItemRepository) DeleteSubItem(userID, subItemID uint64) error {
	if userID == 0 {
		return ErrMissingUser
	}

	subItem, err := r.GetSubItem(userID, subItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	return r.db.Delete(&models.SubItem{}, subItem.ID).Error
}
