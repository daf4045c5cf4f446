package dto

import (
	"time"

	"github.com/mkobayashi/todo-web-api/internal/models"
)

// PriorityVM represents a priority in API responses
type PriorityVM struct {
	ID    uint64 `json:"id"`
	Level string `json:"level"`
}

// SubItemVM represents a sub-item in API responses
type SubItemVM struct {
	ID          uint64 `json:"id"`
	Description string `json:"description"`
	ItemID      uint64 `json:"itemId"`
}

// ItemVM represents an item in API responses
type ItemVM struct {
	ID          uint64            `json:"id"`
	Description string            `json:"description"`
	Class       string            `json:"class"`
	DueBy       time.Time         `json:"dueBy"`
	Status      models.ItemStatus `json:"status"`
	PriorityID  *uint64           `json:"priorityId"`
	CreatedDate time.Time         `json:"createdDate"`
	UpdatedDate *time.Time        `json:"updatedDate"`
	CompletedOn *time.Time        `json:"completedOn"`
	SubItems    []SubItemVM       `json:"subItems"`
}

// Conversion functions. Each boundary shape is built field by field so the
// wire contract stays reviewable.

// ToPriorityVM converts a Priority model to PriorityVM
func ToPriorityVM(priority models.Priority) PriorityVM {
	return PriorityVM{
		ID:    priority.ID,
		Level: priority.Level,
	}
}

// ToPriorityVMs converts a slice of Priority models
func ToPriorityVMs(priorities []models.Priority) []PriorityVM {
	vms := make([]PriorityVM, len(priorities))
	for i, p := range priorities {
		vms[i] = ToPriorityVM(p)
	}
	return vms
}

// ToSubItemVM converts a SubItem model to SubItemVM
func ToSubItemVM(subItem models.SubItem) SubItemVM {
	return SubItemVM{
		ID:          subItem.ID,
		Description: subItem.Description,
		ItemID:      subItem.ItemID,
	}
}

// ToItemVM converts an Item model to ItemVM
func ToItemVM(item models.Item) ItemVM {
	vm := ItemVM{
		ID:          item.ID,
		Description: item.Description,
		Class:       item.Class,
		DueBy:       item.DueBy,
		Status:      item.Status,
		PriorityID:  item.PriorityID,
		CreatedDate: item.CreatedDate,
		UpdatedDate: item.UpdatedDate,
		CompletedOn: item.CompletedOn,
		SubItems:    make([]SubItemVM, len(item.SubItems)),
	}

	for i, subItem := range item.SubItems {
		vm.SubItems[i] = ToSubItemVM(subItem)
	}

	return vm
}

// ToItemVMs converts a slice of Item models
func ToItemVMs(items []models.Item) []ItemVM {
	vms := make([]ItemVM, len(items))
	for i, item := range items {
		vms[i] = ToItemVM(item)
	}
	return vms
}
