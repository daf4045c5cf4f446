package database

import (
	"fmt"

	"github.com/mkobayashi/todo-web-api/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		// Item indexes: every repository query filters on the owning user
		{&models.Item{}, "items", "idx_items_app_user_id", "app_user_id"},
		{&models.Item{}, "items", "idx_items_status", "status"},
		{&models.Item{}, "items", "idx_items_due_by", "due_by"},

		// Sub-item lookups and cascade deletes go through the parent item
		{&models.SubItem{}, "sub_items", "idx_sub_items_item_id", "item_id"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}

// SeedPriorities inserts the static priority reference rows when the table
// is empty. Priorities are read-only from the API's perspective.
func SeedPriorities(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Priority{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count priorities: %w", err)
	}
	if count > 0 {
		return nil
	}

	priorities := []models.Priority{
		{Level: "High"},
		{Level: "Medium"},
		{Level: "Low"},
	}

	if err := db.Create(&priorities).Error; err != nil {
		return fmt.Errorf("failed to seed priorities: %w", err)
	}

	return nil
}
