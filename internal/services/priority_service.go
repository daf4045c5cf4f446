package services

import (
	"fmt"

	"github.com/mkobayashi/todo-web-api/internal/cache"
	"github.com/mkobayashi/todo-web-api/internal/models"
	"github.com/mkobayashi/todo-web-api/internal/repository"
)

// PriorityService serves the static priority list through the sliding
// expiration cache.
type PriorityService struct {
	itemRepo repository.ItemRepository
	cache    *cache.PriorityCache
}

// NewPriorityService creates a new PriorityService
func NewPriorityService(itemRepo repository.ItemRepository, cache *cache.PriorityCache) *PriorityService {
	return &PriorityService{
		itemRepo: itemRepo,
		cache:    cache,
	}
}

// ListPriorities returns the priority list, served from cache within the
// expiration window.
func (s *PriorityService) ListPriorities() ([]models.Priority, error) {
	priorities, err := s.cache.Get(s.itemRepo.ListPriorities)
	if err != nil {
		return nil, fmt.Errorf("failed to list priorities: %w", err)
	}

	return priorities, nil
}
