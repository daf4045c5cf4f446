package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/todo-web-api/internal/dto"
	apierrors "github.com/mkobayashi/todo-web-api/internal/errors"
	"github.com/mkobayashi/todo-web-api/internal/middleware"
	"github.com/mkobayashi/todo-web-api/internal/models"
	"github.com/mkobayashi/todo-web-api/internal/services"
)

// TodoHandler maps the /api/todo resource onto the item and priority
// services.
type TodoHandler struct {
	items      *services.ItemService
	priorities *services.PriorityService
}

// NewTodoHandler creates a new TodoHandler
func NewTodoHandler(items *services.ItemService, priorities *services.PriorityService) *TodoHandler {
	return &TodoHandler{
		items:      items,
		priorities: priorities,
	}
}

// ItemRequest is the wire shape for creating or replacing an item.
type ItemRequest struct {
	Description string            `json:"description" binding:"required"`
	Class       string            `json:"class"`
	DueBy       time.Time         `json:"dueBy" binding:"required"`
	Status      models.ItemStatus `json:"status"`
	PriorityID  *uint64           `json:"priorityId"`
}

// GetPriority returns the static priority list, served from the cache.
func (h *TodoHandler) GetPriority(c *gin.Context) {
	priorities, err := h.priorities.ListPriorities()
	if err != nil {
		log.Printf("error listing priorities: %v", err)
		apierrors.InternalError(c, "")
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToPriorityVMs(priorities))
}

// ListItems returns all items owned by the caller.
func (h *TodoHandler) ListItems(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	items, err := h.items.ListItems(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			apierrors.Unauthorized(c, "")
			return
		}
		log.Printf("error listing items for user %d: %v", userID, err)
		apierrors.InternalError(c, "")
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToItemVMs(items))
}

// GetItem returns one item by id.
func (h *TodoHandler) GetItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	item, err := h.items.GetItem(userID, itemID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			apierrors.Unauthorized(c, "")
		case errors.Is(err, services.ErrItemNotFound):
			apierrors.NotFound(c, "Item not found")
		default:
			log.Printf("error getting item %d for user %d: %v", itemID, userID, err)
			apierrors.InternalError(c, "")
		}
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToItemVM(*item))
}

// CreateItem persists a new item for the caller.
func (h *TodoHandler) CreateItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid item passed.")
		return
	}

	item, err := h.items.CreateItem(userID, services.ItemInput{
		Description: req.Description,
		Class:       req.Class,
		DueBy:       req.DueBy,
		Status:      req.Status,
		PriorityID:  req.PriorityID,
	})
	if err != nil {
		h.respondWriteError(c, "add item", userID, err, "Unable to add item.")
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToItemVM(*item))
}

// UpdateItem replaces the mutable fields of an item.
func (h *TodoHandler) UpdateItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	var req ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid item passed.")
		return
	}

	item, err := h.items.UpdateItem(userID, itemID, services.ItemInput{
		Description: req.Description,
		Class:       req.Class,
		DueBy:       req.DueBy,
		Status:      req.Status,
		PriorityID:  req.PriorityID,
	})
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			apierrors.NotFound(c, "Item not found")
			return
		}
		h.respondWriteError(c, "update item", userID, err, fmt.Sprintf("Unable to update item %d", itemID))
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToItemVM(*item))
}

// DeleteItem removes an item and its sub-items. Deleting an absent item is
// success.
func (h *TodoHandler) DeleteItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	itemID, ok := parseID(c, "itemId")
	if !ok {
		return
	}

	if err := h.items.DeleteItem(userID, itemID); err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			apierrors.Unauthorized(c, "")
			return
		}
		log.Printf("error deleting item %d for user %d: %v", itemID, userID, err)
		apierrors.BadRequest(c, fmt.Sprintf("Unable to delete item with id %d", itemID))
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("item id %d deleted successfully", itemID),
	})
}

func (h *TodoHandler) respondWriteError(c *gin.Context, op string, userID uint64, err error, message string) {
	switch {
	case errors.Is(err, services.ErrNotAuthenticated):
		apierrors.Unauthorized(c, "")
	case errors.Is(err, services.ErrDescriptionRequired),
		errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		// Persistence failure: full detail stays server-side.
		log.Printf("error during %s for user %d: %v", op, userID, err)
		apierrors.BadRequest(c, message)
	}
}

func parseID(c *gin.Context, param string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, fmt.Sprintf("Invalid %s", param))
		return 0, false
	}
	return id, true
}
