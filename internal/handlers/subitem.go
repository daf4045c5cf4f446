package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mkobayashi/todo-web-api/internal/dto"
	apierrors "github.com/mkobayashi/todo-web-api/internal/errors"
	"github.com/mkobayashi/todo-web-api/internal/middleware"
	"github.com/mkobayashi/todo-web-api/internal/services"
)

// SubItemHandler maps the /api/subitem resource onto the item service.
type SubItemHandler struct {
	items *services.ItemService
}

// NewSubItemHandler creates a new SubItemHandler
func NewSubItemHandler(items *services.ItemService) *SubItemHandler {
	return &SubItemHandler{
		items: items,
	}
}

// CreateSubItem attaches a note to one of the caller's items. Referencing
// another user's item reads as not found.
func (h *SubItemHandler) CreateSubItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type SubItemRequest struct {
		Description string `json:"description" binding:"required"`
		ItemID      uint64 `json:"itemId" binding:"required"`
	}

	var req SubItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid subItem passed.")
		return
	}

	subItem, err := h.items.CreateSubItem(userID, req.ItemID, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAuthenticated):
			apierrors.Unauthorized(c, "")
		case errors.Is(err, services.ErrItemNotFound):
			apierrors.NotFound(c, "Item not found")
		case errors.Is(err, services.ErrDescriptionRequired):
			apierrors.BadRequest(c, err.Error())
		default:
			log.Printf("error adding sub-item to item %d for user %d: %v", req.ItemID, userID, err)
			apierrors.BadRequest(c, "Unable to add subItem.")
		}
		return
	}

	c.IndentedJSON(http.StatusOK, dto.ToSubItemVM(*subItem))
}

// DeleteSubItem removes a sub-item. Deleting an absent sub-item is success.
func (h *SubItemHandler) DeleteSubItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	subItemID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.items.DeleteSubItem(userID, subItemID); err != nil {
		if errors.Is(err, services.ErrNotAuthenticated) {
			apierrors.Unauthorized(c, "")
			return
		}
		log.Printf("error deleting sub-item %d for user %d: %v", subItemID, userID, err)
		apierrors.BadRequest(c, fmt.Sprintf("Unable to delete subItem with id %d", subItemID))
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("subItem id %d deleted successfully", subItemID),
	})
}
