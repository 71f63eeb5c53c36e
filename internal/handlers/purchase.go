package handlers

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/minsu/gamestore-api/internal/middleware"
	"github.com/minsu/gamestore-api/internal/models"
	"github.com/minsu/gamestore-api/internal/services"
	"github.com/minsu/gamestore-api/pkg/dto"
)

type PurchaseHandler struct {
	purchaseService PurchaseServiceInterface
}

func NewPurchaseHandler(purchaseService PurchaseServiceInterface) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Create records a purchase for the authenticated user. The price paid is
// taken as submitted; it is not compared against the item's listed price.
func (h *PurchaseHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreatePurchaseRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		c.BadRequest(err.Error())
		return
	}
	if !req.PricePaid.IsPositive() {
		c.BadRequest("price_paid must be positive")
		return
	}

	purchase, err := h.purchaseService.Create(context.Background(), userID, req.ItemID, req.PricePaid)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		c.NotFound("user not found")
		return
	case errors.Is(err, services.ErrItemNotFound):
		c.NotFound("game item not found")
		return
	case errors.Is(err, services.ErrItemUnavailable):
		c.Conflict("game item is not available for purchase")
		return
	case err != nil:
		c.InternalServerError("failed to create purchase")
		return
	}

	_ = c.JSON(201, purchase)
}

func (h *PurchaseHandler) List(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	purchases, err := h.purchaseService.GetUserPurchases(context.Background(), userID)
	if err != nil {
		c.InternalServerError("failed to fetch purchases")
		return
	}

	if purchases == nil {
		purchases = []models.Purchase{}
	}
	_ = c.JSON(200, purchases)
}

func (h *PurchaseHandler) UpdateStatus(c *drift.Context) {
	purchaseID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.BadRequest("invalid purchase id")
		return
	}

	var req dto.UpdatePurchaseStatusRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		c.BadRequest(err.Error())
		return
	}
	if !models.ValidPurchaseStatus(req.Status) {
		c.BadRequest("unknown status: " + req.Status)
		return
	}

	purchase, err := h.purchaseService.UpdateStatus(context.Background(), purchaseID, req.Status)
	if errors.Is(err, services.ErrPurchaseNotFound) {
		c.NotFound("purchase not found")
		return
	}
	if err != nil {
		c.InternalServerError("failed to update purchase status")
		return
	}

	_ = c.JSON(200, purchase)
}
