package handlers

import (
	"context"
	"errors"
	"strconv"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/minsu/gamestore-api/internal/models"
	"github.com/minsu/gamestore-api/internal/services"
	"github.com/minsu/gamestore-api/pkg/dto"
)

type ItemHandler struct {
	itemService ItemServiceInterface
}

func NewItemHandler(itemService ItemServiceInterface) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

// List returns every available item, optionally narrowed to one category
// via the game_type query parameter.
func (h *ItemHandler) List(c *drift.Context) {
	ctx := context.Background()
	gameType := c.QueryParam("game_type")

	var (
		items []models.GameItem
		err   error
	)
	if gameType != "" {
		if !models.ValidGameType(gameType) {
			c.BadRequest("unknown game_type: " + gameType)
			return
		}
		items, err = h.itemService.GetByType(ctx, gameType)
	} else {
		items, err = h.itemService.GetAll(ctx)
	}
	if err != nil {
		c.InternalServerError("failed to fetch game items")
		return
	}

	if items == nil {
		items = []models.GameItem{}
	}
	_ = c.JSON(200, items)
}

func (h *ItemHandler) Get(c *drift.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.BadRequest("invalid item id")
		return
	}

	item, err := h.itemService.GetByID(context.Background(), id)
	if errors.Is(err, services.ErrItemNotFound) {
		c.NotFound("game item not found")
		return
	}
	if err != nil {
		c.InternalServerError("failed to fetch game item")
		return
	}

	_ = c.JSON(200, item)
}

func (h *ItemHandler) Create(c *drift.Context) {
	var req dto.CreateItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		c.BadRequest(err.Error())
		return
	}
	if !req.Price.IsPositive() {
		c.BadRequest("price must be positive")
		return
	}

	item, err := h.itemService.Create(context.Background(), services.CreateItemParams{
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Price:               req.Price,
		GameType:            req.GameType,
		ImageURL:            req.ImageURL,
		IsAvailable:         req.IsAvailable,
	})
	if err != nil {
		c.InternalServerError("failed to create game item")
		return
	}

	_ = c.JSON(201, item)
}

func (h *ItemHandler) Update(c *drift.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.BadRequest("invalid item id")
		return
	}

	var req dto.UpdateItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := validateRequest(&req); err != nil {
		c.BadRequest(err.Error())
		return
	}
	if req.Price != nil && !req.Price.IsPositive() {
		c.BadRequest("price must be positive")
		return
	}

	item, err := h.itemService.Update(context.Background(), id, services.ItemPatch{
		Title:               req.Title,
		Description:         req.Description,
		DetailedDescription: req.DetailedDescription,
		Price:               req.Price,
		GameType:            req.GameType,
		ImageURL:            req.ImageURL.Value,
		ImageURLSet:         req.ImageURL.Set,
		IsAvailable:         req.IsAvailable,
	})
	if errors.Is(err, services.ErrItemNotFound) {
		c.NotFound("game item not found")
		return
	}
	if err != nil {
		c.InternalServerError("failed to update game item")
		return
	}

	_ = c.JSON(200, item)
}
