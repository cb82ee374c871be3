package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/api/dto"
	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/browse"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// HousesHandler serves the admin house management screens.
type HousesHandler struct {
	api  *upstream.Client
	ctrl *auth.Controller
}

// NewHousesHandler constructs handler.
func NewHousesHandler(api *upstream.Client, ctrl *auth.Controller) *HousesHandler {
	return &HousesHandler{api: api, ctrl: ctrl}
}

// List handles GET /houses.
func (h *HousesHandler) List(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	query := upstream.HouseQuery{
		Search: c.Query("search"),
		Page:   browse.ParsePage(c.Query("page")),
		Limit:  browse.HousesPerPage,
	}
	page, err := h.api.ListHouses(c.UserContext(), creds, query)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(page)
}

// Get handles GET /houses/:id.
func (h *HousesHandler) Get(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	house, err := h.api.GetHouse(c.UserContext(), creds, c.Params("id"))
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(house)
}

// Create handles POST /houses.
func (h *HousesHandler) Create(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	input, err := parseHouseInput(c)
	if err != nil {
		return err
	}
	house, err := h.api.CreateHouse(c.UserContext(), creds, input)
	if err != nil {
		return mapUpstream(err)
	}
	return c.Status(http.StatusCreated).JSON(house)
}

// Update handles PUT /houses/:id. The address is immutable after
// creation; the rental API rejects attempts to change it.
func (h *HousesHandler) Update(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	input, err := parseHouseInput(c)
	if err != nil {
		return err
	}
	house, err := h.api.UpdateHouse(c.UserContext(), creds, c.Params("id"), input)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(house)
}

// Delete handles DELETE /houses/:id?confirm=true.
func (h *HousesHandler) Delete(c *fiber.Ctx) error {
	if err := requireConfirm(c, "deleting a house"); err != nil {
		return err
	}
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	if err := h.api.DeleteHouse(c.UserContext(), creds, c.Params("id")); err != nil {
		return mapUpstream(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseHouseInput(c *fiber.Ctx) (upstream.HouseInput, error) {
	var req dto.HouseRequest
	if err := c.BodyParser(&req); err != nil {
		return upstream.HouseInput{}, util.NewValidationError("invalid request payload", nil)
	}
	return upstream.HouseInput{
		Address:       req.Address,
		Price:         req.Price,
		NumberOfRooms: req.NumberOfRooms,
		HouseType:     req.HouseType,
		Status:        req.Status,
		Description:   req.Description,
		Owner:         req.Owner,
	}, nil
}
