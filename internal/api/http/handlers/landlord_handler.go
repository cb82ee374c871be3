package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/browse"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
)

// LandlordHandler serves the landlord console: dashboard, portfolio
// houses and tenants. All requests here ride the landlord token.
type LandlordHandler struct {
	api  *upstream.Client
	ctrl *auth.Controller
}

// NewLandlordHandler constructs handler.
func NewLandlordHandler(api *upstream.Client, ctrl *auth.Controller) *LandlordHandler {
	return &LandlordHandler{api: api, ctrl: ctrl}
}

// Dashboard handles GET /landlord/dashboard.
func (h *LandlordHandler) Dashboard(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	stats, err := h.api.LandlordStats(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(stats)
}

// Houses handles GET /landlord/houses.
func (h *LandlordHandler) Houses(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	page, err := h.api.LandlordHouses(c.UserContext(), creds, browse.ParsePage(c.Query("page")), browse.HousesPerPage)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(page)
}

// CreateHouse handles POST /landlord/houses.
func (h *LandlordHandler) CreateHouse(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	input, err := parseHouseInput(c)
	if err != nil {
		return err
	}
	house, err := h.api.CreateLandlordHouse(c.UserContext(), creds, input)
	if err != nil {
		return mapUpstream(err)
	}
	return c.Status(http.StatusCreated).JSON(house)
}

// UpdateHouse handles PUT /landlord/houses/:id.
func (h *LandlordHandler) UpdateHouse(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	input, err := parseHouseInput(c)
	if err != nil {
		return err
	}
	house, err := h.api.UpdateLandlordHouse(c.UserContext(), creds, c.Params("id"), input)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(house)
}

// DeleteHouse handles DELETE /landlord/houses/:id?confirm=true.
func (h *LandlordHandler) DeleteHouse(c *fiber.Ctx) error {
	if err := requireConfirm(c, "deleting a house"); err != nil {
		return err
	}
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	if err := h.api.DeleteLandlordHouse(c.UserContext(), creds, c.Params("id")); err != nil {
		return mapUpstream(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// Tenants handles GET /landlord/tenants.
func (h *LandlordHandler) Tenants(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	tenants, err := h.api.LandlordTenants(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(tenants)
}
