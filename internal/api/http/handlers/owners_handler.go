package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/api/dto"
	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// OwnersHandler serves the owner management screens.
type OwnersHandler struct {
	api  *upstream.Client
	ctrl *auth.Controller
}

// NewOwnersHandler constructs handler.
func NewOwnersHandler(api *upstream.Client, ctrl *auth.Controller) *OwnersHandler {
	return &OwnersHandler{api: api, ctrl: ctrl}
}

// List handles GET /owners.
func (h *OwnersHandler) List(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	owners, err := h.api.ListOwners(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(owners)
}

// Get handles GET /owners/:id.
func (h *OwnersHandler) Get(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	owner, err := h.api.GetOwner(c.UserContext(), creds, c.Params("id"))
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(owner)
}

// Create handles POST /owners.
func (h *OwnersHandler) Create(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	input, err := parseOwnerInput(c)
	if err != nil {
		return err
	}
	owner, err := h.api.CreateOwner(c.UserContext(), creds, input)
	if err != nil {
		return mapUpstream(err)
	}
	return c.Status(http.StatusCreated).JSON(owner)
}

// Update handles PUT /owners/:id.
func (h *OwnersHandler) Update(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	input, err := parseOwnerInput(c)
	if err != nil {
		return err
	}
	owner, err := h.api.UpdateOwner(c.UserContext(), creds, c.Params("id"), input)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(owner)
}

// Delete handles DELETE /owners/:id?confirm=true.
func (h *OwnersHandler) Delete(c *fiber.Ctx) error {
	if err := requireConfirm(c, "deleting an owner"); err != nil {
		return err
	}
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	if err := h.api.DeleteOwner(c.UserContext(), creds, c.Params("id")); err != nil {
		return mapUpstream(err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func parseOwnerInput(c *fiber.Ctx) (upstream.OwnerInput, error) {
	var req dto.OwnerRequest
	if err := c.BodyParser(&req); err != nil {
		return upstream.OwnerInput{}, util.NewValidationError("invalid request payload", nil)
	}
	return upstream.OwnerInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		NationalID:  req.NationalID,
		Address:     req.Address,
	}, nil
}
