package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/api/dto"
	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// AdminHandler serves the remaining admin console screens: customers,
// platform users, payments, bookings overview and reports.
type AdminHandler struct {
	api  *upstream.Client
	ctrl *auth.Controller
}

// NewAdminHandler constructs handler.
func NewAdminHandler(api *upstream.Client, ctrl *auth.Controller) *AdminHandler {
	return &AdminHandler{api: api, ctrl: ctrl}
}

// Customers handles GET /customers.
func (h *AdminHandler) Customers(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	customers, err := h.api.ListCustomers(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(customers)
}

// Bookings handles GET /bookings (admin overview of all bookings).
func (h *AdminHandler) Bookings(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	bookings, err := h.api.ListBookings(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(bookings)
}

// Payments handles GET /payments.
func (h *AdminHandler) Payments(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	payments, err := h.api.ListPayments(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(payments)
}

// Dashboard handles GET /admin/dashboard and GET /reports.
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	report, err := h.api.DashboardReport(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(report)
}

// Users handles GET /users.
func (h *AdminHandler) Users(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	users, err := h.api.ListUsers(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(users)
}

// CreateUser handles POST /users: the admin console creates accounts
// through the shared register endpoint, authenticated as admin.
func (h *AdminHandler) CreateUser(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	created, err := h.api.RegisterUser(c.UserContext(), creds, upstream.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapUpstream(err)
	}
	return c.Status(http.StatusCreated).JSON(created)
}

// UpdateUser handles PUT /users/:id.
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	user, err := h.api.UpdateUser(c.UserContext(), creds, c.Params("id"), upstream.UserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(user)
}

// DeleteUser handles DELETE /users/:id?confirm=true.
func (h *AdminHandler) DeleteUser(c *fiber.Ctx) error {
	if err := requireConfirm(c, "deleting a user"); err != nil {
		return err
	}
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	if err := h.api.DeleteUser(c.UserContext(), creds, c.Params("id")); err != nil {
		return mapUpstream(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
