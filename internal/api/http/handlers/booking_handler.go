package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/api/dto"
	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/domain"
	"github.com/Saadaqmacalin/houserent-gateway/internal/workflow"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// BookingHandler drives the booking → checkout → lease pages.
type BookingHandler struct {
	wf   *workflow.Service
	ctrl *auth.Controller
}

// NewBookingHandler constructs handler.
func NewBookingHandler(wf *workflow.Service, ctrl *auth.Controller) *BookingHandler {
	return &BookingHandler{wf: wf, ctrl: ctrl}
}

// Select handles POST /rent/:id/select: the customer's pick from the
// listing, recorded so the confirm step can skip a refetch.
func (h *BookingHandler) Select(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}

	flow, err := h.wf.SelectHouseByID(c.UserContext(), sid, creds, c.Params("id"))
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(flow)
}

// Create handles POST /bookings: the "confirm rental request" submit.
func (h *BookingHandler) Create(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	redirect, err := h.wf.CreateBooking(c.UserContext(), sid, creds, req.HouseID, req.StartDate)
	if err != nil {
		return mapUpstream(err)
	}
	return c.Status(http.StatusCreated).JSON(redirect)
}

// Checkout handles GET /checkout?booking=<id>. A missing context is the
// deliberate "no session found" fallback pointing back to the browse page.
func (h *BookingHandler) Checkout(c *fiber.Ctx) error {
	cc, err := h.wf.Checkout(c.UserContext(), c.Query("booking"))
	if err != nil {
		return err
	}
	return c.JSON(cc)
}

// Pay handles POST /checkout/pay.
func (h *BookingHandler) Pay(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}

	var req dto.PayRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	result, err := h.wf.Pay(c.UserContext(), sid, creds, req.BookingID, domain.PaymentMethod(req.PaymentMethod))
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(result)
}

// Rentals handles GET /my-rentals.
func (h *BookingHandler) Rentals(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}
	rentals, err := h.wf.Rentals(c.UserContext(), creds)
	if err != nil {
		return mapUpstream(err)
	}
	return c.JSON(rentals)
}

// EndLease handles PUT /my-rentals/:id/end. Irreversible; the body must
// carry the confirmation flag.
func (h *BookingHandler) EndLease(c *fiber.Ctx) error {
	creds, err := credentials(c, h.ctrl)
	if err != nil {
		return err
	}

	var req dto.EndLeaseRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	if err := h.wf.EndLease(c.UserContext(), creds, c.Params("id"), req.Confirm); err != nil {
		return mapUpstream(err)
	}
	return c.JSON(fiber.Map{"success": true})
}
