package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/Saadaqmacalin/houserent-gateway/internal/api/dto"
	"github.com/Saadaqmacalin/houserent-gateway/internal/auth"
	"github.com/Saadaqmacalin/houserent-gateway/internal/upstream"
	"github.com/Saadaqmacalin/houserent-gateway/pkg/util"
)

// AuthHandler exposes the auth surfaces of all three audiences.
type AuthHandler struct {
	ctrl *auth.Controller
}

// NewAuthHandler constructs handler.
func NewAuthHandler(ctrl *auth.Controller) *AuthHandler {
	return &AuthHandler{ctrl: ctrl}
}

// Login handles POST /auth/login (admin console sign-in).
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	return h.login(c)
}

// CustomerLogin handles POST /customer-auth/login. Same upstream endpoint
// as the admin console; only the page entry point differs.
func (h *AuthHandler) CustomerLogin(c *fiber.Ctx) error {
	return h.login(c)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	result, err := h.ctrl.Login(c.UserContext(), sid, req.Email, req.Password)
	if err != nil {
		return err
	}
	if !result.Success {
		return c.Status(http.StatusUnauthorized).JSON(result)
	}
	return c.JSON(result)
}

// CustomerRegister handles POST /customer-auth/register.
func (h *AuthHandler) CustomerRegister(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	result, err := h.ctrl.RegisterCustomer(c.UserContext(), sid, req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		return err
	}
	if !result.Success {
		return c.Status(http.StatusBadRequest).JSON(result)
	}
	return c.Status(http.StatusCreated).JSON(result)
}

// Logout handles POST /auth/logout. Clears the admin/customer session
// only; a landlord session on the same client stays active.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	if err := h.ctrl.Logout(c.UserContext(), sid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}

// Me handles GET /auth/me: the reactive current-user state pages consult.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	sess, err := h.ctrl.Resolve(c.UserContext(), sid)
	if err != nil {
		// Undetermined, not absent: the caller should retry, not treat
		// this as logged out.
		return undeterminedSession()
	}
	if sess == nil {
		return c.JSON(dto.SessionResponse{Authenticated: false})
	}
	return c.JSON(dto.SessionResponse{
		Authenticated: true,
		Name:          sess.Name,
		Email:         sess.Email,
		Role:          string(sess.Role),
	})
}

// LandlordLogin handles POST /auth/landlord/login.
func (h *AuthHandler) LandlordLogin(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	var req dto.LandlordAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	result, err := h.ctrl.LoginLandlord(c.UserContext(), sid, req.Email, req.Password)
	if err != nil {
		return err
	}
	if !result.Success {
		return c.Status(http.StatusUnauthorized).JSON(result)
	}
	return c.JSON(result)
}

// LandlordRegister handles POST /auth/landlord/register.
func (h *AuthHandler) LandlordRegister(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	var req dto.LandlordAuthRequest
	if err := c.BodyParser(&req); err != nil {
		return util.NewValidationError("invalid request payload", nil)
	}

	input := upstream.OwnerInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		NationalID:  req.NationalID,
		Address:     req.Address,
	}
	result, err := h.ctrl.RegisterLandlord(c.UserContext(), sid, input, req.Password)
	if err != nil {
		return err
	}
	if !result.Success {
		return c.Status(http.StatusBadRequest).JSON(result)
	}
	return c.Status(http.StatusCreated).JSON(result)
}

// LandlordLogout handles POST /auth/landlord/logout.
func (h *AuthHandler) LandlordLogout(c *fiber.Ctx) error {
	sid, err := clientID(c)
	if err != nil {
		return err
	}
	if err := h.ctrl.LogoutLandlord(c.UserContext(), sid); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
